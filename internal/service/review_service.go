package service

import (
	"context"
	"strings"

	"github.com/org-structure-records/internal/domain"
	"github.com/org-structure-records/internal/dto"
	"github.com/org-structure-records/internal/repository"
)

// ReviewService определяет интерфейс бизнес-логики для отзывов
type ReviewService interface {
	Create(ctx context.Context, req *dto.CreateReviewRequest) (dto.ReviewResponse, error)
	GetByID(ctx context.Context, id int64) (dto.ReviewResponse, error)
	List(ctx context.Context) ([]dto.ReviewResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateReviewRequest) (dto.ReviewResponse, error)
	Delete(ctx context.Context, id int64) error
}

type reviewService struct {
	session *repository.Session
}

// NewReviewService создаёт новый экземпляр сервиса
func NewReviewService(session *repository.Session) ReviewService {
	return &reviewService{session: session}
}

func (s *reviewService) Create(ctx context.Context, req *dto.CreateReviewRequest) (dto.ReviewResponse, error) {
	var resp dto.ReviewResponse

	err := s.session.Exclusive(func() error {
		review, err := s.session.Reviews.Create(ctx, domain.ReviewFields{
			Year:       req.Year,
			Summary:    strings.TrimSpace(req.Summary),
			EmployeeID: req.EmployeeID,
		})
		if err != nil {
			return err
		}
		resp = dto.NewReviewResponse(review)
		return nil
	})

	return resp, err
}

func (s *reviewService) GetByID(ctx context.Context, id int64) (dto.ReviewResponse, error) {
	var resp dto.ReviewResponse

	err := s.session.Exclusive(func() error {
		review, err := s.find(ctx, id)
		if err != nil {
			return err
		}
		resp = dto.NewReviewResponse(review)
		return nil
	})

	return resp, err
}

func (s *reviewService) List(ctx context.Context) ([]dto.ReviewResponse, error) {
	var resp []dto.ReviewResponse

	err := s.session.Exclusive(func() error {
		reviews, err := s.session.Reviews.GetAll(ctx)
		if err != nil {
			return err
		}
		resp = make([]dto.ReviewResponse, len(reviews))
		for i, review := range reviews {
			resp[i] = dto.NewReviewResponse(review)
		}
		return nil
	})

	return resp, err
}

func (s *reviewService) Update(ctx context.Context, id int64, req *dto.UpdateReviewRequest) (dto.ReviewResponse, error) {
	var resp dto.ReviewResponse

	err := s.session.Exclusive(func() error {
		review, err := s.find(ctx, id)
		if err != nil {
			return err
		}

		prev := review.Fields()
		fields := prev
		if req.Year != nil {
			fields.Year = *req.Year
		}
		if req.Summary != nil {
			fields.Summary = strings.TrimSpace(*req.Summary)
		}
		if req.EmployeeID != nil {
			fields.EmployeeID = *req.EmployeeID
		}

		if err := review.Assign(ctx, fields); err != nil {
			return err
		}
		if err := s.session.Reviews.Update(ctx, review); err != nil {
			review.Restore(prev)
			return err
		}

		resp = dto.NewReviewResponse(review)
		return nil
	})

	return resp, err
}

func (s *reviewService) Delete(ctx context.Context, id int64) error {
	return s.session.Exclusive(func() error {
		review, err := s.find(ctx, id)
		if err != nil {
			return err
		}
		return s.session.Reviews.Delete(ctx, review)
	})
}

func (s *reviewService) find(ctx context.Context, id int64) (*domain.Review, error) {
	review, err := s.session.Reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, domain.ErrReviewNotFound
	}
	return review, nil
}
