package service

import (
	"context"
	"strings"

	"github.com/org-structure-records/internal/domain"
	"github.com/org-structure-records/internal/dto"
	"github.com/org-structure-records/internal/repository"
)

// DepartmentService определяет интерфейс бизнес-логики для подразделений
type DepartmentService interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (dto.DepartmentResponse, error)
	GetByID(ctx context.Context, id int64) (dto.DepartmentResponse, error)
	List(ctx context.Context) ([]dto.DepartmentResponse, error)
}

type departmentService struct {
	session *repository.Session
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(session *repository.Session) DepartmentService {
	return &departmentService{session: session}
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (dto.DepartmentResponse, error) {
	var resp dto.DepartmentResponse

	err := s.session.Exclusive(func() error {
		dept := &domain.Department{Name: strings.TrimSpace(req.Name)}
		if err := s.session.Departments.Create(ctx, dept); err != nil {
			return err
		}
		resp = dto.NewDepartmentResponse(dept)
		return nil
	})

	return resp, err
}

func (s *departmentService) GetByID(ctx context.Context, id int64) (dto.DepartmentResponse, error) {
	var resp dto.DepartmentResponse

	err := s.session.Exclusive(func() error {
		dept, err := s.session.Departments.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if dept == nil {
			return domain.ErrDepartmentNotFound
		}
		resp = dto.NewDepartmentResponse(dept)
		return nil
	})

	return resp, err
}

func (s *departmentService) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	var resp []dto.DepartmentResponse

	err := s.session.Exclusive(func() error {
		departments, err := s.session.Departments.GetAll(ctx)
		if err != nil {
			return err
		}
		resp = make([]dto.DepartmentResponse, len(departments))
		for i := range departments {
			resp[i] = dto.NewDepartmentResponse(&departments[i])
		}
		return nil
	})

	return resp, err
}
