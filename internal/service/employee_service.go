package service

import (
	"context"
	"strings"

	"github.com/org-structure-records/internal/domain"
	"github.com/org-structure-records/internal/dto"
	"github.com/org-structure-records/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (dto.EmployeeResponse, error)
	GetByName(ctx context.Context, name string) (dto.EmployeeResponse, error)
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (dto.EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
	Reviews(ctx context.Context, id int64) ([]dto.ReviewResponse, error)
}

type employeeService struct {
	session *repository.Session
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(session *repository.Session) EmployeeService {
	return &employeeService{session: session}
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (dto.EmployeeResponse, error) {
	var resp dto.EmployeeResponse

	err := s.session.Exclusive(func() error {
		emp, err := s.session.Employees.Create(ctx, domain.EmployeeFields{
			Name:         strings.TrimSpace(req.Name),
			JobTitle:     strings.TrimSpace(req.JobTitle),
			DepartmentID: req.DepartmentID,
		})
		if err != nil {
			return err
		}
		resp = dto.NewEmployeeResponse(emp)
		return nil
	})

	return resp, err
}

func (s *employeeService) GetByID(ctx context.Context, id int64) (dto.EmployeeResponse, error) {
	var resp dto.EmployeeResponse

	err := s.session.Exclusive(func() error {
		emp, err := s.find(ctx, id)
		if err != nil {
			return err
		}
		resp = dto.NewEmployeeResponse(emp)
		return nil
	})

	return resp, err
}

func (s *employeeService) GetByName(ctx context.Context, name string) (dto.EmployeeResponse, error) {
	var resp dto.EmployeeResponse

	err := s.session.Exclusive(func() error {
		emp, err := s.session.Employees.FindByName(ctx, name)
		if err != nil {
			return err
		}
		if emp == nil {
			return domain.ErrEmployeeNotFound
		}
		resp = dto.NewEmployeeResponse(emp)
		return nil
	})

	return resp, err
}

func (s *employeeService) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	var resp []dto.EmployeeResponse

	err := s.session.Exclusive(func() error {
		employees, err := s.session.Employees.GetAll(ctx)
		if err != nil {
			return err
		}
		resp = make([]dto.EmployeeResponse, len(employees))
		for i, emp := range employees {
			resp[i] = dto.NewEmployeeResponse(emp)
		}
		return nil
	})

	return resp, err
}

// Update применяет переданные поля разом и сохраняет сотрудника.
// Если запись в базу не удалась, экземпляр возвращается к прежним значениям.
func (s *employeeService) Update(ctx context.Context, id int64, req *dto.UpdateEmployeeRequest) (dto.EmployeeResponse, error) {
	var resp dto.EmployeeResponse

	err := s.session.Exclusive(func() error {
		emp, err := s.find(ctx, id)
		if err != nil {
			return err
		}

		prev := emp.Fields()
		fields := prev
		if req.Name != nil {
			fields.Name = strings.TrimSpace(*req.Name)
		}
		if req.JobTitle != nil {
			fields.JobTitle = strings.TrimSpace(*req.JobTitle)
		}
		if req.DepartmentID != nil {
			fields.DepartmentID = *req.DepartmentID
		}

		if err := emp.Assign(ctx, fields); err != nil {
			return err
		}
		if err := s.session.Employees.Update(ctx, emp); err != nil {
			emp.Restore(prev)
			return err
		}

		resp = dto.NewEmployeeResponse(emp)
		return nil
	})

	return resp, err
}

func (s *employeeService) Delete(ctx context.Context, id int64) error {
	return s.session.Exclusive(func() error {
		emp, err := s.find(ctx, id)
		if err != nil {
			return err
		}
		return s.session.Employees.Delete(ctx, emp)
	})
}

func (s *employeeService) Reviews(ctx context.Context, id int64) ([]dto.ReviewResponse, error) {
	var resp []dto.ReviewResponse

	err := s.session.Exclusive(func() error {
		emp, err := s.find(ctx, id)
		if err != nil {
			return err
		}

		reviews, err := emp.Reviews(ctx)
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

func (s *employeeService) find(ctx context.Context, id int64) (*domain.Employee, error) {
	emp, err := s.session.Employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return emp, nil
}
