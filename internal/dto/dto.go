package dto

import (
	"time"

	"github.com/org-structure-records/internal/domain"
)

// CreateDepartmentRequest - запрос на создание подразделения
type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// CreateEmployeeRequest - запрос на создание сотрудника
type CreateEmployeeRequest struct {
	Name         string `json:"name" validate:"required,min=1"`
	JobTitle     string `json:"job_title" validate:"required,min=1"`
	DepartmentID int64  `json:"department_id" validate:"required,min=1"`
}

// UpdateEmployeeRequest - частичное обновление сотрудника
type UpdateEmployeeRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	JobTitle     *string `json:"job_title" validate:"omitempty,min=1"`
	DepartmentID *int64  `json:"department_id" validate:"omitempty,min=1"`
}

// CreateReviewRequest - запрос на создание отзыва
type CreateReviewRequest struct {
	Year       int    `json:"year" validate:"required"`
	Summary    string `json:"summary" validate:"required,min=1"`
	EmployeeID int64  `json:"employee_id" validate:"required,min=1"`
}

// UpdateReviewRequest - частичное обновление отзыва
type UpdateReviewRequest struct {
	Year       *int    `json:"year"`
	Summary    *string `json:"summary" validate:"omitempty,min=1"`
	EmployeeID *int64  `json:"employee_id" validate:"omitempty,min=1"`
}

// DepartmentResponse - ответ с данными подразделения
type DepartmentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	JobTitle     string `json:"job_title"`
	DepartmentID int64  `json:"department_id"`
}

// ReviewResponse - ответ с данными отзыва
type ReviewResponse struct {
	ID         int64  `json:"id"`
	Year       int    `json:"year"`
	Summary    string `json:"summary"`
	EmployeeID int64  `json:"employee_id"`
}

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func NewDepartmentResponse(dept *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:        dept.ID,
		Name:      dept.Name,
		CreatedAt: dept.CreatedAt,
	}
}

func NewEmployeeResponse(emp *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           emp.ID(),
		Name:         emp.Name(),
		JobTitle:     emp.JobTitle(),
		DepartmentID: emp.DepartmentID(),
	}
}

func NewReviewResponse(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID(),
		Year:       review.Year(),
		Summary:    review.Summary(),
		EmployeeID: review.EmployeeID(),
	}
}
