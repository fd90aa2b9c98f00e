package domain

import (
	"context"
	"fmt"
)

// ReviewFields - значения полей отзыва без идентификатора
type ReviewFields struct {
	Year       int
	Summary    string
	EmployeeID int64
}

// Review представляет ежегодный отзыв о сотруднике
type Review struct {
	id         int64
	year       int
	summary    string
	employeeID int64

	registry Registry
}

// NewReview создаёт несохранённый отзыв, проверяя все поля
func NewReview(ctx context.Context, registry Registry, fields ReviewFields) (*Review, error) {
	if registry == nil {
		return nil, ErrMissingRegistry
	}

	r := &Review{registry: registry}
	if err := r.Assign(ctx, fields); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Review) ID() int64 { return r.id }

// AssignID вызывается хранилищем после вставки и удаления
func (r *Review) AssignID(id int64) { r.id = id }

func (r *Review) Year() int         { return r.year }
func (r *Review) Summary() string   { return r.summary }
func (r *Review) EmployeeID() int64 { return r.employeeID }

func (r *Review) Fields() ReviewFields {
	return ReviewFields{
		Year:       r.year,
		Summary:    r.summary,
		EmployeeID: r.employeeID,
	}
}

func (r *Review) SetYear(year int) error {
	if err := checkYear(year); err != nil {
		return err
	}
	r.year = year
	return nil
}

func (r *Review) SetSummary(summary string) error {
	if err := checkText("summary", summary); err != nil {
		return err
	}
	r.summary = summary
	return nil
}

// SetEmployeeID проверяет существование сотрудника до присваивания
func (r *Review) SetEmployeeID(ctx context.Context, employeeID int64) error {
	if err := r.checkEmployee(ctx, employeeID); err != nil {
		return err
	}
	r.employeeID = employeeID
	return nil
}

// Assign проверяет все поля и только затем присваивает их разом
func (r *Review) Assign(ctx context.Context, fields ReviewFields) error {
	if err := checkYear(fields.Year); err != nil {
		return err
	}
	if err := checkText("summary", fields.Summary); err != nil {
		return err
	}
	if err := r.checkEmployee(ctx, fields.EmployeeID); err != nil {
		return err
	}

	r.year = fields.Year
	r.summary = fields.Summary
	r.employeeID = fields.EmployeeID
	return nil
}

// Restore возвращает значения, снятые через Fields, без повторных проверок.
// Используется для отката экземпляра после неудачной записи.
func (r *Review) Restore(fields ReviewFields) {
	r.year = fields.Year
	r.summary = fields.Summary
	r.employeeID = fields.EmployeeID
}

func (r *Review) checkEmployee(ctx context.Context, employeeID int64) error {
	return checkReference(ctx, "employee_id", employeeID, r.registry.EmployeeExists,
		"must correspond to an existing employee")
}

func (r *Review) String() string {
	return fmt.Sprintf("Review %d: %d, %s, employee %d", r.id, r.year, r.summary, r.employeeID)
}
