package domain

import (
	"context"
	"fmt"
)

// EmployeeFields - значения полей сотрудника без идентификатора
type EmployeeFields struct {
	Name         string
	JobTitle     string
	DepartmentID int64
}

// Employee представляет сотрудника. Поля меняются только через сеттеры,
// которые проверяют значение до присваивания.
type Employee struct {
	id           int64
	name         string
	jobTitle     string
	departmentID int64

	registry Registry
}

// NewEmployee создаёт несохранённого сотрудника, проверяя все поля
func NewEmployee(ctx context.Context, registry Registry, fields EmployeeFields) (*Employee, error) {
	if registry == nil {
		return nil, ErrMissingRegistry
	}

	e := &Employee{registry: registry}
	if err := e.Assign(ctx, fields); err != nil {
		return nil, err
	}
	return e, nil
}

// ID возвращает идентификатор строки или 0, если запись не сохранена
func (e *Employee) ID() int64 { return e.id }

// AssignID вызывается хранилищем после вставки и удаления
func (e *Employee) AssignID(id int64) { e.id = id }

func (e *Employee) Name() string        { return e.name }
func (e *Employee) JobTitle() string    { return e.jobTitle }
func (e *Employee) DepartmentID() int64 { return e.departmentID }

// Fields возвращает текущие значения полей
func (e *Employee) Fields() EmployeeFields {
	return EmployeeFields{
		Name:         e.name,
		JobTitle:     e.jobTitle,
		DepartmentID: e.departmentID,
	}
}

func (e *Employee) SetName(name string) error {
	if err := checkText("name", name); err != nil {
		return err
	}
	e.name = name
	return nil
}

func (e *Employee) SetJobTitle(jobTitle string) error {
	if err := checkText("job_title", jobTitle); err != nil {
		return err
	}
	e.jobTitle = jobTitle
	return nil
}

// SetDepartmentID проверяет существование подразделения до присваивания
func (e *Employee) SetDepartmentID(ctx context.Context, departmentID int64) error {
	if err := e.checkDepartment(ctx, departmentID); err != nil {
		return err
	}
	e.departmentID = departmentID
	return nil
}

// Assign проверяет все поля и только затем присваивает их разом
func (e *Employee) Assign(ctx context.Context, fields EmployeeFields) error {
	if err := checkText("name", fields.Name); err != nil {
		return err
	}
	if err := checkText("job_title", fields.JobTitle); err != nil {
		return err
	}
	if err := e.checkDepartment(ctx, fields.DepartmentID); err != nil {
		return err
	}

	e.name = fields.Name
	e.jobTitle = fields.JobTitle
	e.departmentID = fields.DepartmentID
	return nil
}

// Restore возвращает значения, снятые через Fields, без повторных проверок.
// Используется для отката экземпляра после неудачной записи.
func (e *Employee) Restore(fields EmployeeFields) {
	e.name = fields.Name
	e.jobTitle = fields.JobTitle
	e.departmentID = fields.DepartmentID
}

// Reviews запрашивает отзывы сотрудника при каждом вызове
func (e *Employee) Reviews(ctx context.Context) ([]*Review, error) {
	if e.id == 0 {
		return nil, ErrNotPersisted
	}
	return e.registry.ReviewsOf(ctx, e.id)
}

func (e *Employee) checkDepartment(ctx context.Context, departmentID int64) error {
	return checkReference(ctx, "department_id", departmentID, e.registry.DepartmentExists,
		"must correspond to an existing department")
}

func (e *Employee) String() string {
	return fmt.Sprintf("Employee %d: %s, %s, department %d", e.id, e.name, e.jobTitle, e.departmentID)
}
