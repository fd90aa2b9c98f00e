package domain

import (
	"context"

	"github.com/go-playground/validator/v10"
)

// MinReviewYear - самый ранний допустимый год отзыва
const MinReviewYear = 2000

var validate = validator.New()

// Registry даёт сущностям доступ к связанным записям той же сессии.
// Через него Employee и Review проверяют внешние ключи, не импортируя репозитории.
type Registry interface {
	DepartmentExists(ctx context.Context, id int64) (bool, error)
	EmployeeExists(ctx context.Context, id int64) (bool, error)
	ReviewsOf(ctx context.Context, employeeID int64) ([]*Review, error)
}

func checkText(field, value string) error {
	if err := validate.Var(value, "required"); err != nil {
		return invalid(field, "must not be empty")
	}
	return nil
}

func checkYear(year int) error {
	if err := validate.Var(year, "min=2000"); err != nil {
		return invalid("year", "must be >= 2000")
	}
	return nil
}

// checkReference проверяет внешний ключ в момент присваивания
func checkReference(ctx context.Context, field string, id int64, exists func(context.Context, int64) (bool, error), message string) error {
	if err := validate.Var(id, "gt=0"); err != nil {
		return dangling(field, message)
	}

	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return dangling(field, message)
	}
	return nil
}
