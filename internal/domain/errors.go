package domain

import (
	"errors"
	"fmt"
)

// Определение ошибок слоя записей
var (
	ErrValidation           = errors.New("validation failed")
	ErrReferentialIntegrity = errors.New("referenced record does not exist")
	ErrNotPersisted         = errors.New("record is not persisted")
	ErrAlreadyPersisted     = errors.New("record is already persisted")
	ErrRecordMissing        = errors.New("record row is missing from the store")
	ErrMissingRegistry      = errors.New("record registry is required")
)

// Ошибки прикладного слоя: поиск, не нашедший строку, в ядре возвращает nil
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrReviewNotFound     = errors.New("review not found")
)

// ValidationError описывает поле, не прошедшее проверку в сеттере.
// Значение поля при этом не меняется.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Is позволяет проверять любую ошибку валидации через errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsReferential сообщает, что поле ссылается на несуществующую запись
func (e *ValidationError) IsReferential() bool {
	return errors.Is(e.Err, ErrReferentialIntegrity)
}

// StorageError оборачивает ошибку хранилища без её преобразования
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func dangling(field, message string) error {
	return &ValidationError{Field: field, Message: message, Err: ErrReferentialIntegrity}
}
