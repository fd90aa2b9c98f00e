package repository

import (
	"context"
	"errors"

	"github.com/org-structure-records/internal/domain"
	"gorm.io/gorm"
)

// DepartmentRepository определяет интерфейс для работы с подразделениями.
// Подразделения не кэшируются: сотрудники лишь ссылаются на них.
type DepartmentRepository interface {
	CreateTable(ctx context.Context) error
	DropTable(ctx context.Context) error
	Create(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	GetAll(ctx context.Context) ([]domain.Department, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) CreateTable(ctx context.Context) error {
	m := r.db.WithContext(ctx).Migrator()
	if m.HasTable(&domain.Department{}) {
		return nil
	}
	if err := m.CreateTable(&domain.Department{}); err != nil {
		return &domain.StorageError{Op: "create table departments", Err: err}
	}
	return nil
}

func (r *departmentRepository) DropTable(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Migrator().DropTable(&domain.Department{}); err != nil {
		return &domain.StorageError{Op: "drop table departments", Err: err}
	}
	return nil
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	if err := dept.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(dept).Error; err != nil {
		return &domain.StorageError{Op: "insert departments", Err: err}
	}
	return nil
}

// GetByID возвращает nil без ошибки, если подразделение не найдено
func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).Take(&dept, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, &domain.StorageError{Op: "select departments", Err: err}
	}
	return &dept, nil
}

func (r *departmentRepository) GetAll(ctx context.Context) ([]domain.Department, error) {
	var departments []domain.Department
	err := r.db.WithContext(ctx).Order("id ASC").Find(&departments).Error
	if err != nil {
		return nil, &domain.StorageError{Op: "select departments", Err: err}
	}
	return departments, nil
}

func (r *departmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Department{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, &domain.StorageError{Op: "count departments", Err: err}
	}
	return count > 0, nil
}
