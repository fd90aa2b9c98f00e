package repository

import (
	"context"

	"github.com/org-structure-records/internal/domain"
	"github.com/org-structure-records/internal/identity"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для работы с сотрудниками
type EmployeeRepository interface {
	CreateTable(ctx context.Context) error
	DropTable(ctx context.Context) error
	New(ctx context.Context, fields domain.EmployeeFields) (*domain.Employee, error)
	Create(ctx context.Context, fields domain.EmployeeFields) (*domain.Employee, error)
	Save(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, emp *domain.Employee) error
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	FindByName(ctx context.Context, name string) (*domain.Employee, error)
	GetAll(ctx context.Context) ([]*domain.Employee, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type employeeRepository struct {
	table    *table[*domain.Employee, employeeRow]
	registry domain.Registry
}

// NewEmployeeRepository создаёт репозиторий с собственной identity map
func NewEmployeeRepository(db *gorm.DB, registry domain.Registry) EmployeeRepository {
	r := &employeeRepository{registry: registry}
	r.table = &table[*domain.Employee, employeeRow]{
		db:    db,
		name:  "employees",
		cache: identity.New[*domain.Employee](),
		toRow: employeeToRow,
		load: func(ctx context.Context, row employeeRow) (*domain.Employee, error) {
			return domain.NewEmployee(ctx, r.registry, row.fields())
		},
		refresh: func(ctx context.Context, emp *domain.Employee, row employeeRow) error {
			return emp.Assign(ctx, row.fields())
		},
	}
	return r
}

func (r *employeeRepository) CreateTable(ctx context.Context) error {
	return r.table.createTable(ctx)
}

func (r *employeeRepository) DropTable(ctx context.Context) error {
	return r.table.dropTable(ctx)
}

func (r *employeeRepository) New(ctx context.Context, fields domain.EmployeeFields) (*domain.Employee, error) {
	return domain.NewEmployee(ctx, r.registry, fields)
}

// Create проверяет поля, сохраняет сотрудника и возвращает живой экземпляр
func (r *employeeRepository) Create(ctx context.Context, fields domain.EmployeeFields) (*domain.Employee, error) {
	emp, err := r.New(ctx, fields)
	if err != nil {
		return nil, err
	}
	if err := r.table.save(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

func (r *employeeRepository) Save(ctx context.Context, emp *domain.Employee) error {
	return r.table.save(ctx, emp)
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	return r.table.update(ctx, emp)
}

func (r *employeeRepository) Delete(ctx context.Context, emp *domain.Employee) error {
	return r.table.delete(ctx, emp)
}

func (r *employeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return r.table.first(ctx, "id = ?", id)
}

func (r *employeeRepository) FindByName(ctx context.Context, name string) (*domain.Employee, error) {
	return r.table.first(ctx, "name = ?", name)
}

func (r *employeeRepository) GetAll(ctx context.Context) ([]*domain.Employee, error) {
	return r.table.find(ctx, nil)
}

// Exists проверяет наличие строки, не затрагивая identity map
func (r *employeeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.table.exists(ctx, id)
}
