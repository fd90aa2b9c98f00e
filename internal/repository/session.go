package repository

import (
	"context"
	"sync"

	"github.com/org-structure-records/internal/domain"
	"gorm.io/gorm"
)

// Session владеет подключением и identity map сотрудников и отзывов.
// Кэш живёт ровно столько, сколько сессия: две сессии никогда не делят экземпляры.
//
// Session реализует domain.Registry и передаётся во все создаваемые сущности.
type Session struct {
	Departments DepartmentRepository
	Employees   EmployeeRepository
	Reviews     ReviewRepository

	mu sync.Mutex
}

var _ domain.Registry = (*Session)(nil)

// NewSession создаёт сессию поверх открытого подключения
func NewSession(db *gorm.DB) *Session {
	s := &Session{
		Departments: NewDepartmentRepository(db),
	}
	s.Employees = NewEmployeeRepository(db, s)
	s.Reviews = NewReviewRepository(db, s)
	return s
}

// CreateTables создаёт таблицы в порядке зависимостей внешних ключей
func (s *Session) CreateTables(ctx context.Context) error {
	if err := s.Departments.CreateTable(ctx); err != nil {
		return err
	}
	if err := s.Employees.CreateTable(ctx); err != nil {
		return err
	}
	return s.Reviews.CreateTable(ctx)
}

// DropTables удаляет таблицы в обратном порядке
func (s *Session) DropTables(ctx context.Context) error {
	if err := s.Reviews.DropTable(ctx); err != nil {
		return err
	}
	if err := s.Employees.DropTable(ctx); err != nil {
		return err
	}
	return s.Departments.DropTable(ctx)
}

// Exclusive выполняет fn, пока никто другой не работает с сессией.
// Сама identity map не синхронизирована, поэтому общие сессии ходят только через него.
func (s *Session) Exclusive(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

func (s *Session) DepartmentExists(ctx context.Context, id int64) (bool, error) {
	return s.Departments.Exists(ctx, id)
}

func (s *Session) EmployeeExists(ctx context.Context, id int64) (bool, error) {
	return s.Employees.Exists(ctx, id)
}

func (s *Session) ReviewsOf(ctx context.Context, employeeID int64) ([]*domain.Review, error) {
	return s.Reviews.FindByEmployeeID(ctx, employeeID)
}
