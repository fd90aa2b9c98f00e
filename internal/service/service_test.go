package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/org-structure-records/internal/database"
	"github.com/org-structure-records/internal/domain"
	"github.com/org-structure-records/internal/dto"
	"github.com/org-structure-records/internal/repository"
	"github.com/org-structure-records/internal/service"
)

type services struct {
	db          *gorm.DB
	session     *repository.Session
	departments service.DepartmentService
	employees   service.EmployeeService
	reviews     service.ReviewService
}

func setupServices(t *testing.T) services {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(":memory:")), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	session := repository.NewSession(db)
	require.NoError(t, session.CreateTables(context.Background()))

	return services{
		db:          db,
		session:     session,
		departments: service.NewDepartmentService(session),
		employees:   service.NewEmployeeService(session),
		reviews:     service.NewReviewService(session),
	}
}

func ptr[T any](v T) *T { return &v }

func seed(t *testing.T, s services) dto.EmployeeResponse {
	t.Helper()
	ctx := context.Background()

	_, err := s.departments.Create(ctx, &dto.CreateDepartmentRequest{Name: " Engineering "})
	require.NoError(t, err)

	emp, err := s.employees.Create(ctx, &dto.CreateEmployeeRequest{Name: "Ada", JobTitle: "Engineer", DepartmentID: 1})
	require.NoError(t, err)
	return emp
}

func TestDepartmentService(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	seed(t, s)

	dept, err := s.departments.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Engineering", dept.Name)

	_, err = s.departments.GetByID(ctx, 9)
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)

	_, err = s.departments.Create(ctx, &dto.CreateDepartmentRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	all, err := s.departments.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEmployeeService_CreateAndLookup(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	ada := seed(t, s)

	assert.Equal(t, dto.EmployeeResponse{ID: 1, Name: "Ada", JobTitle: "Engineer", DepartmentID: 1}, ada)

	byID, err := s.employees.GetByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, ada, byID)

	byName, err := s.employees.GetByName(ctx, "Ada")
	require.NoError(t, err)
	assert.Equal(t, ada, byName)

	_, err = s.employees.GetByName(ctx, "Grace")
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	_, err = s.employees.Create(ctx, &dto.CreateEmployeeRequest{Name: "Grace", JobTitle: "Admiral", DepartmentID: 5})
	assert.ErrorIs(t, err, domain.ErrReferentialIntegrity)

	all, err := s.employees.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEmployeeService_UpdateIsAllOrNothing(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	ada := seed(t, s)

	_, err := s.employees.Update(ctx, ada.ID, &dto.UpdateEmployeeRequest{
		JobTitle:     ptr("Principal Engineer"),
		DepartmentID: ptr(int64(42)),
	})
	assert.ErrorIs(t, err, domain.ErrReferentialIntegrity)

	unchanged, err := s.employees.GetByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", unchanged.JobTitle)

	updated, err := s.employees.Update(ctx, ada.ID, &dto.UpdateEmployeeRequest{JobTitle: ptr("Principal Engineer")})
	require.NoError(t, err)
	assert.Equal(t, "Principal Engineer", updated.JobTitle)
	assert.Equal(t, "Ada", updated.Name)

	_, err = s.employees.Update(ctx, 99, &dto.UpdateEmployeeRequest{Name: ptr("X")})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeService_DeleteAndReviews(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	ada := seed(t, s)

	_, err := s.reviews.Create(ctx, &dto.CreateReviewRequest{Year: 1999, Summary: "ok", EmployeeID: ada.ID})
	assert.ErrorIs(t, err, domain.ErrValidation)

	review, err := s.reviews.Create(ctx, &dto.CreateReviewRequest{Year: 2021, Summary: "ok", EmployeeID: ada.ID})
	require.NoError(t, err)

	reviews, err := s.employees.Reviews(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, []dto.ReviewResponse{review}, reviews)

	// отзыв ссылается на сотрудника, база запрещает удаление
	err = s.employees.Delete(ctx, ada.ID)
	var storageErr *domain.StorageError
	require.ErrorAs(t, err, &storageErr)
	var sqliteErr sqlite3.Error
	require.ErrorAs(t, err, &sqliteErr)
	assert.Equal(t, sqlite3.ErrConstraintForeignKey, sqliteErr.ExtendedCode)

	all, err := s.reviews.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []dto.ReviewResponse{review}, all)

	got, err := s.employees.GetByID(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, ada, got)

	require.NoError(t, s.reviews.Delete(ctx, review.ID))
	require.NoError(t, s.employees.Delete(ctx, ada.ID))
	assert.ErrorIs(t, s.employees.Delete(ctx, ada.ID), domain.ErrEmployeeNotFound)

	_, err = s.employees.Reviews(ctx, ada.ID)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestServices_FailedUpdateRestoresInstance(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	ada := seed(t, s)

	review, err := s.reviews.Create(ctx, &dto.CreateReviewRequest{Year: 2021, Summary: "ok", EmployeeID: ada.ID})
	require.NoError(t, err)

	cachedEmp, err := s.session.Employees.FindByID(ctx, ada.ID)
	require.NoError(t, err)
	cachedReview, err := s.session.Reviews.FindByID(ctx, review.ID)
	require.NoError(t, err)

	errWrite := errors.New("disk is full")
	require.NoError(t, s.db.Callback().Update().Before("gorm:update").Register("test:fail_update", func(tx *gorm.DB) {
		tx.AddError(errWrite)
	}))

	_, err = s.employees.Update(ctx, ada.ID, &dto.UpdateEmployeeRequest{Name: ptr("Grace")})
	assert.ErrorIs(t, err, errWrite)
	assert.NotErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.EmployeeFields{Name: "Ada", JobTitle: "Engineer", DepartmentID: 1}, cachedEmp.Fields())

	_, err = s.reviews.Update(ctx, review.ID, &dto.UpdateReviewRequest{Year: ptr(2024), Summary: ptr("great")})
	assert.ErrorIs(t, err, errWrite)
	assert.Equal(t, domain.ReviewFields{Year: 2021, Summary: "ok", EmployeeID: ada.ID}, cachedReview.Fields())
}

func TestReviewService(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	ada := seed(t, s)

	review, err := s.reviews.Create(ctx, &dto.CreateReviewRequest{Year: 2021, Summary: "ok", EmployeeID: ada.ID})
	require.NoError(t, err)

	_, err = s.reviews.Update(ctx, review.ID, &dto.UpdateReviewRequest{Year: ptr(1995)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	updated, err := s.reviews.Update(ctx, review.ID, &dto.UpdateReviewRequest{Year: ptr(2023), Summary: ptr("excellent")})
	require.NoError(t, err)
	assert.Equal(t, dto.ReviewResponse{ID: review.ID, Year: 2023, Summary: "excellent", EmployeeID: ada.ID}, updated)

	got, err := s.reviews.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	all, err := s.reviews.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, s.reviews.Delete(ctx, review.ID))
	_, err = s.reviews.GetByID(ctx, review.ID)
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
}

func TestServices_ConcurrentCallsShareOneSession(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	ada := seed(t, s)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = s.employees.GetByID(ctx, ada.ID)
				return
			}
			_, _ = s.reviews.Create(ctx, &dto.CreateReviewRequest{Year: 2020 + i, Summary: "ok", EmployeeID: ada.ID})
		}()
	}
	wg.Wait()

	reviews, err := s.employees.Reviews(ctx, ada.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 10)
}
