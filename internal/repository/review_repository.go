package repository

import (
	"context"

	"github.com/org-structure-records/internal/domain"
	"github.com/org-structure-records/internal/identity"
	"gorm.io/gorm"
)

// ReviewRepository определяет интерфейс для работы с отзывами
type ReviewRepository interface {
	CreateTable(ctx context.Context) error
	DropTable(ctx context.Context) error
	New(ctx context.Context, fields domain.ReviewFields) (*domain.Review, error)
	Create(ctx context.Context, fields domain.ReviewFields) (*domain.Review, error)
	Save(ctx context.Context, review *domain.Review) error
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, review *domain.Review) error
	FindByID(ctx context.Context, id int64) (*domain.Review, error)
	FindByEmployeeID(ctx context.Context, employeeID int64) ([]*domain.Review, error)
	GetAll(ctx context.Context) ([]*domain.Review, error)
}

type reviewRepository struct {
	table    *table[*domain.Review, reviewRow]
	registry domain.Registry
}

// NewReviewRepository создаёт репозиторий с собственной identity map
func NewReviewRepository(db *gorm.DB, registry domain.Registry) ReviewRepository {
	r := &reviewRepository{registry: registry}
	r.table = &table[*domain.Review, reviewRow]{
		db:    db,
		name:  "reviews",
		cache: identity.New[*domain.Review](),
		toRow: reviewToRow,
		load: func(ctx context.Context, row reviewRow) (*domain.Review, error) {
			return domain.NewReview(ctx, r.registry, row.fields())
		},
		refresh: func(ctx context.Context, review *domain.Review, row reviewRow) error {
			return review.Assign(ctx, row.fields())
		},
	}
	return r
}

func (r *reviewRepository) CreateTable(ctx context.Context) error {
	return r.table.createTable(ctx)
}

func (r *reviewRepository) DropTable(ctx context.Context) error {
	return r.table.dropTable(ctx)
}

func (r *reviewRepository) New(ctx context.Context, fields domain.ReviewFields) (*domain.Review, error) {
	return domain.NewReview(ctx, r.registry, fields)
}

func (r *reviewRepository) Create(ctx context.Context, fields domain.ReviewFields) (*domain.Review, error) {
	review, err := r.New(ctx, fields)
	if err != nil {
		return nil, err
	}
	if err := r.table.save(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (r *reviewRepository) Save(ctx context.Context, review *domain.Review) error {
	return r.table.save(ctx, review)
}

func (r *reviewRepository) Update(ctx context.Context, review *domain.Review) error {
	return r.table.update(ctx, review)
}

func (r *reviewRepository) Delete(ctx context.Context, review *domain.Review) error {
	return r.table.delete(ctx, review)
}

func (r *reviewRepository) FindByID(ctx context.Context, id int64) (*domain.Review, error) {
	return r.table.first(ctx, "id = ?", id)
}

func (r *reviewRepository) FindByEmployeeID(ctx context.Context, employeeID int64) ([]*domain.Review, error) {
	return r.table.find(ctx, "employee_id = ?", employeeID)
}

func (r *reviewRepository) GetAll(ctx context.Context) ([]*domain.Review, error) {
	return r.table.find(ctx, nil)
}
