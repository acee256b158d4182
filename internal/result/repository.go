package result

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the Results collection. Results are written once and never
// changed.
type Repository interface {
	Create(ctx context.Context, r *Result) error
	List(ctx context.Context) ([]*Result, error)
	ListByEmail(ctx context.Context, email string) ([]*Result, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(ctx context.Context, res *Result) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *resultRepository) List(ctx context.Context) ([]*Result, error) {
	var results []*Result
	if err := r.db.WithContext(ctx).Order("result_id ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) ListByEmail(ctx context.Context, email string) ([]*Result, error) {
	var results []*Result
	if err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("result_id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
