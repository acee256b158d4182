package quiz

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository is the Quizzes collection. GetByID returns nil, nil when the quiz
// does not exist.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Quiz, error)
	Create(ctx context.Context, q *Quiz) error
	List(ctx context.Context) ([]*Quiz, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &quizRepository{db: db}
}

func (r *quizRepository) GetByID(ctx context.Context, id string) (*Quiz, error) {
	var quiz Quiz
	if err := r.db.WithContext(ctx).First(&quiz, "quiz_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) Create(ctx context.Context, q *Quiz) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *quizRepository) List(ctx context.Context) ([]*Quiz, error) {
	var quizzes []*Quiz
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}
