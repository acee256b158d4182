package question

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrQuestionNotFound = errors.New("question not found")

// Repository is the Questions collection. GetByID returns nil, nil when the
// question does not exist.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Question, error)
	Save(ctx context.Context, q *Question) error
	Update(ctx context.Context, id string, patch Patch) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &questionRepository{db: db}
}

func (r *questionRepository) GetByID(ctx context.Context, id string) (*Question, error) {
	var q Question
	if err := r.db.WithContext(ctx).First(&q, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *questionRepository) Save(ctx context.Context, q *Question) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(q).Error
}

func (r *questionRepository) Update(ctx context.Context, id string, patch Patch) error {
	res := r.db.WithContext(ctx).
		Model(&Question{}).
		Where("question_id = ?", id).
		Updates(patch.Fields())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

func (r *questionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Question{}, "question_id = ?", id).Error
}

func (r *questionRepository) List(ctx context.Context) ([]*Question, error) {
	var questions []*Question
	if err := r.db.WithContext(ctx).Order("question_id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
