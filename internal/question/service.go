package question

import (
	"context"
	"errors"

	"gorm.io/datatypes"

	"github.com/saulo-duarte/quizbank-lambda/internal/apperror"
	"github.com/saulo-duarte/quizbank-lambda/internal/config"
)

type QuestionService interface {
	AddQuestion(ctx context.Context, dto AddQuestionDTO) error
	ListQuestions(ctx context.Context) ([]*Question, error)
	UpdateQuestion(ctx context.Context, id string, patch Patch) error
	DeleteQuestion(ctx context.Context, id string) error
}

type questionService struct {
	repo Repository
}

func NewService(repo Repository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) AddQuestion(ctx context.Context, dto AddQuestionDTO) error {
	log := config.WithContext(ctx)

	if dto.ID == "" || dto.Text == "" || len(dto.Options) == 0 || dto.Answer == "" {
		return apperror.Validation("Invalid input: Missing required fields")
	}

	q := &Question{
		ID:      dto.ID,
		Text:    dto.Text,
		Options: datatypes.JSONSlice[string](dto.Options),
		Answer:  dto.Answer,
	}
	if err := s.repo.Save(ctx, q); err != nil {
		log.WithError(err).Error("Failed to save question")
		return apperror.Internal("save question", err)
	}

	log.WithField("question_id", q.ID).Info("Question saved")
	return nil
}

func (s *questionService) ListQuestions(ctx context.Context) ([]*Question, error) {
	questions, err := s.repo.List(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list questions")
		return nil, apperror.Internal("list questions", err)
	}
	if questions == nil {
		questions = []*Question{}
	}
	return questions, nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, id string, patch Patch) error {
	log := config.WithContext(ctx).WithField("question_id", id)

	if id == "" {
		return apperror.Validation("question_id is required")
	}
	if patch.IsEmpty() {
		return apperror.Validation("no fields to update")
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			return apperror.NotFound("Question not found")
		}
		log.WithError(err).Error("Failed to update question")
		return apperror.Internal("update question", err)
	}

	log.Info("Question updated")
	return nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id string) error {
	log := config.WithContext(ctx).WithField("question_id", id)

	if id == "" {
		return apperror.Validation("question_id is required")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete question")
		return apperror.Internal("delete question", err)
	}

	log.Info("Question deleted")
	return nil
}
