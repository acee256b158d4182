package result

import (
	"context"

	"github.com/google/uuid"

	"github.com/saulo-duarte/quizbank-lambda/internal/apperror"
	"github.com/saulo-duarte/quizbank-lambda/internal/config"
	"github.com/saulo-duarte/quizbank-lambda/internal/question"
	"github.com/saulo-duarte/quizbank-lambda/internal/quiz"
)

type ResultService interface {
	Submit(ctx context.Context, who Submitter, dto SubmitQuizDTO) (*SubmitResponse, error)
	ListAll(ctx context.Context) ([]*Result, error)
	ListMine(ctx context.Context, who Submitter) (*MyResultsResponse, error)
}

type resultService struct {
	repo      Repository
	quizzes   quiz.Repository
	questions question.Repository
}

func NewService(repo Repository, quizzes quiz.Repository, questions question.Repository) ResultService {
	return &resultService{
		repo:      repo,
		quizzes:   quizzes,
		questions: questions,
	}
}

func NewResultID() string {
	return "res-" + uuid.NewString()[:8]
}

func (s *resultService) Submit(ctx context.Context, who Submitter, dto SubmitQuizDTO) (*SubmitResponse, error) {
	log := config.WithContext(ctx).WithField("quiz_id", dto.QuizID)

	if dto.QuizID == "" || len(dto.Answers) == 0 {
		return nil, apperror.Validation("Missing quiz_id or answers")
	}

	q, err := s.quizzes.GetByID(ctx, dto.QuizID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz")
		return nil, apperror.Internal("get quiz", err)
	}
	if q == nil {
		return nil, apperror.NotFound("Quiz not found")
	}

	grade, err := Score(ctx, q, s.questions, dto.Answers)
	if err != nil {
		log.WithError(err).Error("Failed to grade submission")
		return nil, apperror.Internal("grade submission", err)
	}

	res := &Result{
		ID:        NewResultID(),
		QuizID:    q.ID,
		UserEmail: who.Email,
		UserName:  who.Name,
		Answers:   dto.Answers,
		Score:     grade.Score,
	}
	if err := s.repo.Create(ctx, res); err != nil {
		log.WithError(err).Error("Failed to save result")
		return nil, apperror.Internal("save result", err)
	}

	log.WithFields(map[string]interface{}{
		"result_id": res.ID,
		"correct":   grade.CorrectCount,
		"score":     grade.Score.String(),
	}).Info("Quiz submitted")

	return &SubmitResponse{
		Message:        "Quiz submitted successfully",
		QuizID:         q.ID,
		Score:          grade.Score,
		CorrectAnswers: grade.CorrectAnswers,
		ResultID:       res.ID,
	}, nil
}

func (s *resultService) ListAll(ctx context.Context) ([]*Result, error) {
	results, err := s.repo.List(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list results")
		return nil, apperror.Internal("list results", err)
	}
	if results == nil {
		results = []*Result{}
	}
	return results, nil
}

func (s *resultService) ListMine(ctx context.Context, who Submitter) (*MyResultsResponse, error) {
	if who.Email == "" {
		return nil, apperror.Forbidden("Unauthorized - no email found in token")
	}

	results, err := s.repo.ListByEmail(ctx, who.Email)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("email", who.Email).Error("Failed to list user results")
		return nil, apperror.Internal("list user results", err)
	}
	if results == nil {
		results = []*Result{}
	}

	return &MyResultsResponse{
		User:    who.Name,
		Email:   who.Email,
		Results: results,
	}, nil
}
