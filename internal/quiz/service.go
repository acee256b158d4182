package quiz

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/saulo-duarte/quizbank-lambda/internal/apperror"
	"github.com/saulo-duarte/quizbank-lambda/internal/config"
	"github.com/saulo-duarte/quizbank-lambda/internal/question"
	util "github.com/saulo-duarte/quizbank-lambda/internal/utils"
)

type QuizService interface {
	CreateQuiz(ctx context.Context, dto CreateQuizDTO) (*Quiz, error)
	ListQuizzes(ctx context.Context) ([]*Quiz, error)
	GetQuizWithQuestions(ctx context.Context, quizID string) (*QuizWithQuestionsDTO, error)
}

type quizService struct {
	repo      Repository
	questions question.Repository
	now       func() time.Time
}

func NewService(repo Repository, questions question.Repository) QuizService {
	return &quizService{
		repo:      repo,
		questions: questions,
		now:       time.Now,
	}
}

// NewQuizID returns a "quiz-" prefixed identifier built from a random UUID.
func NewQuizID() string {
	return "quiz-" + uuid.NewString()[:8]
}

func (s *quizService) CreateQuiz(ctx context.Context, dto CreateQuizDTO) (*Quiz, error) {
	log := config.WithContext(ctx)

	if dto.Title == "" || dto.Topic == "" || dto.Duration.IsZero() || dto.Marks.IsZero() || len(dto.QuestionIDs) == 0 {
		return nil, apperror.Validation("Missing required fields")
	}
	if dto.MarksPerQuestion != nil && dto.MarksPerQuestion.IsNegative() {
		return nil, apperror.Validation("marks_per_question must not be negative")
	}

	quiz := &Quiz{
		ID:               NewQuizID(),
		Title:            dto.Title,
		Topic:            dto.Topic,
		Duration:         dto.Duration,
		Marks:            dto.Marks,
		MarksPerQuestion: dto.MarksPerQuestion,
		QuestionIDs:      datatypes.JSONSlice[string](dto.QuestionIDs),
		CreatedAt:        util.ISOTimestamp(s.now()),
	}

	if err := s.repo.Create(ctx, quiz); err != nil {
		log.WithError(err).Error("Failed to create quiz")
		return nil, apperror.Internal("create quiz", err)
	}

	log.WithField("quiz_id", quiz.ID).Info("Quiz created")
	return quiz, nil
}

func (s *quizService) ListQuizzes(ctx context.Context) ([]*Quiz, error) {
	quizzes, err := s.repo.List(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list quizzes")
		return nil, apperror.Internal("list quizzes", err)
	}
	if quizzes == nil {
		quizzes = []*Quiz{}
	}
	return quizzes, nil
}

func (s *quizService) GetQuizWithQuestions(ctx context.Context, quizID string) (*QuizWithQuestionsDTO, error) {
	log := config.WithContext(ctx).WithField("quiz_id", quizID)

	if quizID == "" {
		return nil, apperror.Validation("quiz_id is required")
	}

	quiz, err := s.repo.GetByID(ctx, quizID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz")
		return nil, apperror.Internal("get quiz", err)
	}
	if quiz == nil {
		return nil, apperror.NotFound("Quiz not found")
	}

	questions := make([]*question.Question, 0, len(quiz.QuestionIDs))
	for _, qid := range quiz.QuestionIDs {
		q, err := s.questions.GetByID(ctx, qid)
		if err != nil {
			log.WithError(err).WithField("question_id", qid).Error("Failed to fetch question")
			return nil, apperror.Internal("get question", err)
		}
		if q == nil {
			log.WithField("question_id", qid).Debug("Skipping deleted question")
			continue
		}
		questions = append(questions, q)
	}

	return &QuizWithQuestionsDTO{
		QuizID:    quiz.ID,
		Metadata:  quiz,
		Questions: questions,
	}, nil
}
