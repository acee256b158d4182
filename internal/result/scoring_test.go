package result_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/saulo-duarte/quizbank-lambda/internal/memory"
	"github.com/saulo-duarte/quizbank-lambda/internal/question"
	"github.com/saulo-duarte/quizbank-lambda/internal/quiz"
	"github.com/saulo-duarte/quizbank-lambda/internal/result"
	util "github.com/saulo-duarte/quizbank-lambda/internal/utils"
)

func TestMatches(t *testing.T) {
	assert.True(t, result.Matches("paris", "Paris"))
	assert.True(t, result.Matches(" paris ", "Paris"))
	assert.True(t, result.Matches("PARIS", "Paris"))
	assert.False(t, result.Matches("", "Paris"))
	assert.False(t, result.Matches("43", "42"))
}

func TestScore(t *testing.T) {
	ctx := context.Background()
	questions := memory.NewQuestionRepository(
		&question.Question{ID: "q1", Text: "Capital of France?", Options: datatypes.JSONSlice[string]{"Paris", "Rome"}, Answer: "Paris"},
		&question.Question{ID: "q2", Text: "6 x 7?", Options: datatypes.JSONSlice[string]{"42", "43"}, Answer: "42"},
	)
	two := util.NewNumber(2)

	t.Run("weights correct answers by marks per question", func(t *testing.T) {
		q := &quiz.Quiz{ID: "quiz-abcd1234", MarksPerQuestion: &two, QuestionIDs: datatypes.JSONSlice[string]{"q1", "q2"}}

		grade, err := result.Score(ctx, q, questions, result.AnswerSheet{"q1": "paris", "q2": "43"})
		require.NoError(t, err)
		assert.Equal(t, 1, grade.CorrectCount)
		assert.True(t, grade.Score.Equal(util.NewNumber(2)))
		assert.Equal(t, map[string]string{"q1": "Paris", "q2": "42"}, grade.CorrectAnswers)
	})

	t.Run("defaults to one mark", func(t *testing.T) {
		q := &quiz.Quiz{ID: "quiz-1", QuestionIDs: datatypes.JSONSlice[string]{"q1", "q2"}}

		grade, err := result.Score(ctx, q, questions, result.AnswerSheet{"q1": "PARIS", "q2": " 42 "})
		require.NoError(t, err)
		assert.True(t, grade.Score.Equal(util.NewNumber(2)))
	})

	t.Run("fractional marks", func(t *testing.T) {
		half := util.NumberFromFloat(0.5)
		q := &quiz.Quiz{ID: "quiz-1", MarksPerQuestion: &half, QuestionIDs: datatypes.JSONSlice[string]{"q1", "q2"}}

		grade, err := result.Score(ctx, q, questions, result.AnswerSheet{"q1": "Paris", "q2": "42"})
		require.NoError(t, err)
		assert.True(t, grade.Score.Equal(util.NewNumber(1)))
	})

	t.Run("stored zero marks award nothing", func(t *testing.T) {
		zero := util.NewNumber(0)
		q := &quiz.Quiz{ID: "quiz-1", MarksPerQuestion: &zero, QuestionIDs: datatypes.JSONSlice[string]{"q1", "q2"}}

		grade, err := result.Score(ctx, q, questions, result.AnswerSheet{"q1": "Paris", "q2": "42"})
		require.NoError(t, err)
		assert.Equal(t, 2, grade.CorrectCount)
		assert.True(t, grade.Score.IsZero())
	})

	t.Run("unresolvable questions score zero", func(t *testing.T) {
		q := &quiz.Quiz{ID: "quiz-1", QuestionIDs: datatypes.JSONSlice[string]{"gone-1", "gone-2"}}

		grade, err := result.Score(ctx, q, questions, result.AnswerSheet{"gone-1": "x"})
		require.NoError(t, err)
		assert.True(t, grade.Score.IsZero())
		assert.Empty(t, grade.CorrectAnswers)
	})

	t.Run("answers outside the quiz are ignored", func(t *testing.T) {
		q := &quiz.Quiz{ID: "quiz-1", QuestionIDs: datatypes.JSONSlice[string]{"q1"}}

		grade, err := result.Score(ctx, q, questions, result.AnswerSheet{"q1": "Rome", "q2": "42"})
		require.NoError(t, err)
		assert.Equal(t, 0, grade.CorrectCount)
		assert.Equal(t, map[string]string{"q1": "Paris"}, grade.CorrectAnswers)
	})

	t.Run("store failure aborts grading", func(t *testing.T) {
		q := &quiz.Quiz{ID: "quiz-1", QuestionIDs: datatypes.JSONSlice[string]{"q1"}}

		_, err := result.Score(ctx, q, failingQuestions{}, result.AnswerSheet{"q1": "Paris"})
		assert.Error(t, err)
	})
}

type failingQuestions struct {
	question.Repository
}

func (failingQuestions) GetByID(context.Context, string) (*question.Question, error) {
	return nil, errors.New("store unavailable")
}
