package result

import (
	"context"
	"strings"

	"github.com/saulo-duarte/quizbank-lambda/internal/question"
	"github.com/saulo-duarte/quizbank-lambda/internal/quiz"
	util "github.com/saulo-duarte/quizbank-lambda/internal/utils"
)

// Grade is the outcome of checking one answer sheet against a quiz.
type Grade struct {
	Score          util.Number
	CorrectCount   int
	CorrectAnswers map[string]string
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Matches reports whether submitted equals correct ignoring case and
// surrounding whitespace.
func Matches(submitted, correct string) bool {
	return normalize(submitted) == normalize(correct)
}

// Score grades answers against the quiz's questions. Questions that no longer
// exist are skipped, and answers for ids outside the quiz are ignored.
func Score(ctx context.Context, q *quiz.Quiz, questions question.Repository, answers AnswerSheet) (*Grade, error) {
	grade := &Grade{
		Score:          util.NewNumber(0),
		CorrectAnswers: make(map[string]string, len(q.QuestionIDs)),
	}
	mark := q.MarkValue()

	for _, id := range q.QuestionIDs {
		stored, err := questions.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if stored == nil {
			continue
		}

		if Matches(answers[id], stored.Answer) {
			grade.CorrectCount++
			grade.Score = grade.Score.Add(mark)
		}
		grade.CorrectAnswers[id] = stored.Answer
	}

	return grade, nil
}
