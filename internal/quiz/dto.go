package quiz

import (
	"github.com/saulo-duarte/quizbank-lambda/internal/question"
	util "github.com/saulo-duarte/quizbank-lambda/internal/utils"
)

type CreateQuizDTO struct {
	Title            string       `json:"title"`
	Topic            string       `json:"topic"`
	Duration         util.Number  `json:"duration"`
	Marks            util.Number  `json:"marks"`
	MarksPerQuestion *util.Number `json:"marks_per_question,omitempty"`
	QuestionIDs      []string     `json:"question_ids"`
}

type CreateQuizResponse struct {
	Message string `json:"message"`
	QuizID  string `json:"quiz_id"`
}

type QuizWithQuestionsDTO struct {
	QuizID    string               `json:"quiz_id"`
	Metadata  *Quiz                `json:"metadata"`
	Questions []*question.Question `json:"questions"`
}
