package result

import util "github.com/saulo-duarte/quizbank-lambda/internal/utils"

type SubmitQuizDTO struct {
	QuizID  string      `json:"quiz_id"`
	Answers AnswerSheet `json:"answers"`
}

// Submitter is the identity snapshot stored with a result.
type Submitter struct {
	Email string
	Name  string
}

type SubmitResponse struct {
	Message        string            `json:"message"`
	QuizID         string            `json:"quiz_id"`
	Score          util.Number       `json:"score"`
	CorrectAnswers map[string]string `json:"correct_answers"`
	ResultID       string            `json:"result_id"`
}

type MyResultsResponse struct {
	User    string    `json:"user"`
	Email   string    `json:"email"`
	Results []*Result `json:"results"`
}
