package quiz

import "github.com/saulo-duarte/quizbank-lambda/internal/question"

type QuizContainer struct {
	Handler *Handler
	Service QuizService
}

func NewQuizContainer(repo Repository, questions question.Repository) *QuizContainer {
	service := NewService(repo, questions)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}
}
