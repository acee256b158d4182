package result

import (
	"github.com/saulo-duarte/quizbank-lambda/internal/question"
	"github.com/saulo-duarte/quizbank-lambda/internal/quiz"
)

type ResultContainer struct {
	Handler *Handler
	Service ResultService
}

func NewResultContainer(repo Repository, quizzes quiz.Repository, questions question.Repository) *ResultContainer {
	service := NewService(repo, quizzes, questions)
	handler := NewHandler(service)

	return &ResultContainer{
		Handler: handler,
		Service: service,
	}
}
