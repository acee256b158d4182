package question

type QuestionContainer struct {
	Handler *Handler
	Service QuestionService
}

func NewQuestionContainer(repo Repository) *QuestionContainer {
	service := NewService(repo)
	handler := NewHandler(service)

	return &QuestionContainer{
		Handler: handler,
		Service: service,
	}
}
