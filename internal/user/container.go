package user

type UserContainer struct {
	Handler *Handler
	Service UserService
}

func NewUserContainer(directory Directory) *UserContainer {
	service := NewService(directory)
	handler := NewHandler(service)

	return &UserContainer{
		Handler: handler,
		Service: service,
	}
}
