package user

import (
	"context"

	"github.com/saulo-duarte/quizbank-lambda/internal/apperror"
	"github.com/saulo-duarte/quizbank-lambda/internal/config"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]User, error)
}

type userService struct {
	directory Directory
}

func NewService(directory Directory) UserService {
	return &userService{directory: directory}
}

func (s *userService) ListUsers(ctx context.Context) ([]User, error) {
	users, err := s.directory.ListUsers(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list users")
		return nil, apperror.Internal("list users", err)
	}
	if users == nil {
		users = []User{}
	}
	return users, nil
}
