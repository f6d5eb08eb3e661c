package services

import (
	"context"

	"forumapi/internal/entities"
	"forumapi/internal/repository"
	"forumapi/internal/utils"
)

type AddUserUseCase struct {
	users repository.UserRepository
}

func NewAddUserUseCase(users repository.UserRepository) *AddUserUseCase {
	return &AddUserUseCase{users: users}
}

func (uc *AddUserUseCase) Execute(ctx context.Context, payload entities.Payload) (*entities.RegisteredUser, error) {
	registerUser, err := entities.NewRegisterUser(payload)
	if err != nil {
		return nil, err
	}
	if err := uc.users.VerifyAvailableUsername(ctx, registerUser.Username); err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(registerUser.Password)
	if err != nil {
		return nil, err
	}
	registerUser.Password = hashed

	return uc.users.AddUser(ctx, registerUser)
}
