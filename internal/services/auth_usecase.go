package services

import (
	"context"

	"forumapi/internal/entities"
	"forumapi/internal/repository"
	"forumapi/internal/utils"
)

type LoginUserUseCase struct {
	users  repository.UserRepository
	auths  repository.AuthenticationRepository
	tokens *utils.TokenManager
}

func NewLoginUserUseCase(users repository.UserRepository, auths repository.AuthenticationRepository, tokens *utils.TokenManager) *LoginUserUseCase {
	return &LoginUserUseCase{users: users, auths: auths, tokens: tokens}
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, payload entities.Payload) (*entities.NewAuth, error) {
	login, err := entities.NewUserLogin(payload)
	if err != nil {
		return nil, err
	}

	hashed, err := uc.users.GetPasswordByUsername(ctx, login.Username)
	if err != nil {
		return nil, err
	}
	if err := utils.CheckPassword(login.Password, hashed); err != nil {
		return nil, err
	}
	userID, err := uc.users.GetIDByUsername(ctx, login.Username)
	if err != nil {
		return nil, err
	}

	accessToken, err := uc.tokens.CreateAccessToken(userID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := uc.tokens.CreateRefreshToken(userID)
	if err != nil {
		return nil, err
	}
	if err := uc.auths.AddToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	return entities.NewNewAuth(accessToken, refreshToken)
}

type RefreshAuthenticationUseCase struct {
	auths  repository.AuthenticationRepository
	tokens *utils.TokenManager
}

func NewRefreshAuthenticationUseCase(auths repository.AuthenticationRepository, tokens *utils.TokenManager) *RefreshAuthenticationUseCase {
	return &RefreshAuthenticationUseCase{auths: auths, tokens: tokens}
}

// Execute returns a fresh access token for a stored, correctly signed refresh token.
func (uc *RefreshAuthenticationUseCase) Execute(ctx context.Context, payload entities.Payload) (string, error) {
	refreshToken, err := entities.RefreshTokenFromPayload(payload)
	if err != nil {
		return "", err
	}

	userID, err := uc.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}
	if err := uc.auths.CheckAvailabilityToken(ctx, refreshToken); err != nil {
		return "", err
	}

	return uc.tokens.CreateAccessToken(userID)
}

type LogoutUserUseCase struct {
	auths repository.AuthenticationRepository
}

func NewLogoutUserUseCase(auths repository.AuthenticationRepository) *LogoutUserUseCase {
	return &LogoutUserUseCase{auths: auths}
}

func (uc *LogoutUserUseCase) Execute(ctx context.Context, payload entities.Payload) error {
	refreshToken, err := entities.LogoutTokenFromPayload(payload)
	if err != nil {
		return err
	}
	if err := uc.auths.CheckAvailabilityToken(ctx, refreshToken); err != nil {
		return err
	}
	return uc.auths.DeleteToken(ctx, refreshToken)
}
