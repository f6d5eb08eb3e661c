package entities

import "forumapi/internal/apperror"

// NewAuth is the token pair issued on login.
type NewAuth struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func NewNewAuth(accessToken, refreshToken string) (*NewAuth, error) {
	if accessToken == "" || refreshToken == "" {
		return nil, apperror.FromCode(apperror.NewAuthMissingProperty)
	}
	return &NewAuth{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RefreshTokenFromPayload reads refreshToken for PUT /authentications.
func RefreshTokenFromPayload(p Payload) (string, error) {
	err := p.check(apperror.RefreshAuthenticationMissingToken, apperror.RefreshAuthenticationInvalidType,
		rule{field: "refreshToken", required: true},
	)
	if err != nil {
		return "", err
	}
	return p.str("refreshToken"), nil
}

// LogoutTokenFromPayload reads refreshToken for DELETE /authentications.
func LogoutTokenFromPayload(p Payload) (string, error) {
	err := p.check(apperror.DeleteAuthenticationMissingToken, apperror.DeleteAuthenticationInvalidType,
		rule{field: "refreshToken", required: true},
	)
	if err != nil {
		return "", err
	}
	return p.str("refreshToken"), nil
}
