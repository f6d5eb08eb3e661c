package entities

import (
	"regexp"

	"forumapi/internal/apperror"
)

const usernameMaxLength = 50

var usernamePattern = regexp.MustCompile(`^[\w]+$`)

type RegisterUser struct {
	Username string
	Password string
	Fullname string
}

func NewRegisterUser(p Payload) (*RegisterUser, error) {
	err := p.check(apperror.RegisterUserMissingProperty, apperror.RegisterUserInvalidType,
		rule{field: "username", required: true},
		rule{field: "password", required: true},
		rule{field: "fullname", required: true},
	)
	if err != nil {
		return nil, err
	}

	username := p.str("username")
	if len(username) > usernameMaxLength {
		return nil, apperror.FromCode(apperror.RegisterUserUsernameLimitChar)
	}
	if !usernamePattern.MatchString(username) {
		return nil, apperror.FromCode(apperror.RegisterUserUsernameRestrictedChar)
	}

	return &RegisterUser{Username: username, Password: p.str("password"), Fullname: p.str("fullname")}, nil
}

type RegisteredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

func NewRegisteredUser(id, username, fullname string) (*RegisteredUser, error) {
	if id == "" || username == "" || fullname == "" {
		return nil, apperror.FromCode(apperror.RegisteredUserMissingProperty)
	}
	return &RegisteredUser{ID: id, Username: username, Fullname: fullname}, nil
}

type UserLogin struct {
	Username string
	Password string
}

func NewUserLogin(p Payload) (*UserLogin, error) {
	err := p.check(apperror.UserLoginMissingProperty, apperror.UserLoginInvalidType,
		rule{field: "username", required: true},
		rule{field: "password", required: true},
	)
	if err != nil {
		return nil, err
	}
	return &UserLogin{Username: p.str("username"), Password: p.str("password")}, nil
}
