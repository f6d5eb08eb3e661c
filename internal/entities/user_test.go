package entities

import (
	"strings"
	"testing"

	"forumapi/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUser(t *testing.T) {
	cases := []struct {
		name    string
		payload Payload
		code    apperror.Code
	}{
		{"missing fullname", Payload{"username": "abc", "password": "abc"}, apperror.RegisterUserMissingProperty},
		{"wrong type", Payload{"username": float64(123), "password": "abc", "fullname": true}, apperror.RegisterUserInvalidType},
		{"too long", Payload{"username": strings.Repeat("a", 51), "password": "abc", "fullname": "abc"}, apperror.RegisterUserUsernameLimitChar},
		{"restricted", Payload{"username": "dico ding", "password": "abc", "fullname": "abc"}, apperror.RegisterUserUsernameRestrictedChar},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegisterUser(tc.payload)
			assert.True(t, apperror.HasCode(err, tc.code), "got %v", err)
		})
	}

	user, err := NewRegisterUser(Payload{"username": "dicoding", "password": "abc", "fullname": "Dicoding Indonesia"})
	require.NoError(t, err)
	assert.Equal(t, &RegisterUser{Username: "dicoding", Password: "abc", Fullname: "Dicoding Indonesia"}, user)
}

func TestNewUserLogin(t *testing.T) {
	_, err := NewUserLogin(Payload{"username": "dicoding"})
	assert.True(t, apperror.HasCode(err, apperror.UserLoginMissingProperty))

	_, err = NewUserLogin(Payload{"username": "dicoding", "password": float64(12345)})
	assert.True(t, apperror.HasCode(err, apperror.UserLoginInvalidType))

	login, err := NewUserLogin(Payload{"username": "dicoding", "password": "secret"})
	require.NoError(t, err)
	assert.Equal(t, "secret", login.Password)
}

func TestRefreshTokenFromPayload(t *testing.T) {
	_, err := RefreshTokenFromPayload(Payload{})
	assert.True(t, apperror.HasCode(err, apperror.RefreshAuthenticationMissingToken))

	_, err = LogoutTokenFromPayload(Payload{"refreshToken": float64(1)})
	assert.True(t, apperror.HasCode(err, apperror.DeleteAuthenticationInvalidType))

	token, err := RefreshTokenFromPayload(Payload{"refreshToken": "abc"})
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestNewNewLike(t *testing.T) {
	_, err := NewNewLike(Payload{"threadId": "thread-123", "commentId": "comment-123"})
	assert.True(t, apperror.HasCode(err, apperror.NewLikeMissingParameter))

	_, err = NewNewLike(Payload{"threadId": "thread-123", "commentId": "comment-123", "userId": float64(123)})
	assert.True(t, apperror.HasCode(err, apperror.NewLikeInvalidType))

	like, err := NewNewLike(Payload{"threadId": "thread-123", "commentId": "comment-123", "userId": "user-123"})
	require.NoError(t, err)
	assert.Equal(t, &NewLike{ThreadID: "thread-123", CommentID: "comment-123", UserID: "user-123"}, like)
}
