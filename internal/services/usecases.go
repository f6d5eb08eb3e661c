package services

import (
	"forumapi/internal/repository"
	"forumapi/internal/utils"
)

// UseCases holds every use case of the API. They keep no request state, so
// one instance is built at startup and shared by all handlers.
type UseCases struct {
	AddThread     *AddThreadUseCase
	ShowThread    *ShowThreadUseCase
	AddComment    *AddCommentUseCase
	DeleteComment *DeleteCommentUseCase
	AddReply      *AddReplyUseCase
	DeleteReply   *DeleteReplyUseCase
	UpdateLike    *UpdateLikeUseCase

	AddUser               *AddUserUseCase
	LoginUser             *LoginUserUseCase
	RefreshAuthentication *RefreshAuthenticationUseCase
	LogoutUser            *LogoutUserUseCase
}

// Deps are the shared collaborators of the use cases. Cache may be nil.
type Deps struct {
	Repos  *repository.Repositories
	Tokens *utils.TokenManager
	Cache  *utils.Cache
}

func NewUseCases(d Deps) *UseCases {
	r := d.Repos
	validationComment := NewValidationCommentUseCase(r.Comments)
	validationReply := NewValidationReplyUseCase(r.Replies)
	threadCache := NewThreadCache(d.Cache)

	return &UseCases{
		AddThread:     NewAddThreadUseCase(r.Threads),
		ShowThread:    NewShowThreadUseCase(r.Threads, r.Comments, r.Replies, r.Likes, threadCache),
		AddComment:    NewAddCommentUseCase(r.Comments, r.Threads, threadCache),
		DeleteComment: NewDeleteCommentUseCase(r.Comments, r.Threads, validationComment, threadCache),
		AddReply:      NewAddReplyUseCase(r.Replies, r.Threads, r.Comments, threadCache),
		DeleteReply:   NewDeleteReplyUseCase(r.Replies, r.Threads, r.Comments, validationReply, threadCache),
		UpdateLike:    NewUpdateLikeUseCase(r.Likes, r.Comments, r.Threads, threadCache),

		AddUser:               NewAddUserUseCase(r.Users),
		LoginUser:             NewLoginUserUseCase(r.Users, r.Authentications, d.Tokens),
		RefreshAuthentication: NewRefreshAuthenticationUseCase(r.Authentications, d.Tokens),
		LogoutUser:            NewLogoutUserUseCase(r.Authentications),
	}
}
