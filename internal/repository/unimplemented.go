package repository

import (
	"context"

	"forumapi/internal/apperror"
	"forumapi/internal/entities"
)

// Unimplemented*Repository can be embedded by partial implementations; every
// method it provides fails with <X>_REPOSITORY.METHOD_NOT_IMPLEMENTED.

type UnimplementedThreadRepository struct{}

func (UnimplementedThreadRepository) AddThread(context.Context, *entities.AddThread) (*entities.Thread, error) {
	return nil, apperror.NotImplemented("THREAD_REPOSITORY")
}

func (UnimplementedThreadRepository) GetThreadByID(context.Context, string) (*ThreadRow, error) {
	return nil, apperror.NotImplemented("THREAD_REPOSITORY")
}

func (UnimplementedThreadRepository) VerifyAvailableThread(context.Context, string) error {
	return apperror.NotImplemented("THREAD_REPOSITORY")
}

type UnimplementedCommentRepository struct{}

func (UnimplementedCommentRepository) AddComment(context.Context, *entities.AddComment) (*entities.Comment, error) {
	return nil, apperror.NotImplemented("COMMENT_REPOSITORY")
}

func (UnimplementedCommentRepository) DeleteComment(context.Context, string) error {
	return apperror.NotImplemented("COMMENT_REPOSITORY")
}

func (UnimplementedCommentRepository) GetCommentsByThreadID(context.Context, string) ([]CommentRow, error) {
	return nil, apperror.NotImplemented("COMMENT_REPOSITORY")
}

func (UnimplementedCommentRepository) GetCommentOwnerByID(context.Context, string) (string, error) {
	return "", apperror.NotImplemented("COMMENT_REPOSITORY")
}

type UnimplementedReplyRepository struct{}

func (UnimplementedReplyRepository) AddReply(context.Context, *entities.AddReply) (*entities.Reply, error) {
	return nil, apperror.NotImplemented("REPLY_REPOSITORY")
}

func (UnimplementedReplyRepository) DeleteReply(context.Context, string) error {
	return apperror.NotImplemented("REPLY_REPOSITORY")
}

func (UnimplementedReplyRepository) GetRepliesByCommentID(context.Context, string) ([]ReplyRow, error) {
	return nil, apperror.NotImplemented("REPLY_REPOSITORY")
}

func (UnimplementedReplyRepository) GetReplyOwnerByID(context.Context, string) (string, error) {
	return "", apperror.NotImplemented("REPLY_REPOSITORY")
}

type UnimplementedLikeRepository struct{}

func (UnimplementedLikeRepository) AddLike(context.Context, *entities.NewLike) (string, error) {
	return "", apperror.NotImplemented("LIKE_REPOSITORY")
}

func (UnimplementedLikeRepository) DeleteLike(context.Context, *entities.NewLike) error {
	return apperror.NotImplemented("LIKE_REPOSITORY")
}

func (UnimplementedLikeRepository) CheckLikeAvailability(context.Context, *entities.NewLike) (*LikeRow, error) {
	return nil, apperror.NotImplemented("LIKE_REPOSITORY")
}

func (UnimplementedLikeRepository) GetLikesCount(context.Context, string) (int, error) {
	return 0, apperror.NotImplemented("LIKE_REPOSITORY")
}

type UnimplementedUserRepository struct{}

func (UnimplementedUserRepository) AddUser(context.Context, *entities.RegisterUser) (*entities.RegisteredUser, error) {
	return nil, apperror.NotImplemented("USER_REPOSITORY")
}

func (UnimplementedUserRepository) VerifyAvailableUsername(context.Context, string) error {
	return apperror.NotImplemented("USER_REPOSITORY")
}

func (UnimplementedUserRepository) GetPasswordByUsername(context.Context, string) (string, error) {
	return "", apperror.NotImplemented("USER_REPOSITORY")
}

func (UnimplementedUserRepository) GetIDByUsername(context.Context, string) (string, error) {
	return "", apperror.NotImplemented("USER_REPOSITORY")
}

type UnimplementedAuthenticationRepository struct{}

func (UnimplementedAuthenticationRepository) AddToken(context.Context, string) error {
	return apperror.NotImplemented("AUTHENTICATION_REPOSITORY")
}

func (UnimplementedAuthenticationRepository) CheckAvailabilityToken(context.Context, string) error {
	return apperror.NotImplemented("AUTHENTICATION_REPOSITORY")
}

func (UnimplementedAuthenticationRepository) DeleteToken(context.Context, string) error {
	return apperror.NotImplemented("AUTHENTICATION_REPOSITORY")
}

var (
	_ ThreadRepository         = UnimplementedThreadRepository{}
	_ CommentRepository        = UnimplementedCommentRepository{}
	_ ReplyRepository          = UnimplementedReplyRepository{}
	_ LikeRepository           = UnimplementedLikeRepository{}
	_ UserRepository           = UnimplementedUserRepository{}
	_ AuthenticationRepository = UnimplementedAuthenticationRepository{}
)
