package repository

import (
	"context"
	"time"

	"forumapi/internal/entities"
)

// ThreadRow 帖子详情查询结果（已关联用户名）
type ThreadRow struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

type CommentRow struct {
	ID       string
	Username string
	Date     time.Time
	Content  string
	IsDelete bool
}

type ReplyRow struct {
	ID       string
	Content  string
	Date     time.Time
	Username string
	IsDelete bool
}

type LikeRow struct {
	ID string
}

type ThreadRepository interface {
	AddThread(ctx context.Context, thread *entities.AddThread) (*entities.Thread, error)
	// GetThreadByID returns nil without error when no row matches.
	GetThreadByID(ctx context.Context, threadID string) (*ThreadRow, error)
	VerifyAvailableThread(ctx context.Context, threadID string) error
}

type CommentRepository interface {
	AddComment(ctx context.Context, comment *entities.AddComment) (*entities.Comment, error)
	// DeleteComment 软删除，重复调用也成功
	DeleteComment(ctx context.Context, commentID string) error
	// GetCommentsByThreadID 按 created_at 升序
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]CommentRow, error)
	GetCommentOwnerByID(ctx context.Context, commentID string) (string, error)
}

type ReplyRepository interface {
	AddReply(ctx context.Context, reply *entities.AddReply) (*entities.Reply, error)
	DeleteReply(ctx context.Context, replyID string) error
	GetRepliesByCommentID(ctx context.Context, commentID string) ([]ReplyRow, error)
	GetReplyOwnerByID(ctx context.Context, replyID string) (string, error)
}

type LikeRepository interface {
	AddLike(ctx context.Context, like *entities.NewLike) (string, error)
	DeleteLike(ctx context.Context, like *entities.NewLike) error
	// CheckLikeAvailability returns nil when the user has not liked the comment.
	CheckLikeAvailability(ctx context.Context, like *entities.NewLike) (*LikeRow, error)
	GetLikesCount(ctx context.Context, commentID string) (int, error)
}

type UserRepository interface {
	AddUser(ctx context.Context, user *entities.RegisterUser) (*entities.RegisteredUser, error)
	VerifyAvailableUsername(ctx context.Context, username string) error
	GetPasswordByUsername(ctx context.Context, username string) (string, error)
	GetIDByUsername(ctx context.Context, username string) (string, error)
}

type AuthenticationRepository interface {
	AddToken(ctx context.Context, token string) error
	CheckAvailabilityToken(ctx context.Context, token string) error
	DeleteToken(ctx context.Context, token string) error
}

// Repositories groups one adapter per contract.
type Repositories struct {
	Threads         ThreadRepository
	Comments        CommentRepository
	Replies         ReplyRepository
	Likes           LikeRepository
	Users           UserRepository
	Authentications AuthenticationRepository
}

// not-found messages returned to clients
const (
	msgThreadNotFound  = "thread tidak ditemukan"
	msgCommentNotFound = "comment tidak ditemukan"
	msgReplyNotFound   = "reply tidak ditemukan"

	msgUsernameTaken    = "username tidak tersedia"
	msgUsernameNotFound = "username tidak ditemukan"
	msgTokenNotFound    = "refresh token tidak ditemukan di database"
)
