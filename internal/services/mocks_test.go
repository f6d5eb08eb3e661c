package services

import (
	"context"

	"forumapi/internal/entities"
	"forumapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type mockThreadRepository struct {
	mock.Mock
}

func (m *mockThreadRepository) AddThread(ctx context.Context, thread *entities.AddThread) (*entities.Thread, error) {
	args := m.Called(ctx, thread)
	t, _ := args.Get(0).(*entities.Thread)
	return t, args.Error(1)
}

func (m *mockThreadRepository) GetThreadByID(ctx context.Context, threadID string) (*repository.ThreadRow, error) {
	args := m.Called(ctx, threadID)
	row, _ := args.Get(0).(*repository.ThreadRow)
	return row, args.Error(1)
}

func (m *mockThreadRepository) VerifyAvailableThread(ctx context.Context, threadID string) error {
	return m.Called(ctx, threadID).Error(0)
}

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) AddComment(ctx context.Context, comment *entities.AddComment) (*entities.Comment, error) {
	args := m.Called(ctx, comment)
	c, _ := args.Get(0).(*entities.Comment)
	return c, args.Error(1)
}

func (m *mockCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	return m.Called(ctx, commentID).Error(0)
}

func (m *mockCommentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]repository.CommentRow, error) {
	args := m.Called(ctx, threadID)
	rows, _ := args.Get(0).([]repository.CommentRow)
	return rows, args.Error(1)
}

func (m *mockCommentRepository) GetCommentOwnerByID(ctx context.Context, commentID string) (string, error) {
	args := m.Called(ctx, commentID)
	return args.String(0), args.Error(1)
}

type mockReplyRepository struct {
	mock.Mock
}

func (m *mockReplyRepository) AddReply(ctx context.Context, reply *entities.AddReply) (*entities.Reply, error) {
	args := m.Called(ctx, reply)
	r, _ := args.Get(0).(*entities.Reply)
	return r, args.Error(1)
}

func (m *mockReplyRepository) DeleteReply(ctx context.Context, replyID string) error {
	return m.Called(ctx, replyID).Error(0)
}

func (m *mockReplyRepository) GetRepliesByCommentID(ctx context.Context, commentID string) ([]repository.ReplyRow, error) {
	args := m.Called(ctx, commentID)
	rows, _ := args.Get(0).([]repository.ReplyRow)
	return rows, args.Error(1)
}

func (m *mockReplyRepository) GetReplyOwnerByID(ctx context.Context, replyID string) (string, error) {
	args := m.Called(ctx, replyID)
	return args.String(0), args.Error(1)
}

type mockLikeRepository struct {
	mock.Mock
}

func (m *mockLikeRepository) AddLike(ctx context.Context, like *entities.NewLike) (string, error) {
	args := m.Called(ctx, like)
	return args.String(0), args.Error(1)
}

func (m *mockLikeRepository) DeleteLike(ctx context.Context, like *entities.NewLike) error {
	return m.Called(ctx, like).Error(0)
}

func (m *mockLikeRepository) CheckLikeAvailability(ctx context.Context, like *entities.NewLike) (*repository.LikeRow, error) {
	args := m.Called(ctx, like)
	row, _ := args.Get(0).(*repository.LikeRow)
	return row, args.Error(1)
}

func (m *mockLikeRepository) GetLikesCount(ctx context.Context, commentID string) (int, error) {
	args := m.Called(ctx, commentID)
	return args.Int(0), args.Error(1)
}

// partial doubles: only the methods a test stubs are overridden

type ownerOnlyCommentRepository struct {
	repository.UnimplementedCommentRepository
	owner string
}

func (r ownerOnlyCommentRepository) GetCommentOwnerByID(context.Context, string) (string, error) {
	return r.owner, nil
}
