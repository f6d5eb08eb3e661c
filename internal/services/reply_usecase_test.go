package services

import (
	"context"
	"testing"

	"forumapi/internal/apperror"
	"forumapi/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddReplyUseCase(t *testing.T) {
	ctx := context.Background()
	threads := new(mockThreadRepository)
	comments := new(mockCommentRepository)
	replies := new(mockReplyRepository)
	expected := &entities.Reply{ID: "reply-123", Content: "sebuah balasan", Owner: "user-123"}

	threads.On("VerifyAvailableThread", ctx, "thread-123").Return(nil).Once()
	comments.On("GetCommentOwnerByID", ctx, "comment-123").Return("user-456", nil).Once()
	replies.On("AddReply", ctx, &entities.AddReply{
		Content: "sebuah balasan", Owner: "user-123", CommentID: "comment-123", ThreadID: "thread-123",
	}).Return(expected, nil).Once()

	uc := NewAddReplyUseCase(replies, threads, comments, nil)
	reply, err := uc.Execute(ctx, entities.Payload{
		"content": "sebuah balasan", "owner": "user-123", "commentId": "comment-123", "threadId": "thread-123",
	})

	require.NoError(t, err)
	assert.Equal(t, expected, reply)
	threads.AssertExpectations(t)
	comments.AssertExpectations(t)
	replies.AssertExpectations(t)
}

func TestAddReplyUseCase_CommentNotFound(t *testing.T) {
	ctx := context.Background()
	threads := new(mockThreadRepository)
	comments := new(mockCommentRepository)
	replies := new(mockReplyRepository)
	threads.On("VerifyAvailableThread", ctx, "thread-123").Return(nil)
	comments.On("GetCommentOwnerByID", ctx, "comment-xxx").Return("", apperror.NotFound("comment tidak ditemukan"))

	uc := NewAddReplyUseCase(replies, threads, comments, nil)
	_, err := uc.Execute(ctx, entities.Payload{"content": "abc", "owner": "user-123", "commentId": "comment-xxx", "threadId": "thread-123"})

	assert.Equal(t, "comment tidak ditemukan", err.Error())
	replies.AssertNotCalled(t, "AddReply", mock.Anything, mock.Anything)
}

func TestAddReplyUseCase_MissingContent(t *testing.T) {
	replies := new(mockReplyRepository)
	threads := new(mockThreadRepository)
	uc := NewAddReplyUseCase(replies, threads, new(mockCommentRepository), nil)

	_, err := uc.Execute(context.Background(), entities.Payload{"owner": "user-123", "commentId": "comment-123", "threadId": "thread-123"})

	assert.True(t, apperror.HasCode(err, apperror.AddReplyMissingProperty))
	threads.AssertNumberOfCalls(t, "VerifyAvailableThread", 0)
}

func TestDeleteReplyUseCase(t *testing.T) {
	ctx := context.Background()
	payload := entities.Payload{"threadId": "thread-123", "commentId": "comment-123", "replyId": "reply-123", "owner": "user-123"}

	setup := func(replyOwner string) (*mockThreadRepository, *mockCommentRepository, *mockReplyRepository) {
		threads := new(mockThreadRepository)
		comments := new(mockCommentRepository)
		replies := new(mockReplyRepository)
		threads.On("VerifyAvailableThread", ctx, "thread-123").Return(nil)
		comments.On("GetCommentOwnerByID", ctx, "comment-123").Return("user-456", nil)
		replies.On("GetReplyOwnerByID", ctx, "reply-123").Return(replyOwner, nil)
		replies.On("DeleteReply", ctx, "reply-123").Return(nil)
		return threads, comments, replies
	}

	t.Run("owner deletes", func(t *testing.T) {
		threads, comments, replies := setup("user-123")
		uc := NewDeleteReplyUseCase(replies, threads, comments, NewValidationReplyUseCase(replies), nil)

		require.NoError(t, uc.Execute(ctx, payload))
		replies.AssertNumberOfCalls(t, "DeleteReply", 1)
	})

	t.Run("not the owner", func(t *testing.T) {
		threads, comments, replies := setup("user-456")
		uc := NewDeleteReplyUseCase(replies, threads, comments, NewValidationReplyUseCase(replies), nil)

		err := uc.Execute(ctx, payload)

		assert.True(t, apperror.HasCode(err, apperror.ReplyNotTheOwner))
		assert.Equal(t, "VALIDATION_REPLY.NOT_THE_OWNER", err.Error())
		replies.AssertNotCalled(t, "DeleteReply", mock.Anything, mock.Anything)
	})

	t.Run("wrong type", func(t *testing.T) {
		threads, comments, replies := setup("user-123")
		uc := NewDeleteReplyUseCase(replies, threads, comments, NewValidationReplyUseCase(replies), nil)

		err := uc.Execute(ctx, entities.Payload{"threadId": "thread-123", "commentId": "comment-123", "replyId": float64(1), "owner": "user-123"})

		assert.True(t, apperror.HasCode(err, apperror.DeleteReplyInvalidType))
		threads.AssertNumberOfCalls(t, "VerifyAvailableThread", 0)
		replies.AssertNumberOfCalls(t, "GetReplyOwnerByID", 0)
	})
}
