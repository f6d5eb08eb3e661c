package services

import (
	"context"

	"forumapi/internal/apperror"
	"forumapi/internal/entities"
	"forumapi/internal/repository"
)

type AddReplyUseCase struct {
	replies  repository.ReplyRepository
	threads  repository.ThreadRepository
	comments repository.CommentRepository
	cache    *ThreadCache
}

func NewAddReplyUseCase(
	replies repository.ReplyRepository,
	threads repository.ThreadRepository,
	comments repository.CommentRepository,
	cache *ThreadCache,
) *AddReplyUseCase {
	return &AddReplyUseCase{replies: replies, threads: threads, comments: comments, cache: cache}
}

func (uc *AddReplyUseCase) Execute(ctx context.Context, payload entities.Payload) (*entities.Reply, error) {
	addReply, err := entities.NewAddReply(payload)
	if err != nil {
		return nil, err
	}
	if err := uc.threads.VerifyAvailableThread(ctx, addReply.ThreadID); err != nil {
		return nil, err
	}
	// owner 只用来确认评论存在
	if _, err := uc.comments.GetCommentOwnerByID(ctx, addReply.CommentID); err != nil {
		return nil, err
	}

	reply, err := uc.replies.AddReply(ctx, addReply)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate()
	return reply, nil
}

type ValidationReplyUseCase struct {
	replies repository.ReplyRepository
}

func NewValidationReplyUseCase(replies repository.ReplyRepository) *ValidationReplyUseCase {
	return &ValidationReplyUseCase{replies: replies}
}

func (uc *ValidationReplyUseCase) CheckAvailabilityOwnerReply(ctx context.Context, replyID, owner string) error {
	replyOwner, err := uc.replies.GetReplyOwnerByID(ctx, replyID)
	if err != nil {
		return err
	}
	if replyOwner != owner {
		return apperror.FromCode(apperror.ReplyNotTheOwner)
	}
	return nil
}

type DeleteReplyUseCase struct {
	replies    repository.ReplyRepository
	threads    repository.ThreadRepository
	comments   repository.CommentRepository
	validation *ValidationReplyUseCase
	cache      *ThreadCache
}

func NewDeleteReplyUseCase(
	replies repository.ReplyRepository,
	threads repository.ThreadRepository,
	comments repository.CommentRepository,
	validation *ValidationReplyUseCase,
	cache *ThreadCache,
) *DeleteReplyUseCase {
	return &DeleteReplyUseCase{replies: replies, threads: threads, comments: comments, validation: validation, cache: cache}
}

func (uc *DeleteReplyUseCase) Execute(ctx context.Context, payload entities.Payload) error {
	deleteReply, err := entities.NewDeleteReply(payload)
	if err != nil {
		return err
	}
	if err := uc.threads.VerifyAvailableThread(ctx, deleteReply.ThreadID); err != nil {
		return err
	}
	if _, err := uc.comments.GetCommentOwnerByID(ctx, deleteReply.CommentID); err != nil {
		return err
	}
	if err := uc.validation.CheckAvailabilityOwnerReply(ctx, deleteReply.ReplyID, deleteReply.Owner); err != nil {
		return err
	}
	if err := uc.replies.DeleteReply(ctx, deleteReply.ReplyID); err != nil {
		return err
	}
	uc.cache.Invalidate()
	return nil
}
