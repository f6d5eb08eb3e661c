package services

import (
	"context"

	"forumapi/internal/apperror"
	"forumapi/internal/entities"
	"forumapi/internal/repository"
)

type AddCommentUseCase struct {
	comments repository.CommentRepository
	threads  repository.ThreadRepository
	cache    *ThreadCache
}

func NewAddCommentUseCase(comments repository.CommentRepository, threads repository.ThreadRepository, cache *ThreadCache) *AddCommentUseCase {
	return &AddCommentUseCase{comments: comments, threads: threads, cache: cache}
}

// Execute validates the payload before touching storage, then checks that
// the thread exists.
func (uc *AddCommentUseCase) Execute(ctx context.Context, payload entities.Payload) (*entities.Comment, error) {
	addComment, err := entities.NewAddComment(payload)
	if err != nil {
		return nil, err
	}
	if err := uc.threads.VerifyAvailableThread(ctx, addComment.ThreadID); err != nil {
		return nil, err
	}

	comment, err := uc.comments.AddComment(ctx, addComment)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate()
	return comment, nil
}

// ValidationCommentUseCase 校验评论归属
type ValidationCommentUseCase struct {
	comments repository.CommentRepository
}

func NewValidationCommentUseCase(comments repository.CommentRepository) *ValidationCommentUseCase {
	return &ValidationCommentUseCase{comments: comments}
}

func (uc *ValidationCommentUseCase) CheckAvailabilityOwnerComment(ctx context.Context, commentID, owner string) error {
	commentOwner, err := uc.comments.GetCommentOwnerByID(ctx, commentID)
	if err != nil {
		return err
	}
	if commentOwner != owner {
		return apperror.FromCode(apperror.CommentNotTheOwner)
	}
	return nil
}

type DeleteCommentUseCase struct {
	comments   repository.CommentRepository
	threads    repository.ThreadRepository
	validation *ValidationCommentUseCase
	cache      *ThreadCache
}

func NewDeleteCommentUseCase(
	comments repository.CommentRepository,
	threads repository.ThreadRepository,
	validation *ValidationCommentUseCase,
	cache *ThreadCache,
) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{comments: comments, threads: threads, validation: validation, cache: cache}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, payload entities.Payload) error {
	deleteComment, err := entities.NewDeleteComment(payload)
	if err != nil {
		return err
	}
	if err := uc.threads.VerifyAvailableThread(ctx, deleteComment.ThreadID); err != nil {
		return err
	}
	if err := uc.validation.CheckAvailabilityOwnerComment(ctx, deleteComment.CommentID, deleteComment.Owner); err != nil {
		return err
	}
	// 检查与删除之间没有事务，与并发删除竞争时结果同样是 is_delete = true
	if err := uc.comments.DeleteComment(ctx, deleteComment.CommentID); err != nil {
		return err
	}
	uc.cache.Invalidate()
	return nil
}
