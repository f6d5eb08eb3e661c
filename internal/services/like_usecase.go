package services

import (
	"context"

	"forumapi/internal/entities"
	"forumapi/internal/repository"
)

// UpdateLikeUseCase toggles a like: the first call likes, the next unlikes.
type UpdateLikeUseCase struct {
	likes    repository.LikeRepository
	comments repository.CommentRepository
	threads  repository.ThreadRepository
	cache    *ThreadCache
}

func NewUpdateLikeUseCase(
	likes repository.LikeRepository,
	comments repository.CommentRepository,
	threads repository.ThreadRepository,
	cache *ThreadCache,
) *UpdateLikeUseCase {
	return &UpdateLikeUseCase{likes: likes, comments: comments, threads: threads, cache: cache}
}

func (uc *UpdateLikeUseCase) Execute(ctx context.Context, payload entities.Payload) error {
	newLike, err := entities.NewNewLike(payload)
	if err != nil {
		return err
	}
	if err := uc.threads.VerifyAvailableThread(ctx, newLike.ThreadID); err != nil {
		return err
	}
	if _, err := uc.comments.GetCommentOwnerByID(ctx, newLike.CommentID); err != nil {
		return err
	}

	existing, err := uc.likes.CheckLikeAvailability(ctx, newLike)
	if err != nil {
		return err
	}
	if existing == nil {
		// 并发重复点赞由唯一索引兜底，失败的一方返回 500
		_, err = uc.likes.AddLike(ctx, newLike)
	} else {
		err = uc.likes.DeleteLike(ctx, newLike)
	}
	if err != nil {
		return err
	}

	uc.cache.Invalidate()
	return nil
}
