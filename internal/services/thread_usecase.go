package services

import (
	"context"

	"forumapi/internal/apperror"
	"forumapi/internal/entities"
	"forumapi/internal/repository"
	"forumapi/internal/utils"
)

type AddThreadUseCase struct {
	threads repository.ThreadRepository
}

func NewAddThreadUseCase(threads repository.ThreadRepository) *AddThreadUseCase {
	return &AddThreadUseCase{threads: threads}
}

func (uc *AddThreadUseCase) Execute(ctx context.Context, payload entities.Payload) (*entities.Thread, error) {
	addThread, err := entities.NewAddThread(payload)
	if err != nil {
		return nil, err
	}
	return uc.threads.AddThread(ctx, addThread)
}

// ShowThreadUseCase assembles thread → comments (with like counts) → replies.
type ShowThreadUseCase struct {
	threads  repository.ThreadRepository
	comments repository.CommentRepository
	replies  repository.ReplyRepository
	likes    repository.LikeRepository
	cache    *ThreadCache
	render   func(string) string
}

func NewShowThreadUseCase(
	threads repository.ThreadRepository,
	comments repository.CommentRepository,
	replies repository.ReplyRepository,
	likes repository.LikeRepository,
	cache *ThreadCache,
) *ShowThreadUseCase {
	return &ShowThreadUseCase{
		threads:  threads,
		comments: comments,
		replies:  replies,
		likes:    likes,
		cache:    cache,
		render:   utils.RenderMarkdown,
	}
}

func (uc *ShowThreadUseCase) Execute(ctx context.Context, threadID string) (*entities.ThreadDetail, error) {
	cached, generation := uc.cache.Get(threadID)
	if cached != nil {
		return cached, nil
	}

	if err := uc.threads.VerifyAvailableThread(ctx, threadID); err != nil {
		return nil, err
	}
	row, err := uc.threads.GetThreadByID(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperror.FromCode(apperror.ThreadDetailMissingProperty)
	}

	thread, err := entities.NewThreadDetail(entities.ThreadDetail{
		ID:       row.ID,
		Title:    row.Title,
		Body:     row.Body,
		BodyHTML: uc.render(row.Body),
		Date:     row.Date,
		Username: row.Username,
	})
	if err != nil {
		return nil, err
	}

	commentRows, err := uc.comments.GetCommentsByThreadID(ctx, threadID)
	if err != nil {
		return nil, err
	}

	for _, c := range commentRows {
		likeCount, err := uc.likes.GetLikesCount(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		comment, err := entities.NewCommentDetail(entities.CommentDetailParams{
			ID:        c.ID,
			Username:  c.Username,
			Date:      c.Date,
			Content:   c.Content,
			IsDelete:  c.IsDelete,
			LikeCount: likeCount,
		})
		if err != nil {
			return nil, err
		}

		replyRows, err := uc.replies.GetRepliesByCommentID(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		for _, r := range replyRows {
			reply, err := entities.NewReplyDetail(entities.ReplyDetailParams{
				ID:       r.ID,
				Username: r.Username,
				Date:     r.Date,
				Content:  r.Content,
				IsDelete: r.IsDelete,
			})
			if err != nil {
				return nil, err
			}
			comment.AddReply(reply)
		}

		thread.AddComment(comment)
	}

	uc.cache.Set(thread, generation)
	return thread, nil
}
