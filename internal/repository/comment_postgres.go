package repository

import (
	"context"
	"fmt"
	"time"

	"forumapi/internal/apperror"
	"forumapi/internal/entities"
	"forumapi/internal/utils"

	"gorm.io/gorm"
)

type CommentRepositoryPostgres struct {
	db          *gorm.DB
	idGenerator utils.IDGenerator
}

func NewCommentRepositoryPostgres(db *gorm.DB, idGenerator utils.IDGenerator) *CommentRepositoryPostgres {
	return &CommentRepositoryPostgres{db: db, idGenerator: idGenerator}
}

func (r *CommentRepositoryPostgres) AddComment(ctx context.Context, comment *entities.AddComment) (*entities.Comment, error) {
	id := "comment-" + r.idGenerator()

	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO comments (id, content, thread_id, owner, created_at, is_delete) VALUES (?, ?, ?, ?, ?, false)`,
		id, comment.Content, comment.ThreadID, comment.Owner, time.Now(),
	).Error
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	return entities.NewComment(id, comment.Content, comment.Owner)
}

// DeleteComment 只标记 is_delete，不存在的 id 也不报错
func (r *CommentRepositoryPostgres) DeleteComment(ctx context.Context, commentID string) error {
	err := r.db.WithContext(ctx).Exec(`UPDATE comments SET is_delete = true WHERE id = ?`, commentID).Error
	if err != nil {
		return fmt.Errorf("soft delete comment: %w", err)
	}
	return nil
}

func (r *CommentRepositoryPostgres) GetCommentsByThreadID(ctx context.Context, threadID string) ([]CommentRow, error) {
	rows := []CommentRow{}
	err := r.db.WithContext(ctx).Raw(
		`SELECT comments.id, users.username, comments.created_at AS date, comments.content, comments.is_delete
		FROM comments
		JOIN users ON comments.owner = users.id
		WHERE comments.thread_id = ?
		ORDER BY comments.created_at ASC`,
		threadID,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}
	return rows, nil
}

func (r *CommentRepositoryPostgres) GetCommentOwnerByID(ctx context.Context, commentID string) (string, error) {
	var owner string
	result := r.db.WithContext(ctx).Raw(`SELECT owner FROM comments WHERE id = ?`, commentID).Scan(&owner)
	if result.Error != nil {
		return "", fmt.Errorf("select comment owner: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return "", apperror.NotFound(msgCommentNotFound)
	}
	return owner, nil
}
