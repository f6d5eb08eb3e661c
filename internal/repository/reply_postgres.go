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

type ReplyRepositoryPostgres struct {
	db          *gorm.DB
	idGenerator utils.IDGenerator
}

func NewReplyRepositoryPostgres(db *gorm.DB, idGenerator utils.IDGenerator) *ReplyRepositoryPostgres {
	return &ReplyRepositoryPostgres{db: db, idGenerator: idGenerator}
}

func (r *ReplyRepositoryPostgres) AddReply(ctx context.Context, reply *entities.AddReply) (*entities.Reply, error) {
	id := "reply-" + r.idGenerator()

	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO replies (id, content, comment_id, owner, created_at, is_delete) VALUES (?, ?, ?, ?, ?, false)`,
		id, reply.Content, reply.CommentID, reply.Owner, time.Now(),
	).Error
	if err != nil {
		return nil, fmt.Errorf("insert reply: %w", err)
	}

	return entities.NewReply(id, reply.Content, reply.Owner)
}

func (r *ReplyRepositoryPostgres) DeleteReply(ctx context.Context, replyID string) error {
	err := r.db.WithContext(ctx).Exec(`UPDATE replies SET is_delete = true WHERE id = ?`, replyID).Error
	if err != nil {
		return fmt.Errorf("soft delete reply: %w", err)
	}
	return nil
}

func (r *ReplyRepositoryPostgres) GetRepliesByCommentID(ctx context.Context, commentID string) ([]ReplyRow, error) {
	rows := []ReplyRow{}
	err := r.db.WithContext(ctx).Raw(
		`SELECT replies.id, replies.content, replies.created_at AS date, users.username, replies.is_delete
		FROM replies
		JOIN users ON replies.owner = users.id
		WHERE replies.comment_id = ?
		ORDER BY replies.created_at ASC`,
		commentID,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("select replies: %w", err)
	}
	return rows, nil
}

func (r *ReplyRepositoryPostgres) GetReplyOwnerByID(ctx context.Context, replyID string) (string, error) {
	var owner string
	result := r.db.WithContext(ctx).Raw(`SELECT owner FROM replies WHERE id = ?`, replyID).Scan(&owner)
	if result.Error != nil {
		return "", fmt.Errorf("select reply owner: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return "", apperror.NotFound(msgReplyNotFound)
	}
	return owner, nil
}
