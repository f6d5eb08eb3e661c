package repository

import (
	"context"
	"fmt"

	"forumapi/internal/entities"
	"forumapi/internal/utils"

	"gorm.io/gorm"
)

type LikeRepositoryPostgres struct {
	db          *gorm.DB
	idGenerator utils.IDGenerator
}

func NewLikeRepositoryPostgres(db *gorm.DB, idGenerator utils.IDGenerator) *LikeRepositoryPostgres {
	return &LikeRepositoryPostgres{db: db, idGenerator: idGenerator}
}

// AddLike 并发重复点赞会被 (user_id, comment_id) 唯一索引拒绝
func (r *LikeRepositoryPostgres) AddLike(ctx context.Context, like *entities.NewLike) (string, error) {
	id := "like-" + r.idGenerator()

	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (id, user_id, comment_id) VALUES (?, ?, ?)`,
		id, like.UserID, like.CommentID,
	).Error
	if err != nil {
		return "", fmt.Errorf("insert like: %w", err)
	}
	return id, nil
}

func (r *LikeRepositoryPostgres) DeleteLike(ctx context.Context, like *entities.NewLike) error {
	err := r.db.WithContext(ctx).Exec(
		`DELETE FROM likes WHERE user_id = ? AND comment_id = ?`,
		like.UserID, like.CommentID,
	).Error
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}

func (r *LikeRepositoryPostgres) CheckLikeAvailability(ctx context.Context, like *entities.NewLike) (*LikeRow, error) {
	var row LikeRow
	result := r.db.WithContext(ctx).Raw(
		`SELECT id FROM likes WHERE user_id = ? AND comment_id = ?`,
		like.UserID, like.CommentID,
	).Scan(&row)
	if result.Error != nil {
		return nil, fmt.Errorf("select like: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *LikeRepositoryPostgres) GetLikesCount(ctx context.Context, commentID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(
		`SELECT COUNT(likes.comment_id) AS likes FROM likes WHERE likes.comment_id = ?`,
		commentID,
	).Scan(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return int(count), nil
}
