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

type ThreadRepositoryPostgres struct {
	db          *gorm.DB
	idGenerator utils.IDGenerator
}

func NewThreadRepositoryPostgres(db *gorm.DB, idGenerator utils.IDGenerator) *ThreadRepositoryPostgres {
	return &ThreadRepositoryPostgres{db: db, idGenerator: idGenerator}
}

func (r *ThreadRepositoryPostgres) AddThread(ctx context.Context, thread *entities.AddThread) (*entities.Thread, error) {
	id := "thread-" + r.idGenerator()

	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO threads (id, title, body, owner, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, thread.Title, thread.Body, thread.Owner, time.Now(),
	).Error
	if err != nil {
		return nil, fmt.Errorf("insert thread: %w", err)
	}

	return entities.NewThread(id, thread.Title, thread.Owner)
}

func (r *ThreadRepositoryPostgres) GetThreadByID(ctx context.Context, threadID string) (*ThreadRow, error) {
	var row ThreadRow
	result := r.db.WithContext(ctx).Raw(
		`SELECT threads.id, threads.title, threads.body, threads.created_at AS date, users.username
		FROM threads
		JOIN users ON threads.owner = users.id
		WHERE threads.id = ?`,
		threadID,
	).Scan(&row)
	if result.Error != nil {
		return nil, fmt.Errorf("select thread: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *ThreadRepositoryPostgres) VerifyAvailableThread(ctx context.Context, threadID string) error {
	var id string
	result := r.db.WithContext(ctx).Raw(`SELECT id FROM threads WHERE id = ?`, threadID).Scan(&id)
	if result.Error != nil {
		return fmt.Errorf("verify thread: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound(msgThreadNotFound)
	}
	return nil
}
