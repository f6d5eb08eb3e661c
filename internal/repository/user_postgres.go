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

type UserRepositoryPostgres struct {
	db          *gorm.DB
	idGenerator utils.IDGenerator
}

func NewUserRepositoryPostgres(db *gorm.DB, idGenerator utils.IDGenerator) *UserRepositoryPostgres {
	return &UserRepositoryPostgres{db: db, idGenerator: idGenerator}
}

// AddUser expects user.Password to be hashed already.
func (r *UserRepositoryPostgres) AddUser(ctx context.Context, user *entities.RegisterUser) (*entities.RegisteredUser, error) {
	id := "user-" + r.idGenerator()

	err := r.db.WithContext(ctx).Exec(
		`INSERT INTO users (id, username, password, fullname, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, user.Username, user.Password, user.Fullname, time.Now(),
	).Error
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return entities.NewRegisteredUser(id, user.Username, user.Fullname)
}

func (r *UserRepositoryPostgres) VerifyAvailableUsername(ctx context.Context, username string) error {
	var id string
	result := r.db.WithContext(ctx).Raw(`SELECT id FROM users WHERE username = ?`, username).Scan(&id)
	if result.Error != nil {
		return fmt.Errorf("verify username: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return apperror.Invariant(msgUsernameTaken)
	}
	return nil
}

func (r *UserRepositoryPostgres) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	var password string
	result := r.db.WithContext(ctx).Raw(`SELECT password FROM users WHERE username = ?`, username).Scan(&password)
	if result.Error != nil {
		return "", fmt.Errorf("select password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return "", apperror.Invariant(msgUsernameNotFound)
	}
	return password, nil
}

func (r *UserRepositoryPostgres) GetIDByUsername(ctx context.Context, username string) (string, error) {
	var id string
	result := r.db.WithContext(ctx).Raw(`SELECT id FROM users WHERE username = ?`, username).Scan(&id)
	if result.Error != nil {
		return "", fmt.Errorf("select user id: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return "", apperror.Invariant(msgUsernameNotFound)
	}
	return id, nil
}
