package repository

import (
	"context"
	"fmt"

	"forumapi/internal/apperror"

	"gorm.io/gorm"
)

type AuthenticationRepositoryPostgres struct {
	db *gorm.DB
}

func NewAuthenticationRepositoryPostgres(db *gorm.DB) *AuthenticationRepositoryPostgres {
	return &AuthenticationRepositoryPostgres{db: db}
}

func (r *AuthenticationRepositoryPostgres) AddToken(ctx context.Context, token string) error {
	if err := r.db.WithContext(ctx).Exec(`INSERT INTO authentications (token) VALUES (?)`, token).Error; err != nil {
		return fmt.Errorf("insert token: %w", err)
	}
	return nil
}

func (r *AuthenticationRepositoryPostgres) CheckAvailabilityToken(ctx context.Context, token string) error {
	var found string
	result := r.db.WithContext(ctx).Raw(`SELECT token FROM authentications WHERE token = ?`, token).Scan(&found)
	if result.Error != nil {
		return fmt.Errorf("select token: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.Invariant(msgTokenNotFound)
	}
	return nil
}

func (r *AuthenticationRepositoryPostgres) DeleteToken(ctx context.Context, token string) error {
	if err := r.db.WithContext(ctx).Exec(`DELETE FROM authentications WHERE token = ?`, token).Error; err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
