package repository

import (
	"context"
	"testing"

	"forumapi/internal/apperror"
	"forumapi/internal/entities"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryPostgres_AddUser(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepositoryPostgres(db, fakeIDGenerator)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs("user-123", "dicoding", "hashed", "Dicoding Indonesia", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, err := repo.AddUser(context.Background(), &entities.RegisterUser{Username: "dicoding", Password: "hashed", Fullname: "Dicoding Indonesia"})

	require.NoError(t, err)
	assert.Equal(t, &entities.RegisteredUser{ID: "user-123", Username: "dicoding", Fullname: "Dicoding Indonesia"}, user)
}

func TestUserRepositoryPostgres_VerifyAvailableUsername(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepositoryPostgres(db, fakeIDGenerator)

	mock.ExpectQuery(`SELECT id FROM users WHERE username = \$1`).
		WithArgs("dicoding").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-123"))
	mock.ExpectQuery(`SELECT id FROM users WHERE username = \$1`).
		WithArgs("baru").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.VerifyAvailableUsername(context.Background(), "dicoding")
	assert.Equal(t, apperror.KindInvariant, apperror.KindOf(err))

	assert.NoError(t, repo.VerifyAvailableUsername(context.Background(), "baru"))
}

func TestUserRepositoryPostgres_GetPasswordByUsername(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepositoryPostgres(db, fakeIDGenerator)

	mock.ExpectQuery(`SELECT password FROM users WHERE username = \$1`).
		WithArgs("dicoding").
		WillReturnRows(sqlmock.NewRows([]string{"password"}).AddRow("hashed"))
	mock.ExpectQuery(`SELECT password FROM users`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"password"}))

	password, err := repo.GetPasswordByUsername(context.Background(), "dicoding")
	require.NoError(t, err)
	assert.Equal(t, "hashed", password)

	_, err = repo.GetPasswordByUsername(context.Background(), "ghost")
	assert.Equal(t, "username tidak ditemukan", err.Error())
}

func TestUserRepositoryPostgres_GetIDByUsername(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewUserRepositoryPostgres(db, fakeIDGenerator)

	mock.ExpectQuery(`SELECT id FROM users WHERE username = \$1`).
		WithArgs("dicoding").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-123"))

	id, err := repo.GetIDByUsername(context.Background(), "dicoding")
	require.NoError(t, err)
	assert.Equal(t, "user-123", id)
}
