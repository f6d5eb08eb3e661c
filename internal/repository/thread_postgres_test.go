package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"forumapi/internal/apperror"
	"forumapi/internal/entities"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadRepositoryPostgres_AddThread(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewThreadRepositoryPostgres(db, fakeIDGenerator)

	mock.ExpectExec(`INSERT INTO threads \(id, title, body, owner, created_at\)`).
		WithArgs("thread-123", "sebuah thread", "sebuah body thread", "user-123", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	thread, err := repo.AddThread(context.Background(), &entities.AddThread{
		Title: "sebuah thread",
		Body:  "sebuah body thread",
		Owner: "user-123",
	})

	require.NoError(t, err)
	assert.Equal(t, &entities.Thread{ID: "thread-123", Title: "sebuah thread", Owner: "user-123"}, thread)
}

func TestThreadRepositoryPostgres_AddThread_DBError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewThreadRepositoryPostgres(db, fakeIDGenerator)
	dbErr := errors.New("connection reset")

	mock.ExpectExec(`INSERT INTO threads`).WillReturnError(dbErr)

	_, err := repo.AddThread(context.Background(), &entities.AddThread{Title: "a", Body: "b", Owner: "user-123"})

	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, apperror.KindUnknown, apperror.KindOf(err))
}

func TestThreadRepositoryPostgres_GetThreadByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewThreadRepositoryPostgres(db, fakeIDGenerator)
	date := time.Date(2024, 10, 10, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT threads.id, threads.title, threads.body, threads.created_at AS date, users.username FROM threads JOIN users`).
		WithArgs("thread-123").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "date", "username"}).
			AddRow("thread-123", "sebuah thread", "sebuah body", date, "dicoding"))

	row, err := repo.GetThreadByID(context.Background(), "thread-123")

	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, ThreadRow{ID: "thread-123", Title: "sebuah thread", Body: "sebuah body", Date: date, Username: "dicoding"}, *row)
}

func TestThreadRepositoryPostgres_GetThreadByID_NoRow(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewThreadRepositoryPostgres(db, fakeIDGenerator)

	mock.ExpectQuery(`FROM threads`).
		WithArgs("thread-xxx").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "date", "username"}))

	row, err := repo.GetThreadByID(context.Background(), "thread-xxx")

	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestThreadRepositoryPostgres_VerifyAvailableThread(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewThreadRepositoryPostgres(db, fakeIDGenerator)

		mock.ExpectQuery(`SELECT id FROM threads WHERE id = \$1`).
			WithArgs("thread-xxx").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		err := repo.VerifyAvailableThread(context.Background(), "thread-xxx")

		require.Error(t, err)
		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
		assert.Equal(t, "thread tidak ditemukan", err.Error())
	})

	t.Run("found", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewThreadRepositoryPostgres(db, fakeIDGenerator)

		mock.ExpectQuery(`SELECT id FROM threads WHERE id = \$1`).
			WithArgs("thread-123").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("thread-123"))

		assert.NoError(t, repo.VerifyAvailableThread(context.Background(), "thread-123"))
	})
}
