// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionWithUserColumns = []string{"id", "user_id", "expires_at", "id", "username", "email", "age"}

func newTestSessionRepo(t *testing.T) (SessionRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock := newTestDB(t)
	return NewSessionRepository(newDBFromSQL(sqlDB), logger.Nop()), mock
}

func TestSessionRepository_CreateSession(t *testing.T) {
	expires := time.Date(2026, 11, 1, 12, 0, 0, 0, time.UTC)
	session := models.Session{ID: "sid", UserID: "u-1", ExpiresAt: expires}

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).
			WithArgs("sid", "u-1", expires).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.CreateSession(testContext(), session))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows affected", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.CreateSession(testContext(), session), ErrSessionNotSaved)
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).
			WillReturnError(errors.New("boom"))

		assert.ErrorIs(t, repo.CreateSession(testContext(), session), ErrExecutingStatement)
	})
}

func TestSessionRepository_FindSessionWithUser(t *testing.T) {
	expires := time.Date(2026, 11, 1, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM sessions s")).
			WithArgs("sid").
			WillReturnRows(sqlmock.NewRows(sessionWithUserColumns).
				AddRow("sid", "u-1", expires, "u-1", "alice", "alice@example.com", nil))

		session, user, err := repo.FindSessionWithUser(testContext(), "sid")
		require.NoError(t, err)
		assert.Equal(t, models.Session{ID: "sid", UserID: "u-1", ExpiresAt: expires}, session)
		assert.Equal(t, models.User{ID: "u-1", Username: "alice", Email: "alice@example.com"}, user)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM sessions s")).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(sessionWithUserColumns))

		_, _, err := repo.FindSessionWithUser(testContext(), "missing")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM sessions s")).
			WillReturnError(errors.New("boom"))

		_, _, err := repo.FindSessionWithUser(testContext(), "sid")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestSessionRepository_UpdateSessionExpiry(t *testing.T) {
	expires := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	repo, mock := newTestSessionRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE sessions SET expires_at = $2 WHERE id = $1")).
		WithArgs("sid", expires).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateSessionExpiry(testContext(), "sid", expires))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_DeleteSession(t *testing.T) {
	t.Run("missing session is not an error", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions")).
			WithArgs("sid").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.DeleteSession(testContext(), "sid"))
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock := newTestSessionRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions")).
			WillReturnError(errors.New("boom"))

		assert.ErrorIs(t, repo.DeleteSession(testContext(), "sid"), ErrExecutingStatement)
	})
}
