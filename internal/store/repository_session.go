// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository].
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, createSession, session.ID, session.UserID, session.ExpiresAt)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error inserting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSessionNotSaved
	}

	return nil
}

// FindSessionWithUser loads the session together with its owner in one
// round trip. Transient failures are retried.
func (r *sessionRepository) FindSessionWithUser(ctx context.Context, sessionID string) (models.Session, models.User, error) {
	log := logger.FromContext(ctx)

	var (
		session models.Session
		user    models.User
	)
	err := r.db.withRetry(ctx, "FindSessionWithUser", func() error {
		return r.db.QueryRowContext(ctx, findSessionWithUser, sessionID).Scan(
			&session.ID, &session.UserID, &session.ExpiresAt,
			&user.ID, &user.Username, &user.Email, &user.Age,
		)
	})

	switch {
	case err == nil:
		return session, user, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Session{}, models.User{}, ErrSessionNotFound
	default:
		log.Err(err).Str("func", "*sessionRepository.FindSessionWithUser").Msg("error finding session")
		return models.Session{}, models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *sessionRepository) UpdateSessionExpiry(ctx context.Context, sessionID string, expiresAt time.Time) error {
	if _, err := r.db.ExecContext(ctx, updateSessionExpiry, sessionID, expiresAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.UpdateSessionExpiry").Msg("error updating session expiry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteSession removes the session; deleting a missing session is not an
// error.
func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, deleteSession, sessionID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
