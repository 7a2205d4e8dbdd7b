// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pantry/internal/config"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/internal/store"
	"github.com/MKhiriev/go-pantry/internal/utils"
	"github.com/MKhiriev/go-pantry/models"
)

// sessionService is the concrete implementation of SessionService.
type sessionService struct {
	sessionRepository store.SessionRepository

	// duration is the validity of a new or renewed session.
	duration time.Duration
	// renewalWindow is the trailing period before expiry in which a
	// validated session is extended.
	renewalWindow time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewSessionService constructs a SessionService with lifetimes from cfg.
func NewSessionService(sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		duration:          cfg.SessionDuration,
		renewalWindow:     cfg.SessionRenewalWindow,
		now:               time.Now,
		logger:            logger,
	}
}

// CreateSession stores a session for the derived identifier of token.
// The raw token itself is never persisted.
func (s *sessionService) CreateSession(ctx context.Context, token, userID string) (models.Session, error) {
	session := models.Session{
		ID:        utils.DeriveSessionID(token),
		UserID:    userID,
		ExpiresAt: s.now().Add(s.duration),
	}

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("session creation failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionStorage, err)
	}

	return session, nil
}

// ValidateSessionToken resolves token to its session and user.
//
//   - unknown token: empty result;
//   - now >= expiry: the row is deleted, empty result;
//   - now >= expiry - renewal window: expiry moves to now + duration and
//     the result carries the new expiry with Renewed set.
//
// A failed renewal write is logged and the session is returned unchanged.
func (s *sessionService) ValidateSessionToken(ctx context.Context, token string) (models.SessionValidationResult, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.SessionValidationResult{}, nil
	}

	sessionID := utils.DeriveSessionID(token)
	session, user, err := s.sessionRepository.FindSessionWithUser(ctx, sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.SessionValidationResult{}, nil
	}
	if err != nil {
		log.Err(err).Msg("session lookup failed")
		return models.SessionValidationResult{}, fmt.Errorf("%w: %w", ErrSessionStorage, err)
	}

	now := s.now()
	if session.Expired(now) {
		if err = s.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
			log.Err(err).Str("user_id", session.UserID).Msg("expired session was not deleted")
			return models.SessionValidationResult{}, fmt.Errorf("%w: %w", ErrSessionStorage, err)
		}
		return models.SessionValidationResult{}, nil
	}

	result := models.SessionValidationResult{Session: &session, User: &user}

	if session.DueForRenewal(now, s.renewalWindow) {
		expiresAt := now.Add(s.duration)
		if err = s.sessionRepository.UpdateSessionExpiry(ctx, sessionID, expiresAt); err != nil {
			log.Warn().Err(err).Str("user_id", session.UserID).Msg("session renewal failed")
			return result, nil
		}
		session.ExpiresAt = expiresAt
		result.Renewed = true
	}

	return result, nil
}

// InvalidateSession removes the session. Missing sessions are not an error.
func (s *sessionService) InvalidateSession(ctx context.Context, sessionID string) error {
	if err := s.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
		logger.FromContext(ctx).Err(err).Msg("session invalidation failed")
		return fmt.Errorf("%w: %w", ErrSessionStorage, err)
	}

	return nil
}
