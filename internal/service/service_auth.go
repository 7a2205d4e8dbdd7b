// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pantry/internal/app"
	"github.com/MKhiriev/go-pantry/internal/config"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/internal/store"
	"github.com/MKhiriev/go-pantry/internal/utils"
	"github.com/MKhiriev/go-pantry/internal/validators"
	"github.com/MKhiriev/go-pantry/models"
)

// authService is the concrete implementation of AuthService.
// It finds or creates users by email and issues opaque session tokens whose
// derived identifiers are stored through a SessionService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	sessionService SessionService

	// validator checks the email format and domain.
	validator validators.Validator

	// allowedEmailDomain is only used to word the rejection message.
	allowedEmailDomain string

	ids *utils.IDGenerator

	// generateToken draws a fresh raw session token.
	generateToken func() (string, error)

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, sessionService SessionService, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:     userRepository,
		sessionService:     sessionService,
		validator:          validator,
		allowedEmailDomain: cfg.AllowedEmailDomain,
		ids:                utils.NewIDGenerator(),
		generateToken:      utils.GenerateSessionToken,
		logger:             logger,
	}
}

// Login signs a user in by email.
//
// The account is created on first login. On success the result carries the
// raw session token, which is never stored, and the session expiry.
//
// Returns a *Error with one of the codes:
//   - CodeInvalidEmailDomain if the email is malformed or not of the allowed domain.
//   - CodeUserExists if a concurrent login created the account and it still
//     cannot be read back.
//   - CodeUserCreateFailed if the account INSERT returned no row.
//   - CodeAuth for any other failure.
func (a *authService) Login(ctx context.Context, email string) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if err := a.validateEmail(ctx, email); err != nil {
		return models.LoginResult{}, err
	}

	user, err := a.findOrCreateUser(ctx, email)
	if err != nil {
		return models.LoginResult{}, err
	}

	token, err := a.generateToken()
	if err != nil {
		log.Err(err).Msg("session token generation failed")
		return models.LoginResult{}, newError(CodeAuth, app.MsgLoginFailed, fmt.Errorf("%w: %w", ErrTokenGeneration, err))
	}

	session, err := a.sessionService.CreateSession(ctx, token, user.ID)
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("session creation during login failed")
		return models.LoginResult{}, newError(CodeAuth, app.MsgLoginFailed, err)
	}

	return models.LoginResult{
		User:      user,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// Logout invalidates the session of token. Unknown tokens are not an error.
func (a *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := a.sessionService.InvalidateSession(ctx, utils.DeriveSessionID(token)); err != nil {
		logger.FromContext(ctx).Err(err).Msg("logout failed")
		return newError(CodeAuth, app.MsgLogoutFailed, err)
	}

	return nil
}

func (a *authService) ValidateSession(ctx context.Context, token string) (models.SessionValidationResult, error) {
	return a.sessionService.ValidateSessionToken(ctx, token)
}

func (a *authService) validateEmail(ctx context.Context, email string) error {
	if err := a.validator.Validate(ctx, models.User{Email: email}, validators.FieldEmail); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("email", email).Msg("email rejected")
		return newError(CodeInvalidEmailDomain, fmt.Sprintf(app.MsgEmailDomainNotAllowed, a.allowedEmailDomain), err)
	}
	return nil
}

// findOrCreateUser returns the account of email, creating it when absent.
// A unique violation on create means a concurrent login won the race, so
// the account is read back once before giving up.
func (a *authService) findOrCreateUser(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, newError(CodeAuth, app.MsgLoginFailed, err)
	}

	user, err = a.createUser(ctx, email)
	if errors.Is(err, ErrUserExists) {
		existing, findErr := a.userRepository.FindUserByEmail(ctx, email)
		if findErr == nil {
			return existing, nil
		}
		log.Err(findErr).Msg("user created concurrently could not be read back")
	}
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (a *authService) createUser(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	user := models.User{
		ID:       a.ids.Generate(),
		Username: usernameFromEmail(email),
		Email:    email,
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	switch {
	case err == nil:
		return created, nil
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.User{}, newError(CodeUserExists, app.MsgUserAlreadyExists, err)
	case errors.Is(err, store.ErrUserNotCreated):
		log.Err(err).Msg("user insert returned no row")
		return models.User{}, newError(CodeUserCreateFailed, app.MsgUserCreateFailed, err)
	default:
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, newError(CodeAuth, app.MsgUserCreateFailed, err)
	}
}

// usernameFromEmail returns the local part of email.
func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
