// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-pantry/internal/app"
)

// ErrorCode is the closed set of business error codes reported by the
// services. Handlers use it to tell user mistakes from failures.
type ErrorCode string

const (
	CodeAuth               ErrorCode = "AUTH_ERROR"
	CodeInvalidEmailDomain ErrorCode = "INVALID_EMAIL_DOMAIN"
	CodeUserExists         ErrorCode = "USER_EXISTS"
	CodeUserCreateFailed   ErrorCode = "USER_CREATE_FAILED"

	CodeIngredient            ErrorCode = "INGREDIENT_ERROR"
	CodeIngredientAddFailed   ErrorCode = "ADD_FAILED"
	CodeInvalidIngredientName ErrorCode = "INVALID_INGREDIENT_NAME"

	CodeRecipe            ErrorCode = "RECIPE_ERROR"
	CodeRecipeSaveFailed  ErrorCode = "SAVE_FAILED"
	CodeInvalidRecipe     ErrorCode = "INVALID_RECIPE"
	CodeInvalidRating     ErrorCode = "INVALID_RATING"
	CodeGenerationFailed  ErrorCode = "GENERATION_FAILED"
	CodeNoIngredientsUsed ErrorCode = "NO_INGREDIENTS_SELECTED"
)

// Error is a business error carrying a code from the closed set, a message
// safe to show to the user and, optionally, the underlying cause.
//
// errors.Is matches two *Error values by Code only, so the sentinels below
// match any error of the same code regardless of message or cause.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func newError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// UserMessage returns the message of the first *Error in err's chain.
func UserMessage(err error) (string, bool) {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Message, true
	}
	return "", false
}

// Sentinels for matching with errors.Is.
var (
	ErrAuth               = &Error{Code: CodeAuth, Message: app.MsgLoginFailed}
	ErrInvalidEmailDomain = &Error{Code: CodeInvalidEmailDomain, Message: app.MsgEmailDomainNotAllowed}
	ErrUserExists         = &Error{Code: CodeUserExists, Message: app.MsgUserAlreadyExists}
	ErrUserCreateFailed   = &Error{Code: CodeUserCreateFailed, Message: app.MsgUserCreateFailed}

	ErrIngredient            = &Error{Code: CodeIngredient, Message: app.MsgIngredientsFetchFailed}
	ErrIngredientAddFailed   = &Error{Code: CodeIngredientAddFailed, Message: app.MsgIngredientAddFailed}
	ErrInvalidIngredientName = &Error{Code: CodeInvalidIngredientName, Message: app.MsgIngredientNameInvalid}

	ErrRecipe                = &Error{Code: CodeRecipe, Message: app.MsgRecipesFetchFailed}
	ErrRecipeSaveFailed      = &Error{Code: CodeRecipeSaveFailed, Message: app.MsgRecipeSaveFailed}
	ErrInvalidRecipe         = &Error{Code: CodeInvalidRecipe, Message: app.MsgRecipeInvalid}
	ErrInvalidRating         = &Error{Code: CodeInvalidRating, Message: app.MsgRatingOutOfRange}
	ErrGenerationFailed      = &Error{Code: CodeGenerationFailed, Message: app.MsgGenerationFailed}
	ErrNoIngredientsSelected = &Error{Code: CodeNoIngredientsUsed, Message: app.MsgNoIngredientsChosen}
)

var (
	// ErrVersionIsNotSpecified is returned by NewAppInfoService when the
	// application version is empty.
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrSessionStorage wraps repository failures of the session store.
	ErrSessionStorage = errors.New("session storage failure")

	// ErrTokenGeneration is returned when no random token could be drawn.
	ErrTokenGeneration = errors.New("session token generation failed")
)
