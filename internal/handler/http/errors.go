// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading form actions. Callers can match
// against them with [errors.Is].
var (
	// ErrMissingFormValue is returned when a required form field is absent
	// or blank.
	ErrMissingFormValue = errors.New("required form value is missing")

	// ErrInvalidFormValue is returned when a form field cannot be parsed
	// into the expected type.
	ErrInvalidFormValue = errors.New("invalid form value")

	// ErrResourceNotFound is returned when the addressed ingredient, recipe
	// or product does not exist for the user.
	ErrResourceNotFound = errors.New("resource not found")
)
