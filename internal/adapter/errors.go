// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAPIKey indicates a missing generator API key.
	ErrInvalidAPIKey = errors.New("invalid or missing API key")

	// ErrUnknownProvider indicates a generator provider with no implementation.
	ErrUnknownProvider = errors.New("unknown recipe generator provider")

	// ErrMalformedGenerationResponse indicates the model answered with
	// something other than the requested recipe JSON.
	ErrMalformedGenerationResponse = errors.New("malformed recipe generation response")

	// ErrGenerationRequest indicates the call to the model provider failed.
	ErrGenerationRequest = errors.New("recipe generation request failed")
)

// IngredientAPIError is returned by [IngredientAPI] implementations when
// the upstream request fails. Status is the HTTP status, or 0 when no
// response was received.
type IngredientAPIError struct {
	Status  int
	Message string
	Err     error
}

func (e *IngredientAPIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("ingredient api: %s", e.Message)
	}
	return fmt.Sprintf("ingredient api returned %d: %s", e.Status, e.Message)
}

func (e *IngredientAPIError) Unwrap() error {
	return e.Err
}
