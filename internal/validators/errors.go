// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail          = errors.New("invalid email address")
	ErrEmailDomainNotAllowed = errors.New("email domain is not allowed")
	ErrInvalidIngredientName = errors.New("ingredient name must be between 2 and 100 characters")
	ErrEmptyRecipeTitle      = errors.New("recipe title is required")
	ErrEmptyInstructions     = errors.New("recipe instructions are required")
	ErrInvalidRecipeTime     = errors.New("recipe times and servings cannot be negative")
	ErrEmptyRecipeID         = errors.New("recipe ID is required")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
)
