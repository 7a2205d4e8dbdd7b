// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pantry/internal/utils"
	"github.com/MKhiriev/go-pantry/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the email of a user; it must be well-formed and
	// belong to the allowed domain.
	FieldEmail = "email"

	// FieldIngredientName targets the name of an ingredient being added.
	FieldIngredientName = "ingredient_name"

	// FieldRecipeTitle targets the title of a recipe being saved.
	FieldRecipeTitle = "recipe_title"

	// FieldRecipeInstructions targets the instructions of a recipe being saved.
	FieldRecipeInstructions = "recipe_instructions"

	// FieldRecipeTimes targets prep time, cook time and servings.
	FieldRecipeTimes = "recipe_times"

	// FieldRecipeID targets the recipe a request refers to.
	FieldRecipeID = "recipe_id"

	// FieldRating targets a recipe rating.
	FieldRating = "rating"
)

const (
	minIngredientNameLength = 2
	maxIngredientNameLength = 100

	minRating = 1
	maxRating = 5
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// PantryValidator validates the pantry domain models: users (by email),
// ingredient additions, saved recipes and ratings. Both value and pointer
// forms are accepted.
type PantryValidator struct {
	allowedEmailDomain string
}

// NewPantryValidator constructs a [Validator] that accepts emails of
// allowedEmailDomain only.
func NewPantryValidator(allowedEmailDomain string) Validator {
	return &PantryValidator{allowedEmailDomain: allowedEmailDomain}
}

// Validate dispatches on the dynamic type of obj. Returns ErrUnsupportedType
// for anything else.
func (v *PantryValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.AddIngredientRequest:
		return v.validateAddIngredientRequest(value, fields...)
	case *models.AddIngredientRequest:
		return v.validateAddIngredientRequest(*value, fields...)

	case models.SaveRecipeRequest:
		return v.validateSaveRecipeRequest(value, fields...)
	case *models.SaveRecipeRequest:
		return v.validateSaveRecipeRequest(*value, fields...)

	case models.RateRecipeRequest:
		return v.validateRateRecipeRequest(value, fields...)
	case *models.RateRecipeRequest:
		return v.validateRateRecipeRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PantryValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !emailPattern.MatchString(user.Email) {
				return ErrInvalidEmail
			}
			if !strings.HasSuffix(user.Email, "@"+v.allowedEmailDomain) {
				return ErrEmailDomainNotAllowed
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PantryValidator) validateAddIngredientRequest(request models.AddIngredientRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIngredientName}
	}

	for _, f := range fields {
		switch f {
		case FieldIngredientName:
			if !validIngredientName(request.Name) {
				return ErrInvalidIngredientName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validIngredientName reports whether the trimmed name has 2..100
// characters. The fingerprint separator is rejected so that names stay
// unambiguous inside a fingerprint.
func validIngredientName(name string) bool {
	name = strings.TrimSpace(name)
	if strings.Contains(name, utils.FingerprintSeparator) {
		return false
	}

	n := utf8.RuneCountInString(name)
	return n >= minIngredientNameLength && n <= maxIngredientNameLength
}

func (v *PantryValidator) validateSaveRecipeRequest(request models.SaveRecipeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecipeTitle, FieldRecipeInstructions, FieldRecipeTimes}
	}

	for _, f := range fields {
		switch f {
		case FieldRecipeTitle:
			if strings.TrimSpace(request.Title) == "" {
				return ErrEmptyRecipeTitle
			}
		case FieldRecipeInstructions:
			if strings.TrimSpace(request.Instructions) == "" {
				return ErrEmptyInstructions
			}
		case FieldRecipeTimes:
			if request.PrepTime < 0 || request.CookTime < 0 || request.Servings < 0 {
				return ErrInvalidRecipeTime
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PantryValidator) validateRateRecipeRequest(request models.RateRecipeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecipeID, FieldRating}
	}

	for _, f := range fields {
		switch f {
		case FieldRecipeID:
			if strings.TrimSpace(request.RecipeID) == "" {
				return ErrEmptyRecipeID
			}
		case FieldRating:
			if request.Rating < minRating || request.Rating > maxRating {
				return ErrInvalidRating
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
