// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pantry/models"
)

// SessionService persists sessions by their derived identifier and applies
// the expiry and renewal rules on validation.
type SessionService interface {
	CreateSession(ctx context.Context, token, userID string) (models.Session, error)
	// ValidateSessionToken returns an empty result for unknown and expired
	// tokens. Expired sessions are deleted.
	ValidateSessionToken(ctx context.Context, token string) (models.SessionValidationResult, error)
	InvalidateSession(ctx context.Context, sessionID string) error
}

// AuthService logs users in by email, creating the account on first login.
type AuthService interface {
	Login(ctx context.Context, email string) (models.LoginResult, error)
	Logout(ctx context.Context, token string) error
	ValidateSession(ctx context.Context, token string) (models.SessionValidationResult, error)
}

// RecipeGenerationService returns recipes for a set of ingredients, serving
// fresh cached batches and generating otherwise.
type RecipeGenerationService interface {
	GetOrGenerate(ctx context.Context, userID string, ingredientNames []string) ([]models.GeneratedRecipe, error)
	// Wait blocks until background cache writes have finished.
	Wait()
}

type IngredientService interface {
	AddIngredient(ctx context.Context, userID string, request models.AddIngredientRequest) (models.UserIngredient, error)
	GetUserIngredients(ctx context.Context, userID string, availableOnly bool) ([]models.UserIngredient, error)
	// UpdateAvailability and UpdateQuantity return nil when the entry does
	// not exist for userID.
	UpdateAvailability(ctx context.Context, userID, entryID string, isAvailable bool) (*models.UserIngredient, error)
	UpdateQuantity(ctx context.Context, userID, entryID, quantity, unit string) (*models.UserIngredient, error)
	RemoveIngredient(ctx context.Context, userID, entryID string) (bool, error)

	SearchIngredients(ctx context.Context, query string) ([]models.IngredientSearchResult, error)
	GetIngredientDetails(ctx context.Context, productID string) (*models.IngredientSearchResult, error)
}

type RecipeService interface {
	SaveRecipe(ctx context.Context, userID string, request models.SaveRecipeRequest) (models.Recipe, error)
	SaveGeneratedRecipe(ctx context.Context, userID string, recipe models.GeneratedRecipe) (models.Recipe, error)
	GetUserRecipes(ctx context.Context, userID string, filters models.RecipeFilters) ([]models.Recipe, error)
	// GetRecipeByID and UpdateRating return nil when the recipe does not
	// exist for userID.
	GetRecipeByID(ctx context.Context, userID, recipeID string) (*models.Recipe, error)
	UpdateRating(ctx context.Context, userID string, request models.RateRecipeRequest) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, recipeID string) (bool, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IngredientServiceWrapper defines middleware composition for
// IngredientService. Implementations wrap an existing IngredientService to
// add behavior such as validating.
type IngredientServiceWrapper interface {
	Wrap(IngredientService) IngredientService
}

// RecipeServiceWrapper is the RecipeService counterpart of
// IngredientServiceWrapper.
type RecipeServiceWrapper interface {
	Wrap(RecipeService) RecipeService
}
