// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pantry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail yields ErrNoUserWasFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// SessionRepository persists sessions keyed by their derived identifier.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	// FindSessionWithUser yields ErrSessionNotFound when no session matches.
	FindSessionWithUser(ctx context.Context, sessionID string) (models.Session, models.User, error)
	UpdateSessionExpiry(ctx context.Context, sessionID string, expiresAt time.Time) error
	// DeleteSession succeeds when the session does not exist.
	DeleteSession(ctx context.Context, sessionID string) error
}

// IngredientRepository persists ingredients and pantry entries.
// Every method is scoped to the owning user.
type IngredientRepository interface {
	AddIngredient(ctx context.Context, ingredient models.Ingredient, entry models.UserIngredient) (models.UserIngredient, error)
	GetUserIngredients(ctx context.Context, userID string, availableOnly bool) ([]models.UserIngredient, error)
	// UpdateAvailability and UpdateQuantity yield ErrIngredientNotFound when
	// the entry does not exist for userID.
	UpdateAvailability(ctx context.Context, userID, entryID string, isAvailable bool) (models.UserIngredient, error)
	UpdateQuantity(ctx context.Context, userID, entryID, quantity, unit string) (models.UserIngredient, error)
	RemoveIngredient(ctx context.Context, userID, entryID string) (bool, error)
}

// RecipeRepository persists saved recipes. Every method is scoped to the
// owning user.
type RecipeRepository interface {
	SaveRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	GetUserRecipes(ctx context.Context, userID string, filters models.RecipeFilters) ([]models.Recipe, error)
	// GetRecipeByID and UpdateRating yield ErrRecipeNotFound when the
	// recipe does not exist for userID.
	GetRecipeByID(ctx context.Context, userID, recipeID string) (models.Recipe, error)
	UpdateRating(ctx context.Context, userID, recipeID string, rating int) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, recipeID string) (bool, error)
}

// RecipeCacheRepository persists generated recipe batches per user and
// ingredient fingerprint.
type RecipeCacheRepository interface {
	SaveCacheEntry(ctx context.Context, entry models.RecipeCacheEntry) error
	// FindLatestCacheEntry returns the newest entry for the pair or
	// ErrCacheEntryNotFound.
	FindLatestCacheEntry(ctx context.Context, userID, ingredientsHash string) (models.RecipeCacheEntry, error)
	DeleteCacheEntry(ctx context.Context, entryID, userID string) error
}
