// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-pantry/internal/logger"

// Storages groups every repository the services depend on.
type Storages struct {
	UserRepository        UserRepository
	SessionRepository     SessionRepository
	IngredientRepository  IngredientRepository
	RecipeRepository      RecipeRepository
	RecipeCacheRepository RecipeCacheRepository
}

// NewStorages builds all PostgreSQL repositories over db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		SessionRepository:     NewSessionRepository(db, logger),
		IngredientRepository:  NewIngredientRepository(db, logger),
		RecipeRepository:      NewRecipeRepository(db, logger),
		RecipeCacheRepository: NewRecipeCacheRepository(db, logger),
	}
}
