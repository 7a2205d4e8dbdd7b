// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the clients for the services go-pantry talks to: a
// language model that writes recipes ([RecipeGenerator], backed by OpenAI or
// Gemini) and the OpenFoodFacts product database ([IngredientAPI]).
//
// Failures are reported with the sentinels in errors.go and
// [*IngredientAPIError] so that callers can use [errors.Is] and [errors.As]
// regardless of the provider.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pantry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RecipeGenerator produces vegan recipes from a list of ingredient names.
type RecipeGenerator interface {
	// GenerateRecipes returns a non-empty batch or an error; a response that
	// cannot be understood yields [ErrMalformedGenerationResponse].
	GenerateRecipes(ctx context.Context, ingredients []string) ([]models.GeneratedRecipe, error)
}

// IngredientAPI looks up products in an external ingredient database.
type IngredientAPI interface {
	// SearchIngredients returns at most limit named products matching query.
	// Queries shorter than two characters return an empty result without a
	// request.
	SearchIngredients(ctx context.Context, query string, limit int) ([]models.IngredientSearchResult, error)

	// GetIngredientByID returns nil without an error when the product does
	// not exist.
	GetIngredientByID(ctx context.Context, id string) (*models.IngredientSearchResult, error)
}
