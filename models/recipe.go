// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RecipeIngredient is a single line of a recipe's ingredient list.
type RecipeIngredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Unit     string `json:"unit,omitempty"`
}

// GeneratedRecipe is a recipe produced by the recipe generator. The JSON
// shape is the one the generator is asked to answer with.
type GeneratedRecipe struct {
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	PrepTime     int                `json:"prepTime"`
	CookTime     int                `json:"cookTime"`
	Servings     int                `json:"servings"`
}

// Recipe is a recipe saved to a user's collection.
type Recipe struct {
	ID           string             `json:"id"`
	UserID       string             `json:"userId"`
	Title        string             `json:"title"`
	Description  string             `json:"description,omitempty"`
	Instructions string             `json:"instructions"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	PrepTime     *int               `json:"prepTime,omitempty"`
	CookTime     *int               `json:"cookTime,omitempty"`
	Servings     *int               `json:"servings,omitempty"`

	// Rating is nil until the user rates the recipe (1..5).
	Rating    *float64  `json:"rating,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SaveRecipeRequest carries the data of a recipe to be saved.
// Zero PrepTime, CookTime or Servings are stored as NULL.
type SaveRecipeRequest struct {
	Title        string
	Description  string
	Instructions string
	Ingredients  []RecipeIngredient
	PrepTime     int
	CookTime     int
	Servings     int
}

// RateRecipeRequest carries a user's rating for a saved recipe.
type RateRecipeRequest struct {
	RecipeID string
	Rating   int
}

// RecipeFilters narrows a recipe listing. Both filters combine; zero values
// disable them.
type RecipeFilters struct {
	// Search matches titles case-insensitively as a substring.
	Search string `json:"search"`

	// MinRating keeps recipes rated at least this value; unrated recipes
	// are excluded when it is set.
	MinRating int `json:"minRating"`
}

// RecipeCacheEntry is a stored batch of generated recipes for one user and
// ingredient fingerprint.
type RecipeCacheEntry struct {
	ID              string
	UserID          string
	IngredientsHash string
	Recipes         []GeneratedRecipe
	CreatedAt       time.Time
}
