// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body of every failed form action.
type ErrorResponse struct {
	Error string `json:"error"`

	// Email echoes the submitted address back on a failed login.
	Email string `json:"email,omitempty"`
}

// ActionResponse is the body of a successful form action.
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// IngredientsPage is the payload of GET /ingredients.
type IngredientsPage struct {
	User        User             `json:"user"`
	Ingredients []UserIngredient `json:"ingredients"`
}

// IngredientSearchResponse answers an ingredient lookup.
type IngredientSearchResponse struct {
	SearchResults []IngredientSearchResult `json:"searchResults"`
	SearchQuery   string                   `json:"searchQuery"`
}

// RecipesPage is the payload of GET /recipes.
type RecipesPage struct {
	User    User          `json:"user"`
	Recipes []Recipe      `json:"recipes"`
	Filters RecipeFilters `json:"filters"`
}

// GeneratePage is the payload of GET /recipes/generate.
type GeneratePage struct {
	User                     User             `json:"user"`
	Ingredients              []UserIngredient `json:"ingredients"`
	AvailableIngredientNames []string         `json:"availableIngredientNames"`
}

// GenerateResponse answers POST /recipes/generate.
type GenerateResponse struct {
	Success             bool              `json:"success"`
	Recipes             []GeneratedRecipe `json:"recipes"`
	SelectedIngredients []string          `json:"selectedIngredients"`
}

// SaveRecipeResponse answers POST /recipes/generate/save.
type SaveRecipeResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	SavedRecipeID string `json:"savedRecipeId"`
}
