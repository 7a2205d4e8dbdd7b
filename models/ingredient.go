// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Ingredient is a named ingredient created by a user, either typed in
// manually or picked from an ingredient lookup.
type Ingredient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category,omitempty"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserIngredient is a pantry entry: an ingredient the user holds, with
// optional quantity and expiry, and an availability flag used to pick
// ingredients for recipe generation.
type UserIngredient struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	IngredientID string     `json:"ingredientId"`
	Quantity     string     `json:"quantity,omitempty"`
	Unit         string     `json:"unit,omitempty"`
	ExpiryDate   *time.Time `json:"expiryDate,omitempty"`
	IsAvailable  bool       `json:"isAvailable"`
	CreatedAt    time.Time  `json:"createdAt"`

	// Ingredient is the joined ingredient row. It is empty on the value
	// returned by inserts and updates.
	Ingredient Ingredient `json:"ingredient"`
}

// IngredientNames returns the ingredient name of every entry, in order.
func IngredientNames(entries []UserIngredient) []string {
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Ingredient.Name)
	}

	return names
}

// AddIngredientRequest carries the data for adding an ingredient to a
// user's pantry.
type AddIngredientRequest struct {
	Name       string
	Category   string
	ImageURL   string
	Quantity   string
	Unit       string
	ExpiryDate *time.Time
}

// IngredientSearchResult is a product returned by the ingredient lookup API.
type IngredientSearchResult struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Brands   []string `json:"brands,omitempty"`
}
