// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/models"
)

// recipeRepository is the PostgreSQL-backed implementation of
// [RecipeRepository] over the "recipes" table. Ingredient lists are kept as
// JSONB.
type recipeRepository struct {
	*DB
	logger *logger.Logger
}

func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveRecipe inserts recipe and returns the stored row. Nil prep time, cook
// time and servings are stored as NULL.
func (r *recipeRepository) SaveRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	ingredients := recipe.Ingredients
	if ingredients == nil {
		ingredients = []models.RecipeIngredient{}
	}
	ingredientsJSON, err := json.Marshal(ingredients)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	row := r.DB.QueryRowContext(ctx, saveRecipe,
		recipe.ID,
		recipe.UserID,
		recipe.Title,
		nullString(recipe.Description),
		recipe.Instructions,
		string(ingredientsJSON),
		recipe.PrepTime,
		recipe.CookTime,
		recipe.Servings,
	)

	saved, err := scanRecipe(row)
	switch {
	case err == nil:
		return saved, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Recipe{}, ErrRecipeNotSaved
	default:
		log.Err(err).Str("func", "*recipeRepository.SaveRecipe").Str("user_id", recipe.UserID).Msg("failed to save recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// GetUserRecipes lists the recipes of userID narrowed by filters, newest
// first.
func (r *recipeRepository) GetUserRecipes(ctx context.Context, userID string, filters models.RecipeFilters) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetUserRecipesQuery(userID, filters)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.GetUserRecipes").Msg("failed to create query")
		return nil, err
	}

	var results []models.Recipe
	err = r.withRetry(ctx, "GetUserRecipes", func() error {
		results = make([]models.Recipe, 0, 16)

		rows, queryErr := r.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		for rows.Next() {
			recipe, scanErr := scanRecipe(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			results = append(results, recipe)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).
			Str("func", "*recipeRepository.GetUserRecipes").
			Str("user_id", userID).
			Msg("failed to list recipes")
		return nil, err
	}

	return results, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, userID, recipeID string) (models.Recipe, error) {
	var recipe models.Recipe
	err := r.withRetry(ctx, "GetRecipeByID", func() error {
		var scanErr error
		recipe, scanErr = scanRecipe(r.DB.QueryRowContext(ctx, getRecipeByID, recipeID, userID))
		return scanErr
	})

	switch {
	case err == nil:
		return recipe, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Recipe{}, ErrRecipeNotFound
	default:
		logger.FromContext(ctx).Err(err).Str("func", "*recipeRepository.GetRecipeByID").Msg("failed to get recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *recipeRepository) UpdateRating(ctx context.Context, userID, recipeID string, rating int) (models.Recipe, error) {
	recipe, err := scanRecipe(r.DB.QueryRowContext(ctx, updateRecipeRating, recipeID, userID, rating))
	switch {
	case err == nil:
		return recipe, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Recipe{}, ErrRecipeNotFound
	default:
		logger.FromContext(ctx).Err(err).Str("func", "*recipeRepository.UpdateRating").Msg("failed to rate recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// DeleteRecipe deletes the recipe and reports whether it existed. Its tags
// go with it.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, userID, recipeID string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, deleteRecipe, recipeID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeRepository.DeleteRecipe").Msg("failed to delete recipe")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecipe reads one row in recipeColumnList order.
func scanRecipe(row rowScanner) (models.Recipe, error) {
	var (
		recipe          models.Recipe
		ingredientsJSON []byte
	)

	if err := row.Scan(
		&recipe.ID,
		&recipe.UserID,
		&recipe.Title,
		&recipe.Description,
		&recipe.Instructions,
		&ingredientsJSON,
		&recipe.PrepTime,
		&recipe.CookTime,
		&recipe.Servings,
		&recipe.Rating,
		&recipe.CreatedAt,
	); err != nil {
		return models.Recipe{}, err
	}

	if err := json.Unmarshal(ingredientsJSON, &recipe.Ingredients); err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	return recipe, nil
}
