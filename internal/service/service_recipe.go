// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-pantry/internal/app"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/internal/store"
	"github.com/MKhiriev/go-pantry/internal/utils"
	"github.com/MKhiriev/go-pantry/models"
)

const (
	minRating = 1
	maxRating = 5
)

type recipeService struct {
	recipeRepository store.RecipeRepository

	ids *utils.IDGenerator

	logger *logger.Logger
}

func NewRecipeService(recipeRepository store.RecipeRepository, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		ids:              utils.NewIDGenerator(),
		logger:           logger,
	}
}

// SaveRecipe stores the recipe unrated. Zero times and servings are stored
// as absent.
func (r *recipeService) SaveRecipe(ctx context.Context, userID string, request models.SaveRecipeRequest) (models.Recipe, error) {
	recipe := models.Recipe{
		ID:           r.ids.Generate(),
		UserID:       userID,
		Title:        request.Title,
		Description:  request.Description,
		Instructions: request.Instructions,
		Ingredients:  request.Ingredients,
		PrepTime:     positiveOrNil(request.PrepTime),
		CookTime:     positiveOrNil(request.CookTime),
		Servings:     positiveOrNil(request.Servings),
	}

	saved, err := r.recipeRepository.SaveRecipe(ctx, recipe)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("title", recipe.Title).Msg("saving recipe failed")
		if errors.Is(err, store.ErrRecipeNotSaved) {
			return models.Recipe{}, newError(CodeRecipeSaveFailed, app.MsgRecipeSaveFailed, err)
		}
		return models.Recipe{}, newError(CodeRecipe, app.MsgRecipeSaveFailed, err)
	}

	return saved, nil
}

// SaveGeneratedRecipe saves a generated recipe, one instruction step per line.
func (r *recipeService) SaveGeneratedRecipe(ctx context.Context, userID string, recipe models.GeneratedRecipe) (models.Recipe, error) {
	return r.SaveRecipe(ctx, userID, GeneratedToSaveRequest(recipe))
}

// GeneratedToSaveRequest converts a generated recipe into a save request.
func GeneratedToSaveRequest(recipe models.GeneratedRecipe) models.SaveRecipeRequest {
	return models.SaveRecipeRequest{
		Title:        recipe.Title,
		Description:  recipe.Description,
		Instructions: strings.Join(recipe.Instructions, "\n"),
		Ingredients:  recipe.Ingredients,
		PrepTime:     recipe.PrepTime,
		CookTime:     recipe.CookTime,
		Servings:     recipe.Servings,
	}
}

func (r *recipeService) GetUserRecipes(ctx context.Context, userID string, filters models.RecipeFilters) ([]models.Recipe, error) {
	recipes, err := r.recipeRepository.GetUserRecipes(ctx, userID, filters)
	if err != nil {
		logger.FromContext(ctx).Err(err).Any("filters", filters).Msg("fetching user recipes failed")
		return nil, newError(CodeRecipe, app.MsgRecipesFetchFailed, err)
	}

	return recipes, nil
}

func (r *recipeService) GetRecipeByID(ctx context.Context, userID, recipeID string) (*models.Recipe, error) {
	recipe, err := r.recipeRepository.GetRecipeByID(ctx, userID, recipeID)
	switch {
	case err == nil:
		return &recipe, nil
	case errors.Is(err, store.ErrRecipeNotFound):
		return nil, nil
	default:
		logger.FromContext(ctx).Err(err).Str("recipe_id", recipeID).Msg("fetching recipe failed")
		return nil, newError(CodeRecipe, app.MsgRecipeFetchFailed, err)
	}
}

// UpdateRating sets the rating of a recipe, which must be within 1..5.
func (r *recipeService) UpdateRating(ctx context.Context, userID string, request models.RateRecipeRequest) (*models.Recipe, error) {
	if request.Rating < minRating || request.Rating > maxRating {
		return nil, newError(CodeInvalidRating, app.MsgRatingOutOfRange, nil)
	}

	recipe, err := r.recipeRepository.UpdateRating(ctx, userID, request.RecipeID, request.Rating)
	switch {
	case err == nil:
		return &recipe, nil
	case errors.Is(err, store.ErrRecipeNotFound):
		return nil, nil
	default:
		logger.FromContext(ctx).Err(err).Str("recipe_id", request.RecipeID).Msg("rating recipe failed")
		return nil, newError(CodeRecipe, app.MsgRecipeRateFailed, err)
	}
}

func (r *recipeService) DeleteRecipe(ctx context.Context, userID, recipeID string) (bool, error) {
	deleted, err := r.recipeRepository.DeleteRecipe(ctx, userID, recipeID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("recipe_id", recipeID).Msg("deleting recipe failed")
		return false, newError(CodeRecipe, app.MsgRecipeDeleteFailed, err)
	}

	return deleted, nil
}

func positiveOrNil(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}
