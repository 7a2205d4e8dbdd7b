// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pantry/internal/app"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/internal/validators"
	"github.com/MKhiriev/go-pantry/models"
)

// ingredientValidationService validates requests before handing them to the
// wrapped IngredientService.
type ingredientValidationService struct {
	inner     IngredientService
	validator validators.Validator
}

func NewIngredientValidationService(validator validators.Validator) IngredientServiceWrapper {
	return &ingredientValidationService{validator: validator}
}

func (v *ingredientValidationService) Wrap(inner IngredientService) IngredientService {
	v.inner = inner
	return v
}

func (v *ingredientValidationService) AddIngredient(ctx context.Context, userID string, request models.AddIngredientRequest) (models.UserIngredient, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("name", request.Name).Msg("ingredient rejected")
		return models.UserIngredient{}, newError(CodeInvalidIngredientName, app.MsgIngredientNameInvalid, err)
	}

	return v.inner.AddIngredient(ctx, userID, request)
}

func (v *ingredientValidationService) GetUserIngredients(ctx context.Context, userID string, availableOnly bool) ([]models.UserIngredient, error) {
	return v.inner.GetUserIngredients(ctx, userID, availableOnly)
}

func (v *ingredientValidationService) UpdateAvailability(ctx context.Context, userID, entryID string, isAvailable bool) (*models.UserIngredient, error) {
	return v.inner.UpdateAvailability(ctx, userID, entryID, isAvailable)
}

func (v *ingredientValidationService) UpdateQuantity(ctx context.Context, userID, entryID, quantity, unit string) (*models.UserIngredient, error) {
	return v.inner.UpdateQuantity(ctx, userID, entryID, quantity, unit)
}

func (v *ingredientValidationService) RemoveIngredient(ctx context.Context, userID, entryID string) (bool, error) {
	return v.inner.RemoveIngredient(ctx, userID, entryID)
}

func (v *ingredientValidationService) SearchIngredients(ctx context.Context, query string) ([]models.IngredientSearchResult, error) {
	return v.inner.SearchIngredients(ctx, query)
}

func (v *ingredientValidationService) GetIngredientDetails(ctx context.Context, productID string) (*models.IngredientSearchResult, error) {
	return v.inner.GetIngredientDetails(ctx, productID)
}

// recipeValidationService validates saved recipes and ratings before handing
// them to the wrapped RecipeService.
type recipeValidationService struct {
	inner     RecipeService
	validator validators.Validator
}

func NewRecipeValidationService(validator validators.Validator) RecipeServiceWrapper {
	return &recipeValidationService{validator: validator}
}

func (v *recipeValidationService) Wrap(inner RecipeService) RecipeService {
	v.inner = inner
	return v
}

func (v *recipeValidationService) SaveRecipe(ctx context.Context, userID string, request models.SaveRecipeRequest) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Recipe{}, recipeValidationError(ctx, err)
	}

	return v.inner.SaveRecipe(ctx, userID, request)
}

func (v *recipeValidationService) SaveGeneratedRecipe(ctx context.Context, userID string, recipe models.GeneratedRecipe) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, GeneratedToSaveRequest(recipe)); err != nil {
		return models.Recipe{}, recipeValidationError(ctx, err)
	}

	return v.inner.SaveGeneratedRecipe(ctx, userID, recipe)
}

func (v *recipeValidationService) GetUserRecipes(ctx context.Context, userID string, filters models.RecipeFilters) ([]models.Recipe, error) {
	return v.inner.GetUserRecipes(ctx, userID, filters)
}

func (v *recipeValidationService) GetRecipeByID(ctx context.Context, userID, recipeID string) (*models.Recipe, error) {
	return v.inner.GetRecipeByID(ctx, userID, recipeID)
}

func (v *recipeValidationService) UpdateRating(ctx context.Context, userID string, request models.RateRecipeRequest) (*models.Recipe, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return nil, recipeValidationError(ctx, err)
	}

	return v.inner.UpdateRating(ctx, userID, request)
}

func (v *recipeValidationService) DeleteRecipe(ctx context.Context, userID, recipeID string) (bool, error) {
	return v.inner.DeleteRecipe(ctx, userID, recipeID)
}

func recipeValidationError(ctx context.Context, err error) error {
	logger.FromContext(ctx).Debug().Err(err).Msg("recipe request rejected")

	switch {
	case errors.Is(err, validators.ErrInvalidRating):
		return newError(CodeInvalidRating, app.MsgRatingOutOfRange, err)
	case errors.Is(err, validators.ErrEmptyRecipeID):
		return newError(CodeInvalidRecipe, app.MsgRecipeIDIsRequired, err)
	default:
		return newError(CodeInvalidRecipe, app.MsgRecipeInvalid, err)
	}
}
