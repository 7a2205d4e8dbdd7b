// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-pantry/internal/adapter"
	"github.com/MKhiriev/go-pantry/internal/app"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/internal/store"
	"github.com/MKhiriev/go-pantry/internal/utils"
	"github.com/MKhiriev/go-pantry/models"
)

type ingredientService struct {
	ingredientRepository store.IngredientRepository
	ingredientAPI        adapter.IngredientAPI

	ids *utils.IDGenerator

	logger *logger.Logger
}

func NewIngredientService(ingredientRepository store.IngredientRepository, ingredientAPI adapter.IngredientAPI, logger *logger.Logger) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		ingredientAPI:        ingredientAPI,
		ids:                  utils.NewIDGenerator(),
		logger:               logger,
	}
}

// AddIngredient creates the ingredient and an available pantry entry for it.
func (i *ingredientService) AddIngredient(ctx context.Context, userID string, request models.AddIngredientRequest) (models.UserIngredient, error) {
	ingredient := models.Ingredient{
		ID:       i.ids.Generate(),
		Name:     strings.TrimSpace(request.Name),
		Category: request.Category,
		ImageURL: request.ImageURL,
		UserID:   userID,
	}
	entry := models.UserIngredient{
		ID:           i.ids.Generate(),
		UserID:       userID,
		IngredientID: ingredient.ID,
		Quantity:     request.Quantity,
		Unit:         request.Unit,
		ExpiryDate:   request.ExpiryDate,
		IsAvailable:  true,
	}

	saved, err := i.ingredientRepository.AddIngredient(ctx, ingredient, entry)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("name", ingredient.Name).Msg("adding ingredient failed")
		if errors.Is(err, store.ErrIngredientNotSaved) {
			return models.UserIngredient{}, newError(CodeIngredientAddFailed, app.MsgIngredientAddFailed, err)
		}
		return models.UserIngredient{}, newError(CodeIngredient, app.MsgIngredientAddFailed, err)
	}

	return saved, nil
}

func (i *ingredientService) GetUserIngredients(ctx context.Context, userID string, availableOnly bool) ([]models.UserIngredient, error) {
	ingredients, err := i.ingredientRepository.GetUserIngredients(ctx, userID, availableOnly)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("fetching user ingredients failed")
		return nil, newError(CodeIngredient, app.MsgIngredientsFetchFailed, err)
	}

	return ingredients, nil
}

func (i *ingredientService) UpdateAvailability(ctx context.Context, userID, entryID string, isAvailable bool) (*models.UserIngredient, error) {
	updated, err := i.ingredientRepository.UpdateAvailability(ctx, userID, entryID, isAvailable)
	return i.updated(ctx, updated, err)
}

func (i *ingredientService) UpdateQuantity(ctx context.Context, userID, entryID, quantity, unit string) (*models.UserIngredient, error) {
	updated, err := i.ingredientRepository.UpdateQuantity(ctx, userID, entryID, quantity, unit)
	return i.updated(ctx, updated, err)
}

func (i *ingredientService) updated(ctx context.Context, entry models.UserIngredient, err error) (*models.UserIngredient, error) {
	switch {
	case err == nil:
		return &entry, nil
	case errors.Is(err, store.ErrIngredientNotFound):
		return nil, nil
	default:
		logger.FromContext(ctx).Err(err).Msg("updating ingredient failed")
		return nil, newError(CodeIngredient, app.MsgIngredientUpdateFailed, err)
	}
}

func (i *ingredientService) RemoveIngredient(ctx context.Context, userID, entryID string) (bool, error) {
	removed, err := i.ingredientRepository.RemoveIngredient(ctx, userID, entryID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("entry_id", entryID).Msg("removing ingredient failed")
		return false, newError(CodeIngredient, app.MsgIngredientRemoveFailed, err)
	}

	return removed, nil
}

func (i *ingredientService) SearchIngredients(ctx context.Context, query string) ([]models.IngredientSearchResult, error) {
	results, err := i.ingredientAPI.SearchIngredients(ctx, query, adapter.DefaultSearchLimit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("query", query).Msg("ingredient search failed")
		return nil, newError(CodeIngredient, app.MsgIngredientSearchFailed, err)
	}

	return results, nil
}

// GetIngredientDetails returns nil when the product is unknown.
func (i *ingredientService) GetIngredientDetails(ctx context.Context, productID string) (*models.IngredientSearchResult, error) {
	product, err := i.ingredientAPI.GetIngredientByID(ctx, productID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("product_id", productID).Msg("ingredient lookup failed")
		return nil, newError(CodeIngredient, app.MsgIngredientSearchFailed, err)
	}

	return product, nil
}
