// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pantry/internal/adapter"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/internal/mock"
	"github.com/MKhiriev/go-pantry/internal/store"
	"github.com/MKhiriev/go-pantry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestIngredientSvc(t *testing.T) (IngredientService, *mock.MockIngredientRepository, *mock.MockIngredientAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockIngredientRepository(ctrl)
	api := mock.NewMockIngredientAPI(ctrl)

	return NewIngredientService(repo, api, logger.Nop()), repo, api
}

func TestIngredientService_AddIngredient(t *testing.T) {
	svc, repo, _ := newTestIngredientSvc(t)
	ctx := context.Background()
	expiry := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().AddIngredient(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ingredient models.Ingredient, entry models.UserIngredient) (models.UserIngredient, error) {
			assert.NotEmpty(t, ingredient.ID)
			assert.Equal(t, "Chickpeas", ingredient.Name)
			assert.Equal(t, "legumes", ingredient.Category)
			assert.Equal(t, "user-1", ingredient.UserID)

			assert.NotEmpty(t, entry.ID)
			assert.NotEqual(t, ingredient.ID, entry.ID)
			assert.Equal(t, ingredient.ID, entry.IngredientID)
			assert.Equal(t, "user-1", entry.UserID)
			assert.Equal(t, "2", entry.Quantity)
			assert.Equal(t, "cans", entry.Unit)
			assert.Equal(t, &expiry, entry.ExpiryDate)
			assert.True(t, entry.IsAvailable)

			entry.Ingredient = ingredient
			return entry, nil
		})

	saved, err := svc.AddIngredient(ctx, "user-1", models.AddIngredientRequest{
		Name:       "  Chickpeas ",
		Category:   "legumes",
		Quantity:   "2",
		Unit:       "cans",
		ExpiryDate: &expiry,
	})
	require.NoError(t, err)
	assert.Equal(t, "Chickpeas", saved.Ingredient.Name)
}

func TestIngredientService_AddIngredient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{"insert returned nothing", store.ErrIngredientNotSaved, ErrIngredientAddFailed},
		{"storage failure", store.ErrBeginningTransaction, ErrIngredient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestIngredientSvc(t)
			repo.EXPECT().AddIngredient(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.UserIngredient{}, tt.repoErr)

			_, err := svc.AddIngredient(context.Background(), "user-1", models.AddIngredientRequest{Name: "tofu"})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.repoErr)
		})
	}
}

func TestIngredientService_GetUserIngredients(t *testing.T) {
	svc, repo, _ := newTestIngredientSvc(t)
	ctx := context.Background()
	entries := []models.UserIngredient{{ID: "e1"}, {ID: "e2"}}

	repo.EXPECT().GetUserIngredients(ctx, "user-1", false).Return(entries, nil)
	got, err := svc.GetUserIngredients(ctx, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	repo.EXPECT().GetUserIngredients(ctx, "user-1", true).Return(nil, store.ErrExecutingQuery)
	_, err = svc.GetUserIngredients(ctx, "user-1", true)
	assert.ErrorIs(t, err, ErrIngredient)
}

func TestIngredientService_UpdateAvailability(t *testing.T) {
	svc, repo, _ := newTestIngredientSvc(t)
	ctx := context.Background()

	repo.EXPECT().UpdateAvailability(ctx, "user-1", "e1", false).Return(models.UserIngredient{ID: "e1", IsAvailable: false}, nil)
	got, err := svc.UpdateAvailability(ctx, "user-1", "e1", false)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "e1", got.ID)

	repo.EXPECT().UpdateAvailability(ctx, "user-2", "e1", true).Return(models.UserIngredient{}, store.ErrIngredientNotFound)
	got, err = svc.UpdateAvailability(ctx, "user-2", "e1", true)
	require.NoError(t, err)
	assert.Nil(t, got)

	repo.EXPECT().UpdateAvailability(ctx, "user-1", "e1", true).Return(models.UserIngredient{}, store.ErrExecutingQuery)
	_, err = svc.UpdateAvailability(ctx, "user-1", "e1", true)
	assert.ErrorIs(t, err, ErrIngredient)
}

func TestIngredientService_UpdateQuantity(t *testing.T) {
	svc, repo, _ := newTestIngredientSvc(t)
	ctx := context.Background()

	repo.EXPECT().UpdateQuantity(ctx, "user-1", "e1", "500", "g").Return(models.UserIngredient{ID: "e1", Quantity: "500", Unit: "g"}, nil)
	got, err := svc.UpdateQuantity(ctx, "user-1", "e1", "500", "g")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "500", got.Quantity)

	repo.EXPECT().UpdateQuantity(ctx, "user-1", "missing", "1", "").Return(models.UserIngredient{}, store.ErrIngredientNotFound)
	got, err = svc.UpdateQuantity(ctx, "user-1", "missing", "1", "")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIngredientService_RemoveIngredient(t *testing.T) {
	svc, repo, _ := newTestIngredientSvc(t)
	ctx := context.Background()

	repo.EXPECT().RemoveIngredient(ctx, "user-1", "e1").Return(true, nil)
	removed, err := svc.RemoveIngredient(ctx, "user-1", "e1")
	require.NoError(t, err)
	assert.True(t, removed)

	repo.EXPECT().RemoveIngredient(ctx, "user-1", "e1").Return(false, nil)
	removed, err = svc.RemoveIngredient(ctx, "user-1", "e1")
	require.NoError(t, err)
	assert.False(t, removed)

	repo.EXPECT().RemoveIngredient(ctx, "user-1", "e1").Return(false, store.ErrExecutingStatement)
	_, err = svc.RemoveIngredient(ctx, "user-1", "e1")
	assert.ErrorIs(t, err, ErrIngredient)
}

func TestIngredientService_SearchIngredients(t *testing.T) {
	svc, _, api := newTestIngredientSvc(t)
	ctx := context.Background()
	results := []models.IngredientSearchResult{{ID: "123", Name: "Oat milk"}}

	api.EXPECT().SearchIngredients(ctx, "oat", adapter.DefaultSearchLimit).Return(results, nil)
	got, err := svc.SearchIngredients(ctx, "oat")
	require.NoError(t, err)
	assert.Equal(t, results, got)

	apiErr := &adapter.IngredientAPIError{Status: 503, Message: "Service Unavailable"}
	api.EXPECT().SearchIngredients(ctx, "oat", adapter.DefaultSearchLimit).Return(nil, apiErr)
	_, err = svc.SearchIngredients(ctx, "oat")
	assert.ErrorIs(t, err, ErrIngredient)

	var target *adapter.IngredientAPIError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, 503, target.Status)
}

func TestIngredientService_GetIngredientDetails(t *testing.T) {
	svc, _, api := newTestIngredientSvc(t)
	ctx := context.Background()

	api.EXPECT().GetIngredientByID(ctx, "123").Return(&models.IngredientSearchResult{ID: "123", Name: "Oat milk"}, nil)
	got, err := svc.GetIngredientDetails(ctx, "123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Oat milk", got.Name)

	api.EXPECT().GetIngredientByID(ctx, "404").Return(nil, nil)
	got, err = svc.GetIngredientDetails(ctx, "404")
	require.NoError(t, err)
	assert.Nil(t, got)
}
