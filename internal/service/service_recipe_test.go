// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/internal/mock"
	"github.com/MKhiriev/go-pantry/internal/store"
	"github.com/MKhiriev/go-pantry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRecipeSvc(t *testing.T) (RecipeService, *mock.MockRecipeRepository) {
	t.Helper()
	repo := mock.NewMockRecipeRepository(gomock.NewController(t))
	return NewRecipeService(repo, logger.Nop()), repo
}

func TestRecipeService_SaveRecipe(t *testing.T) {
	svc, repo := newTestRecipeSvc(t)
	ctx := context.Background()

	repo.EXPECT().SaveRecipe(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r models.Recipe) (models.Recipe, error) {
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, "user-1", r.UserID)
		assert.Equal(t, "Dal", r.Title)
		require.NotNil(t, r.PrepTime)
		assert.Equal(t, 10, *r.PrepTime)
		assert.Nil(t, r.CookTime, "zero cook time is stored as absent")
		assert.Nil(t, r.Servings)
		assert.Nil(t, r.Rating)
		return r, nil
	})

	saved, err := svc.SaveRecipe(ctx, "user-1", models.SaveRecipeRequest{
		Title:        "Dal",
		Instructions: "Cook lentils",
		Ingredients:  []models.RecipeIngredient{{Name: "lentils"}},
		PrepTime:     10,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dal", saved.Title)
}

func TestRecipeService_SaveRecipe_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{"insert returned nothing", store.ErrRecipeNotSaved, ErrRecipeSaveFailed},
		{"encoding failure", store.ErrEncodingJSON, ErrRecipe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestRecipeSvc(t)
			repo.EXPECT().SaveRecipe(gomock.Any(), gomock.Any()).Return(models.Recipe{}, tt.repoErr)

			_, err := svc.SaveRecipe(context.Background(), "user-1", models.SaveRecipeRequest{Title: "x", Instructions: "y"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecipeService_SaveGeneratedRecipe_JoinsInstructions(t *testing.T) {
	svc, repo := newTestRecipeSvc(t)

	repo.EXPECT().SaveRecipe(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r models.Recipe) (models.Recipe, error) {
		assert.Equal(t, "chop\nsimmer\nserve", r.Instructions)
		assert.Equal(t, "Stew", r.Title)
		require.NotNil(t, r.Servings)
		assert.Equal(t, 4, *r.Servings)
		return r, nil
	})

	_, err := svc.SaveGeneratedRecipe(context.Background(), "user-1", models.GeneratedRecipe{
		Title:        "Stew",
		Instructions: []string{"chop", "simmer", "serve"},
		Servings:     4,
	})
	require.NoError(t, err)
}

func TestRecipeService_GetUserRecipes(t *testing.T) {
	svc, repo := newTestRecipeSvc(t)
	ctx := context.Background()
	filters := models.RecipeFilters{Search: "curry", MinRating: 4}

	repo.EXPECT().GetUserRecipes(ctx, "user-1", filters).Return([]models.Recipe{{ID: "r1"}}, nil)
	recipes, err := svc.GetUserRecipes(ctx, "user-1", filters)
	require.NoError(t, err)
	assert.Len(t, recipes, 1)

	repo.EXPECT().GetUserRecipes(ctx, "user-1", filters).Return(nil, store.ErrExecutingQuery)
	_, err = svc.GetUserRecipes(ctx, "user-1", filters)
	assert.ErrorIs(t, err, ErrRecipe)
}

func TestRecipeService_GetRecipeByID(t *testing.T) {
	svc, repo := newTestRecipeSvc(t)
	ctx := context.Background()

	repo.EXPECT().GetRecipeByID(ctx, "user-1", "r1").Return(models.Recipe{ID: "r1"}, nil)
	got, err := svc.GetRecipeByID(ctx, "user-1", "r1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "r1", got.ID)

	repo.EXPECT().GetRecipeByID(ctx, "user-2", "r1").Return(models.Recipe{}, store.ErrRecipeNotFound)
	got, err = svc.GetRecipeByID(ctx, "user-2", "r1")
	require.NoError(t, err)
	assert.Nil(t, got)

	repo.EXPECT().GetRecipeByID(ctx, "user-1", "r1").Return(models.Recipe{}, store.ErrExecutingQuery)
	_, err = svc.GetRecipeByID(ctx, "user-1", "r1")
	assert.ErrorIs(t, err, ErrRecipe)
}

func TestRecipeService_UpdateRating(t *testing.T) {
	svc, repo := newTestRecipeSvc(t)
	ctx := context.Background()
	rating := 5.0

	repo.EXPECT().UpdateRating(ctx, "user-1", "r1", 5).Return(models.Recipe{ID: "r1", Rating: &rating}, nil)
	got, err := svc.UpdateRating(ctx, "user-1", models.RateRecipeRequest{RecipeID: "r1", Rating: 5})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 5.0, *got.Rating)

	repo.EXPECT().UpdateRating(ctx, "user-1", "gone", 3).Return(models.Recipe{}, store.ErrRecipeNotFound)
	got, err = svc.UpdateRating(ctx, "user-1", models.RateRecipeRequest{RecipeID: "gone", Rating: 3})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRecipeService_UpdateRating_OutOfRange(t *testing.T) {
	for _, rating := range []int{0, 6, -3} {
		svc, _ := newTestRecipeSvc(t)

		_, err := svc.UpdateRating(context.Background(), "user-1", models.RateRecipeRequest{RecipeID: "r1", Rating: rating})
		assert.ErrorIs(t, err, ErrInvalidRating)
	}
}

func TestRecipeService_DeleteRecipe(t *testing.T) {
	svc, repo := newTestRecipeSvc(t)
	ctx := context.Background()

	repo.EXPECT().DeleteRecipe(ctx, "user-1", "r1").Return(true, nil)
	deleted, err := svc.DeleteRecipe(ctx, "user-1", "r1")
	require.NoError(t, err)
	assert.True(t, deleted)

	repo.EXPECT().DeleteRecipe(ctx, "user-1", "r1").Return(false, store.ErrExecutingStatement)
	_, err = svc.DeleteRecipe(ctx, "user-1", "r1")
	assert.ErrorIs(t, err, ErrRecipe)
}

func TestPositiveOrNil(t *testing.T) {
	assert.Nil(t, positiveOrNil(0))
	assert.Nil(t, positiveOrNil(-1))
	require.NotNil(t, positiveOrNil(7))
	assert.Equal(t, 7, *positiveOrNil(7))
}
