// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-pantry/internal/app"
	"github.com/MKhiriev/go-pantry/internal/service"
	"github.com/MKhiriev/go-pantry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRecipesPage_Filters(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  models.RecipeFilters
	}{
		{"no filters", "", models.RecipeFilters{}},
		{"search and rating", "?search=curry&rating=4", models.RecipeFilters{Search: "curry", MinRating: 4}},
		{"malformed rating is ignored", "?search=dal&rating=lots", models.RecipeFilters{Search: "dal"}},
		{"zero rating is no filter", "?rating=0", models.RecipeFilters{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.recipes.EXPECT().GetUserRecipes(gomock.Any(), alice.ID, tt.want).Return([]models.Recipe{{ID: "r1", Title: "Chana masala"}}, nil)

			rec := httptest.NewRecorder()
			h.recipesPage(rec, signedIn(httptest.NewRequest(http.MethodGet, "/recipes"+tt.query, nil)))

			require.Equal(t, http.StatusOK, rec.Code)
			page := decodeBody[models.RecipesPage](t, rec)
			assert.Equal(t, tt.want, page.Filters)
			assert.Len(t, page.Recipes, 1)
		})
	}
}

func TestRecipesPage_LoadFailure(t *testing.T) {
	h, m := newTestHandler(t)

	m.recipes.EXPECT().GetUserRecipes(gomock.Any(), alice.ID, gomock.Any()).Return(nil, service.ErrRecipe)

	rec := httptest.NewRecorder()
	h.recipesPage(rec, signedIn(httptest.NewRequest(http.MethodGet, "/recipes?search=curry&rating=3", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeBody[models.RecipesPage](t, rec)
	assert.Empty(t, page.Recipes)
	assert.Equal(t, models.RecipeFilters{}, page.Filters)
	assert.Contains(t, rec.Body.String(), `"recipes":[]`)
}

func TestRateRecipe(t *testing.T) {
	tests := []struct {
		rating      string
		want        int
		wantMessage string
	}{
		{"1", 1, "Recipe rated 1 star!"},
		{"4", 4, "Recipe rated 4 stars!"},
	}

	for _, tt := range tests {
		t.Run(tt.rating, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.recipes.EXPECT().UpdateRating(gomock.Any(), alice.ID, models.RateRecipeRequest{RecipeID: "r1", Rating: tt.want}).
				Return(&models.Recipe{ID: "r1"}, nil)

			rec := httptest.NewRecorder()
			h.rateRecipe(rec, signedIn(postForm("/recipes/rate", url.Values{"recipeId": {"r1"}, "rating": {tt.rating}})))

			require.Equal(t, http.StatusOK, rec.Code)
			body := decodeBody[models.ActionResponse](t, rec)
			assert.True(t, body.Success)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestRateRecipe_Errors(t *testing.T) {
	tests := []struct {
		name        string
		form        url.Values
		setup       func(m *mockServices)
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing recipe id",
			form:        url.Values{"rating": {"3"}},
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgRatingIsRequired,
		},
		{
			name:        "missing rating",
			form:        url.Values{"recipeId": {"r1"}},
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgRatingIsRequired,
		},
		{
			name:        "rating is not a number",
			form:        url.Values{"recipeId": {"r1"}, "rating": {"five"}},
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgRatingOutOfRange,
		},
		{
			name: "rating out of range",
			form: url.Values{"recipeId": {"r1"}, "rating": {"9"}},
			setup: func(m *mockServices) {
				m.recipes.EXPECT().UpdateRating(gomock.Any(), alice.ID, gomock.Any()).Return(nil, service.ErrInvalidRating)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgRatingOutOfRange,
		},
		{
			name: "recipe of another user",
			form: url.Values{"recipeId": {"r2"}, "rating": {"3"}},
			setup: func(m *mockServices) {
				m.recipes.EXPECT().UpdateRating(gomock.Any(), alice.ID, gomock.Any()).Return(nil, nil)
			},
			wantStatus:  http.StatusNotFound,
			wantMessage: app.MsgRecipeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			rec := httptest.NewRecorder()
			h.rateRecipe(rec, signedIn(postForm("/recipes/rate", tt.form)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeBody[models.ErrorResponse](t, rec).Error)
		})
	}
}

func TestDeleteRecipe(t *testing.T) {
	h, m := newTestHandler(t)

	gomock.InOrder(
		m.recipes.EXPECT().DeleteRecipe(gomock.Any(), alice.ID, "r1").Return(true, nil),
		m.recipes.EXPECT().DeleteRecipe(gomock.Any(), alice.ID, "r1").Return(false, nil),
		m.recipes.EXPECT().DeleteRecipe(gomock.Any(), alice.ID, "r1").Return(false, service.ErrRecipe),
	)

	rec := httptest.NewRecorder()
	h.deleteRecipe(rec, signedIn(postForm("/recipes/delete", url.Values{"recipeId": {"r1"}})))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgRecipeDeleted, decodeBody[models.ActionResponse](t, rec).Message)

	rec = httptest.NewRecorder()
	h.deleteRecipe(rec, signedIn(postForm("/recipes/delete", url.Values{"recipeId": {"r1"}})))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgRecipeGone, decodeBody[models.ErrorResponse](t, rec).Error)

	rec = httptest.NewRecorder()
	h.deleteRecipe(rec, signedIn(postForm("/recipes/delete", url.Values{"recipeId": {"r1"}})))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	h.deleteRecipe(rec, signedIn(postForm("/recipes/delete", url.Values{})))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgRecipeIDIsRequired, decodeBody[models.ErrorResponse](t, rec).Error)
}
