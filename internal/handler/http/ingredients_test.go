// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-pantry/internal/app"
	"github.com/MKhiriev/go-pantry/internal/service"
	"github.com/MKhiriev/go-pantry/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIngredientsPage(t *testing.T) {
	h, m := newTestHandler(t)

	m.ingredients.EXPECT().GetUserIngredients(gomock.Any(), alice.ID, false).Return([]models.UserIngredient{
		{ID: "e1", IsAvailable: true, Ingredient: models.Ingredient{Name: "tofu"}},
	}, nil)

	rec := httptest.NewRecorder()
	h.ingredientsPage(rec, signedIn(httptest.NewRequest(http.MethodGet, "/ingredients", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	page := decodeBody[models.IngredientsPage](t, rec)
	assert.Equal(t, alice, page.User)
	require.Len(t, page.Ingredients, 1)
	assert.Equal(t, "tofu", page.Ingredients[0].Ingredient.Name)
}

func TestIngredientsPage_LoadFailureRendersEmptyList(t *testing.T) {
	h, m := newTestHandler(t)

	m.ingredients.EXPECT().GetUserIngredients(gomock.Any(), alice.ID, false).Return(nil, service.ErrIngredient)

	rec := httptest.NewRecorder()
	h.ingredientsPage(rec, signedIn(httptest.NewRequest(http.MethodGet, "/ingredients", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ingredients":[]`)
}

func TestAddManualIngredient(t *testing.T) {
	h, m := newTestHandler(t)

	m.ingredients.EXPECT().AddIngredient(gomock.Any(), alice.ID, models.AddIngredientRequest{
		Name:     "Chickpeas",
		Quantity: "2",
		Unit:     "cans",
	}).Return(models.UserIngredient{ID: "e1"}, nil)

	rec := httptest.NewRecorder()
	h.addManualIngredient(rec, signedIn(postForm("/ingredients/add-manual", url.Values{
		"name":     {" Chickpeas "},
		"quantity": {"2"},
		"unit":     {"cans"},
	})))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[models.ActionResponse](t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "Added Chickpeas to your ingredients!", body.Message)
}

func TestAddManualIngredient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		form        url.Values
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing name",
			form:        url.Values{"quantity": {"1"}},
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgIngredientNameMissing,
		},
		{
			name:        "invalid name",
			form:        url.Values{"name": {"x"}},
			serviceErr:  service.ErrInvalidIngredientName,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgIngredientNameInvalid,
		},
		{
			name:        "storage failure",
			form:        url.Values{"name": {"lentils"}},
			serviceErr:  service.ErrIngredientAddFailed,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgIngredientAddFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.serviceErr != nil {
				m.ingredients.EXPECT().AddIngredient(gomock.Any(), alice.ID, gomock.Any()).Return(models.UserIngredient{}, tt.serviceErr)
			}

			rec := httptest.NewRecorder()
			h.addManualIngredient(rec, signedIn(postForm("/ingredients/add-manual", tt.form)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeBody[models.ErrorResponse](t, rec).Error)
		})
	}
}

func TestAddIngredientFromSearch_KeepsProductData(t *testing.T) {
	h, m := newTestHandler(t)

	m.ingredients.EXPECT().AddIngredient(gomock.Any(), alice.ID, models.AddIngredientRequest{
		Name:     "Oat milk",
		Category: "Plant-based drinks",
		ImageURL: "https://images.example/oat.jpg",
	}).Return(models.UserIngredient{ID: "e1"}, nil)

	rec := httptest.NewRecorder()
	h.addIngredientFromSearch(rec, signedIn(postForm("/ingredients/add-from-search", url.Values{
		"name":     {"Oat milk"},
		"category": {"Plant-based drinks"},
		"imageUrl": {"https://images.example/oat.jpg"},
	})))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchIngredients(t *testing.T) {
	h, m := newTestHandler(t)

	m.ingredients.EXPECT().SearchIngredients(gomock.Any(), "tofu").Return([]models.IngredientSearchResult{
		{ID: "301", Name: "Firm tofu"},
	}, nil)

	rec := httptest.NewRecorder()
	h.searchIngredients(rec, signedIn(postForm("/ingredients/search", url.Values{"query": {"tofu"}})))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[models.IngredientSearchResponse](t, rec)
	assert.Equal(t, "tofu", body.SearchQuery)
	require.Len(t, body.SearchResults, 1)
	assert.Equal(t, "Firm tofu", body.SearchResults[0].Name)
}

func TestSearchIngredients_ShortQuerySkipsLookup(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, query := range []string{"", "a", " é "} {
		rec := httptest.NewRecorder()
		h.searchIngredients(rec, signedIn(postForm("/ingredients/search", url.Values{"query": {query}})))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"searchResults":[]`)
	}
}

func TestSearchIngredients_LookupFailure(t *testing.T) {
	h, m := newTestHandler(t)

	m.ingredients.EXPECT().SearchIngredients(gomock.Any(), "tofu").Return(nil, &service.Error{
		Code:    service.CodeIngredient,
		Message: app.MsgIngredientSearchFailed,
	})

	rec := httptest.NewRecorder()
	h.searchIngredients(rec, signedIn(postForm("/ingredients/search", url.Values{"query": {"tofu"}})))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgIngredientSearchFailed, decodeBody[models.ErrorResponse](t, rec).Error)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetProductDetails(t *testing.T) {
	h, m := newTestHandler(t)

	m.ingredients.EXPECT().GetIngredientDetails(gomock.Any(), "301").Return(&models.IngredientSearchResult{ID: "301", Name: "Firm tofu"}, nil)
	m.ingredients.EXPECT().GetIngredientDetails(gomock.Any(), "404").Return(nil, nil)

	rec := httptest.NewRecorder()
	h.getProductDetails(rec, withURLParam(signedIn(httptest.NewRequest(http.MethodGet, "/ingredients/products/301", nil)), "productID", "301"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Firm tofu", decodeBody[models.IngredientSearchResult](t, rec).Name)

	rec = httptest.NewRecorder()
	h.getProductDetails(rec, withURLParam(signedIn(httptest.NewRequest(http.MethodGet, "/ingredients/products/404", nil)), "productID", "404"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgProductNotFound, decodeBody[models.ErrorResponse](t, rec).Error)
}

func TestToggleIngredientAvailability(t *testing.T) {
	tests := []struct {
		name        string
		isAvailable string
		want        bool
		wantMessage string
	}{
		{"mark available", "true", true, "Ingredient marked as available"},
		{"mark unavailable", "false", false, "Ingredient marked as unavailable"},
		{"anything else is unavailable", "yes", false, "Ingredient marked as unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.ingredients.EXPECT().UpdateAvailability(gomock.Any(), alice.ID, "e1", tt.want).Return(&models.UserIngredient{ID: "e1"}, nil)

			rec := httptest.NewRecorder()
			h.toggleIngredientAvailability(rec, signedIn(postForm("/ingredients/toggle-availability", url.Values{
				"ingredientId": {"e1"},
				"isAvailable":  {tt.isAvailable},
			})))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeBody[models.ActionResponse](t, rec).Message)
		})
	}
}

func TestToggleIngredientAvailability_Errors(t *testing.T) {
	h, m := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.toggleIngredientAvailability(rec, signedIn(postForm("/ingredients/toggle-availability", url.Values{"isAvailable": {"true"}})))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgIngredientIDIsRequired, decodeBody[models.ErrorResponse](t, rec).Error)

	m.ingredients.EXPECT().UpdateAvailability(gomock.Any(), alice.ID, "other-users-entry", true).Return(nil, nil)
	rec = httptest.NewRecorder()
	h.toggleIngredientAvailability(rec, signedIn(postForm("/ingredients/toggle-availability", url.Values{
		"ingredientId": {"other-users-entry"},
		"isAvailable":  {"true"},
	})))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgIngredientNotFound, decodeBody[models.ErrorResponse](t, rec).Error)
}

func TestUpdateIngredientQuantity(t *testing.T) {
	h, m := newTestHandler(t)

	m.ingredients.EXPECT().UpdateQuantity(gomock.Any(), alice.ID, "e1", "500", "g").Return(&models.UserIngredient{ID: "e1"}, nil)

	rec := httptest.NewRecorder()
	h.updateIngredientQuantity(rec, signedIn(postForm("/ingredients/update-quantity", url.Values{
		"ingredientId": {"e1"},
		"quantity":     {"500"},
		"unit":         {"g"},
	})))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgIngredientUpdated, decodeBody[models.ActionResponse](t, rec).Message)
}

func TestRemoveIngredient(t *testing.T) {
	h, m := newTestHandler(t)

	gomock.InOrder(
		m.ingredients.EXPECT().RemoveIngredient(gomock.Any(), alice.ID, "e1").Return(true, nil),
		m.ingredients.EXPECT().RemoveIngredient(gomock.Any(), alice.ID, "e1").Return(false, nil),
	)

	rec := httptest.NewRecorder()
	h.removeIngredient(rec, signedIn(postForm("/ingredients/remove", url.Values{"ingredientId": {"e1"}})))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, app.MsgIngredientRemoved, decodeBody[models.ActionResponse](t, rec).Message)

	rec = httptest.NewRecorder()
	h.removeIngredient(rec, signedIn(postForm("/ingredients/remove", url.Values{"ingredientId": {"e1"}})))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgIngredientGone, decodeBody[models.ErrorResponse](t, rec).Error)
}
