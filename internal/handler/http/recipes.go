// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pantry/internal/app"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/internal/utils"
	"github.com/MKhiriev/go-pantry/models"
)

// recipesPage lists the saved recipes of the user filtered by the search
// and rating query parameters. A malformed rating disables that filter.
// A failed load renders an empty, unfiltered list.
func (h *Handler) recipesPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.GetUserFromContext(ctx)

	filters := models.RecipeFilters{Search: strings.TrimSpace(r.URL.Query().Get("search"))}
	if rating, err := strconv.Atoi(r.URL.Query().Get("rating")); err == nil && rating > 0 {
		filters.MinRating = rating
	}

	recipes, err := h.services.RecipeService.GetUserRecipes(ctx, user.ID, filters)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("loading recipes failed")
		recipes, filters = nil, models.RecipeFilters{}
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}

	utils.WriteJSON(w, models.RecipesPage{User: user, Recipes: recipes, Filters: filters}, http.StatusOK)
}

func (h *Handler) rateRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := requiredFormValue(r, "recipeId")
	if err != nil {
		writeError(w, r, err, app.MsgRatingIsRequired)
		return
	}
	rating, err := intFormValue(r, "rating")
	if err != nil {
		message := app.MsgRatingOutOfRange
		if errors.Is(err, ErrMissingFormValue) {
			message = app.MsgRatingIsRequired
		}
		writeError(w, r, err, message)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	updated, err := h.services.RecipeService.UpdateRating(r.Context(), userID, models.RateRecipeRequest{
		RecipeID: recipeID,
		Rating:   rating,
	})
	if err != nil {
		writeError(w, r, err, app.MsgRecipeRateFailed)
		return
	}
	if updated == nil {
		writeError(w, r, fmt.Errorf("%w: recipe %s", ErrResourceNotFound, recipeID), app.MsgRecipeNotFound)
		return
	}

	message := fmt.Sprintf("Recipe rated %d stars!", rating)
	if rating == 1 {
		message = "Recipe rated 1 star!"
	}
	utils.WriteJSON(w, models.ActionResponse{Success: true, Message: message}, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := requiredFormValue(r, "recipeId")
	if err != nil {
		writeError(w, r, err, app.MsgRecipeIDIsRequired)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	deleted, err := h.services.RecipeService.DeleteRecipe(r.Context(), userID, recipeID)
	if err != nil {
		writeError(w, r, err, app.MsgRecipeDeleteFailed)
		return
	}
	if !deleted {
		writeError(w, r, fmt.Errorf("%w: recipe %s", ErrResourceNotFound, recipeID), app.MsgRecipeGone)
		return
	}

	utils.WriteJSON(w, models.ActionResponse{Success: true, Message: app.MsgRecipeDeleted}, http.StatusOK)
}
