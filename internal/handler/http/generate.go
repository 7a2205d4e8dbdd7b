// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-pantry/internal/app"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/internal/utils"
	"github.com/MKhiriev/go-pantry/models"
)

// generatePage offers the available pantry entries for selection.
func (h *Handler) generatePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.GetUserFromContext(ctx)

	ingredients, err := h.services.IngredientService.GetUserIngredients(ctx, user.ID, true)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("loading available ingredients failed")
	}
	if err != nil || ingredients == nil {
		ingredients = []models.UserIngredient{}
	}

	page := models.GeneratePage{
		User:                     user,
		Ingredients:              ingredients,
		AvailableIngredientNames: models.IngredientNames(ingredients),
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

// generateRecipes answers with recipes for the selected ingredients, served
// from the cache when a fresh batch exists.
func (h *Handler) generateRecipes(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidFormValue, err), app.MsgInvalidDataProvided)
		return
	}

	selected := make([]string, 0, len(r.PostForm["selectedIngredients"]))
	for _, name := range r.PostForm["selectedIngredients"] {
		if name = strings.TrimSpace(name); name != "" {
			selected = append(selected, name)
		}
	}
	if len(selected) == 0 {
		writeError(w, r, fmt.Errorf("%w: selectedIngredients", ErrMissingFormValue), app.MsgNoIngredientsChosen)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	recipes, err := h.services.RecipeGenerationService.GetOrGenerate(r.Context(), userID, selected)
	if err != nil {
		writeError(w, r, err, app.MsgGenerationFailed)
		return
	}

	utils.WriteJSON(w, models.GenerateResponse{
		Success:             true,
		Recipes:             recipes,
		SelectedIngredients: selected,
	}, http.StatusOK)
}

// saveGeneratedRecipe stores one of the generated recipes, posted back as
// the JSON of recipeData.
func (h *Handler) saveGeneratedRecipe(w http.ResponseWriter, r *http.Request) {
	recipeData, err := requiredFormValue(r, "recipeData")
	if err != nil {
		writeError(w, r, err, app.MsgInvalidRecipeData)
		return
	}

	var recipe models.GeneratedRecipe
	if err = json.Unmarshal([]byte(recipeData), &recipe); err != nil {
		writeError(w, r, fmt.Errorf("%w: recipeData: %w", ErrInvalidFormValue, err), app.MsgInvalidRecipeData)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	saved, err := h.services.RecipeService.SaveGeneratedRecipe(r.Context(), userID, recipe)
	if err != nil {
		writeError(w, r, err, app.MsgRecipeSaveFailed)
		return
	}

	utils.WriteJSON(w, models.SaveRecipeResponse{
		Success:       true,
		Message:       fmt.Sprintf("Recipe %q saved to your collection!", saved.Title),
		SavedRecipeID: saved.ID,
	}, http.StatusOK)
}
