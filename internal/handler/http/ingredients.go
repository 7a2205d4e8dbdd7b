// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pantry/internal/app"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/internal/utils"
	"github.com/MKhiriev/go-pantry/models"
	"github.com/go-chi/chi/v5"
)

// minSearchQueryLength is the shortest query sent to the ingredient lookup.
const minSearchQueryLength = 2

// ingredientsPage lists the whole pantry of the user. A failed load renders
// an empty pantry.
func (h *Handler) ingredientsPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := utils.GetUserFromContext(ctx)

	ingredients, err := h.services.IngredientService.GetUserIngredients(ctx, user.ID, false)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("loading ingredients failed")
	}
	if ingredients == nil {
		ingredients = []models.UserIngredient{}
	}

	utils.WriteJSON(w, models.IngredientsPage{User: user, Ingredients: ingredients}, http.StatusOK)
}

func (h *Handler) addManualIngredient(w http.ResponseWriter, r *http.Request) {
	name, err := requiredFormValue(r, "name")
	if err != nil {
		writeError(w, r, err, app.MsgIngredientNameMissing)
		return
	}

	h.addIngredient(w, r, models.AddIngredientRequest{
		Name:     name,
		Quantity: strings.TrimSpace(r.PostFormValue("quantity")),
		Unit:     strings.TrimSpace(r.PostFormValue("unit")),
	})
}

// addIngredientFromSearch adds a product picked from the lookup results,
// keeping its category and image.
func (h *Handler) addIngredientFromSearch(w http.ResponseWriter, r *http.Request) {
	name, err := requiredFormValue(r, "name")
	if err != nil {
		writeError(w, r, err, app.MsgIngredientNameMissing)
		return
	}

	h.addIngredient(w, r, models.AddIngredientRequest{
		Name:     name,
		Category: strings.TrimSpace(r.PostFormValue("category")),
		ImageURL: strings.TrimSpace(r.PostFormValue("imageUrl")),
		Quantity: strings.TrimSpace(r.PostFormValue("quantity")),
		Unit:     strings.TrimSpace(r.PostFormValue("unit")),
	})
}

func (h *Handler) addIngredient(w http.ResponseWriter, r *http.Request, request models.AddIngredientRequest) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	if _, err := h.services.IngredientService.AddIngredient(r.Context(), userID, request); err != nil {
		writeError(w, r, err, app.MsgIngredientAddFailed)
		return
	}

	utils.WriteJSON(w, models.ActionResponse{
		Success: true,
		Message: fmt.Sprintf("Added %s to your ingredients!", request.Name),
	}, http.StatusOK)
}

// searchIngredients looks products up by name. Queries shorter than
// minSearchQueryLength answer with no results.
func (h *Handler) searchIngredients(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.PostFormValue("query"))

	response := models.IngredientSearchResponse{
		SearchResults: []models.IngredientSearchResult{},
		SearchQuery:   query,
	}
	if utf8.RuneCountInString(query) < minSearchQueryLength {
		utils.WriteJSON(w, response, http.StatusOK)
		return
	}

	results, err := h.services.IngredientService.SearchIngredients(r.Context(), query)
	if err != nil {
		writeError(w, r, err, app.MsgIngredientSearchFailed)
		return
	}
	if results != nil {
		response.SearchResults = results
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getProductDetails(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimSpace(chi.URLParam(r, "productID"))
	if productID == "" {
		writeError(w, r, fmt.Errorf("%w: productID", ErrMissingFormValue), app.MsgProductIDIsRequired)
		return
	}

	product, err := h.services.IngredientService.GetIngredientDetails(r.Context(), productID)
	if err != nil {
		writeError(w, r, err, app.MsgIngredientSearchFailed)
		return
	}
	if product == nil {
		writeError(w, r, fmt.Errorf("%w: product %s", ErrResourceNotFound, productID), app.MsgProductNotFound)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

func (h *Handler) toggleIngredientAvailability(w http.ResponseWriter, r *http.Request) {
	entryID, err := requiredFormValue(r, "ingredientId")
	if err != nil {
		writeError(w, r, err, app.MsgIngredientIDIsRequired)
		return
	}
	isAvailable := r.PostFormValue("isAvailable") == "true"

	userID, _ := utils.GetUserIDFromContext(r.Context())
	updated, err := h.services.IngredientService.UpdateAvailability(r.Context(), userID, entryID, isAvailable)
	if err != nil {
		writeError(w, r, err, app.MsgIngredientUpdateFailed)
		return
	}
	if updated == nil {
		writeError(w, r, fmt.Errorf("%w: ingredient %s", ErrResourceNotFound, entryID), app.MsgIngredientNotFound)
		return
	}

	message := "Ingredient marked as unavailable"
	if isAvailable {
		message = "Ingredient marked as available"
	}
	utils.WriteJSON(w, models.ActionResponse{Success: true, Message: message}, http.StatusOK)
}

func (h *Handler) updateIngredientQuantity(w http.ResponseWriter, r *http.Request) {
	entryID, err := requiredFormValue(r, "ingredientId")
	if err != nil {
		writeError(w, r, err, app.MsgIngredientIDIsRequired)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	updated, err := h.services.IngredientService.UpdateQuantity(r.Context(), userID, entryID,
		strings.TrimSpace(r.PostFormValue("quantity")), strings.TrimSpace(r.PostFormValue("unit")))
	if err != nil {
		writeError(w, r, err, app.MsgIngredientUpdateFailed)
		return
	}
	if updated == nil {
		writeError(w, r, fmt.Errorf("%w: ingredient %s", ErrResourceNotFound, entryID), app.MsgIngredientNotFound)
		return
	}

	utils.WriteJSON(w, models.ActionResponse{Success: true, Message: app.MsgIngredientUpdated}, http.StatusOK)
}

func (h *Handler) removeIngredient(w http.ResponseWriter, r *http.Request) {
	entryID, err := requiredFormValue(r, "ingredientId")
	if err != nil {
		writeError(w, r, err, app.MsgIngredientIDIsRequired)
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	removed, err := h.services.IngredientService.RemoveIngredient(r.Context(), userID, entryID)
	if err != nil {
		writeError(w, r, err, app.MsgIngredientRemoveFailed)
		return
	}
	if !removed {
		writeError(w, r, fmt.Errorf("%w: ingredient %s", ErrResourceNotFound, entryID), app.MsgIngredientGone)
		return
	}

	utils.WriteJSON(w, models.ActionResponse{Success: true, Message: app.MsgIngredientRemoved}, http.StatusOK)
}
