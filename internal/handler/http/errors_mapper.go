// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/internal/service"
	"github.com/MKhiriev/go-pantry/internal/utils"
	"github.com/MKhiriev/go-pantry/models"
)

var errorStatusMap = map[error]int{
	ErrMissingFormValue: http.StatusBadRequest,
	ErrInvalidFormValue: http.StatusBadRequest,
	ErrResourceNotFound: http.StatusNotFound,

	service.ErrInvalidEmailDomain:    http.StatusBadRequest,
	service.ErrInvalidIngredientName: http.StatusBadRequest,
	service.ErrInvalidRecipe:         http.StatusBadRequest,
	service.ErrInvalidRating:         http.StatusBadRequest,
	service.ErrNoIngredientsSelected: http.StatusBadRequest,
	service.ErrUserExists:            http.StatusConflict,
	service.ErrGenerationFailed:      http.StatusBadGateway,
	service.ErrVersionIsNotSpecified: http.StatusBadRequest,

	service.ErrAuth:                http.StatusInternalServerError,
	service.ErrUserCreateFailed:    http.StatusInternalServerError,
	service.ErrIngredient:          http.StatusInternalServerError,
	service.ErrIngredientAddFailed: http.StatusInternalServerError,
	service.ErrRecipe:              http.StatusInternalServerError,
	service.ErrRecipeSaveFailed:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers a failed action with {error}. The message is the one
// carried by a service error, or fallback for any other error.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusFromError(err)

	message, ok := service.UserMessage(err)
	if !ok {
		message = fallback
	}

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
