// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-pantry/internal/app"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/internal/service"
	"github.com/MKhiriev/go-pantry/internal/utils"
	"github.com/MKhiriev/go-pantry/models"
)

// loginPage sends signed-in users home.
func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserIDFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	utils.WriteJSON(w, struct{}{}, http.StatusOK)
}

// login signs the user in by the posted email, creating the account on
// first login, and sets the session cookie.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email := strings.TrimSpace(r.PostFormValue("email"))
	if email == "" {
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgEmailIsRequired}, http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), email)
	if err != nil {
		if message, ok := service.UserMessage(err); ok {
			log.Debug().Err(err).Msg("login rejected")
			utils.WriteJSON(w, models.ErrorResponse{Error: message, Email: email}, http.StatusBadRequest)
			return
		}

		log.Err(err).Msg("login failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgUnexpectedError, Email: email}, http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, result.Token, result.ExpiresAt, h.cookieSecure)
	log.Info().Str("user_id", result.User.ID).Msg("user logged in")

	http.Redirect(w, r, "/", http.StatusFound)
}

// logout drops the session of a signed-in user. It always ends on the
// login page.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetSessionFromContext(r.Context()); ok {
		if err := h.services.AuthService.Logout(r.Context(), sessionTokenFromRequest(r)); err != nil {
			logger.FromRequest(r).Err(err).Msg("logout failed")
		}
		clearSessionCookie(w, h.cookieSecure)
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/ingredients", http.StatusFound)
}
