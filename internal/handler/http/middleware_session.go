// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-pantry/internal/app"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/internal/utils"
	"github.com/rs/zerolog"
)

// withSession resolves the session cookie into the user and session of the
// request context.
//
// Requests without a cookie pass through anonymously. An unknown or expired
// token clears the cookie. A renewed session re-issues the cookie with the
// extended expiry. A storage failure lets the request through anonymously
// and keeps the cookie, so a transient outage does not sign the user out.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionTokenFromRequest(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		result, err := h.services.AuthService.ValidateSession(ctx, token)
		if err != nil {
			logger.FromRequest(r).Err(err).Msg(app.MsgSessionValidationFailed)
			next.ServeHTTP(w, r)
			return
		}

		if !result.Valid() {
			clearSessionCookie(w, h.cookieSecure)
			next.ServeHTTP(w, r)
			return
		}

		if result.Renewed {
			setSessionCookie(w, token, result.Session.ExpiresAt, h.cookieSecure)
		}

		zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", result.User.ID)
		})

		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, *result.User, *result.Session)))
	})
}

// requireUser redirects anonymous requests to the login page.
func requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
