// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-pantry/internal/config"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/internal/mock"
	"github.com/MKhiriev/go-pantry/internal/service"
	"github.com/MKhiriev/go-pantry/internal/utils"
	"github.com/MKhiriev/go-pantry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockServices holds the doubles behind a test Handler.
type mockServices struct {
	auth        *mock.MockAuthService
	ingredients *mock.MockIngredientService
	recipes     *mock.MockRecipeService
	generation  *mock.MockRecipeGenerationService
	appInfo     *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, *mockServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &mockServices{
		auth:        mock.NewMockAuthService(ctrl),
		ingredients: mock.NewMockIngredientService(ctrl),
		recipes:     mock.NewMockRecipeService(ctrl),
		generation:  mock.NewMockRecipeGenerationService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		AuthService:             m.auth,
		IngredientService:       m.ingredients,
		RecipeService:           m.recipes,
		RecipeGenerationService: m.generation,
		AppInfoService:          m.appInfo,
	}, config.App{}, logger.Nop())

	return h, m
}

var (
	alice = models.User{ID: "user-1", Username: "alice", Email: "alice@example.com"}

	aliceSession = models.Session{
		ID:        "session-1",
		UserID:    "user-1",
		ExpiresAt: time.Date(2026, time.November, 17, 12, 0, 0, 0, time.UTC),
	}
)

// signedIn returns r with alice's user and session in its context, as
// withSession leaves it.
func signedIn(r *http.Request) *http.Request {
	return r.WithContext(utils.WithSession(r.Context(), alice, aliceSession))
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var body T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie
		}
	}
	return nil
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, config.App{SessionCookieSecure: true}, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.True(t, h.cookieSecure)
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"service message wins", service.ErrInvalidRating, http.StatusBadRequest, "Rating must be between 1 and 5"},
		{"fallback for plain errors", ErrMissingFormValue, http.StatusBadRequest, "fallback"},
		{"unknown error", assert.AnError, http.StatusInternalServerError, "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, httptest.NewRequest(http.MethodPost, "/", nil), tt.err, "fallback")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantMessage, decodeBody[models.ErrorResponse](t, rec).Error)
		})
	}
}
