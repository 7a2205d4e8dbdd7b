// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultSessionDuration      = 30 * 24 * time.Hour
	DefaultSessionRenewalWindow = 15 * 24 * time.Hour
	DefaultRecipeCacheTTL       = 24 * time.Hour
	DefaultRequestTimeout       = 30 * time.Second

	DefaultIngredientAPIBaseURL   = "https://world.openfoodfacts.org"
	DefaultIngredientAPIUserAgent = "go-pantry/1.0 (https://github.com/MKhiriev/go-pantry)"

	DefaultGeneratorProvider  = ProviderOpenAI
	DefaultGeneratorMaxTokens = 4000
	DefaultGeneratorTimeout   = 90 * time.Second
)

// Supported recipe generator providers.
const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// applyDefaults fills every field left empty by all configuration sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = DefaultSessionDuration
	}
	if cfg.App.SessionRenewalWindow == 0 {
		cfg.App.SessionRenewalWindow = DefaultSessionRenewalWindow
	}
	if cfg.App.RecipeCacheTTL == 0 {
		cfg.App.RecipeCacheTTL = DefaultRecipeCacheTTL
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	api := &cfg.Adapter.IngredientAPI
	if api.BaseURL == "" {
		api.BaseURL = DefaultIngredientAPIBaseURL
	}
	if api.UserAgent == "" {
		api.UserAgent = DefaultIngredientAPIUserAgent
	}
	if api.RequestTimeout == 0 {
		api.RequestTimeout = DefaultRequestTimeout
	}

	gen := &cfg.Adapter.Generator
	if gen.Provider == "" {
		gen.Provider = DefaultGeneratorProvider
	}
	if gen.MaxTokens == 0 {
		gen.MaxTokens = DefaultGeneratorMaxTokens
	}
	if gen.RequestTimeout == 0 {
		gen.RequestTimeout = DefaultGeneratorTimeout
	}
}
