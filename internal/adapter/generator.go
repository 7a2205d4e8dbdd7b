// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pantry/internal/config"
	"github.com/MKhiriev/go-pantry/internal/logger"
)

// NewRecipeGenerator picks the implementation named by cfg.Provider.
func NewRecipeGenerator(ctx context.Context, cfg config.Generator, logger *logger.Logger) (RecipeGenerator, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIRecipeGenerator(cfg, logger)
	case config.ProviderGemini:
		return NewGeminiRecipeGenerator(ctx, cfg, logger)
	case config.ProviderAnthropic:
		return NewAnthropicRecipeGenerator(cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
