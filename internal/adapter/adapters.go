// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pantry/internal/config"
	"github.com/MKhiriev/go-pantry/internal/logger"
)

// Adapters groups the outbound integrations the services depend on.
type Adapters struct {
	RecipeGenerator RecipeGenerator
	IngredientAPI   IngredientAPI
}

func NewAdapters(ctx context.Context, cfg config.Adapter, logger *logger.Logger) (*Adapters, error) {
	generator, err := NewRecipeGenerator(ctx, cfg.Generator, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating recipe generator: %w", err)
	}

	return &Adapters{
		RecipeGenerator: generator,
		IngredientAPI:   NewOpenFoodFactsAdapter(cfg.IngredientAPI, logger),
	}, nil
}
