// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-pantry/internal/adapter"
	"github.com/MKhiriev/go-pantry/internal/config"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/internal/store"
	"github.com/MKhiriev/go-pantry/internal/validators"
	"github.com/prometheus/client_golang/prometheus"
)

// Services groups every service the handlers depend on.
type Services struct {
	AuthService             AuthService
	IngredientService       IngredientService
	RecipeService           RecipeService
	RecipeGenerationService RecipeGenerationService
	AppInfoService          AppInfoService
}

// NewServices wires the services over storages and adapters. Ingredient and
// recipe services are wrapped with validation. Generation metrics are
// registered with registerer.
func NewServices(storages *store.Storages, adapters *adapter.Adapters, cfg config.StructuredConfig, registerer prometheus.Registerer, logger *logger.Logger) (*Services, error) {
	validator := validators.NewPantryValidator(cfg.App.AllowedEmailDomain)

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	sessionService := NewSessionService(storages.SessionRepository, cfg.App, logger)

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, sessionService, validator, cfg.App, logger),
		IngredientService: NewIngredientValidationService(validator).
			Wrap(NewIngredientService(storages.IngredientRepository, adapters.IngredientAPI, logger)),
		RecipeService: NewRecipeValidationService(validator).
			Wrap(NewRecipeService(storages.RecipeRepository, logger)),
		RecipeGenerationService: NewRecipeGenerationService(storages.RecipeCacheRepository, adapters.RecipeGenerator, cfg.App, registerer, logger),
		AppInfoService:          appInfoService,
	}, nil
}
