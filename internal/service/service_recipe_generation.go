// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-pantry/internal/adapter"
	"github.com/MKhiriev/go-pantry/internal/app"
	"github.com/MKhiriev/go-pantry/internal/config"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/internal/store"
	"github.com/MKhiriev/go-pantry/internal/utils"
	"github.com/MKhiriev/go-pantry/models"
	"github.com/prometheus/client_golang/prometheus"
)

// cacheStoreTimeout bounds the background write of a generated batch.
const cacheStoreTimeout = 10 * time.Second

const (
	lookupHit   = "hit"
	lookupMiss  = "miss"
	lookupStale = "stale"
)

// generationMetrics counts cache lookups and failures of the generation path.
type generationMetrics struct {
	lookups            *prometheus.CounterVec
	generationFailures prometheus.Counter
	storeFailures      prometheus.Counter
}

func newGenerationMetrics(registerer prometheus.Registerer) *generationMetrics {
	m := &generationMetrics{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pantry_recipe_cache_lookups_total",
			Help: "Recipe cache lookups by result (hit, miss, stale).",
		}, []string{"result"}),
		generationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pantry_recipe_generation_failures_total",
			Help: "Recipe generator calls that failed.",
		}),
		storeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pantry_recipe_cache_store_failures_total",
			Help: "Generated batches that could not be cached.",
		}),
	}

	if registerer != nil {
		registerer.MustRegister(m.lookups, m.generationFailures, m.storeFailures)
	}

	return m
}

// recipeGenerationService is the concrete implementation of
// RecipeGenerationService. The generator is injected, so tests can swap it
// for a double.
type recipeGenerationService struct {
	cacheRepository store.RecipeCacheRepository
	generator       adapter.RecipeGenerator

	ids *utils.IDGenerator
	ttl time.Duration
	now func() time.Time

	// pending tracks detached cache writes.
	pending sync.WaitGroup

	metrics *generationMetrics
	logger  *logger.Logger
}

// NewRecipeGenerationService constructs a RecipeGenerationService. Metrics
// are registered with registerer unless it is nil.
func NewRecipeGenerationService(
	cacheRepository store.RecipeCacheRepository,
	generator adapter.RecipeGenerator,
	cfg config.App,
	registerer prometheus.Registerer,
	logger *logger.Logger,
) RecipeGenerationService {
	return &recipeGenerationService{
		cacheRepository: cacheRepository,
		generator:       generator,
		ids:             utils.NewIDGenerator(),
		ttl:             cfg.RecipeCacheTTL,
		now:             time.Now,
		metrics:         newGenerationMetrics(registerer),
		logger:          logger,
	}
}

// GetOrGenerate returns recipes for ingredientNames.
//
// Names are de-duplicated on their folded form, so the order, the letter
// case and spacing do not matter for the cache key. The generator receives
// the names trimmed but otherwise as given.
//
// A fresh cached batch for the user and ingredient set is returned as is;
// otherwise recipes are generated and cached in the background. Cache
// failures never fail the call.
//
// Returns ErrNoIngredientsSelected when no usable name remains and
// ErrGenerationFailed when the generator fails. Failed generations are not
// cached.
func (s *recipeGenerationService) GetOrGenerate(ctx context.Context, userID string, ingredientNames []string) ([]models.GeneratedRecipe, error) {
	log := logger.FromContext(ctx)

	names, keys := utils.DedupeIngredientNames(ingredientNames)
	if len(names) == 0 {
		return nil, ErrNoIngredientsSelected
	}

	fingerprint := utils.IngredientsFingerprint(keys)

	if recipes, ok := s.lookup(ctx, userID, fingerprint); ok {
		return recipes, nil
	}

	recipes, err := s.generator.GenerateRecipes(ctx, names)
	if err != nil {
		s.metrics.generationFailures.Inc()
		log.Err(err).Strs("ingredients", names).Msg("recipe generation failed")
		return nil, newError(CodeGenerationFailed, app.MsgGenerationFailed, err)
	}

	s.storeDetached(ctx, models.RecipeCacheEntry{
		ID:              s.ids.Generate(),
		UserID:          userID,
		IngredientsHash: fingerprint,
		Recipes:         recipes,
		CreatedAt:       s.now(),
	})

	return recipes, nil
}

// lookup returns the cached batch if the newest entry is fresh. Stale
// entries are deleted before reporting a miss.
func (s *recipeGenerationService) lookup(ctx context.Context, userID, fingerprint string) ([]models.GeneratedRecipe, bool) {
	log := logger.FromContext(ctx)

	entry, err := s.cacheRepository.FindLatestCacheEntry(ctx, userID, fingerprint)
	if err != nil {
		if !errors.Is(err, store.ErrCacheEntryNotFound) {
			log.Err(err).Msg("recipe cache lookup failed")
		}
		s.metrics.lookups.WithLabelValues(lookupMiss).Inc()
		return nil, false
	}

	if s.now().Sub(entry.CreatedAt) > s.ttl {
		s.metrics.lookups.WithLabelValues(lookupStale).Inc()
		if err = s.cacheRepository.DeleteCacheEntry(ctx, entry.ID, userID); err != nil {
			log.Err(err).Str("entry_id", entry.ID).Msg("stale recipe cache entry was not deleted")
		}
		return nil, false
	}

	s.metrics.lookups.WithLabelValues(lookupHit).Inc()
	return entry.Recipes, true
}

// storeDetached writes entry in the background, outliving the request.
func (s *recipeGenerationService) storeDetached(ctx context.Context, entry models.RecipeCacheEntry) {
	storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheStoreTimeout)

	s.pending.Go(func() {
		defer cancel()

		if err := s.cacheRepository.SaveCacheEntry(storeCtx, entry); err != nil {
			s.metrics.storeFailures.Inc()
			logger.FromContext(storeCtx).Err(err).Str("user_id", entry.UserID).Msg("generated recipes were not cached")
		}
	})
}

func (s *recipeGenerationService) Wait() {
	s.pending.Wait()
}
