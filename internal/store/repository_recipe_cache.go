// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/models"
)

// recipeCacheRepository stores generated recipe batches in "recipe_cache".
// Entries are append-only; the newest entry for a fingerprint wins.
type recipeCacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewRecipeCacheRepository(db *DB, logger *logger.Logger) RecipeCacheRepository {
	logger.Debug().Msg("creating recipe cache repository")
	return &recipeCacheRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveCacheEntry inserts entry. CreatedAt is stored as given so freshness is
// judged by the same clock that wrote it; a zero CreatedAt means now.
func (r *recipeCacheRepository) SaveCacheEntry(ctx context.Context, entry models.RecipeCacheEntry) error {
	recipes := entry.Recipes
	if recipes == nil {
		recipes = []models.GeneratedRecipe{}
	}
	recipesJSON, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	if _, err = r.DB.ExecContext(ctx, saveRecipeCacheEntry, entry.ID, entry.UserID, entry.IngredientsHash, string(recipesJSON), createdAt.UTC()); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*recipeCacheRepository.SaveCacheEntry").
			Str("user_id", entry.UserID).
			Msg("failed to store recipe batch")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *recipeCacheRepository) FindLatestCacheEntry(ctx context.Context, userID, ingredientsHash string) (models.RecipeCacheEntry, error) {
	var (
		entry       models.RecipeCacheEntry
		recipesJSON []byte
	)
	err := r.withRetry(ctx, "FindLatestCacheEntry", func() error {
		return r.DB.QueryRowContext(ctx, findLatestRecipeCacheEntry, userID, ingredientsHash).
			Scan(&entry.ID, &entry.UserID, &entry.IngredientsHash, &recipesJSON, &entry.CreatedAt)
	})

	switch {
	case err == nil:
	case errors.Is(err, sql.ErrNoRows):
		return models.RecipeCacheEntry{}, ErrCacheEntryNotFound
	default:
		logger.FromContext(ctx).Err(err).Str("func", "*recipeCacheRepository.FindLatestCacheEntry").Msg("failed to look up recipe batch")
		return models.RecipeCacheEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal(recipesJSON, &entry.Recipes); err != nil {
		return models.RecipeCacheEntry{}, fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	return entry, nil
}

// DeleteCacheEntry removes one entry, scoped to its owner.
func (r *recipeCacheRepository) DeleteCacheEntry(ctx context.Context, entryID, userID string) error {
	if _, err := r.DB.ExecContext(ctx, deleteRecipeCacheEntry, entryID, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recipeCacheRepository.DeleteCacheEntry").Msg("failed to delete recipe batch")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
