// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/models"
)

// ingredientRepository is the PostgreSQL-backed implementation of
// [IngredientRepository]. Ingredients live in "ingredients", the pantry
// entries that reference them in "user_ingredients".
type ingredientRepository struct {
	*DB
	logger *logger.Logger
}

func NewIngredientRepository(db *DB, logger *logger.Logger) IngredientRepository {
	logger.Debug().Msg("creating ingredient repository")
	return &ingredientRepository{
		DB:     db,
		logger: logger,
	}
}

// AddIngredient inserts ingredient and the pantry entry referencing it in a
// single transaction. The returned entry carries ingredient as its joined
// row.
func (r *ingredientRepository) AddIngredient(ctx context.Context, ingredient models.Ingredient, entry models.UserIngredient) (models.UserIngredient, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*ingredientRepository.AddIngredient").
		Str("user_id", entry.UserID).
		Logger()

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return models.UserIngredient{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, insertIngredient,
		ingredient.ID,
		ingredient.Name,
		nullString(ingredient.Category),
		nullString(ingredient.ImageURL),
		ingredient.UserID,
	); err != nil {
		log.Err(err).Str("ingredient", ingredient.Name).Msg("failed to insert ingredient")
		return models.UserIngredient{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var saved models.UserIngredient
	err = tx.QueryRowContext(ctx, insertUserIngredient,
		entry.ID,
		entry.UserID,
		ingredient.ID,
		nullString(entry.Quantity),
		nullString(entry.Unit),
		entry.ExpiryDate,
	).Scan(userIngredientDest(&saved)...)
	if err != nil {
		log.Err(err).Msg("failed to insert pantry entry")
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserIngredient{}, ErrIngredientNotSaved
		}
		return models.UserIngredient{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return models.UserIngredient{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	saved.Ingredient = ingredient
	return saved, nil
}

// GetUserIngredients lists the pantry of userID, newest first, optionally
// only the entries marked available.
func (r *ingredientRepository) GetUserIngredients(ctx context.Context, userID string, availableOnly bool) ([]models.UserIngredient, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetUserIngredientsQuery(userID, availableOnly)
	if err != nil {
		log.Err(err).Str("func", "*ingredientRepository.GetUserIngredients").Msg("failed to create query")
		return nil, err
	}

	var results []models.UserIngredient
	err = r.withRetry(ctx, "GetUserIngredients", func() error {
		results = make([]models.UserIngredient, 0, 16)

		rows, queryErr := r.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		for rows.Next() {
			var item models.UserIngredient
			dest := append(userIngredientDest(&item),
				&item.Ingredient.ID,
				&item.Ingredient.Name,
				&item.Ingredient.Category,
				&item.Ingredient.ImageURL,
				&item.Ingredient.UserID,
				&item.Ingredient.CreatedAt,
			)
			if scanErr := rows.Scan(dest...); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			results = append(results, item)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).
			Str("func", "*ingredientRepository.GetUserIngredients").
			Str("user_id", userID).
			Msg("failed to list pantry")
		return nil, err
	}

	return results, nil
}

func (r *ingredientRepository) UpdateAvailability(ctx context.Context, userID, entryID string, isAvailable bool) (models.UserIngredient, error) {
	return r.updateEntry(ctx, "UpdateAvailability", updateIngredientAvailability, entryID, userID, isAvailable)
}

func (r *ingredientRepository) UpdateQuantity(ctx context.Context, userID, entryID, quantity, unit string) (models.UserIngredient, error) {
	return r.updateEntry(ctx, "UpdateQuantity", updateIngredientQuantity, entryID, userID, nullString(quantity), nullString(unit))
}

func (r *ingredientRepository) updateEntry(ctx context.Context, op, query string, args ...any) (models.UserIngredient, error) {
	var updated models.UserIngredient
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(userIngredientDest(&updated)...)
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.UserIngredient{}, ErrIngredientNotFound
	default:
		logger.FromContext(ctx).Err(err).Str("func", "*ingredientRepository."+op).Msg("failed to update pantry entry")
		return models.UserIngredient{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// RemoveIngredient deletes the pantry entry and reports whether it existed.
// The ingredient row itself is kept.
func (r *ingredientRepository) RemoveIngredient(ctx context.Context, userID, entryID string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, deleteUserIngredient, entryID, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ingredientRepository.RemoveIngredient").Msg("failed to delete pantry entry")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// userIngredientDest lists scan targets in user_ingredients column order.
func userIngredientDest(item *models.UserIngredient) []any {
	return []any{
		&item.ID,
		&item.UserID,
		&item.IngredientID,
		&item.Quantity,
		&item.Unit,
		&item.ExpiryDate,
		&item.IsAvailable,
		&item.CreatedAt,
	}
}
