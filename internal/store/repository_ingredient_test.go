// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entryColumns = []string{
	"id", "user_id", "ingredient_id", "quantity", "unit", "expiry_date", "is_available", "created_at",
}

var entryWithIngredientColumns = append(append([]string{}, entryColumns...),
	"i_id", "i_name", "i_category", "i_image_url", "i_user_id", "i_created_at",
)

func newTestIngredientRepo(t *testing.T) (IngredientRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock := newTestDB(t)
	return NewIngredientRepository(newDBFromSQL(sqlDB), logger.Nop()), mock
}

func TestIngredientRepository_AddIngredient(t *testing.T) {
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	ingredient := models.Ingredient{ID: "ing-1", Name: "tofu", UserID: "u-1"}
	entry := models.UserIngredient{ID: "e-1", UserID: "u-1", Quantity: "400", Unit: "g"}

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestIngredientRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ingredients")).
			WithArgs("ing-1", "tofu", nil, nil, "u-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO user_ingredients")).
			WithArgs("e-1", "u-1", "ing-1", "400", "g", nil).
			WillReturnRows(sqlmock.NewRows(entryColumns).
				AddRow("e-1", "u-1", "ing-1", "400", "g", nil, true, created))
		mock.ExpectCommit()

		saved, err := repo.AddIngredient(testContext(), ingredient, entry)
		require.NoError(t, err)

		assert.Equal(t, "e-1", saved.ID)
		assert.Equal(t, "ing-1", saved.IngredientID)
		assert.True(t, saved.IsAvailable)
		assert.Nil(t, saved.ExpiryDate)
		assert.Equal(t, created, saved.CreatedAt)
		assert.Equal(t, ingredient, saved.Ingredient)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ingredient insert fails and rolls back", func(t *testing.T) {
		repo, mock := newTestIngredientRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ingredients")).
			WillReturnError(errors.New("boom"))
		mock.ExpectRollback()

		_, err := repo.AddIngredient(testContext(), ingredient, entry)
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("entry insert returns nothing", func(t *testing.T) {
		repo, mock := newTestIngredientRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ingredients")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO user_ingredients")).
			WillReturnRows(sqlmock.NewRows(entryColumns))
		mock.ExpectRollback()

		_, err := repo.AddIngredient(testContext(), ingredient, entry)
		assert.ErrorIs(t, err, ErrIngredientNotSaved)
	})

	t.Run("begin fails", func(t *testing.T) {
		repo, mock := newTestIngredientRepo(t)
		mock.ExpectBegin().WillReturnError(errors.New("no conn"))

		_, err := repo.AddIngredient(testContext(), ingredient, entry)
		assert.ErrorIs(t, err, ErrBeginningTransaction)
	})

	t.Run("commit fails", func(t *testing.T) {
		repo, mock := newTestIngredientRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ingredients")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO user_ingredients")).
			WillReturnRows(sqlmock.NewRows(entryColumns).
				AddRow("e-1", "u-1", "ing-1", "400", "g", nil, true, created))
		mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

		_, err := repo.AddIngredient(testContext(), ingredient, entry)
		assert.ErrorIs(t, err, ErrCommitingTransaction)
	})
}

func TestIngredientRepository_GetUserIngredients(t *testing.T) {
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	expiry := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

	t.Run("joins ingredient rows", func(t *testing.T) {
		repo, mock := newTestIngredientRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM user_ingredients ui")).
			WithArgs("u-1", true).
			WillReturnRows(sqlmock.NewRows(entryWithIngredientColumns).
				AddRow("e-2", "u-1", "ing-2", "", "", expiry, true, created,
					"ing-2", "lentils", "pulses", "", "u-1", created).
				AddRow("e-1", "u-1", "ing-1", "400", "g", nil, true, created,
					"ing-1", "tofu", "", "http://img", "u-1", created))

		items, err := repo.GetUserIngredients(testContext(), "u-1", true)
		require.NoError(t, err)
		require.Len(t, items, 2)

		assert.Equal(t, "lentils", items[0].Ingredient.Name)
		assert.Equal(t, "pulses", items[0].Ingredient.Category)
		require.NotNil(t, items[0].ExpiryDate)
		assert.Equal(t, expiry, *items[0].ExpiryDate)
		assert.Equal(t, "tofu", items[1].Ingredient.Name)
		assert.Equal(t, "http://img", items[1].Ingredient.ImageURL)
		assert.Equal(t, "400", items[1].Quantity)
	})

	t.Run("empty pantry", func(t *testing.T) {
		repo, mock := newTestIngredientRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM user_ingredients ui")).
			WithArgs("u-1").
			WillReturnRows(sqlmock.NewRows(entryWithIngredientColumns))

		items, err := repo.GetUserIngredients(testContext(), "u-1", false)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestIngredientRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM user_ingredients ui")).
			WillReturnError(errors.New("boom"))

		_, err := repo.GetUserIngredients(testContext(), "u-1", false)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan error", func(t *testing.T) {
		repo, mock := newTestIngredientRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM user_ingredients ui")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("e-1"))

		_, err := repo.GetUserIngredients(testContext(), "u-1", false)
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestIngredientRepository_UpdateAvailability(t *testing.T) {
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	t.Run("updated", func(t *testing.T) {
		repo, mock := newTestIngredientRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE user_ingredients SET is_available = $3")).
			WithArgs("e-1", "u-1", false).
			WillReturnRows(sqlmock.NewRows(entryColumns).
				AddRow("e-1", "u-1", "ing-1", "", "", nil, false, created))

		entry, err := repo.UpdateAvailability(testContext(), "u-1", "e-1", false)
		require.NoError(t, err)
		assert.False(t, entry.IsAvailable)
	})

	t.Run("other user's entry", func(t *testing.T) {
		repo, mock := newTestIngredientRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE user_ingredients SET is_available = $3")).
			WithArgs("e-1", "intruder", true).
			WillReturnRows(sqlmock.NewRows(entryColumns))

		_, err := repo.UpdateAvailability(testContext(), "intruder", "e-1", true)
		assert.ErrorIs(t, err, ErrIngredientNotFound)
	})
}

func TestIngredientRepository_UpdateQuantity(t *testing.T) {
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	t.Run("empty values become null", func(t *testing.T) {
		repo, mock := newTestIngredientRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE user_ingredients SET quantity = $3, unit = $4")).
			WithArgs("e-1", "u-1", nil, nil).
			WillReturnRows(sqlmock.NewRows(entryColumns).
				AddRow("e-1", "u-1", "ing-1", "", "", nil, true, created))

		entry, err := repo.UpdateQuantity(testContext(), "u-1", "e-1", "", "")
		require.NoError(t, err)
		assert.Empty(t, entry.Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock := newTestIngredientRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE user_ingredients SET quantity = $3, unit = $4")).
			WillReturnError(errors.New("boom"))

		_, err := repo.UpdateQuantity(testContext(), "u-1", "e-1", "2", "cups")
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func TestIngredientRepository_RemoveIngredient(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"removed", 1, true},
		{"missing", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestIngredientRepo(t)

			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM user_ingredients")).
				WithArgs("e-1", "u-1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			removed, err := repo.RemoveIngredient(testContext(), "u-1", "e-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, removed)
		})
	}
}
