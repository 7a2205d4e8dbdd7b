// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-pantry/models"
)

const (
	createUser = `INSERT INTO users (id, username, email, age)
    VALUES ($1, $2, $3, $4)
    RETURNING id, username, email, age;`

	findUserByEmail = `SELECT id, username, email, age
    FROM users
    WHERE email = $1;`

	createSession = `INSERT INTO sessions (id, user_id, expires_at)
    VALUES ($1, $2, $3);`

	findSessionWithUser = `SELECT s.id, s.user_id, s.expires_at, u.id, u.username, u.email, u.age
    FROM sessions s
    INNER JOIN users u ON u.id = s.user_id
    WHERE s.id = $1;`

	updateSessionExpiry = `UPDATE sessions SET expires_at = $2 WHERE id = $1;`

	deleteSession = `DELETE FROM sessions WHERE id = $1;`

	insertIngredient = `INSERT INTO ingredients (id, name, category, image_url, user_id)
    VALUES ($1, $2, $3, $4, $5)
    ON CONFLICT DO NOTHING;`

	insertUserIngredient = `INSERT INTO user_ingredients (id, user_id, ingredient_id, quantity, unit, expiry_date, is_available)
    VALUES ($1, $2, $3, $4, $5, $6, TRUE)
    RETURNING id, user_id, ingredient_id, COALESCE(quantity, ''), COALESCE(unit, ''), expiry_date, is_available, created_at;`

	updateIngredientAvailability = `UPDATE user_ingredients SET is_available = $3
    WHERE id = $1 AND user_id = $2
    RETURNING id, user_id, ingredient_id, COALESCE(quantity, ''), COALESCE(unit, ''), expiry_date, is_available, created_at;`

	updateIngredientQuantity = `UPDATE user_ingredients SET quantity = $3, unit = $4
    WHERE id = $1 AND user_id = $2
    RETURNING id, user_id, ingredient_id, COALESCE(quantity, ''), COALESCE(unit, ''), expiry_date, is_available, created_at;`

	deleteUserIngredient = `DELETE FROM user_ingredients WHERE id = $1 AND user_id = $2;`

	saveRecipe = `INSERT INTO recipes (id, user_id, title, description, instructions, ingredients_json, prep_time, cook_time, servings)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING ` + recipeColumnList + `;`

	getRecipeByID = `SELECT ` + recipeColumnList + `
    FROM recipes
    WHERE id = $1 AND user_id = $2;`

	updateRecipeRating = `UPDATE recipes SET rating = $3
    WHERE id = $1 AND user_id = $2
    RETURNING ` + recipeColumnList + `;`

	deleteRecipe = `DELETE FROM recipes WHERE id = $1 AND user_id = $2;`

	saveRecipeCacheEntry = `INSERT INTO recipe_cache (id, user_id, ingredients_hash, recipes_json, created_at)
    VALUES ($1, $2, $3, $4, $5);`

	findLatestRecipeCacheEntry = `SELECT id, user_id, ingredients_hash, recipes_json, created_at
    FROM recipe_cache
    WHERE user_id = $1 AND ingredients_hash = $2
    ORDER BY created_at DESC
    LIMIT 1;`

	deleteRecipeCacheEntry = `DELETE FROM recipe_cache WHERE id = $1 AND user_id = $2;`
)

const recipeColumnList = `id, user_id, title, COALESCE(description, ''), instructions, ingredients_json,
    prep_time, cook_time, servings, rating, created_at`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userIngredientColumns = []string{
	"ui.id",
	"ui.user_id",
	"ui.ingredient_id",
	"COALESCE(ui.quantity, '')",
	"COALESCE(ui.unit, '')",
	"ui.expiry_date",
	"ui.is_available",
	"ui.created_at",
	"i.id",
	"i.name",
	"COALESCE(i.category, '')",
	"COALESCE(i.image_url, '')",
	"i.user_id",
	"i.created_at",
}

// buildGetUserIngredientsQuery builds the pantry listing of userID joined
// with ingredient rows, newest first.
func buildGetUserIngredientsQuery(userID string, availableOnly bool) (string, []any, error) {
	qb := psql.Select(userIngredientColumns...).
		From("user_ingredients ui").
		InnerJoin("ingredients i ON i.id = ui.ingredient_id").
		Where(sq.Eq{"ui.user_id": userID})

	if availableOnly {
		qb = qb.Where(sq.Eq{"ui.is_available": true})
	}

	query, args, err := qb.OrderBy("ui.created_at DESC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildGetUserRecipesQuery builds the recipe listing of userID narrowed by
// filters, newest first. Search and MinRating combine.
func buildGetUserRecipesQuery(userID string, filters models.RecipeFilters) (string, []any, error) {
	qb := psql.Select(recipeColumnList).
		From("recipes").
		Where(sq.Eq{"user_id": userID})

	if search := strings.TrimSpace(filters.Search); search != "" {
		qb = qb.Where(sq.ILike{"title": "%" + escapeLike(search) + "%"})
	}

	if filters.MinRating > 0 {
		qb = qb.Where(sq.GtOrEq{"rating": filters.MinRating})
	}

	query, args, err := qb.OrderBy("created_at DESC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in s match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
