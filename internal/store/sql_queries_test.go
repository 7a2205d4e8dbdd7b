// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-pantry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildGetUserIngredientsQuery_All(t *testing.T) {
	query, args, err := buildGetUserIngredientsQuery("user-1", false)
	require.NoError(t, err)

	require.Equal(t, []any{"user-1"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from user_ingredients ui")
	require.Contains(t, q, "join ingredients i on i.id = ui.ingredient_id")
	require.Contains(t, q, "ui.user_id = $1")
	require.Contains(t, q, "order by ui.created_at desc")
	assert.NotContains(t, q, "is_available =")
}

func Test_buildGetUserIngredientsQuery_AvailableOnly(t *testing.T) {
	query, args, err := buildGetUserIngredientsQuery("user-1", true)
	require.NoError(t, err)

	require.Equal(t, []any{"user-1", true}, args)
	require.Contains(t, query, "ui.is_available = $2")
}

func Test_buildGetUserIngredientsQuery_SelectsColumnsInScanOrder(t *testing.T) {
	query, _, err := buildGetUserIngredientsQuery("u", false)
	require.NoError(t, err)

	prev := -1
	for _, col := range userIngredientColumns {
		idx := strings.Index(query, col)
		require.GreaterOrEqual(t, idx, 0, "column %q not selected", col)
		require.Greater(t, idx, prev, "column %q out of order", col)
		prev = idx
	}
}

func Test_buildGetUserRecipesQuery(t *testing.T) {
	tests := []struct {
		name         string
		filters      models.RecipeFilters
		wantArgs     []any
		wantContains []string
		wantMissing  []string
	}{
		{
			name:        "no filters",
			filters:     models.RecipeFilters{},
			wantArgs:    []any{"user-1"},
			wantMissing: []string{"ILIKE", "rating >="},
		},
		{
			name:         "search only",
			filters:      models.RecipeFilters{Search: "Curry"},
			wantArgs:     []any{"user-1", "%Curry%"},
			wantContains: []string{"title ILIKE $2"},
			wantMissing:  []string{"rating >="},
		},
		{
			name:         "min rating only",
			filters:      models.RecipeFilters{MinRating: 4},
			wantArgs:     []any{"user-1", 4},
			wantContains: []string{"rating >= $2"},
			wantMissing:  []string{"ILIKE"},
		},
		{
			name:         "filters combine",
			filters:      models.RecipeFilters{Search: "soup", MinRating: 3},
			wantArgs:     []any{"user-1", "%soup%", 3},
			wantContains: []string{"title ILIKE $2", "rating >= $3"},
		},
		{
			name:        "blank search is ignored",
			filters:     models.RecipeFilters{Search: "   "},
			wantArgs:    []any{"user-1"},
			wantMissing: []string{"ILIKE"},
		},
		{
			name:     "wildcards match literally",
			filters:  models.RecipeFilters{Search: `50%_off\`},
			wantArgs: []any{"user-1", `%50\%\_off\\%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetUserRecipesQuery("user-1", tt.filters)
			require.NoError(t, err)

			assert.Equal(t, tt.wantArgs, args)
			assert.Contains(t, query, "user_id = $1")
			assert.True(t, strings.HasSuffix(query, "ORDER BY created_at DESC"), query)
			for _, part := range tt.wantContains {
				assert.Contains(t, query, part)
			}
			for _, part := range tt.wantMissing {
				assert.NotContains(t, query, part)
			}
		})
	}
}

func Test_escapeLike(t *testing.T) {
	assert.Equal(t, "plain", escapeLike("plain"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\d`, escapeLike(`c:\d`))
}
