// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pantry/models"
)

const recipePromptTemplate = `You are a professional vegan chef assistant. Generate 5 creative, delicious, and nutritionally balanced vegan recipes using the provided ingredients.

Available ingredients: %s

Requirements:
- All recipes must be 100%% vegan (no animal products)
- Use as many of the available ingredients as possible
- Each recipe should be unique and interesting
- Include realistic prep and cook times
- Specify servings for each recipe
- Keep instructions clear and concise
- Ensure recipes are practical for home cooking

Format your response as valid JSON with this exact structure:
{
  "recipes": [
    {
      "title": "Recipe Name",
      "description": "Brief appetizing description",
      "ingredients": [
        {"name": "ingredient name", "quantity": "amount", "unit": "measurement unit"}
      ],
      "instructions": ["Step 1", "Step 2"],
      "prepTime": minutes_as_number,
      "cookTime": minutes_as_number,
      "servings": number_of_servings
    }
  ]
}

Only return the JSON, no additional text.`

func buildRecipePrompt(ingredients []string) string {
	return fmt.Sprintf(recipePromptTemplate, strings.Join(ingredients, ", "))
}

// parseGeneratedRecipes decodes a model answer into recipes. The answer may
// be wrapped in a markdown code fence.
func parseGeneratedRecipes(text string) ([]models.GeneratedRecipe, error) {
	text = stripCodeFence(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty answer", ErrMalformedGenerationResponse)
	}

	var envelope struct {
		Recipes json.RawMessage `json:"recipes"`
	}
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedGenerationResponse, err)
	}

	raw := strings.TrimSpace(string(envelope.Recipes))
	if !strings.HasPrefix(raw, "[") {
		return nil, fmt.Errorf("%w: recipes is missing or not an array", ErrMalformedGenerationResponse)
	}

	var recipes []models.GeneratedRecipe
	if err := json.Unmarshal(envelope.Recipes, &recipes); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedGenerationResponse, err)
	}
	if len(recipes) == 0 {
		return nil, fmt.Errorf("%w: no recipes", ErrMalformedGenerationResponse)
	}

	return recipes, nil
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	// drop the opening fence line, including an optional language tag
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	} else {
		text = strings.TrimPrefix(text, "```")
	}

	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")

	return strings.TrimSpace(text)
}
