// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pantry/internal/config"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/models"
	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

type geminiRecipeGenerator struct {
	client    *genai.Client
	model     string
	maxTokens int
	timeout   time.Duration
	logger    *logger.Logger
}

// NewGeminiRecipeGenerator constructs a [RecipeGenerator] on the Gemini
// API.
func NewGeminiRecipeGenerator(ctx context.Context, cfg config.Generator, logger *logger.Logger) (RecipeGenerator, error) {
	if cfg.APIKey == "" {
		return nil, ErrInvalidAPIKey
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	return &geminiRecipeGenerator{
		client:    client,
		model:     model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.RequestTimeout,
		logger:    logger,
	}, nil
}

// GenerateRecipes implements [RecipeGenerator].
func (g *geminiRecipeGenerator) GenerateRecipes(ctx context.Context, ingredients []string) ([]models.GeneratedRecipe, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	genCfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	if g.maxTokens > 0 {
		genCfg.MaxOutputTokens = int32(g.maxTokens)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(buildRecipePrompt(ingredients)), genCfg)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*geminiRecipeGenerator.GenerateRecipes").
			Str("model", g.model).
			Msg("generate content failed")
		return nil, fmt.Errorf("%w: %w", ErrGenerationRequest, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates", ErrMalformedGenerationResponse)
	}

	return parseGeneratedRecipes(resp.Text())
}
