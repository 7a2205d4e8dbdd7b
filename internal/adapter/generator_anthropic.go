// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pantry/internal/config"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/models"
	"github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
)

const (
	// DefaultAnthropicModel is used when no model is configured.
	DefaultAnthropicModel = "claude-sonnet-4-20250514"

	// defaultAnthropicMaxTokens applies when cfg.MaxTokens is unset; the
	// Messages API requires a limit.
	defaultAnthropicMaxTokens = 4000
)

type anthropicRecipeGenerator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	logger    *logger.Logger
}

// NewAnthropicRecipeGenerator constructs a [RecipeGenerator] on the
// Anthropic Messages API. Extra request options are applied after the ones
// derived from cfg.
func NewAnthropicRecipeGenerator(cfg config.Generator, logger *logger.Logger, opts ...anthropicoption.RequestOption) (RecipeGenerator, error) {
	if cfg.APIKey == "" {
		return nil, ErrInvalidAPIKey
	}

	clientOpts := []anthropicoption.RequestOption{anthropicoption.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, anthropicoption.WithBaseURL(cfg.BaseURL))
	}
	if cfg.RequestTimeout > 0 {
		clientOpts = append(clientOpts, anthropicoption.WithRequestTimeout(cfg.RequestTimeout))
	}
	clientOpts = append(clientOpts, opts...)

	model := cfg.Model
	if model == "" {
		model = DefaultAnthropicModel
	}
	maxTokens := int64(cfg.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = defaultAnthropicMaxTokens
	}

	return &anthropicRecipeGenerator{
		client:    anthropic.NewClient(clientOpts...),
		model:     model,
		maxTokens: maxTokens,
		logger:    logger,
	}, nil
}

// GenerateRecipes implements [RecipeGenerator].
func (g *anthropicRecipeGenerator) GenerateRecipes(ctx context.Context, ingredients []string) ([]models.GeneratedRecipe, error) {
	message, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildRecipePrompt(ingredients))),
		},
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*anthropicRecipeGenerator.GenerateRecipes").
			Str("model", g.model).
			Msg("message request failed")
		return nil, fmt.Errorf("%w: %w", ErrGenerationRequest, err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("%w: no text content", ErrMalformedGenerationResponse)
	}

	return parseGeneratedRecipes(text.String())
}
