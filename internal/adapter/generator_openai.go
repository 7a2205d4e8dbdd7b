// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pantry/internal/config"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/models"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = "gpt-4o-mini"

type openAIRecipeGenerator struct {
	client    openai.Client
	model     string
	maxTokens int
	logger    *logger.Logger
}

// NewOpenAIRecipeGenerator constructs a [RecipeGenerator] on the OpenAI chat
// completions API. Extra request options are applied after the ones derived
// from cfg.
func NewOpenAIRecipeGenerator(cfg config.Generator, logger *logger.Logger, opts ...option.RequestOption) (RecipeGenerator, error) {
	if cfg.APIKey == "" {
		return nil, ErrInvalidAPIKey
	}

	clientOpts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.RequestTimeout > 0 {
		clientOpts = append(clientOpts, option.WithRequestTimeout(cfg.RequestTimeout))
	}
	clientOpts = append(clientOpts, opts...)

	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &openAIRecipeGenerator{
		client:    openai.NewClient(clientOpts...),
		model:     model,
		maxTokens: cfg.MaxTokens,
		logger:    logger,
	}, nil
}

// GenerateRecipes implements [RecipeGenerator].
func (g *openAIRecipeGenerator) GenerateRecipes(ctx context.Context, ingredients []string) ([]models.GeneratedRecipe, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildRecipePrompt(ingredients)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}
	if g.maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(g.maxTokens))
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*openAIRecipeGenerator.GenerateRecipes").
			Str("model", g.model).
			Msg("chat completion failed")
		return nil, fmt.Errorf("%w: %w", ErrGenerationRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ErrMalformedGenerationResponse)
	}

	return parseGeneratedRecipes(resp.Choices[0].Message.Content)
}
