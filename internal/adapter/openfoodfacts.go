// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pantry/internal/config"
	"github.com/MKhiriev/go-pantry/internal/logger"
	"github.com/MKhiriev/go-pantry/internal/utils"
	"github.com/MKhiriev/go-pantry/models"
)

// DefaultSearchLimit is the page size used when a caller passes limit <= 0.
const DefaultSearchLimit = 20

const minSearchQueryLength = 2

type offProduct struct {
	Code          string `json:"code"`
	ProductName   string `json:"product_name"`
	ProductNameEN string `json:"product_name_en"`
	Categories    string `json:"categories"`
	ImageFrontURL string `json:"image_front_url"`
	Brands        string `json:"brands"`
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
	Count    int          `json:"count"`
}

type offProductResponse struct {
	Product *offProduct `json:"product"`
}

type openFoodFactsAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewOpenFoodFactsAdapter constructs an [IngredientAPI] backed by the
// OpenFoodFacts REST API.
func NewOpenFoodFactsAdapter(cfg config.IngredientAPI, logger *logger.Logger) IngredientAPI {
	return &openFoodFactsAdapter{
		client: utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.UserAgent, cfg.RequestTimeout),
		logger: logger,
	}
}

// SearchIngredients implements [IngredientAPI] with GET /cgi/search.pl.
func (a *openFoodFactsAdapter) SearchIngredients(ctx context.Context, query string, limit int) ([]models.IngredientSearchResult, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minSearchQueryLength {
		return []models.IngredientSearchResult{}, nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"search_terms":  query,
			"search_simple": "1",
			"action":        "process",
			"json":          "1",
			"page_size":     strconv.Itoa(limit),
		}).
		Get("/cgi/search.pl")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*openFoodFactsAdapter.SearchIngredients").Msg("search request failed")
		return nil, &IngredientAPIError{Message: "failed to search ingredients", Err: err}
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body offSearchResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, &IngredientAPIError{Message: "failed to decode search response", Err: err}
	}

	results := make([]models.IngredientSearchResult, 0, min(len(body.Products), limit))
	for _, p := range body.Products {
		if len(results) == limit {
			break
		}
		if p.ProductNameEN == "" && p.ProductName == "" {
			continue
		}
		results = append(results, p.toSearchResult())
	}

	return results, nil
}

// GetIngredientByID implements [IngredientAPI] with
// GET /api/v0/product/{id}.json.
func (a *openFoodFactsAdapter) GetIngredientByID(ctx context.Context, id string) (*models.IngredientSearchResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get("/api/v0/product/{id}.json")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*openFoodFactsAdapter.GetIngredientByID").Msg("product request failed")
		return nil, &IngredientAPIError{Message: "failed to fetch ingredient details", Err: err}
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body offProductResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, &IngredientAPIError{Message: "failed to decode product response", Err: err}
	}
	if body.Product == nil {
		return nil, nil
	}

	result := body.Product.toSearchResult()
	return &result, nil
}

func (p offProduct) toSearchResult() models.IngredientSearchResult {
	name := p.ProductNameEN
	if name == "" {
		name = p.ProductName
	}
	if name == "" {
		name = "Unknown"
	}

	category, _, _ := strings.Cut(p.Categories, ",")

	var brands []string
	for b := range strings.SplitSeq(p.Brands, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brands = append(brands, b)
		}
	}

	return models.IngredientSearchResult{
		ID:       p.Code,
		Name:     name,
		Category: strings.TrimSpace(category),
		ImageURL: p.ImageFrontURL,
		Brands:   brands,
	}
}
