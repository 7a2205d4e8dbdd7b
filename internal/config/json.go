// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		AllowedEmailDomain   string   `json:"allowed_email_domain"`
		SessionDuration      Duration `json:"session_duration"`
		SessionRenewalWindow Duration `json:"session_renewal_window"`
		SessionCookieSecure  bool     `json:"session_cookie_secure"`
		RecipeCacheTTL       Duration `json:"recipe_cache_ttl"`
		Version              string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		IngredientAPI struct {
			BaseURL        string   `json:"base_url"`
			UserAgent      string   `json:"user_agent"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"ingredient_api,omitempty"`

		Generator struct {
			Provider       string   `json:"provider"`
			APIKey         string   `json:"api_key"`
			Model          string   `json:"model"`
			BaseURL        string   `json:"base_url"`
			MaxTokens      int      `json:"max_tokens"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"generator,omitempty"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	api := jsonCfg.Adapter.IngredientAPI
	gen := jsonCfg.Adapter.Generator

	cfg := &StructuredConfig{
		App: App{
			AllowedEmailDomain:   jsonCfg.App.AllowedEmailDomain,
			SessionDuration:      time.Duration(jsonCfg.App.SessionDuration),
			SessionRenewalWindow: time.Duration(jsonCfg.App.SessionRenewalWindow),
			SessionCookieSecure:  jsonCfg.App.SessionCookieSecure,
			RecipeCacheTTL:       time.Duration(jsonCfg.App.RecipeCacheTTL),
			Version:              jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			IngredientAPI: IngredientAPI{
				BaseURL:        api.BaseURL,
				UserAgent:      api.UserAgent,
				RequestTimeout: time.Duration(api.RequestTimeout),
			},
			Generator: Generator{
				Provider:       gen.Provider,
				APIKey:         gen.APIKey,
				Model:          gen.Model,
				BaseURL:        gen.BaseURL,
				MaxTokens:      gen.MaxTokens,
				RequestTimeout: time.Duration(gen.RequestTimeout),
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
