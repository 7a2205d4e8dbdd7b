// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-email-domain allowed login email domain
//	-session-duration session lifetime (e.g., "720h")
//	-session-renewal-window renewal window before expiry (e.g., "360h")
//	-secure-cookie mark the session cookie Secure
//	-recipe-cache-ttl recipe cache freshness (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-ingredient-api-url OpenFoodFacts base URL
//	-generator recipe generator provider (openai, gemini, anthropic)
//	-generator-key recipe generator API key
//	-generator-model recipe generator model
func parseFlags(name string, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var emailDomain string
	var sessionDuration, renewalWindow time.Duration
	var secureCookie bool
	var recipeCacheTTL time.Duration
	var requestTimeout time.Duration
	var ingredientAPIURL string
	var generatorProvider, generatorKey, generatorModel string

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&emailDomain, "email-domain", "", "Allowed login email domain")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session lifetime (e.g., 720h)")
	fs.DurationVar(&renewalWindow, "session-renewal-window", 0, "Session renewal window (e.g., 360h)")
	fs.BoolVar(&secureCookie, "secure-cookie", false, "Mark the session cookie Secure")
	fs.DurationVar(&recipeCacheTTL, "recipe-cache-ttl", 0, "Recipe cache freshness (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&ingredientAPIURL, "ingredient-api-url", "", "OpenFoodFacts base URL")
	fs.StringVar(&generatorProvider, "generator", "", "Recipe generator provider (openai, gemini, anthropic)")
	fs.StringVar(&generatorKey, "generator-key", "", "Recipe generator API key")
	fs.StringVar(&generatorModel, "generator-model", "", "Recipe generator model")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			AllowedEmailDomain:   emailDomain,
			SessionDuration:      sessionDuration,
			SessionRenewalWindow: renewalWindow,
			SessionCookieSecure:  secureCookie,
			RecipeCacheTTL:       recipeCacheTTL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			IngredientAPI: IngredientAPI{
				BaseURL: ingredientAPIURL,
			},
			Generator: Generator{
				Provider: generatorProvider,
				APIKey:   generatorKey,
				Model:    generatorModel,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
