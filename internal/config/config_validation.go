// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with the offending detail.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	domain := cfg.App.AllowedEmailDomain
	if domain == "" || strings.Contains(domain, "@") {
		return fmt.Errorf("%w: allowed email domain %q", ErrInvalidAppConfigs, domain)
	}

	if cfg.App.SessionRenewalWindow >= cfg.App.SessionDuration {
		return fmt.Errorf("%w: renewal window %s must be shorter than session duration %s",
			ErrInvalidAppConfigs, cfg.App.SessionRenewalWindow, cfg.App.SessionDuration)
	}

	gen := cfg.Adapter.Generator
	switch gen.Provider {
	case ProviderOpenAI, ProviderGemini, ProviderAnthropic:
	default:
		return fmt.Errorf("%w: unknown generator provider %q", ErrInvalidAdapterConfigs, gen.Provider)
	}

	if gen.APIKey == "" {
		return fmt.Errorf("%w: empty generator API key", ErrInvalidAdapterConfigs)
	}

	return nil
}
