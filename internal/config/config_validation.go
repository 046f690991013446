// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultHTTPAddress    = ":5000"
	defaultTokenIssuer    = "go-auth-profile"
	defaultTokenDuration  = time.Hour
	defaultConnectTimeout = 10 * time.Second
	defaultCORSOrigin     = "*"
)

// applyDefaults fills every field that no source has set.
// PORT and MONGO_URI are honoured as fallbacks for the listening address
// and the store DSN.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" && cfg.Port != "" {
		cfg.Server.HTTPAddress = ":" + cfg.Port
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 {
		cfg.Server.CORSAllowedOrigins = []string{defaultCORSOrigin}
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = cfg.MongoURI
	}
	if cfg.Storage.DB.ConnectTimeout == 0 {
		cfg.Storage.DB.ConnectTimeout = defaultConnectTimeout
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A missing store DSN or token sign key is fatal: the server cannot
// resolve users or verify tokens without them.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidAppConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}
