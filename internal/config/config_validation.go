// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig]. Every field is optional at
// this level; the client and companion views validate what they need.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RateLimit < 0 || cfg.Adapter.RateBurst < 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RateLimit <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ExpiryTickInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.SIF.FetchTimeout <= 0 || cfg.SIF.DebounceDelay <= 0 {
		return ErrInvalidSIFConfigs
	}

	if cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *CompanionConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.HashKey == "" || cfg.Policy.Secret == "" {
		return ErrInvalidAppConfigs
	}
	return nil
}
