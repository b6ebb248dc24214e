// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Client defaults applied to unset fields.
const (
	DefaultRequestTimeout            = 10 * time.Second
	DefaultRateLimit                 = 5.0
	DefaultRateBurst                 = 5
	DefaultExpiryTickInterval        = time.Second
	DefaultFetchTimeout              = 30 * time.Second
	DefaultDebounceDelay             = 40 * time.Millisecond
	DefaultResetMinutes       uint32 = 5
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key shared with the paired companion.
	HashKey string
	// LogFile is the client log destination.
	LogFile string
	// MetricsAddress enables the metrics exporter when non-empty.
	MetricsAddress string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the companion endpoint address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// RateLimit is the number of companion requests allowed per second.
	RateLimit float64
	// RateBurst is the burst size of the rate limiter.
	RateBurst int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ExpiryTickInterval defines how often due expiry timers fire.
	ExpiryTickInterval time.Duration
}

// ClientSIF contains secure field lifecycle settings.
type ClientSIF struct {
	// FetchTimeout bounds a companion fetch when the caller sets none.
	FetchTimeout time.Duration
	// DebounceDelay coalesces staged edits before re-encryption.
	DebounceDelay time.Duration
	// DefaultResetMinutes is the fallback HighlySecret reset budget.
	DefaultResetMinutes uint32
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains companion transport settings.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// SIF contains secure field lifecycle settings.
	SIF ClientSIF
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills defaults and validates the resulting
// [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg to a [ClientConfig] and fills defaults. It does
// not validate.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			LogFile: cfg.App.LogFile,

			MetricsAddress: cfg.App.MetricsAddress,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RateLimit:      cfg.Adapter.RateLimit,
			RateBurst:      cfg.Adapter.RateBurst,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{ExpiryTickInterval: cfg.Workers.ExpiryTickInterval},
		SIF: ClientSIF{
			FetchTimeout:        cfg.SIF.FetchTimeout,
			DebounceDelay:       cfg.SIF.DebounceDelay,
			DefaultResetMinutes: cfg.SIF.DefaultResetMinutes,
		},
	}

	clientCfg.applyDefaults()
	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.RateLimit == 0 {
		cfg.Adapter.RateLimit = DefaultRateLimit
	}
	if cfg.Adapter.RateBurst == 0 {
		cfg.Adapter.RateBurst = DefaultRateBurst
	}
	if cfg.Workers.ExpiryTickInterval == 0 {
		cfg.Workers.ExpiryTickInterval = DefaultExpiryTickInterval
	}
	if cfg.SIF.FetchTimeout == 0 {
		cfg.SIF.FetchTimeout = DefaultFetchTimeout
	}
	if cfg.SIF.DebounceDelay == 0 {
		cfg.SIF.DebounceDelay = DefaultDebounceDelay
	}
	if cfg.SIF.DefaultResetMinutes == 0 {
		cfg.SIF.DefaultResetMinutes = DefaultResetMinutes
	}
}

// CompanionConfig is the configuration of the companion simulator.
type CompanionConfig struct {
	HashKey string
	Version string
	Server  Server
	Policy  Companion
}

// GetCompanionConfig builds and validates the companion simulator config.
func GetCompanionConfig() (*CompanionConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	companionCfg := NewCompanionConfig(cfg)
	return companionCfg, companionCfg.validate()
}

// NewCompanionConfig maps cfg to a [CompanionConfig] and fills defaults.
func NewCompanionConfig(cfg *StructuredConfig) *CompanionConfig {
	companionCfg := &CompanionConfig{
		HashKey: cfg.App.HashKey,
		Version: cfg.App.Version,
		Server:  cfg.Server,
		Policy:  cfg.Companion,
	}
	if companionCfg.Server.RequestTimeout == 0 {
		companionCfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if companionCfg.Version == "" {
		companionCfg.Version = "dev"
	}
	return companionCfg
}
