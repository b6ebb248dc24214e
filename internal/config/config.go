// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the companion simulator. It is populated by merging values
// from environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the pairing key, version and
	// log destination.
	App App `envPrefix:"APP_"`

	// Storage holds the local item database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the companion simulator.
	Server Server `envPrefix:"SERVER_"`

	// Companion holds the key material and policy of the companion
	// simulator.
	Companion Companion `envPrefix:"COMPANION_"`

	// Adapter holds the client's outbound companion connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// SIF holds secure field lifecycle settings.
	SIF SIF `envPrefix:"SIF_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key shared by a client and its paired companion.
	// Every companion request carries a HashSHA256 header computed with it.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is where the client writes its log. The terminal UI owns
	// stdout, so the client never logs there.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// MetricsAddress is where the client exposes Prometheus metrics.
	// Metrics are not served when empty.
	// Env: APP_METRICS_ADDRESS
	MetricsAddress string `env:"METRICS_ADDRESS"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source name (e.g. "file:vault.db?_fk=1").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the companion simulator.
type Server struct {
	// HTTPAddress is the TCP address the companion listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Companion holds the state of the companion simulator.
type Companion struct {
	// Secret is the root secret item keys are derived from.
	// Env: COMPANION_SECRET
	Secret string `env:"SECRET"`

	// ResetMinutes overrides the reset budget of every grant when non-zero.
	// Env: COMPANION_RESET_MINUTES
	ResetMinutes uint32 `env:"RESET_MINUTES"`

	// DeniedItems lists item ids the companion refuses to release.
	// Env: COMPANION_DENIED_ITEMS (comma separated)
	DeniedItems []string `env:"DENIED_ITEMS"`

	// ApprovalDelay simulates the user confirming on the companion device.
	// Env: COMPANION_APPROVAL_DELAY
	ApprovalDelay time.Duration `env:"APPROVAL_DELAY"`
}

// Adapter holds the client's outbound companion connection settings.
type Adapter struct {
	// HTTPAddress is the companion's address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single HTTP round trip.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the number of companion requests allowed per second.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the burst size of the companion rate limiter.
	// Env: ADAPTER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ExpiryTickInterval is how often due expiry timers are fired.
	// Env: WORKERS_EXPIRY_TICK_INTERVAL
	ExpiryTickInterval time.Duration `env:"EXPIRY_TICK_INTERVAL"`
}

// SIF holds secure field lifecycle settings.
type SIF struct {
	// FetchTimeout bounds a companion fetch when the caller sets none.
	// Env: SIF_FETCH_TIMEOUT
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT"`

	// DebounceDelay coalesces staged keystrokes before re-encryption.
	// Env: SIF_DEBOUNCE_DELAY
	DebounceDelay time.Duration `env:"DEBOUNCE_DELAY"`

	// DefaultResetMinutes is the HighlySecret budget used when neither the
	// grant nor the item carries one.
	// Env: SIF_DEFAULT_RESET_MINUTES
	DefaultResetMinutes uint32 `env:"DEFAULT_RESET_MINUTES"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
