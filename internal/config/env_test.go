// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_HASH_KEY": "pairing",
		"APP_VERSION":  "1.2.3",
		"APP_LOG_FILE": "/tmp/sif.log",

		"APP_METRICS_ADDRESS": "127.0.0.1:9100",

		"STORAGE_DB_DSN": "file:vault.db",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"COMPANION_SECRET":         "root",
		"COMPANION_RESET_MINUTES":  "7",
		"COMPANION_DENIED_ITEMS":   "a,b",
		"COMPANION_APPROVAL_DELAY": "250ms",

		"ADAPTER_ADDRESS":         "http://localhost:8080",
		"ADAPTER_REQUEST_TIMEOUT": "5s",
		"ADAPTER_RATE_LIMIT":      "2.5",
		"ADAPTER_RATE_BURST":      "3",

		"WORKERS_EXPIRY_TICK_INTERVAL": "2s",

		"SIF_FETCH_TIMEOUT":         "20s",
		"SIF_DEBOUNCE_DELAY":        "50ms",
		"SIF_DEFAULT_RESET_MINUTES": "9",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "pairing", cfg.App.HashKey)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/tmp/sif.log", cfg.App.LogFile)
	assert.Equal(t, "127.0.0.1:9100", cfg.App.MetricsAddress)

	assert.Equal(t, "file:vault.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "root", cfg.Companion.Secret)
	assert.Equal(t, uint32(7), cfg.Companion.ResetMinutes)
	assert.Equal(t, []string{"a", "b"}, cfg.Companion.DeniedItems)
	assert.Equal(t, 250*time.Millisecond, cfg.Companion.ApprovalDelay)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2.5, cfg.Adapter.RateLimit)
	assert.Equal(t, 3, cfg.Adapter.RateBurst)

	assert.Equal(t, 2*time.Second, cfg.Workers.ExpiryTickInterval)

	assert.Equal(t, 20*time.Second, cfg.SIF.FetchTimeout)
	assert.Equal(t, 50*time.Millisecond, cfg.SIF.DebounceDelay)
	assert.Equal(t, uint32(9), cfg.SIF.DefaultResetMinutes)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"SIF_FETCH_TIMEOUT": "invalid_duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidUint(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SIF_DEFAULT_RESET_MINUTES": "-1",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{"WORKERS_EXPIRY_TICK_INTERVAL": tt.envValue})

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			assert.Equal(t, tt.expected, cfg.Workers.ExpiryTickInterval)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_HASH_KEY",
		"APP_VERSION",
		"APP_LOG_FILE",
		"APP_METRICS_ADDRESS",

		"STORAGE_DB_DSN",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",

		"COMPANION_SECRET",
		"COMPANION_RESET_MINUTES",
		"COMPANION_DENIED_ITEMS",
		"COMPANION_APPROVAL_DELAY",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_RATE_LIMIT",
		"ADAPTER_RATE_BURST",

		"WORKERS_EXPIRY_TICK_INTERVAL",

		"SIF_FETCH_TIMEOUT",
		"SIF_DEBOUNCE_DELAY",
		"SIF_DEFAULT_RESET_MINUTES",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
