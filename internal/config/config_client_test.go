package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructured() *StructuredConfig {
	return &StructuredConfig{
		App:     App{HashKey: "pairing"},
		Storage: Storage{DB: DB{DSN: "file:vault.db"}},
		Adapter: Adapter{HTTPAddress: "localhost:8080"},
	}
}

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg := NewClientConfig(validStructured())

	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultRateLimit, cfg.Adapter.RateLimit)
	assert.Equal(t, DefaultRateBurst, cfg.Adapter.RateBurst)
	assert.Equal(t, DefaultExpiryTickInterval, cfg.Workers.ExpiryTickInterval)
	assert.Equal(t, DefaultFetchTimeout, cfg.SIF.FetchTimeout)
	assert.Equal(t, DefaultDebounceDelay, cfg.SIF.DebounceDelay)
	assert.Equal(t, DefaultResetMinutes, cfg.SIF.DefaultResetMinutes)
	require.NoError(t, cfg.validate())
}

func TestNewClientConfig_KeepsExplicitValues(t *testing.T) {
	s := validStructured()
	s.SIF.FetchTimeout = 3 * time.Second
	s.SIF.DefaultResetMinutes = 1
	s.Adapter.RateBurst = 10

	cfg := NewClientConfig(s)
	assert.Equal(t, 3*time.Second, cfg.SIF.FetchTimeout)
	assert.Equal(t, uint32(1), cfg.SIF.DefaultResetMinutes)
	assert.Equal(t, 10, cfg.Adapter.RateBurst)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *ClientConfig)
		want   error
	}{
		{name: "empty dsn", mutate: func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" }, want: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(cfg *ClientConfig) { cfg.Storage.DB.DSN = ":memory:" }, want: ErrInvalidStorageConfigs},
		{name: "no adapter address", mutate: func(cfg *ClientConfig) { cfg.Adapter.HTTPAddress = "" }, want: ErrInvalidAdapterConfigs},
		{name: "no tick", mutate: func(cfg *ClientConfig) { cfg.Workers.ExpiryTickInterval = 0 }, want: ErrInvalidWorkerConfigs},
		{name: "no debounce", mutate: func(cfg *ClientConfig) { cfg.SIF.DebounceDelay = 0 }, want: ErrInvalidSIFConfigs},
		{name: "no hash key", mutate: func(cfg *ClientConfig) { cfg.App.HashKey = "" }, want: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewClientConfig(validStructured())
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.want)
		})
	}
}

func TestCompanionConfig(t *testing.T) {
	s := &StructuredConfig{
		App:       App{HashKey: "pairing"},
		Server:    Server{HTTPAddress: "localhost:8080"},
		Companion: Companion{Secret: "root", DeniedItems: []string{"x"}},
	}

	cfg := NewCompanionConfig(s)
	require.NoError(t, cfg.validate())
	assert.Equal(t, "dev", cfg.Version)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"x"}, cfg.Policy.DeniedItems)

	cfg.Policy.Secret = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)

	cfg = NewCompanionConfig(&StructuredConfig{})
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}
