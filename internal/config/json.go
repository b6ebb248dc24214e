// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		HashKey string `json:"hash_key"`
		Version string `json:"version"`
		LogFile string `json:"log_file"`

		MetricsAddress string `json:"metrics_address"`
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

	Companion struct {
		Secret        string   `json:"secret"`
		ResetMinutes  uint32   `json:"reset_minutes"`
		DeniedItems   []string `json:"denied_items"`
		ApprovalDelay Duration `json:"approval_delay"`
	} `json:"companion,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ExpiryTickInterval Duration `json:"expiry_tick_interval"`
	} `json:"workers,omitempty"`

	SIF struct {
		FetchTimeout        Duration `json:"fetch_timeout"`
		DebounceDelay       Duration `json:"debounce_delay"`
		DefaultResetMinutes uint32   `json:"default_reset_minutes"`
	} `json:"sif,omitempty"`
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

	cfg := &StructuredConfig{
		App: App{
			HashKey: jsonCfg.App.HashKey,
			Version: jsonCfg.App.Version,
			LogFile: jsonCfg.App.LogFile,

			MetricsAddress: jsonCfg.App.MetricsAddress,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Companion: Companion{
			Secret:        jsonCfg.Companion.Secret,
			ResetMinutes:  jsonCfg.Companion.ResetMinutes,
			DeniedItems:   jsonCfg.Companion.DeniedItems,
			ApprovalDelay: time.Duration(jsonCfg.Companion.ApprovalDelay),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			RateLimit:      jsonCfg.Adapter.RateLimit,
			RateBurst:      jsonCfg.Adapter.RateBurst,
		},
		Workers: Workers{
			ExpiryTickInterval: time.Duration(jsonCfg.Workers.ExpiryTickInterval),
		},
		SIF: SIF{
			FetchTimeout:        time.Duration(jsonCfg.SIF.FetchTimeout),
			DebounceDelay:       time.Duration(jsonCfg.SIF.DebounceDelay),
			DefaultResetMinutes: jsonCfg.SIF.DefaultResetMinutes,
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
