// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("nothing") })
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l := NewClientLogger("client", path)
	l.Info().Str("k", "v").Msg("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "v", entry["k"])
	assert.Contains(t, entry, "func")
}

func TestWithItem_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "test").WithItem("d/v/i")
	l.Info().Msg("x")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "d/v/i", entry["item"])
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "ctx")

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Info().Msg("from ctx")

	assert.Contains(t, buf.String(), `"role":"ctx"`)
}

func TestFromContext_NoLoggerNeverNil(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}
