// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestTraceIDCtxKey(t *testing.T) {
	if TraceIDCtxKey.String() != "traceID" {
		t.Errorf("expected 'traceID', got '%s'", TraceIDCtxKey.String())
	}
}

func TestGetTraceIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{name: "stored", ctx: WithTraceID(context.Background(), "abc"), wantID: "abc", wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "empty", ctx: WithTraceID(context.Background(), "")},
		{name: "wrong type", ctx: context.WithValue(context.Background(), TraceIDCtxKey, 42)},
		{name: "plain string key is ignored", ctx: context.WithValue(context.Background(), "traceID", "abc")}, //nolint:staticcheck
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetTraceIDFromContext(tt.ctx)
			if ok != tt.wantOK || id != tt.wantID {
				t.Errorf("got (%q, %v), want (%q, %v)", id, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}
