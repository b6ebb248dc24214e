// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sif-keeper/internal/config"
	"github.com/MKhiriev/go-sif-keeper/internal/crypto"
	"github.com/MKhiriev/go-sif-keeper/models"
)

func TestNewCompanionService_RequiresSecret(t *testing.T) {
	svc, err := NewCompanionService(config.Companion{})
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrCompanionSecretNotSet)
}

func TestCompanionService_Fetch(t *testing.T) {
	svc, err := NewCompanionService(config.Companion{
		Secret:       "root-secret",
		ResetMinutes: 3,
		DeniedItems:  []string{"top"},
	})
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("releases derived key", func(t *testing.T) {
		grant, err := svc.Fetch(ctx, highlyID)
		require.NoError(t, err)

		want, err := crypto.DeriveItemKey([]byte("root-secret"), highlyID)
		require.NoError(t, err)
		assert.Equal(t, want, grant.ItemKey)
		require.NotNil(t, grant.ResetMinutes)
		assert.Equal(t, uint32(3), *grant.ResetMinutes)
	})

	t.Run("keys differ per item", func(t *testing.T) {
		a, err := svc.Fetch(ctx, highlyID)
		require.NoError(t, err)
		b, err := svc.Fetch(ctx, secretID)
		require.NoError(t, err)
		assert.NotEqual(t, a.ItemKey, b.ItemKey)
	})

	t.Run("denied item", func(t *testing.T) {
		_, err := svc.Fetch(ctx, topID)
		assert.ErrorIs(t, err, ErrCompanionDenied)
	})

	t.Run("zero id", func(t *testing.T) {
		_, err := svc.Fetch(ctx, models.ItemID{})
		assert.ErrorIs(t, err, ErrInvalidItem)
	})
}

func TestCompanionService_Fetch_ApprovalDelay(t *testing.T) {
	svc, err := NewCompanionService(config.Companion{Secret: "s", ApprovalDelay: time.Hour})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = svc.Fetch(ctx, highlyID)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCompanionService_Fetch_NoResetOverride(t *testing.T) {
	svc, err := NewCompanionService(config.Companion{Secret: "s"})
	require.NoError(t, err)

	grant, err := svc.Fetch(context.Background(), highlyID)
	require.NoError(t, err)
	assert.Nil(t, grant.ResetMinutes)
}
