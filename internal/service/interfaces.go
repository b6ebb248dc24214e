// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-sif-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/collaborators_mock.go -package=mock

// FieldDecrypter turns a secure field of an item into cleartext.
// Implementations are tier-aware: Secret items resolve from local key
// material, higher tiers assume a prior fetch made the key available.
type FieldDecrypter interface {
	Decrypt(ctx context.Context, item models.Item, field models.FieldName) (string, error)
}

// FieldEncrypter produces a fresh ciphertext for a field value.
type FieldEncrypter interface {
	Encrypt(ctx context.Context, item models.Item, field models.FieldName, plaintext string) (models.Ciphertext, error)
}

// CompanionFetcher asks the paired companion device to make an item's
// fields decryptable locally. Callers always pass a context with a deadline.
type CompanionFetcher interface {
	Fetch(ctx context.Context, id models.ItemID) (models.FetchGrant, error)
}

// ItemSource returns the authoritative persisted version of an item.
// It is used by edit cancellation when no local snapshot exists.
type ItemSource interface {
	GetOriginalItem(ctx context.Context, id models.ItemID) (models.Item, error)
}

// ItemPersister stores committed field updates. Only commit calls it.
type ItemPersister interface {
	Persist(ctx context.Context, update models.FieldUpdate) error
}

// KeyRing receives per-item keys delivered by companion fetches.
// Forget is called when the item's access expires or the vault locks.
type KeyRing interface {
	Install(id models.ItemID, key []byte)
	Forget(id models.ItemID)
	ForgetAll()
}
