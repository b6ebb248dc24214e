// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-sif-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ItemRepository is the local vault item repository.
//
// GetOriginalItem and Persist make it usable directly as the item source and
// persister of the field manager.
type ItemRepository interface {
	// Save inserts items, replacing existing rows with the same identity.
	Save(ctx context.Context, items ...models.Item) error
	// Get returns one item or ErrItemNotFound.
	Get(ctx context.Context, id models.ItemID) (models.Item, error)
	// List returns every stored item ordered by identity.
	List(ctx context.Context) ([]models.Item, error)
	// Delete removes an item. Deleting a missing item returns ErrItemNotFound.
	Delete(ctx context.Context, id models.ItemID) error

	// GetOriginalItem returns the persisted version of an item.
	GetOriginalItem(ctx context.Context, id models.ItemID) (models.Item, error)
	// Persist merges update.Fields into the stored ciphertexts if the stored
	// version equals update.BaseVersion, and increments the version.
	Persist(ctx context.Context, update models.FieldUpdate) error
}

// VaultMetaRepository stores the material needed to unlock the vault.
type VaultMetaRepository interface {
	GetVaultMeta(ctx context.Context) (models.VaultMeta, error)
	SaveVaultMeta(ctx context.Context, meta models.VaultMeta) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
