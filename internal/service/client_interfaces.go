// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-sif-keeper/internal/crypto"
	"github.com/MKhiriev/go-sif-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// VaultKey is the part of the field cipher that holds the vault key.
type VaultKey interface {
	// Unlock unwraps the stored vault key with the master password.
	Unlock(chain crypto.KeyChainService, masterPassword string, salt, encryptedDEK []byte) error
	// UnlockWithKey installs a freshly generated vault key.
	UnlockWithKey(key []byte) error
	// Lock drops the vault key and all item keys.
	Lock()
}

// VaultService creates and unlocks the local vault.
type VaultService interface {
	// Open unlocks the vault with the master password. On first run the
	// vault is created: a salt and a vault key (DEK) are generated and the
	// DEK is stored wrapped with a key derived from the password.
	// created reports whether that happened.
	Open(ctx context.Context, masterPassword string) (created bool, err error)

	// Lock drops every cleartext, grant and key held in memory.
	Lock(ctx context.Context)
}

// ItemService moves items between the local repository and the field
// manager.
type ItemService interface {
	// LoadAll loads every stored item into the field manager.
	LoadAll(ctx context.Context) ([]models.Item, error)

	// Create stores a new item and writes its secure fields through the
	// field manager's edit lifecycle, fetching from the companion first
	// when the tier requires it.
	Create(ctx context.Context, item models.ItemTemplate) (models.ItemID, error)

	// Refresh reloads one item from the repository.
	Refresh(ctx context.Context, id models.ItemID) error

	// Delete unloads the item and removes it from the repository.
	Delete(ctx context.Context, id models.ItemID) error
}
