// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-sif-keeper/internal/crypto"
	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/store"
	"github.com/MKhiriev/go-sif-keeper/models"
)

type clientVaultService struct {
	meta     store.VaultMetaRepository
	keychain crypto.KeyChainService
	key      VaultKey
	fields   *FieldManager
	clock    Clock
}

// NewClientVaultService builds a [VaultService]. fields may be nil when no
// field manager has to be locked together with the key.
func NewClientVaultService(meta store.VaultMetaRepository, keychain crypto.KeyChainService, key VaultKey, fields *FieldManager) VaultService {
	return &clientVaultService{meta: meta, keychain: keychain, key: key, fields: fields, clock: SystemClock()}
}

func (v *clientVaultService) Open(ctx context.Context, masterPassword string) (bool, error) {
	log := logger.FromContext(ctx)

	if masterPassword == "" {
		return false, ErrEmptyMasterPassword
	}

	meta, err := v.meta.GetVaultMeta(ctx)
	if errors.Is(err, store.ErrVaultMetaNotFound) {
		if err := v.create(ctx, masterPassword); err != nil {
			log.Err(err).Str("func", "clientVaultService.Open").Msg("error creating vault")
			return false, err
		}
		log.Info().Str("func", "clientVaultService.Open").Msg("new vault created")
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("load vault meta: %w", err)
	}

	if err := v.key.Unlock(v.keychain, masterPassword, meta.Salt, meta.EncryptedDEK); err != nil {
		if errors.Is(err, crypto.ErrWrongPassword) {
			return false, ErrWrongMasterPassword
		}
		return false, fmt.Errorf("unlock vault: %w", err)
	}

	log.Info().Str("func", "clientVaultService.Open").Msg("vault unlocked")
	return false, nil
}

func (v *clientVaultService) create(ctx context.Context, masterPassword string) error {
	salt, err := v.keychain.GenerateEncryptionSalt()
	if err != nil {
		return fmt.Errorf("error generating Salt: %w", err)
	}

	dek, err := v.keychain.GenerateDEK()
	if err != nil {
		return fmt.Errorf("error generating DEK: %w", err)
	}

	kek := v.keychain.GenerateKEK(masterPassword, salt)
	defer memguard.WipeBytes(kek)

	encryptedDEK, err := v.keychain.GetEncryptedDEK(dek, kek)
	if err != nil {
		memguard.WipeBytes(dek)
		return fmt.Errorf("error encrypting DEK: %w", err)
	}

	meta := models.VaultMeta{Salt: salt, EncryptedDEK: encryptedDEK, CreatedAt: v.clock.Now().UTC()}
	if err := v.meta.SaveVaultMeta(ctx, meta); err != nil {
		memguard.WipeBytes(dek)
		return fmt.Errorf("save vault meta: %w", err)
	}

	// UnlockWithKey wipes dek.
	return v.key.UnlockWithKey(dek)
}

func (v *clientVaultService) Lock(ctx context.Context) {
	if v.fields != nil {
		v.fields.Lock(ctx)
	}
	v.key.Lock()
}
