// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-sif-keeper/internal/config"
	"github.com/MKhiriev/go-sif-keeper/internal/crypto"
	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/metrics"
	"github.com/MKhiriev/go-sif-keeper/internal/store"
)

// Default identity of the local vault.
const (
	DefaultDeviceID = "companion-1"
	DefaultVaultID  = "personal"
)

// ClientServices groups the client-side services.
type ClientServices struct {
	Vault     VaultService
	Items     ItemService
	Fields    *FieldManager
	ExpiryJob *ExpiryJob
}

// NewClientServices wires the field manager to the cipher, the companion
// fetcher and the local repository. The same cipher serves as decrypter,
// encrypter, key ring and vault key holder.
func NewClientServices(
	cfg config.ClientConfig,
	storages *store.ClientStorages,
	fetcher CompanionFetcher,
	cipher *crypto.FieldCipher,
	m *metrics.SIFMetrics,
	log *logger.Logger,
) *ClientServices {
	fields := NewFieldManager(cfg.SIF, Collaborators{
		Decrypter: cipher,
		Encrypter: cipher,
		Fetcher:   fetcher,
		Source:    storages.ItemRepository,
		Persister: storages.ItemRepository,
		KeyRing:   cipher,
		Metrics:   m,
	}, log)

	return &ClientServices{
		Vault:     NewClientVaultService(storages.VaultMetaRepository, crypto.NewKeyChainService(), cipher, fields),
		Items:     NewClientItemService(storages.ItemRepository, fields, DefaultDeviceID, DefaultVaultID),
		Fields:    fields,
		ExpiryJob: NewExpiryJob(fields, cfg.Workers.ExpiryTickInterval, log),
	}
}

// NewServices wires the services of the companion simulator.
func NewServices(cfg *config.CompanionConfig, log *logger.Logger) (*Services, error) {
	companion, err := NewCompanionService(cfg.Policy)
	if err != nil {
		return nil, err
	}
	appInfo, err := NewAppInfoService(cfg.Version)
	if err != nil {
		return nil, err
	}

	log.Info().Msg("companion services created")
	return &Services{
		CompanionService: companion,
		AppInfoService:   appInfo,
	}, nil
}
