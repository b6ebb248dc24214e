// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/models"
)

type vaultMetaRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultMetaRepository constructs a [VaultMetaRepository] backed by db.
func NewVaultMetaRepository(db *DB, logger *logger.Logger) VaultMetaRepository {
	return &vaultMetaRepository{DB: db, logger: logger}
}

// GetVaultMeta returns the stored unlock material or ErrVaultMetaNotFound
// when the vault has not been created yet.
func (r *vaultMetaRepository) GetVaultMeta(ctx context.Context) (models.VaultMeta, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVaultMetaQuery()
	if err != nil {
		return models.VaultMeta{}, err
	}

	var meta models.VaultMeta
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&meta.Salt, &meta.EncryptedDEK, &meta.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultMeta{}, ErrVaultMetaNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "vaultMetaRepository.GetVaultMeta").Msg("failed to scan vault meta")
		return models.VaultMeta{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return meta, nil
}

// SaveVaultMeta stores the unlock material, replacing any previous row.
func (r *vaultMetaRepository) SaveVaultMeta(ctx context.Context, meta models.VaultMeta) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveVaultMetaQuery(meta)
	if err != nil {
		return err
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "vaultMetaRepository.SaveVaultMeta").Msg("failed to save vault meta")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
