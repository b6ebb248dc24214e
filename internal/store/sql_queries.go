// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sif-keeper/models"
)

const (
	itemsTable     = "items"
	vaultMetaTable = "vault_meta"

	// vault_meta holds a single row.
	vaultMetaRowID = 1
)

var itemColumns = []string{
	"device_id",
	"vault_id",
	"item_id",
	"kind",
	"security_tier",
	"content",
	"encrypted_fields",
	"sif_reset_minutes",
	"version",
	"updated_at",
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func whereItemID(id models.ItemID) sq.And {
	return sq.And{
		sq.Eq{"device_id": id.DeviceID},
		sq.Eq{"vault_id": id.VaultID},
		sq.Eq{"item_id": id.ItemID},
	}
}

func buildSelectItemsQuery(id *models.ItemID) (string, []any, error) {
	q := builder.Select(itemColumns...).From(itemsTable)
	if id != nil {
		q = q.Where(whereItemID(*id))
	}
	q = q.OrderBy("device_id", "vault_id", "item_id")

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// itemRow is an item already encoded for storage.
type itemRow struct {
	item    models.Item
	content []byte
	fields  []byte
}

func buildSaveItemsQuery(rows []itemRow) (string, []any, error) {
	q := builder.Insert(itemsTable).Options("OR REPLACE").Columns(itemColumns...)
	for _, r := range rows {
		var reset any
		if r.item.SIFResetMinutes != nil {
			reset = int64(*r.item.SIFResetMinutes)
		}
		var updatedAt any
		if r.item.UpdatedAt != nil {
			updatedAt = r.item.UpdatedAt.UTC()
		}
		q = q.Values(
			r.item.ID.DeviceID,
			r.item.ID.VaultID,
			r.item.ID.ItemID,
			int64(r.item.Kind),
			int64(r.item.SecurityTier),
			string(r.content),
			string(r.fields),
			reset,
			r.item.Version,
			updatedAt,
		)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectFieldsForUpdateQuery(id models.ItemID) (string, []any, error) {
	query, args, err := builder.
		Select("encrypted_fields", "version").
		From(itemsTable).
		Where(whereItemID(id)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateFieldsQuery(id models.ItemID, fields []byte, baseVersion int64, now time.Time) (string, []any, error) {
	query, args, err := builder.
		Update(itemsTable).
		Set("encrypted_fields", string(fields)).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", now.UTC()).
		Where(whereItemID(id)).
		Where(sq.Eq{"version": baseVersion}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteItemQuery(id models.ItemID) (string, []any, error) {
	query, args, err := builder.Delete(itemsTable).Where(whereItemID(id)).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectVaultMetaQuery() (string, []any, error) {
	query, args, err := builder.
		Select("salt", "encrypted_dek", "created_at").
		From(vaultMetaTable).
		Where(sq.Eq{"id": vaultMetaRowID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSaveVaultMetaQuery(meta models.VaultMeta) (string, []any, error) {
	query, args, err := builder.
		Insert(vaultMetaTable).
		Options("OR REPLACE").
		Columns("id", "salt", "encrypted_dek", "created_at").
		Values(vaultMetaRowID, meta.Salt, meta.EncryptedDEK, meta.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
