// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/models"
)

const (
	persistRetries = 3
	persistBackoff = 50 * time.Millisecond
)

// itemRepository is the SQLite-backed implementation of [ItemRepository].
// Public content and encrypted fields are stored as JSON text columns; the
// ciphertexts are opaque to the repository.
type itemRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewItemRepository constructs an [ItemRepository] backed by db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	return &itemRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Save inserts or replaces items in a single statement.
func (r *itemRepository) Save(ctx context.Context, items ...models.Item) error {
	log := logger.FromContext(ctx)

	if len(items) == 0 {
		return nil
	}

	rows := make([]itemRow, 0, len(items))
	for _, item := range items {
		if !validID(item.ID) {
			return ErrInvalidItemID
		}
		row, err := encodeItem(item)
		if err != nil {
			log.Err(err).Str("func", "itemRepository.Save").Str("item", item.ID.String()).Msg("failed to encode item")
			return err
		}
		rows = append(rows, row)
	}

	query, args, err := buildSaveItemsQuery(rows)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Save").Msg("failed to create query")
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Save").Int("items", len(items)).Msg("failed to save items")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotSaved
	}

	return nil
}

// Get returns a single item.
func (r *itemRepository) Get(ctx context.Context, id models.ItemID) (models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsQuery(&id)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Get").Msg("failed to create query")
		return models.Item{}, err
	}

	item, err := scanItem(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Get").Str("item", id.String()).Msg("failed to scan item row")
		return models.Item{}, err
	}

	return item, nil
}

// GetOriginalItem returns the persisted version of an item.
func (r *itemRepository) GetOriginalItem(ctx context.Context, id models.ItemID) (models.Item, error) {
	return r.Get(ctx, id)
}

// List returns every item ordered by identity. An empty vault yields an
// empty slice.
func (r *itemRepository) List(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsQuery(nil)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.List").Msg("failed to execute query for listing items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 16)
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "itemRepository.List").Msg("failed to scan item row")
			return nil, scanErr
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "itemRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// Delete removes an item.
func (r *itemRepository) Delete(ctx context.Context, id models.ItemID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(id)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.Delete").Str("item", id.String()).Msg("failed to delete item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// Persist applies a committed field update with an optimistic version check.
// Lock contention on the database file is retried with exponential backoff;
// version conflicts are returned immediately.
func (r *itemRepository) Persist(ctx context.Context, update models.FieldUpdate) error {
	log := logger.FromContext(ctx)

	if !validID(update.ID) {
		return ErrInvalidItemID
	}

	backoff := retry.WithMaxRetries(persistRetries, retry.NewExponential(persistBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := r.persist(ctx, update)
		if err != nil && r.classify(err) == Retryable {
			log.Warn().Err(err).Str("func", "itemRepository.Persist").Str("item", update.ID.String()).Msg("database busy, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.Persist").
			Str("item", update.ID.String()).
			Int64("base_version", update.BaseVersion).
			Msg("failed to persist field update")
		return err
	}

	return nil
}

func (r *itemRepository) persist(ctx context.Context, update models.FieldUpdate) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := buildSelectFieldsForUpdateQuery(update.ID)
	if err != nil {
		return err
	}

	var (
		rawFields string
		version   int64
	)
	err = tx.QueryRowContext(ctx, query, args...).Scan(&rawFields, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrItemNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if version != update.BaseVersion {
		return fmt.Errorf("%w: stored %d, base %d", ErrVersionConflict, version, update.BaseVersion)
	}

	fields := make(map[models.FieldName]models.Ciphertext)
	if err := json.Unmarshal([]byte(rawFields), &fields); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	maps.Copy(fields, update.Fields)

	encoded, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	query, args, err = buildUpdateFieldsQuery(update.ID, encoded, update.BaseVersion, r.now())
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrVersionConflict
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *itemRepository) classify(err error) ErrorClassification {
	if r.errorClassificator == nil {
		return NonRetryable
	}
	return r.errorClassificator.Classify(err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(s rowScanner) (models.Item, error) {
	var (
		item      models.Item
		kind      int64
		tier      int64
		content   string
		fields    string
		reset     sql.NullInt64
		updatedAt sql.NullTime
	)

	err := s.Scan(
		&item.ID.DeviceID,
		&item.ID.VaultID,
		&item.ID.ItemID,
		&kind,
		&tier,
		&content,
		&fields,
		&reset,
		&item.Version,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Item{}, err
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	item.Kind = models.ItemKind(kind)
	item.SecurityTier = models.SecurityTier(tier)

	if err := json.Unmarshal([]byte(content), &item.Content); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	item.EncryptedFields = make(map[models.FieldName]models.Ciphertext)
	if err := json.Unmarshal([]byte(fields), &item.EncryptedFields); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	if reset.Valid {
		v := uint32(reset.Int64)
		item.SIFResetMinutes = &v
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		item.UpdatedAt = &t
	}

	return item, nil
}

func encodeItem(item models.Item) (itemRow, error) {
	content, err := json.Marshal(item.Content)
	if err != nil {
		return itemRow{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	fields := item.EncryptedFields
	if fields == nil {
		fields = map[models.FieldName]models.Ciphertext{}
	}
	encoded, err := json.Marshal(fields)
	if err != nil {
		return itemRow{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	return itemRow{item: item, content: content, fields: encoded}, nil
}

func validID(id models.ItemID) bool {
	return id.DeviceID != "" && id.VaultID != "" && id.ItemID != ""
}
