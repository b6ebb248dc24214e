// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/models"
)

var itemSQLColumns = []string{
	"device_id", "vault_id", "item_id", "kind", "security_tier",
	"content", "encrypted_fields", "sif_reset_minutes", "version", "updated_at",
}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func newTestItemRepo(t *testing.T, db *sql.DB, now time.Time) *itemRepository {
	t.Helper()
	return &itemRepository{
		DB:     newDBFromSQL(db),
		logger: logger.Nop(),
		now:    func() time.Time { return now },
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var testID = models.ItemID{DeviceID: "dev", VaultID: "vault", ItemID: "item"}

func testItem() models.Item {
	return models.Item{
		ID:           testID,
		Kind:         models.Login,
		SecurityTier: models.Secret,
		Content:      models.Content{Name: "mail"},
		EncryptedFields: map[models.FieldName]models.Ciphertext{
			models.FieldPassword: "ct",
		},
		Version: 1,
	}
}

func TestItemRepository_Save(t *testing.T) {
	t.Run("success: inserts or replaces the row", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, time.Now())

		mock.ExpectExec(regexp.QuoteMeta("INSERT OR REPLACE INTO items")).
			WithArgs("dev", "vault", "item", int64(1), int64(1),
				`{"name":"mail"}`, `{"password":"ct"}`, nil, int64(1), nil).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.Save(testContext(), testItem()))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success: nothing to save", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, time.Now())

		require.NoError(t, repo.Save(testContext()))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: invalid id", func(t *testing.T) {
		db, _ := newTestDB(t)
		repo := newTestItemRepo(t, db, time.Now())

		item := testItem()
		item.ID.VaultID = ""
		assert.ErrorIs(t, repo.Save(testContext(), item), ErrInvalidItemID)
	})

	t.Run("error: no rows affected", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, time.Now())

		mock.ExpectExec("INSERT OR REPLACE INTO items").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Save(testContext(), testItem()), ErrItemNotSaved)
	})

	t.Run("error: exec fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, time.Now())

		mock.ExpectExec("INSERT OR REPLACE INTO items").WillReturnError(errors.New("disk full"))

		assert.ErrorIs(t, repo.Save(testContext(), testItem()), ErrExecutingStatement)
	})
}

func TestItemRepository_Get(t *testing.T) {
	updated := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, time.Now())

		rows := sqlmock.NewRows(itemSQLColumns).AddRow(
			"dev", "vault", "item", int64(3), int64(2),
			`{"name":"visa","card_mask":"•••• 4242"}`, `{"card_number":"c1","note":"n1"}`,
			int64(5), int64(7), updated,
		)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT device_id, vault_id, item_id")).
			WithArgs("dev", "vault", "item").
			WillReturnRows(rows)

		item, err := repo.Get(testContext(), testID)
		require.NoError(t, err)

		assert.Equal(t, testID, item.ID)
		assert.Equal(t, models.PaymentCard, item.Kind)
		assert.Equal(t, models.HighlySecret, item.SecurityTier)
		assert.Equal(t, "•••• 4242", item.Content.CardMask)
		assert.Equal(t, models.Ciphertext("c1"), item.EncryptedFields[models.FieldCardNumber])
		require.NotNil(t, item.SIFResetMinutes)
		assert.Equal(t, uint32(5), *item.SIFResetMinutes)
		assert.Equal(t, int64(7), item.Version)
		require.NotNil(t, item.UpdatedAt)
		assert.True(t, updated.Equal(*item.UpdatedAt))
		assert.False(t, item.SIFAvailable)
	})

	t.Run("error: not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, time.Now())

		mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(itemSQLColumns))

		_, err := repo.Get(testContext(), testID)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("error: corrupt json column", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, time.Now())

		rows := sqlmock.NewRows(itemSQLColumns).AddRow(
			"dev", "vault", "item", int64(1), int64(1),
			`{"name":"x"}`, `not-json`, nil, int64(1), nil,
		)
		mock.ExpectQuery("SELECT").WillReturnRows(rows)

		_, err := repo.GetOriginalItem(testContext(), testID)
		assert.ErrorIs(t, err, ErrEncodingColumn)
	})
}

func TestItemRepository_List(t *testing.T) {
	t.Run("success: ordered rows", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, time.Now())

		rows := sqlmock.NewRows(itemSQLColumns).
			AddRow("dev", "vault", "a", int64(1), int64(1), `{"name":"a"}`, `{}`, nil, int64(1), nil).
			AddRow("dev", "vault", "b", int64(2), int64(3), `{"name":"b"}`, `{"note":"x"}`, nil, int64(2), nil)
		mock.ExpectQuery(regexp.QuoteMeta("FROM items ORDER BY device_id, vault_id, item_id")).
			WillReturnRows(rows)

		items, err := repo.List(testContext())
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "a", items[0].ID.ItemID)
		assert.Empty(t, items[0].EncryptedFields)
		assert.NotNil(t, items[0].EncryptedFields)
		assert.Equal(t, models.TopSecret, items[1].SecurityTier)
	})

	t.Run("success: empty vault", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, time.Now())

		mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(itemSQLColumns))

		items, err := repo.List(testContext())
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("error: query fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, time.Now())

		mock.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))

		_, err := repo.List(testContext())
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("error: rows iteration fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, time.Now())

		rows := sqlmock.NewRows(itemSQLColumns).
			AddRow("dev", "vault", "a", int64(1), int64(1), `{"name":"a"}`, `{}`, nil, int64(1), nil).
			RowError(0, errors.New("io"))
		mock.ExpectQuery("SELECT").WillReturnRows(rows)

		_, err := repo.List(testContext())
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestItemRepository_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, time.Now())

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM items WHERE")).
			WithArgs("dev", "vault", "item").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(testContext(), testID))
	})

	t.Run("error: not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, time.Now())

		mock.ExpectExec("DELETE").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(testContext(), testID), ErrItemNotFound)
	})
}

func TestItemRepository_Persist(t *testing.T) {
	now := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)
	update := models.FieldUpdate{
		ID:          testID,
		BaseVersion: 3,
		Fields:      map[models.FieldName]models.Ciphertext{models.FieldPassword: "new"},
	}

	expectSelect := func(mock sqlmock.Sqlmock, fields string, version int64) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT encrypted_fields, version FROM items")).
			WithArgs("dev", "vault", "item").
			WillReturnRows(sqlmock.NewRows([]string{"encrypted_fields", "version"}).AddRow(fields, version))
	}

	t.Run("success: merges fields and bumps version", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, now)

		mock.ExpectBegin()
		expectSelect(mock, `{"note":"n","password":"old"}`, 3)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE items SET encrypted_fields = ?, version = version + 1, updated_at = ?")).
			WithArgs(`{"note":"n","password":"new"}`, now, "dev", "vault", "item", int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Persist(testContext(), update))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: stored version moved on", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, now)

		mock.ExpectBegin()
		expectSelect(mock, `{}`, 4)
		mock.ExpectRollback()

		err := repo.Persist(testContext(), update)
		assert.ErrorIs(t, err, ErrVersionConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: concurrent update between select and update", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, now)

		mock.ExpectBegin()
		expectSelect(mock, `{}`, 3)
		mock.ExpectExec("UPDATE items").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Persist(testContext(), update), ErrVersionConflict)
	})

	t.Run("error: item missing", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, now)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT encrypted_fields").
			WillReturnRows(sqlmock.NewRows([]string{"encrypted_fields", "version"}))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Persist(testContext(), update), ErrItemNotFound)
	})

	t.Run("success: busy database is retried", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, now)

		mock.ExpectBegin()
		expectSelect(mock, `{}`, 3)
		mock.ExpectExec("UPDATE items").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
		mock.ExpectRollback()

		mock.ExpectBegin()
		expectSelect(mock, `{}`, 3)
		mock.ExpectExec("UPDATE items").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.Persist(testContext(), update))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error: begin fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := newTestItemRepo(t, db, now)

		mock.ExpectBegin().WillReturnError(errors.New("closed"))

		assert.ErrorIs(t, repo.Persist(testContext(), update), ErrBeginningTransaction)
	})

	t.Run("error: invalid id", func(t *testing.T) {
		db, _ := newTestDB(t)
		repo := newTestItemRepo(t, db, now)

		err := repo.Persist(testContext(), models.FieldUpdate{})
		assert.ErrorIs(t, err, ErrInvalidItemID)
	})
}
