// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It indicates whether a failed database operation should be retried or
// abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors and
	// constraint violations.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. the database file was locked by another process).
	Retryable
)

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It unwraps err as a sqlite3.Error
// and delegates to [ClassifySQLiteError]. If err is nil or is not a driver
// error, [NonRetryable] is returned.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return ClassifySQLiteError(sqliteErr)
	}

	return NonRetryable
}

// ClassifySQLiteError maps a sqlite3.Error to an [ErrorClassification] based
// on its primary result code.
//
// Retryable codes:
//   - SQLITE_BUSY, SQLITE_LOCKED: another connection holds the lock
//   - SQLITE_PROTOCOL: the WAL lock protocol raced
//
// Everything else (constraint, corrupt, readonly, full, ...) is [NonRetryable].
func ClassifySQLiteError(err sqlite3.Error) ErrorClassification {
	switch err.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrProtocol:
		return Retryable
	}
	return NonRetryable
}
