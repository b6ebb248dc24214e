// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned when a query or update targets a vault item
	// (identified by device, vault and item id) that does not exist in the
	// database.
	ErrItemNotFound = errors.New("item was not found")

	// ErrItemNotSaved is returned when an INSERT of one or more vault items
	// completes without error but affects no rows.
	ErrItemNotSaved = errors.New("item was not saved")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the base version of an update does not match the version currently
	// stored, meaning the item was modified since it was loaded.
	ErrVersionConflict = errors.New("item version conflict occurred")

	// ErrVaultMetaNotFound is returned when the vault has not been created
	// on this device yet.
	ErrVaultMetaNotFound = errors.New("vault meta was not found")

	// ErrInvalidItemID is returned when a repository method receives an
	// item identity with empty components.
	ErrInvalidItemID = errors.New("invalid item id")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan item row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan item rows")

	// ErrEncodingColumn is returned when a JSON column can not be encoded
	// or decoded.
	ErrEncodingColumn = errors.New("failed to encode json column")
)
