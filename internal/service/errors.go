// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sif-keeper/models"
)

// Lifecycle errors returned by [FieldManager] and its components.
var (
	// ErrItemNotLoaded is returned when an operation targets an item that
	// was never loaded into the manager or has been removed.
	ErrItemNotLoaded = errors.New("item is not loaded")

	// ErrFieldNotSupported is returned when a field is not part of the
	// item kind's secure field set.
	ErrFieldNotSupported = errors.New("field is not supported by item kind")

	// ErrNotEditing is returned by Stage and Commit when no edit is open.
	ErrNotEditing = errors.New("no edit session in progress")

	// ErrEditInProgress is returned by BeginEdit when another field of the
	// same item is being edited or opened.
	ErrEditInProgress = errors.New("another field is being edited")

	// ErrEditCancelled is returned by BeginEdit when the edit was cancelled
	// while its decryption was still in flight.
	ErrEditCancelled = errors.New("edit was cancelled")

	// ErrDecryptSuperseded is delivered to callers of a decryption whose
	// result was dropped because the cache entry was invalidated meanwhile.
	ErrDecryptSuperseded = errors.New("decryption result superseded by invalidation")

	// ErrWriterClosed is returned by the re-encryption writer after Close.
	ErrWriterClosed = errors.New("re-encryption writer is closed")
)

// DecryptError is a classified decryption failure.
// Two DecryptErrors match under errors.Is when their kinds are equal.
type DecryptError struct {
	Kind models.DecryptErrorKind
	Err  error
}

func (e *DecryptError) Error() string {
	if e.Err == nil {
		return "decrypt " + e.Kind.String()
	}
	return fmt.Sprintf("decrypt %s: %v", e.Kind, e.Err)
}

func (e *DecryptError) Unwrap() error { return e.Err }

func (e *DecryptError) Is(target error) bool {
	t, ok := target.(*DecryptError)
	return ok && t.Kind == e.Kind
}

// EncryptError is a classified encryption failure.
type EncryptError struct {
	Kind models.EncryptErrorKind
	Err  error
}

func (e *EncryptError) Error() string {
	if e.Err == nil {
		return "encrypt " + e.Kind.String()
	}
	return fmt.Sprintf("encrypt %s: %v", e.Kind, e.Err)
}

func (e *EncryptError) Unwrap() error { return e.Err }

func (e *EncryptError) Is(target error) bool {
	t, ok := target.(*EncryptError)
	return ok && t.Kind == e.Kind
}

// FetchError is a classified companion fetch failure.
type FetchError struct {
	Kind models.FetchErrorKind
	Err  error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return "fetch " + e.Kind.String()
	}
	return fmt.Sprintf("fetch %s: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool {
	t, ok := target.(*FetchError)
	return ok && t.Kind == e.Kind
}

// PersistError is a classified persistence failure.
type PersistError struct {
	Kind models.PersistErrorKind
	Err  error
}

func (e *PersistError) Error() string {
	if e.Err == nil {
		return "persist " + e.Kind.String()
	}
	return fmt.Sprintf("persist %s: %v", e.Kind, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

func (e *PersistError) Is(target error) bool {
	t, ok := target.(*PersistError)
	return ok && t.Kind == e.Kind
}

// Kind-only targets for errors.Is.
var (
	ErrDecryptDenied     = &DecryptError{Kind: models.DecryptDenied}
	ErrDecryptNotFetched = &DecryptError{Kind: models.DecryptNotFetched}
	ErrDecryptTransport  = &DecryptError{Kind: models.DecryptTransport}
	ErrDecryptCrypto     = &DecryptError{Kind: models.DecryptCrypto}

	ErrEncryptCrypto = &EncryptError{Kind: models.EncryptCrypto}

	ErrFetchTimeout   = &FetchError{Kind: models.FetchTimeout}
	ErrFetchDenied    = &FetchError{Kind: models.FetchDenied}
	ErrFetchTransport = &FetchError{Kind: models.FetchTransport}

	ErrPersistConflict  = &PersistError{Kind: models.PersistConflict}
	ErrPersistTransport = &PersistError{Kind: models.PersistTransport}
)

// ErrInvalidItem is returned by Load for items without an identity.
var ErrInvalidItem = errors.New("item has no identity")

// Vault errors.
var (
	// ErrEmptyMasterPassword is returned by Open for an empty password.
	ErrEmptyMasterPassword = errors.New("master password is empty")

	// ErrWrongMasterPassword is returned by Open when the stored vault key
	// can not be unwrapped with the given password.
	ErrWrongMasterPassword = errors.New("wrong master password")
)

// Companion simulator errors.
var (
	// ErrCompanionDenied is returned when the companion refuses to release
	// an item key.
	ErrCompanionDenied = errors.New("companion denied access to item")

	// ErrCompanionSecretNotSet is returned when the companion has no root
	// secret to derive item keys from.
	ErrCompanionSecretNotSet = errors.New("companion secret is not set")

	// ErrVersionIsNotSpecified is returned when the application version is
	// missing from the config.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
