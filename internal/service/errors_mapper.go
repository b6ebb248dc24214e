// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-sif-keeper/internal/adapter"
	"github.com/MKhiriev/go-sif-keeper/internal/crypto"
	"github.com/MKhiriev/go-sif-keeper/internal/store"
	"github.com/MKhiriev/go-sif-keeper/models"
)

// mapDecryptError classifies a decrypt collaborator error.
func mapDecryptError(err error) error {
	if err == nil {
		return nil
	}

	var de *DecryptError
	if errors.As(err, &de) {
		return err
	}

	switch {
	case errors.Is(err, crypto.ErrVaultLocked):
		return &DecryptError{Kind: models.DecryptDenied, Err: err}
	case errors.Is(err, crypto.ErrKeyNotInstalled):
		return &DecryptError{Kind: models.DecryptNotFetched, Err: err}
	case errors.Is(err, crypto.ErrMalformedCiphertext),
		errors.Is(err, crypto.ErrInvalidKey),
		errors.Is(err, crypto.ErrAuthentication):
		return &DecryptError{Kind: models.DecryptCrypto, Err: err}
	default:
		return &DecryptError{Kind: models.DecryptTransport, Err: err}
	}
}

// mapEncryptError classifies an encrypt collaborator error. Encryption has
// a single failure kind.
func mapEncryptError(err error) error {
	if err == nil {
		return nil
	}

	var ee *EncryptError
	if errors.As(err, &ee) {
		return err
	}
	return &EncryptError{Kind: models.EncryptCrypto, Err: err}
}

// mapFetchError classifies a companion fetch error.
func mapFetchError(err error) error {
	if err == nil {
		return nil
	}

	var fe *FetchError
	if errors.As(err, &fe) {
		return err
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, adapter.ErrTimeout):
		return &FetchError{Kind: models.FetchTimeout, Err: err}
	case errors.Is(err, adapter.ErrDenied):
		return &FetchError{Kind: models.FetchDenied, Err: err}
	default:
		return &FetchError{Kind: models.FetchTransport, Err: err}
	}
}

// mapPersistError classifies a persistence error.
func mapPersistError(err error) error {
	if err == nil {
		return nil
	}

	var pe *PersistError
	if errors.As(err, &pe) {
		return err
	}

	switch {
	case errors.Is(err, store.ErrVersionConflict), errors.Is(err, store.ErrItemNotFound):
		return &PersistError{Kind: models.PersistConflict, Err: err}
	default:
		return &PersistError{Kind: models.PersistTransport, Err: err}
	}
}
