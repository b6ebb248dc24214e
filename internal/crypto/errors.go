// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrVaultLocked is returned while no vault key is loaded.
	ErrVaultLocked = errors.New("vault is locked")
	// ErrKeyNotInstalled is returned for a fetch-gated item whose key the
	// companion has not delivered (or which has since been forgotten).
	ErrKeyNotInstalled = errors.New("item key is not installed")
	// ErrMalformedCiphertext is returned for ciphertext that is not a
	// well-formed sealed blob.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
	// ErrAuthentication is returned when a sealed blob fails to open,
	// e.g. it was moved to another field or item or encrypted under a
	// different key.
	ErrAuthentication = errors.New("ciphertext authentication failed")
	// ErrWrongPassword is returned when the master password does not unwrap
	// the vault key.
	ErrWrongPassword = errors.New("wrong master password")
	// ErrInvalidKey is returned for keys of the wrong length.
	ErrInvalidKey = errors.New("invalid key length")
)
