// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultMeta is the locally stored material needed to unlock the vault.
//
// The vault key itself is never persisted in the clear: EncryptedDEK is the
// data encryption key sealed with a key derived from the master password
// and Salt.
type VaultMeta struct {
	Salt         []byte    `json:"salt"`
	EncryptedDEK []byte    `json:"encrypted_dek"`
	CreatedAt    time.Time `json:"created_at"`
}
