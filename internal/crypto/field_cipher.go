// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"sync"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/hkdf"

	"github.com/MKhiriev/go-sif-keeper/models"
)

// ciphertextVersion prefixes every sealed field blob.
const ciphertextVersion byte = 1

// FieldCipher encrypts and decrypts secure fields.
//
// Secret items are keyed from the vault key. HighlySecret and TopSecret
// items are keyed from a per-item key that only the companion device
// delivers; FieldCipher is the key ring those keys are installed into.
// Every field gets its own HKDF subkey and the ciphertext is bound to the
// item identity and field name, so a blob moved elsewhere fails to open.
//
// Keys are held in memguard enclaves and never as plain byte slices.
type FieldCipher struct {
	mu    sync.RWMutex
	vault *memguard.Enclave
	items map[models.ItemID]*memguard.Enclave
}

var _ Cipher = (*FieldCipher)(nil)

// NewFieldCipher returns a locked cipher.
func NewFieldCipher() *FieldCipher {
	return &FieldCipher{items: make(map[models.ItemID]*memguard.Enclave)}
}

// Unlock unwraps the vault key with the master password.
func (c *FieldCipher) Unlock(chain KeyChainService, masterPassword string, salt, encryptedDEK []byte) error {
	kek := chain.GenerateKEK(masterPassword, salt)
	defer memguard.WipeBytes(kek)

	dek, err := chain.DecryptDEK(encryptedDEK, kek)
	if err != nil {
		return fmt.Errorf("unwrap vault key: %w", err)
	}
	return c.UnlockWithKey(dek)
}

// UnlockWithKey loads key as the vault key. key is wiped.
func (c *FieldCipher) UnlockWithKey(key []byte) error {
	if len(key) != KeySize {
		memguard.WipeBytes(key)
		return ErrInvalidKey
	}

	enclave := memguard.NewEnclave(key)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.vault = enclave
	return nil
}

// Lock drops the vault key and every installed item key.
func (c *FieldCipher) Lock() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vault = nil
	c.items = make(map[models.ItemID]*memguard.Enclave)
}

// Locked reports whether no vault key is loaded.
func (c *FieldCipher) Locked() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vault == nil
}

// Install stores the item key delivered by the companion. key is wiped;
// keys of the wrong length are ignored.
func (c *FieldCipher) Install(id models.ItemID, key []byte) {
	if len(key) != KeySize {
		memguard.WipeBytes(key)
		return
	}

	enclave := memguard.NewEnclave(key)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[id] = enclave
}

// Forget drops the key of one item.
func (c *FieldCipher) Forget(id models.ItemID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, id)
}

// ForgetAll drops every item key but keeps the vault unlocked.
func (c *FieldCipher) ForgetAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[models.ItemID]*memguard.Enclave)
}

// HasKey reports whether an item key is installed for id.
func (c *FieldCipher) HasKey(id models.ItemID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.items[id]
	return ok
}

// Decrypt opens a field of item. A field the item does not carry yet
// decrypts to the empty string.
func (c *FieldCipher) Decrypt(ctx context.Context, item models.Item, field models.FieldName) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ct, ok := item.EncryptedFields[field]
	if !ok || ct == "" {
		return "", nil
	}

	blob, err := base64.StdEncoding.DecodeString(string(ct))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}

	aead, err := c.fieldAEAD(item, field)
	if err != nil {
		return "", err
	}

	nonceSize := aead.NonceSize()
	if len(blob) < 1+nonceSize+aead.Overhead() || blob[0] != ciphertextVersion {
		return "", ErrMalformedCiphertext
	}
	nonce, sealed := blob[1:1+nonceSize], blob[1+nonceSize:]

	plaintext, err := aead.Open(nil, nonce, sealed, additionalData(item.ID, field))
	if err != nil {
		return "", ErrAuthentication
	}
	defer memguard.WipeBytes(plaintext)
	return string(plaintext), nil
}

// Encrypt seals plaintext as the new ciphertext of a field of item.
func (c *FieldCipher) Encrypt(ctx context.Context, item models.Item, field models.FieldName, plaintext string) (models.Ciphertext, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	aead, err := c.fieldAEAD(item, field)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, 1+len(nonce)+len(plaintext)+aead.Overhead())
	blob = append(blob, ciphertextVersion)
	blob = append(blob, nonce...)
	blob = aead.Seal(blob, nonce, []byte(plaintext), additionalData(item.ID, field))

	return models.Ciphertext(base64.StdEncoding.EncodeToString(blob)), nil
}

func (c *FieldCipher) fieldAEAD(item models.Item, field models.FieldName) (cipher.AEAD, error) {
	root, err := c.rootKey(item)
	if err != nil {
		return nil, err
	}
	defer root.Destroy()

	key, err := deriveKey(root.Bytes(), fieldInfo(item.ID, field))
	if err != nil {
		return nil, err
	}
	defer memguard.WipeBytes(key)

	return newGCM(key)
}

// rootKey opens the key the item's fields are derived from. The caller
// destroys the returned buffer.
func (c *FieldCipher) rootKey(item models.Item) (*memguard.LockedBuffer, error) {
	c.mu.RLock()
	enclave := c.vault
	if enclave == nil {
		c.mu.RUnlock()
		return nil, ErrVaultLocked
	}
	if item.SecurityTier != models.Secret {
		var ok bool
		if enclave, ok = c.items[item.ID]; !ok {
			c.mu.RUnlock()
			return nil, ErrKeyNotInstalled
		}
	}
	c.mu.RUnlock()

	buf, err := enclave.Open()
	if err != nil {
		return nil, fmt.Errorf("open key enclave: %w", err)
	}
	return buf, nil
}

// DeriveItemKey derives the per-item key a companion device hands out for
// id from its own secret.
func DeriveItemKey(secret []byte, id models.ItemID) ([]byte, error) {
	if len(secret) == 0 {
		return nil, ErrInvalidKey
	}
	return deriveKey(secret, "sif-item|"+id.String())
}

func deriveKey(root []byte, info string) ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, root, nil, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return key, nil
}

func fieldInfo(id models.ItemID, field models.FieldName) string {
	return "sif-field|" + id.String() + "|" + string(field)
}

func additionalData(id models.ItemID, field models.FieldName) []byte {
	return []byte(id.DeviceID + "\x00" + id.VaultID + "\x00" + id.ItemID + "\x00" + string(field))
}
