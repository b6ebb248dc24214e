// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// KeySize is the length of every symmetric key in the vault.
const KeySize = 32

// KDFParams tunes Argon2id.
type KDFParams struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// DefaultKDFParams are the OWASP (2024) recommended Argon2id parameters:
// 1 iteration, 64 MiB, 4 threads.
var DefaultKDFParams = KDFParams{Time: 1, Memory: 64 * 1024, Threads: 4}

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	params KDFParams
}

// NewKeyChainService constructs a [KeyChainService] with [DefaultKDFParams].
func NewKeyChainService() KeyChainService {
	return NewKeyChainServiceWithParams(DefaultKDFParams)
}

// NewKeyChainServiceWithParams constructs a [KeyChainService] with custom
// Argon2id parameters. Zero fields fall back to the defaults.
func NewKeyChainServiceWithParams(p KDFParams) KeyChainService {
	if p.Time == 0 {
		p.Time = DefaultKDFParams.Time
	}
	if p.Memory == 0 {
		p.Memory = DefaultKDFParams.Memory
	}
	if p.Threads == 0 {
		p.Threads = DefaultKDFParams.Threads
	}
	return &keyChainService{params: p}
}

// GenerateEncryptionSalt implements [KeyChainService].
func (k *keyChainService) GenerateEncryptionSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// GenerateDEK implements [KeyChainService].
func (k *keyChainService) GenerateDEK() ([]byte, error) {
	dek := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, dek); err != nil {
		return nil, err
	}
	return dek, nil
}

// GenerateKEK implements [KeyChainService]. The result exists only in
// client memory.
func (k *keyChainService) GenerateKEK(masterPassword string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(masterPassword),
		salt,
		k.params.Time,
		k.params.Memory,
		k.params.Threads,
		KeySize,
	)
}

// GetEncryptedDEK implements [KeyChainService]. blob = nonce ‖ ciphertext.
func (k *keyChainService) GetEncryptedDEK(DEK, KEK []byte) ([]byte, error) {
	gcm, err := newGCM(KEK)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	encryptedDEK := gcm.Seal(nil, nonce, DEK, nil)
	return append(nonce, encryptedDEK...), nil
}

// DecryptDEK implements [KeyChainService].
func (k *keyChainService) DecryptDEK(encryptedDEK, KEK []byte) ([]byte, error) {
	gcm, err := newGCM(KEK)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(encryptedDEK) < nonceSize+gcm.Overhead() {
		return nil, ErrMalformedCiphertext
	}
	nonce, ciphertext := encryptedDEK[:nonceSize], encryptedDEK[nonceSize:]

	// An authentication failure here almost always means a wrong password.
	dek, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrWrongPassword
	}
	return dek, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
