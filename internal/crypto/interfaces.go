package crypto

import (
	"context"

	"github.com/MKhiriev/go-sif-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChainService отвечает за ключи хранилища: соль, ключ данных (DEK)
// и ключ шифрования ключа (KEK). Он ничего не знает о полях и записях.
//
// Схема работы:
//
//	Salt, DEK = GenerateEncryptionSalt() + GenerateDEK()   (создание хранилища)
//	KEK       = GenerateKEK(masterPassword, salt)
//	EncDEK    = GetEncryptedDEK(DEK, KEK)                  (сохраняется локально)
//	DEK       = DecryptDEK(EncDEK, KEK)                    (разблокировка)
type KeyChainService interface {
	// GenerateEncryptionSalt генерирует случайную соль (16 байт).
	// Соль не секретна и хранится рядом с зашифрованным DEK.
	GenerateEncryptionSalt() ([]byte, error)

	// GenerateDEK генерирует случайный ключ хранилища (32 байта).
	// Из него выводятся ключи полей уровня Secret.
	GenerateDEK() ([]byte, error)

	// GenerateKEK выводит ключ из мастер-пароля и соли через Argon2id.
	GenerateKEK(masterPassword string, salt []byte) []byte

	// GetEncryptedDEK шифрует DEK ключом KEK (AES-GCM, nonce || ciphertext).
	GetEncryptedDEK(DEK, KEK []byte) ([]byte, error)

	// DecryptDEK расшифровывает DEK. Неверный мастер-пароль даёт
	// [ErrWrongPassword].
	DecryptDEK(encryptedDEK, KEK []byte) ([]byte, error)
}

// Cipher is the field-level cipher used by the lifecycle manager.
type Cipher interface {
	Decrypt(ctx context.Context, item models.Item, field models.FieldName) (string, error)
	Encrypt(ctx context.Context, item models.Item, field models.FieldName, plaintext string) (models.Ciphertext, error)
	Install(id models.ItemID, key []byte)
	Forget(id models.ItemID)
	ForgetAll()
}
