package crypto

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sif-keeper/models"
)

func testItem(tier models.SecurityTier) models.Item {
	return models.Item{
		ID:              models.ItemID{DeviceID: "dev", VaultID: "vault", ItemID: "item-1"},
		Kind:            models.Login,
		SecurityTier:    tier,
		EncryptedFields: map[models.FieldName]models.Ciphertext{},
	}
}

func unlockedCipher(t *testing.T) *FieldCipher {
	t.Helper()
	c := NewFieldCipher()
	require.NoError(t, c.UnlockWithKey(bytes.Repeat([]byte{0x42}, KeySize)))
	return c
}

func TestFieldCipher_SecretRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := unlockedCipher(t)
	item := testItem(models.Secret)

	ct, err := c.Encrypt(ctx, item, models.FieldPassword, "p1")
	require.NoError(t, err)
	assert.NotContains(t, string(ct), "p1")

	item.EncryptedFields[models.FieldPassword] = ct
	got, err := c.Decrypt(ctx, item, models.FieldPassword)
	require.NoError(t, err)
	assert.Equal(t, "p1", got)

	again, err := c.Encrypt(ctx, item, models.FieldPassword, "p1")
	require.NoError(t, err)
	assert.NotEqual(t, ct, again, "fresh nonce per encryption")
}

func TestFieldCipher_MissingFieldIsEmpty(t *testing.T) {
	c := unlockedCipher(t)

	got, err := c.Decrypt(context.Background(), testItem(models.Secret), models.FieldNote)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFieldCipher_EmptyPlaintext(t *testing.T) {
	ctx := context.Background()
	c := unlockedCipher(t)
	item := testItem(models.Secret)

	ct, err := c.Encrypt(ctx, item, models.FieldNote, "")
	require.NoError(t, err)
	item.EncryptedFields[models.FieldNote] = ct

	got, err := c.Decrypt(ctx, item, models.FieldNote)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFieldCipher_Locked(t *testing.T) {
	ctx := context.Background()
	c := NewFieldCipher()
	assert.True(t, c.Locked())

	_, err := c.Encrypt(ctx, testItem(models.Secret), models.FieldPassword, "x")
	assert.ErrorIs(t, err, ErrVaultLocked)

	c = unlockedCipher(t)
	item := testItem(models.Secret)
	ct, err := c.Encrypt(ctx, item, models.FieldPassword, "x")
	require.NoError(t, err)
	item.EncryptedFields[models.FieldPassword] = ct

	c.Lock()
	_, err = c.Decrypt(ctx, item, models.FieldPassword)
	assert.ErrorIs(t, err, ErrVaultLocked)
}

func TestFieldCipher_ItemKeyLifecycle(t *testing.T) {
	ctx := context.Background()
	c := unlockedCipher(t)
	item := testItem(models.HighlySecret)

	_, err := c.Encrypt(ctx, item, models.FieldPassword, "x")
	require.ErrorIs(t, err, ErrKeyNotInstalled)

	key, err := DeriveItemKey([]byte("companion-secret"), item.ID)
	require.NoError(t, err)
	c.Install(item.ID, key)
	assert.True(t, c.HasKey(item.ID))
	assert.Equal(t, make([]byte, KeySize), key, "installed key is wiped")

	ct, err := c.Encrypt(ctx, item, models.FieldPassword, "high")
	require.NoError(t, err)
	item.EncryptedFields[models.FieldPassword] = ct

	got, err := c.Decrypt(ctx, item, models.FieldPassword)
	require.NoError(t, err)
	assert.Equal(t, "high", got)

	c.Forget(item.ID)
	_, err = c.Decrypt(ctx, item, models.FieldPassword)
	assert.ErrorIs(t, err, ErrKeyNotInstalled)

	// The companion derives the same key again.
	key, err = DeriveItemKey([]byte("companion-secret"), item.ID)
	require.NoError(t, err)
	c.Install(item.ID, key)
	got, err = c.Decrypt(ctx, item, models.FieldPassword)
	require.NoError(t, err)
	assert.Equal(t, "high", got)

	c.ForgetAll()
	assert.False(t, c.HasKey(item.ID))
	assert.False(t, c.Locked())
}

func TestFieldCipher_InstallIgnoresBadKey(t *testing.T) {
	c := unlockedCipher(t)
	id := testItem(models.TopSecret).ID

	c.Install(id, []byte("short"))
	assert.False(t, c.HasKey(id))
}

func TestFieldCipher_CiphertextBoundToFieldAndItem(t *testing.T) {
	ctx := context.Background()
	c := unlockedCipher(t)
	item := testItem(models.Secret)

	ct, err := c.Encrypt(ctx, item, models.FieldPassword, "p1")
	require.NoError(t, err)

	moved := item.Clone()
	moved.EncryptedFields[models.FieldNote] = ct
	_, err = c.Decrypt(ctx, moved, models.FieldNote)
	assert.ErrorIs(t, err, ErrAuthentication)

	other := item.Clone()
	other.ID.ItemID = "item-2"
	other.EncryptedFields[models.FieldPassword] = ct
	_, err = c.Decrypt(ctx, other, models.FieldPassword)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestFieldCipher_Malformed(t *testing.T) {
	ctx := context.Background()
	c := unlockedCipher(t)

	tests := []struct {
		name string
		ct   models.Ciphertext
		want error
	}{
		{name: "not base64", ct: "%%%", want: ErrMalformedCiphertext},
		{name: "too short", ct: models.Ciphertext(base64.StdEncoding.EncodeToString([]byte{1, 2})), want: ErrMalformedCiphertext},
		{name: "unknown version", ct: models.Ciphertext(base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{9}, 40))), want: ErrMalformedCiphertext},
		{name: "garbage body", ct: models.Ciphertext(base64.StdEncoding.EncodeToString(append([]byte{ciphertextVersion}, bytes.Repeat([]byte{9}, 40)...))), want: ErrAuthentication},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := testItem(models.Secret)
			item.EncryptedFields[models.FieldPassword] = tt.ct
			_, err := c.Decrypt(ctx, item, models.FieldPassword)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFieldCipher_UnlockWithPassword(t *testing.T) {
	chain := NewKeyChainServiceWithParams(testKDFParams)

	salt, err := chain.GenerateEncryptionSalt()
	require.NoError(t, err)
	dek, err := chain.GenerateDEK()
	require.NoError(t, err)
	encDEK, err := chain.GetEncryptedDEK(dek, chain.GenerateKEK("master", salt))
	require.NoError(t, err)

	c := NewFieldCipher()
	assert.ErrorIs(t, c.Unlock(chain, "wrong", salt, encDEK), ErrWrongPassword)
	assert.True(t, c.Locked())

	require.NoError(t, c.Unlock(chain, "master", salt, encDEK))
	assert.False(t, c.Locked())
}

func TestFieldCipher_CancelledContext(t *testing.T) {
	c := unlockedCipher(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Encrypt(ctx, testItem(models.Secret), models.FieldPassword, "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDeriveItemKey(t *testing.T) {
	id := models.ItemID{DeviceID: "d", VaultID: "v", ItemID: "i"}

	k1, err := DeriveItemKey([]byte("s"), id)
	require.NoError(t, err)
	k2, err := DeriveItemKey([]byte("s"), id)
	require.NoError(t, err)
	assert.Len(t, k1, KeySize)
	assert.Equal(t, k1, k2)

	id.ItemID = "j"
	k3, err := DeriveItemKey([]byte("s"), id)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)

	_, err = DeriveItemKey(nil, id)
	assert.ErrorIs(t, err, ErrInvalidKey)
}
