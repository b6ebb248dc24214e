// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sif-keeper/internal/crypto"
	"github.com/MKhiriev/go-sif-keeper/internal/mock"
	"github.com/MKhiriev/go-sif-keeper/internal/service"
	"github.com/MKhiriev/go-sif-keeper/internal/store"
	"github.com/MKhiriev/go-sif-keeper/models"
)

type vaultMocks struct {
	meta     *mock.MockVaultMetaRepository
	keychain *mock.MockKeyChainService
	key      *mock.MockVaultKey
}

func newVaultSvc(t *testing.T) (service.VaultService, *vaultMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &vaultMocks{
		meta:     mock.NewMockVaultMetaRepository(ctrl),
		keychain: mock.NewMockKeyChainService(ctrl),
		key:      mock.NewMockVaultKey(ctrl),
	}
	return service.NewClientVaultService(m.meta, m.keychain, m.key, nil), m
}

func TestClientVaultService_Open_EmptyPassword(t *testing.T) {
	svc, _ := newVaultSvc(t)

	created, err := svc.Open(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrEmptyMasterPassword)
	assert.False(t, created)
}

func TestClientVaultService_Open_CreatesVault(t *testing.T) {
	svc, m := newVaultSvc(t)

	salt := []byte("0123456789abcdef")
	dek := []byte("dek-32-bytes-dek-32-bytes-dek-32")
	kek := []byte("kek")
	encDEK := []byte("enc-dek")

	var unlockedWith []byte
	gomock.InOrder(
		m.meta.EXPECT().GetVaultMeta(gomock.Any()).Return(models.VaultMeta{}, store.ErrVaultMetaNotFound),
		m.keychain.EXPECT().GenerateEncryptionSalt().Return(salt, nil),
		m.keychain.EXPECT().GenerateDEK().Return(dek, nil),
		m.keychain.EXPECT().GenerateKEK("master", salt).Return(kek),
		m.keychain.EXPECT().GetEncryptedDEK(dek, kek).Return(encDEK, nil),
		m.meta.EXPECT().SaveVaultMeta(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, meta models.VaultMeta) error {
				// Соль и зашифрованный DEK сохраняются, сам DEK нет
				assert.Equal(t, salt, meta.Salt)
				assert.Equal(t, encDEK, meta.EncryptedDEK)
				assert.False(t, meta.CreatedAt.IsZero())
				return nil
			}),
		m.key.EXPECT().UnlockWithKey(gomock.Any()).
			DoAndReturn(func(k []byte) error {
				unlockedWith = append([]byte(nil), k...)
				return nil
			}),
	)

	created, err := svc.Open(context.Background(), "master")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, []byte("dek-32-bytes-dek-32-bytes-dek-32"), unlockedWith)
}

func TestClientVaultService_Open_UnlocksExisting(t *testing.T) {
	svc, m := newVaultSvc(t)

	meta := models.VaultMeta{Salt: []byte("salt"), EncryptedDEK: []byte("enc")}
	gomock.InOrder(
		m.meta.EXPECT().GetVaultMeta(gomock.Any()).Return(meta, nil),
		m.key.EXPECT().Unlock(m.keychain, "master", meta.Salt, meta.EncryptedDEK).Return(nil),
	)

	created, err := svc.Open(context.Background(), "master")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestClientVaultService_Open_Errors(t *testing.T) {
	errDB := errors.New("disk I/O error")

	tests := []struct {
		name    string
		setup   func(m *vaultMocks)
		wantErr error
	}{
		{
			name: "wrong password",
			setup: func(m *vaultMocks) {
				m.meta.EXPECT().GetVaultMeta(gomock.Any()).Return(models.VaultMeta{}, nil)
				m.key.EXPECT().Unlock(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(crypto.ErrWrongPassword)
			},
			wantErr: service.ErrWrongMasterPassword,
		},
		{
			name: "meta read fails",
			setup: func(m *vaultMocks) {
				m.meta.EXPECT().GetVaultMeta(gomock.Any()).Return(models.VaultMeta{}, errDB)
			},
			wantErr: errDB,
		},
		{
			name: "meta save fails",
			setup: func(m *vaultMocks) {
				m.meta.EXPECT().GetVaultMeta(gomock.Any()).Return(models.VaultMeta{}, store.ErrVaultMetaNotFound)
				m.keychain.EXPECT().GenerateEncryptionSalt().Return([]byte("salt"), nil)
				m.keychain.EXPECT().GenerateDEK().Return([]byte("dek"), nil)
				m.keychain.EXPECT().GenerateKEK(gomock.Any(), gomock.Any()).Return([]byte("kek"))
				m.keychain.EXPECT().GetEncryptedDEK(gomock.Any(), gomock.Any()).Return([]byte("enc"), nil)
				m.meta.EXPECT().SaveVaultMeta(gomock.Any(), gomock.Any()).Return(errDB)
			},
			wantErr: errDB,
		},
		{
			name: "salt generation fails",
			setup: func(m *vaultMocks) {
				m.meta.EXPECT().GetVaultMeta(gomock.Any()).Return(models.VaultMeta{}, store.ErrVaultMetaNotFound)
				m.keychain.EXPECT().GenerateEncryptionSalt().Return(nil, errDB)
			},
			wantErr: errDB,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newVaultSvc(t)
			tt.setup(m)

			created, err := svc.Open(context.Background(), "master")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, created)
		})
	}
}

func TestClientVaultService_Lock(t *testing.T) {
	svc, m := newVaultSvc(t)
	m.key.EXPECT().Lock()

	svc.Lock(context.Background())
}
