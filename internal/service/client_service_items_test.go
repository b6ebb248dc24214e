// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sif-keeper/internal/config"
	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/mock"
	"github.com/MKhiriev/go-sif-keeper/internal/service"
	"github.com/MKhiriev/go-sif-keeper/models"
)

type itemMocks struct {
	repo    *mock.MockItemRepository
	dec     *mock.MockFieldDecrypter
	enc     *mock.MockFieldEncrypter
	fetcher *mock.MockCompanionFetcher
}

func newItemSvc(t *testing.T) (service.ItemService, *service.FieldManager, *itemMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &itemMocks{
		repo:    mock.NewMockItemRepository(ctrl),
		dec:     mock.NewMockFieldDecrypter(ctrl),
		enc:     mock.NewMockFieldEncrypter(ctrl),
		fetcher: mock.NewMockCompanionFetcher(ctrl),
	}

	fields := service.NewFieldManager(config.ClientSIF{DebounceDelay: time.Hour}, service.Collaborators{
		Decrypter: m.dec,
		Encrypter: m.enc,
		Fetcher:   m.fetcher,
		Source:    m.repo,
		Persister: m.repo,
	}, logger.Nop())

	return service.NewClientItemService(m.repo, fields, "device-1", "personal"), fields, m
}

func storedItem(name string, tier models.SecurityTier) models.Item {
	return models.Item{
		ID:           models.ItemID{DeviceID: "device-1", VaultID: "personal", ItemID: name},
		Kind:         models.Login,
		SecurityTier: tier,
		Content:      models.Content{Name: name},
		EncryptedFields: map[models.FieldName]models.Ciphertext{
			models.FieldPassword: models.Ciphertext("ct-" + name),
		},
		Version: 3,
	}
}

func TestClientItemService_Create_WritesSecrets(t *testing.T) {
	svc, fields, m := newItemSvc(t)
	ctx := context.Background()

	var saved models.Item
	m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, items ...models.Item) error {
			require.Len(t, items, 1)
			saved = items[0]
			return nil
		})
	// Новое поле расшифровывается в пустую строку
	m.dec.EXPECT().Decrypt(gomock.Any(), gomock.Any(), models.FieldPassword).Return("", nil)
	m.enc.EXPECT().Encrypt(gomock.Any(), gomock.Any(), models.FieldPassword, "hunter2").Return(models.Ciphertext("ct-hunter2"), nil)
	m.repo.EXPECT().Persist(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.FieldUpdate) error {
			assert.Equal(t, saved.ID, u.ID)
			assert.Equal(t, int64(1), u.BaseVersion)
			assert.Equal(t, map[models.FieldName]models.Ciphertext{models.FieldPassword: "ct-hunter2"}, u.Fields)
			return nil
		})

	id, err := svc.Create(ctx, models.ItemTemplate{
		Kind:         models.Login,
		SecurityTier: models.Secret,
		Content:      models.Content{Name: "github", Username: "alice"},
		Secrets: map[models.FieldName]string{
			models.FieldPassword: "hunter2",
			models.FieldNote:     "",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "device-1", id.DeviceID)
	assert.Equal(t, "personal", id.VaultID)
	assert.NotEmpty(t, id.ItemID)
	assert.Empty(t, saved.EncryptedFields, "secrets are never stored before encryption")

	item, ok := fields.Item(id)
	require.True(t, ok)
	assert.Equal(t, models.Ciphertext("ct-hunter2"), item.EncryptedFields[models.FieldPassword])
	assert.Equal(t, int64(2), item.Version)
	assert.Equal(t, models.Plain("hunter2"), fields.DisplayValue(ctx, id, models.FieldPassword, true))
}

func TestClientItemService_Create_FetchesBeforeWriting(t *testing.T) {
	svc, fields, m := newItemSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
		m.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(models.FetchGrant{}, nil),
		m.dec.EXPECT().Decrypt(gomock.Any(), gomock.Any(), models.FieldNote).Return("", nil),
		m.enc.EXPECT().Encrypt(gomock.Any(), gomock.Any(), models.FieldNote, "recovery codes").Return(models.Ciphertext("ct-note"), nil),
		m.repo.EXPECT().Persist(gomock.Any(), gomock.Any()).Return(nil),
	)

	id, err := svc.Create(ctx, models.ItemTemplate{
		Kind:         models.SecureNote,
		SecurityTier: models.HighlySecret,
		Content:      models.Content{Name: "backup"},
		Secrets:      map[models.FieldName]string{models.FieldNote: "recovery codes"},
	})
	require.NoError(t, err)

	_, armed := fields.ExpiryProgress(id)
	assert.True(t, armed)
}

func TestClientItemService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		in      models.ItemTemplate
		wantErr error
	}{
		{
			name:    "unknown kind",
			in:      models.ItemTemplate{Kind: 42, SecurityTier: models.Secret, Content: models.Content{Name: "x"}},
			wantErr: service.ErrInvalidItem,
		},
		{
			name:    "unknown tier",
			in:      models.ItemTemplate{Kind: models.Login, SecurityTier: 7, Content: models.Content{Name: "x"}},
			wantErr: service.ErrInvalidItem,
		},
		{
			name:    "empty name",
			in:      models.ItemTemplate{Kind: models.Login, SecurityTier: models.Secret},
			wantErr: service.ErrInvalidItem,
		},
		{
			name: "field outside kind",
			in: models.ItemTemplate{
				Kind:         models.SecureNote,
				SecurityTier: models.Secret,
				Content:      models.Content{Name: "x"},
				Secrets:      map[models.FieldName]string{models.FieldCardNumber: "4242"},
			},
			wantErr: service.ErrFieldNotSupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newItemSvc(t)

			_, err := svc.Create(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientItemService_Create_SaveFails(t *testing.T) {
	svc, fields, m := newItemSvc(t)
	errDB := errors.New("database is locked")

	m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errDB)

	_, err := svc.Create(context.Background(), models.ItemTemplate{
		Kind:         models.Login,
		SecurityTier: models.Secret,
		Content:      models.Content{Name: "x"},
	})
	assert.ErrorIs(t, err, errDB)
	assert.Empty(t, fields.Items())
}

func TestClientItemService_LoadAll(t *testing.T) {
	svc, _, m := newItemSvc(t)

	m.repo.EXPECT().List(gomock.Any()).Return([]models.Item{
		storedItem("zeta", models.Secret),
		storedItem("alpha", models.HighlySecret),
	}, nil)

	items, err := svc.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "alpha", items[0].Content.Name)
	assert.False(t, items[0].SIFAvailable)
	assert.Equal(t, "zeta", items[1].Content.Name)
	assert.True(t, items[1].SIFAvailable)
}

func TestClientItemService_LoadAll_SkipsItemsUnderEdit(t *testing.T) {
	svc, fields, m := newItemSvc(t)
	ctx := context.Background()

	item := storedItem("zeta", models.Secret)
	require.NoError(t, fields.Load(item))

	m.dec.EXPECT().Decrypt(gomock.Any(), gomock.Any(), models.FieldPassword).Return("pw", nil)
	_, err := fields.BeginEdit(ctx, item.ID, models.FieldPassword)
	require.NoError(t, err)

	refreshed := storedItem("zeta", models.Secret)
	refreshed.Version = 9
	m.repo.EXPECT().List(gomock.Any()).Return([]models.Item{refreshed}, nil)

	items, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].Version, "an item under edit keeps its in-memory copy")
}

func TestClientItemService_RefreshAndDelete(t *testing.T) {
	svc, fields, m := newItemSvc(t)
	ctx := context.Background()

	item := storedItem("mail", models.Secret)
	require.NoError(t, fields.Load(item))

	refreshed := item.Clone()
	refreshed.Version = 4
	m.repo.EXPECT().Get(gomock.Any(), item.ID).Return(refreshed, nil)
	require.NoError(t, svc.Refresh(ctx, item.ID))

	got, _ := fields.Item(item.ID)
	assert.Equal(t, int64(4), got.Version)

	m.repo.EXPECT().Delete(gomock.Any(), item.ID).Return(nil)
	require.NoError(t, svc.Delete(ctx, item.ID))

	_, ok := fields.Item(item.ID)
	assert.False(t, ok)
}
