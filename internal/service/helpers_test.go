// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-sif-keeper/models"
)

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var (
	secretID  = models.ItemID{DeviceID: "dev", VaultID: "vault", ItemID: "secret"}
	highlyID  = models.ItemID{DeviceID: "dev", VaultID: "vault", ItemID: "highly"}
	topID     = models.ItemID{DeviceID: "dev", VaultID: "vault", ItemID: "top"}
	missingID = models.ItemID{DeviceID: "dev", VaultID: "vault", ItemID: "missing"}
)

func loginItem(id models.ItemID, tier models.SecurityTier) models.Item {
	return models.Item{
		ID:           id,
		Kind:         models.Login,
		SecurityTier: tier,
		Content:      models.Content{Name: id.ItemID, Username: "alice"},
		EncryptedFields: map[models.FieldName]models.Ciphertext{
			models.FieldPassword: models.Ciphertext("ct-" + id.ItemID),
		},
		Version: 1,
	}
}

func u32(v uint32) *uint32 { return &v }
