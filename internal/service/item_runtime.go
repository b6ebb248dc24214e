// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-sif-keeper/models"
)

// itemRuntime is the in-memory state of one loaded item: the item itself,
// its secure field cache and its edit session. The mutex guards only the
// item; it is never held while calling a collaborator or another component.
type itemRuntime struct {
	mu   sync.RWMutex
	item models.Item

	cache   *SecureFieldCache
	session *EditSession
}

func newItemRuntime(item models.Item) *itemRuntime {
	item = item.Clone()
	item.Normalize()
	return &itemRuntime{item: item}
}

func (rt *itemRuntime) id() models.ItemID {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return rt.item.ID
}

func (rt *itemRuntime) snapshot() models.Item {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	return rt.item.Clone()
}

func (rt *itemRuntime) ciphertext(field models.FieldName) (models.Ciphertext, bool) {
	rt.mu.RLock()
	defer rt.mu.RUnlock()
	ct, ok := rt.item.EncryptedFields[field]
	return ct, ok
}

func (rt *itemRuntime) setCiphertext(field models.FieldName, ct models.Ciphertext) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.item.EncryptedFields[field] = ct
}

func (rt *itemRuntime) deleteCiphertext(field models.FieldName) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	delete(rt.item.EncryptedFields, field)
}

// setSIFAvailable raises or clears the local availability flag. Secret
// items stay available regardless.
func (rt *itemRuntime) setSIFAvailable(v bool) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.item.SecurityTier == models.Secret {
		rt.item.SIFAvailable = true
		return
	}
	rt.item.SIFAvailable = v
}

// consumeAccess clears a one-shot TopSecret grant and reports whether one
// was present.
func (rt *itemRuntime) consumeAccess() bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.item.SecurityTier != models.TopSecret || !rt.item.SIFAvailable {
		return false
	}
	rt.item.SIFAvailable = false
	return true
}

// committed records a successful persist of the item.
func (rt *itemRuntime) committed(now time.Time) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.item.Version++
	rt.item.UpdatedAt = &now
}

// replace swaps in a refreshed copy of the item. A granted availability of
// the same tier survives the refresh.
func (rt *itemRuntime) replace(item models.Item) {
	item = item.Clone()
	item.Normalize()

	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.item.SecurityTier == item.SecurityTier && rt.item.SIFAvailable {
		item.SIFAvailable = true
	}
	rt.item = item
}
