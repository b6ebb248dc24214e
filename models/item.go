// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"maps"
	"slices"
	"time"
)

// ItemID identifies a vault item across paired devices.
// The triple is compared by value and used as a map key everywhere.
type ItemID struct {
	// DeviceID is the companion device the vault is paired with.
	DeviceID string `json:"device_id"`

	// VaultID is the vault the item lives in.
	VaultID string `json:"vault_id"`

	// ItemID is the item identifier inside the vault.
	ItemID string `json:"item_id"`
}

// String returns the "device/vault/item" form used in logs and metrics.
func (id ItemID) String() string {
	return id.DeviceID + "/" + id.VaultID + "/" + id.ItemID
}

// IsZero reports whether no component of the identity is set.
func (id ItemID) IsZero() bool {
	return id.DeviceID == "" && id.VaultID == "" && id.ItemID == ""
}

// Content holds the public (never encrypted) attributes of an item.
// Which fields are meaningful depends on the item kind.
type Content struct {
	// Name is the human-readable display name of the item.
	Name string `json:"name"`

	// Username is the login identifier of a Login item.
	Username string `json:"username,omitempty"`

	// URIs are the resources a Login item applies to.
	URIs []string `json:"uris,omitempty"`

	// CardHolder is the name printed on a PaymentCard.
	CardHolder string `json:"card_holder,omitempty"`

	// CardMask is the public masked card number, e.g. "•••• 4242".
	CardMask string `json:"card_mask,omitempty"`
}

// Item is the runtime representation of a vault item.
//
// Sensitive attributes live only in EncryptedFields as opaque ciphertext;
// their cleartext is never stored on the item itself.
type Item struct {
	// ID is the (device, vault, item) identity.
	ID ItemID `json:"id"`

	// Kind selects the set of secure fields the item carries.
	Kind ItemKind `json:"kind"`

	// SecurityTier governs whether cleartext may be cached and for how long.
	SecurityTier SecurityTier `json:"security_tier"`

	// Content holds public fields.
	Content Content `json:"content"`

	// EncryptedFields maps secure field names to their ciphertext.
	EncryptedFields map[FieldName]Ciphertext `json:"encrypted_fields"`

	// SIFAvailable reports whether a decryptable copy of the item's secure
	// fields is currently available locally. Always true for Secret items.
	SIFAvailable bool `json:"sif_available"`

	// SIFResetMinutes is the expiry budget applied once the item is fetched.
	SIFResetMinutes *uint32 `json:"sif_reset_minutes,omitempty"`

	// Version is the optimistic-locking counter of the persisted item.
	Version int64 `json:"version"`

	// UpdatedAt is the timestamp of the last persisted modification.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Clone returns a deep copy of the item. Runtimes hand clones to
// collaborators so that concurrent writers never share maps or slices.
func (i Item) Clone() Item {
	out := i
	out.EncryptedFields = maps.Clone(i.EncryptedFields)
	out.Content.URIs = slices.Clone(i.Content.URIs)
	if i.SIFResetMinutes != nil {
		v := *i.SIFResetMinutes
		out.SIFResetMinutes = &v
	}
	if i.UpdatedAt != nil {
		t := *i.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

// Normalize enforces the tier invariants on a freshly loaded item:
// Secret items are always locally decryptable, and the field map is non-nil.
func (i *Item) Normalize() {
	if i.EncryptedFields == nil {
		i.EncryptedFields = make(map[FieldName]Ciphertext)
	}
	if i.SecurityTier == Secret {
		i.SIFAvailable = true
	}
}

// HasField reports whether name is a secure field of the item's kind.
func (i Item) HasField(name FieldName) bool {
	return slices.Contains(i.Kind.Fields(), name)
}

// FieldUpdate is the unit handed to the persistence collaborator on commit.
type FieldUpdate struct {
	// ID identifies the item being updated.
	ID ItemID

	// BaseVersion is the item version the edit was made against.
	BaseVersion int64

	// Fields are the re-encrypted field values to store.
	Fields map[FieldName]Ciphertext
}

// FetchGrant is what the companion device returns on a successful fetch.
type FetchGrant struct {
	// ItemKey is the per-item key that makes the item's fields decryptable
	// locally. Empty when the companion keeps keys to itself.
	ItemKey []byte `json:"item_key,omitempty"`

	// ResetMinutes overrides the item's expiry budget when set.
	ResetMinutes *uint32 `json:"reset_minutes,omitempty"`
}

// ItemTemplate describes an item to create: its public part and the
// cleartext of its secure fields.
type ItemTemplate struct {
	Kind            ItemKind
	SecurityTier    SecurityTier
	Content         Content
	SIFResetMinutes *uint32
	Secrets         map[FieldName]string
}
