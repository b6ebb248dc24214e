// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package policy maps an item's security tier and fetch status to the
// availability of its secure fields.
//
// Every function in this package is pure and total over its input domain:
// unknown tiers are treated as the most restrictive case.
package policy

import "github.com/MKhiriev/go-sif-keeper/models"

// Availability is the verdict of [FieldAvailability].
type Availability int

const (
	// Available means the field may be decrypted locally right now.
	Available Availability = iota
	// RequiresFetch means a fetch from the companion must happen first.
	RequiresFetch
	// Unavailable means the field can not be decrypted at all.
	Unavailable
)

func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case RequiresFetch:
		return "requires_fetch"
	default:
		return "unavailable"
	}
}

// DefaultResetMinutes is the expiry budget used when neither the item nor
// the companion grant carries one.
const DefaultResetMinutes uint32 = 5

// FieldAvailability decides whether fields of an item with the given tier
// can be decrypted locally.
//
// For TopSecret items sifAvailable plays the role of the per-access grant
// raised by a fetch and consumed by the next decryption.
func FieldAvailability(tier models.SecurityTier, sifAvailable bool) Availability {
	switch tier {
	case models.Secret:
		return Available
	case models.HighlySecret, models.TopSecret:
		if sifAvailable {
			return Available
		}
		return RequiresFetch
	default:
		return Unavailable
	}
}

// Cacheable reports whether decrypted cleartext of the tier may be kept.
func Cacheable(tier models.SecurityTier) bool {
	return tier == models.Secret || tier == models.HighlySecret
}

// NeedsFetch reports whether the tier ever needs a companion fetch.
func NeedsFetch(tier models.SecurityTier) bool {
	return tier == models.HighlySecret || tier == models.TopSecret
}

// Expires reports whether a fetch for the tier arms an expiry timer.
func Expires(tier models.SecurityTier) bool {
	return tier == models.HighlySecret
}

// ConsumesAccess reports whether a successful decryption uses up the
// fetched access, so that the next read requires a new fetch.
func ConsumesAccess(tier models.SecurityTier) bool {
	return tier == models.TopSecret
}

// ResetBudget resolves the expiry budget in minutes. The grant override
// wins over the item budget, which wins over fallback. Zero values are
// skipped; the result is never zero.
func ResetBudget(grant, item *uint32, fallback uint32) uint32 {
	if grant != nil && *grant > 0 {
		return *grant
	}
	if item != nil && *item > 0 {
		return *item
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultResetMinutes
}
