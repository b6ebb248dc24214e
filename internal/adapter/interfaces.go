// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the paired companion device.
//
// The primary abstraction is [CompanionAdapter]; the package ships an
// HTTP/REST implementation ([NewHTTPCompanionAdapter]) built on resty, with
// outbound rate limiting and HMAC request signing.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrDenied] for 403, [ErrTimeout] for 408/504).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sif-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/companion_adapter_mock.go -package=mock

// CompanionAdapter defines transport-agnostic communication with the
// companion device.
type CompanionAdapter interface {
	// Fetch asks the companion to release the item's key. The companion may
	// ask its user for approval, so callers pass a deadline. Returns
	// [ErrDenied] when the companion refuses, [ErrTimeout] when the deadline
	// passes and [ErrTransport] for anything else.
	Fetch(ctx context.Context, id models.ItemID) (models.FetchGrant, error)

	// Version returns the companion's version string.
	Version(ctx context.Context) (string, error)
}
