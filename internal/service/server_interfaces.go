// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-sif-keeper/models"
)

//go:generate mockgen -source=server_interfaces.go -destination=../mock/companion_services_mock.go -package=mock

// CompanionService is the key-releasing side of a companion device.
type CompanionService interface {
	// Fetch releases the key of id. It returns [ErrCompanionDenied] when
	// policy refuses the item and ctx.Err() when the caller gives up while
	// approval is pending.
	Fetch(ctx context.Context, id models.ItemID) (models.FetchGrant, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Services groups the services of the companion simulator.
type Services struct {
	CompanionService CompanionService
	AppInfoService   AppInfoService
}
