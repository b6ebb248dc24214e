// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
)

type appInfoService struct {
	appVersion string
}

// NewAppInfoService returns the [AppInfoService] reporting version.
func NewAppInfoService(version string) (AppInfoService, error) {
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	return &appInfoService{appVersion: version}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
