// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sif-keeper/internal/config"
	"github.com/MKhiriev/go-sif-keeper/internal/crypto"
	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/validators"
	"github.com/MKhiriev/go-sif-keeper/models"
)

// companionService simulates the paired device: it derives per-item keys
// from its root secret and releases them after an optional approval delay.
type companionService struct {
	secret        []byte
	resetMinutes  uint32
	denied        map[string]struct{}
	approvalDelay time.Duration
	validator     validators.Validator
}

// NewCompanionService builds a [CompanionService] from the companion policy.
func NewCompanionService(cfg config.Companion) (CompanionService, error) {
	if cfg.Secret == "" {
		return nil, ErrCompanionSecretNotSet
	}

	denied := make(map[string]struct{}, len(cfg.DeniedItems))
	for _, id := range cfg.DeniedItems {
		denied[id] = struct{}{}
	}

	return &companionService{
		secret:        []byte(cfg.Secret),
		resetMinutes:  cfg.ResetMinutes,
		denied:        denied,
		approvalDelay: cfg.ApprovalDelay,
		validator:     validators.NewItemValidator(),
	}, nil
}

func (s *companionService) Fetch(ctx context.Context, id models.ItemID) (models.FetchGrant, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, id); err != nil {
		return models.FetchGrant{}, fmt.Errorf("%w: %w", ErrInvalidItem, err)
	}
	if _, ok := s.denied[id.ItemID]; ok {
		log.Info().Str("func", "*companionService.Fetch").Str("item", id.String()).Msg("fetch denied by policy")
		return models.FetchGrant{}, ErrCompanionDenied
	}

	if s.approvalDelay > 0 {
		timer := time.NewTimer(s.approvalDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return models.FetchGrant{}, ctx.Err()
		}
	}

	key, err := crypto.DeriveItemKey(s.secret, id)
	if err != nil {
		return models.FetchGrant{}, fmt.Errorf("derive item key: %w", err)
	}

	grant := models.FetchGrant{ItemKey: key}
	if s.resetMinutes > 0 {
		minutes := s.resetMinutes
		grant.ResetMinutes = &minutes
	}

	log.Debug().Str("func", "*companionService.Fetch").Str("item", id.String()).Msg("item key released")
	return grant, nil
}
