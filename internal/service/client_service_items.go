// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/policy"
	"github.com/MKhiriev/go-sif-keeper/internal/store"
	"github.com/MKhiriev/go-sif-keeper/internal/utils"
	"github.com/MKhiriev/go-sif-keeper/internal/validators"
	"github.com/MKhiriev/go-sif-keeper/models"
)

type clientItemService struct {
	repo      store.ItemRepository
	fields    *FieldManager
	ids       utils.IDGenerator
	deviceID  string
	vaultID   string
	clock     Clock
	validator validators.Validator
}

// NewClientItemService builds an [ItemService] creating items in the given
// device and vault.
func NewClientItemService(repo store.ItemRepository, fields *FieldManager, deviceID, vaultID string) ItemService {
	return &clientItemService{
		repo:      repo,
		fields:    fields,
		ids:       utils.NewUUIDGenerator(),
		deviceID:  deviceID,
		vaultID:   vaultID,
		clock:     SystemClock(),
		validator: validators.NewItemValidator(),
	}
}

func (s *clientItemService) LoadAll(ctx context.Context) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list local items: %w", err)
	}

	for _, item := range items {
		if err := s.fields.Load(item); err != nil {
			if errors.Is(err, ErrEditInProgress) {
				log.Warn().Str("func", "clientItemService.LoadAll").Str("item", item.ID.String()).Msg("item is being edited, refresh skipped")
				continue
			}
			return nil, fmt.Errorf("load item %s: %w", item.ID, err)
		}
	}

	return s.fields.Items(), nil
}

func (s *clientItemService) Create(ctx context.Context, in models.ItemTemplate) (models.ItemID, error) {
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.ItemID{}, mapValidationError(err)
	}

	now := s.clock.Now().UTC()
	item := models.Item{
		ID: models.ItemID{
			DeviceID: s.deviceID,
			VaultID:  s.vaultID,
			ItemID:   s.ids.Generate(),
		},
		Kind:            in.Kind,
		SecurityTier:    in.SecurityTier,
		Content:         in.Content,
		EncryptedFields: make(map[models.FieldName]models.Ciphertext),
		SIFResetMinutes: in.SIFResetMinutes,
		Version:         1,
		UpdatedAt:       &now,
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return models.ItemID{}, fmt.Errorf("save created item to local store: %w", err)
	}
	if err := s.fields.Load(item); err != nil {
		return models.ItemID{}, fmt.Errorf("load created item: %w", err)
	}

	for _, field := range item.Kind.Fields() {
		secret, ok := in.Secrets[field]
		if !ok || secret == "" {
			continue
		}
		if err := s.writeField(ctx, item.ID, field, secret); err != nil {
			return item.ID, fmt.Errorf("write field %s: %w", field, err)
		}
	}

	return item.ID, nil
}

// writeField runs one begin/stage/commit cycle. Tiers that need a fetch
// are fetched first; a TopSecret grant is used up by every cycle.
func (s *clientItemService) writeField(ctx context.Context, id models.ItemID, field models.FieldName, value string) error {
	current, ok := s.fields.Item(id)
	if !ok {
		return ErrItemNotLoaded
	}
	if policy.NeedsFetch(current.SecurityTier) && !current.SIFAvailable {
		if err := s.fields.Fetch(ctx, id, 0); err != nil {
			return err
		}
	}

	if _, err := s.fields.BeginEdit(ctx, id, field); err != nil {
		return err
	}
	if err := s.fields.Stage(ctx, id, value); err != nil {
		_ = s.fields.CancelEdit(ctx, id)
		return err
	}
	if err := s.fields.CommitEdit(ctx, id); err != nil {
		_ = s.fields.CancelEdit(ctx, id)
		return err
	}
	return nil
}

func (s *clientItemService) Refresh(ctx context.Context, id models.ItemID) error {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get local item: %w", err)
	}
	return s.fields.Load(item)
}

func (s *clientItemService) Delete(ctx context.Context, id models.ItemID) error {
	s.fields.Remove(ctx, id)

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete local item: %w", err)
	}
	return nil
}

func mapValidationError(err error) error {
	if errors.Is(err, validators.ErrUnsupportedSecret) {
		return fmt.Errorf("%w: %w", ErrFieldNotSupported, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidItem, err)
}
