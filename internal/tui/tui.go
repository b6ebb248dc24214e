// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal shell of the client. It unlocks the vault
// with the master password, lists items and shows their secure fields the
// way the field manager reports them: hidden until fetched from the
// companion, masked until revealed, staged while edited.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/service"
	"github.com/MKhiriev/go-sif-keeper/models"
)

// ErrUserQuit is returned by [TUI.Run] when the user leaves the program.
var ErrUserQuit = errors.New("вышел из программы")

var errNoServices = errors.New("client services are required")

// Fields is the part of the field manager the shell drives.
type Fields interface {
	Items() []models.Item
	Item(id models.ItemID) (models.Item, bool)
	DisplayValue(ctx context.Context, id models.ItemID, field models.FieldName, reveal bool) models.DisplayState
	GetOrDecrypt(ctx context.Context, id models.ItemID, field models.FieldName) (string, error)
	Fetch(ctx context.Context, id models.ItemID, timeout time.Duration) error
	ExpiryProgress(id models.ItemID) (float64, bool)

	BeginEdit(ctx context.Context, id models.ItemID, field models.FieldName) (string, error)
	Stage(ctx context.Context, id models.ItemID, plaintext string) error
	CommitEdit(ctx context.Context, id models.ItemID) error
	CancelEdit(ctx context.Context, id models.ItemID) error
}

type deps struct {
	vault  service.VaultService
	items  service.ItemService
	fields Fields
}

// TUI runs the interactive program.
type TUI struct {
	deps      deps
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	options   []tea.ProgramOption
}

// New builds the shell around the client services.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.Vault == nil || services.Items == nil || services.Fields == nil {
		return nil, errNoServices
	}
	return &TUI{
		deps:      deps{vault: services.Vault, items: services.Items, fields: services.Fields},
		buildInfo: buildInfo,
		logger:    log,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.deps, t.buildInfo)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	finalModel, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user quit")
		return ErrUserQuit
	}
	return nil
}
