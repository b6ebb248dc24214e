package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/service"
	"github.com/MKhiriev/go-sif-keeper/internal/tui"
	"github.com/MKhiriev/go-sif-keeper/internal/workers"
)

// shutdownTimeout bounds flushing pending re-encryption writes on exit.
const shutdownTimeout = 5 * time.Second

// UI is the interactive front end the app runs until the user quits.
type UI interface {
	Run(ctx context.Context) error
}

// App ties the client services, background workers and the terminal UI
// into one process lifecycle.
type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	closers  []func() error
	logger   *logger.Logger
}

// NewApp returns an [App]. closers run after everything else has stopped,
// in order; storage handles belong there.
func NewApp(services *service.ClientServices, ui UI, ws *workers.Workers, log *logger.Logger, closers ...func() error) (*App, error) {
	if services == nil || ui == nil {
		return nil, errNoServices
	}
	if ws == nil {
		ws = workers.NewWorkers()
	}
	return &App{services: services, ui: ui, workers: ws, closers: closers, logger: log}, nil
}

// Run starts the workers, blocks in the UI and then tears everything down:
// pending edits are flushed, the vault is locked and the workers stop.
// A user quit is not an error.
func (a *App) Run(ctx context.Context) (err error) {
	a.workers.Start(ctx)
	defer func() {
		err = errors.Join(err, a.shutdown())
	}()

	if err := a.ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.services.Fields.Close(ctx); err != nil {
		a.logger.Err(err).Str("func", "*App.shutdown").Msg("pending edits were not flushed")
		errs = append(errs, err)
	}
	a.services.Vault.Lock(ctx)
	a.workers.Stop()

	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}

	a.logger.Info().Msg("client stopped")
	return errors.Join(errs...)
}
