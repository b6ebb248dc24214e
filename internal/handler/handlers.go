package handler

import (
	"github.com/MKhiriev/go-sif-keeper/internal/config"
	"github.com/MKhiriev/go-sif-keeper/internal/handler/http"
	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.CompanionConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if cfg.HashKey == "" {
		return nil, errNoPairingKey
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg.HashKey, logger)}, nil
}
