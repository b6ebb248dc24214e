package http

import (
	"github.com/MKhiriev/go-sif-keeper/internal/logger"
	"github.com/MKhiriev/go-sif-keeper/internal/service"
	"github.com/MKhiriev/go-sif-keeper/internal/utils"
)

// Handler serves the companion simulator's REST API.
type Handler struct {
	services *service.Services
	hasher   *utils.Hasher

	logger *logger.Logger
}

// NewHandler returns a Handler verifying request signatures with hashKey.
func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hasher:   utils.NewHasher(hashKey),
		logger:   logger,
	}
}
