package http

import (
	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/metrics"
	"github.com/MKhiriev/go-user-auth/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	return &Handler{
		services:       services,
		metrics:        m,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}
