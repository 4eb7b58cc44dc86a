package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/crypto"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/metrics"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/models"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices wires the auth service as metrics(validation(core)), so
// rejected input is counted too.
func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.App.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(buildInfo, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	var authService AuthService = NewAuthService(storages.UserRepository, hasher, logger)
	authService = NewAuthValidationService().Wrap(authService)
	authService = NewAuthMetricsService(m).Wrap(authService)

	return &Services{
		AuthService:    authService,
		AppInfoService: appInfoService,
	}, nil
}
