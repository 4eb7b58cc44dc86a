package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/handler"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/metrics"
	"github.com/MKhiriev/go-user-auth/internal/server"
	"github.com/MKhiriev/go-user-auth/internal/service"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("user-auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	// the DSN may carry credentials, so only the server section is logged
	log.Debug().Any("server", cfg.Server).Int("bcrypt_cost", cfg.App.BcryptCost).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()
	log.Info().Str("backend", string(storages.Backend)).Msg("storage ready")

	m := metrics.New()
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	services, err := service.NewServices(storages, buildInfo, *cfg, m, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating services")
		return
	}

	handlers, err := handler.NewHandlers(services, m, cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating handlers")
		return
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server")
		return
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("error running server")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
