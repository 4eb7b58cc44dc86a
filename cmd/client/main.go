package main

import (
	"context"
	"errors"
	"os"

	"github.com/MKhiriev/go-user-auth/internal/adapter"
	"github.com/MKhiriev/go-user-auth/internal/client"
	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// stdout carries the response envelope
	log := logger.NewConsoleLogger("user-auth-client", os.Stderr)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 2
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating server adapter")
		return 2
	}

	var app client.Client = client.NewApp(serverAdapter, cfg.Command, os.Stdout, log)
	if err = app.Run(context.Background()); err != nil {
		if !errors.Is(err, client.ErrRequestFailed) {
			log.Error().Err(err).Msg("error running client")
		}
		return 1
	}

	return 0
}
