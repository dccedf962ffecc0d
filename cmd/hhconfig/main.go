// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/hhconfig/internal/adapter"
	"github.com/MKhiriev/hhconfig/internal/client"
	"github.com/MKhiriev/hhconfig/internal/config"
	"github.com/MKhiriev/hhconfig/internal/logger"
	"github.com/MKhiriev/hhconfig/internal/service"
	"github.com/MKhiriev/hhconfig/internal/store"
	"github.com/MKhiriev/hhconfig/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewCLILogger("hhconfig", false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewCLILogger("hhconfig", cfg.App.Verbose)
	log.Debug().Str("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String()).Send()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(log.WithContext(ctx), cfg, log)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("hhconfig failed")
		os.Exit(1)
	}
}

// run wires the CLI and executes it. Resources it opens are released before
// it returns, on success and on error.
func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	var (
		serverAdapter adapter.ServerAdapter
		err           error
	)
	if cfg.Adapter.HTTPAddress != "" {
		if serverAdapter, err = adapter.NewHTTPServerAdapter(cfg.Adapter, log); err != nil {
			return fmt.Errorf("error creating server adapter: %w", err)
		}
	}

	// the local store is only needed to publish without a server
	var storages *store.Storages
	if cfg.App.Publish && serverAdapter == nil {
		if storages, err = store.NewStorages(ctx, cfg.Storage, log); err != nil {
			return fmt.Errorf("error creating storages: %w", err)
		}
		defer storages.Close()
	}

	var services *service.Services
	if serverAdapter == nil || cfg.App.IssueToken != "" {
		if services, err = service.NewServices(storages, cfg, log); err != nil {
			return fmt.Errorf("error creating services: %w", err)
		}
	}

	app, err := client.NewApp(cfg.App, services, serverAdapter, log)
	if err != nil {
		return fmt.Errorf("error creating app: %w", err)
	}

	return app.Run(ctx)
}
