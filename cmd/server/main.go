// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tasks-api/internal/config"
	"github.com/MKhiriev/go-tasks-api/internal/handler"
	"github.com/MKhiriev/go-tasks-api/internal/logger"
	"github.com/MKhiriev/go-tasks-api/internal/ratelimit"
	"github.com/MKhiriev/go-tasks-api/internal/server"
	"github.com/MKhiriev/go-tasks-api/internal/service"
	"github.com/MKhiriev/go-tasks-api/internal/store"
	"github.com/MKhiriev/go-tasks-api/internal/workers"
	"github.com/MKhiriev/go-tasks-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("tasks-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("https_address", cfg.Server.HTTPSAddress).
		Strs("allowed_origins", cfg.CORS.AllowedOrigins).
		Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	limiter := ratelimit.New(cfg.RateLimit, log)

	handlers, err := handler.NewHandlers(services, limiter, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	workers.NewWorkers(cfg.Workers, limiter, log).Run(ctx)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
