// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-tasks-api/internal/config"
	"github.com/MKhiriev/go-tasks-api/internal/logger"
	"github.com/MKhiriev/go-tasks-api/internal/store"
	"github.com/MKhiriev/go-tasks-api/models"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(cfg.JWT, logger),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages.DB, logger),
	}, nil
}
