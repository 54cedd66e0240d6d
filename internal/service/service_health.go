// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tasks-api/internal/logger"
	"github.com/MKhiriev/go-tasks-api/internal/store"
	"github.com/MKhiriev/go-tasks-api/models"
)

type healthService struct {
	db store.Database

	logger *logger.Logger
}

func NewHealthService(db store.Database, logger *logger.Logger) HealthService {
	return &healthService{
		db:     db,
		logger: logger,
	}
}

// Check pings the database and reads the applied schema version. A failed
// ping returns a degraded status together with ErrDatabaseUnavailable.
func (s *healthService) Check(ctx context.Context) (models.HealthStatus, error) {
	log := logger.FromContext(ctx)

	if err := s.db.PingContext(ctx); err != nil {
		log.Err(err).Msg("database ping failed")
		return models.HealthStatus{
			Status:   models.HealthStatusDegraded,
			Database: models.DatabaseDown,
		}, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	version, err := s.db.SchemaVersion(ctx)
	if err != nil {
		log.Err(err).Msg("reading schema version failed")
		return models.HealthStatus{
			Status:   models.HealthStatusDegraded,
			Database: models.DatabaseUp,
		}, fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return models.HealthStatus{
		Status:        models.HealthStatusOK,
		Database:      models.DatabaseUp,
		SchemaVersion: version,
	}, nil
}
