// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-tasks-api/internal/config"
	"github.com/MKhiriev/go-tasks-api/internal/logger"
)

// Storages groups the persistence handles created at startup.
type Storages struct {
	DB *DB
}

// NewStorages connects to the configured database and applies pending
// migrations. Either failure is fatal for the caller.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{DB: db}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
