// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tasks-api/internal/logger"
	"github.com/MKhiriev/go-tasks-api/migrations"
	sq "github.com/Masterminds/squirrel"
)

const (
	driverSQLite   = "sqlite3"
	driverPostgres = "pgx"
)

// DB is the process-wide database handle. It embeds *sql.DB and remembers
// the driver it was opened with so migrations and queries use the matching
// dialect.
type DB struct {
	*sql.DB
	driver             string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, driver string, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == driverPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		placeholder:        placeholder,
		errorClassificator: classificator,
		logger:             log,
	}
}

// Migrate applies every pending embedded migration.
func (db *DB) Migrate(ctx context.Context) error {
	if err := migrations.Migrate(ctx, db.DB, db.driver); err != nil {
		db.logger.Err(err).Str("func", "DB.Migrate").Msg("error applying migrations")
		return fmt.Errorf("%w: %w", ErrMigratingDatabase, err)
	}
	db.logger.Info().Str("func", "DB.Migrate").Msg("migrations applied")

	return nil
}

// SchemaVersion returns the highest applied migration version recorded in
// the migration metadata table, or 0 when nothing has been applied.
func (db *DB) SchemaVersion(ctx context.Context) (int64, error) {
	query, args, err := buildSchemaVersionQuery(db.placeholder)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var version int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&version); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return version, nil
}

// pingWithRetry pings the database up to attempts times. Only errors the
// classificator marks as Retryable are retried; anything else fails at once.
func (db *DB) pingWithRetry(ctx context.Context, attempts int, delay time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}

		if db.errorClassificator.Classify(err) != Retryable || attempt == attempts {
			break
		}

		db.logger.Warn().Err(err).
			Str("func", "DB.pingWithRetry").
			Int("attempt", attempt).
			Msg("retryable database error, retrying ping")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrPingingDatabase, ctx.Err())
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("%w: %w", ErrPingingDatabase, err)
}
