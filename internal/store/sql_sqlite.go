// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-tasks-api/internal/config"
	"github.com/MKhiriev/go-tasks-api/internal/logger"
)

const dataSourcePrefix = "data source="

// NewConnectSQLite opens the SQLite database named by cfg.DSN, creating the
// file when it does not exist yet, and pings it.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := sqliteDSN(cfg.DSN)
	if dsn == "" {
		return nil, ErrEmptyDSN
	}

	if !isInMemory(dsn) {
		if err := createLocalDBFileIfNotExists(sqliteFileName(dsn)); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file: %w", err)
		}
	}

	conn, err := sql.Open(driverSQLite, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningConnection, err)
	}

	db := newDB(conn, driverSQLite, NewSQLiteErrorClassifier(), log)
	if err = db.pingWithRetry(ctx, cfg.ConnectAttempts, cfg.ConnectRetryDelay); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return db, nil
}

// sqliteDSN accepts both "tasks.db" and "Data Source=tasks.db".
func sqliteDSN(raw string) string {
	dsn := strings.TrimSpace(raw)
	if len(dsn) >= len(dataSourcePrefix) && strings.EqualFold(dsn[:len(dataSourcePrefix)], dataSourcePrefix) {
		dsn = strings.TrimSpace(dsn[len(dataSourcePrefix):])
	}
	return strings.TrimSuffix(dsn, ";")
}

func isInMemory(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}

// sqliteFileName strips the "file:" scheme and any query parameters.
func sqliteFileName(dsn string) string {
	name := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	return name
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		return f.Close()
	}

	return nil
}
