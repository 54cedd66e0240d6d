// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-tasks-api/internal/logger"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T, driver string, classificator ErrorClassificator) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newDB(conn, driver, classificator, logger.Nop()), mock
}

func TestNewDB_PlaceholderByDriver(t *testing.T) {
	sqliteDB, _ := newMockDB(t, driverSQLite, NewSQLiteErrorClassifier())
	pgDB, _ := newMockDB(t, driverPostgres, NewPostgresErrorClassifier())

	q, _, err := buildSchemaVersionQuery(sqliteDB.placeholder)
	require.NoError(t, err)
	assert.Contains(t, q, "is_applied = ?")

	q, _, err = buildSchemaVersionQuery(pgDB.placeholder)
	require.NoError(t, err)
	assert.Contains(t, q, "is_applied = $1")
}

func TestDB_SchemaVersion(t *testing.T) {
	query := regexp.QuoteMeta("SELECT COALESCE(MAX(version_id), 0) FROM schema_migrations WHERE is_applied = ?")

	tests := []struct {
		name        string
		setup       func(mock sqlmock.Sqlmock)
		want        int64
		expectedErr error
	}{
		{
			name: "applied version",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs(true).
					WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(3)))
			},
			want: 3,
		},
		{
			name: "nothing applied",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs(true).
					WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(0)))
			},
			want: 0,
		},
		{
			name: "query fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs(true).WillReturnError(errors.New("no such table"))
			},
			expectedErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t, driverSQLite, NewSQLiteErrorClassifier())
			tt.setup(mock)

			got, err := db.SchemaVersion(context.Background())

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDB_PingWithRetry(t *testing.T) {
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	corrupt := sqlite3.Error{Code: sqlite3.ErrCorrupt}

	tests := []struct {
		name     string
		attempts int
		setup    func(mock sqlmock.Sqlmock)
		wantErr  bool
	}{
		{
			name:     "first ping succeeds",
			attempts: 3,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing()
			},
		},
		{
			name:     "retryable error then success",
			attempts: 3,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing().WillReturnError(busy)
				mock.ExpectPing().WillReturnError(busy)
				mock.ExpectPing()
			},
		},
		{
			name:     "retryable error exhausts attempts",
			attempts: 2,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing().WillReturnError(busy)
				mock.ExpectPing().WillReturnError(busy)
			},
			wantErr: true,
		},
		{
			name:     "non-retryable error fails at once",
			attempts: 3,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing().WillReturnError(corrupt)
			},
			wantErr: true,
		},
		{
			name:     "zero attempts still pings once",
			attempts: 0,
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t, driverSQLite, NewSQLiteErrorClassifier())
			tt.setup(mock)

			err := db.pingWithRetry(context.Background(), tt.attempts, time.Millisecond)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrPingingDatabase)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDB_PingWithRetry_ContextCancelled(t *testing.T) {
	db, mock := newMockDB(t, driverSQLite, NewSQLiteErrorClassifier())
	mock.ExpectPing().WillReturnError(sqlite3.Error{Code: sqlite3.ErrLocked})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := db.pingWithRetry(ctx, 5, time.Hour)

	require.ErrorIs(t, err, ErrPingingDatabase)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), configDB("mysql", "x"), logger.Nop())

	require.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewConnect_EmptyDSN(t *testing.T) {
	for _, driver := range []string{driverSQLite, driverPostgres} {
		t.Run(driver, func(t *testing.T) {
			_, err := NewConnect(context.Background(), configDB(driver, "  "), logger.Nop())
			require.Error(t, err)
		})
	}
}
