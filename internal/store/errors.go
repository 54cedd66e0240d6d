// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Connection setup errors. They are returned (or wrapped) by the connect
// functions and cause the process to stop at startup.
var (
	// ErrEmptyDSN is returned when no connection string is configured.
	ErrEmptyDSN = errors.New("empty connection string")

	// ErrUnsupportedDriver is returned for a driver other than sqlite3 or pgx.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrOpeningConnection is returned when sql.Open fails.
	ErrOpeningConnection = errors.New("error opening connection to DB")

	// ErrPingingDatabase is returned when the database cannot be reached
	// after all retryable attempts are spent.
	ErrPingingDatabase = errors.New("error connecting database (ping)")

	// ErrMigratingDatabase is returned when applying migrations fails.
	ErrMigratingDatabase = errors.New("error migrating database")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrScanningRow is returned when a single-row query cannot be scanned.
	ErrScanningRow = errors.New("error scanning row")
)
