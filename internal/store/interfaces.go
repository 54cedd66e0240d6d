// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import "context"

// Database is the capability the service layer needs from the persistence
// connection.
type Database interface {
	// PingContext verifies that the connection is alive.
	PingContext(ctx context.Context) error

	// SchemaVersion returns the highest applied migration version.
	SchemaVersion(ctx context.Context) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
