// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a required
// configuration group is incomplete or invalid. The underlying validator
// error is wrapped alongside the sentinel.
var (
	// ErrInvalidJWTConfigs indicates a missing issuer, audience or secret key.
	ErrInvalidJWTConfigs = errors.New("invalid jwt configuration")
	// ErrInvalidStorageConfigs indicates a missing connection string or an
	// unsupported driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that no listener is configured or
	// that TLS material is missing for the HTTPS listener.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCORSConfigs indicates an empty or malformed origin list.
	ErrInvalidCORSConfigs = errors.New("invalid cors configuration")
	// ErrInvalidRateLimitConfigs indicates a non-positive window or limit.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
	// ErrInvalidAppConfigs indicates an unknown log level or locale.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive sweep interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
