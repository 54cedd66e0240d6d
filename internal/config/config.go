// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-tasks-api process. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file shaped like an appsettings document.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
//   - validate : go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds process-level settings: version, log level and the
	// locale of the unauthorized response message.
	App App `envPrefix:"APP_"`

	// JWT holds the bearer token validation parameters.
	JWT JWT `envPrefix:"JWT_"`

	// Storage holds the relational database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listener addresses, TLS material and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// CORS holds the cross-origin policy.
	CORS CORS `envPrefix:"CORS_"`

	// RateLimit holds the fixed-window limiter policy.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`

	// Locale selects the language of the unauthorized response message.
	// Supported: "en", "pt-BR".
	// Env: APP_LOCALE
	Locale string `env:"LOCALE" validate:"omitempty,oneof=en pt-BR"`

	// UnauthorizedMessage overrides the localized unauthorized message.
	// Env: APP_UNAUTHORIZED_MESSAGE
	UnauthorizedMessage string `env:"UNAUTHORIZED_MESSAGE"`
}

// JWT holds the token validation configuration. All three values are
// required; the process refuses to start without them.
type JWT struct {
	// Issuer must exactly match the "iss" claim of every accepted token.
	// Env: JWT_ISSUER
	Issuer string `env:"ISSUER" validate:"required"`

	// Audience must be present in the "aud" claim of every accepted token.
	// Env: JWT_AUDIENCE
	Audience string `env:"AUDIENCE" validate:"required"`

	// SecretKey is the symmetric signing key. Its UTF-8 bytes are used
	// verbatim as the HMAC key.
	// Env: JWT_SECRET_KEY
	SecretKey string `env:"SECRET_KEY" validate:"required"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver is the database/sql driver name: "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER" validate:"required,oneof=sqlite3 pgx"`

	// DSN is the default connection string. SQLite accepts both a bare
	// file name and the "Data Source=<file>" form.
	// Env: STORAGE_DB_DEFAULT_CONNECTION
	DSN string `env:"DEFAULT_CONNECTION" validate:"required"`

	// ConnectAttempts bounds how many times a retryable ping failure is
	// retried at startup.
	// Env: STORAGE_DB_CONNECT_ATTEMPTS
	ConnectAttempts int `env:"CONNECT_ATTEMPTS" validate:"gte=1"`

	// ConnectRetryDelay is the pause between startup ping attempts.
	// Env: STORAGE_DB_CONNECT_RETRY_DELAY
	ConnectRetryDelay time.Duration `env:"CONNECT_RETRY_DELAY"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the plaintext listener address, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required_without=HTTPSAddress"`

	// HTTPSAddress is the TLS listener address, "host:port". Its port is the
	// target of the HTTPS redirect.
	// Env: SERVER_HTTPS_ADDRESS
	HTTPSAddress string `env:"HTTPS_ADDRESS"`

	// TLSCertFile and TLSKeyFile are required when HTTPSAddress is set.
	// Env: SERVER_TLS_CERT_FILE, SERVER_TLS_KEY_FILE
	TLSCertFile string `env:"TLS_CERT_FILE" validate:"required_with=HTTPSAddress"`
	TLSKeyFile  string `env:"TLS_KEY_FILE" validate:"required_with=HTTPSAddress"`

	// RequestTimeout bounds reading a request's headers and body.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of each listener.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// CORS holds the single cross-origin policy applied to every route.
type CORS struct {
	// PolicyName is used only for logging.
	PolicyName string `env:"POLICY_NAME"`

	// AllowedOrigins lists the exact origins ("scheme://host[:port]")
	// allowed to call the API.
	// Env: CORS_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" validate:"required,min=1,dive,required,url"`
}

// RateLimit describes the fixed-window policy applied per remote address.
type RateLimit struct {
	// PolicyName is used only for logging.
	// Env: RATE_LIMIT_POLICY_NAME
	PolicyName string `env:"POLICY_NAME"`

	// PermitLimit is the number of requests admitted per window.
	// Env: RATE_LIMIT_PERMIT_LIMIT
	PermitLimit int `env:"PERMIT_LIMIT" validate:"gte=1"`

	// Window is the fixed window length.
	// Env: RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW" validate:"gt=0"`

	// QueueLimit is the number of requests allowed to wait for the next
	// window once permits are exhausted.
	// Env: RATE_LIMIT_QUEUE_LIMIT
	QueueLimit int `env:"QUEUE_LIMIT" validate:"gte=0"`

	// RejectionStatusCode is written when both permits and queue are
	// exhausted.
	// Env: RATE_LIMIT_REJECTION_STATUS_CODE
	RejectionStatusCode int `env:"REJECTION_STATUS_CODE" validate:"gte=400,lte=599"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PartitionSweepInterval is how often idle rate-limit partitions are
	// dropped.
	// Env: WORKERS_PARTITION_SWEEP_INTERVAL
	PartitionSweepInterval time.Duration `env:"PARTITION_SWEEP_INTERVAL" validate:"gt=0"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. For every field the first
// source holding a non-zero value wins:
//  1. Environment variables (a .env file is loaded first when present)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
