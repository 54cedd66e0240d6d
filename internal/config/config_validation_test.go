// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"dario.cat/mergo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *StructuredConfig {
	t.Helper()
	cfg := requiredOnly()
	require.NoError(t, mergo.Merge(cfg, defaults()))
	return cfg
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validConfig(t).validate())
}

func TestValidate_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			name:    "unsupported driver",
			mutate:  func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "no listener",
			mutate:  func(c *StructuredConfig) { c.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "https without certificate",
			mutate:  func(c *StructuredConfig) { c.Server.HTTPSAddress = ":8443" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "empty origins",
			mutate:  func(c *StructuredConfig) { c.CORS.AllowedOrigins = []string{} },
			wantErr: ErrInvalidCORSConfigs,
		},
		{
			name:    "malformed origin",
			mutate:  func(c *StructuredConfig) { c.CORS.AllowedOrigins = []string{"not an origin"} },
			wantErr: ErrInvalidCORSConfigs,
		},
		{
			name:    "zero window",
			mutate:  func(c *StructuredConfig) { c.RateLimit.Window = 0 },
			wantErr: ErrInvalidRateLimitConfigs,
		},
		{
			name:    "zero permit limit",
			mutate:  func(c *StructuredConfig) { c.RateLimit.PermitLimit = 0 },
			wantErr: ErrInvalidRateLimitConfigs,
		},
		{
			name:    "unknown locale",
			mutate:  func(c *StructuredConfig) { c.App.Locale = "fr" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *StructuredConfig) { c.App.LogLevel = "loud" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero sweep interval",
			mutate:  func(c *StructuredConfig) { c.Workers.PartitionSweepInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.mutate(cfg)

			err := cfg.validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_HTTPSOnly(t *testing.T) {
	cfg := validConfig(t)
	cfg.Server.HTTPAddress = ""
	cfg.Server.HTTPSAddress = ":8443"
	cfg.Server.TLSCertFile = "cert.pem"
	cfg.Server.TLSKeyFile = "key.pem"

	assert.NoError(t, cfg.validate())
}

func TestValidate_ReportsAllGroups(t *testing.T) {
	cfg := validConfig(t)
	cfg.JWT = JWT{}
	cfg.Storage.DB.DSN = ""

	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidJWTConfigs)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
