// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-tasks-api/internal/config"
	"github.com/MKhiriev/go-tasks-api/internal/logger"
	"github.com/MKhiriev/go-tasks-api/internal/service"
	"github.com/MKhiriev/go-tasks-api/internal/utils"
	"github.com/MKhiriev/go-tasks-api/models"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer        = "tasks-api"
	testAudience      = "tasks-web"
	testSecret        = "0123456789abcdef0123456789abcdef"
	testAllowedOrigin = "https://app.example.com"
	testRemoteAddr    = "192.0.2.10:52000"
)

// newTestConfig returns a config with every group the handler reads.
func newTestConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{Locale: "en"},
		JWT: config.JWT{Issuer: testIssuer, Audience: testAudience, SecretKey: testSecret},
		Server: config.Server{
			HTTPAddress: ":8080",
		},
		CORS: config.CORS{
			PolicyName:     "PermitirBlazor",
			AllowedOrigins: []string{testAllowedOrigin},
		},
		RateLimit: config.RateLimit{
			PolicyName:          "ApiPolicy",
			PermitLimit:         50,
			Window:              time.Minute,
			QueueLimit:          10,
			RejectionStatusCode: 503,
		},
	}
}

// newTestHandler creates a Handler with a nop logger and no services.
func newTestHandler() *Handler {
	return NewHandler(&service.Services{}, nil, newTestConfig(), logger.Nop())
}

// issueToken signs a token accepted by the test config unless mutate
// changes it.
func issueToken(t *testing.T, mutate func(p *models.IssueTokenParams)) string {
	t.Helper()

	p := models.IssueTokenParams{
		Issuer:     testIssuer,
		Audience:   testAudience,
		Subject:    "42",
		Email:      "ana@example.com",
		Duration:   time.Hour,
		SigningKey: []byte(testSecret),
	}
	if mutate != nil {
		mutate(&p)
	}

	token, err := utils.GenerateJWTToken(p)
	require.NoError(t, err)
	return token.SignedString
}

// acceptAll is an AuthService that accepts every token.
type acceptAll struct{}

func (acceptAll) ParseToken(context.Context, string) (models.Identity, error) {
	return models.Identity{Subject: "1"}, nil
}

func (acceptAll) CreateToken(context.Context, models.Identity) (models.Token, error) {
	return models.Token{}, nil
}
