// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-tasks-api/internal/config"
	"github.com/MKhiriev/go-tasks-api/internal/logger"
	"github.com/MKhiriev/go-tasks-api/internal/utils"
	"github.com/MKhiriev/go-tasks-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "tasks-api"
	testAudience = "tasks-web"
	testSecret   = "0123456789abcdef0123456789abcdef"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestAuthService(t *testing.T) *authService {
	t.Helper()

	return newAuthService(models.TokenValidationParameters{
		Issuer:     testIssuer,
		Audience:   testAudience,
		SigningKey: []byte(testSecret),
		Now:        func() time.Time { return testNow },
	}, logger.Nop())
}

func issue(t *testing.T, mutate func(p *models.IssueTokenParams)) string {
	t.Helper()

	p := models.IssueTokenParams{
		Issuer:     testIssuer,
		Audience:   testAudience,
		Subject:    "42",
		Name:       "Ana",
		Email:      "ana@example.com",
		Duration:   time.Hour,
		SigningKey: []byte(testSecret),
		Now:        func() time.Time { return testNow },
	}
	if mutate != nil {
		mutate(&p)
	}

	token, err := utils.GenerateJWTToken(p)
	require.NoError(t, err)
	return token.SignedString
}

func TestNewAuthService_UsesConfig(t *testing.T) {
	svc := NewAuthService(config.JWT{Issuer: "i", Audience: "a", SecretKey: "k"}, logger.Nop()).(*authService)

	assert.Equal(t, "i", svc.params.Issuer)
	assert.Equal(t, "a", svc.params.Audience)
	assert.Equal(t, []byte("k"), svc.params.SigningKey)
	assert.Zero(t, svc.params.ClockSkew)
	assert.Equal(t, defaultTokenDuration, svc.tokenDuration)
}

func TestAuthService_ParseToken_Valid(t *testing.T) {
	svc := newTestAuthService(t)

	identity, err := svc.ParseToken(context.Background(), issue(t, nil))

	require.NoError(t, err)
	assert.Equal(t, "42", identity.Subject)
	assert.Equal(t, "Ana", identity.Name)
	assert.Equal(t, "ana@example.com", identity.Email)
	assert.Equal(t, testIssuer, identity.Issuer)
	assert.Equal(t, []string{testAudience}, identity.Audience)
	assert.True(t, identity.ExpiresAt.Equal(testNow.Add(time.Hour)))
}

func TestAuthService_ParseToken_Failures(t *testing.T) {
	svc := newTestAuthService(t)

	tests := []struct {
		name        string
		token       string
		expectedErr error
	}{
		{
			name:        "wrong issuer",
			token:       issue(t, func(p *models.IssueTokenParams) { p.Issuer = "other" }),
			expectedErr: ErrTokenIsExpiredOrInvalid,
		},
		{
			name:        "wrong audience",
			token:       issue(t, func(p *models.IssueTokenParams) { p.Audience = "other" }),
			expectedErr: ErrTokenIsExpiredOrInvalid,
		},
		{
			name:        "wrong key",
			token:       issue(t, func(p *models.IssueTokenParams) { p.SigningKey = []byte("another-secret-another-secret-00") }),
			expectedErr: ErrTokenIsExpiredOrInvalid,
		},
		{
			name: "expired",
			token: issue(t, func(p *models.IssueTokenParams) {
				p.Now = func() time.Time { return testNow.Add(-2 * time.Hour) }
			}),
			expectedErr: ErrTokenIsExpired,
		},
		{
			name: "not yet valid",
			token: issue(t, func(p *models.IssueTokenParams) {
				p.Now = func() time.Time { return testNow.Add(time.Minute) }
			}),
			expectedErr: ErrTokenIsNotYetValid,
		},
		{
			name:        "garbage",
			token:       "not.a.jwt",
			expectedErr: ErrTokenIsExpiredOrInvalid,
		},
		{
			name:        "empty",
			token:       "",
			expectedErr: ErrTokenIsExpiredOrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := svc.ParseToken(context.Background(), tt.token)

			require.ErrorIs(t, err, tt.expectedErr)
			assert.Empty(t, identity.Subject)
		})
	}
}

func TestAuthService_CreateToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.Identity{Subject: "7", Email: "x@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	identity, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "7", identity.Subject)
	assert.Equal(t, "x@example.com", identity.Email)
}

func TestAuthService_CreateToken_EmptySubject(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.CreateToken(context.Background(), models.Identity{})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}
