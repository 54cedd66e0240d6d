// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-tasks-api/models"
)

// AuthService validates bearer tokens against the process-wide validation
// parameters and issues tokens signed with the same key.
type AuthService interface {
	// ParseToken validates tokenString and returns the identity it carries.
	// Every failure wraps one of ErrTokenIsExpired, ErrTokenIsNotYetValid or
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Identity, error)

	// CreateToken signs a token for subject that ParseToken accepts until
	// it expires.
	CreateToken(ctx context.Context, subject models.Identity) (models.Token, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// HealthService reports whether the process can serve traffic.
type HealthService interface {
	Check(ctx context.Context) (models.HealthStatus, error)
}
