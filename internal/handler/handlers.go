// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-tasks-api/internal/config"
	"github.com/MKhiriev/go-tasks-api/internal/handler/http"
	"github.com/MKhiriev/go-tasks-api/internal/logger"
	"github.com/MKhiriev/go-tasks-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. controllers are mounted into
// the protected route group.
func NewHandlers(services *service.Services, limiter http.RateLimiter, cfg *config.StructuredConfig, logger *logger.Logger, controllers ...http.Controller) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" && cfg.Server.HTTPSAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, limiter, cfg, logger, controllers...),
	}, nil
}
