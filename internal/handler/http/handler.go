// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tasks-api/internal/app"
	"github.com/MKhiriev/go-tasks-api/internal/config"
	"github.com/MKhiriev/go-tasks-api/internal/logger"
	"github.com/MKhiriev/go-tasks-api/internal/service"
	"github.com/MKhiriev/go-tasks-api/internal/utils"
)

type Handler struct {
	services *service.Services
	limiter  RateLimiter

	challenge ChallengeHandler
	cors      config.CORS
	server    config.Server

	rejectionStatus int
	controllers     []Controller

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

// NewHandler builds the HTTP handler. The unauthorized message is
// cfg.App.UnauthorizedMessage when set, otherwise the message for
// cfg.App.Locale.
func NewHandler(services *service.Services, limiter RateLimiter, cfg *config.StructuredConfig, logger *logger.Logger, controllers ...Controller) *Handler {
	message := cfg.App.UnauthorizedMessage
	if message == "" {
		message = app.UnauthorizedMessage(cfg.App.Locale)
	}

	rejectionStatus := cfg.RateLimit.RejectionStatusCode
	if rejectionStatus == 0 {
		rejectionStatus = http.StatusServiceUnavailable
	}

	logger.Info().
		Str("cors_policy", cfg.CORS.PolicyName).
		Str("rate_limit_policy", cfg.RateLimit.PolicyName).
		Msg("http handler created")

	return &Handler{
		services:        services,
		limiter:         limiter,
		challenge:       NewJSONChallenge(message),
		cors:            cfg.CORS,
		server:          cfg.Server,
		rejectionStatus: rejectionStatus,
		controllers:     controllers,
		traceIDs:        utils.NewUUIDGenerator(),
		logger:          logger,
	}
}
