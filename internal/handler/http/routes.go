// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware order is part of the contract: a
// request blocked by the cross-origin policy never reaches authentication.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	router.Use(h.withHTTPSRedirect())
	router.Use(h.withRateLimit)
	router.Use(h.authenticate)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/version/build", h.getBuildInfo)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuthentication)

		r.Get("/api/session", h.session)
		for _, c := range h.controllers {
			c.Register(r)
		}
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
