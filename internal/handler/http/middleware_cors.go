// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-tasks-api/internal/app"
	"github.com/MKhiriev/go-tasks-api/internal/logger"
	"github.com/MKhiriev/go-tasks-api/internal/utils"
	"github.com/go-chi/cors"
)

var corsAllowedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// withCORS applies the single cross-origin policy. Requests without an
// Origin header pass through untouched. A request from an origin outside
// the allow list is answered with 403 here, so no later stage runs for it.
// Allowed origins get any method and any header via go-chi/cors.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := make([]string, 0, len(h.cors.AllowedOrigins))
	allowed := make(map[string]struct{}, len(h.cors.AllowedOrigins))
	for _, o := range h.cors.AllowedOrigins {
		n := normalizeOrigin(o)
		origins = append(origins, n)
		allowed[n] = struct{}{}
	}

	policy := cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: corsAllowedMethods,
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{traceIDHeader},
	})

	return func(next http.Handler) http.Handler {
		withPolicy := policy(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if _, ok := allowed[normalizeOrigin(origin)]; !ok {
				logger.FromRequest(r).Warn().
					Str("origin", origin).
					Str("policy", h.cors.PolicyName).
					Msg("origin rejected by cors policy")
				_, _ = utils.WriteText(w, app.MsgOriginNotAllowed, http.StatusForbidden)
				return
			}

			withPolicy.ServeHTTP(w, r)
		})
	}
}

// normalizeOrigin lowercases the origin and drops a trailing slash, so
// "https://App.example.com/" and "https://app.example.com" compare equal.
func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(origin)), "/")
}
