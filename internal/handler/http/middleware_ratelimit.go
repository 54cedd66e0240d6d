// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net"
	"net/http"

	"github.com/MKhiriev/go-tasks-api/internal/logger"
	"github.com/MKhiriev/go-tasks-api/internal/ratelimit"
)

// withRateLimit admits the request through the limiter partitioned by the
// client IP of the connection. Forwarded headers are not consulted. A
// rejected request gets the configured status and an empty body.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r.RemoteAddr)

		err := h.limiter.Acquire(r.Context(), key)
		if err == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		if errors.Is(err, ratelimit.ErrRateLimitExceeded) {
			log.Warn().Str("client_ip", key).Msg("rate limit exceeded")
		} else {
			log.Debug().Err(err).Str("client_ip", key).Msg("request left the rate limit queue")
		}
		w.WriteHeader(h.rejectionStatus)
	})
}

func clientIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
