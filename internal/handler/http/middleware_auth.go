// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-tasks-api/internal/logger"
	"github.com/MKhiriev/go-tasks-api/internal/utils"
)

type authFailureKey struct{}

// authenticate validates the bearer token of every request that presents
// one. On success the identity is stored in the request context via
// [utils.WithIdentity]; on failure the cause is recorded for
// requireAuthentication. The response is never altered here, so anonymous
// routes ignore token state.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("unusable authorization header")
			ctx = context.WithValue(ctx, authFailureKey{}, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		identity, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			ctx = context.WithValue(ctx, authFailureKey{}, err)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// requireAuthentication lets the request through only when authenticate
// attached an identity. Otherwise the challenge writes the response.
func (h *Handler) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetIdentityFromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		h.challenge.OnValidationFailure(w, r, authFailure(r.Context()))
	})
}

func authFailure(ctx context.Context) error {
	if err, ok := ctx.Value(authFailureKey{}).(error); ok {
		return err
	}
	return ErrEmptyAuthorizationHeader
}
