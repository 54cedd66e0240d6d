// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RateLimiter admits or rejects a request for a partition key.
type RateLimiter interface {
	Acquire(ctx context.Context, key string) error
}

// Controller mounts its routes into the protected route group. Every route
// it registers requires an authenticated identity.
type Controller interface {
	Register(r chi.Router)
}

// ChallengeHandler writes the response for a request that reached a
// protected route without a valid bearer token. It runs synchronously and
// nothing else is written after it returns.
type ChallengeHandler interface {
	OnValidationFailure(w http.ResponseWriter, r *http.Request, err error)
}

// ChallengeHandlerFunc adapts a function to ChallengeHandler.
type ChallengeHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)

func (f ChallengeHandlerFunc) OnValidationFailure(w http.ResponseWriter, r *http.Request, err error) {
	f(w, r, err)
}
