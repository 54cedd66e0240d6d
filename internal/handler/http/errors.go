// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Authentication failures recorded by the authenticate middleware and passed
// to the challenge. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is reported when a protected route is
	// requested without an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is reported when the header is present
	// but does not carry a single bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)
