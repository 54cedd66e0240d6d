// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "errors"

var (
	// ErrNotBearerScheme is returned by [ParseBearerToken] when the header
	// does not use the Bearer scheme.
	ErrNotBearerScheme = errors.New("authorization scheme is not Bearer")

	// ErrMalformedBearerToken is returned by [ParseBearerToken] when the
	// token part is empty or contains whitespace.
	ErrMalformedBearerToken = errors.New("malformed bearer token")
)
