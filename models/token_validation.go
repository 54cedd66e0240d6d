// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TokenValidationParameters is the process-wide token validation
// configuration. It is built once at startup and never modified.
type TokenValidationParameters struct {
	// Issuer must exactly match the "iss" claim.
	Issuer string

	// Audience must be one of the "aud" claim values.
	Audience string

	// SigningKey is the symmetric HMAC key.
	SigningKey []byte

	// ClockSkew is the tolerance applied to "exp" and "nbf". Always zero in
	// production.
	ClockSkew time.Duration

	// Now overrides the validation clock. Nil means time.Now.
	Now func() time.Time
}
