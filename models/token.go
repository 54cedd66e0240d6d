// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by bearer tokens: the registered claims
// of RFC 7519 plus the optional display name and e-mail of the subject.
type Claims struct {
	jwt.RegisteredClaims

	// Name is the display name of the subject.
	Name string `json:"name,omitempty"`

	// Email is the e-mail address of the subject.
	Email string `json:"email,omitempty"`
}

// Token wraps a signed JWT with its parsed claims.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the claim set the token was signed or parsed with.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"token"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Identity returns the authenticated identity described by the token
// claims.
func (t *Token) Identity() Identity {
	identity := Identity{
		Subject:  t.Claims.Subject,
		Name:     t.Claims.Name,
		Email:    t.Claims.Email,
		Issuer:   t.Claims.Issuer,
		Audience: []string(t.Claims.Audience),
	}
	if t.Claims.ExpiresAt != nil {
		identity.ExpiresAt = t.Claims.ExpiresAt.Time
	}

	return identity
}

// Identity is the authenticated principal attached to a request after its
// bearer token has been validated.
type Identity struct {
	Subject   string    `json:"sub"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Issuer    string    `json:"iss"`
	Audience  []string  `json:"aud"`
	ExpiresAt time.Time `json:"exp"`
}

// IssueTokenParams describes a token to be signed.
type IssueTokenParams struct {
	Issuer     string
	Audience   string
	Subject    string
	Name       string
	Email      string
	Duration   time.Duration
	SigningKey []byte

	// Now overrides the issuing clock. Nil means time.Now.
	Now func() time.Time
}
