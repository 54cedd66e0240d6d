// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-tasks-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// hmacMethods are the only signing algorithms accepted for symmetric keys.
// Restricting the list rejects "none" and asymmetric algorithms outright.
var hmacMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss)
//   - Audience  (aud)
//   - Subject   (sub)
//   - IssuedAt  (iat): the current time
//   - NotBefore (nbf): the current time
//   - ExpiresAt (exp): the current time plus Duration
//   - name / email when provided
//
// Issuer, Audience, Subject, Duration and SigningKey are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(models.IssueTokenParams{
//	    Issuer: "tasks-api", Audience: "tasks-web", Subject: "42",
//	    Duration: time.Hour, SigningKey: []byte("secret"),
//	})
func GenerateJWTToken(params models.IssueTokenParams) (models.Token, error) {
	if params.Issuer == "" || params.Audience == "" || params.Subject == "" ||
		params.Duration <= 0 || len(params.SigningKey) == 0 {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	if params.Now != nil {
		now = params.Now()
	}

	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Audience:  jwt.ClaimStrings{params.Audience},
			Subject:   params.Subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name:  params.Name,
		Email: params.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString(params.SigningKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification with params.SigningKey (HS256/384/512 only)
//   - Issuer (iss) claim must equal params.Issuer
//   - Audience (aud) claim must contain params.Audience
//   - Expiration (exp) claim must be present and strictly in the future,
//     give or take params.ClockSkew
//   - NotBefore (nbf), when present, must not be in the future
//
// The returned error wraps the golang-jwt sentinel (jwt.ErrTokenExpired,
// jwt.ErrTokenInvalidIssuer, ...) so callers can classify it with errors.Is.
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, params)
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString string, params models.TokenValidationParameters) (models.Token, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods(hmacMethods),
		jwt.WithIssuer(params.Issuer),
		jwt.WithAudience(params.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(params.ClockSkew),
	}
	if params.Now != nil {
		options = append(options, jwt.WithTimeFunc(params.Now))
	}

	claims := &models.Claims{}
	token, err := jwt.NewParser(options...).ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return params.SigningKey, nil
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization" header value
// of the form "Bearer <token>". The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrNotBearerScheme
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", ErrMalformedBearerToken
	}

	return token, nil
}
