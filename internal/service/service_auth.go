// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tasks-api/internal/config"
	"github.com/MKhiriev/go-tasks-api/internal/logger"
	"github.com/MKhiriev/go-tasks-api/internal/utils"
	"github.com/MKhiriev/go-tasks-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// defaultTokenDuration is the lifetime of tokens issued by CreateToken.
const defaultTokenDuration = time.Hour

// authService is the concrete implementation of AuthService.
// It owns the single token validation configuration of the process.
type authService struct {
	// params is built once in NewAuthService and never modified.
	params models.TokenValidationParameters

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService from the jwt configuration
// group. The signing key is the UTF-8 encoding of cfg.SecretKey and the
// clock skew is zero.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.JWT, logger *logger.Logger) AuthService {
	return newAuthService(models.TokenValidationParameters{
		Issuer:     cfg.Issuer,
		Audience:   cfg.Audience,
		SigningKey: []byte(cfg.SecretKey),
		ClockSkew:  0,
	}, logger)
}

func newAuthService(params models.TokenValidationParameters, logger *logger.Logger) *authService {
	return &authService{
		params:        params,
		tokenDuration: defaultTokenDuration,
		logger:        logger,
	}
}

// ParseToken validates tokenString and returns the identity it carries.
//
// Returns:
//   - ErrTokenIsExpired if exp is not strictly after now.
//   - ErrTokenIsNotYetValid if nbf is in the future.
//   - ErrTokenIsExpiredOrInvalid for any other failure (signature, issuer,
//     audience, malformed token).
//
// The underlying golang-jwt error is joined so it stays visible in logs.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.params)
	if err != nil {
		classified := classifyTokenError(err)
		log.Debug().Err(err).Msg("token validation failed")
		return models.Identity{}, fmt.Errorf("%w: %w", classified, err)
	}

	return token.Identity(), nil
}

// CreateToken issues a token for subject signed with the validation key.
func (a *authService) CreateToken(ctx context.Context, subject models.Identity) (models.Token, error) {
	log := logger.FromContext(ctx)

	if subject.Subject == "" {
		log.Error().Msg("empty subject provided for token creation")
		return models.Token{}, ErrInvalidDataProvided
	}

	token, err := utils.GenerateJWTToken(models.IssueTokenParams{
		Issuer:     a.params.Issuer,
		Audience:   a.params.Audience,
		Subject:    subject.Subject,
		Name:       subject.Name,
		Email:      subject.Email,
		Duration:   a.tokenDuration,
		SigningKey: a.params.SigningKey,
		Now:        a.params.Now,
	})
	if err != nil {
		log.Err(err).Str("subject", subject.Subject).Msg("token creation ended with error")
		return models.Token{}, fmt.Errorf("token creation ended with error: %w", err)
	}

	return token, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenIsExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrTokenIsNotYetValid
	default:
		return ErrTokenIsExpiredOrInvalid
	}
}
