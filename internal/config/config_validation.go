// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks every configuration group against its `validate` tags.
// All failing groups are reported at once, each wrapped with its sentinel
// error so callers can match them with [errors.Is].
func (cfg *StructuredConfig) validate() error {
	groups := []struct {
		value    any
		sentinel error
	}{
		{cfg.App, ErrInvalidAppConfigs},
		{cfg.JWT, ErrInvalidJWTConfigs},
		{cfg.Storage.DB, ErrInvalidStorageConfigs},
		{cfg.Server, ErrInvalidServerConfigs},
		{cfg.CORS, ErrInvalidCORSConfigs},
		{cfg.RateLimit, ErrInvalidRateLimitConfigs},
		{cfg.Workers, ErrInvalidWorkerConfigs},
	}

	var errs error
	for _, g := range groups {
		if err := structValidator.Struct(g.value); err != nil {
			errs = errors.Join(errs, fmt.Errorf("%w: %w", g.sentinel, err))
		}
	}

	return errs
}
