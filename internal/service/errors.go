// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsNotYetValid      = errors.New("token is not valid yet")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrDatabaseUnavailable = errors.New("database is unavailable")
)
