// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tasks-api/internal/ratelimit"
	"github.com/MKhiriev/go-tasks-api/internal/service"
	"github.com/MKhiriev/go-tasks-api/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsNotYetValid:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrDatabaseUnavailable:     http.StatusServiceUnavailable,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,

	ratelimit.ErrRateLimitExceeded: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
