// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tasks-api/internal/logger"
	"github.com/MKhiriev/go-tasks-api/internal/utils"
)

// session returns the identity attached by authenticate.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		// unreachable behind requireAuthentication
		h.challenge.OnValidationFailure(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	if _, err := utils.WriteJSON(w, identity, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing session")
	}
}
