// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tasks-api/internal/logger"
	"github.com/MKhiriev/go-tasks-api/internal/utils"
)

// health reports the database state. It answers 200 when the database is
// reachable and 503 otherwise, with the same JSON shape in both cases.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	status, err := h.services.HealthService.Check(r.Context())

	code := http.StatusOK
	if err != nil {
		log.Err(err).Msg("health check failed")
		code = statusFromError(err)
	}

	if _, err = utils.WriteJSON(w, status, code); err != nil {
		log.Err(err).Msg("error writing health status")
	}
}
