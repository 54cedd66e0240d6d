// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tasks-api/internal/logger"
	"github.com/MKhiriev/go-tasks-api/internal/utils"
	"github.com/MKhiriev/go-tasks-api/models"
)

// NewJSONChallenge returns the default challenge: status 401 with
// Content-Type application/json and the body {"message": message}.
// The cause is logged and never written to the client.
func NewJSONChallenge(message string) ChallengeHandler {
	return ChallengeHandlerFunc(func(w http.ResponseWriter, r *http.Request, err error) {
		log := logger.FromRequest(r)
		log.Warn().Err(err).Str("path", r.URL.Path).Msg("authentication failed")

		if _, writeErr := utils.WriteJSON(w, models.ErrorMessage{Message: message}, http.StatusUnauthorized); writeErr != nil {
			log.Err(writeErr).Msg("error writing authentication challenge")
		}
	})
}
