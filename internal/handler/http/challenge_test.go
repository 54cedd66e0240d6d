// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-tasks-api/internal/logger"
	"github.com/MKhiriev/go-tasks-api/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestNewJSONChallenge_WritesBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)

	NewJSONChallenge("nope").OnValidationFailure(rec, req, errors.New("secret cause"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"message":"nope"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "secret cause")
}

func TestNewHandler_ChallengeMessage(t *testing.T) {
	tests := []struct {
		name     string
		locale   string
		override string
		want     string
	}{
		{name: "english default", locale: "en", want: `{"message":"Access not authorized. Invalid or expired token."}`},
		{name: "empty locale", locale: "", want: `{"message":"Access not authorized. Invalid or expired token."}`},
		{name: "portuguese", locale: "pt-BR", want: `{"message":"Acesso não autorizado. Token inválido ou expirado."}`},
		{name: "override wins", locale: "pt-BR", override: "Go away.", want: `{"message":"Go away."}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig()
			cfg.App.Locale = tt.locale
			cfg.App.UnauthorizedMessage = tt.override

			h := NewHandler(&service.Services{}, nil, cfg, logger.Nop())

			rec := httptest.NewRecorder()
			h.challenge.OnValidationFailure(rec, httptest.NewRequest(http.MethodGet, "/", nil), ErrEmptyAuthorizationHeader)

			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestChallengeHandlerFunc_Adapts(t *testing.T) {
	called := false
	var c ChallengeHandler = ChallengeHandlerFunc(func(w http.ResponseWriter, r *http.Request, err error) {
		called = true
	})

	c.OnValidationFailure(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), nil)

	assert.True(t, called)
}
