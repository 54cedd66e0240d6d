// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func corsNext(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestWithCORS_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		origin         string
		wantStatus     int
		wantNextCalled bool
		wantAllowed    string
	}{
		{
			name:           "no origin passes through",
			origin:         "",
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:           "allowed origin",
			origin:         testAllowedOrigin,
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
			wantAllowed:    testAllowedOrigin,
		},
		{
			name:           "allowed origin in different case",
			origin:         "https://APP.example.com",
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
			wantAllowed:    "https://APP.example.com",
		},
		{
			name:       "other origin is blocked",
			origin:     "https://evil.example.com",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "same host on another scheme is blocked",
			origin:     "http://app.example.com",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			called := false

			req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			h.withCORS()(corsNext(&called)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNextCalled, called)
			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestWithCORS_PreflightAllowsAnyMethodAndHeader(t *testing.T) {
	h := newTestHandler()
	called := false

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks", nil)
	req.Header.Set("Origin", testAllowedOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	req.Header.Set("Access-Control-Request-Headers", "X-Custom-Header")
	rec := httptest.NewRecorder()

	h.withCORS()(corsNext(&called)).ServeHTTP(rec, req)

	assert.False(t, called, "preflight is answered by the policy")
	assert.Less(t, rec.Code, 300)
	assert.Equal(t, testAllowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestWithCORS_BlockedBodyIsText(t *testing.T) {
	h := newTestHandler()
	called := false

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()

	h.withCORS()(corsNext(&called)).ServeHTTP(rec, req)

	assert.Equal(t, "origin not allowed", rec.Body.String())
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWithCORS_ConfiguredOriginWithTrailingSlash(t *testing.T) {
	h := newTestHandler()
	h.cors.AllowedOrigins = []string{"https://App.Example.com/"}
	called := false

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()

	h.withCORS()(corsNext(&called)).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNormalizeOrigin(t *testing.T) {
	tests := map[string]string{
		"https://app.example.com":       "https://app.example.com",
		"https://App.Example.com/":      "https://app.example.com",
		" http://localhost:5000 ":       "http://localhost:5000",
		"https://app.example.com:8443/": "https://app.example.com:8443",
	}

	for in, want := range tests {
		assert.Equal(t, want, normalizeOrigin(in), in)
	}
}
