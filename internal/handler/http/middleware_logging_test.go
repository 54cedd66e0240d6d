// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request carrying a logger that writes to buf,
// the same way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handler          http.HandlerFunc
		checkLogContains []string
	}{
		{
			name:   "GET 200",
			method: http.MethodGet,
			path:   "/health",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("OK"))
			},
			checkLogContains: []string{`"method":"GET"`, `"uri":"/health"`, `"status":200`, `"duration":`, `"size":2`},
		},
		{
			name:   "401 challenge",
			method: http.MethodGet,
			path:   "/api/session",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			checkLogContains: []string{`"status":401`, `"size":0`},
		},
		{
			name:    "handler writes nothing",
			method:  http.MethodDelete,
			path:    "/api/tasks/1",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			checkLogContains: []string{
				`"method":"DELETE"`,
				`"status":200`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler()

			rec := httptest.NewRecorder()
			h.withLogging(tt.handler).ServeHTTP(rec, makeRequest(tt.method, tt.path, &buf))

			for _, s := range tt.checkLogContains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte("abc"))
	_, _ = w.Write([]byte("de"))

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 5, w.size)
	assert.Same(t, rec, w.Unwrap())
}

func TestResponseWriter_WriteImpliesOK(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _ = w.Write([]byte("x"))

	assert.Equal(t, http.StatusOK, w.status)
}
