// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tasks-api/internal/config"
	"github.com/MKhiriev/go-tasks-api/internal/logger"
)

type httpServer struct {
	server *http.Server

	// certFile and keyFile are set for the TLS listener only.
	certFile string
	keyFile  string

	name   string
	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: newStdServer(cfg.HTTPAddress, handler, cfg),
		name:   "http",
		logger: logger,
	}
}

func newHTTPSServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server:   newStdServer(cfg.HTTPSAddress, handler, cfg),
		certFile: cfg.TLSCertFile,
		keyFile:  cfg.TLSKeyFile,
		name:     "https",
		logger:   logger,
	}
}

func newStdServer(address string, handler http.Handler, cfg config.Server) *http.Server {
	return &http.Server{
		Addr:              address,
		Handler:           handler,
		ReadHeaderTimeout: cfg.RequestTimeout,
		ReadTimeout:       cfg.RequestTimeout,
	}
}

// RunServer blocks until the listener stops. A graceful shutdown is not an
// error.
func (h *httpServer) RunServer() error {
	h.logger.Info().Str("listener", h.name).Str("address", h.server.Addr).Msg("launching server")

	var err error
	if h.certFile != "" {
		err = h.server.ListenAndServeTLS(h.certFile, h.keyFile)
	} else {
		err = h.server.ListenAndServe()
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("listener", h.name).Msg("server shutdown")
		return err
	}
	return nil
}
