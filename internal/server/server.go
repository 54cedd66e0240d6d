// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-tasks-api/internal/config"
	"github.com/MKhiriev/go-tasks-api/internal/handler"
	"github.com/MKhiriev/go-tasks-api/internal/logger"
)

type server struct {
	servers         []*httpServer
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer creates the HTTP listener and, when an HTTPS address is
// configured, the TLS listener. Both serve the same router.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}
	router := handlers.HTTP.Init()

	if cfg.HTTPAddress != "" {
		s.servers = append(s.servers, newHTTPServer(router, cfg, logger))
	}
	if cfg.HTTPSAddress != "" {
		s.servers = append(s.servers, newHTTPSServer(router, cfg, logger))
	}

	if len(s.servers) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	errCh := make(chan error, len(s.servers))
	for _, srv := range s.servers {
		go func(srv *httpServer) {
			if err := srv.RunServer(); err != nil {
				errCh <- fmt.Errorf("%w: %s: %w", errListenerFailed, srv.name, err)
			}
		}(srv)
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-errCh:
		s.logger.Err(runErr).Msg("listener stopped unexpectedly")
	}

	shutdownCtx, cancel := s.shutdownContext()
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return errors.Join(runErr, err)
	}
	s.logger.Info().Msg("server shutdown gracefully")

	return runErr
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, srv := range s.servers {
		if err := srv.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *server) shutdownContext() (context.Context, context.CancelFunc) {
	if s.shutdownTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.shutdownTimeout)
}
