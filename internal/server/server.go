// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pantry/internal/config"
	"github.com/MKhiriev/go-pantry/internal/handler"
	"github.com/MKhiriev/go-pantry/internal/logger"
)

type server struct {
	httpServer *httpServer
	background BackgroundWork
	logger     *logger.Logger
}

// NewServer builds the HTTP server over the routes of handlers. background
// may be nil.
func NewServer(handlers *handler.Handlers, background BackgroundWork, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" || handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		background: background,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	if err := s.run(); err != nil {
		s.logger.Err(err).Msg("error running server")
		return err
	}

	return nil
}

// Shutdown stops accepting requests, drains the in-flight ones and then
// waits for background work.
func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	if s.background != nil {
		s.logger.Info().Msg("waiting for background work")
		s.background.Wait()
	}
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.logger.Info().Msg("Launching HTTP server")
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-serveErr
	case err := <-serveErr:
		// the listener died without a signal; still drain background work
		s.Shutdown()
		if err != nil {
			return fmt.Errorf("%w: %w", errServerFailed, err)
		}
	}

	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
