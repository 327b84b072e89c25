package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
)

// Server runs one named HTTP listener.
type Server struct {
	name     string
	address  string
	httpSrv  *http.Server
	onFailed func()
	logger   *slog.Logger
}

// NewServer applies config defaults, validates the result and prepares the
// http.Server. onFailed, when non-nil, runs if serving stops with an error
// other than a regular shutdown.
func NewServer(name string, handler http.Handler, cfg Config, onFailed func()) (*Server, error) {
	switch {
	case name == "":
		return nil, ErrEmptyName
	case handler == nil:
		return nil, ErrNilHandler
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Server{
		name:    name,
		address: cfg.Address,
		httpSrv: &http.Server{ //nolint:exhaustruct // timeouts come from Config
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
		onFailed: onFailed,
		logger:   slog.Default().With(slog.String("listener", name)),
	}, nil
}

// Start binds the address and serves in the background. It returns once the
// socket is bound, so Addr reports the real port afterwards.
func (s *Server) Start(ctx context.Context) error {
	var lc net.ListenConfig

	ln, err := lc.Listen(ctx, "tcp", s.address)
	if err != nil {
		s.logger.Error("failed to listen", slog.String("address", s.address), slog.Any("error", err))

		return fmt.Errorf("%w: %w", ErrListenFailed, err)
	}

	s.address = ln.Addr().String()
	s.logger.Info("serving site configuration", slog.String("address", s.address))

	go s.serve(ln)

	return nil
}

func (s *Server) serve(ln net.Listener) {
	err := s.httpSrv.Serve(ln)
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return
	}

	s.logger.Error("listener stopped", slog.Any("error", err))

	if s.onFailed != nil {
		s.onFailed()
	}
}

// Addr returns the bound address once started, or the configured one before.
func (s *Server) Addr() string {
	return s.address
}

// Stop drains in-flight requests until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("stopping listener")

	if err := s.httpSrv.Shutdown(ctx); err != nil {
		s.logger.Error("shutdown failed", slog.Any("error", err))

		return fmt.Errorf("%w: %w", ErrShutdownFailed, err)
	}

	return nil
}
