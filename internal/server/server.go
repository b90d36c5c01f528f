package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/ojtportal/internal/bootstrap"
	"github.com/yigit/ojtportal/internal/config"
	"github.com/yigit/ojtportal/internal/pkg/helpers"
)

// Server holds the state for the HTTP server.
type Server struct {
	config       *config.Config
	router       *gin.Engine
	closeSession func() error
	logger       zerolog.Logger
	http         *http.Server
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	backend, closeSession, err := bootstrap.SetupSessionBackend(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup session storage: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, backend, lgr)
	if err != nil {
		_ = closeSession()
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	router, err := bootstrap.SetupRouter(cfg, deps, lgr)
	if err != nil {
		_ = closeSession()
		return nil, fmt.Errorf("failed to setup router: %w", err)
	}

	return &Server{
		config:       cfg,
		router:       router,
		closeSession: closeSession,
		logger:       lgr,
	}, nil
}

// shutdownGrace bounds how long in-flight portal requests may drain.
const shutdownGrace = 10 * time.Second

// Run serves the portal until SIGINT/SIGTERM or a listener failure, then shuts down.
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  helpers.ParseDuration(s.config.Server.ReadTimeout, 15*time.Second),
		WriteTimeout: helpers.ParseDuration(s.config.Server.WriteTimeout, 30*time.Second),
		IdleTimeout:  120 * time.Second,
	}

	listenErr := make(chan error, 1)
	go func() {
		s.logger.Info().
			Str("addr", s.http.Addr).
			Str("api", s.config.API.BaseURL).
			Str("session_backend", s.config.Session.Backend).
			Msg("OJT portal listening")
		listenErr <- s.http.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		if !errors.Is(err, http.ErrServerClosed) {
			_ = s.closeResources()
			return fmt.Errorf("error starting server: %w", err)
		}
	case <-ctx.Done():
		s.logger.Info().Msg("Shutdown signal received")
	}

	return s.Shutdown(context.Background())
}

// Shutdown drains the HTTP server and releases the session backend.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownGrace)
	defer cancel()

	var errs []error
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			errs = append(errs, fmt.Errorf("http: %w", err))
		}
	}
	if err := s.closeResources(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	s.logger.Info().Msg("Portal stopped")
	return nil
}

func (s *Server) closeResources() error {
	if s.closeSession == nil {
		return nil
	}
	closeSession := s.closeSession
	s.closeSession = nil
	if err := closeSession(); err != nil {
		s.logger.Error().Err(err).Msg("Session storage close error")
		return fmt.Errorf("session storage: %w", err)
	}
	return nil
}
