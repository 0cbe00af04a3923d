// Package server runs the HTTP server with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/deniz/technexus/internal/bootstrap"
	"github.com/deniz/technexus/internal/config"
)

const shutdownGrace = 10 * time.Second

// Server ties the HTTP listener to the resources it must release on exit
type Server struct {
	config *config.Config
	router *gin.Engine
	dbPool *pgxpool.Pool
	logger zerolog.Logger
}

// NewServer builds a fully wired server from configuration
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	return &Server{
		config: cfg,
		router: bootstrap.SetupRouter(cfg, deps, lgr),
		dbPool: dbPool,
		logger: lgr,
	}, nil
}

// Run serves until SIGINT/SIGTERM or a listener failure, then drains
// in-flight requests and closes the database pool.
func (s *Server) Run() error {
	httpServer := &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", httpServer.Addr).Msg("HTTP server listening")
		listenErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-listenErr:
		s.dbPool.Close()
		return fmt.Errorf("server stopped unexpectedly: %w", err)
	case <-ctx.Done():
		s.logger.Info().Msg("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	shutdownErr := httpServer.Shutdown(shutdownCtx)

	s.logger.Info().Msg("Closing database connection pool")
	s.dbPool.Close()

	if shutdownErr != nil && !errors.Is(shutdownErr, http.ErrServerClosed) {
		s.logger.Error().Err(shutdownErr).Msg("HTTP server shutdown error")
		return shutdownErr
	}
	s.logger.Info().Msg("Server stopped cleanly")
	return nil
}
