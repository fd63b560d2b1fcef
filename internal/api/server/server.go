package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/feral-file/ff-partner-ledger/internal/api/graphql"
	"github.com/feral-file/ff-partner-ledger/internal/api/middleware"
	"github.com/feral-file/ff-partner-ledger/internal/api/rest"
	"github.com/feral-file/ff-partner-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
	"github.com/feral-file/ff-partner-ledger/internal/metrics"
	"github.com/feral-file/ff-partner-ledger/internal/ratelimit"
)

// Config holds the server configuration
type Config struct {
	Debug          bool
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
	Auth           middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	executor   executor.Executor
	metrics    *metrics.Ledger
	limiter    ratelimit.Limiter
	httpServer *http.Server
}

// New creates a new API server. limiter may be nil to disable rate limiting.
func New(cfg Config, exec executor.Executor, m *metrics.Ledger, limiter ratelimit.Limiter) *Server {
	return &Server{
		config:   cfg,
		executor: exec,
		metrics:  m,
		limiter:  limiter,
	}
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics(s.metrics))
	router.Use(middleware.SetupCORS(s.config.AllowedOrigins))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	var limiters []gin.HandlerFunc
	if s.limiter != nil {
		limiters = append(limiters, middleware.RateLimit(s.limiter))
	}

	rest.SetupRoutes(router, rest.NewHandler(s.config.Debug, s.executor), s.config.Auth, limiters...)
	graphql.SetupRoutes(router, graphql.NewHandler(s.executor), s.config.Auth, limiters...)

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server", zap.String("address", addr))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	if s.limiter != nil {
		if err := s.limiter.Close(); err != nil {
			logger.Warn("Failed to close rate limiter", zap.Error(err))
		}
	}

	return nil
}
