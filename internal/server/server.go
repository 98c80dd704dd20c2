package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"newsdesk/internal/config"
	"newsdesk/internal/logger"
	"newsdesk/internal/pipeline"
)

// Server represents the HTTP server
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	pipeline   *pipeline.Pipeline
	config     config.Server
	log        *slog.Logger
}

// New creates a new HTTP server instance around the given pipeline
func New(pipe *pipeline.Pipeline, cfg config.Server) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		pipeline: pipe,
		config:   cfg,
		log:      logger.Get(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// setupMiddleware configures middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	// Expert lookups chain multiple model calls; the timeout has to cover
	// the slowest full chain, not a single call
	s.router.Use(middleware.Timeout(3 * time.Minute))

	if s.config.CORS.Enabled {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.config.CORS.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
}

// setupRoutes configures routes for the server
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/news", func(r chi.Router) {
		r.Get("/", s.handleNews)
		r.Get("/top", s.handleTopNews)
		r.Get("/analysis", s.handleNewsAnalysis)
		r.Post("/analysis/category", s.handleAnalysisByCategory)
		r.Get("/experts", s.handleNewsExperts)
		r.Post("/experts/topic", s.handleExpertsForTopic)
	})

	s.router.Post("/email/generate", s.handleGenerateEmail)
	s.router.Post("/format-simple-email", s.handleFormatSimpleEmail)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info("Starting HTTP server",
		"addr", s.httpServer.Addr,
		"read_timeout", s.config.ReadTimeout,
		"write_timeout", s.config.WriteTimeout,
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed to start: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server gracefully...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.log.Info("HTTP server stopped")
	return nil
}

// Router returns the chi router instance (useful for testing)
func (s *Server) Router() *chi.Mux {
	return s.router
}
