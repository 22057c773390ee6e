// Package server sets up the HTTP server, router, and all route definitions.
//
// This package is the composition root: it connects the database, the
// services, the handlers, and the middleware stack in one place. main.go
// stays minimal — it reads config, builds the optional AI client, and
// calls Start.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/election-manager/internal/auth"
	"github.com/sakif/election-manager/internal/generator"
	"github.com/sakif/election-manager/internal/handler"
	"github.com/sakif/election-manager/internal/middleware"
	sqliteRepo "github.com/sakif/election-manager/internal/repository/sqlite"
	"github.com/sakif/election-manager/internal/service"
)

// Config holds server configuration.
type Config struct {
	Port   int
	DBPath string
}

// Server owns the router, the database connection, and the wiring between
// them. The database is closed during graceful shutdown.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New assembles the full dependency chain:
//
//	sqlite.DB → services → handlers → routes
//
// gen is the text-generation client and MAY BE NIL: without a provider
// credential the server still runs, and only the generation endpoint
// fails (with a configuration error). Every layer receives interfaces,
// not concrete types from the layer below — the handler never touches
// the database, the service never touches HTTP.
func New(cfg Config, logger *slog.Logger, gen generator.TextGenerator) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	s.setupRoutes(gen)

	return s, nil
}

// setupRoutes configures middleware and the route table.
//
// ROUTE STRUCTURE:
//
//	GET  /                            → liveness check
//	POST /api/auth/register           → create account (returns token)
//	POST /api/auth/login              → authenticate (rotates token)
//	GET  /api/auth/me                 → authenticated user   [requires token]
//	GET  /api/candidates              → list all candidates
//	POST /api/candidates              → create candidate
//	GET  /api/candidates/{id}         → get one candidate
//	GET  /api/campaigns/{candidateID} → list candidate's campaigns
//	POST /api/campaigns               → create campaign
//	POST /api/generate-program        → AI-draft a program (not persisted)
//	POST /api/programs                → save a program
//	GET  /api/programs/{candidateID}  → list candidate's saved programs
//	GET  /api/dashboard/stats         → contest-wide counters
//
// Middleware order matters: RequestID and RealIP run first so the logger
// sees them, Recoverer turns panics into 500s before they reach the
// connection, Compress trims the large generated-program responses.
func (s *Server) setupRoutes(gen generator.TextGenerator) {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(chimiddleware.Compress(5))

	authService := service.NewAuthService(s.db, auth.NewPasswordService(), auth.NewUUIDTokens(), s.logger)
	candidateService := service.NewCandidateService(s.db, s.logger)
	campaignService := service.NewCampaignService(s.db, s.logger)
	programService := service.NewProgramService(s.db, gen, s.logger)
	statsService := service.NewStatsService(s.db, s.logger)

	authHandler := handler.NewAuthHandler(authService, s.logger)
	candidateHandler := handler.NewCandidateHandler(candidateService, s.logger)
	campaignHandler := handler.NewCampaignHandler(campaignService, s.logger)
	programHandler := handler.NewProgramHandler(programService, s.logger)
	dashboardHandler := handler.NewDashboardHandler(statsService, s.logger)

	s.router.Get("/", handler.HandleRoot)

	s.router.Route("/api", func(r chi.Router) {
		// Identity is attached when a token is presented, but the routes
		// themselves stay open.
		r.Use(auth.OptionalAuth(authService))

		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.With(auth.RequireAuth(authService)).Get("/auth/me", authHandler.HandleMe)

		r.Get("/candidates", candidateHandler.HandleList)
		r.Post("/candidates", candidateHandler.HandleCreate)
		r.Get("/candidates/{candidateID}", candidateHandler.HandleGetByID)

		r.Get("/campaigns/{candidateID}", campaignHandler.HandleListByCandidate)
		r.Post("/campaigns", campaignHandler.HandleCreate)

		r.Post("/generate-program", programHandler.HandleGenerate)
		r.Post("/programs", programHandler.HandleSave)
		r.Get("/programs/{candidateID}", programHandler.HandleListByCandidate)

		r.Get("/dashboard/stats", dashboardHandler.HandleStats)
	})
}

// Router exposes the configured router for tests that drive the full
// stack through httptest without binding a port.
func (s *Server) Router() http.Handler {
	return s.router
}

// Close releases the server's resources without serving. Start closes
// them itself; Close exists for callers that only built the router.
func (s *Server) Close() error {
	return s.db.Close()
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, drain in-flight requests
// (30 s), close the database so the WAL is flushed.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Port),
		Handler: s.router,
		// WriteTimeout must outlive the 60 s generation timeout, or the
		// server kills the one request that legitimately takes a while.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
