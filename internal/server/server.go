// Package server sets up the HTTP server, router, and all route definitions.
//
// This is the "composition root" — the one place where the dependency chain
// is assembled:
//
//	sqlite.DB → repositories → services → handlers → routes
//
// Each layer only receives what it needs: services get repository interfaces
// (not the concrete sqlite types), handlers get services (not repositories).
// main.go stays minimal — it builds a Config and calls New + Start.
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

	"github.com/nikitav/billboard/internal/handler"
	"github.com/nikitav/billboard/internal/middleware"
	"github.com/nikitav/billboard/internal/password"
	sqliteRepo "github.com/nikitav/billboard/internal/repository/sqlite"
	"github.com/nikitav/billboard/internal/service"
)

// Config holds everything the server needs to start. It's built once in
// main.go from the environment and passed by value — no ambient globals.
type Config struct {
	Port           int
	DBPath         string // path to the SQLite database file, or ":memory:"
	PasswordScheme string // "md5" (default, legacy-compatible) or "bcrypt"
}

// Server owns the router and the database connection. The connection is
// closed during graceful shutdown in Start.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New creates a Server: opens the database, wires repositories → services →
// handlers, and registers the routes.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
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

	if err := s.setupRoutes(); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// setupRoutes configures middleware and the route table.
//
// ROUTE TABLE:
//
//	GET    /user/{id}/    → fetch user
//	DELETE /user/{id}/    → delete user (cascades to their billboards)
//	POST   /user/         → register user
//	POST   /article/      → publish billboard
//	GET    /article/{id}/ → fetch billboard
//	DELETE /article/{id}/ → delete billboard
//
// The trailing slashes are part of the public contract.
//
// MIDDLEWARE ORDER MATTERS — it executes in registration order:
// RealIP first (so logs carry the real client address behind a proxy), then
// the request logger, then the recoverer (innermost, so a panic is logged as
// a completed 500 request by the logger outside it).
func (s *Server) setupRoutes() error {
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(middleware.Recoverer(s.logger))

	hasher, err := hasherFor(s.config.PasswordScheme)
	if err != nil {
		return err
	}

	userService := service.NewUserService(s.db.Users(), hasher, s.logger)
	userHandler := handler.NewUserHandler(userService, s.logger)

	billboardService := service.NewBillboardService(s.db.Billboards(), s.logger)
	billboardHandler := handler.NewBillboardHandler(billboardService, s.logger)

	s.router.Post("/user/", userHandler.HandleCreate)
	s.router.Get("/user/{id}/", userHandler.HandleGet)
	s.router.Delete("/user/{id}/", userHandler.HandleDelete)

	s.router.Post("/article/", billboardHandler.HandleCreate)
	s.router.Get("/article/{id}/", billboardHandler.HandleGet)
	s.router.Delete("/article/{id}/", billboardHandler.HandleDelete)

	return nil
}

// hasherFor picks the password hashing scheme.
// "md5" stays the default for digest compatibility with existing rows; see
// the password package for the trade-off.
func hasherFor(scheme string) (password.Hasher, error) {
	switch scheme {
	case "", "md5":
		return password.MD5Hasher{}, nil
	case "bcrypt":
		return password.NewBcryptHasher(), nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}

// Handler exposes the configured router, mainly for httptest in end-to-end
// tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close releases the database connection. Start does this itself; Close is
// for callers (tests) that never run Start.
func (s *Server) Close() error {
	return s.db.Close()
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully:
//
//  1. Stop accepting new connections
//  2. Wait up to 30s for in-flight requests to finish
//  3. Close the database (flushes WAL, releases the file lock)
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
			slog.String("password_scheme", s.config.PasswordScheme),
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
