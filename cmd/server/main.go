// Package main is the entry point for the billboard API server.
//
// The main package stays minimal: read configuration from the environment,
// build the logger, hand both to internal/server, and block until shutdown.
// All actual logic lives in the internal packages.
package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nikitav/billboard/internal/server"
)

func main() {
	// LOG_LEVEL: debug | info | warn | error (default info).
	level := slog.LevelInfo
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			level = slog.LevelInfo
		}
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))

	// PORT: HTTP listen port (default 8080).
	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		var err error
		port, err = strconv.Atoi(portStr)
		if err != nil {
			logger.Error("invalid PORT value", slog.String("value", portStr))
			os.Exit(1)
		}
	}

	// DB_PATH: SQLite database file (default data/billboard.db).
	// Example override: DB_PATH=/var/lib/billboard/prod.db
	dbPath := "data/billboard.db"
	if envDB := os.Getenv("DB_PATH"); envDB != "" {
		dbPath = envDB
	}

	// Make sure the database directory exists before the driver tries to
	// create the file (skip for the in-memory database).
	if dbPath != ":memory:" {
		dbDir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dbDir, 0o755); err != nil {
			logger.Error("failed to create database directory",
				slog.String("dir", dbDir),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	cfg := server.Config{
		Port:           port,
		DBPath:         dbPath,
		PasswordScheme: os.Getenv("PASSWORD_SCHEME"), // "" → legacy md5
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start blocks until the server shuts down (Ctrl+C or SIGTERM).
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
