// Command devbackend serves the voting backend contract from a local SQLite
// or PostgreSQL database, for running the web client without the
// production backend.
package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/votaciones/cliparse"
	"github.com/danielhkuo/votaciones/db"
	"github.com/danielhkuo/votaciones/router"
)

func main() {
	var err error

	if err := cliparse.LoadDotEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseBackendFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Seed candidates into an empty database
	candidates := db.DemoCandidates()
	if cfg.SeedFile != "" {
		candidates, err = db.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			slog.Error("seed file load failed", "error", err)
			os.Exit(1)
		}
	}
	n, err := db.SeedCandidates(dbConn, candidates)
	if err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	if n > 0 {
		slog.Info("Seeded candidates", "count", n)
	}

	// Create server
	server := http.Server{
		Handler: router.NewBackendRouter(dbConn, cfg),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "base", "/votaciones")
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
