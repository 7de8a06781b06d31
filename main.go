package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/votaciones/apiclient"
	"github.com/danielhkuo/votaciones/auth"
	"github.com/danielhkuo/votaciones/cliparse"
	"github.com/danielhkuo/votaciones/dashboard"
	"github.com/danielhkuo/votaciones/flow"
	"github.com/danielhkuo/votaciones/router"
	"github.com/danielhkuo/votaciones/session"
)

// sweepInterval is how often idle sessions are evicted
const sweepInterval = time.Minute

func main() {
	var err error

	if err := cliparse.LoadDotEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Backend client. A bad URL is not fatal: every page reports it.
	newFlow := flow.NewMisconfigured
	var results dashboard.Source
	client, err := apiclient.New(cfg.APIURL, cfg.Timeout, &http.Client{})
	if err != nil {
		slog.Warn("voting backend not configured", "url", cfg.APIURL, "error", err)
	} else {
		newFlow = func() *flow.Flow { return flow.New(client) }
		results = client
		slog.Info("Voting backend", "url", client.BaseURL().String(), "timeout", cfg.Timeout)
	}

	salt := cfg.SessionSalt
	if salt == "" {
		salt, err = auth.GenerateID(32)
		if err != nil {
			slog.Error("session salt generation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("SESSION_SALT not set, sessions will not survive a restart")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessions := session.NewStore(newFlow, cfg.SessionTTL, salt)
	sweeperDone := make(chan struct{})
	go func() {
		sessions.Run(ctx, sweepInterval)
		close(sweeperDone)
	}()

	// Create router
	mux := router.NewRouter(sessions, results)

	// Create server
	server := http.Server{
		Handler: mux,
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
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}

	// Tear down every open flow
	cancel()
	<-sweeperDone
}
