// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/votaciones/cliparse"
	"github.com/danielhkuo/votaciones/dashboard"
	"github.com/danielhkuo/votaciones/handlers"
	"github.com/danielhkuo/votaciones/middleware"
	"github.com/danielhkuo/votaciones/session"
)

// NewRouter builds the web frontend routes. results may be nil when the
// backend URL is not configured.
func NewRouter(sessions *session.Store, results dashboard.Source) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	votingHandler := handlers.NewVotingHandler(sessions)
	resultsHandler := handlers.NewResultsHandler(results)

	// Health check
	mux.HandleFunc("GET /health", health)

	// Voting page and form actions
	mux.HandleFunc("GET /{$}", middleware.WithLogging(votingHandler.Home))
	mux.HandleFunc("POST /curso", middleware.WithLogging(votingHandler.SelectCourse))
	mux.HandleFunc("POST /votar", middleware.WithLogging(votingHandler.Vote))
	mux.HandleFunc("POST /volver", middleware.WithLogging(votingHandler.Back))
	mux.HandleFunc("POST /finalizar", middleware.WithLogging(votingHandler.Finish))
	mux.HandleFunc("POST /alerta", middleware.WithLogging(votingHandler.DismissAlert))

	// Results dashboard
	mux.HandleFunc("GET /status", middleware.WithLogging(resultsHandler.Status))

	return mux
}

// NewBackendRouter builds the development backend routes, mounted under
// /votaciones like the production backend
func NewBackendRouter(db *sql.DB, cfg cliparse.BackendConfig) http.Handler {
	mux := http.NewServeMux()

	backendHandler := handlers.NewBackendHandler(db, cfg)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			slog.Error("health check failed", "error", err)
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		health(w, r)
	})

	mux.HandleFunc("GET /votaciones/getCandidatos", middleware.WithLogging(backendHandler.GetCandidatos))
	mux.HandleFunc("POST /votaciones/create", middleware.WithLogging(backendHandler.Create))
	mux.HandleFunc("GET /votaciones/getCandidateVotes", middleware.WithLogging(backendHandler.GetCandidateVotes))

	return middleware.CORS(mux)
}

func health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
