// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes of the voting frontend and of the
development backend.

# Frontend

NewRouter creates a configured http.ServeMux:

	mux := router.NewRouter(sessions, client)

Endpoints:

	GET  /health     - Health check
	GET  /           - Voting page
	POST /curso      - Select course
	POST /votar      - Submit vote
	POST /volver     - Back to courses
	POST /finalizar  - Acknowledge completion
	POST /alerta     - Dismiss vote failure alert
	GET  /status     - Results dashboard

Any other path is a 404.

# Development Backend

NewBackendRouter wraps the backend routes in CORS:

	handler := router.NewBackendRouter(db, cfg)

Endpoints:

	GET  /health                        - Health check (pings the database)
	GET  /votaciones/getCandidatos      - Candidate list
	POST /votaciones/create             - Record a vote
	GET  /votaciones/getCandidateVotes  - Vote tallies
*/
package router
