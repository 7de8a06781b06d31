// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the voting frontend
and the development backend.

# Handler Types

  - VotingHandler: the voting page and its form actions, one flow.Flow per session
  - ResultsHandler: the results dashboard
  - BackendHandler: the voting backend contract on a SQL database

Handlers are created via constructor functions:

	votingHandler := handlers.NewVotingHandler(sessions)
	resultsHandler := handlers.NewResultsHandler(client)
	backendHandler := handlers.NewBackendHandler(db, cfg)

# Voting Page

	GET  /           → Home (starts the candidate load, renders the current screen)
	POST /curso      → SelectCourse (form field curso)
	POST /votar      → Vote (form field id_candidato)
	POST /volver     → Back
	POST /finalizar  → Finish
	POST /alerta     → DismissAlert

Form actions always answer 303 See Other to /. A rejected action leaves the
flow unchanged and the page shows the resulting state. Actions without a
session cookie start over at /.

# Results

	GET /status → Status

Tallies are fetched on every view.

# Development Backend

	GET  /votaciones/getCandidatos      → GetCandidatos
	POST /votaciones/create             → Create
	GET  /votaciones/getCandidateVotes  → GetCandidateVotes

Votes are stored with a salted hash of the client IP and the user agent.
*/
package handlers
