// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the student voting web client.

Students pick their course, then vote for a course representative, a
personero and a consejo representative. A results dashboard at /status
charts the tallies. Candidates and votes live in a remote voting backend
reached over HTTP.

# Starting the Server

	VOTING_API_URL=http://localhost:5005/votaciones go run .

Or with flags:

	go run . -p 3000 -api "http://localhost:5005/votaciones"

A local backend for development lives in cmd/devbackend. cmd/votestatus
prints the tallies in a terminal.

# Configuration

Settings are read from flags, then the environment, then an optional .env:

  - VOTING_API_URL (-api): Backend base URL (VITE_API_URL also accepted)
  - PORT (-p): Server port (default: 3000)
  - REQUEST_TIMEOUT (-timeout): Backend request timeout (default: 10s)
  - SESSION_SALT (-session-salt): Session cookie secret (random when unset)
  - SESSION_TTL (-session-ttl): Idle session lifetime (default: 30m)

A missing or malformed backend URL does not stop the server; the pages show
a configuration error instead.

# Architecture

  - flow: Voting state machine, one per browser session
  - dashboard: Results partitioning and chart layout
  - apiclient: Backend HTTP client and URL normalization
  - session: Session store and signed cookies
  - views: Embedded HTML templates
  - handlers: HTTP request handlers (frontend and development backend)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Wire and domain types
  - auth: ID generation and HMAC helpers
  - db: Development backend schema and seed data
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
