// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns the web frontend Config:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

ParseBackendFlags returns the BackendConfig of the development backend:

	cfg, err := cliparse.ParseBackendFlags(os.Args[1:])

# Frontend Settings

	-p             PORT             Server port (default: 3000)
	-api           VOTING_API_URL   Backend base URL (VITE_API_URL also read)
	-timeout       REQUEST_TIMEOUT  Backend request timeout (default: 10s)
	-session-salt  SESSION_SALT     Session cookie secret
	-session-ttl   SESSION_TTL      Idle session lifetime (default: 30m)

A missing or malformed backend URL is not a parse error. The pages show a
permanent configuration error instead.

# Development Backend Settings

	-p        PORT           Server port (default: 5005)
	-d        DATABASE_URL   Database URL (default: file:votaciones.db for sqlite)
	-t        DATABASE_TYPE  sqlite or postgres (default: sqlite)
	-ip-salt  IP_HASH_SALT   Secret for voter IP hashing (required)
	-seed     SEED_FILE      JSON candidate list to load into an empty database

# Terminal Results Settings

ParseStatusFlags returns the StatusConfig of cmd/votestatus:

	-api       VOTING_API_URL   Backend base URL (required)
	-timeout   REQUEST_TIMEOUT  Backend request timeout (default: 10s)
	-watch                      Refresh interval (default: print once)
	-no-color  NO_COLOR         Plain output

CLI flags take precedence over environment variables.

# .env Files

LoadDotEnv reads an optional .env file before parsing. Variables already
present in the environment win.

	_ = cliparse.LoadDotEnv()
*/
package cliparse
