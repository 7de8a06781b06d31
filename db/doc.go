// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the development backend database.

# Connection

Open selects the driver by type and pings the database:

	conn, err := db.Open(db.TypeSQLite, "file:votaciones.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite uses modernc.org/sqlite (pure Go), PostgreSQL uses lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - candidato: Candidates in list order (posicion)
  - voto: One row per vote, with a salted IP hash and the user agent

	candidato 1──* voto

# Seeding

SeedCandidates fills an empty candidato table, either from DemoCandidates
or from a JSON file in the getCandidatos format:

	candidates, err := db.LoadSeedFile("candidatos.json")
	n, err := db.SeedCandidates(conn, candidates)
*/
package db
