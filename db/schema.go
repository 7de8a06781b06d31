// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the development backend.
// Safe to call multiple times - uses IF NOT EXISTS.
// The statements are valid for both SQLite and PostgreSQL.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Candidates
CREATE TABLE IF NOT EXISTS candidato (
    id_candidato TEXT PRIMARY KEY,
    nombre TEXT NOT NULL,
    grupo TEXT NOT NULL,
    biografia TEXT NOT NULL DEFAULT '',
    foto_url TEXT NOT NULL DEFAULT '',
    posicion INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_candidato_grupo ON candidato(grupo);

-- Votes
CREATE TABLE IF NOT EXISTS voto (
    id TEXT PRIMARY KEY,
    id_candidato TEXT NOT NULL REFERENCES candidato(id_candidato) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    ip_hash TEXT,
    user_agent TEXT
);

CREATE INDEX IF NOT EXISTS idx_voto_id_candidato ON voto(id_candidato);
`
