// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/danielhkuo/votaciones/models"
)

var ErrEmptyCandidateID = errors.New("candidate id is required")

// SeedCandidates inserts the candidates when the candidato table is empty.
// List order is kept in the posicion column. Returns the number inserted.
func SeedCandidates(db *sql.DB, candidates []models.CandidateRecord) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM candidato`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed: %w", err)
	}
	defer tx.Rollback()

	for i, c := range candidates {
		id := strings.TrimSpace(string(c.IDCandidato))
		if id == "" {
			return 0, fmt.Errorf("candidate %d: %w", i, ErrEmptyCandidateID)
		}
		_, err := tx.Exec(`
			INSERT INTO candidato (id_candidato, nombre, grupo, biografia, foto_url, posicion)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, id, c.Nombre, strings.TrimSpace(c.Grupo), c.Biografia, c.FotoURL, i)
		if err != nil {
			return 0, fmt.Errorf("failed to insert candidate %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}
	return len(candidates), nil
}

// LoadSeedFile reads a JSON array in the getCandidatos wire format
func LoadSeedFile(path string) ([]models.CandidateRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var candidates []models.CandidateRecord
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return candidates, nil
}

// DemoCandidates returns two representatives per course plus the
// personero and consejo lists. IDs are sequential numbers.
func DemoCandidates() []models.CandidateRecord {
	var out []models.CandidateRecord
	add := func(name, group, bio string) {
		id := fmt.Sprint(len(out) + 1)
		out = append(out, models.CandidateRecord{
			IDCandidato: models.FlexString(id),
			Nombre:      name,
			Grupo:       group,
			Biografia:   bio,
			FotoURL:     "/fotos/" + id + ".jpg",
		})
	}

	for _, course := range models.Courses {
		add("01 - Representante A "+course.Label, course.ID, "Propone más actividades culturales en el curso.")
		add("02 - Representante B "+course.Label, course.ID, "Propone tutorías entre compañeros.")
	}
	add("01 - Valentina Rodríguez", models.TagPersonero, "Biblioteca abierta en los descansos.")
	add("02 - Santiago Herrera", models.TagPersonero, "Torneos deportivos intercursos.")
	add("03 - Mariana López", models.TagPersonero, "Huerta escolar y reciclaje.")
	add("01 - Camilo Martínez", models.TagConsejo, "Voz estudiantil en el comité de convivencia.")
	add("04 - Isabella Castro", models.TagConsejo, "Mejoras en la cafetería.")
	return out
}
