package db_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/votaciones/db"
	"github.com/danielhkuo/votaciones/models"
	"github.com/danielhkuo/votaciones/testutil"
)

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}

	for _, table := range []string{"candidato", "voto"} {
		var n int
		if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
			t.Errorf("Table %s not queryable: %v", table, err)
		}
	}
}

func TestOpen_UnsupportedType(t *testing.T) {
	if _, err := db.Open("mysql", "x"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestSeedCandidates(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	candidates := testutil.TestCandidates()

	n, err := db.SeedCandidates(conn, candidates)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(candidates) {
		t.Errorf("Expected %d inserted, got %d", len(candidates), n)
	}

	// Second seed is a no-op
	n, err = db.SeedCandidates(conn, db.DemoCandidates())
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("Expected no inserts into a populated table, got %d", n)
	}

	// Backend order is kept in posicion
	rows, err := conn.Query(`SELECT id_candidato FROM candidato ORDER BY posicion`)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	for i, c := range candidates {
		if i >= len(ids) || ids[i] != string(c.IDCandidato) {
			t.Fatalf("Expected order %v, got %v", candidates, ids)
		}
	}
}

func TestSeedCandidates_EmptyID(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	_, err := db.SeedCandidates(conn, []models.CandidateRecord{
		{IDCandidato: "1", Nombre: "01 - A", Grupo: "1"},
		{IDCandidato: " ", Nombre: "02 - B", Grupo: "1"},
	})
	if !errors.Is(err, db.ErrEmptyCandidateID) {
		t.Fatalf("Expected ErrEmptyCandidateID, got %v", err)
	}

	// Rolled back
	var n int
	conn.QueryRow(`SELECT COUNT(*) FROM candidato`).Scan(&n)
	if n != 0 {
		t.Errorf("Expected failed seed to be rolled back, found %d rows", n)
	}
}

func TestLoadSeedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "candidatos.json")
	data := `[{"id_candidato": 7, "nombre": "01 - Ana", "grupo": "3", "biografia": "", "foto_url": "a.png"}]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	candidates, err := db.LoadSeedFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(candidates) != 1 || candidates[0].IDCandidato != "7" || candidates[0].Grupo != "3" {
		t.Errorf("Unexpected candidates %+v", candidates)
	}

	if _, err := db.LoadSeedFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDemoCandidates(t *testing.T) {
	demo := db.DemoCandidates()

	perCourse := map[string]int{}
	roles := map[models.GroupKind]int{}
	seen := map[models.FlexString]bool{}
	for _, c := range demo {
		if seen[c.IDCandidato] {
			t.Errorf("Duplicate id %s", c.IDCandidato)
		}
		seen[c.IDCandidato] = true

		g := models.ParseGroup(c.Grupo)
		roles[g.Kind]++
		if g.Kind == models.GroupCourse {
			perCourse[g.Course]++
		}
	}

	for _, course := range models.Courses {
		if perCourse[course.ID] == 0 {
			t.Errorf("Course %s has no candidates", course.ID)
		}
	}
	if roles[models.GroupPersonero] == 0 || roles[models.GroupConsejo] == 0 {
		t.Errorf("Expected personero and consejo candidates, got %v", roles)
	}
	if roles[models.GroupUnknown] != 0 {
		t.Errorf("Demo data must not contain unknown groups")
	}
}
