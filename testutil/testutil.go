// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/votaciones/db"
	"github.com/danielhkuo/votaciones/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// TestCandidates is a small candidate list in backend order. Course "3" has
// two representatives; 77 and 103 are the ids of the voting walkthrough.
func TestCandidates() []models.CandidateRecord {
	return []models.CandidateRecord{
		{IDCandidato: "77", Nombre: "01 - Ana Pérez", Grupo: "3", Biografia: "Club de lectura", FotoURL: "/fotos/77.jpg"},
		{IDCandidato: "12", Nombre: "05 - Juan Ruiz", Grupo: "1", Biografia: "Deportes"},
		{IDCandidato: "78", Nombre: "02 - Pedro Díaz", Grupo: "3", Biografia: "Tutorías"},
		{IDCandidato: "103", Nombre: "03 - Luis Gómez", Grupo: models.TagPersonero, Biografia: "Huerta escolar"},
		{IDCandidato: "201", Nombre: "04 - Sara Mejía", Grupo: models.TagConsejo, Biografia: "Convivencia"},
		{IDCandidato: "300", Nombre: "99 - Sin grupo", Grupo: "Docentes"},
	}
}

// SeedTestCandidates loads TestCandidates into the database
func SeedTestCandidates(t *testing.T, conn *sql.DB) []models.CandidateRecord {
	t.Helper()

	candidates := TestCandidates()
	if _, err := db.SeedCandidates(conn, candidates); err != nil {
		t.Fatalf("Failed to seed candidates: %v", err)
	}
	return candidates
}

// FakeBackend serves the voting backend contract from memory
type FakeBackend struct {
	Server *httptest.Server

	mu         sync.Mutex
	candidates []models.CandidateRecord
	tallies    []models.TallyRecord
	votes      []string
	failList   bool
	failVotes  bool
	listCalls  int
	listDelay  time.Duration
	voteGate   chan struct{}
}

// NewFakeBackend starts a backend mounted at /votaciones. It is closed
// when the test ends.
func NewFakeBackend(t *testing.T, candidates []models.CandidateRecord) *FakeBackend {
	t.Helper()

	b := &FakeBackend{candidates: candidates}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /votaciones/getCandidatos", b.getCandidatos)
	mux.HandleFunc("POST /votaciones/create", b.create)
	mux.HandleFunc("GET /votaciones/getCandidateVotes", b.getCandidateVotes)
	b.Server = httptest.NewServer(mux)
	t.Cleanup(b.Server.Close)
	return b
}

// URL is the base URL the frontend should be configured with
func (b *FakeBackend) URL() string {
	return b.Server.URL + "/votaciones"
}

func (b *FakeBackend) SetFailList(fail bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failList = fail
}

func (b *FakeBackend) SetFailVotes(fail bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failVotes = fail
}

// SetListDelay makes /getCandidatos wait d before answering
func (b *FakeBackend) SetListDelay(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listDelay = d
}

// HoldVotes blocks /create until the returned release func is called.
// Release is also registered as test cleanup.
func (b *FakeBackend) HoldVotes(t *testing.T) (release func()) {
	t.Helper()

	gate := make(chan struct{})
	var once sync.Once
	release = func() { once.Do(func() { close(gate) }) }
	t.Cleanup(release)

	b.mu.Lock()
	b.voteGate = gate
	b.mu.Unlock()
	return release
}

func (b *FakeBackend) SetTallies(tallies []models.TallyRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tallies = tallies
}

// Votes returns the candidate ids received by /create, in order
func (b *FakeBackend) Votes() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.votes...)
}

// ListCalls counts /getCandidatos requests
func (b *FakeBackend) ListCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.listCalls
}

func (b *FakeBackend) getCandidatos(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.listCalls++
	delay := b.listDelay
	b.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failList {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, b.candidates)
}

func (b *FakeBackend) create(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	b.mu.Lock()
	gate := b.voteGate
	b.mu.Unlock()
	if gate != nil {
		<-gate
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failVotes {
		http.Error(w, "failed", http.StatusInternalServerError)
		return
	}
	b.votes = append(b.votes, req.IDCandidato)
	writeJSON(w, http.StatusCreated, models.VoteResponse{Message: "ok"})
}

func (b *FakeBackend) getCandidateVotes(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failList {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}
	tallies := b.tallies
	if tallies == nil {
		tallies = []models.TallyRecord{}
	}
	writeJSON(w, http.StatusOK, tallies)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a POST request with a url-encoded form body
func MakeFormRequest(path string, form url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
