// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/votaciones/auth"
	"github.com/danielhkuo/votaciones/cliparse"
	"github.com/danielhkuo/votaciones/middleware"
	"github.com/danielhkuo/votaciones/models"
)

// BackendHandler implements the voting backend contract on a SQL database.
// It stands in for the production backend during development.
type BackendHandler struct {
	db  *sql.DB
	cfg cliparse.BackendConfig
}

func NewBackendHandler(db *sql.DB, cfg cliparse.BackendConfig) *BackendHandler {
	return &BackendHandler{db: db, cfg: cfg}
}

// GetCandidatos handles GET /votaciones/getCandidatos
func (h *BackendHandler) GetCandidatos(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.QueryContext(r.Context(), `
		SELECT id_candidato, nombre, grupo, biografia, foto_url
		FROM candidato
		ORDER BY posicion, id_candidato
	`)
	if err != nil {
		slog.Error("failed to query candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	candidates := []models.CandidateRecord{}
	for rows.Next() {
		var c models.CandidateRecord
		var id string
		if err := rows.Scan(&id, &c.Nombre, &c.Grupo, &c.Biografia, &c.FotoURL); err != nil {
			slog.Error("failed to scan candidate", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		c.IDCandidato = models.FlexString(id)
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// Create handles POST /votaciones/create
// Records one vote for an existing candidate
func (h *BackendHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	candidateID := strings.TrimSpace(req.IDCandidato)
	if candidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id_candidato is required")
		return
	}

	var exists bool
	err := h.db.QueryRowContext(r.Context(), `
		SELECT EXISTS(SELECT 1 FROM candidato WHERE id_candidato = $1)
	`, candidateID).Scan(&exists)
	if err != nil {
		slog.Error("failed to query candidate", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	voteID := uuid.NewString()
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)

	_, err = h.db.ExecContext(r.Context(), `
		INSERT INTO voto (id, id_candidato, ip_hash, user_agent)
		VALUES ($1, $2, $3, $4)
	`, voteID, candidateID, ipHash, r.UserAgent())
	if err != nil {
		slog.Error("failed to insert vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded", "vote_id", voteID, "candidate_id", candidateID)

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		Message: "Voto registrado",
	})
}

// GetCandidateVotes handles GET /votaciones/getCandidateVotes
// Every candidate is listed, including those without votes.
func (h *BackendHandler) GetCandidateVotes(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.QueryContext(r.Context(), `
		SELECT c.nombre, c.grupo, COUNT(v.id)
		FROM candidato c
		LEFT JOIN voto v ON v.id_candidato = c.id_candidato
		GROUP BY c.id_candidato, c.nombre, c.grupo, c.posicion
		ORDER BY c.posicion, c.id_candidato
	`)
	if err != nil {
		slog.Error("failed to query vote tallies", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	tallies := []models.TallyRecord{}
	for rows.Next() {
		var t models.TallyRecord
		var total int64
		if err := rows.Scan(&t.Candidato, &t.Grupo, &total); err != nil {
			slog.Error("failed to scan tally", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		t.TotalVotos = models.VoteCount(total)
		tallies = append(tallies, t)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate tallies", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, tallies)
}
