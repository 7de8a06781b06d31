// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/votaciones/flow"
	"github.com/danielhkuo/votaciones/session"
	"github.com/danielhkuo/votaciones/views"
)

// VotingHandler serves the voting page and its form actions. Each browser
// session owns one flow.Flow.
type VotingHandler struct {
	sessions *session.Store
}

func NewVotingHandler(sessions *session.Store) *VotingHandler {
	return &VotingHandler{sessions: sessions}
}

// Home handles GET /
// Starts the candidate load on first view (and after a failed load) and
// renders the current screen without waiting for it. The loading screen
// refreshes itself until the load resolves. The load belongs to the session,
// not the request; evicting the session cancels it.
func (h *VotingHandler) Home(w http.ResponseWriter, r *http.Request) {
	f := h.sessions.Attach(w, r)
	f.StartLoad(context.WithoutCancel(r.Context()))
	renderVote(w, f.Snapshot())
}

// SelectCourse handles POST /curso
func (h *VotingHandler) SelectCourse(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, "select course", func(f *flow.Flow) error {
		return f.SelectCourse(r.PostFormValue("curso"))
	})
}

// Vote handles POST /votar
// The submission outlives the browser request so a vote recorded by the
// backend always advances the flow.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, "submit vote", func(f *flow.Flow) error {
		ctx := context.WithoutCancel(r.Context())
		return f.Submit(ctx, r.PostFormValue("id_candidato"))
	})
}

// Back handles POST /volver
func (h *VotingHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, "back to courses", func(f *flow.Flow) error {
		return f.BackToCourses()
	})
}

// Finish handles POST /finalizar, acknowledging a completed ballot
func (h *VotingHandler) Finish(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, "acknowledge completion", func(f *flow.Flow) error {
		return f.Acknowledge()
	})
}

// DismissAlert handles POST /alerta
func (h *VotingHandler) DismissAlert(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, "dismiss alert", func(f *flow.Flow) error {
		f.DismissAlert()
		return nil
	})
}

// act applies a form action to the session's flow and redirects back to
// the voting page. Rejected actions leave the flow unchanged; the page
// always reflects the resulting state.
func (h *VotingHandler) act(w http.ResponseWriter, r *http.Request, action string, apply func(*flow.Flow) error) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	f, ok := h.sessions.Lookup(r)
	if !ok {
		// Expired or unknown session: start over
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := apply(f); err != nil {
		switch {
		case errors.Is(err, flow.ErrSubmitInFlight):
			slog.Info("duplicate action ignored", "action", action)
		case errors.Is(err, context.Canceled):
			slog.Info("action cancelled", "action", action)
		default:
			slog.Warn("action rejected", "action", action, "error", err)
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func renderVote(w http.ResponseWriter, st flow.State) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := views.RenderVote(w, views.NewVotePage(st)); err != nil {
		slog.Error("failed to render voting page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
