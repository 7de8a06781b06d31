// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/votaciones/dashboard"
	"github.com/danielhkuo/votaciones/views"
)

// ResultsHandler serves the results dashboard. It shares no state with the
// voting flow; every request fetches fresh tallies.
type ResultsHandler struct {
	src dashboard.Source
}

// NewResultsHandler returns a handler backed by src. A nil src means the
// backend URL is not configured.
func NewResultsHandler(src dashboard.Source) *ResultsHandler {
	return &ResultsHandler{src: src}
}

// Status handles GET /status
func (h *ResultsHandler) Status(w http.ResponseWriter, r *http.Request) {
	d := h.dashboard()
	d.Load(r.Context())

	if r.Context().Err() != nil {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := views.RenderStatus(w, views.NewStatusPage(d)); err != nil {
		slog.Error("failed to render status page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *ResultsHandler) dashboard() *dashboard.Dashboard {
	if h.src == nil {
		return dashboard.NewMisconfigured()
	}
	return dashboard.New(h.src)
}
