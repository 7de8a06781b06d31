// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dashboard

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/votaciones/models"
)

// User-facing messages
const (
	MsgConfig     = "La URL del backend (VOTING_API_URL) no está configurada correctamente."
	MsgLoadFailed = "No se pudo cargar el estado de votaciones."
)

// Chart titles, one per bucket
const (
	TitleRepresentatives = "Conteo de votos: Representantes"
	TitlePersonero       = "Conteo de votos: Personería"
	TitleConsejo         = "Conteo de votos: Consejo"
)

// Source is the backend as seen by the dashboard
type Source interface {
	CandidateVotes(ctx context.Context) ([]models.TallyRecord, error)
}

// Buckets holds tallies partitioned by group kind
type Buckets struct {
	Representatives []models.VoteTally
	Personero       []models.VoteTally
	Consejo         []models.VoteTally
}

// Dashboard is the state of one results page view
type Dashboard struct {
	src    Source
	loaded bool

	Buckets Buckets
	Error   string
}

func New(src Source) *Dashboard {
	return &Dashboard{src: src}
}

// NewMisconfigured returns a dashboard that reports MsgConfig without
// contacting the backend
func NewMisconfigured() *Dashboard {
	return &Dashboard{Error: MsgConfig}
}

// Load fetches tallies once. Later calls are no-ops.
func (d *Dashboard) Load(ctx context.Context) {
	if d.src == nil || d.loaded {
		return
	}
	d.loaded = true

	records, err := d.src.CandidateVotes(ctx)
	if err != nil {
		slog.Error("failed to load vote tallies", "error", err)
		d.Error = MsgLoadFailed
		return
	}

	tallies := make([]models.VoteTally, 0, len(records))
	for _, rec := range records {
		tallies = append(tallies, models.NewVoteTally(rec))
	}

	d.Buckets = Partition(tallies)
	d.Error = ""
	slog.Info("vote tallies loaded",
		"representatives", len(d.Buckets.Representatives),
		"personero", len(d.Buckets.Personero),
		"consejo", len(d.Buckets.Consejo),
	)
}

// Partition splits tallies by group. Tallies with an unknown group are
// dropped. Input order is preserved within each bucket.
func Partition(tallies []models.VoteTally) Buckets {
	b := Buckets{
		Representatives: []models.VoteTally{},
		Personero:       []models.VoteTally{},
		Consejo:         []models.VoteTally{},
	}
	for _, t := range tallies {
		switch t.Group.Kind {
		case models.GroupCourse:
			b.Representatives = append(b.Representatives, t)
		case models.GroupPersonero:
			b.Personero = append(b.Personero, t)
		case models.GroupConsejo:
			b.Consejo = append(b.Consejo, t)
		}
	}
	return b
}

// Sections pairs each bucket with its title, in display order
func (d *Dashboard) Sections() []Section {
	return []Section{
		{Title: TitleRepresentatives, Tallies: d.Buckets.Representatives},
		{Title: TitlePersonero, Tallies: d.Buckets.Personero},
		{Title: TitleConsejo, Tallies: d.Buckets.Consejo},
	}
}

type Section struct {
	Title   string
	Tallies []models.VoteTally
}

// Charts lays out one bar chart per section. No charts are produced while
// an error is set.
func (d *Dashboard) Charts() []Chart {
	if d.Error != "" {
		return nil
	}
	sections := d.Sections()
	charts := make([]Chart, 0, len(sections))
	for _, s := range sections {
		charts = append(charts, NewChart(s.Title, s.Tallies))
	}
	return charts
}
