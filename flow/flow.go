// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/danielhkuo/votaciones/apiclient"
	"github.com/danielhkuo/votaciones/models"
)

// User-facing messages
const (
	MsgConfig     = "La URL del backend (VOTING_API_URL) no está configurada correctamente."
	MsgLoadFailed = "No se pudieron cargar los candidatos. Verifica conexión con el backend."
	MsgVoteFailed = "Hubo un error al votar. Por favor, intenta de nuevo."
)

var (
	ErrSubmitInFlight    = errors.New("a vote submission is already in flight")
	ErrNotReady          = errors.New("candidates are not loaded")
	ErrClosed            = errors.New("voting flow is closed")
	ErrAlertPending      = errors.New("an alert must be acknowledged first")
	ErrVotingComplete    = errors.New("voting is already complete")
	ErrNotComplete       = errors.New("voting is not complete")
	ErrNoCourse          = errors.New("no course selected")
	ErrCourseSelected    = errors.New("a course is already selected")
	ErrUnknownCourse     = errors.New("unknown course")
	ErrWrongStage        = errors.New("action not valid at this stage")
	ErrCandidateNotShown = errors.New("candidate is not offered at this stage")
)

// Source is the backend as seen by the voting flow
type Source interface {
	BaseURL() *url.URL
	ListCandidates(ctx context.Context) ([]models.CandidateRecord, error)
	SubmitVote(ctx context.Context, candidateID string) error
}

// Flow is the per-session voting state machine:
//
//	course -> personero -> consejo -> complete
//
// All methods are safe for concurrent use. The mutex is never held across a
// backend call.
type Flow struct {
	mu  sync.Mutex
	src Source

	misconfigured bool
	closed        bool

	candidates []models.Candidate
	selected   string
	stage      models.Stage
	complete   bool

	loading    bool
	loaded     bool
	errMsg     string
	cancelLoad context.CancelFunc

	submitting bool
	alert      string
}

// New returns a flow in the course stage with nothing loaded yet
func New(src Source) *Flow {
	return &Flow{src: src, stage: models.StageCourse}
}

// NewMisconfigured returns a flow stuck in the configuration-error state.
// It never reaches the network.
func NewMisconfigured() *Flow {
	return &Flow{misconfigured: true, stage: models.StageCourse, errMsg: MsgConfig}
}

// Load fetches the candidate list once. Concurrent or repeated calls after a
// successful load are no-ops; a failed load is attempted again on the next
// call. If the flow is closed while the fetch is outstanding the result is
// discarded.
func (f *Flow) Load(ctx context.Context) {
	ctx, cancel, ok := f.beginLoad(ctx)
	if !ok {
		return
	}
	f.finishLoad(ctx, cancel)
}

// StartLoad is Load in the background. The flow reports Loading before
// StartLoad returns, so the caller can render the loading screen at once.
func (f *Flow) StartLoad(ctx context.Context) {
	ctx, cancel, ok := f.beginLoad(ctx)
	if !ok {
		return
	}
	go f.finishLoad(ctx, cancel)
}

func (f *Flow) beginLoad(ctx context.Context) (context.Context, context.CancelFunc, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.misconfigured || f.closed || f.loaded || f.loading {
		return nil, nil, false
	}
	ctx, cancel := context.WithCancel(ctx)
	f.cancelLoad = cancel
	f.loading = true
	// A retry replaces the previous failure with the loading screen
	f.errMsg = ""
	return ctx, cancel, true
}

func (f *Flow) finishLoad(ctx context.Context, cancel context.CancelFunc) {
	defer cancel()

	records, err := f.src.ListCandidates(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		slog.Debug("discarding candidate load after close")
		return
	}
	f.cancelLoad = nil
	f.loading = false

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		slog.Error("failed to load candidates", "error", err)
		f.errMsg = MsgLoadFailed
		return
	}

	base := f.src.BaseURL()
	candidates := make([]models.Candidate, 0, len(records))
	for _, rec := range records {
		candidates = append(candidates, models.NewCandidate(rec, apiclient.ResolveAssetURL(base, rec.FotoURL)))
	}

	f.candidates = candidates
	f.loaded = true
	f.errMsg = ""
	slog.Info("candidates loaded", "count", len(candidates))
}

// SelectCourse picks the course whose representatives are shown
func (f *Flow) SelectCourse(courseID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkActive(); err != nil {
		return err
	}
	if f.stage != models.StageCourse {
		return ErrWrongStage
	}
	if f.selected != "" {
		return ErrCourseSelected
	}
	if _, ok := models.FindCourse(courseID); !ok {
		return ErrUnknownCourse
	}

	f.selected = courseID
	return nil
}

// Submit votes for candidateID and advances one stage on success.
// Only one submission runs at a time; a concurrent call returns
// ErrSubmitInFlight without touching the backend. On failure the state is
// left unchanged and a blocking alert is raised.
func (f *Flow) Submit(ctx context.Context, candidateID string) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	if err := f.checkActive(); err != nil {
		f.mu.Unlock()
		return err
	}
	if f.alert != "" {
		f.mu.Unlock()
		return ErrAlertPending
	}
	if f.stage == models.StageCourse && f.selected == "" {
		f.mu.Unlock()
		return ErrNoCourse
	}
	if !f.isVisible(candidateID) {
		f.mu.Unlock()
		return ErrCandidateNotShown
	}
	stage := f.stage
	f.submitting = true
	f.mu.Unlock()

	err := f.src.SubmitVote(ctx, candidateID)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if f.closed {
		return ErrClosed
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		slog.Error("failed to submit vote", "error", err, "candidate_id", candidateID, "stage", stage.String())
		f.alert = MsgVoteFailed
		return fmt.Errorf("submit vote: %w", err)
	}

	// The user may have gone back to the course list while the vote was in
	// flight; the stage only moves forward from where the vote was cast.
	if f.stage != stage {
		slog.Warn("stage changed during vote submission", "from", stage.String(), "now", f.stage.String())
		return nil
	}

	f.stage = stage.Next()
	if f.stage == models.StageComplete {
		f.complete = true
	}
	slog.Info("vote recorded", "candidate_id", candidateID, "stage", f.stage.String())
	return nil
}

// DismissAlert acknowledges a failed-vote alert
func (f *Flow) DismissAlert() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alert = ""
}

// Acknowledge resets a completed flow to the course list
func (f *Flow) Acknowledge() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrClosed
	}
	if !f.complete {
		return ErrNotComplete
	}

	f.complete = false
	f.selected = ""
	f.stage = models.StageCourse
	return nil
}

// BackToCourses returns to the course list and clears the selection
func (f *Flow) BackToCourses() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.checkActive(); err != nil {
		return err
	}
	if f.alert != "" {
		return ErrAlertPending
	}

	f.selected = ""
	f.stage = models.StageCourse
	return nil
}

// Close tears the flow down. An outstanding load is cancelled and its
// result ignored.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	if f.cancelLoad != nil {
		f.cancelLoad()
		f.cancelLoad = nil
	}
}

// checkActive requires a loaded, open, incomplete flow. Caller holds mu.
func (f *Flow) checkActive() error {
	switch {
	case f.closed:
		return ErrClosed
	case !f.loaded:
		return ErrNotReady
	case f.complete:
		return ErrVotingComplete
	}
	return nil
}

func (f *Flow) isVisible(candidateID string) bool {
	for _, c := range f.visible() {
		if c.ID == candidateID {
			return true
		}
	}
	return false
}

// visible filters candidates for the current stage. Caller holds mu.
func (f *Flow) visible() []models.Candidate {
	return Visible(f.candidates, f.stage, f.selected)
}

// Visible selects the candidates offered at stage, keeping backend order.
// At the course stage only the selected course's representatives qualify.
func Visible(candidates []models.Candidate, stage models.Stage, selectedCourse string) []models.Candidate {
	var want models.Group
	switch stage {
	case models.StageCourse:
		if selectedCourse == "" {
			return nil
		}
		want = models.CourseGroup(selectedCourse)
	case models.StagePersonero:
		want = models.Group{Kind: models.GroupPersonero}
	case models.StageConsejo:
		want = models.Group{Kind: models.GroupConsejo}
	default:
		return nil
	}

	out := []models.Candidate{}
	for _, c := range candidates {
		if c.Group == want {
			out = append(out, c)
		}
	}
	return out
}
