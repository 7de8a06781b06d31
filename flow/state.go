// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package flow

import "github.com/danielhkuo/votaciones/models"

// State is a point-in-time copy of a Flow for rendering
type State struct {
	Stage          models.Stage
	SelectedCourse string
	Complete       bool
	Loading        bool
	Loaded         bool
	Misconfigured  bool
	Error          string
	Alert          string
	Submitting     bool
	Visible        []models.Candidate
}

// ChoosingCourse reports whether the course grid is the current screen
func (s State) ChoosingCourse() bool {
	return s.Loaded && !s.Complete && s.Stage == models.StageCourse && s.SelectedCourse == ""
}

// Voting reports whether a candidate grid is the current screen
func (s State) Voting() bool {
	return s.Loaded && !s.Complete && !s.ChoosingCourse()
}

func (f *Flow) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	visible := f.visible()
	copied := make([]models.Candidate, len(visible))
	copy(copied, visible)

	return State{
		Stage:          f.stage,
		SelectedCourse: f.selected,
		Complete:       f.complete,
		Loading:        f.loading,
		Loaded:         f.loaded,
		Misconfigured:  f.misconfigured,
		Error:          f.errMsg,
		Alert:          f.alert,
		Submitting:     f.submitting,
		Visible:        copied,
	}
}
