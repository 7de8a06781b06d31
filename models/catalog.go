// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Stage is the current phase of the voting flow
type Stage int

const (
	StageCourse Stage = iota
	StagePersonero
	StageConsejo
	StageComplete
)

// Next returns the stage that follows a successful vote.
// StageComplete is terminal.
func (s Stage) Next() Stage {
	switch s {
	case StageCourse:
		return StagePersonero
	case StagePersonero:
		return StageConsejo
	default:
		return StageComplete
	}
}

func (s Stage) String() string {
	switch s {
	case StageCourse:
		return "course"
	case StagePersonero:
		return "personero"
	case StageConsejo:
		return "consejo"
	case StageComplete:
		return "complete"
	default:
		return "invalid"
	}
}

// Courses is the fixed, ordered list of courses. IDs match the grupo tag of
// course-representative candidates.
var Courses = []Course{
	{ID: "1", Label: "1°"},
	{ID: "2", Label: "2°"},
	{ID: "3", Label: "3°"},
	{ID: "4", Label: "4°"},
	{ID: "5", Label: "5°"},
	{ID: "6", Label: "6°"},
	{ID: "7", Label: "7°"},
	{ID: "8", Label: "8°"},
	{ID: "9", Label: "9°"},
	{ID: "10", Label: "10°"},
	{ID: "11", Label: "11°"},
}

// FindCourse looks up a course by id in the static table
func FindCourse(id string) (Course, bool) {
	for _, c := range Courses {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}

// Accent is a card presentation category
type Accent struct {
	Name   string
	Border string
	Badge  string
}

var AccentNeutral = Accent{Name: "neutral", Border: "#D1D5DB", Badge: "#6B7280"}

// accentByPrefix maps the two-digit list number of a candidate name
var accentByPrefix = map[string]Accent{
	"01": {Name: "rojo", Border: "#E30813", Badge: "#E30813"},
	"02": {Name: "vino", Border: "#8C2F32", Badge: "#8C2F32"},
	"03": {Name: "naranja", Border: "#F7AA3F", Badge: "#F7AA3F"},
	"04": {Name: "amarillo", Border: "#F2B90F", Badge: "#F2B90F"},
}

// AccentFor derives the card accent from the "NN - " prefix of a display name
func AccentFor(name string) Accent {
	if len(name) < 2 {
		return AccentNeutral
	}
	if a, ok := accentByPrefix[name[:2]]; ok {
		return a
	}
	return AccentNeutral
}
