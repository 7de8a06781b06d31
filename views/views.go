// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/danielhkuo/votaciones/dashboard"
	"github.com/danielhkuo/votaciones/flow"
	"github.com/danielhkuo/votaciones/models"
)

const (
	AppTitle    = "Sistema de Votación Estudiantil 2025"
	StatusTitle = "Estado de Votaciones"

	HeadingCourses        = "Selecciona tu curso"
	HeadingRepresentative = "Selecciona tu Representante de Curso"
	HeadingPersonero      = "Selecciona tu personero"
	HeadingConsejo        = "Selecciona tu representante al Consejo"
	HeadingComplete       = "¡Gracias por votar!"
	LoadingText           = "Cargando candidatos..."
)

//go:embed templates/*.html
var files embed.FS

var funcs = template.FuncMap{
	"accent": models.AccentFor,
	"add":    func(a, b int) int { return a + b },
	"sub":    func(a, b int) int { return a - b },
}

var (
	voteTmpl   = parse("templates/layout.html", "templates/vote.html")
	statusTmpl = parse("templates/layout.html", "templates/status.html")
)

func parse(patterns ...string) *template.Template {
	return template.Must(template.New("layout.html").Funcs(funcs).ParseFS(files, patterns...))
}

// VotePage is the view model of the voting page
type VotePage struct {
	Title   string
	Refresh bool
	State   flow.State
	Heading string
	// CourseLabel is set while voting for the course representative
	CourseLabel string
	Courses     []models.Course
}

// NewVotePage derives the screen to show from a flow snapshot
func NewVotePage(st flow.State) VotePage {
	p := VotePage{
		Title:   AppTitle,
		Refresh: st.Loading || st.Submitting,
		State:   st,
		Courses: models.Courses,
	}
	switch {
	case st.Complete:
		p.Heading = HeadingComplete
	case st.ChoosingCourse():
		p.Heading = HeadingCourses
	case st.Voting():
		p.Heading = StageHeading(st.Stage)
		if c, ok := models.FindCourse(st.SelectedCourse); ok && st.Stage == models.StageCourse {
			p.CourseLabel = c.Label
		}
	}
	return p
}

// StageHeading names the office being voted on at a stage
func StageHeading(stage models.Stage) string {
	switch stage {
	case models.StageCourse:
		return HeadingRepresentative
	case models.StagePersonero:
		return HeadingPersonero
	case models.StageConsejo:
		return HeadingConsejo
	default:
		return ""
	}
}

// StatusPage is the view model of the results page
type StatusPage struct {
	Title  string
	Error  string
	Charts []dashboard.Chart
}

func NewStatusPage(d *dashboard.Dashboard) StatusPage {
	return StatusPage{
		Title:  StatusTitle,
		Error:  d.Error,
		Charts: d.Charts(),
	}
}

// RenderVote writes the voting page. Output is buffered so a template error
// never leaves a half-written page.
func RenderVote(w io.Writer, p VotePage) error {
	return render(w, voteTmpl, p)
}

// RenderStatus writes the results page
func RenderStatus(w io.Writer, p StatusPage) error {
	return render(w, statusTmpl, p)
}

func render(w io.Writer, t *template.Template, data any) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
