// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Literal group tags used by the backend for school-wide roles
const (
	TagPersonero = "Personero"
	TagConsejo   = "Consejo"
)

// Wire types (backend contract)

// CandidateRecord is one element of GET /getCandidatos
type CandidateRecord struct {
	IDCandidato FlexString `json:"id_candidato"`
	Nombre      string     `json:"nombre"`
	Grupo       string     `json:"grupo"`
	Biografia   string     `json:"biografia"`
	FotoURL     string     `json:"foto_url"`
}

// TallyRecord is one element of GET /getCandidateVotes
type TallyRecord struct {
	Candidato  string    `json:"candidato"`
	Grupo      string    `json:"grupo"`
	TotalVotos VoteCount `json:"total_votos"`
}

type VoteRequest struct {
	IDCandidato string `json:"id_candidato"`
}

type VoteResponse struct {
	Message string `json:"message"`
}

// FlexString decodes a JSON string or number into its string form.
// Backends differ on whether candidate ids are serialized as numbers.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = FlexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*s = FlexString(num.String())
	return nil
}

// VoteCount decodes a JSON number or numeric string (COUNT(*) comes back as
// text from some drivers).
type VoteCount int64

func (c *VoteCount) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if raw == "" || raw == "null" {
		*c = 0
		return nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("total_votos must be numeric: %w", err)
	}
	*c = VoteCount(n)
	return nil
}

// Domain types

// GroupKind discriminates the Group variant
type GroupKind int

const (
	GroupUnknown GroupKind = iota
	GroupCourse
	GroupPersonero
	GroupConsejo
)

// Group is the decoded form of a backend "grupo" tag.
// Course is only set when Kind == GroupCourse.
type Group struct {
	Kind   GroupKind
	Course string
}

// ParseGroup classifies a raw grupo tag. Numeric strings are courses,
// the two literal role tags map to their roles, anything else is unknown.
// Tags are matched exactly; surrounding whitespace makes a tag unknown.
func ParseGroup(tag string) Group {
	switch tag {
	case TagPersonero:
		return Group{Kind: GroupPersonero}
	case TagConsejo:
		return Group{Kind: GroupConsejo}
	}
	if tag != "" {
		if f, err := strconv.ParseFloat(tag, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return Group{Kind: GroupCourse, Course: tag}
		}
	}
	return Group{Kind: GroupUnknown}
}

func CourseGroup(id string) Group {
	return Group{Kind: GroupCourse, Course: id}
}

func (g Group) String() string {
	switch g.Kind {
	case GroupCourse:
		return g.Course
	case GroupPersonero:
		return TagPersonero
	case GroupConsejo:
		return TagConsejo
	default:
		return "unknown"
	}
}

// Candidate is a normalized CandidateRecord. PhotoURL is absolute.
type Candidate struct {
	ID        string
	Name      string
	Group     Group
	Biography string
	PhotoURL  string
}

// NewCandidate decodes the group tag and attaches an already-resolved photo URL
func NewCandidate(rec CandidateRecord, photoURL string) Candidate {
	return Candidate{
		ID:        strings.TrimSpace(string(rec.IDCandidato)),
		Name:      rec.Nombre,
		Group:     ParseGroup(rec.Grupo),
		Biography: rec.Biografia,
		PhotoURL:  photoURL,
	}
}

// VoteTally is an aggregated, read-only count reported by the backend
type VoteTally struct {
	Name  string
	Group Group
	Votes int64
}

func NewVoteTally(rec TallyRecord) VoteTally {
	return VoteTally{
		Name:  rec.Candidato,
		Group: ParseGroup(rec.Grupo),
		Votes: int64(rec.TotalVotos),
	}
}

// Course is an entry of the static course table
type Course struct {
	ID    string
	Label string
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
