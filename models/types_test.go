package models

import (
	"encoding/json"
	"testing"
)

func TestParseGroup(t *testing.T) {
	tests := []struct {
		raw      string
		kind     GroupKind
		course   string
		asString string
	}{
		{"3", GroupCourse, "3", "3"},
		{"11", GroupCourse, "11", "11"},
		{" 3", GroupUnknown, "", "unknown"},
		{"3 ", GroupUnknown, "", "unknown"},
		{"Personero", GroupPersonero, "", "Personero"},
		{"Consejo", GroupConsejo, "", "Consejo"},
		{"personero", GroupUnknown, "", "unknown"},
		{"", GroupUnknown, "", "unknown"},
		{"3A", GroupUnknown, "", "unknown"},
		{"NaN", GroupUnknown, "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			g := ParseGroup(tt.raw)
			if g.Kind != tt.kind {
				t.Errorf("ParseGroup(%q).Kind = %v, want %v", tt.raw, g.Kind, tt.kind)
			}
			if g.Course != tt.course {
				t.Errorf("ParseGroup(%q).Course = %q, want %q", tt.raw, g.Course, tt.course)
			}
			if g.String() != tt.asString {
				t.Errorf("ParseGroup(%q).String() = %q, want %q", tt.raw, g.String(), tt.asString)
			}
		})
	}
}

func TestStageNext(t *testing.T) {
	order := []Stage{StageCourse, StagePersonero, StageConsejo, StageComplete}
	for i := 0; i < len(order)-1; i++ {
		if got := order[i].Next(); got != order[i+1] {
			t.Errorf("%s.Next() = %s, want %s", order[i], got, order[i+1])
		}
	}
	if got := StageComplete.Next(); got != StageComplete {
		t.Errorf("complete.Next() = %s, want complete", got)
	}
}

func TestAccentFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"01 - Ana", "rojo"},
		{"02 - Beto", "vino"},
		{"03 - Carla", "naranja"},
		{"04 - Dario", "amarillo"},
		{"05 - Elena", "neutral"},
		{"Sin número", "neutral"},
		{"0", "neutral"},
		{"", "neutral"},
	}

	for _, tt := range tests {
		if got := AccentFor(tt.name).Name; got != tt.want {
			t.Errorf("AccentFor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCandidateRecordDecoding(t *testing.T) {
	body := `[
		{"id_candidato": "77", "nombre": "01 - A", "grupo": "3", "biografia": "b", "foto_url": "x"},
		{"id_candidato": 103, "nombre": "02 - B", "grupo": "Personero", "biografia": "", "foto_url": ""}
	]`

	var recs []CandidateRecord
	if err := json.Unmarshal([]byte(body), &recs); err != nil {
		t.Fatalf("Failed to decode candidates: %v", err)
	}
	if recs[0].IDCandidato != "77" || recs[1].IDCandidato != "103" {
		t.Errorf("Unexpected ids: %q, %q", recs[0].IDCandidato, recs[1].IDCandidato)
	}

	c := NewCandidate(recs[1], "http://h/p.jpg")
	if c.ID != "103" || c.Group.Kind != GroupPersonero || c.PhotoURL != "http://h/p.jpg" {
		t.Errorf("Unexpected candidate: %+v", c)
	}
}

func TestTallyRecordDecoding(t *testing.T) {
	body := `[
		{"candidato": "A", "grupo": "3", "total_votos": 5},
		{"candidato": "B", "grupo": "Consejo", "total_votos": "12"},
		{"candidato": "C", "grupo": "Personero", "total_votos": null}
	]`

	var recs []TallyRecord
	if err := json.Unmarshal([]byte(body), &recs); err != nil {
		t.Fatalf("Failed to decode tallies: %v", err)
	}

	want := []int64{5, 12, 0}
	for i, rec := range recs {
		if got := NewVoteTally(rec).Votes; got != want[i] {
			t.Errorf("tally %d: expected %d votes, got %d", i, want[i], got)
		}
	}

	var bad []TallyRecord
	if err := json.Unmarshal([]byte(`[{"total_votos": "many"}]`), &bad); err == nil {
		t.Error("Expected error for non-numeric total_votos")
	}
}

func TestFindCourse(t *testing.T) {
	if c, ok := FindCourse("10"); !ok || c.Label != "10°" {
		t.Errorf("FindCourse(10) = %+v, %v", c, ok)
	}
	if _, ok := FindCourse("12"); ok {
		t.Error("Expected course 12 to be absent")
	}
}
