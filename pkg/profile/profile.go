// Package profile holds the student's academic record: completed and
// pending semesters, supplemental ("extra") credits, and target CGPAs.
// A profile is built once per session (interactively or from a saved
// snapshot, see store.go) and treated as immutable by the simulation
// engine in pkg/simulate.
package profile

import (
	"encoding/json"
	"sort"
)

// Score is an optional semester grade. The zero value means the
// semester has not been completed yet; presence of a value is the sole
// discriminator between completed and pending semesters, so it must
// survive serialization exactly (null, never 0).
type Score struct {
	Value float64
	Valid bool
}

// Graded returns a present Score with the given grade point.
func Graded(v float64) Score { return Score{Value: v, Valid: true} }

// MarshalJSON encodes a pending score as JSON null.
func (s Score) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

// UnmarshalJSON decodes a number or null. Null resets the score to the
// pending state.
func (s *Score) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = Score{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = Graded(v)
	return nil
}

// Semester is one academic period. ID is the map key in StudentProfile
// and defines display order; Credits is fixed at creation.
type Semester struct {
	ID      int     `json:"-"`
	Credits float64 `json:"credits"`
	SGPA    Score   `json:"sgpa"`
}

// Done reports whether the semester has a recorded grade.
func (s *Semester) Done() bool { return s.SGPA.Valid }

// StudentProfile aggregates the full record. Callers enforce the
// construction invariants (credits > 0, targets > 0, ExtraCredits >= 0);
// the model does not re-validate.
type StudentProfile struct {
	Semesters    map[int]*Semester `json:"semesters"`
	ExtraCredits float64           `json:"extraCredits"`
	ExtraGrade   float64           `json:"extraGrade"`
	Targets      []float64         `json:"targets"`
}

// New returns an empty profile with the default extra grade (10.0) and
// default targets.
func New() *StudentProfile {
	return &StudentProfile{
		Semesters:  make(map[int]*Semester),
		ExtraGrade: defaultExtraGrade,
		Targets:    defaultTargets(),
	}
}

const defaultExtraGrade = 10.0

func defaultTargets() []float64 { return []float64{8.5, 9.0} }

// AddCompleted records a finished semester.
func (p *StudentProfile) AddCompleted(id int, credits, sgpa float64) {
	p.Semesters[id] = &Semester{ID: id, Credits: credits, SGPA: Graded(sgpa)}
}

// AddPending records a semester that has not happened yet.
func (p *StudentProfile) AddPending(id int, credits float64) {
	p.Semesters[id] = &Semester{ID: id, Credits: credits}
}

// Completed returns the semesters with a recorded grade, ordered by ID.
// Recomputed on every call; the map stays the single source of truth.
func (p *StudentProfile) Completed() []*Semester {
	return p.partition(true)
}

// Pending returns the semesters still to come, ordered by ID. This
// order is the fixed future order the simulation engine indexes
// scenario means by.
func (p *StudentProfile) Pending() []*Semester {
	return p.partition(false)
}

func (p *StudentProfile) partition(done bool) []*Semester {
	out := make([]*Semester, 0, len(p.Semesters))
	for _, s := range p.Semesters {
		if s.Done() == done {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UnmarshalJSON restores a profile from a snapshot. Missing optional
// scalar fields take their defaults; a snapshot without a semesters
// object is rejected as malformed rather than half-loaded.
func (p *StudentProfile) UnmarshalJSON(b []byte) error {
	var raw struct {
		Semesters    map[int]*Semester `json:"semesters"`
		ExtraCredits *float64          `json:"extraCredits"`
		ExtraGrade   *float64          `json:"extraGrade"`
		Targets      []float64         `json:"targets"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Semesters == nil {
		return ErrNoSemesters
	}
	for id, s := range raw.Semesters {
		s.ID = id
	}
	p.Semesters = raw.Semesters

	p.ExtraCredits = 0
	if raw.ExtraCredits != nil {
		p.ExtraCredits = *raw.ExtraCredits
	}
	p.ExtraGrade = defaultExtraGrade
	if raw.ExtraGrade != nil {
		p.ExtraGrade = *raw.ExtraGrade
	}
	p.Targets = raw.Targets
	if p.Targets == nil {
		p.Targets = defaultTargets()
	}
	return nil
}
