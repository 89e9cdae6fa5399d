package domain

import "time"

// ExercisePrescription is one exercise slot of a session template.
type ExercisePrescription struct {
	Name     string
	Exercise ExerciseID
	Sets     int
	Reps     string
	RIR      int
	RestSec  int
	Tempo    string
	Load     float64
	Cue      string
	Goal     string
	// Technique names an intensification technique applied to the slot, if any.
	Technique Technique
}

// SessionTemplate is immutable catalog data for one (week, day).
type SessionTemplate struct {
	Week        int
	Day         int
	Name        string
	Type        SessionType
	Phase       int
	Block       string
	DurationMin int
	BaseXP      int
	WarmUp      string
	CoolDown    string
	Exercises   []ExercisePrescription
}

// SeriesRecord is one performed set. Reps and RIR are nil until observed.
type SeriesRecord struct {
	Load float64 `json:"load"`
	Reps *int    `json:"reps,omitempty"`
	RIR  *int    `json:"rir,omitempty"`
	Note string  `json:"note,omitempty"`
}

// Performed reports whether the set has observed repetitions.
func (s SeriesRecord) Performed() bool {
	return s.Reps != nil && *s.Reps > 0
}

// PrescribedExercise is an adapted exercise slot with per-set records.
type PrescribedExercise struct {
	Name         string         `json:"name"`
	Exercise     ExerciseID     `json:"exercise"`
	Sets         int            `json:"sets"`
	Reps         string         `json:"reps"`
	RIR          int            `json:"rir"`
	RestSec      int            `json:"rest_sec"`
	Tempo        string         `json:"tempo,omitempty"`
	Load         float64        `json:"load"`
	Cue          string         `json:"cue,omitempty"`
	Goal         string         `json:"goal,omitempty"`
	Technique    Technique      `json:"technique,omitempty"`
	Transitioned bool           `json:"transitioned"`
	Series       []SeriesRecord `json:"series"`
}

// SessionPrescription is a generated, mutable copy of a template adapted to
// the day's readiness and the user's ledger.
type SessionPrescription struct {
	ID             string               `json:"id"`
	Week           int                  `json:"week"`
	Day            int                  `json:"day"`
	Name           string               `json:"name"`
	Type           SessionType          `json:"type"`
	Phase          int                  `json:"phase"`
	Block          string               `json:"block"`
	DurationMin    int                  `json:"duration_min"`
	BaseXP         int                  `json:"base_xp"`
	WarmUp         string               `json:"warm_up,omitempty"`
	CoolDown       string               `json:"cool_down,omitempty"`
	Mode           ReadinessMode        `json:"mode"`
	ReadinessScore *float64             `json:"readiness_score,omitempty"`
	Recovery       bool                 `json:"recovery"`
	StartedAt      time.Time            `json:"started_at"`
	Exercises      []PrescribedExercise `json:"exercises"`
}
