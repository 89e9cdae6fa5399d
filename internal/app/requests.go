package app

import (
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/importer"
)

type OnboardRequest struct {
	Name         string
	Age          int
	HeightCm     float64
	BodyweightKg float64
	GripBaseline float64
	Preferences  domain.Preferences
}

type ImportRequest struct {
	Schema *importer.ImportSchema
}

type ReadinessRequest struct {
	Components domain.ReadinessComponents
	// Grip is today's grip test in kg. Zero means no test.
	Grip float64
}

type StartSessionRequest struct {
	// Confirmed acknowledges a RECOVERY day or a mandatory deload.
	Confirmed bool
}

// SeriesUpdate fills one performed set. Exercise and Set are zero-based.
// Nil fields keep their current value.
type SeriesUpdate struct {
	Exercise int
	Set      int
	Reps     *int
	Load     *float64
	RIR      *int
	Note     *string
}

type FinishSessionRequest struct {
	PerfectTechnique bool
	PersonalRecord   bool
	MentalPrep       bool
	Notes            string
}

type LogTestRequest struct {
	Exercise domain.ExerciseID
	Value    float64
}

type ChallengeRequest struct {
	Week int
	IDs  []string
}

type QuestRequest struct {
	Month      int
	Objectives []string
}
