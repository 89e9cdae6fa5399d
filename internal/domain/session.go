package domain

import "time"

// SessionLog is the history entry written when a prescription is finalized.
type SessionLog struct {
	ID             string               `json:"id"`
	Date           string               `json:"date"` // YYYY-MM-DD
	Week           int                  `json:"week"`
	Day            int                  `json:"day"`
	Name           string               `json:"name"`
	Type           SessionType          `json:"type"`
	Mode           ReadinessMode        `json:"mode"`
	ReadinessScore *float64             `json:"readiness_score,omitempty"`
	XP             int                  `json:"xp"`
	DurationMin    int                  `json:"duration_min"`
	Exercises      []PrescribedExercise `json:"exercises"`
	Notes          string               `json:"notes,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}
