package app

import (
	"time"

	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/progression"
	"github.com/alexanderramin/apex/internal/readiness"
	"github.com/alexanderramin/apex/internal/safety"
)

type OnboardResponse struct {
	Profile *domain.UserProfile
	Award   progression.Award
}

type ImportResponse struct {
	Profile  *domain.UserProfile
	Award    progression.Award
	Sessions int
}

// ExportDocument is the full athlete record written by `apex export`.
type ExportDocument struct {
	Version    string               `json:"version"`
	ExportedAt time.Time            `json:"exported_at"`
	Profile    *domain.UserProfile  `json:"profile"`
	Sessions   []*domain.SessionLog `json:"sessions"`
}

type ReadinessResponse struct {
	Result          readiness.Result
	Advice          string
	Recommendations []safety.Recommendation
	Alerts          []domain.SecurityAlert
}

type FinishSessionResponse struct {
	Log     *domain.SessionLog
	Award   progression.SessionAward
	Profile *domain.UserProfile
}

type LogTestResponse struct {
	Outcome progression.LogOutcome
	Profile *domain.UserProfile
}

// RewardResponse reports XP granted for challenges or a quest. XP is zero
// when nothing new was completed.
type RewardResponse struct {
	XP       int
	Newly    []string
	Complete bool
	Award    progression.Award
	Profile  *domain.UserProfile
}

type StatusResponse struct {
	Profile         *domain.UserProfile
	Progress        progression.Progress
	Features        []domain.Feature
	Today           *domain.ReadinessSample
	Mode            domain.ReadinessMode
	Alerts          []domain.SecurityAlert
	Recommendations []safety.Recommendation
	Active          *domain.SessionPrescription
	Next            *domain.SessionTemplate
	SessionCount    int
}
