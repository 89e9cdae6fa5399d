package testutil

import (
	"fmt"
	"maps"
	"time"

	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/google/uuid"
)

// Profile options
type ProfileOption func(*domain.UserProfile)

func WithWeek(week, day int) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Week = week
		p.Day = day
		p.Phase = catalog.PhaseForWeek(week)
	}
}

// WithLedger merges values into the profile ledger.
func WithLedger(values domain.Ledger) ProfileOption {
	return func(p *domain.UserProfile) {
		maps.Copy(p.Ledger, values)
	}
}

// WithEmptyLedger drops the default starting loads.
func WithEmptyLedger() ProfileOption {
	return func(p *domain.UserProfile) {
		p.Ledger = domain.Ledger{}
	}
}

func WithStreak(n int) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Streak = n
		p.StreakMax = max(p.StreakMax, n)
	}
}

// WithXP sets the XP total and the matching level fields.
func WithXP(xp int) ProfileOption {
	return func(p *domain.UserProfile) {
		p.XP = xp
		for _, tier := range catalog.MustLoad().Tiers() {
			if tier.Contains(xp) {
				p.Level, p.Belt, p.Title = tier.Level, tier.Belt, tier.Title
			}
		}
	}
}

func WithLevel(level int) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Level = level
	}
}

func WithBodyweight(kg float64) ProfileOption {
	return func(p *domain.UserProfile) {
		p.BodyweightKg = kg
	}
}

func WithAchievements(ids ...string) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Achievements = append(p.Achievements, ids...)
	}
}

// WithReadinessScores appends one sample per score on consecutive days
// ending today.
func WithReadinessScores(scores ...float64) ProfileOption {
	return func(p *domain.UserProfile) {
		start := time.Now().UTC().AddDate(0, 0, -len(scores)+1)
		for i, s := range scores {
			p.ReadinessHistory = append(p.ReadinessHistory, domain.ReadinessSample{
				Date:  start.AddDate(0, 0, i).Format("2006-01-02"),
				Score: s,
				Components: domain.ReadinessComponents{
					Sleep: s, Energy: s, Calm: s, PainAbsence: s,
				},
			})
		}
	}
}

// NewTestProfile returns an onboarded week 1 day 1 profile with the default
// starting ledger.
func NewTestProfile(opts ...ProfileOption) *domain.UserProfile {
	now := time.Now().UTC().Truncate(time.Second)
	p := &domain.UserProfile{
		Name:            "Test Athlete",
		Age:             35,
		HeightCm:        178,
		BodyweightKg:    80,
		Level:           1,
		Belt:            "White",
		Title:           "Initiate",
		Phase:           1,
		Week:            1,
		Day:             1,
		Ledger:          catalog.DefaultLedger(),
		Achievements:    []string{},
		ExerciseHistory: map[domain.ExerciseID][]domain.ExerciseHistoryEntry{},
		Progress:        map[domain.ExerciseID]domain.ExerciseProgress{},
		Preferences:     domain.Preferences{WeightUnit: "kg", AutoProgression: true},
		Onboarded:       true,
		CreatedAt:       &now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Session log options
type SessionLogOption func(*domain.SessionLog)

func WithLogDate(d time.Time) SessionLogOption {
	return func(l *domain.SessionLog) {
		l.Date = d.Format("2006-01-02")
		l.CreatedAt = d
	}
}

func WithLogID(id string) SessionLogOption {
	return func(l *domain.SessionLog) {
		l.ID = id
	}
}

func WithLogXP(xp int) SessionLogOption {
	return func(l *domain.SessionLog) {
		l.XP = xp
	}
}

func NewTestSessionLog(week, day int, opts ...SessionLogOption) *domain.SessionLog {
	now := time.Now().UTC().Truncate(time.Second)
	l := &domain.SessionLog{
		ID:          uuid.New().String(),
		Date:        now.Format("2006-01-02"),
		Week:        week,
		Day:         day,
		Name:        fmt.Sprintf("W%d D%d", week, day),
		Type:        domain.SessionUpper,
		Mode:        domain.ModeStandard,
		XP:          120,
		DurationMin: 60,
		CreatedAt:   now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}
