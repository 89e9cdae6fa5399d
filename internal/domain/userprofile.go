package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// Ledger maps an exercise, test, or metric to the best known value.
type Ledger map[ExerciseID]float64

// ReadinessComponents are the four daily self-ratings, each in [1,10].
type ReadinessComponents struct {
	Sleep       float64 `json:"sleep"`
	Energy      float64 `json:"energy"`
	Calm        float64 `json:"calm"`
	PainAbsence float64 `json:"pain_absence"`
}

// ReadinessSample is the readiness evaluation of one calendar day.
type ReadinessSample struct {
	Date       string              `json:"date"`           // YYYY-MM-DD
	Score      float64             `json:"score"`
	Components ReadinessComponents `json:"components"`
	Grip       float64             `json:"grip,omitempty"`
}

// ExerciseHistoryEntry summarizes one exercise within one completed session.
type ExerciseHistoryEntry struct {
	Date      string  `json:"date"`
	Week      int     `json:"week"`
	AvgRIR    float64 `json:"avg_rir"`
	TargetRIR int     `json:"target_rir"`
	BestValue float64 `json:"best_value"`
}

// ExerciseProgress tracks how long an exercise has gone without a ledger improvement.
type ExerciseProgress struct {
	LastImprovedWeek     int `json:"last_improved_week"`
	WeeksWithoutProgress int `json:"weeks_without_progress"`
}

type BodyMeasurement struct {
	Date   string             `json:"date"`
	Values map[string]float64 `json:"values"`
}

type Preferences struct {
	WeightUnit      string `json:"weight_unit"`
	Notifications   bool   `json:"notifications"`
	AutoProgression bool   `json:"auto_progression"`
	MentalPrep      bool   `json:"mental_prep"`
}

// UserProfile is the complete single-user state. Engine functions treat it as
// a value: they clone before modifying and return the new profile.
type UserProfile struct {
	Name         string  `json:"name"`
	Age          int     `json:"age"`
	HeightCm     float64 `json:"height_cm"`
	BodyweightKg float64 `json:"bodyweight_kg"`
	GripBaseline float64 `json:"grip_baseline"`

	XP        int    `json:"xp"`
	Level     int    `json:"level"`
	Belt      string `json:"belt"`
	Title     string `json:"title"`
	Streak    int    `json:"streak"`
	StreakMax int    `json:"streak_max"`
	Phase     int    `json:"phase"`
	Week      int    `json:"week"`
	Day       int    `json:"day"`

	Ledger              Ledger                                `json:"ledger"`
	Achievements        []string                              `json:"achievements"`
	CompletedChallenges []string                              `json:"completed_challenges"`
	CompletedQuests     []int                                 `json:"completed_quests"`
	ReadinessHistory    []ReadinessSample                     `json:"readiness_history"`
	ExerciseHistory     map[ExerciseID][]ExerciseHistoryEntry `json:"exercise_history"`
	Progress            map[ExerciseID]ExerciseProgress       `json:"progress"`
	Measurements        []BodyMeasurement                     `json:"measurements"`
	Preferences         Preferences                           `json:"preferences"`

	Onboarded     bool       `json:"onboarded"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	LastSessionAt *time.Time `json:"last_session_at,omitempty"`
}

// HasAchievement reports whether id is already unlocked.
func (p *UserProfile) HasAchievement(id string) bool {
	return slices.Contains(p.Achievements, id)
}

// ChallengeKey scopes a challenge id to its week; ids repeat across weeks.
func ChallengeKey(week int, id string) string {
	return fmt.Sprintf("w%d/%s", week, id)
}

// ChallengesDone returns the ids of the completed challenges of week.
func (p *UserProfile) ChallengesDone(week int) []string {
	prefix := ChallengeKey(week, "")
	var ids []string
	for _, k := range p.CompletedChallenges {
		if id, ok := strings.CutPrefix(k, prefix); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// LedgerValue returns the tracked value for id and whether one exists.
// Zero is treated as "not tracked".
func (p *UserProfile) LedgerValue(id ExerciseID) (float64, bool) {
	v, ok := p.Ledger[id]
	return v, ok && v > 0
}

// LatestReadiness returns the most recent readiness sample, if any.
func (p *UserProfile) LatestReadiness() (ReadinessSample, bool) {
	if len(p.ReadinessHistory) == 0 {
		return ReadinessSample{}, false
	}
	return p.ReadinessHistory[len(p.ReadinessHistory)-1], true
}

// Clone returns a deep copy that shares no mutable state with p.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	c := *p
	c.Ledger = maps.Clone(p.Ledger)
	c.Achievements = slices.Clone(p.Achievements)
	c.CompletedChallenges = slices.Clone(p.CompletedChallenges)
	c.CompletedQuests = slices.Clone(p.CompletedQuests)
	c.ReadinessHistory = slices.Clone(p.ReadinessHistory)

	if p.ExerciseHistory != nil {
		c.ExerciseHistory = make(map[ExerciseID][]ExerciseHistoryEntry, len(p.ExerciseHistory))
		for k, v := range p.ExerciseHistory {
			c.ExerciseHistory[k] = slices.Clone(v)
		}
	}
	c.Progress = maps.Clone(p.Progress)

	if p.Measurements != nil {
		c.Measurements = make([]BodyMeasurement, len(p.Measurements))
		for i, m := range p.Measurements {
			c.Measurements[i] = BodyMeasurement{Date: m.Date, Values: maps.Clone(m.Values)}
		}
	}
	if p.CreatedAt != nil {
		t := *p.CreatedAt
		c.CreatedAt = &t
	}
	if p.LastSessionAt != nil {
		t := *p.LastSessionAt
		c.LastSessionAt = &t
	}
	return &c
}

// Clone returns a deep copy of the prescription.
func (s *SessionPrescription) Clone() *SessionPrescription {
	if s == nil {
		return nil
	}
	c := *s
	if s.ReadinessScore != nil {
		v := *s.ReadinessScore
		c.ReadinessScore = &v
	}
	c.Exercises = make([]PrescribedExercise, len(s.Exercises))
	for i, ex := range s.Exercises {
		ex.Series = slices.Clone(ex.Series)
		for j := range ex.Series {
			ex.Series[j] = ex.Series[j].clone()
		}
		c.Exercises[i] = ex
	}
	return &c
}

func (s SeriesRecord) clone() SeriesRecord {
	if s.Reps != nil {
		v := *s.Reps
		s.Reps = &v
	}
	if s.RIR != nil {
		v := *s.RIR
		s.RIR = &v
	}
	return s
}
