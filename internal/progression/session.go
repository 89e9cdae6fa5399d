package progression

import (
	"time"

	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/alexanderramin/apex/internal/domain"
)

// HistoryPerExercise bounds the per-exercise history kept for plateau
// detection.
const HistoryPerExercise = 12

// SessionResult is what the athlete reports when finishing a session.
type SessionResult struct {
	PerfectTechnique bool
	PersonalRecord   bool
	MentalPrep       bool
	Notes            string
	CompletedAt      time.Time
}

// SessionAward summarizes what a completed session earned.
type SessionAward struct {
	SessionXP int
	Flags     BonusFlags
	Improved  []domain.ExerciseID
	Award
}

// CompleteSession folds a finished prescription into a copy of the profile:
// ledger records, per-exercise history, stagnation counters, streak, XP,
// achievements and the program position. It returns the new profile and the
// history entry for the session.
func CompleteSession(cat *catalog.Catalog, p *domain.UserProfile, rx *domain.SessionPrescription, res SessionResult) (*domain.UserProfile, *domain.SessionLog, SessionAward) {
	c := p.Clone()
	date := res.CompletedAt.Format(time.DateOnly)

	flags := BonusFlags{
		PerfectTechnique: res.PerfectTechnique,
		PersonalRecord:   res.PersonalRecord,
		MentalPrep:       res.MentalPrep,
		Streak:           p.Streak,
	}

	var improved []domain.ExerciseID
	for _, ex := range rx.Exercises {
		def, ok := cat.Exercise(ex.Exercise)
		if !ok || !recordsLedger(def) {
			continue
		}
		best, ok := bestValue(def, ex.Series)
		if !ok {
			continue
		}
		key := def.LedgerKey()
		better := recordValue(c, key, best, def.LowerIsBetter)
		if better {
			improved = append(improved, key)
			if def.Progression.Kind.TracksLoad() {
				flags.LoadProgression = true
			} else {
				flags.NewRepMax = true
			}
		}
		trackProgress(c, key, rx.Week, better)
		if avg, ok := averageRIR(ex.Series); ok {
			appendHistory(c, key, domain.ExerciseHistoryEntry{
				Date: date, Week: rx.Week, AvgRIR: avg, TargetRIR: ex.RIR, BestValue: best,
			})
		}
	}

	xp := ComputeSessionXP(rx.BaseXP, rx.ReadinessScore, flags)

	c.Streak++
	c.StreakMax = max(c.StreakMax, c.Streak)
	completed := res.CompletedAt
	c.LastSessionAt = &completed
	c.Week, c.Day = nextSlot(rx.Week, rx.Day)
	c.Phase = catalog.PhaseForWeek(c.Week)

	c, award := ApplyXP(cat, c, xp)

	entry := &domain.SessionLog{
		ID:             rx.ID,
		Date:           date,
		Week:           rx.Week,
		Day:            rx.Day,
		Name:           rx.Name,
		Type:           rx.Type,
		Mode:           rx.Mode,
		ReadinessScore: rx.ReadinessScore,
		XP:             xp,
		DurationMin:    rx.DurationMin,
		Exercises:      rx.Clone().Exercises,
		Notes:          res.Notes,
		CreatedAt:      res.CompletedAt,
	}
	return c, entry, SessionAward{SessionXP: xp, Flags: flags, Improved: improved, Award: award}
}

// LogOutcome describes a logged test or metric result.
type LogOutcome struct {
	Key      domain.ExerciseID
	Previous float64
	Value    float64
	Improved bool
	Award
}

// LogTest records a test or metric result into the ledger key it measures,
// honoring the direction of the measure, then re-checks achievements.
// Unknown ids leave the profile unchanged; callers validate ids against the
// catalog first.
func LogTest(cat *catalog.Catalog, p *domain.UserProfile, id domain.ExerciseID, value float64, week int) (*domain.UserProfile, LogOutcome) {
	def, ok := cat.Exercise(id)
	if !ok || value <= 0 {
		return p.Clone(), LogOutcome{Key: id, Value: value}
	}
	c := p.Clone()
	key := def.LedgerKey()
	prev, _ := c.LedgerValue(key)
	out := LogOutcome{Key: key, Previous: prev, Value: value}
	out.Improved = recordValue(c, key, value, def.LowerIsBetter)
	trackProgress(c, key, week, out.Improved)

	c, out.Award = ApplyXP(cat, c, 0)
	return c, out
}

// recordsLedger excludes conditioning and mobility work, whose series
// carry rounds and minutes rather than performance values.
func recordsLedger(def domain.ExerciseDefinition) bool {
	switch def.Category {
	case domain.CategoryCardio, domain.CategoryMobility:
		return false
	}
	return true
}

// bestValue extracts the performance value of the performed sets: the
// heaviest load for load-tracked exercises, otherwise the best rep (or
// second) count.
func bestValue(def domain.ExerciseDefinition, series []domain.SeriesRecord) (float64, bool) {
	var best float64
	found := false
	for _, s := range series {
		if !s.Performed() {
			continue
		}
		v := float64(*s.Reps)
		if def.Progression.Kind.TracksLoad() {
			v = s.Load
		}
		if v <= 0 {
			continue
		}
		switch {
		case !found:
			best = v
		case def.LowerIsBetter && v < best:
			best = v
		case !def.LowerIsBetter && v > best:
			best = v
		}
		found = true
	}
	return best, found
}

// recordValue stores v when it beats the current ledger value.
func recordValue(p *domain.UserProfile, key domain.ExerciseID, v float64, lowerIsBetter bool) bool {
	cur, ok := p.LedgerValue(key)
	if ok && ((lowerIsBetter && v >= cur) || (!lowerIsBetter && v <= cur)) {
		return false
	}
	if p.Ledger == nil {
		p.Ledger = domain.Ledger{}
	}
	p.Ledger[key] = v
	return true
}

func trackProgress(p *domain.UserProfile, key domain.ExerciseID, week int, improved bool) {
	if p.Progress == nil {
		p.Progress = map[domain.ExerciseID]domain.ExerciseProgress{}
	}
	prog, seen := p.Progress[key]
	if improved || !seen {
		p.Progress[key] = domain.ExerciseProgress{LastImprovedWeek: week}
		return
	}
	prog.WeeksWithoutProgress = max(0, week-prog.LastImprovedWeek)
	p.Progress[key] = prog
}

func averageRIR(series []domain.SeriesRecord) (float64, bool) {
	sum, n := 0, 0
	for _, s := range series {
		if s.Performed() && s.RIR != nil {
			sum += *s.RIR
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

func appendHistory(p *domain.UserProfile, key domain.ExerciseID, e domain.ExerciseHistoryEntry) {
	if p.ExerciseHistory == nil {
		p.ExerciseHistory = map[domain.ExerciseID][]domain.ExerciseHistoryEntry{}
	}
	h := append(p.ExerciseHistory[key], e)
	if len(h) > HistoryPerExercise {
		h = h[len(h)-HistoryPerExercise:]
	}
	p.ExerciseHistory[key] = h
}

// nextSlot advances one day, rolling over to the next week. The last slot of
// the program is terminal.
func nextSlot(week, day int) (int, int) {
	if day < catalog.DaysPerWeek {
		return week, day + 1
	}
	if week >= catalog.ProgramWeeks {
		return catalog.ProgramWeeks, catalog.DaysPerWeek
	}
	return week + 1, 1
}
