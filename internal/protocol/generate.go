// Package protocol turns a session template into the day's prescription.
package protocol

import (
	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/readiness"
)

// The fixed session that replaces any template in RECOVERY mode.
const (
	RecoveryName        = "RECOVERY MOBILITY"
	RecoveryDurationMin = 20
	RecoveryBaseXP      = 50
)

// Generate builds the prescription for (week, day). It returns nil when the
// slot has no content and is not one of the rest-day slots; callers treat
// nil as "no program defined". score may be nil (UNEVALUATED). The profile
// and the catalog are never modified.
func Generate(cat *catalog.Catalog, week, day int, score *float64, profile *domain.UserProfile) *domain.SessionPrescription {
	tpl, ok := cat.Template(week, day)
	if !ok {
		tpl, ok = catalog.RestDayTemplate(week, day)
		if !ok {
			return nil
		}
	}

	mode := readiness.ModeFor(score)
	if mode == domain.ModeRecovery {
		return recoverySession(tpl, score)
	}

	rx := fromTemplate(tpl, mode, score)
	for i := range rx.Exercises {
		ex := &rx.Exercises[i]
		if mode == domain.ModeAdapted {
			adapt(ex)
		}
		// A tracked ledger value replaces the template load, adapted or not.
		resolveLoad(cat, ex, week, profile)
		if ex.Technique != "" && !cat.TechniqueAllowed(ex.Technique, profileLevel(profile)) {
			ex.Technique = ""
		}
		ex.Series = blankSeries(ex.Sets, ex.Load)
	}
	if mode == domain.ModeAdapted {
		rx.DurationMin = readiness.AdaptedDuration(rx.DurationMin)
	}
	return rx
}

func fromTemplate(tpl domain.SessionTemplate, mode domain.ReadinessMode, score *float64) *domain.SessionPrescription {
	rx := &domain.SessionPrescription{
		Week:           tpl.Week,
		Day:            tpl.Day,
		Name:           tpl.Name,
		Type:           tpl.Type,
		Phase:          tpl.Phase,
		Block:          tpl.Block,
		DurationMin:    tpl.DurationMin,
		BaseXP:         tpl.BaseXP,
		WarmUp:         tpl.WarmUp,
		CoolDown:       tpl.CoolDown,
		Mode:           mode,
		ReadinessScore: copyScore(score),
		Exercises:      make([]domain.PrescribedExercise, len(tpl.Exercises)),
	}
	for i, p := range tpl.Exercises {
		rx.Exercises[i] = domain.PrescribedExercise{
			Name:      p.Name,
			Exercise:  p.Exercise,
			Sets:      p.Sets,
			Reps:      p.Reps,
			RIR:       p.RIR,
			RestSec:   p.RestSec,
			Tempo:     p.Tempo,
			Load:      p.Load,
			Cue:       p.Cue,
			Goal:      p.Goal,
			Technique: p.Technique,
		}
	}
	return rx
}

func recoverySession(tpl domain.SessionTemplate, score *float64) *domain.SessionPrescription {
	return &domain.SessionPrescription{
		Week:           tpl.Week,
		Day:            tpl.Day,
		Name:           RecoveryName,
		Type:           domain.SessionRecovery,
		Phase:          tpl.Phase,
		Block:          tpl.Block,
		DurationMin:    RecoveryDurationMin,
		BaseXP:         RecoveryBaseXP,
		Mode:           domain.ModeRecovery,
		ReadinessScore: copyScore(score),
		Recovery:       true,
		Exercises: []domain.PrescribedExercise{{
			Name:     "Gentle Mobility 20 min",
			Exercise: domain.GentleMobility,
			Sets:     1,
			Reps:     "20:00",
			RIR:      5,
			RestSec:  0,
			Cue:      "Joint circles, cat-cow, hip openers, deep breathing. Nothing should hurt.",
			Goal:     "Recover without adding fatigue",
			Series:   blankSeries(1, 0),
		}},
	}
}

// resolveLoad applies prerequisite gating and ledger loads to one exercise.
func resolveLoad(cat *catalog.Catalog, ex *domain.PrescribedExercise, week int, profile *domain.UserProfile) {
	def, ok := cat.Exercise(ex.Exercise)
	if !ok {
		return
	}
	if def.Prerequisites != nil {
		if !PrerequisitesMet(def.Prerequisites, week, profile) {
			return
		}
		ex.Transitioned = true
	}
	if !def.Progression.Kind.TracksLoad() || profile == nil {
		return
	}
	if v, ok := profile.LedgerValue(def.ID); ok {
		ex.Load = v
	}
}

// PrerequisitesMet reports whether every threshold is reached in the ledger
// and the week gate is open. Missing ledger values never satisfy a threshold.
func PrerequisitesMet(p *domain.Prerequisites, week int, profile *domain.UserProfile) bool {
	if p == nil {
		return true
	}
	if week < p.MinWeek {
		return false
	}
	for id, threshold := range p.Thresholds {
		if profile == nil {
			return false
		}
		v, ok := profile.LedgerValue(id)
		if !ok || v < threshold {
			return false
		}
	}
	return true
}

func adapt(ex *domain.PrescribedExercise) {
	ex.Sets = readiness.AdaptedSets(ex.Sets)
	ex.Load = readiness.AdaptedLoad(ex.Load)
	ex.RIR += readiness.AdaptedRIRIncrease
}

func blankSeries(sets int, load float64) []domain.SeriesRecord {
	series := make([]domain.SeriesRecord, sets)
	for i := range series {
		series[i] = domain.SeriesRecord{Load: load}
	}
	return series
}

func copyScore(score *float64) *float64 {
	if score == nil {
		return nil
	}
	v := *score
	return &v
}

func profileLevel(p *domain.UserProfile) int {
	if p == nil {
		return 1
	}
	return p.Level
}
