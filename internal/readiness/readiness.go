// Package readiness turns the daily self-assessment into a score and an
// adaptation mode.
package readiness

import (
	"math"

	"github.com/alexanderramin/apex/internal/domain"
)

// Mode thresholds. Each mode covers [threshold, next threshold).
const (
	PerformanceThreshold = 8.0
	StandardThreshold    = 6.5
	AdaptedThreshold     = 5.0
)

// GripDropLimit is the relative grip-strength drop above which the score is
// penalized by GripPenalty.
const (
	GripDropLimit = 0.15
	GripPenalty   = 1.0
)

// Adaptation factors applied to ADAPTED sessions.
const (
	AdaptedSetsFactor     = 0.85
	AdaptedLoadFactor     = 0.9
	AdaptedRIRIncrease    = 1
	AdaptedDurationFactor = 0.8
)

// Input is one day's self-assessment. Grip is optional: zero means no test.
type Input struct {
	Components   domain.ReadinessComponents
	Grip         float64
	GripBaseline float64
}

// Result is the evaluated score and its mode.
type Result struct {
	Score float64
	Mode  domain.ReadinessMode
	// GripPenalized is set when the grip drop lowered the score.
	GripPenalized bool
}

// Evaluate computes the readiness score and mode. The score is the mean of
// the four ratings, lowered by one point (never below 1) when the grip test
// dropped more than 15% from baseline, rounded to one decimal.
func Evaluate(in Input) Result {
	c := in.Components
	score := (c.Sleep + c.Energy + c.Calm + c.PainAbsence) / 4

	var penalized bool
	if in.GripBaseline > 0 && in.Grip > 0 {
		drop := (in.GripBaseline - in.Grip) / in.GripBaseline
		if drop > GripDropLimit {
			score = math.Max(1, score-GripPenalty)
			penalized = true
		}
	}
	score = math.Max(1, score)
	score = math.Round(score*10) / 10

	return Result{Score: score, Mode: ModeFor(&score), GripPenalized: penalized}
}

// ModeFor maps a score to its mode. A nil score is UNEVALUATED.
func ModeFor(score *float64) domain.ReadinessMode {
	if score == nil {
		return domain.ModeUnevaluated
	}
	s := *score
	switch {
	case s >= PerformanceThreshold:
		return domain.ModePerformance
	case s >= StandardThreshold:
		return domain.ModeStandard
	case s >= AdaptedThreshold:
		return domain.ModeAdapted
	default:
		return domain.ModeRecovery
	}
}

// XPBonus is the flat session XP bonus granted by a mode.
func XPBonus(mode domain.ReadinessMode) int {
	switch mode {
	case domain.ModePerformance, domain.ModeAdapted:
		return 25
	case domain.ModeRecovery:
		return 50
	default:
		return 0
	}
}

// AdaptedSets scales a set count for ADAPTED sessions, floored, minimum 1.
func AdaptedSets(sets int) int {
	return max(1, int(math.Floor(float64(sets)*AdaptedSetsFactor)))
}

// AdaptedLoad scales a load for ADAPTED sessions, rounded to 0.1 kg.
func AdaptedLoad(load float64) float64 {
	return math.Round(load*AdaptedLoadFactor*10) / 10
}

// AdaptedDuration scales a duration in minutes for ADAPTED sessions.
func AdaptedDuration(minutes int) int {
	return int(math.Round(float64(minutes) * AdaptedDurationFactor))
}

// Advice is the coaching line shown for each mode.
func Advice(mode domain.ReadinessMode) string {
	switch mode {
	case domain.ModePerformance:
		return "Go for records. Full intensity, exact programmed RIR."
	case domain.ModeStandard:
		return "Normal program, keep one rep in reserve beyond the target."
	case domain.ModeAdapted:
		return "Adapted protocol: loads -10%, volume -15%, RIR +1."
	case domain.ModeRecovery:
		return "Stop training. 20 min gentle mobility or full rest."
	default:
		return "Rate your readiness to adapt the session."
	}
}
