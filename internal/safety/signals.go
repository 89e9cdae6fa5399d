// Package safety scans training history for overtraining, plateau and
// stagnation patterns. Checks are pure and only return advisories.
package safety

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/apex/internal/domain"
)

const (
	// LowReadinessWindow is how many recent samples the deload check reads.
	LowReadinessWindow = 7
	// LowReadinessCount low samples within the window force a deload.
	LowReadinessCount = 3
	// LowReadinessScore is the score below which a sample counts as low.
	LowReadinessScore = 5.0

	PlateauSessions  = 2
	PlateauRIRMargin = 2
	PlateauReduction = 0.05

	StagnationWeeks = 4
)

// DeloadAdjustments are carried by the mandatory-deload alert.
var DeloadAdjustments = domain.AlertAdjustments{
	VolumeMultiplier:    0.6,
	IntensityMultiplier: 0.8,
	BonusXP:             500,
	Badge:               "Prevention Sage",
}

// StagnationSuggestions are the remedies offered for prolonged stagnation.
var StagnationSuggestions = []string{
	"Change the exercise variant",
	"Modify the sets/reps scheme",
	"Check technique (film it if possible)",
	"Increase frequency or volume",
}

// CheckRepeatedLowReadiness raises a blocking deload alert when at least
// three of the last seven samples scored below 5.
func CheckRepeatedLowReadiness(history []domain.ReadinessSample) *domain.SecurityAlert {
	recent := history[max(0, len(history)-LowReadinessWindow):]
	low := 0
	for _, s := range recent {
		if s.Score < LowReadinessScore {
			low++
		}
	}
	if low < LowReadinessCount {
		return nil
	}
	return &domain.SecurityAlert{
		Kind:        domain.AlertMandatoryDeload,
		Message:     fmt.Sprintf("%d low readiness days in the last %d. Deload week is mandatory.", low, len(recent)),
		Adjustments: DeloadAdjustments,
		Blocking:    true,
	}
}

// CheckPlateau flags an exercise whose last two sessions both ended more
// than two reps in reserve above target.
func CheckPlateau(id domain.ExerciseID, history []domain.ExerciseHistoryEntry) *domain.SecurityAlert {
	if len(history) < PlateauSessions {
		return nil
	}
	for _, e := range history[len(history)-PlateauSessions:] {
		if e.AvgRIR <= float64(e.TargetRIR+PlateauRIRMargin) {
			return nil
		}
	}
	return &domain.SecurityAlert{
		Kind:        domain.AlertPerformancePlateau,
		Message:     fmt.Sprintf("Plateau detected on %s. Reduce the load by 5%%.", id),
		Exercise:    id,
		Adjustments: domain.AlertAdjustments{LoadReduction: PlateauReduction},
	}
}

// CheckStagnation flags an exercise without a ledger improvement for four
// weeks or more.
func CheckStagnation(id domain.ExerciseID, progress domain.ExerciseProgress) *domain.SecurityAlert {
	if progress.WeeksWithoutProgress < StagnationWeeks {
		return nil
	}
	return &domain.SecurityAlert{
		Kind:        domain.AlertProlongedStagnation,
		Message:     fmt.Sprintf("No progress on %s for %d weeks.", id, progress.WeeksWithoutProgress),
		Exercise:    id,
		Suggestions: slices.Clone(StagnationSuggestions),
	}
}

// History is the input of DetectSignals.
type History struct {
	Readiness []domain.ReadinessSample
	Exercises map[domain.ExerciseID][]domain.ExerciseHistoryEntry
	Progress  map[domain.ExerciseID]domain.ExerciseProgress
}

// HistoryOf extracts the history a profile carries.
func HistoryOf(p *domain.UserProfile) History {
	return History{Readiness: p.ReadinessHistory, Exercises: p.ExerciseHistory, Progress: p.Progress}
}

// DetectSignals runs every check. The deload alert comes first, then
// per-exercise alerts ordered by exercise id.
func DetectSignals(h History) []domain.SecurityAlert {
	var alerts []domain.SecurityAlert
	if a := CheckRepeatedLowReadiness(h.Readiness); a != nil {
		alerts = append(alerts, *a)
	}
	for _, id := range sortedKeys(h.Exercises) {
		if a := CheckPlateau(id, h.Exercises[id]); a != nil {
			alerts = append(alerts, *a)
		}
	}
	for _, id := range sortedKeys(h.Progress) {
		if a := CheckStagnation(id, h.Progress[id]); a != nil {
			alerts = append(alerts, *a)
		}
	}
	return alerts
}

// Blocking returns the first alert that must be confirmed before a session
// starts, if any.
func Blocking(alerts []domain.SecurityAlert) (domain.SecurityAlert, bool) {
	for _, a := range alerts {
		if a.Blocking {
			return a, true
		}
	}
	return domain.SecurityAlert{}, false
}

func sortedKeys[V any](m map[domain.ExerciseID]V) []domain.ExerciseID {
	keys := make([]domain.ExerciseID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
