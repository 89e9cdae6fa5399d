package safety

import (
	"fmt"

	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/readiness"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is one advisory line for the day.
type Recommendation struct {
	Kind     string
	Message  string
	Priority Priority
}

// LongStreak is the streak length that triggers a recovery reminder.
const LongStreak = 10

// Recommendations builds the day's advisories from the readiness score, the
// readiness history and the current streak.
func Recommendations(score *float64, history []domain.ReadinessSample, streak int) []Recommendation {
	var out []Recommendation
	switch readiness.ModeFor(score) {
	case domain.ModeRecovery:
		out = append(out, Recommendation{
			Kind:     "alert",
			Message:  "Low readiness: recovery first. Gentle mobility or full rest.",
			Priority: PriorityHigh,
		})
	case domain.ModePerformance:
		out = append(out, Recommendation{
			Kind:     "performance",
			Message:  "High readiness: optimal conditions to chase records.",
			Priority: PriorityMedium,
		})
	}
	if a := CheckRepeatedLowReadiness(history); a != nil {
		out = append(out, Recommendation{Kind: "alert", Message: a.Message, Priority: PriorityHigh})
	}
	if streak >= LongStreak {
		out = append(out, Recommendation{
			Kind:     "consistency",
			Message:  fmt.Sprintf("%d session streak. Remember to recover.", streak),
			Priority: PriorityLow,
		})
	}
	return out
}
