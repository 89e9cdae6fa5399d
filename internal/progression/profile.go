package progression

import (
	"time"

	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/alexanderramin/apex/internal/domain"
)

// Identity holds the onboarding fields a profile is created from.
type Identity struct {
	Name         string
	Age          int
	HeightCm     float64
	BodyweightKg float64
	GripBaseline float64
	Preferences  domain.Preferences
}

// NewProfile returns a fresh profile at week 1 day 1 with the default
// ledger and zero XP. Onboarding XP is granted separately through ApplyXP.
func NewProfile(cat *catalog.Catalog, id Identity, now time.Time) *domain.UserProfile {
	tier := ResolveLevel(cat, 0)
	prefs := id.Preferences
	if prefs.WeightUnit == "" {
		prefs.WeightUnit = "kg"
	}
	created := now
	return &domain.UserProfile{
		Name:                id.Name,
		Age:                 id.Age,
		HeightCm:            id.HeightCm,
		BodyweightKg:        id.BodyweightKg,
		GripBaseline:        id.GripBaseline,
		Level:               tier.Level,
		Belt:                tier.Belt,
		Title:               tier.Title,
		Phase:               catalog.PhaseForWeek(1),
		Week:                1,
		Day:                 1,
		Ledger:              catalog.DefaultLedger(),
		Achievements:        []string{},
		CompletedChallenges: []string{},
		CompletedQuests:     []int{},
		ExerciseHistory:     map[domain.ExerciseID][]domain.ExerciseHistoryEntry{},
		Progress:            map[domain.ExerciseID]domain.ExerciseProgress{},
		Preferences:         prefs,
		Onboarded:           true,
		CreatedAt:           &created,
	}
}
