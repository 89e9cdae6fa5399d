package catalog

import (
	"math"

	"github.com/alexanderramin/apex/internal/domain"
)

type tierRow struct {
	belt    string
	title   string
	xpMin   int
	unlocks []domain.Feature
}

var tierRows = []tierRow{
	{"White", "Initiate", 0, nil},
	{"White", "Apprentice", 501, nil},
	{"White", "Novice", 1001, nil},
	{"White", "Confirmed Beginner", 1501, nil},
	{"Yellow", "Practitioner", 2001, []domain.Feature{domain.FeatureDropSets, domain.FeaturePremiumJournal}},
	{"Yellow", "Diligent Student", 2751, nil},
	{"Yellow", "Disciple", 3501, nil},
	{"Orange", "Fighter", 4501, []domain.Feature{
		domain.FeatureRestPause, domain.FeaturePerformanceTests, domain.FeaturePhase2Access,
	}},
	{"Orange", "Emerging Warrior", 5501, nil},
	{"Orange", "Warrior", 6751, nil},
	{"Green", "Athlete", 8001, []domain.Feature{
		domain.FeatureClusters, domain.FeatureContrastTraining, domain.FeatureUndulatingPeriods,
	}},
	{"Green", "Champion", 9501, nil},
	{"Green", "Veteran", 11001, nil},
	{"Blue", "Expert", 13001, []domain.Feature{domain.FeaturePhase3Access, domain.FeatureMuscleSpecialization}},
	{"Blue", "Aspiring Master", 15001, nil},
	{"Blue", "Master", 17501, nil},
	{"Brown", "Grand Master", 20001, []domain.Feature{domain.FeatureCustomVariants, domain.FeatureOwnProgramming}},
	{"Brown", "Legend", 23001, nil},
	{"Brown", "Myth", 26501, nil},
	{"Black", "Phoenix", 30001, []domain.Feature{domain.FeatureAllContent, domain.FeaturePhoenixBadge}},
	{"Black", "Immortal", 35001, nil},
}

// defaultTiers builds the level table. Each tier ends where the next one
// starts, so every non-negative XP total resolves to exactly one tier.
func defaultTiers() []domain.LevelTier {
	tiers := make([]domain.LevelTier, len(tierRows))
	for i, row := range tierRows {
		xpMax := math.MaxInt
		if i+1 < len(tierRows) {
			xpMax = tierRows[i+1].xpMin
		}
		tiers[i] = domain.LevelTier{
			Level:   i + 1,
			Belt:    row.belt,
			Title:   row.title,
			XPMin:   row.xpMin,
			XPMax:   xpMax,
			Unlocks: row.unlocks,
		}
	}
	return tiers
}
