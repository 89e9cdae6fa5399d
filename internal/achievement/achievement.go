// Package achievement evaluates unlock predicates against a profile.
package achievement

import (
	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/alexanderramin/apex/internal/domain"
)

// Predicate reports whether a profile satisfies an achievement.
type Predicate func(p *domain.UserProfile) bool

// Rule is a named predicate.
type Rule struct {
	Name  string
	Check Predicate
}

func streakAtLeast(n int) Rule {
	return Rule{Name: "streak_at_least", Check: func(p *domain.UserProfile) bool { return p.Streak >= n }}
}

func levelAtLeast(n int) Rule {
	return Rule{Name: "level_at_least", Check: func(p *domain.UserProfile) bool { return p.Level >= n }}
}

func ledgerAtLeast(id domain.ExerciseID, n float64) Rule {
	return Rule{Name: "ledger_at_least", Check: func(p *domain.UserProfile) bool {
		v, ok := p.LedgerValue(id)
		return ok && v >= n
	}}
}

func ledgerAtMost(id domain.ExerciseID, n float64) Rule {
	return Rule{Name: "ledger_at_most", Check: func(p *domain.UserProfile) bool {
		v, ok := p.LedgerValue(id)
		return ok && v <= n
	}}
}

// bodyweightRatio compares the best of several ledger entries against a
// multiple of bodyweight. Profiles without a bodyweight never qualify.
func bodyweightRatio(ratio float64, ids ...domain.ExerciseID) Rule {
	return Rule{Name: "bodyweight_ratio", Check: func(p *domain.UserProfile) bool {
		if p.BodyweightKg <= 0 {
			return false
		}
		var best float64
		for _, id := range ids {
			if v, ok := p.LedgerValue(id); ok && v > best {
				best = v
			}
		}
		return best > 0 && best >= ratio*p.BodyweightKg
	}}
}

// never marks achievements that have no unlock rule yet.
var never = Rule{Name: "never", Check: func(*domain.UserProfile) bool { return false }}

var bench = []domain.ExerciseID{domain.DumbbellBench, domain.BarbellBench}

// Rules maps every catalog achievement id to its predicate. The table must
// stay exhaustive: achievements without a rule are listed with never.
var Rules = map[string]Rule{
	"first_blood":  streakAtLeast(1),
	"week_warrior": streakAtLeast(5),
	"journaler":    never,
	"early_bird":   never,

	"iron_initiate":    bodyweightRatio(0.5, bench...),
	"iron_warrior":     bodyweightRatio(0.75, bench...),
	"iron_legend":      bodyweightRatio(1, bench...),
	"iron_titan":       bodyweightRatio(1.25, bench...),
	"squat_apprentice": bodyweightRatio(0.75, domain.BackSquat),
	"squat_master":     bodyweightRatio(1.25, domain.BackSquat),
	"squat_god":        bodyweightRatio(1.75, domain.BackSquat),

	"first_pull":       ledgerAtLeast(domain.StrictPullup, 1),
	"pull_warrior":     ledgerAtLeast(domain.StrictPullup, 10),
	"pull_beast":       ledgerAtLeast(domain.StrictPullup, 20),
	"weighted_warrior": never,
	"gravity_defier":   never,

	"pistol_apprentice":  ledgerAtLeast(domain.PistolSquat, 1),
	"pistol_master":      ledgerAtLeast(domain.PistolSquat, 5),
	"handstand_60":       ledgerAtLeast(domain.HandstandHold, 60),
	"hspu_initiate":      never,
	"muscle_up_achieved": ledgerAtLeast(domain.MuscleUp, 1),

	"plank_solid": ledgerAtLeast(domain.PlankMaxSec, 90),
	"plank_iron":  ledgerAtLeast(domain.PlankMaxSec, 180),
	"hang_tough":  never,
	"hang_master": never,

	"cardio_initiate": ledgerAtMost(domain.Bike2000mSec, 600),
	"cardio_warrior":  ledgerAtMost(domain.Bike2000mSec, 480),
	"cardio_beast":    ledgerAtMost(domain.Bike2000mSec, 360),
	"burpee_warrior":  never,

	"streak_10":       streakAtLeast(10),
	"streak_25":       streakAtLeast(25),
	"streak_50":       streakAtLeast(50),
	"monthly_perfect": never,

	"statham_status":  never,
	"bruce_lee_speed": never,
	"body_recomp":     never,

	"recovery_sage":     never,
	"technique_perfect": never,
	"neuro_master":      never,
	"phoenix_complete":  levelAtLeast(20),
	"immortal_status":   levelAtLeast(21),
}

// Check returns the ids of achievements that the profile newly satisfies,
// in catalog order. Already unlocked achievements are never re-evaluated.
func Check(cat *catalog.Catalog, p *domain.UserProfile) []string {
	var unlocked []string
	for _, a := range cat.Achievements() {
		if p.HasAchievement(a.ID) {
			continue
		}
		rule, ok := Rules[a.ID]
		if !ok {
			continue
		}
		if rule.Check(p) {
			unlocked = append(unlocked, a.ID)
		}
	}
	return unlocked
}

// Missing returns catalog achievements that have no entry in Rules.
func Missing(cat *catalog.Catalog) []string {
	var missing []string
	for _, a := range cat.Achievements() {
		if _, ok := Rules[a.ID]; !ok {
			missing = append(missing, a.ID)
		}
	}
	return missing
}
