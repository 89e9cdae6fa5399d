// Package progression turns completed work into XP, levels, achievements and
// ledger updates. Every function returns a new profile and leaves its input
// untouched.
package progression

import (
	"math"
	"slices"

	"github.com/alexanderramin/apex/internal/achievement"
	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/readiness"
)

// Flat session bonuses.
const (
	BonusPerfectTechnique = 50
	BonusPersonalRecord   = 200
	BonusNewRepMax        = 100
	BonusLoadProgression  = 25
	BonusMentalPrep       = 30
)

// OnboardingXP is awarded once when a profile is created.
const OnboardingXP = 500

// BonusFlags describes what happened during a session. Streak is the number
// of consecutive sessions completed before this one.
type BonusFlags struct {
	PerfectTechnique bool
	PersonalRecord   bool
	NewRepMax        bool
	LoadProgression  bool
	MentalPrep       bool
	Streak           int
}

// StreakMultiplier returns the XP factor for a streak length.
func StreakMultiplier(streak int) float64 {
	switch {
	case streak >= 10:
		return 2.0
	case streak >= 5:
		return 1.5
	default:
		return 1.0
	}
}

// ComputeSessionXP adds the readiness bonus and the flag bonuses to baseXP,
// then applies the streak multiplier and rounds.
func ComputeSessionXP(baseXP int, score *float64, flags BonusFlags) int {
	total := baseXP + readiness.XPBonus(readiness.ModeFor(score))
	if flags.PerfectTechnique {
		total += BonusPerfectTechnique
	}
	if flags.PersonalRecord {
		total += BonusPersonalRecord
	}
	if flags.NewRepMax {
		total += BonusNewRepMax
	}
	if flags.LoadProgression {
		total += BonusLoadProgression
	}
	if flags.MentalPrep {
		total += BonusMentalPrep
	}
	return int(math.Round(float64(total) * StreakMultiplier(flags.Streak)))
}

// ComputeChallengeXP sums the XP of the completed challenges that belong to
// the week. The week bonus is added when every challenge is completed.
func ComputeChallengeXP(cat *catalog.Catalog, week int, completed []string) int {
	wc, ok := cat.WeeklyChallenge(week)
	if !ok {
		return 0
	}
	total, done := 0, 0
	for _, c := range wc.Challenges {
		if slices.Contains(completed, c.ID) {
			total += c.XP
			done++
		}
	}
	if done == len(wc.Challenges) && wc.Bonus > 0 {
		total += wc.Bonus
	}
	return total
}

// ComputeQuestXP returns the quest reward when every objective of the month
// is completed, zero otherwise.
func ComputeQuestXP(cat *catalog.Catalog, month int, completed []string) int {
	q, ok := cat.Quest(month)
	if !ok {
		return 0
	}
	for _, o := range q.Objectives {
		if !slices.Contains(completed, o.ID) {
			return 0
		}
	}
	return q.RewardXP
}

// Award is what ApplyXP granted on top of the requested XP.
type Award struct {
	Unlocked      []string
	AchievementXP int
	LevelBefore   int
	LevelAfter    int
}

// LeveledUp reports whether the award crossed at least one tier.
func (a Award) LeveledUp() bool { return a.LevelAfter > a.LevelBefore }

// ApplyXP adds xp to a copy of p, re-resolves the level, and unlocks every
// achievement the new state satisfies. Achievement rewards are added in
// turn, repeating until no further achievement unlocks. Negative xp is
// ignored.
func ApplyXP(cat *catalog.Catalog, p *domain.UserProfile, xp int) (*domain.UserProfile, Award) {
	c := p.Clone()
	award := Award{LevelBefore: c.Level}
	if xp > 0 {
		c.XP += xp
	}
	for {
		setLevel(cat, c)
		unlocked := achievement.Check(cat, c)
		if len(unlocked) == 0 {
			break
		}
		for _, id := range unlocked {
			c.Achievements = append(c.Achievements, id)
			if a, ok := cat.Achievement(id); ok {
				c.XP += a.XP
				award.AchievementXP += a.XP
			}
		}
		award.Unlocked = append(award.Unlocked, unlocked...)
	}
	award.LevelAfter = c.Level
	return c, award
}

func setLevel(cat *catalog.Catalog, p *domain.UserProfile) {
	tier := ResolveLevel(cat, p.XP)
	if tier.Level < p.Level {
		return
	}
	p.Level = tier.Level
	p.Belt = tier.Belt
	p.Title = tier.Title
}
