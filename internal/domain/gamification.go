package domain

import "math"

// LevelTier covers the XP range [XPMin, XPMax). The last tier uses
// math.MaxInt as XPMax.
type LevelTier struct {
	Level   int
	Belt    string
	Title   string
	XPMin   int
	XPMax   int
	Unlocks []Feature
}

// Contains reports whether xp falls inside the tier.
func (t LevelTier) Contains(xp int) bool {
	return xp >= t.XPMin && xp < t.XPMax
}

// OpenEnded reports whether the tier has no upper bound.
func (t LevelTier) OpenEnded() bool {
	return t.XPMax == math.MaxInt
}

type Achievement struct {
	ID          string
	Name        string
	Description string
	XP          int
	Rarity      Rarity
	Category    AchievementCategory
}

type Challenge struct {
	ID          string
	Name        string
	Description string
	XP          int
}

// WeeklyChallenge is the challenge set of one program week. Bonus is added
// when every challenge of the week is completed.
type WeeklyChallenge struct {
	Week       int
	Name       string
	Challenges []Challenge
	Bonus      int
}

type QuestObjective struct {
	ID          string
	Description string
}

type MonthlyQuest struct {
	Month       int
	Name        string
	Description string
	Objectives  []QuestObjective
	RewardXP    int
	Badge       string
}

type IntensificationTechnique struct {
	ID            Technique
	Name          string
	RequiredLevel int
	Description   string
	Usage         string
}

// SecurityAlert is a transient advisory produced by the pattern detector.
type SecurityAlert struct {
	Kind        AlertKind
	Message     string
	Exercise    ExerciseID
	Adjustments AlertAdjustments
	Suggestions []string
	// Blocking alerts must be confirmed before a session can start.
	Blocking bool
}

// AlertAdjustments are suggested numeric changes. Zero values mean "none".
type AlertAdjustments struct {
	VolumeMultiplier    float64
	IntensityMultiplier float64
	LoadReduction       float64
	BonusXP             int
	Badge               string
}
