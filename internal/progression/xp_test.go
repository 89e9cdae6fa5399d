package progression

import (
	"testing"

	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/alexanderramin/apex/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(v float64) *float64 { return &v }

func TestComputeSessionXP(t *testing.T) {
	tests := []struct {
		name  string
		base  int
		score *float64
		flags BonusFlags
		want  int
	}{
		{"unevaluated", 120, nil, BonusFlags{}, 120},
		{"standard", 120, score(7), BonusFlags{}, 120},
		{"performance bonus", 120, score(8), BonusFlags{}, 145},
		{"adapted bonus", 120, score(5), BonusFlags{}, 145},
		{"recovery bonus", 50, score(3), BonusFlags{}, 100},
		{"all flags", 100, nil, BonusFlags{
			PerfectTechnique: true, PersonalRecord: true, NewRepMax: true, LoadProgression: true, MentalPrep: true,
		}, 505},
		{"streak 4 no multiplier", 100, nil, BonusFlags{Streak: 4}, 100},
		{"streak 5", 100, nil, BonusFlags{Streak: 5}, 150},
		{"streak 10", 100, nil, BonusFlags{Streak: 10}, 200},
		{"bonuses before multiplier", 100, score(9), BonusFlags{PersonalRecord: true, Streak: 5}, 488},
		{"rounded last", 101, nil, BonusFlags{Streak: 5}, 152},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeSessionXP(tt.base, tt.score, tt.flags))
		})
	}
}

func TestComputeChallengeXP(t *testing.T) {
	cat := catalog.MustLoad()

	assert.Equal(t, 400, ComputeChallengeXP(cat, 1, []string{"perfectionist"}))
	assert.Equal(t, 400, ComputeChallengeXP(cat, 1, []string{"perfectionist", "consistency"}), "ids from other weeks are ignored")
	assert.Equal(t, 1100, ComputeChallengeXP(cat, 1, []string{"perfectionist", "explorer", "scribe"}), "900 + 200 bonus")
	assert.Equal(t, 1100, ComputeChallengeXP(cat, 2, []string{"consistency", "progression", "mindful"}), "zero bonus week")
	assert.Equal(t, 950, ComputeChallengeXP(cat, 15, []string{"challenge1_15", "challenge2_15", "challenge3_15"}))
	assert.Equal(t, 0, ComputeChallengeXP(cat, 41, []string{"challenge1_41"}))
}

func TestComputeQuestXP(t *testing.T) {
	cat := catalog.MustLoad()
	all := []string{"sessions_16", "progression_10", "traction_progress", "journal_90"}

	assert.Equal(t, 1500, ComputeQuestXP(cat, 1, all))
	assert.Equal(t, 0, ComputeQuestXP(cat, 1, all[:3]))
	assert.Equal(t, 0, ComputeQuestXP(cat, 4, all))
}

func TestResolveLevel(t *testing.T) {
	cat := catalog.MustLoad()
	tests := []struct {
		xp    int
		level int
	}{
		{-10, 1},
		{0, 1},
		{500, 1},
		{501, 2},
		{2000, 4},
		{2001, 5},
		{35000, 20},
		{35001, 21},
		{10_000_000, 21},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, ResolveLevel(cat, tt.xp).Level, "xp %d", tt.xp)
	}
}

func TestLevelProgress(t *testing.T) {
	cat := catalog.MustLoad()

	p := LevelProgress(cat, 751)
	assert.Equal(t, 2, p.Current.Level)
	require.NotNil(t, p.Next)
	assert.Equal(t, 3, p.Next.Level)
	assert.InDelta(t, 50.0, p.Percent, 0.01)
	assert.Equal(t, 250, p.ToNext)

	top := LevelProgress(cat, 40000)
	assert.Nil(t, top.Next)
	assert.Equal(t, 100.0, top.Percent)
}

func TestUnlockedFeatures(t *testing.T) {
	cat := catalog.MustLoad()
	assert.Empty(t, UnlockedFeatures(cat, 4))
	assert.Len(t, UnlockedFeatures(cat, 5), 2)
	assert.Len(t, UnlockedFeatures(cat, 11), 8)
	assert.Len(t, UnlockedFeatures(cat, 21), 14)
}

func TestApplyXP_IncreasesXPAndLevel(t *testing.T) {
	cat := catalog.MustLoad()
	p := testutil.NewTestProfile(testutil.WithXP(400))

	next, award := ApplyXP(cat, p, 200)
	assert.Equal(t, 600, next.XP)
	assert.Equal(t, 2, next.Level)
	assert.Equal(t, "Apprentice", next.Title)
	assert.True(t, award.LeveledUp())
	assert.Empty(t, award.Unlocked)

	assert.Equal(t, 400, p.XP, "input profile is unchanged")
	assert.Equal(t, 1, p.Level)
}

func TestApplyXP_MonotonicProperty(t *testing.T) {
	cat := catalog.MustLoad()
	p := testutil.NewTestProfile()
	for _, x := range []int{1, 50, 499, 1, 3000, 12000, 40000} {
		next, _ := ApplyXP(cat, p, x)
		assert.Greater(t, next.XP, p.XP)
		assert.GreaterOrEqual(t, next.Level, p.Level)
		p = next
	}
}

func TestApplyXP_NegativeIgnored(t *testing.T) {
	cat := catalog.MustLoad()
	p := testutil.NewTestProfile(testutil.WithXP(900))
	next, _ := ApplyXP(cat, p, -500)
	assert.Equal(t, 900, next.XP)
}

func TestApplyXP_AchievementRewardsCascade(t *testing.T) {
	cat := catalog.MustLoad()
	// 30000 + 500 puts the profile at level 20; phoenix_complete pays 15000,
	// which reaches level 21 and unlocks immortal_status in the next round.
	p := testutil.NewTestProfile(testutil.WithXP(30000))

	next, award := ApplyXP(cat, p, 500)
	assert.Equal(t, []string{"phoenix_complete", "immortal_status"}, award.Unlocked)
	assert.Equal(t, 40000, award.AchievementXP)
	assert.Equal(t, 30500+40000, next.XP)
	assert.Equal(t, 21, next.Level)
	assert.ElementsMatch(t, []string{"phoenix_complete", "immortal_status"}, next.Achievements)
}

func TestApplyXP_AchievementsIdempotent(t *testing.T) {
	cat := catalog.MustLoad()
	p := testutil.NewTestProfile(testutil.WithStreak(5))

	once, award := ApplyXP(cat, p, 0)
	assert.Equal(t, []string{"first_blood", "week_warrior"}, award.Unlocked)
	assert.Equal(t, 700, once.XP)

	twice, award := ApplyXP(cat, once, 0)
	assert.Empty(t, award.Unlocked)
	assert.Equal(t, once.XP, twice.XP)
}
