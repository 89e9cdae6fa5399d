package progression

import (
	"testing"
	"time"

	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/protocol"
	"github.com/alexanderramin/apex/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func perform(ex *domain.PrescribedExercise, load float64, reps, rir int) {
	for i := range ex.Series {
		ex.Series[i].Load = load
		ex.Series[i].Reps = intp(reps)
		ex.Series[i].RIR = intp(rir)
	}
}

var completedAt = time.Date(2026, 3, 2, 18, 30, 0, 0, time.UTC)

func TestCompleteSession_UpdatesLedgerStreakAndPosition(t *testing.T) {
	cat := catalog.MustLoad()
	p := testutil.NewTestProfile(testutil.WithStreak(4))
	rx := protocol.Generate(cat, 1, 1, score(7), p)
	require.NotNil(t, rx)
	rx.ID = "rx-1"

	// Goblet squat at a new best, RDL at the same load as the ledger.
	perform(&rx.Exercises[0], 26, 12, 2)
	perform(&rx.Exercises[1], 20, 12, 2)

	next, entry, award := CompleteSession(cat, p, rx, SessionResult{CompletedAt: completedAt})

	assert.Equal(t, 26.0, next.Ledger[domain.GobletSquat])
	assert.Equal(t, 20.0, next.Ledger[domain.DumbbellRDL])
	assert.Equal(t, []domain.ExerciseID{domain.GobletSquat}, award.Improved)
	assert.True(t, award.Flags.LoadProgression)
	assert.Equal(t, 4, award.Flags.Streak)

	// 120 base + 25 load progression, no streak multiplier below 5.
	assert.Equal(t, 145, award.SessionXP)
	assert.Equal(t, 5, next.Streak)
	assert.Equal(t, 1, next.Week)
	assert.Equal(t, 2, next.Day)
	require.NotNil(t, next.LastSessionAt)
	assert.True(t, completedAt.Equal(*next.LastSessionAt))

	// streak 5 unlocks first_blood and week_warrior.
	assert.Equal(t, []string{"first_blood", "week_warrior"}, award.Unlocked)
	assert.Equal(t, 145+700, next.XP)

	assert.Equal(t, "rx-1", entry.ID)
	assert.Equal(t, "2026-03-02", entry.Date)
	assert.Equal(t, 145, entry.XP)
	assert.Equal(t, domain.ModeStandard, entry.Mode)

	assert.Equal(t, 24.0, p.Ledger[domain.GobletSquat], "input profile is unchanged")
	assert.Equal(t, 4, p.Streak)
}

func TestCompleteSession_RecordsHistoryForPlateauDetection(t *testing.T) {
	cat := catalog.MustLoad()
	p := testutil.NewTestProfile()
	rx := protocol.Generate(cat, 1, 1, nil, p)
	require.NotNil(t, rx)
	perform(&rx.Exercises[0], 24, 12, 5)

	next, _, _ := CompleteSession(cat, p, rx, SessionResult{CompletedAt: completedAt})

	h := next.ExerciseHistory[domain.GobletSquat]
	require.Len(t, h, 1)
	assert.Equal(t, 5.0, h[0].AvgRIR)
	assert.Equal(t, 3, h[0].TargetRIR)
	assert.Equal(t, 1, h[0].Week)
	assert.NotContains(t, next.ExerciseHistory, domain.DumbbellRDL, "unperformed exercises are skipped")
}

func TestCompleteSession_WeeksWithoutProgress(t *testing.T) {
	cat := catalog.MustLoad()
	p := testutil.NewTestProfile(testutil.WithWeek(2, 2))
	p.Progress[domain.GobletSquat] = domain.ExerciseProgress{LastImprovedWeek: 2}

	rx := protocol.Generate(cat, 6, 2, nil, p)
	require.NotNil(t, rx)
	perform(&rx.Exercises[0], 24, 10, 2)

	next, _, _ := CompleteSession(cat, p, rx, SessionResult{CompletedAt: completedAt})
	assert.Equal(t, 4, next.Progress[domain.GobletSquat].WeeksWithoutProgress)
}

func TestCompleteSession_StreakMultiplierUsesPriorStreak(t *testing.T) {
	cat := catalog.MustLoad()
	p := testutil.NewTestProfile(testutil.WithStreak(9), testutil.WithAchievements("first_blood", "week_warrior"))
	rx := protocol.Generate(cat, 2, 3, nil, p)
	require.NotNil(t, rx)

	next, _, award := CompleteSession(cat, p, rx, SessionResult{CompletedAt: completedAt})
	assert.Equal(t, 120, award.SessionXP, "80 base x1.5 for a 9 streak")
	assert.Equal(t, 10, next.Streak)
	assert.Equal(t, []string{"streak_10"}, award.Unlocked)
}

func TestCompleteSession_WeekRollover(t *testing.T) {
	cat := catalog.MustLoad()
	p := testutil.NewTestProfile(testutil.WithWeek(8, 7))
	rx := protocol.Generate(cat, 8, 7, nil, p)
	require.NotNil(t, rx)

	next, _, _ := CompleteSession(cat, p, rx, SessionResult{CompletedAt: completedAt})
	assert.Equal(t, 9, next.Week)
	assert.Equal(t, 1, next.Day)
	assert.Equal(t, 2, next.Phase)
}

func TestCompleteSession_ProgramEndIsTerminal(t *testing.T) {
	cat := catalog.MustLoad()
	p := testutil.NewTestProfile(testutil.WithWeek(40, 7))
	rx := protocol.Generate(cat, 40, 7, nil, p)
	require.NotNil(t, rx)

	next, _, _ := CompleteSession(cat, p, rx, SessionResult{CompletedAt: completedAt})
	assert.Equal(t, 40, next.Week)
	assert.Equal(t, 7, next.Day)
}

func TestCompleteSession_RepTrackedExercise(t *testing.T) {
	cat := catalog.MustLoad()
	p := testutil.NewTestProfile()
	rx := protocol.Generate(cat, 1, 2, nil, p)
	require.NotNil(t, rx)
	for i := range rx.Exercises {
		if rx.Exercises[i].Exercise == domain.AssistedPullup {
			perform(&rx.Exercises[i], 50, 9, 2)
		}
	}

	next, _, award := CompleteSession(cat, p, rx, SessionResult{CompletedAt: completedAt})
	assert.Equal(t, 9.0, next.Ledger[domain.AssistedPullup])
	assert.True(t, award.Flags.NewRepMax)
	assert.False(t, award.Flags.LoadProgression)
}

func TestLogTest_RecordsIntoMeasuredKey(t *testing.T) {
	cat := catalog.MustLoad()
	p := testutil.NewTestProfile(testutil.WithBodyweight(80))

	next, out := LogTest(cat, p, domain.TestMaxPullups, 10, 8)
	assert.Equal(t, domain.StrictPullup, out.Key)
	assert.True(t, out.Improved)
	assert.Equal(t, 10.0, next.Ledger[domain.StrictPullup])
	assert.Equal(t, []string{"first_pull", "pull_warrior"}, out.Unlocked)
	assert.Equal(t, 2200, next.XP)
}

func TestLogTest_LowerIsBetter(t *testing.T) {
	cat := catalog.MustLoad()
	p := testutil.NewTestProfile(testutil.WithLedger(domain.Ledger{domain.Bike2000mSec: 500}))

	slower, out := LogTest(cat, p, domain.Test2000mBike, 520, 8)
	assert.False(t, out.Improved)
	assert.Equal(t, 500.0, slower.Ledger[domain.Bike2000mSec])

	faster, out := LogTest(cat, p, domain.Test2000mBike, 470, 8)
	assert.True(t, out.Improved)
	assert.Equal(t, 500.0, out.Previous)
	assert.Equal(t, 470.0, faster.Ledger[domain.Bike2000mSec])
	assert.Contains(t, out.Unlocked, "cardio_warrior")
}

func TestLogTest_UnknownIDIsNoop(t *testing.T) {
	cat := catalog.MustLoad()
	p := testutil.NewTestProfile()
	next, out := LogTest(cat, p, "snatch_1rm", 80, 8)
	assert.False(t, out.Improved)
	assert.Equal(t, p, next)
}

func TestRecordReadiness(t *testing.T) {
	p := testutil.NewTestProfile()
	sample := func(date string, s float64) domain.ReadinessSample {
		return domain.ReadinessSample{Date: date, Score: s}
	}

	p1 := RecordReadiness(p, sample("2026-03-01", 6), 3)
	p2 := RecordReadiness(p1, sample("2026-03-01", 8), 3)
	require.Len(t, p2.ReadinessHistory, 1, "same day overwrites")
	assert.Equal(t, 8.0, p2.ReadinessHistory[0].Score)

	p3 := RecordReadiness(p2, sample("2026-03-02", 5), 3)
	p4 := RecordReadiness(p3, sample("2026-03-03", 4), 3)
	p5 := RecordReadiness(p4, sample("2026-03-04", 9), 3)
	require.Len(t, p5.ReadinessHistory, 3)
	assert.Equal(t, "2026-03-02", p5.ReadinessHistory[0].Date)
	assert.Equal(t, "2026-03-04", p5.ReadinessHistory[2].Date)

	assert.Len(t, p1.ReadinessHistory, 1)
	assert.Equal(t, 6.0, p1.ReadinessHistory[0].Score, "earlier profiles are not aliased")
}
