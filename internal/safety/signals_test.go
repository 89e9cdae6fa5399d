package safety

import (
	"testing"

	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samples(scores ...float64) []domain.ReadinessSample {
	return testutil.NewTestProfile(testutil.WithReadinessScores(scores...)).ReadinessHistory
}

func TestCheckRepeatedLowReadiness_ThreeOfSevenTriggers(t *testing.T) {
	a := CheckRepeatedLowReadiness(samples(7, 4, 8, 4.9, 6, 3, 7))
	require.NotNil(t, a)
	assert.Equal(t, domain.AlertMandatoryDeload, a.Kind)
	assert.True(t, a.Blocking)
	assert.Equal(t, 0.6, a.Adjustments.VolumeMultiplier)
	assert.Equal(t, 0.8, a.Adjustments.IntensityMultiplier)
	assert.Equal(t, 500, a.Adjustments.BonusXP)
	assert.Equal(t, "Prevention Sage", a.Adjustments.Badge)
}

func TestCheckRepeatedLowReadiness_TwoDoesNot(t *testing.T) {
	assert.Nil(t, CheckRepeatedLowReadiness(samples(7, 4, 8, 5, 6, 3, 7)))
}

func TestCheckRepeatedLowReadiness_OnlyLastSevenCount(t *testing.T) {
	// Two low samples fall outside the window.
	assert.Nil(t, CheckRepeatedLowReadiness(samples(2, 2, 7, 7, 4, 7, 7, 7, 3)))
	assert.NotNil(t, CheckRepeatedLowReadiness(samples(2, 2, 4, 7, 4, 7, 7, 7, 3)))
}

func TestCheckRepeatedLowReadiness_ShortHistory(t *testing.T) {
	assert.Nil(t, CheckRepeatedLowReadiness(nil))
	assert.NotNil(t, CheckRepeatedLowReadiness(samples(1, 2, 3)))
}

func TestCheckPlateau(t *testing.T) {
	entry := func(avg float64, target int) domain.ExerciseHistoryEntry {
		return domain.ExerciseHistoryEntry{AvgRIR: avg, TargetRIR: target}
	}
	tests := []struct {
		name    string
		history []domain.ExerciseHistoryEntry
		want    bool
	}{
		{"single entry", []domain.ExerciseHistoryEntry{entry(6, 2)}, false},
		{"both above margin", []domain.ExerciseHistoryEntry{entry(4.5, 2), entry(5, 2)}, true},
		{"one at margin", []domain.ExerciseHistoryEntry{entry(4, 2), entry(5, 2)}, false},
		{"older entries ignored", []domain.ExerciseHistoryEntry{entry(1, 2), entry(5, 2), entry(6, 3)}, true},
		{"latest recovered", []domain.ExerciseHistoryEntry{entry(5, 2), entry(6, 2), entry(3, 2)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := CheckPlateau(domain.GobletSquat, tt.history)
			if !tt.want {
				assert.Nil(t, a)
				return
			}
			require.NotNil(t, a)
			assert.Equal(t, domain.AlertPerformancePlateau, a.Kind)
			assert.Equal(t, domain.GobletSquat, a.Exercise)
			assert.Equal(t, 0.05, a.Adjustments.LoadReduction)
			assert.False(t, a.Blocking)
		})
	}
}

func TestCheckStagnation(t *testing.T) {
	assert.Nil(t, CheckStagnation(domain.BarbellRow, domain.ExerciseProgress{WeeksWithoutProgress: 3}))

	a := CheckStagnation(domain.BarbellRow, domain.ExerciseProgress{WeeksWithoutProgress: 4})
	require.NotNil(t, a)
	assert.Equal(t, domain.AlertProlongedStagnation, a.Kind)
	assert.Len(t, a.Suggestions, 4)
	assert.Zero(t, a.Adjustments)

	a.Suggestions[0] = "changed"
	assert.Equal(t, "Change the exercise variant", StagnationSuggestions[0])
}

func TestDetectSignals(t *testing.T) {
	h := History{
		Readiness: samples(4, 4, 4),
		Exercises: map[domain.ExerciseID][]domain.ExerciseHistoryEntry{
			domain.GobletSquat: {{AvgRIR: 5, TargetRIR: 2}, {AvgRIR: 5, TargetRIR: 2}},
			domain.DumbbellRDL: {{AvgRIR: 2, TargetRIR: 2}, {AvgRIR: 2, TargetRIR: 2}},
		},
		Progress: map[domain.ExerciseID]domain.ExerciseProgress{
			domain.BarbellRow:    {WeeksWithoutProgress: 5},
			domain.DumbbellBench: {WeeksWithoutProgress: 1},
		},
	}

	alerts := DetectSignals(h)
	require.Len(t, alerts, 3)
	assert.Equal(t, domain.AlertMandatoryDeload, alerts[0].Kind)
	assert.Equal(t, domain.AlertPerformancePlateau, alerts[1].Kind)
	assert.Equal(t, domain.AlertProlongedStagnation, alerts[2].Kind)

	blocking, ok := Blocking(alerts)
	assert.True(t, ok)
	assert.Equal(t, domain.AlertMandatoryDeload, blocking.Kind)
}

func TestDetectSignals_EmptyHistory(t *testing.T) {
	assert.Empty(t, DetectSignals(History{}))
	_, ok := Blocking(nil)
	assert.False(t, ok)
}

func TestHistoryOf(t *testing.T) {
	p := testutil.NewTestProfile(testutil.WithReadinessScores(3, 3, 3))
	alerts := DetectSignals(HistoryOf(p))
	require.Len(t, alerts, 1)
}
