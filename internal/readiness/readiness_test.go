package readiness

import (
	"testing"

	"github.com/alexanderramin/apex/internal/domain"
	"github.com/stretchr/testify/assert"
)

func ratings(v float64) domain.ReadinessComponents {
	return domain.ReadinessComponents{Sleep: v, Energy: v, Calm: v, PainAbsence: v}
}

func TestModeFor_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  domain.ReadinessMode
	}{
		{10, domain.ModePerformance},
		{8.0, domain.ModePerformance},
		{7.999, domain.ModeStandard},
		{6.5, domain.ModeStandard},
		{6.499, domain.ModeAdapted},
		{5.0, domain.ModeAdapted},
		{4.999, domain.ModeRecovery},
		{1, domain.ModeRecovery},
	}
	for _, tt := range tests {
		s := tt.score
		assert.Equal(t, tt.want, ModeFor(&s), "score %v", tt.score)
	}
}

func TestModeFor_NilIsUnevaluated(t *testing.T) {
	assert.Equal(t, domain.ModeUnevaluated, ModeFor(nil))
}

func TestEvaluate_LowRatingsAreRecovery(t *testing.T) {
	r := Evaluate(Input{Components: ratings(3)})
	assert.Equal(t, 3.0, r.Score)
	assert.Equal(t, domain.ModeRecovery, r.Mode)
}

func TestEvaluate_AverageRoundedToOneDecimal(t *testing.T) {
	r := Evaluate(Input{Components: domain.ReadinessComponents{Sleep: 7, Energy: 8, Calm: 6, PainAbsence: 8}})
	assert.Equal(t, 7.3, r.Score) // 7.25 rounds half away from zero
	assert.Equal(t, domain.ModeStandard, r.Mode)
}

func TestEvaluate_GripDropPenalty(t *testing.T) {
	r := Evaluate(Input{Components: ratings(8), Grip: 40, GripBaseline: 50})
	assert.True(t, r.GripPenalized)
	assert.Equal(t, 7.0, r.Score)
	assert.Equal(t, domain.ModeStandard, r.Mode)
}

func TestEvaluate_GripDropAtLimitNotPenalized(t *testing.T) {
	r := Evaluate(Input{Components: ratings(8), Grip: 42.5, GripBaseline: 50})
	assert.False(t, r.GripPenalized)
	assert.Equal(t, 8.0, r.Score)
}

func TestEvaluate_GripPenaltyFlooredAtOne(t *testing.T) {
	r := Evaluate(Input{Components: ratings(1), Grip: 10, GripBaseline: 50})
	assert.True(t, r.GripPenalized)
	assert.Equal(t, 1.0, r.Score)
}

func TestEvaluate_NoBaselineIgnoresGrip(t *testing.T) {
	r := Evaluate(Input{Components: ratings(6), Grip: 10})
	assert.False(t, r.GripPenalized)
	assert.Equal(t, domain.ModeAdapted, r.Mode)
}

func TestXPBonus(t *testing.T) {
	assert.Equal(t, 25, XPBonus(domain.ModePerformance))
	assert.Equal(t, 0, XPBonus(domain.ModeStandard))
	assert.Equal(t, 25, XPBonus(domain.ModeAdapted))
	assert.Equal(t, 50, XPBonus(domain.ModeRecovery))
	assert.Equal(t, 0, XPBonus(domain.ModeUnevaluated))
}

func TestAdaptation(t *testing.T) {
	assert.Equal(t, 3, AdaptedSets(4))
	assert.Equal(t, 1, AdaptedSets(1))
	assert.Equal(t, 4, AdaptedSets(5))
	assert.InDelta(t, 21.6, AdaptedLoad(24), 1e-9)
	assert.Equal(t, 48, AdaptedDuration(60))
	assert.Equal(t, 36, AdaptedDuration(45))
}
