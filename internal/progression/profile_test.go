package progression

import (
	"testing"
	"time"

	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewProfile(t *testing.T) {
	cat := catalog.MustLoad()
	now := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	p := NewProfile(cat, Identity{Name: "Ana", Age: 34, BodyweightKg: 68}, now)

	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, 1, p.Week)
	assert.Equal(t, 1, p.Day)
	assert.Equal(t, catalog.PhaseForWeek(1), p.Phase)
	assert.Zero(t, p.XP)
	assert.Equal(t, ResolveLevel(cat, 0).Level, p.Level)
	assert.Equal(t, "kg", p.Preferences.WeightUnit)
	assert.True(t, p.Onboarded)
	assert.Equal(t, catalog.DefaultLedger(), p.Ledger)
	assert.NotNil(t, p.Achievements)
	assert.NotNil(t, p.ExerciseHistory)
	if assert.NotNil(t, p.CreatedAt) {
		assert.Equal(t, now, *p.CreatedAt)
	}
}

func TestNewProfile_KeepsPreferences(t *testing.T) {
	prefs := domain.Preferences{WeightUnit: "lb", MentalPrep: true}
	p := NewProfile(catalog.MustLoad(), Identity{Name: "Bo", BodyweightKg: 80, Preferences: prefs}, time.Now())
	assert.Equal(t, prefs, p.Preferences)
}

func TestNewProfile_LedgerIsIndependent(t *testing.T) {
	cat := catalog.MustLoad()
	a := NewProfile(cat, Identity{Name: "A", BodyweightKg: 70}, time.Now())
	b := NewProfile(cat, Identity{Name: "B", BodyweightKg: 70}, time.Now())
	a.Ledger[domain.GobletSquat] = 99
	assert.NotEqual(t, a.Ledger[domain.GobletSquat], b.Ledger[domain.GobletSquat])
}
