package importer

import (
	"strings"
	"testing"

	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrInt(i int) *int           { return &i }
func ptrFloat(f float64) *float64 { return &f }

func validMinimalSchema() *ImportSchema {
	return &ImportSchema{
		Athlete: AthleteImport{Name: "Ana", BodyweightKg: 80},
	}
}

func validFullSchema() *ImportSchema {
	return &ImportSchema{
		Athlete: AthleteImport{
			Name:         "Ana",
			Age:          ptrInt(34),
			HeightCm:     ptrFloat(170),
			BodyweightKg: 80,
			GripBaseline: ptrFloat(50),
			StartDate:    "2026-01-05",
		},
		Position: &PositionImport{Week: 3, Day: 2},
		Streak:   ptrInt(6),
		Ledger:   map[string]float64{"goblet_squat": 30, "strict_pullup": 4},
		Sessions: []SessionImport{
			{Date: "2026-01-06", Week: 2, Day: 1, XP: 150},
			{Date: "2026-01-05", Week: 1, Day: 7, XP: 30, Notes: "walk"},
		},
	}
}

func errorText(errs []error) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "\n")
}

func TestValidateImportSchema_ValidMinimal(t *testing.T) {
	errs := ValidateImportSchema(validMinimalSchema(), catalog.MustLoad())
	assert.Empty(t, errs)
}

func TestValidateImportSchema_ValidFull(t *testing.T) {
	errs := ValidateImportSchema(validFullSchema(), catalog.MustLoad())
	assert.Empty(t, errs, errorText(errs))
}

func TestValidateImportSchema_MissingAthleteFields(t *testing.T) {
	errs := ValidateImportSchema(&ImportSchema{}, catalog.MustLoad())
	require.Len(t, errs, 2)
	text := errorText(errs)
	assert.Contains(t, text, "athlete.name is required")
	assert.Contains(t, text, "athlete.bodyweight_kg must be positive")
}

func TestValidateImportSchema_NegativeMeasurements(t *testing.T) {
	s := validMinimalSchema()
	s.Athlete.Age = ptrInt(-1)
	s.Athlete.HeightCm = ptrFloat(-170)
	s.Athlete.GripBaseline = ptrFloat(-2)
	s.XP = ptrInt(-10)
	s.Streak = ptrInt(-1)

	errs := ValidateImportSchema(s, catalog.MustLoad())
	assert.Len(t, errs, 5)
}

func TestValidateImportSchema_InvalidDates(t *testing.T) {
	s := validMinimalSchema()
	s.Athlete.StartDate = "05/01/2026"
	s.Sessions = []SessionImport{{Date: "yesterday", Week: 1, Day: 1}}

	errs := ValidateImportSchema(s, catalog.MustLoad())
	text := errorText(errs)
	assert.Contains(t, text, "athlete.start_date: invalid date format")
	assert.Contains(t, text, "sessions[0].date: invalid date format")
}

func TestValidateImportSchema_SlotRanges(t *testing.T) {
	tests := []struct {
		name      string
		week, day int
		wantErrs  int
	}{
		{"first slot", 1, 1, 0},
		{"last slot", 40, 7, 0},
		{"week zero", 0, 1, 1},
		{"week past program", 41, 1, 1},
		{"day zero", 1, 0, 1},
		{"day eight", 1, 8, 1},
		{"both out", 0, 9, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validMinimalSchema()
			s.Position = &PositionImport{Week: tt.week, Day: tt.day}
			assert.Len(t, ValidateImportSchema(s, catalog.MustLoad()), tt.wantErrs)
		})
	}
}

func TestValidateImportSchema_Ledger(t *testing.T) {
	s := validMinimalSchema()
	s.Ledger = map[string]float64{
		"goblet_squat":            0,
		"no_such_lift":            10,
		"test_5rm_dumbbell_bench": 30,
	}

	errs := ValidateImportSchema(s, catalog.MustLoad())
	require.Len(t, errs, 3)
	text := errorText(errs)
	assert.Contains(t, text, "ledger.goblet_squat: value must be positive")
	assert.Contains(t, text, "ledger.no_such_lift: unknown exercise")
	assert.Contains(t, text, `ledger.test_5rm_dumbbell_bench: test protocols record into "dumbbell_bench_press"`)
}

func TestValidateImportSchema_DuplicateSession(t *testing.T) {
	s := validMinimalSchema()
	s.Sessions = []SessionImport{
		{Date: "2026-01-05", Week: 1, Day: 1},
		{Date: "2026-01-05", Week: 1, Day: 1},
	}

	errs := ValidateImportSchema(s, catalog.MustLoad())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate session")
}

func TestValidateImportSchema_SessionValues(t *testing.T) {
	s := validMinimalSchema()
	s.Sessions = []SessionImport{{Date: "2026-01-05", Week: 1, Day: 1, XP: -5, DurationMin: ptrInt(-1)}}

	errs := ValidateImportSchema(s, catalog.MustLoad())
	assert.Len(t, errs, 2)
}

func TestParseImportSchema(t *testing.T) {
	schema, err := ParseImportSchema([]byte(`{
		"athlete": {"name": "Ana", "bodyweight_kg": 80},
		"position": {"week": 2, "day": 3},
		"ledger": {"goblet_squat": 28}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "Ana", schema.Athlete.Name)
	assert.Equal(t, 2, schema.Position.Week)
	assert.Equal(t, 28.0, schema.Ledger["goblet_squat"])

	_, err = ParseImportSchema([]byte(`{"athlete": {"name": "Ana"}, "unknown": 1}`))
	assert.Error(t, err, "unknown fields are rejected")

	_, err = ParseImportSchema([]byte(`{not json`))
	assert.Error(t, err)
}
