package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/alexanderramin/apex/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema, cat *catalog.Catalog) []error {
	var errs []error

	errs = append(errs, validateAthlete(&schema.Athlete)...)
	if schema.Position != nil {
		errs = append(errs, validateSlot("position", schema.Position.Week, schema.Position.Day)...)
	}
	if schema.XP != nil && *schema.XP < 0 {
		errs = append(errs, fmt.Errorf("xp must not be negative"))
	}
	if schema.Streak != nil && *schema.Streak < 0 {
		errs = append(errs, fmt.Errorf("streak must not be negative"))
	}
	errs = append(errs, validateLedger(schema.Ledger, cat)...)
	errs = append(errs, validateSessions(schema.Sessions)...)

	return errs
}

func validateAthlete(a *AthleteImport) []error {
	var errs []error

	if a.Name == "" {
		errs = append(errs, fmt.Errorf("athlete.name is required"))
	}
	if a.BodyweightKg <= 0 {
		errs = append(errs, fmt.Errorf("athlete.bodyweight_kg must be positive"))
	}
	if a.Age != nil && *a.Age < 0 {
		errs = append(errs, fmt.Errorf("athlete.age must not be negative"))
	}
	if a.HeightCm != nil && *a.HeightCm < 0 {
		errs = append(errs, fmt.Errorf("athlete.height_cm must not be negative"))
	}
	if a.GripBaseline != nil && *a.GripBaseline < 0 {
		errs = append(errs, fmt.Errorf("athlete.grip_baseline must not be negative"))
	}
	if a.StartDate != "" {
		if _, err := time.Parse(time.DateOnly, a.StartDate); err != nil {
			errs = append(errs, fmt.Errorf("athlete.start_date: invalid date format %q (expected YYYY-MM-DD)", a.StartDate))
		}
	}

	return errs
}

func validateSlot(field string, week, day int) []error {
	var errs []error
	if week < 1 || week > catalog.ProgramWeeks {
		errs = append(errs, fmt.Errorf("%s.week %d outside 1-%d", field, week, catalog.ProgramWeeks))
	}
	if day < 1 || day > catalog.DaysPerWeek {
		errs = append(errs, fmt.Errorf("%s.day %d outside 1-%d", field, day, catalog.DaysPerWeek))
	}
	return errs
}

func validateLedger(ledger map[string]float64, cat *catalog.Catalog) []error {
	var errs []error
	for _, key := range sortedKeys(ledger) {
		def, ok := cat.Exercise(domain.ExerciseID(key))
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("ledger.%s: unknown exercise", key))
		case def.Category == domain.CategoryTest:
			errs = append(errs, fmt.Errorf("ledger.%s: test protocols record into %q", key, def.Records))
		case ledger[key] <= 0:
			errs = append(errs, fmt.Errorf("ledger.%s: value must be positive", key))
		}
	}
	return errs
}

func validateSessions(sessions []SessionImport) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, s := range sessions {
		prefix := fmt.Sprintf("sessions[%d]", i)
		if _, err := time.Parse(time.DateOnly, s.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, s.Date))
		}
		errs = append(errs, validateSlot(prefix, s.Week, s.Day)...)
		if s.XP < 0 {
			errs = append(errs, fmt.Errorf("%s.xp must not be negative", prefix))
		}
		if s.DurationMin != nil && *s.DurationMin < 0 {
			errs = append(errs, fmt.Errorf("%s.duration_min must not be negative", prefix))
		}

		key := fmt.Sprintf("%s/w%d/d%d", s.Date, s.Week, s.Day)
		if seen[key] {
			errs = append(errs, fmt.Errorf("%s: duplicate session for week %d day %d on %s", prefix, s.Week, s.Day, s.Date))
		}
		seen[key] = true
	}

	return errs
}
