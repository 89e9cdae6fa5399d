package importer

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"time"

	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/progression"
	"github.com/google/uuid"
)

// Imported is a converted import ready for persistence.
type Imported struct {
	Profile *domain.UserProfile
	Logs    []*domain.SessionLog
	// XP is granted on top of the profile's zero balance, onboarding included.
	XP int
}

// Convert transforms a validated ImportSchema into domain objects.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema, cat *catalog.Catalog, now time.Time) (*Imported, error) {
	a := schema.Athlete
	created := now
	if a.StartDate != "" {
		t, err := time.Parse(time.DateOnly, a.StartDate)
		if err != nil {
			return nil, fmt.Errorf("parsing start_date: %w", err)
		}
		created = t.UTC()
	}

	p := progression.NewProfile(cat, progression.Identity{
		Name:         a.Name,
		Age:          derefOr(a.Age, 0),
		HeightCm:     derefOr(a.HeightCm, 0),
		BodyweightKg: a.BodyweightKg,
		GripBaseline: derefOr(a.GripBaseline, 0),
		Preferences:  domain.Preferences{WeightUnit: "kg", AutoProgression: true},
	}, created)

	for k, v := range schema.Ledger {
		p.Ledger[domain.ExerciseID(k)] = v
	}
	if schema.Position != nil {
		p.Week, p.Day = schema.Position.Week, schema.Position.Day
		p.Phase = catalog.PhaseForWeek(p.Week)
	}
	if schema.Streak != nil {
		p.Streak = *schema.Streak
		p.StreakMax = *schema.Streak
	}

	logs := make([]*domain.SessionLog, 0, len(schema.Sessions))
	sessionXP := 0
	for _, s := range schema.Sessions {
		l, err := convertSession(cat, s)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
		sessionXP += s.XP
	}
	sort.SliceStable(logs, func(i, j int) bool { return logs[i].CreatedAt.Before(logs[j].CreatedAt) })
	if len(logs) > 0 {
		last := logs[len(logs)-1].CreatedAt
		p.LastSessionAt = &last
	}

	xp := progression.OnboardingXP + sessionXP
	if schema.XP != nil {
		xp = progression.OnboardingXP + *schema.XP
	}

	return &Imported{Profile: p, Logs: logs, XP: xp}, nil
}

func convertSession(cat *catalog.Catalog, s SessionImport) (*domain.SessionLog, error) {
	date, err := time.Parse(time.DateOnly, s.Date)
	if err != nil {
		return nil, fmt.Errorf("parsing session date: %w", err)
	}

	l := &domain.SessionLog{
		ID:        uuid.New().String(),
		Date:      s.Date,
		Week:      s.Week,
		Day:       s.Day,
		Name:      s.Name,
		Mode:      domain.ModeUnevaluated,
		XP:        s.XP,
		Notes:     s.Notes,
		Exercises: []domain.PrescribedExercise{},
		CreatedAt: date.UTC(),
	}
	tpl, ok := cat.Template(s.Week, s.Day)
	if !ok {
		tpl, ok = catalog.RestDayTemplate(s.Week, s.Day)
	}
	if ok {
		l.Type = tpl.Type
		l.DurationMin = tpl.DurationMin
		if l.Name == "" {
			l.Name = tpl.Name
		}
	} else {
		l.Type = domain.SessionRest
	}
	if l.Name == "" {
		l.Name = "Imported session"
	}
	if s.DurationMin != nil {
		l.DurationMin = *s.DurationMin
	}
	return l, nil
}

func derefOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func sortedKeys(m map[string]float64) []string {
	return slices.Sorted(maps.Keys(m))
}
