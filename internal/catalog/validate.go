package catalog

import (
	"fmt"

	"github.com/alexanderramin/apex/internal/domain"
)

// Validate checks the content tables for structural errors. Returns a slice
// of errors (empty if valid).
func Validate(t Tables) []error {
	var errs []error

	exercises := map[domain.ExerciseID]domain.ExerciseDefinition{}
	for i, ex := range t.Exercises {
		if ex.ID == "" {
			errs = append(errs, fmt.Errorf("exercise[%d]: id is required", i))
			continue
		}
		if _, dup := exercises[ex.ID]; dup {
			errs = append(errs, fmt.Errorf("exercise[%d]: duplicate id %q", i, ex.ID))
		}
		exercises[ex.ID] = ex
	}

	for _, ex := range t.Exercises {
		if ex.Progression.Kind == "" {
			errs = append(errs, fmt.Errorf("exercise %q: progression policy is required", ex.ID))
		}
		if ex.Records != "" {
			if _, ok := exercises[ex.Records]; !ok {
				errs = append(errs, fmt.Errorf("exercise %q: records into unknown exercise %q", ex.ID, ex.Records))
			}
		}
		if ex.Prerequisites == nil {
			continue
		}
		if ex.Prerequisites.MinWeek < 0 {
			errs = append(errs, fmt.Errorf("exercise %q: negative prerequisite week", ex.ID))
		}
		for key := range ex.Prerequisites.Thresholds {
			if _, ok := exercises[key]; !ok {
				errs = append(errs, fmt.Errorf("exercise %q: prerequisite references unknown exercise %q", ex.ID, key))
			}
			if key == ex.ID {
				errs = append(errs, fmt.Errorf("exercise %q: prerequisite references itself", ex.ID))
			}
		}
	}

	type slotKey struct{ week, day int }
	slots := map[slotKey]bool{}
	for i, tpl := range t.Sessions {
		if tpl.Week < 1 || tpl.Week > ProgramWeeks {
			errs = append(errs, fmt.Errorf("session[%d]: week %d out of range", i, tpl.Week))
		}
		if tpl.Day < 1 || tpl.Day > DaysPerWeek {
			errs = append(errs, fmt.Errorf("session[%d]: day %d out of range", i, tpl.Day))
		}
		k := slotKey{tpl.Week, tpl.Day}
		if slots[k] {
			errs = append(errs, fmt.Errorf("session[%d]: duplicate slot week %d day %d", i, tpl.Week, tpl.Day))
		}
		slots[k] = true
		if tpl.Name == "" {
			errs = append(errs, fmt.Errorf("session[%d]: name is required", i))
		}
		for j, p := range tpl.Exercises {
			if _, ok := exercises[p.Exercise]; !ok {
				errs = append(errs, fmt.Errorf("session w%dd%d exercise[%d]: unknown exercise %q", tpl.Week, tpl.Day, j, p.Exercise))
			}
			if p.Sets < 1 {
				errs = append(errs, fmt.Errorf("session w%dd%d exercise[%d]: sets must be positive", tpl.Week, tpl.Day, j))
			}
		}
	}

	errs = append(errs, validateTiers(t.Tiers)...)

	achievements := map[string]bool{}
	for i, a := range t.Achievements {
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("achievement[%d]: id is required", i))
		}
		if achievements[a.ID] {
			errs = append(errs, fmt.Errorf("achievement[%d]: duplicate id %q", i, a.ID))
		}
		achievements[a.ID] = true
	}

	weeks := map[int]bool{}
	for i, wc := range t.Challenges {
		if weeks[wc.Week] {
			errs = append(errs, fmt.Errorf("challenge[%d]: duplicate week %d", i, wc.Week))
		}
		weeks[wc.Week] = true
		ids := map[string]bool{}
		for _, c := range wc.Challenges {
			if ids[c.ID] {
				errs = append(errs, fmt.Errorf("challenge week %d: duplicate id %q", wc.Week, c.ID))
			}
			ids[c.ID] = true
		}
	}

	techniques := map[domain.Technique]bool{}
	for _, tech := range t.Techniques {
		techniques[tech.ID] = true
	}
	for _, tpl := range t.Sessions {
		for _, p := range tpl.Exercises {
			if p.Technique != "" && !techniques[p.Technique] {
				errs = append(errs, fmt.Errorf("session w%dd%d: unknown technique %q", tpl.Week, tpl.Day, p.Technique))
			}
		}
	}

	return errs
}

func validateTiers(tiers []domain.LevelTier) []error {
	var errs []error
	if len(tiers) == 0 {
		return []error{fmt.Errorf("at least one level tier is required")}
	}
	if tiers[0].XPMin != 0 {
		errs = append(errs, fmt.Errorf("tier[0]: must start at 0 XP, starts at %d", tiers[0].XPMin))
	}
	for i, t := range tiers {
		if t.Level != i+1 {
			errs = append(errs, fmt.Errorf("tier[%d]: level %d out of order", i, t.Level))
		}
		if t.XPMax <= t.XPMin {
			errs = append(errs, fmt.Errorf("tier[%d]: empty range [%d, %d)", i, t.XPMin, t.XPMax))
		}
		if i+1 < len(tiers) && tiers[i+1].XPMin != t.XPMax {
			errs = append(errs, fmt.Errorf("tier[%d]: ends at %d but tier[%d] starts at %d", i, t.XPMax, i+1, tiers[i+1].XPMin))
		}
	}
	if !tiers[len(tiers)-1].OpenEnded() {
		errs = append(errs, fmt.Errorf("last tier must be open-ended"))
	}
	return errs
}
