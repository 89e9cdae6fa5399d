// Package catalog holds the static program content: exercises, session
// templates, level tiers, achievements, challenges, quests and techniques.
// Tables are validated once at load time and never mutated afterwards.
package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alexanderramin/apex/internal/domain"
)

// Tables is the raw content a Catalog is built from.
type Tables struct {
	Exercises    []domain.ExerciseDefinition
	Sessions     []domain.SessionTemplate
	Tiers        []domain.LevelTier
	Achievements []domain.Achievement
	Challenges   []domain.WeeklyChallenge
	Quests       []domain.MonthlyQuest
	Techniques   []domain.IntensificationTechnique
}

// DefaultTables returns the built-in program content.
func DefaultTables() Tables {
	return Tables{
		Exercises:    defaultExercises(),
		Sessions:     defaultProgram(),
		Tiers:        defaultTiers(),
		Achievements: defaultAchievements(),
		Challenges:   defaultChallenges(),
		Quests:       defaultQuests(),
		Techniques:   defaultTechniques(),
	}
}

type slot struct{ week, day int }

// Catalog is the read-only lookup view over validated Tables.
type Catalog struct {
	exercises  map[domain.ExerciseID]domain.ExerciseDefinition
	sessions   map[slot]domain.SessionTemplate
	tiers      []domain.LevelTier
	achieve    []domain.Achievement
	challenges map[int]domain.WeeklyChallenge
	quests     map[int]domain.MonthlyQuest
	techniques map[domain.Technique]domain.IntensificationTechnique
}

// New validates t and builds a Catalog. The returned errors are all
// validation failures found; the Catalog is nil when any exist.
func New(t Tables) (*Catalog, []error) {
	if errs := Validate(t); len(errs) > 0 {
		return nil, errs
	}
	c := &Catalog{
		exercises:  make(map[domain.ExerciseID]domain.ExerciseDefinition, len(t.Exercises)),
		sessions:   make(map[slot]domain.SessionTemplate, len(t.Sessions)),
		tiers:      t.Tiers,
		achieve:    t.Achievements,
		challenges: make(map[int]domain.WeeklyChallenge, len(t.Challenges)),
		quests:     make(map[int]domain.MonthlyQuest, len(t.Quests)),
		techniques: make(map[domain.Technique]domain.IntensificationTechnique, len(t.Techniques)),
	}
	for _, ex := range t.Exercises {
		c.exercises[ex.ID] = ex
	}
	for _, s := range t.Sessions {
		c.sessions[slot{s.Week, s.Day}] = s
	}
	for _, wc := range t.Challenges {
		c.challenges[wc.Week] = wc
	}
	for _, q := range t.Quests {
		c.quests[q.Month] = q
	}
	for _, tech := range t.Techniques {
		c.techniques[tech.ID] = tech
	}
	return c, nil
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the built-in catalog, building it on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		cat, errs := New(DefaultTables())
		if len(errs) > 0 {
			defaultErr = fmt.Errorf("invalid built-in catalog: %w", errors.Join(errs...))
			return
		}
		defaultCat = cat
	})
	return defaultCat, defaultErr
}

// MustLoad is Default for callers that cannot proceed without content.
func MustLoad() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Exercise looks up an exercise definition.
func (c *Catalog) Exercise(id domain.ExerciseID) (domain.ExerciseDefinition, bool) {
	ex, ok := c.exercises[id]
	return ex, ok
}

// Exercises returns every exercise definition.
func (c *Catalog) Exercises() []domain.ExerciseDefinition {
	out := make([]domain.ExerciseDefinition, 0, len(c.exercises))
	for _, ex := range c.exercises {
		out = append(out, ex)
	}
	return out
}

// Template returns the session template of a slot. The returned value shares
// its exercise slice with the catalog; callers must copy before modifying.
func (c *Catalog) Template(week, day int) (domain.SessionTemplate, bool) {
	t, ok := c.sessions[slot{week, day}]
	return t, ok
}

// Tiers returns the ordered level tiers.
func (c *Catalog) Tiers() []domain.LevelTier { return c.tiers }

// Achievements returns the achievement catalog in display order.
func (c *Catalog) Achievements() []domain.Achievement { return c.achieve }

// Achievement looks up an achievement by id.
func (c *Catalog) Achievement(id string) (domain.Achievement, bool) {
	for _, a := range c.achieve {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Achievement{}, false
}

// WeeklyChallenge returns the challenge set of a week.
func (c *Catalog) WeeklyChallenge(week int) (domain.WeeklyChallenge, bool) {
	wc, ok := c.challenges[week]
	return wc, ok
}

// Quest returns the quest of a month.
func (c *Catalog) Quest(month int) (domain.MonthlyQuest, bool) {
	q, ok := c.quests[month]
	return q, ok
}

// Technique looks up an intensification technique.
func (c *Catalog) Technique(id domain.Technique) (domain.IntensificationTechnique, bool) {
	t, ok := c.techniques[id]
	return t, ok
}

// TechniqueAllowed reports whether a technique may be used at level.
// Unknown techniques are never allowed.
func (c *Catalog) TechniqueAllowed(id domain.Technique, level int) bool {
	t, ok := c.techniques[id]
	return ok && level >= t.RequiredLevel
}
