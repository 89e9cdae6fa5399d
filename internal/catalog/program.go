package catalog

import (
	"fmt"

	"github.com/alexanderramin/apex/internal/domain"
)

// The program runs ProgramWeeks weeks of DaysPerWeek day slots. ActiveRestDay
// and FullRestDay are the designated rest-day slots.
const (
	ProgramWeeks  = 40
	DaysPerWeek   = 7
	ActiveRestDay = 6
	FullRestDay   = 7
)

// PhaseForWeek returns the program phase (1-3) of a week.
func PhaseForWeek(week int) int {
	switch {
	case week <= 8:
		return 1
	case week <= 20:
		return 2
	default:
		return 3
	}
}

// BlockForWeek returns the training block name of a week.
func BlockForWeek(week int) string {
	switch {
	case week <= 2:
		return "AWAKENING"
	case week <= 4:
		return "CONSOLIDATION"
	case week <= 6:
		return "PROGRESSION"
	case week == 7:
		return "DELOAD"
	case week == 8:
		return "TESTS"
	case week <= 11:
		return "HYPERTROPHY"
	case week <= 14:
		return "STRENGTH"
	case week <= 17:
		return "POWER_HYPERTROPHY"
	case week == 18:
		return "DELOAD"
	case week == 19:
		return "PEAK"
	case week == 20:
		return "TESTS"
	default:
		return "MASTERY"
	}
}

// RestDayTemplate returns the canonical rest-day session for one of the two
// designated rest slots.
func RestDayTemplate(week, day int) (domain.SessionTemplate, bool) {
	switch day {
	case ActiveRestDay:
		return domain.SessionTemplate{
			Week: week, Day: day, Name: "ACTIVE REST", Type: domain.SessionRest,
			Phase: PhaseForWeek(week), Block: BlockForWeek(week), DurationMin: 30, BaseXP: 30,
		}, true
	case FullRestDay:
		return domain.SessionTemplate{
			Week: week, Day: day, Name: "FULL REST", Type: domain.SessionRest,
			Phase: PhaseForWeek(week), Block: BlockForWeek(week), DurationMin: 0, BaseXP: 30,
		}, true
	}
	return domain.SessionTemplate{}, false
}

func rx(name string, id domain.ExerciseID, sets int, reps string, rir, rest int, load float64) domain.ExercisePrescription {
	return domain.ExercisePrescription{Name: name, Exercise: id, Sets: sets, Reps: reps, RIR: rir, RestSec: rest, Load: load}
}

// defaultProgram returns every session template of the program. Weeks with
// hand-written content are partial on purpose: the remaining days of those
// weeks have no content, which callers see as "no program defined".
func defaultProgram() []domain.SessionTemplate {
	var out []domain.SessionTemplate
	out = append(out, weekOne()...)
	out = append(out, phaseOneTests()...)
	out = append(out, barbellTransitionWeek()...)
	out = append(out, phaseTwoTests()...)
	out = append(out, performanceWeek()...)

	authored := map[int]bool{1: true, 8: true, 9: true, 20: true, 21: true}
	for week := 2; week <= ProgramWeeks; week++ {
		if authored[week] {
			continue
		}
		out = append(out, generatedWeek(week)...)
	}
	return out
}

func weekOne() []domain.SessionTemplate {
	base := domain.SessionTemplate{Week: 1, Phase: 1, Block: "AWAKENING"}

	d1 := base
	d1.Day, d1.Name, d1.Type, d1.DurationMin, d1.BaseXP = 1, "AWAKENING OF THE EARTH", domain.SessionUpper, 60, 120
	d1.WarmUp = "Neuro-activation 10 min: bike 3 min (RPE 3 to 5), joint mobility, activation drills, mental priming"
	d1.CoolDown = "Active recovery 5-10 min: easy bike, targeted stretching, 4-7-8 breathing"
	d1.Exercises = []domain.ExercisePrescription{
		{
			Name: "Dumbbell Goblet Squat", Exercise: domain.GobletSquat, Sets: 4, Reps: "10-12", RIR: 3, RestSec: 90,
			Tempo: "3-1-X-0", Load: 24, Cue: "Chest up, full depth, 1 s pause, knees track toes",
			Goal: "Own the front-loaded squat pattern",
		},
		{
			Name: "Dumbbell Romanian Deadlift", Exercise: domain.DumbbellRDL, Sets: 4, Reps: "10-12", RIR: 2, RestSec: 120,
			Tempo: "3-1-1-0", Load: 20, Cue: "Pure hip hinge, dumbbells slide along thighs, neutral back",
			Goal: "Build the posterior chain safely",
		},
		{
			Name: "Barbell Bent-over Row", Exercise: domain.BarbellRow, Sets: 3, Reps: "10-12", RIR: 3, RestSec: 90,
			Tempo: "2-1-1-0", Load: 40, Cue: "Torso parallel, bar to lower sternum, elbows tight",
			Goal: "Back thickness",
		},
	}

	d2 := base
	d2.Day, d2.Name, d2.Type, d2.DurationMin, d2.BaseXP = 2, "THE METABOLIC FURNACE", domain.SessionLower, 60, 110
	d2.WarmUp = "Neuro-activation 8 min: shoulder circles, dynamic push-ups, cardio activation"
	d2.CoolDown = "Recovery 5 min: walk, chest and shoulder stretches, hydration"
	d2.Exercises = []domain.ExercisePrescription{
		{
			Name: "Dumbbell Bench Press", Exercise: domain.DumbbellBench, Sets: 4, Reps: "8-10", RIR: 2, RestSec: 90,
			Tempo: "2-1-1-0", Load: 22, Cue: "Slight rotation, full range, shoulder blades retracted",
			Goal: "Pressing strength through full range",
		},
		{
			Name: "Dumbbell Military Press", Exercise: domain.DumbbellPress, Sets: 3, Reps: "10-12", RIR: 3, RestSec: 90,
			Tempo: "2-0-1-0", Load: 16, Cue: "Standing, braced core, press in line with shoulders",
			Goal: "Strong, stable shoulders",
		},
		{
			Name: "Assisted Pull-up", Exercise: domain.AssistedPullup, Sets: 4, Reps: "8-10", RIR: 2, RestSec: 90,
			Tempo: "2-0-2-0", Load: 50, Cue: "Band assistance, full extension, chin over the bar",
			Goal: "Progress toward strict pull-ups",
		},
	}

	d3 := base
	d3.Day, d3.Name, d3.Type, d3.DurationMin, d3.BaseXP = 3, "WAY OF THE SAMURAI", domain.SessionCardio, 45, 80
	d3.CoolDown = "Recovery 5 min: deep breathing, light stretching"
	d3.Exercises = []domain.ExercisePrescription{
		{
			Name: "HIIT Bike/Assault", Exercise: domain.HIITCardio, Sets: 8, Reps: "30s/90s", RIR: 0, RestSec: 90,
			Cue: "Max sprint 30 s, active recovery 90 s, repeat 8 times", Goal: "VO2max and aerobic capacity",
		},
		{
			Name: "Warrior Core", Exercise: domain.WarriorCore, Sets: 3, Reps: "30-45s", RIR: 1, RestSec: 45,
			Cue: "Front plank, side plank, hollow hold", Goal: "Rock-solid core",
		},
	}

	d4 := base
	d4.Day, d4.Name, d4.Type, d4.DurationMin, d4.BaseXP = 4, "TRIAL BY FIRE", domain.SessionUpper, 60, 110
	d4.Exercises = []domain.ExercisePrescription{
		{
			Name: "Barbell Hip Thrust", Exercise: domain.BarbellHipThrust, Sets: 4, Reps: "12-15", RIR: 2, RestSec: 90,
			Load: 45, Cue: "Drive hips up, squeeze glutes, 2 s pause at the top", Goal: "Glute hypertrophy",
		},
		{
			Name: "Dumbbell Goblet Squat", Exercise: domain.GobletSquat, Sets: 4, Reps: "10-12", RIR: 2, RestSec: 90,
			Load: 24, Cue: "Controlled descent, maximum depth", Goal: "Extra quadriceps volume",
		},
	}

	d5 := base
	d5.Day, d5.Name, d5.Type, d5.DurationMin, d5.BaseXP = 5, "THE INNER FORGE", domain.SessionLower, 60, 110
	d5.Exercises = []domain.ExercisePrescription{
		{
			Name: "Dumbbell Bench Press", Exercise: domain.DumbbellBench, Sets: 4, Reps: "8-10", RIR: 2, RestSec: 90,
			Load: 22, Cue: "Perfect technique, maximum range", Goal: "Consolidate pressing strength",
		},
	}

	d6 := base
	d6.Day, d6.Name, d6.Type, d6.DurationMin, d6.BaseXP = 6, "ACTIVE REST - MOBILITY", domain.SessionRest, 30, 30
	d6.Exercises = []domain.ExercisePrescription{
		{
			Name: "Dragon Flow", Exercise: domain.DragonFlow, Sets: 3, Reps: "5min", RIR: 0, RestSec: 60,
			Cue: "Deep squat, rotating lunge, crawl, all flowing", Goal: "Global mobility",
		},
	}

	d7 := base
	d7.Day, d7.Name, d7.Type, d7.DurationMin, d7.BaseXP = 7, "FULL REST", domain.SessionRest, 0, 30

	return []domain.SessionTemplate{d1, d2, d3, d4, d5, d6, d7}
}

func testSlot(name string, id domain.ExerciseID, reps string, rest int, protocol string) domain.ExercisePrescription {
	return domain.ExercisePrescription{Name: name, Exercise: id, Sets: 1, Reps: reps, RestSec: rest, Cue: protocol}
}

func phaseOneTests() []domain.SessionTemplate {
	base := domain.SessionTemplate{Week: 8, Phase: 1, Block: "TESTS", Type: domain.SessionTest, DurationMin: 75, BaseXP: 200}

	upper := base
	upper.Day, upper.Name = 1, "PHOENIX TESTS - UPPER STRENGTH"
	upper.Exercises = []domain.ExercisePrescription{
		testSlot("5RM Dumbbell Bench Press", domain.Test5RMDumbbellBench, "5RM", 180,
			"Progressive warm-up: 8@60%, 5@70%, 3@85%, then the 5RM attempt"),
		testSlot("Max Strict Pull-ups", domain.TestMaxPullups, "MAX", 180,
			"Perfect technique only, stop when form breaks down"),
	}

	lower := base
	lower.Day, lower.Name = 2, "PHOENIX TESTS - LOWER STRENGTH"
	lower.Exercises = []domain.ExercisePrescription{
		testSlot("8RM Goblet Squat", domain.Test8RMGobletSquat, "8RM", 180,
			"Progressive warm-up: 10@50%, 8@65%, 5@80%, then the 8RM attempt"),
		testSlot("Max Plank", domain.TestPlankMax, "MAX", 0, "Strict front plank until technical failure"),
	}

	cond := base
	cond.Day, cond.Name, cond.DurationMin = 3, "PHOENIX TESTS - CONDITIONING", 60
	cond.Exercises = []domain.ExercisePrescription{
		testSlot("2000 m Bike", domain.Test2000mBike, "2000m", 0, "5 min zone 2 warm-up, then 2000 m all out, record the time"),
		testSlot("3 min Burpees", domain.TestBurpees3Min, "MAX", 0, "AMRAP burpees for 3 min, count the total"),
	}

	return []domain.SessionTemplate{upper, lower, cond}
}

func barbellTransitionWeek() []domain.SessionTemplate {
	return []domain.SessionTemplate{{
		Week: 9, Day: 1, Name: "UPPER A - BARBELL TRANSITION", Type: domain.SessionUpper,
		Phase: 2, Block: "HYPERTROPHY", DurationMin: 60, BaseXP: 130,
		Exercises: []domain.ExercisePrescription{
			{
				Name: "Barbell Bench Press", Exercise: domain.BarbellBench, Sets: 5, Reps: "10-12", RIR: 2, RestSec: 90,
				Tempo: "3-1-1-0", Load: 50, Cue: "Empty bar on first use, technique first",
				Goal: "Maximal pressing strength and hypertrophy",
			},
			{
				Name: "Barbell Bent-over Row", Exercise: domain.BarbellRow, Sets: 4, Reps: "8-10", RIR: 2, RestSec: 90,
				Load: 45, Cue: "Higher intensity, lower RIR", Goal: "Back density",
			},
		},
	}}
}

func phaseTwoTests() []domain.SessionTemplate {
	return []domain.SessionTemplate{{
		Week: 20, Day: 1, Name: "PHOENIX TESTS - MAXIMAL STRENGTH", Type: domain.SessionTest,
		Phase: 2, Block: "TESTS", DurationMin: 90, BaseXP: 250,
		Exercises: []domain.ExercisePrescription{
			testSlot("3RM Barbell Bench Press", domain.Test3RMBarbellBench, "3RM", 240,
				"Warm-up: 8@50%, 5@65%, 3@80%, 2@90%, then the 3RM attempt"),
			testSlot("5RM Back Squat", domain.Test5RMBackSquat, "5RM", 240,
				"Progressive warm-up, 5RM attempt to full depth"),
		},
	}}
}

func performanceWeek() []domain.SessionTemplate {
	return []domain.SessionTemplate{{
		Week: 21, Day: 1, Name: "UPPER PERFORMANCE", Type: domain.SessionUpper,
		Phase: 3, Block: "PERFORMANCE", DurationMin: 75, BaseXP: 150,
		Exercises: []domain.ExercisePrescription{
			{
				Name: "Barbell Bench Press", Exercise: domain.BarbellBench, Sets: 5, Reps: "5-8", RIR: 1, RestSec: 180,
				Load: 60, Technique: domain.TechniqueClusters,
				Cue: "Clusters: 2 reps, 15 s, 2 reps, 15 s, 1-2 reps", Goal: "Maintain maximal strength",
			},
			{
				Name: "Progressive Pistol Squat", Exercise: domain.PistolSquat, Sets: 4, Reps: "5-8/leg", RIR: 2, RestSec: 120,
				Cue: "Progress by level: TRX assisted, box, full range", Goal: "Advanced skill development",
			},
		},
	}}
}

// generatedWeek builds the standard week layout used by every week without
// hand-written content.
func generatedWeek(week int) []domain.SessionTemplate {
	phase := PhaseForWeek(week)
	block := BlockForWeek(week)
	variant := "B"
	if week%2 == 1 {
		variant = "A"
	}
	xp := 100 + phase*20

	upper := domain.SessionTemplate{
		Week: week, Name: fmt.Sprintf("UPPER %s", variant), Type: domain.SessionUpper,
		Phase: phase, Block: block, DurationMin: 60, BaseXP: xp,
		Exercises: []domain.ExercisePrescription{
			rx("Push Pattern", domain.DumbbellBench, 4, "8-12", 2, 90, 24),
			rx("Pull Pattern", domain.BarbellRow, 4, "8-12", 2, 90, 40),
		},
	}
	lower := domain.SessionTemplate{
		Week: week, Name: fmt.Sprintf("LOWER %s", variant), Type: domain.SessionLower,
		Phase: phase, Block: block, DurationMin: 60, BaseXP: xp,
		Exercises: []domain.ExercisePrescription{
			rx("Squat Pattern", domain.GobletSquat, 4, "10-12", 2, 90, 24),
			rx("Hinge Pattern", domain.DumbbellRDL, 4, "10-12", 2, 90, 20),
		},
	}
	cond := domain.SessionTemplate{
		Week: week, Name: "CONDITIONING", Type: domain.SessionCardio,
		Phase: phase, Block: block, DurationMin: 45, BaseXP: 80,
		Exercises: []domain.ExercisePrescription{
			rx("HIIT Bike/Assault", domain.HIITCardio, 8, "30s/90s", 0, 90, 0),
			rx("Warrior Core", domain.WarriorCore, 3, "30-45s", 1, 45, 0),
		},
	}

	days := []domain.SessionTemplate{upper, lower, cond, upper, lower}
	out := make([]domain.SessionTemplate, 0, DaysPerWeek)
	for i, t := range days {
		t.Day = i + 1
		// Each day gets its own exercise slice.
		t.Exercises = append([]domain.ExercisePrescription(nil), t.Exercises...)
		out = append(out, t)
	}
	for day := ActiveRestDay; day <= FullRestDay; day++ {
		rest, _ := RestDayTemplate(week, day)
		out = append(out, rest)
	}
	return out
}
