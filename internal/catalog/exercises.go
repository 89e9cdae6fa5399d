package catalog

import "github.com/alexanderramin/apex/internal/domain"

func weight(inc float64, reps int) domain.ProgressionPolicy {
	return domain.ProgressionPolicy{Kind: domain.ProgressionLinearWeight, Increment: inc, TargetReps: reps}
}

func reps(target int) domain.ProgressionPolicy {
	return domain.ProgressionPolicy{Kind: domain.ProgressionLinearReps, TargetReps: target}
}

func skill(target int) domain.ProgressionPolicy {
	return domain.ProgressionPolicy{Kind: domain.ProgressionSkill, TargetReps: target}
}

func hold(seconds int) domain.ProgressionPolicy {
	return domain.ProgressionPolicy{Kind: domain.ProgressionTimeHold, TargetSeconds: seconds}
}

func requires(week int, thresholds map[domain.ExerciseID]float64) *domain.Prerequisites {
	return &domain.Prerequisites{Thresholds: thresholds, MinWeek: week}
}

// defaultExercises is the exercise catalog, including test protocols and
// ledger-only metrics.
func defaultExercises() []domain.ExerciseDefinition {
	return []domain.ExerciseDefinition{
		// Phase 1 foundations.
		{
			ID: domain.GobletSquat, Name: "Dumbbell Goblet Squat", Category: domain.CategoryCompound,
			MuscleGroups: []string{"quadriceps", "glutes", "core"}, Equipment: "dumbbell",
			Progression: weight(2.5, 12),
		},
		{
			ID: domain.BackSquat, Name: "Barbell Back Squat", Category: domain.CategoryCompound,
			MuscleGroups: []string{"quadriceps", "glutes", "hamstrings"}, Equipment: "barbell",
			Prerequisites: requires(9, map[domain.ExerciseID]float64{domain.GobletSquat: 32}),
			Progression:   weight(5, 10),
		},
		{
			ID: domain.DumbbellBench, Name: "Dumbbell Bench Press", Category: domain.CategoryCompound,
			MuscleGroups: []string{"chest", "triceps", "front_delts"}, Equipment: "dumbbells",
			Progression: weight(2.5, 12),
		},
		{
			ID: domain.BarbellBench, Name: "Barbell Bench Press", Category: domain.CategoryCompound,
			MuscleGroups: []string{"chest", "triceps", "front_delts"}, Equipment: "barbell",
			Prerequisites: requires(11, map[domain.ExerciseID]float64{domain.DumbbellBench: 28}),
			Progression:   weight(2.5, 8),
		},
		{
			ID: domain.AssistedPullup, Name: "Assisted Pull-up", Category: domain.CategoryCompound,
			MuscleGroups: []string{"lats", "biceps", "core"}, Equipment: "pullup_bar",
			Progression: domain.ProgressionPolicy{
				Kind: domain.ProgressionAssistedReduction, TargetReps: 10, AssistanceReduction: 15,
			},
		},
		{
			ID: domain.StrictPullup, Name: "Strict Pull-up", Category: domain.CategoryCompound,
			MuscleGroups: []string{"lats", "biceps", "core"}, Equipment: "pullup_bar",
			Prerequisites: requires(9, map[domain.ExerciseID]float64{domain.AssistedPullup: 10}),
			Progression:   reps(15),
		},
		{
			ID: domain.WeightedPullup, Name: "Weighted Pull-up", Category: domain.CategoryCompound,
			MuscleGroups: []string{"lats", "biceps", "core"}, Equipment: "pullup_bar",
			Prerequisites: requires(13, map[domain.ExerciseID]float64{domain.StrictPullup: 12}),
			Progression:   weight(2.5, 5),
		},
		{
			ID: domain.DumbbellRDL, Name: "Dumbbell Romanian Deadlift", Category: domain.CategoryCompound,
			MuscleGroups: []string{"hamstrings", "glutes", "lower_back"}, Equipment: "dumbbells",
			Progression: weight(2.5, 12),
		},
		{
			ID: domain.BarbellRDL, Name: "Barbell Romanian Deadlift", Category: domain.CategoryCompound,
			MuscleGroups: []string{"hamstrings", "glutes", "lower_back"}, Equipment: "barbell",
			Prerequisites: requires(9, map[domain.ExerciseID]float64{domain.DumbbellRDL: 28}),
			Progression:   weight(5, 10),
		},
		{
			ID: domain.BarbellRow, Name: "Barbell Bent-over Row", Category: domain.CategoryCompound,
			MuscleGroups: []string{"lats", "rhomboids", "traps"}, Equipment: "barbell",
			Progression: weight(2.5, 12),
		},
		{
			ID: domain.DumbbellPress, Name: "Dumbbell Military Press", Category: domain.CategoryCompound,
			MuscleGroups: []string{"delts", "triceps", "core"}, Equipment: "dumbbells",
			Progression: weight(2, 12),
		},
		{
			ID: domain.BarbellHipThrust, Name: "Barbell Hip Thrust", Category: domain.CategoryIsolation,
			MuscleGroups: []string{"glutes", "hamstrings"}, Equipment: "barbell",
			Progression: weight(5, 15),
		},
		{
			ID: domain.Dips, Name: "Parallel Bar Dips", Category: domain.CategoryCompound,
			MuscleGroups: []string{"chest", "triceps", "front_delts"}, Equipment: "dip_bars",
			Progression: reps(20),
		},

		// Phase 3 skills.
		{
			ID: domain.PistolSquat, Name: "Pistol Squat", Category: domain.CategorySkill,
			MuscleGroups: []string{"quadriceps", "glutes", "core", "balance"}, Equipment: "bodyweight",
			Prerequisites: requires(21, map[domain.ExerciseID]float64{domain.BackSquat: 1.25}),
			Progression:   skill(5),
		},
		{
			ID: domain.HandstandHold, Name: "Handstand Hold", Category: domain.CategorySkill,
			MuscleGroups: []string{"shoulders", "core", "balance"}, Equipment: "bodyweight",
			Prerequisites: requires(21, map[domain.ExerciseID]float64{domain.DumbbellPress: 0.5}),
			Progression:   hold(60),
		},
		{
			ID: domain.HandstandPushup, Name: "Handstand Push-up", Category: domain.CategorySkill,
			MuscleGroups: []string{"shoulders", "triceps", "core"}, Equipment: "bodyweight",
			Prerequisites: requires(25, map[domain.ExerciseID]float64{domain.HandstandHold: 30}),
			Progression:   skill(5),
		},
		{
			ID: domain.MuscleUp, Name: "Muscle-up", Category: domain.CategorySkill,
			MuscleGroups: []string{"lats", "chest", "triceps", "core"}, Equipment: "pullup_bar",
			Prerequisites: requires(25, map[domain.ExerciseID]float64{domain.StrictPullup: 15, domain.Dips: 20}),
			Progression:   skill(5),
		},

		// Conditioning, core, and mobility.
		{
			ID: domain.HIITCardio, Name: "HIIT Bike/Assault", Category: domain.CategoryCardio,
			MuscleGroups: []string{"cardio"}, Equipment: "bike", Progression: reps(8),
		},
		{
			ID: domain.WarriorCore, Name: "Warrior Core Circuit", Category: domain.CategoryCore,
			MuscleGroups: []string{"core"}, Equipment: "bodyweight", Progression: hold(45),
		},
		{
			ID: domain.DragonFlow, Name: "Dragon Flow", Category: domain.CategoryMobility,
			MuscleGroups: []string{"full_body"}, Equipment: "bodyweight", Progression: hold(300),
		},
		{
			ID: domain.GentleMobility, Name: "Gentle Mobility 20 min", Category: domain.CategoryMobility,
			MuscleGroups: []string{"full_body"}, Equipment: "bodyweight", Progression: hold(1200),
		},

		// Ledger-only metrics.
		{ID: domain.PlankMaxSec, Name: "Max Plank (s)", Category: domain.CategoryMetric, Progression: hold(180)},
		{ID: domain.DeadHangMaxSec, Name: "Max Dead Hang (s)", Category: domain.CategoryMetric, Progression: hold(120)},
		{
			ID: domain.Bike2000mSec, Name: "2000 m Bike (s)", Category: domain.CategoryMetric,
			Progression: hold(360), LowerIsBetter: true,
		},
		{ID: domain.Burpees3MinMax, Name: "Burpees in 3 min", Category: domain.CategoryMetric, Progression: reps(50)},

		// Test protocols record into the ledger key they measure.
		{
			ID: domain.Test5RMDumbbellBench, Name: "5RM Test Dumbbell Bench Press", Category: domain.CategoryTest,
			Progression: weight(0, 5), Records: domain.DumbbellBench,
		},
		{
			ID: domain.TestMaxPullups, Name: "Max Strict Pull-ups Test", Category: domain.CategoryTest,
			Progression: reps(0), Records: domain.StrictPullup,
		},
		{
			ID: domain.Test8RMGobletSquat, Name: "8RM Test Goblet Squat", Category: domain.CategoryTest,
			Progression: weight(0, 8), Records: domain.GobletSquat,
		},
		{
			ID: domain.TestPlankMax, Name: "Max Plank Test", Category: domain.CategoryTest,
			Progression: hold(0), Records: domain.PlankMaxSec,
		},
		{
			ID: domain.Test2000mBike, Name: "2000 m Bike Test", Category: domain.CategoryTest,
			Progression: hold(0), Records: domain.Bike2000mSec, LowerIsBetter: true,
		},
		{
			ID: domain.TestBurpees3Min, Name: "3 min Burpees Test", Category: domain.CategoryTest,
			Progression: reps(0), Records: domain.Burpees3MinMax,
		},
		{
			ID: domain.Test3RMBarbellBench, Name: "3RM Test Barbell Bench Press", Category: domain.CategoryTest,
			Progression: weight(0, 3), Records: domain.BarbellBench,
		},
		{
			ID: domain.Test5RMBackSquat, Name: "5RM Test Back Squat", Category: domain.CategoryTest,
			Progression: weight(0, 5), Records: domain.BackSquat,
		},
	}
}

// DefaultLedger is the ledger a new profile starts with: the template
// starting loads of the phase 1 exercises.
func DefaultLedger() domain.Ledger {
	return domain.Ledger{
		domain.GobletSquat:      24,
		domain.DumbbellRDL:      20,
		domain.DumbbellBench:    22,
		domain.DumbbellPress:    16,
		domain.BarbellRow:       40,
		domain.BarbellHipThrust: 45,
	}
}
