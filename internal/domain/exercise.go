package domain

// ExerciseID identifies an exercise, a test, or a tracked metric. It is the
// key of the progression ledger. The set of valid IDs is closed: every ID
// referenced by a template, prerequisite, or achievement predicate must have
// a definition in the exercise catalog.
type ExerciseID string

// Strength and skill exercises.
const (
	GobletSquat      ExerciseID = "goblet_squat"
	BackSquat        ExerciseID = "back_squat"
	DumbbellBench    ExerciseID = "dumbbell_bench_press"
	BarbellBench     ExerciseID = "barbell_bench_press"
	AssistedPullup   ExerciseID = "assisted_pullup"
	StrictPullup     ExerciseID = "strict_pullup"
	WeightedPullup   ExerciseID = "weighted_pullup"
	DumbbellRDL      ExerciseID = "dumbbell_rdl"
	BarbellRDL       ExerciseID = "barbell_rdl"
	BarbellRow       ExerciseID = "barbell_row"
	DumbbellPress    ExerciseID = "dumbbell_military_press"
	BarbellHipThrust ExerciseID = "barbell_hip_thrust"
	Dips             ExerciseID = "dips"
	PistolSquat      ExerciseID = "pistol_squat"
	HandstandHold    ExerciseID = "handstand_hold"
	HandstandPushup  ExerciseID = "handstand_pushup"
	MuscleUp         ExerciseID = "muscle_up"
	HIITCardio       ExerciseID = "hiit_cardio"
	WarriorCore      ExerciseID = "warrior_core"
	DragonFlow       ExerciseID = "dragon_flow"
	GentleMobility   ExerciseID = "gentle_mobility"
)

// Test protocols performed during test weeks.
const (
	Test5RMDumbbellBench ExerciseID = "test_5rm_dumbbell_bench"
	TestMaxPullups       ExerciseID = "test_max_pullups"
	Test8RMGobletSquat   ExerciseID = "test_8rm_goblet_squat"
	TestPlankMax         ExerciseID = "test_plank_max"
	Test2000mBike        ExerciseID = "test_2000m_bike"
	TestBurpees3Min      ExerciseID = "test_burpees_3min"
	Test3RMBarbellBench  ExerciseID = "test_3rm_barbell_bench"
	Test5RMBackSquat     ExerciseID = "test_5rm_back_squat"
)

// Metrics recorded in the ledger that are not exercises in their own right.
const (
	PlankMaxSec    ExerciseID = "plank_max_sec"
	DeadHangMaxSec ExerciseID = "dead_hang_max_sec"
	Bike2000mSec   ExerciseID = "bike_2000m_sec"
	Burpees3MinMax ExerciseID = "burpees_3min_max"
)

// Prerequisites gate an exercise transition. Every threshold must be met by
// the ledger and the program week must be at least MinWeek.
type Prerequisites struct {
	Thresholds map[ExerciseID]float64
	MinWeek    int
}

// ProgressionPolicy describes how an exercise advances.
type ProgressionPolicy struct {
	Kind                ProgressionKind
	Increment           float64
	TargetReps          int
	TargetSeconds       int
	AssistanceReduction float64
}

type ExerciseDefinition struct {
	ID            ExerciseID
	Name          string
	Category      MovementCategory
	MuscleGroups  []string
	Equipment     string
	Prerequisites *Prerequisites
	Progression   ProgressionPolicy
	// Records is the ledger key a logged result updates. Empty means the
	// exercise's own ID.
	Records ExerciseID
	// LowerIsBetter marks timed results where a smaller value is an improvement.
	LowerIsBetter bool
}

// LedgerKey returns the ledger key results for this exercise are recorded under.
func (d ExerciseDefinition) LedgerKey() ExerciseID {
	if d.Records != "" {
		return d.Records
	}
	return d.ID
}
