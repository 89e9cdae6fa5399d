package domain

// ReadinessMode is the discrete adaptation mode derived from a readiness score.
type ReadinessMode string

const (
	ModePerformance ReadinessMode = "performance"
	ModeStandard    ReadinessMode = "standard"
	ModeAdapted     ReadinessMode = "adapted"
	ModeRecovery    ReadinessMode = "recovery"
	ModeUnevaluated ReadinessMode = "unevaluated"
)

type SessionType string

const (
	SessionUpper    SessionType = "upper"
	SessionLower    SessionType = "lower"
	SessionCardio   SessionType = "cardio"
	SessionRest     SessionType = "rest"
	SessionTest     SessionType = "test"
	SessionRecovery SessionType = "recovery"
)

type ProgressionKind string

const (
	ProgressionLinearWeight      ProgressionKind = "linear_weight"
	ProgressionLinearReps        ProgressionKind = "linear_reps"
	ProgressionAssistedReduction ProgressionKind = "assisted_reduction"
	ProgressionTimeHold          ProgressionKind = "time_hold"
	ProgressionSkill             ProgressionKind = "skill_progression"
)

// TracksLoad reports whether ledger values for this policy are loads, as
// opposed to repetitions or seconds.
func (k ProgressionKind) TracksLoad() bool {
	return k == ProgressionLinearWeight
}

type MovementCategory string

const (
	CategoryCompound  MovementCategory = "compound"
	CategoryIsolation MovementCategory = "isolation"
	CategorySkill     MovementCategory = "skill"
	CategoryCardio    MovementCategory = "cardio"
	CategoryCore      MovementCategory = "core"
	CategoryMobility  MovementCategory = "mobility"
	CategoryTest      MovementCategory = "test"
	CategoryMetric    MovementCategory = "metric"
)

type Rarity string

const (
	RarityCommon        Rarity = "common"
	RarityUncommon      Rarity = "uncommon"
	RarityRare          Rarity = "rare"
	RarityVeryRare      Rarity = "very_rare"
	RarityExtremelyRare Rarity = "extremely_rare"
	RarityLegendary     Rarity = "legendary"
)

type AchievementCategory string

const (
	AchievementFirstSteps     AchievementCategory = "first_steps"
	AchievementStrength       AchievementCategory = "strength"
	AchievementPullups        AchievementCategory = "pullups"
	AchievementSkills         AchievementCategory = "skills"
	AchievementEndurance      AchievementCategory = "endurance"
	AchievementConditioning   AchievementCategory = "conditioning"
	AchievementConsistency    AchievementCategory = "consistency"
	AchievementTransformation AchievementCategory = "transformation"
	AchievementSpecial        AchievementCategory = "special"
)

type AlertKind string

const (
	AlertMandatoryDeload     AlertKind = "MANDATORY_DELOAD"
	AlertPerformancePlateau  AlertKind = "PERFORMANCE_PLATEAU"
	AlertProlongedStagnation AlertKind = "PROLONGED_STAGNATION"
)

// Technique identifies an intensification technique gated by level.
type Technique string

const (
	TechniqueDropSets         Technique = "drop_sets"
	TechniqueRestPause        Technique = "rest_pause"
	TechniqueClusters         Technique = "clusters"
	TechniqueContrastTraining Technique = "contrast_training"
	TechniqueWaveLoading      Technique = "wave_loading"
)

// Feature is an unlockable capability attached to a level tier.
type Feature string

const (
	FeatureDropSets             Feature = "drop_sets"
	FeaturePremiumJournal       Feature = "premium_journal"
	FeatureRestPause            Feature = "rest_pause"
	FeaturePerformanceTests     Feature = "performance_tests"
	FeaturePhase2Access         Feature = "phase_2_access"
	FeatureClusters             Feature = "clusters_training"
	FeatureContrastTraining     Feature = "contrast_training"
	FeatureUndulatingPeriods    Feature = "undulating_periodization"
	FeaturePhase3Access         Feature = "phase_3_access"
	FeatureMuscleSpecialization Feature = "muscle_group_specialization"
	FeatureCustomVariants       Feature = "custom_variants"
	FeatureOwnProgramming       Feature = "own_programming"
	FeatureAllContent           Feature = "all_content"
	FeaturePhoenixBadge         Feature = "phoenix_badge"
)
