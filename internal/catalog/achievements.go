package catalog

import "github.com/alexanderramin/apex/internal/domain"

func ach(id, name, desc string, xp int, r domain.Rarity, c domain.AchievementCategory) domain.Achievement {
	return domain.Achievement{ID: id, Name: name, Description: desc, XP: xp, Rarity: r, Category: c}
}

func defaultAchievements() []domain.Achievement {
	const (
		common        = domain.RarityCommon
		uncommon      = domain.RarityUncommon
		rare          = domain.RarityRare
		veryRare      = domain.RarityVeryRare
		extremelyRare = domain.RarityExtremelyRare
		legendary     = domain.RarityLegendary
	)
	return []domain.Achievement{
		ach("first_blood", "First Blood", "First session completed", 300, common, domain.AchievementFirstSteps),
		ach("week_warrior", "Week Warrior", "5 sessions in a row", 400, common, domain.AchievementFirstSteps),
		ach("journaler", "Journaler", "7 consecutive journal days", 250, common, domain.AchievementFirstSteps),
		ach("early_bird", "Early Bird", "5 sessions before 9am", 500, uncommon, domain.AchievementFirstSteps),

		ach("iron_initiate", "Iron Initiate", "Bench 50% of bodyweight", 400, common, domain.AchievementStrength),
		ach("iron_warrior", "Iron Warrior", "Bench 75% of bodyweight", 800, uncommon, domain.AchievementStrength),
		ach("iron_legend", "Iron Legend", "Bench 100% of bodyweight", 1500, rare, domain.AchievementStrength),
		ach("iron_titan", "Iron Titan", "Bench 1.25x bodyweight", 2500, veryRare, domain.AchievementStrength),
		ach("squat_apprentice", "Squat Apprentice", "Squat 75% of bodyweight", 400, common, domain.AchievementStrength),
		ach("squat_master", "Squat Master", "Squat 1.25x bodyweight", 1000, uncommon, domain.AchievementStrength),
		ach("squat_god", "Squat God", "Squat 1.75x bodyweight", 2000, veryRare, domain.AchievementStrength),

		ach("first_pull", "First Pull", "First strict pull-up", 1000, uncommon, domain.AchievementPullups),
		ach("pull_warrior", "Pull Warrior", "10 strict pull-ups", 1200, rare, domain.AchievementPullups),
		ach("pull_beast", "Pull Beast", "20 strict pull-ups", 2000, veryRare, domain.AchievementPullups),
		ach("weighted_warrior", "Weighted Warrior", "5 pull-ups with +10 kg", 1500, rare, domain.AchievementPullups),
		ach("gravity_defier", "Gravity Defier", "5 pull-ups with +25 kg", 2500, extremelyRare, domain.AchievementPullups),

		ach("pistol_apprentice", "Pistol Apprentice", "First assisted pistol squat", 600, uncommon, domain.AchievementSkills),
		ach("pistol_master", "Pistol Master", "5 strict pistols per leg", 1500, rare, domain.AchievementSkills),
		ach("handstand_60", "Handstand 60", "60 s handstand hold", 1500, rare, domain.AchievementSkills),
		ach("hspu_initiate", "HSPU Initiate", "First handstand push-up", 2000, veryRare, domain.AchievementSkills),
		ach("muscle_up_achieved", "Muscle-up", "First clean muscle-up", 3000, extremelyRare, domain.AchievementSkills),

		ach("plank_solid", "Plank Solid", "90 s plank", 400, common, domain.AchievementEndurance),
		ach("plank_iron", "Plank Iron", "3 min plank", 1000, rare, domain.AchievementEndurance),
		ach("hang_tough", "Hang Tough", "60 s dead hang", 500, uncommon, domain.AchievementEndurance),
		ach("hang_master", "Hang Master", "2 min dead hang", 1200, rare, domain.AchievementEndurance),

		ach("cardio_initiate", "Cardio Initiate", "2000 m bike under 10 min", 300, common, domain.AchievementConditioning),
		ach("cardio_warrior", "Cardio Warrior", "2000 m bike under 8 min", 700, uncommon, domain.AchievementConditioning),
		ach("cardio_beast", "Cardio Beast", "2000 m bike under 6 min", 1500, rare, domain.AchievementConditioning),
		ach("burpee_warrior", "Burpee Warrior", "50 burpees in 3 min", 800, uncommon, domain.AchievementConditioning),

		ach("streak_10", "Streak 10", "10 consecutive sessions", 600, uncommon, domain.AchievementConsistency),
		ach("streak_25", "Streak 25", "25 consecutive sessions", 1500, rare, domain.AchievementConsistency),
		ach("streak_50", "Streak 50", "50 consecutive sessions", 3000, veryRare, domain.AchievementConsistency),
		ach("monthly_perfect", "Monthly Perfect", "One month without a missed session", 2000, rare, domain.AchievementConsistency),

		ach("statham_status", "Statham Status", "12-15% body fat, visible muscle", 5000, veryRare, domain.AchievementTransformation),
		ach("bruce_lee_speed", "Bruce Lee Speed", "+50% explosiveness", 3000, veryRare, domain.AchievementTransformation),
		ach("body_recomp", "Body Recomp", "+5 kg muscle or -5 kg fat", 2500, rare, domain.AchievementTransformation),

		ach("recovery_sage", "Recovery Sage", "10 recovery sessions on low readiness", 1500, rare, domain.AchievementSpecial),
		ach("technique_perfect", "Technique Perfect", "25 sessions with perfect technique", 2000, rare, domain.AchievementSpecial),
		ach("neuro_master", "Neuro Master", "50 mental preparation protocols", 1800, rare, domain.AchievementSpecial),
		ach("phoenix_complete", "Phoenix Complete", "Reach level 20", 15000, legendary, domain.AchievementSpecial),
		ach("immortal_status", "Immortal Status", "Reach level 21", 25000, legendary, domain.AchievementSpecial),
	}
}
