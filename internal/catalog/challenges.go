package catalog

import (
	"fmt"

	"github.com/alexanderramin/apex/internal/domain"
)

func defaultChallenges() []domain.WeeklyChallenge {
	out := []domain.WeeklyChallenge{
		{Week: 1, Name: "The Awakening", Bonus: 200, Challenges: []domain.Challenge{
			{ID: "perfectionist", Name: "Perfectionist", Description: "3 sessions with technique 9/10+", XP: 400},
			{ID: "explorer", Name: "Explorer", Description: "Try 1 new mobility exercise", XP: 200},
			{ID: "scribe", Name: "Scribe", Description: "Journal every session", XP: 300},
		}},
		{Week: 2, Name: "Foundations", Challenges: []domain.Challenge{
			{ID: "consistency", Name: "Consistency", Description: "No missed session (5/5)", XP: 500},
			{ID: "progression", Name: "Progression", Description: "Add load on 2 exercises", XP: 350},
			{ID: "mindful", Name: "Mindful", Description: "Pre-session visualization 5 times", XP: 250},
		}},
		{Week: 3, Name: "Intensity", Challenges: []domain.Challenge{
			{ID: "push_limits", Name: "Push Limits", Description: "RIR 1 on 3 major lifts", XP: 450},
			{ID: "cardio_beast", Name: "Cardio Beast", Description: "Improve conditioning by 5%", XP: 400},
			{ID: "core_iron", Name: "Core Iron", Description: "Plank 60 s+", XP: 300},
		}},
		{Week: 4, Name: "Balance", Challenges: []domain.Challenge{
			{ID: "recovery_master", Name: "Recovery Master", Description: "Average readiness above 7.0", XP: 500},
			{ID: "mobility", Name: "Mobility", Description: "3 mobility sessions of 15 min+", XP: 350},
			{ID: "hydration", Name: "Hydration", Description: "3 L+ of water per day", XP: 200},
		}},
		{Week: 5, Name: "Rising Strength", Challenges: []domain.Challenge{
			{ID: "beat_pr", Name: "Beat a PR", Description: "Beat 1 personal record", XP: 600},
			{ID: "plus_5kg", Name: "+5 kg Compound", Description: "+5 kg on a compound lift", XP: 400},
			{ID: "zero_red", Name: "Zero Red", Description: "No readiness score below 5", XP: 300},
		}},
		{Week: 6, Name: "Endurance", Challenges: []domain.Challenge{
			{ID: "amrap_50", Name: "AMRAP 50+", Description: "More than 50 reps in an AMRAP", XP: 500},
			{ID: "farmers_50m", Name: "Farmer's 50 m", Description: "Farmer walk 50 m+", XP: 350},
			{ID: "streak_6", Name: "Streak 6", Description: "6 active days", XP: 400},
		}},
		{Week: 7, Name: "Deload Sage", Challenges: []domain.Challenge{
			{ID: "deload_respect", Name: "Deload Respect", Description: "Follow the deload protocol exactly", XP: 600},
			{ID: "sleep_8h", Name: "Sleep 8h", Description: "8 h+ of sleep, 7 nights out of 7", XP: 400},
			{ID: "gratitude", Name: "Gratitude", Description: "Daily gratitude journal", XP: 300},
		}},
		{Week: 8, Name: "Warrior Tests", Challenges: []domain.Challenge{
			{ID: "full_tests", Name: "Full Tests", Description: "Complete the test battery", XP: 700},
			{ID: "improvement_15", Name: "15% Better", Description: "15%+ over baseline", XP: 600},
			{ID: "photos", Name: "Progress Photos", Description: "Before and after photos", XP: 200},
		}},
	}
	for week := 9; week <= ProgramWeeks; week++ {
		out = append(out, domain.WeeklyChallenge{
			Week: week,
			Name: fmt.Sprintf("Week %d", week),
			Challenges: []domain.Challenge{
				{ID: fmt.Sprintf("challenge1_%d", week), Name: "Performance", Description: "Improve 1 performance", XP: 400},
				{ID: fmt.Sprintf("challenge2_%d", week), Name: "Consistency", Description: "5/5 sessions", XP: 300},
				{ID: fmt.Sprintf("challenge3_%d", week), Name: "Technique", Description: "Perfect technique focus", XP: 250},
			},
		})
	}
	return out
}

func defaultQuests() []domain.MonthlyQuest {
	return []domain.MonthlyQuest{
		{
			Month: 1, Name: "Renaissance", Description: "Complete phase 1 successfully",
			RewardXP: 1500, Badge: "Founder",
			Objectives: []domain.QuestObjective{
				{ID: "sessions_16", Description: "16+ sessions completed"},
				{ID: "progression_10", Description: "10%+ load progression"},
				{ID: "traction_progress", Description: "Pull-up progress"},
				{ID: "journal_90", Description: "Journal on 90%+ of days"},
			},
		},
		{
			Month: 2, Name: "Growth", Description: "Measurable transformation gains",
			RewardXP: 2000, Badge: "Builder",
			Objectives: []domain.QuestObjective{
				{ID: "body_change", Description: "+2 kg muscle or -2 kg fat"},
				{ID: "strength_20", Description: "+20% on 2 exercises"},
				{ID: "readiness_65", Description: "Average readiness above 6.5"},
				{ID: "zero_injury", Description: "No injury"},
			},
		},
		{
			Month: 3, Name: "Consolidation", Description: "Anchor the habits",
			RewardXP: 2500, Badge: "Consistency King",
			Objectives: []domain.QuestObjective{
				{ID: "streak_50", Description: "50+ day streak"},
				{ID: "mental_prep_90", Description: "Mental preparation on 90%+ of sessions"},
				{ID: "recovery_master", Description: "Average readiness above 7.0"},
				{ID: "strength_gains", Description: "Continuous progression"},
			},
		},
		{
			Month: 6, Name: "Confirmed Warrior", Description: "Major performance milestones",
			RewardXP: 5000, Badge: "Warrior Status",
			Objectives: []domain.QuestObjective{
				{ID: "pullups_10", Description: "10 strict pull-ups"},
				{ID: "squat_bodyweight", Description: "Squat bodyweight"},
				{ID: "bench_80pc", Description: "Bench 80% of bodyweight"},
				{ID: "cardio_sub7", Description: "2000 m bike under 7 min"},
			},
		},
		{
			Month: 12, Name: "Ultimate Phoenix", Description: "Complete transformation",
			RewardXP: 10000, Badge: "Phoenix Reborn",
			Objectives: []domain.QuestObjective{
				{ID: "body_composition", Description: "Target body composition"},
				{ID: "strength_goals", Description: "Strength goals reached"},
				{ID: "advanced_skill", Description: "1+ advanced skill"},
				{ID: "lifestyle_auto", Description: "Lifestyle on autopilot"},
			},
		},
	}
}
