package catalog

import "github.com/alexanderramin/apex/internal/domain"

func defaultTechniques() []domain.IntensificationTechnique {
	return []domain.IntensificationTechnique{
		{
			ID: domain.TechniqueDropSets, Name: "Drop Sets", RequiredLevel: 5,
			Description: "Set to RIR 0, drop the load 30%, immediately max reps",
			Usage:       "Last set of isolation work only",
		},
		{
			ID: domain.TechniqueRestPause, Name: "Rest-Pause", RequiredLevel: 8,
			Description: "Set to RIR 0, 15 s rest, 2-4 reps, 15 s, 1-3 reps",
			Usage:       "Compound or isolation exercises",
		},
		{
			ID: domain.TechniqueClusters, Name: "Clusters", RequiredLevel: 11,
			Description: "2 reps, 15 s rest, 2 reps, 15 s, 1-2 reps at 85-90% 1RM",
			Usage:       "Heavy compound lifts",
		},
		{
			ID: domain.TechniqueContrastTraining, Name: "Contrast Training (PAP)", RequiredLevel: 11,
			Description: "Heavy 5 reps at 85%+, 30 s rest, explosive 8 reps at 60%, 3 min rest",
			Usage:       "Post-activation potentiation complexes",
		},
		{
			ID: domain.TechniqueWaveLoading, Name: "Wave Loading", RequiredLevel: 14,
			Description: "Set 1: 5 reps, set 2: 3 reps, set 3: 1 rep with rising load",
			Usage:       "Maximal strength phase",
		},
	}
}
