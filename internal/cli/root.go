package cli

import (
	"time"

	"github.com/alexanderramin/apex/internal/app"
	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/spf13/cobra"
)

// App holds references to all use cases used by CLI commands.
type App struct {
	Onboard   app.OnboardUseCase
	Profile   app.ProfileUseCase
	Readiness app.ReadinessUseCase
	Sessions  app.SessionUseCase
	Rewards   app.RewardUseCase
	Status    app.StatusUseCase
	Import    app.ImportUseCase
	Export    app.ExportUseCase

	Catalog *catalog.Catalog

	// RestTick is one step of the rest countdown. Zero means one second.
	RestTick time.Duration

	// IsInteractive reports whether prompts and the full-screen rest timer
	// may be shown. Nil means non-interactive.
	IsInteractive func() bool

	// Confirm asks a yes/no question. Nil uses a huh form.
	Confirm func(title, description string) (bool, error)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) confirm(title, description string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(title, description)
	}
	return runConfirm(title, description)
}

// NewRootCmd creates the top-level "apex" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "apex",
		Short:         "Adaptive strength training planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newOnboardCmd(app),
		newReadinessCmd(app),
		newSessionCmd(app),
		newProgramCmd(app),
		newRestCmd(app),
		newStatusCmd(app),
		newAlertsCmd(app),
		newAchievementsCmd(app),
		newChallengeCmd(app),
		newQuestCmd(app),
		newTestCmd(app),
		newImportCmd(app),
		newExportCmd(app),
	)

	return root
}
