package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/apex/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show level, streak, readiness and the next session",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Status.GetStatus(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatus(resp))
			return nil
		},
	}
}

func newAlertsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Show plateau, stagnation and readiness alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Status.GetStatus(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAlerts(resp.Alerts, resp.Recommendations))
			return nil
		},
	}
}

func newAchievementsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profile.Profile(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAchievements(app.Catalog.Achievements(), p))
			return nil
		},
	}
}
