package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/alexanderramin/apex/internal/app"
	"github.com/alexanderramin/apex/internal/cli/formatter"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/service"
	"github.com/spf13/cobra"
)

func newChallengeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Weekly challenges",
	}
	cmd.AddCommand(newChallengeShowCmd(app), newChallengeCompleteCmd(app))
	return cmd
}

func newChallengeShowCmd(app *App) *cobra.Command {
	var week int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the challenges of a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := profileOrNil(ctx, app)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("week") && p != nil {
				week = p.Week
			}

			wc, ok := app.Catalog.WeeklyChallenge(week)
			if !ok {
				return fmt.Errorf("%w: no challenges for week %d", service.ErrUnknownChallenge, week)
			}
			var done []string
			if p != nil {
				done = p.ChallengesDone(week)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChallenges(wc, done))
			return nil
		},
	}

	cmd.Flags().IntVar(&week, "week", 1, "Program week (defaults to the current week)")

	return cmd
}

type challengeFlags struct {
	week int
}

func (f challengeFlags) request(ids []string) app.ChallengeRequest {
	return app.ChallengeRequest{Week: f.week, IDs: ids}
}

func newChallengeCompleteCmd(app *App) *cobra.Command {
	var flags challengeFlags

	cmd := &cobra.Command{
		Use:   "complete <challenge-id>...",
		Short: "Mark challenges of a week as completed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if !cmd.Flags().Changed("week") {
				w, _, err := currentPosition(ctx, app)
				if err != nil {
					return err
				}
				flags.week = w
			}
			resp, err := app.Rewards.CompleteChallenges(ctx, flags.request(args))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReward(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.week, "week", 1, "Program week (defaults to the current week)")

	return cmd
}

func newQuestCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Monthly quests",
	}
	cmd.AddCommand(newQuestShowCmd(app), newQuestCompleteCmd(app))
	return cmd
}

// currentMonth maps a program week to its quest month.
func currentMonth(week int) int {
	return (max(week, 1)-1)/4 + 1
}

func newQuestShowCmd(app *App) *cobra.Command {
	var month int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a monthly quest",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := profileOrNil(context.Background(), app)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("month") && p != nil {
				month = currentMonth(p.Week)
			}

			q, ok := app.Catalog.Quest(month)
			if !ok {
				return fmt.Errorf("%w: no quest for month %d", service.ErrUnknownQuest, month)
			}
			rewarded := p != nil && slices.Contains(p.CompletedQuests, month)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuest(q, rewarded))
			return nil
		},
	}

	cmd.Flags().IntVar(&month, "month", 1, "Program month (defaults to the current month)")

	return cmd
}

type questFlags struct {
	month int
}

func (f questFlags) request(objectives []string) app.QuestRequest {
	return app.QuestRequest{Month: f.month, Objectives: objectives}
}

func newQuestCompleteCmd(app *App) *cobra.Command {
	var flags questFlags

	cmd := &cobra.Command{
		Use:   "complete <objective-id>...",
		Short: "Report completed quest objectives",
		Long:  "Report the objectives of a monthly quest. The reward is granted once all are reported.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Rewards.CompleteQuest(context.Background(), flags.request(args))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReward(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.month, "month", 0, "Program month")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

func newTestCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Performance tests",
	}
	cmd.AddCommand(newTestListCmd(app), newTestLogCmd(app))
	return cmd
}

func newTestListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List test protocols and current bests",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := profileOrNil(context.Background(), app)
			if err != nil {
				return err
			}
			var tests []domain.ExerciseDefinition
			for _, def := range app.Catalog.Exercises() {
				if def.Category == domain.CategoryTest {
					tests = append(tests, def)
				}
			}
			slices.SortFunc(tests, func(a, b domain.ExerciseDefinition) int {
				return strings.Compare(string(a.ID), string(b.ID))
			})
			var ledger domain.Ledger
			if p != nil {
				ledger = p.Ledger
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTests(tests, ledger))
			return nil
		},
	}
}

func testRequest(args []string) (app.LogTestRequest, error) {
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return app.LogTestRequest{}, fmt.Errorf("invalid value: %q", args[1])
	}
	return app.LogTestRequest{Exercise: domain.ExerciseID(args[0]), Value: v}, nil
}

func newTestLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log <test-id> <value>",
		Short: "Record a test result into the ledger",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := testRequest(args)
			if err != nil {
				return err
			}
			resp, err := app.Rewards.LogTest(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTestLog(resp))
			return nil
		},
	}
}

// profileOrNil returns the profile, or nil before onboarding.
func profileOrNil(ctx context.Context, app *App) (*domain.UserProfile, error) {
	p, err := app.Profile.Profile(ctx)
	if errors.Is(err, service.ErrNotOnboarded) {
		return nil, nil
	}
	return p, err
}
