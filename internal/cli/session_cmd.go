package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/apex/internal/app"
	"github.com/alexanderramin/apex/internal/cli/formatter"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/service"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Run today's training session",
	}

	cmd.AddCommand(
		newSessionStartCmd(app),
		newSessionShowCmd(app),
		newSessionSetCmd(app),
		newSessionFinishCmd(app),
		newSessionAbandonCmd(app),
		newSessionListCmd(app),
		newSessionLogCmd(app),
	)

	return cmd
}

type startFlags struct {
	confirm bool
}

func (f startFlags) request() app.StartSessionRequest {
	return app.StartSessionRequest{Confirmed: f.confirm}
}

func newSessionStartCmd(app *App) *cobra.Command {
	var flags startFlags

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Generate and start the session for the current program day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			rx, err := app.Sessions.Start(ctx, flags.request())
			if errors.Is(err, service.ErrRecoveryConfirmationRequired) && !flags.confirm {
				if !app.interactive() {
					return fmt.Errorf("%w (re-run with --confirm)", err)
				}
				ok, cerr := app.confirm("Start the session anyway?", err.Error())
				if cerr != nil {
					return cerr
				}
				if !ok {
					fmt.Fprintln(out, "Session not started.")
					return nil
				}
				flags.confirm = true
				rx, err = app.Sessions.Start(ctx, flags.request())
			}
			if err != nil {
				return err
			}

			fmt.Fprint(out, formatter.FormatPrescription(rx))
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.confirm, "confirm", false, "Acknowledge a recovery day or a mandatory deload")

	return cmd
}

func newSessionShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			rx, err := app.Sessions.Active(context.Background())
			if errors.Is(err, service.ErrNoActiveSession) {
				fmt.Fprintln(cmd.OutOrStdout(), "No active session. Start one with: apex session start")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPrescription(rx))
			return nil
		},
	}
}

// seriesFlags collects one set update. Positions are one-based on the
// command line.
type seriesFlags struct {
	reps int
	load float64
	rir  int
	note string
}

func (f seriesFlags) request(cmd *cobra.Command, args []string) (app.SeriesUpdate, error) {
	exercise, err := strconv.Atoi(args[0])
	if err != nil || exercise < 1 {
		return app.SeriesUpdate{}, fmt.Errorf("invalid exercise number: %q", args[0])
	}
	set, err := strconv.Atoi(args[1])
	if err != nil || set < 1 {
		return app.SeriesUpdate{}, fmt.Errorf("invalid set number: %q", args[1])
	}

	req := app.SeriesUpdate{Exercise: exercise - 1, Set: set - 1}
	if cmd.Flags().Changed("reps") {
		req.Reps = &f.reps
	}
	if cmd.Flags().Changed("load") {
		req.Load = &f.load
	}
	if cmd.Flags().Changed("rir") {
		req.RIR = &f.rir
	}
	if cmd.Flags().Changed("note") {
		req.Note = &f.note
	}
	return req, nil
}

func newSessionSetCmd(app *App) *cobra.Command {
	var flags seriesFlags

	cmd := &cobra.Command{
		Use:   "set <exercise#> <set#>",
		Short: "Record a performed set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request(cmd, args)
			if err != nil {
				return err
			}
			rx, err := app.Sessions.UpdateSeries(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSeries(rx.Exercises[req.Exercise]))
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.reps, "reps", 0, "Repetitions performed (seconds for holds)")
	cmd.Flags().Float64Var(&flags.load, "load", 0, "Load in kg")
	cmd.Flags().IntVar(&flags.rir, "rir", 0, "Reps in reserve")
	cmd.Flags().StringVar(&flags.note, "note", "", "Set note")

	return cmd
}

type finishFlags struct {
	perfect    bool
	pr         bool
	mentalPrep bool
	notes      string
}

func (f finishFlags) request() app.FinishSessionRequest {
	return app.FinishSessionRequest{
		PerfectTechnique: f.perfect,
		PersonalRecord:   f.pr,
		MentalPrep:       f.mentalPrep,
		Notes:            f.notes,
	}
}

func newSessionFinishCmd(app *App) *cobra.Command {
	var flags finishFlags

	cmd := &cobra.Command{
		Use:   "finish",
		Short: "Finish the active session and collect XP",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Sessions.Finish(context.Background(), flags.request())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFinish(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.perfect, "perfect", false, "Technique was perfect on every set")
	cmd.Flags().BoolVar(&flags.pr, "pr", false, "A personal record was set")
	cmd.Flags().BoolVar(&flags.mentalPrep, "mental-prep", false, "Mental preparation was done")
	cmd.Flags().StringVar(&flags.notes, "notes", "", "Session journal entry")

	return cmd
}

func newSessionAbandonCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "abandon",
		Short: "Discard the active session without logging it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Abandon(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Session abandoned.")
			return nil
		},
	}
}

func newSessionListCmd(app *App) *cobra.Command {
	var limit, week int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List completed sessions",
		Long:  "List the most recent sessions, or with --week every session of one program week in day order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var (
				logs []*domain.SessionLog
				err  error
			)
			if cmd.Flags().Changed("week") {
				logs, err = app.Sessions.WeekHistory(ctx, week)
			} else {
				logs, err = app.Sessions.History(ctx, limit)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(logs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of sessions to show")
	cmd.Flags().IntVar(&week, "week", 0, "Show one program week")
	cmd.MarkFlagsMutuallyExclusive("limit", "week")

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log <id>",
		Short: "Show one completed session set by set",
		Long:  "Show one completed session. The id may be the short prefix printed by 'session list'.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := app.Sessions.Log(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionLog(l))
			return nil
		},
	}
}

func newProgramCmd(app *App) *cobra.Command {
	var week, day int

	cmd := &cobra.Command{
		Use:   "program",
		Short: "Preview the prescription for a program day",
		Long:  "Preview a program day without starting it. Defaults to the current position.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if !cmd.Flags().Changed("week") || !cmd.Flags().Changed("day") {
				w, d, err := currentPosition(ctx, app)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("week") {
					week = w
				}
				if !cmd.Flags().Changed("day") {
					day = d
				}
			}

			rx, err := app.Sessions.Preview(ctx, week, day)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPrescription(rx))
			return nil
		},
	}

	cmd.Flags().IntVar(&week, "week", 1, "Program week (1-40)")
	cmd.Flags().IntVar(&day, "day", 1, "Day of week (1-7)")

	return cmd
}

// currentPosition returns the profile's program position, or week 1 day 1
// before onboarding.
func currentPosition(ctx context.Context, app *App) (int, int, error) {
	p, err := app.Profile.Profile(ctx)
	if errors.Is(err, service.ErrNotOnboarded) {
		return 1, 1, nil
	}
	if err != nil {
		return 0, 0, err
	}
	return p.Week, p.Day, nil
}
