package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/alexanderramin/apex/internal/cli/formatter"
	"github.com/alexanderramin/apex/internal/service"
	"github.com/alexanderramin/apex/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRestCmd(app *App) *cobra.Command {
	var exercise int

	cmd := &cobra.Command{
		Use:   "rest [seconds]",
		Short: "Run the rest timer between sets",
		Long: "Count down a rest period. Without a duration, uses the rest period " +
			"of an exercise of the active session.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			seconds, label, err := restTarget(ctx, app, args, exercise)
			if err != nil {
				return err
			}

			rt := timer.New(app.RestTick)
			if !app.interactive() {
				runRestPlain(ctx, cmd.OutOrStdout(), rt, label, seconds)
				return nil
			}

			m := newRestModel(ctx, rt, label, seconds)
			_, err = tea.NewProgram(m, tea.WithOutput(cmd.OutOrStdout())).Run()
			rt.Stop()
			return err
		},
	}

	cmd.Flags().IntVar(&exercise, "exercise", 1, "Exercise number in the active session")

	return cmd
}

// restTarget resolves the countdown length and its label from an explicit
// duration or from the active session.
func restTarget(ctx context.Context, app *App, args []string, exercise int) (int, string, error) {
	if len(args) == 1 {
		seconds, err := strconv.Atoi(args[0])
		if err != nil || seconds <= 0 {
			return 0, "", fmt.Errorf("invalid duration: %q", args[0])
		}
		return seconds, "", nil
	}

	rx, err := app.Sessions.Active(ctx)
	if errors.Is(err, service.ErrNoActiveSession) {
		return 0, "", fmt.Errorf("%w: pass a duration in seconds", err)
	}
	if err != nil {
		return 0, "", err
	}
	if exercise < 1 || exercise > len(rx.Exercises) {
		return 0, "", fmt.Errorf("%w: exercise %d of %d", service.ErrSeriesOutOfRange, exercise, len(rx.Exercises))
	}
	ex := rx.Exercises[exercise-1]
	if ex.RestSec <= 0 {
		return 0, "", fmt.Errorf("%s has no rest period", ex.Name)
	}
	return ex.RestSec, ex.Name, nil
}

// runRestPlain prints a line-based countdown for non-terminal output.
func runRestPlain(ctx context.Context, w io.Writer, rt *timer.RestTimer, label string, seconds int) {
	if label != "" {
		fmt.Fprintf(w, "Rest %s · %s\n", formatter.FormatRest(seconds), label)
	} else {
		fmt.Fprintf(w, "Rest %s\n", formatter.FormatRest(seconds))
	}
	for t := range rt.Start(ctx, seconds) {
		switch {
		case t.Done:
			fmt.Fprintln(w, "Rest complete.")
		case t.Remaining < seconds && (t.Remaining%10 == 0 || t.Remaining <= 3):
			fmt.Fprintf(w, "  %s\n", formatter.FormatRest(t.Remaining))
		}
	}
}
