package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/apex/internal/app"
	"github.com/alexanderramin/apex/internal/cli/formatter"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newOnboardCmd(app *App) *cobra.Command {
	var req onboardFlags

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Create the athlete profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Onboard.Onboard(context.Background(), req.request())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOnboard(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.name, "name", "", "Athlete name")
	cmd.Flags().IntVar(&req.age, "age", 0, "Age in years")
	cmd.Flags().Float64Var(&req.height, "height", 0, "Height in cm")
	cmd.Flags().Float64Var(&req.bodyweight, "bodyweight", 0, "Bodyweight in kg")
	cmd.Flags().Float64Var(&req.grip, "grip", 0, "Baseline grip strength in kg")
	cmd.Flags().BoolVar(&req.mentalPrep, "mental-prep", true, "Include mental preparation prompts")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("bodyweight")

	return cmd
}

type onboardFlags struct {
	name       string
	age        int
	height     float64
	bodyweight float64
	grip       float64
	mentalPrep bool
}

func (f onboardFlags) request() app.OnboardRequest {
	req := app.OnboardRequest{
		Name:         f.name,
		Age:          f.age,
		HeightCm:     f.height,
		BodyweightKg: f.bodyweight,
		GripBaseline: f.grip,
	}
	req.Preferences.WeightUnit = "kg"
	req.Preferences.AutoProgression = true
	req.Preferences.MentalPrep = f.mentalPrep
	return req
}

// ratingValue is a pflag.Value accepting a self-rating in [1,10].
type ratingValue struct {
	v *float64
}

var _ pflag.Value = ratingValue{}

func newRatingValue(p *float64) ratingValue { return ratingValue{v: p} }

func (r ratingValue) String() string {
	if r.v == nil || *r.v == 0 {
		return ""
	}
	return strconv.FormatFloat(*r.v, 'f', -1, 64)
}

func (r ratingValue) Set(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	if f < 1 || f > 10 {
		return fmt.Errorf("rating must be between 1 and 10, got %v", f)
	}
	*r.v = f
	return nil
}

func (r ratingValue) Type() string { return "rating" }

type readinessFlags struct {
	components domain.ReadinessComponents
	grip       float64
}

func (f readinessFlags) request() app.ReadinessRequest {
	return app.ReadinessRequest{Components: f.components, Grip: f.grip}
}

func newReadinessCmd(app *App) *cobra.Command {
	var req readinessFlags

	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Record today's readiness check-in",
		Long: "Rate sleep, energy, calm and absence of pain from 1 to 10. " +
			"Today's score drives the session mode.",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Readiness.RecordReadiness(context.Background(), req.request())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReadiness(resp))
			return nil
		},
	}

	cmd.Flags().Var(newRatingValue(&req.components.Sleep), "sleep", "Sleep quality (1-10)")
	cmd.Flags().Var(newRatingValue(&req.components.Energy), "energy", "Energy level (1-10)")
	cmd.Flags().Var(newRatingValue(&req.components.Calm), "calm", "Calm, inverse of stress (1-10)")
	cmd.Flags().Var(newRatingValue(&req.components.PainAbsence), "pain", "Absence of pain (1-10, 10 = no pain)")
	cmd.Flags().Float64Var(&req.grip, "grip", 0, "Grip test in kg (optional)")
	for _, name := range []string{"sleep", "energy", "calm", "pain"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
