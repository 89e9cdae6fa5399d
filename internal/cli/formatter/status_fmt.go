package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/apex/internal/app"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/safety"
)

const levelBarWidth = 20

// FormatStatus renders the athlete dashboard.
func FormatStatus(resp *app.StatusResponse) string {
	p := resp.Profile
	var b strings.Builder

	var card strings.Builder
	fmt.Fprintf(&card, "%s  %s\n", Bold(p.Name), Dim(fmt.Sprintf("%s belt · %s", p.Belt, p.Title)))
	fmt.Fprintf(&card, "Level %d  %s\n", p.Level, levelLine(resp))
	fmt.Fprintf(&card, "Week %d/40 · Day %d · Phase %d\n", p.Week, p.Day, p.Phase)
	fmt.Fprintf(&card, "Streak %d %s · Sessions %d", p.Streak, Dim(fmt.Sprintf("(best %d)", p.StreakMax)), resp.SessionCount)
	b.WriteString(RenderBox("apex", card.String()))
	b.WriteString("\n\n")

	b.WriteString(Header("Today"))
	b.WriteString("\n")
	if resp.Today != nil {
		score := resp.Today.Score
		fmt.Fprintf(&b, "Readiness %s  %s\n", FormatScore(&score), ModeBadge(resp.Mode))
	} else {
		fmt.Fprintf(&b, "%s\n", Dim("No readiness check-in yet. Run `apex readiness`."))
	}
	switch {
	case resp.Active != nil:
		fmt.Fprintf(&b, "Active: %s %s\n", Bold(resp.Active.Name), Dim(seriesSummary(resp.Active)))
	case resp.Next != nil:
		fmt.Fprintf(&b, "Next: %s %s\n", Bold(resp.Next.Name), Dim(fmt.Sprintf("(%s, %d min)", resp.Next.Type, resp.Next.DurationMin)))
	}

	if len(resp.Alerts) > 0 || len(resp.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatAlerts(resp.Alerts, resp.Recommendations))
	}
	return b.String()
}

func levelLine(resp *app.StatusResponse) string {
	prog := resp.Progress
	if prog.Next == nil {
		return StyleHeader.Render("MAX LEVEL") + Dim(fmt.Sprintf(" %d XP", resp.Profile.XP))
	}
	return RenderProgress(prog.Percent/100, levelBarWidth) +
		Dim(fmt.Sprintf(" %d XP · %d to level %d", resp.Profile.XP, prog.ToNext, prog.Next.Level))
}

func seriesSummary(rx *domain.SessionPrescription) string {
	done, total := 0, 0
	for _, ex := range rx.Exercises {
		for _, s := range ex.Series {
			total++
			if s.Performed() {
				done++
			}
		}
	}
	return fmt.Sprintf("(%d/%d sets)", done, total)
}

// FormatAlerts renders pattern alerts followed by the day's advisories.
func FormatAlerts(alerts []domain.SecurityAlert, recs []safety.Recommendation) string {
	var b strings.Builder
	b.WriteString(Header("Alerts"))
	b.WriteString("\n")
	if len(alerts) == 0 && len(recs) == 0 {
		b.WriteString(Dim("All clear."))
		b.WriteString("\n")
		return b.String()
	}
	for _, a := range alerts {
		style := StyleYellow
		if a.Blocking {
			style = StyleRed
		}
		fmt.Fprintf(&b, "%s %s\n", style.Render("▲ "+string(a.Kind)), a.Message)
		for _, s := range a.Suggestions {
			fmt.Fprintf(&b, "    %s %s\n", Dim("·"), s)
		}
	}
	for _, r := range recs {
		style := StyleDim
		switch r.Priority {
		case safety.PriorityHigh:
			style = StyleRed
		case safety.PriorityMedium:
			style = StyleYellow
		}
		fmt.Fprintf(&b, "%s %s\n", style.Render("●"), r.Message)
	}
	return b.String()
}

// FormatReadiness renders the result of a check-in.
func FormatReadiness(resp *app.ReadinessResponse) string {
	var b strings.Builder
	score := resp.Result.Score
	fmt.Fprintf(&b, "Readiness %s  %s\n", Bold(FormatScore(&score)), ModeBadge(resp.Result.Mode))
	if resp.Result.GripPenalized {
		fmt.Fprintf(&b, "%s\n", StyleYellow.Render("Grip dropped more than 15% from baseline: -1 point."))
	}
	if resp.Advice != "" {
		fmt.Fprintf(&b, "%s\n", Dim(resp.Advice))
	}
	if len(resp.Alerts) > 0 || len(resp.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatAlerts(resp.Alerts, resp.Recommendations))
	}
	return b.String()
}
