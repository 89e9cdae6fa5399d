package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/apex/internal/app"
	"github.com/alexanderramin/apex/internal/domain"
)

// FormatPrescription renders a session with one row per exercise and the
// per-set progress of the active session.
func FormatPrescription(rx *domain.SessionPrescription) string {
	var b strings.Builder

	title := fmt.Sprintf("Week %d · Day %d · %s", rx.Week, rx.Day, rx.Name)
	b.WriteString(Header(title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s  %s  %s\n",
		ModeBadge(rx.Mode),
		Dim(rx.Block),
		StyleFg.Render(fmt.Sprintf("%d min", rx.DurationMin)),
		StyleYellow.Render(fmt.Sprintf("%d XP", rx.BaseXP)),
	)
	if rx.WarmUp != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("Warm-up:"), rx.WarmUp)
	}
	b.WriteString("\n")

	if len(rx.Exercises) == 0 {
		b.WriteString(Dim("Rest day. Nothing to lift."))
		b.WriteString("\n")
		return b.String()
	}

	headers := []string{"#", "EXERCISE", "SETS", "REPS", "LOAD", "RIR", "REST", "DONE"}
	rows := make([][]string, 0, len(rx.Exercises))
	for i, ex := range rx.Exercises {
		name := Bold(ex.Name)
		if ex.Transitioned {
			name += StyleGreen.Render(" ↑")
		}
		if ex.Technique != "" {
			name += StylePurple.Render(" [" + string(ex.Technique) + "]")
		}
		rows = append(rows, []string{
			Dim(fmt.Sprint(i + 1)),
			name,
			fmt.Sprint(ex.Sets),
			ex.Reps,
			FormatLoad(ex.Load),
			fmt.Sprint(ex.RIR),
			FormatRest(ex.RestSec),
			seriesProgress(ex.Series),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	if rx.CoolDown != "" {
		fmt.Fprintf(&b, "\n%s %s\n", Dim("Cool-down:"), rx.CoolDown)
	}
	return b.String()
}

func seriesProgress(series []domain.SeriesRecord) string {
	done := 0
	for _, s := range series {
		if s.Performed() {
			done++
		}
	}
	text := fmt.Sprintf("%d/%d", done, len(series))
	if len(series) > 0 && done == len(series) {
		return StyleGreen.Render(text)
	}
	return Dim(text)
}

// FormatSeries renders the per-set detail of one exercise.
func FormatSeries(ex domain.PrescribedExercise) string {
	var b strings.Builder
	b.WriteString(Bold(ex.Name))
	b.WriteString("\n")
	for i, s := range ex.Series {
		reps, rir := Dim("-"), Dim("-")
		if s.Reps != nil {
			reps = fmt.Sprint(*s.Reps)
		}
		if s.RIR != nil {
			rir = fmt.Sprint(*s.RIR)
		}
		fmt.Fprintf(&b, "  set %d  %s × %s  RIR %s", i+1, FormatLoad(s.Load), reps, rir)
		if s.Note != "" {
			fmt.Fprintf(&b, "  %s", Dim(s.Note))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatFinish summarizes the rewards of a finished session.
func FormatFinish(resp *app.FinishSessionResponse) string {
	var b strings.Builder
	award := resp.Award

	fmt.Fprintf(&b, "%s %s\n", StyleGreen.Render("✔ Session complete:"), Bold(resp.Log.Name))
	fmt.Fprintf(&b, "  %s\n", StyleYellow.Render(fmt.Sprintf("+%d XP", award.SessionXP)))
	for _, id := range award.Improved {
		fmt.Fprintf(&b, "  %s %s\n", StyleGreen.Render("↑ new best"), string(id))
	}
	b.WriteString(formatAward(award.Award))

	p := resp.Profile
	fmt.Fprintf(&b, "  %s\n", Dim(fmt.Sprintf("Streak %d · next: week %d day %d", p.Streak, p.Week, p.Day)))
	return b.String()
}

// FormatSessionLog renders one completed session with its observed sets.
func FormatSessionLog(l *domain.SessionLog) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Week %d · Day %d · %s", l.Week, l.Day, l.Name)))
	b.WriteString("\n")

	score := "--"
	if l.ReadinessScore != nil {
		score = fmt.Sprintf("%.1f", *l.ReadinessScore)
	}
	fmt.Fprintf(&b, "%s  %s  %s  %s  %s\n",
		Dim(l.Date),
		ModeBadge(l.Mode),
		Dim("readiness "+score),
		StyleFg.Render(fmt.Sprintf("%d min", l.DurationMin)),
		StyleYellow.Render(fmt.Sprintf("%d XP", l.XP)),
	)
	for _, ex := range l.Exercises {
		b.WriteString("\n")
		b.WriteString(FormatSeries(ex))
	}
	if l.Notes != "" {
		fmt.Fprintf(&b, "\n%s %s\n", Dim("Notes:"), l.Notes)
	}
	return b.String()
}

// FormatHistory renders a list of sessions in the order given.
func FormatHistory(logs []*domain.SessionLog) string {
	if len(logs) == 0 {
		return Dim("No sessions logged yet.") + "\n"
	}
	headers := []string{"ID", "DATE", "SLOT", "SESSION", "MODE", "XP"}
	rows := make([][]string, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, []string{
			TruncID(l.ID),
			l.Date,
			fmt.Sprintf("W%d D%d", l.Week, l.Day),
			l.Name,
			ModeBadge(l.Mode),
			StyleYellow.Render(fmt.Sprint(l.XP)),
		})
	}
	return RenderTable(headers, rows)
}
