package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/apex/internal/app"
	"github.com/alexanderramin/apex/internal/domain"
	"github.com/alexanderramin/apex/internal/progression"
)

// formatAward lists unlocked achievements and level changes.
func formatAward(a progression.Award) string {
	var b strings.Builder
	for _, id := range a.Unlocked {
		fmt.Fprintf(&b, "  %s %s\n", StylePurple.Render("★ achievement unlocked:"), Bold(id))
	}
	if a.AchievementXP > 0 {
		fmt.Fprintf(&b, "  %s\n", StyleYellow.Render(fmt.Sprintf("+%d XP from achievements", a.AchievementXP)))
	}
	if a.LeveledUp() {
		fmt.Fprintf(&b, "  %s\n", StyleHeader.Render(fmt.Sprintf("▲ LEVEL UP: %d → %d", a.LevelBefore, a.LevelAfter)))
	}
	return b.String()
}

func FormatOnboard(resp *app.OnboardResponse) string {
	p := resp.Profile
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleGreen.Render("✔ Welcome,"), Bold(p.Name))
	fmt.Fprintf(&b, "  %s\n", StyleYellow.Render(fmt.Sprintf("+%d XP onboarding bonus", progression.OnboardingXP)))
	b.WriteString(formatAward(resp.Award))
	fmt.Fprintf(&b, "  Level %d · %s belt · %s\n", p.Level, p.Belt, p.Title)
	return b.String()
}

func FormatTestLog(resp *app.LogTestResponse) string {
	out := resp.Outcome
	var b strings.Builder
	if out.Improved {
		fmt.Fprintf(&b, "%s %s: %s → %s\n", StyleGreen.Render("↑ New best"), string(out.Key),
			formatValue(out.Previous), Bold(formatValue(out.Value)))
	} else {
		fmt.Fprintf(&b, "%s %s: %s (best %s)\n", Dim("Logged"), string(out.Key),
			formatValue(out.Value), formatValue(out.Previous))
	}
	b.WriteString(formatAward(out.Award))
	return b.String()
}

func formatValue(v float64) string {
	if v <= 0 {
		return "--"
	}
	return fmt.Sprintf("%g", v)
}

func FormatReward(resp *app.RewardResponse) string {
	var b strings.Builder
	switch {
	case resp.XP > 0:
		fmt.Fprintf(&b, "%s\n", StyleYellow.Render(fmt.Sprintf("+%d XP", resp.XP)))
	case resp.Complete:
		fmt.Fprintf(&b, "%s\n", Dim("Already completed."))
	default:
		fmt.Fprintf(&b, "%s\n", Dim("Not complete yet. No XP granted."))
	}
	if len(resp.Newly) > 0 {
		fmt.Fprintf(&b, "  %s %s\n", Dim("new:"), strings.Join(resp.Newly, ", "))
	}
	b.WriteString(formatAward(resp.Award))
	return b.String()
}

// FormatAchievements lists the catalog with unlocked entries highlighted.
func FormatAchievements(all []domain.Achievement, p *domain.UserProfile) string {
	headers := []string{"", "ACHIEVEMENT", "RARITY", "XP", "DESCRIPTION"}
	rows := make([][]string, 0, len(all))
	unlocked := 0
	for _, a := range all {
		mark, name := Dim("○"), Dim(a.Name)
		if p.HasAchievement(a.ID) {
			mark, name = StyleGreen.Render("●"), Bold(a.Name)
			unlocked++
		}
		rows = append(rows, []string{
			mark,
			name,
			RarityStyle(a.Rarity).Render(string(a.Rarity)),
			fmt.Sprint(a.XP),
			Dim(a.Description),
		})
	}
	return RenderTable(headers, rows) + fmt.Sprintf("\n%d/%d unlocked\n", unlocked, len(all))
}

// FormatChallenges renders one week's challenges with completion marks.
func FormatChallenges(wc domain.WeeklyChallenge, done []string) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Week %d · %s", wc.Week, wc.Name)))
	b.WriteString("\n")
	for _, c := range wc.Challenges {
		mark := Dim("○")
		for _, d := range done {
			if d == c.ID {
				mark = StyleGreen.Render("●")
			}
		}
		fmt.Fprintf(&b, "%s %-16s %s  %s\n", mark, c.ID, StyleYellow.Render(fmt.Sprintf("%4d XP", c.XP)), Dim(c.Description))
	}
	if wc.Bonus > 0 {
		fmt.Fprintf(&b, "%s\n", Dim(fmt.Sprintf("Complete all for a %d XP bonus.", wc.Bonus)))
	}
	return b.String()
}

// FormatQuest renders one monthly quest and whether its reward was granted.
func FormatQuest(q domain.MonthlyQuest, rewarded bool) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Month %d · %s", q.Month, q.Name)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", Dim(q.Description))
	for _, o := range q.Objectives {
		fmt.Fprintf(&b, "  %-18s %s\n", o.ID, Dim(o.Description))
	}
	reward := fmt.Sprintf("Reward: %d XP · badge %q", q.RewardXP, q.Badge)
	if rewarded {
		fmt.Fprintf(&b, "%s %s\n", StyleGreen.Render("● completed"), Dim(reward))
	} else {
		fmt.Fprintf(&b, "%s\n", StyleYellow.Render(reward))
	}
	return b.String()
}

// FormatTests lists test protocols with the ledger value they record into.
func FormatTests(tests []domain.ExerciseDefinition, ledger domain.Ledger) string {
	if len(tests) == 0 {
		return Dim("No tests defined.") + "\n"
	}
	headers := []string{"TEST", "NAME", "RECORDS", "BEST"}
	rows := make([][]string, 0, len(tests))
	for _, t := range tests {
		rows = append(rows, []string{
			string(t.ID),
			t.Name,
			Dim(string(t.Records)),
			formatValue(ledger[t.Records]),
		})
	}
	return RenderTable(headers, rows)
}

func FormatImport(resp *app.ImportResponse) string {
	p := resp.Profile
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleGreen.Render("✔ Imported"), Bold(p.Name))
	fmt.Fprintf(&b, "  %d sessions · resuming week %d day %d\n", resp.Sessions, p.Week, p.Day)
	b.WriteString(formatAward(resp.Award))
	fmt.Fprintf(&b, "  Level %d · %s belt · %s · %d XP\n", p.Level, p.Belt, p.Title, p.XP)
	return b.String()
}
