package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45%. pct is in [0,1].
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)
	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 0.33:
		style = StyleRed
	case pct < 0.66:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)
	if title != "" {
		content = StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
	}
	return box.Render(content)
}

// FormatLoad renders a load in kg without trailing zeros. Zero is bodyweight.
func FormatLoad(kg float64) string {
	if kg <= 0 {
		return "BW"
	}
	return strconv.FormatFloat(kg, 'f', -1, 64) + " kg"
}

// FormatScore renders an optional readiness score.
func FormatScore(score *float64) string {
	if score == nil {
		return Dim("--")
	}
	return fmt.Sprintf("%.1f/10", *score)
}

// FormatRest renders a rest period such as "1m30s".
func FormatRest(sec int) string {
	switch {
	case sec <= 0:
		return "--"
	case sec < 60:
		return fmt.Sprintf("%ds", sec)
	case sec%60 == 0:
		return fmt.Sprintf("%dm", sec/60)
	default:
		return fmt.Sprintf("%dm%02ds", sec/60, sec%60)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
