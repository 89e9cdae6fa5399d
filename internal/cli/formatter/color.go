package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/apex/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ModeStyle returns the color of a readiness mode.
func ModeStyle(mode domain.ReadinessMode) lipgloss.Style {
	switch mode {
	case domain.ModePerformance:
		return StyleGreen
	case domain.ModeStandard:
		return StyleBlue
	case domain.ModeAdapted:
		return StyleYellow
	case domain.ModeRecovery:
		return StyleRed
	default:
		return StyleDim
	}
}

// ModeBadge renders a mode such as "● ADAPTED".
func ModeBadge(mode domain.ReadinessMode) string {
	return ModeStyle(mode).Render("● " + strings.ToUpper(string(mode)))
}

func RarityStyle(r domain.Rarity) lipgloss.Style {
	switch r {
	case domain.RarityLegendary:
		return StyleHeader
	case domain.RarityExtremelyRare, domain.RarityVeryRare:
		return StylePurple
	case domain.RarityRare:
		return StyleBlue
	case domain.RarityUncommon:
		return StyleGreen
	default:
		return StyleFg
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
