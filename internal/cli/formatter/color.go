package formatter

import (
	"fmt"
	"strings"

	"github.com/Sgowda7697/Dream2Reality/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// BudgetBadge returns a colored budget indicator such as "● MEDIUM".
func BudgetBadge(b domain.Budget) string {
	label := "● " + strings.ToUpper(string(b))
	switch b {
	case domain.BudgetLow:
		return StyleGreen.Render(label)
	case domain.BudgetMedium:
		return StyleYellow.Render(label)
	case domain.BudgetHigh:
		return StyleRed.Render(label)
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// SourceBadge marks flight data as live or estimated.
func SourceBadge(isFallback bool) string {
	if isFallback {
		return StyleYellow.Render("○ ESTIMATED") + Dim(" (provider unavailable, sample fares)")
	}
	return StyleGreen.Render("● LIVE")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
