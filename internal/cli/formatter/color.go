package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/gemdesk/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
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
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the style for a quotation status. The mapping runs
// cool-to-warm along the lifecycle: blue while intake, yellow during
// manufacturing, green once delivered, red for the dead ends.
func StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusNew:
		return StyleBlue
	case domain.StatusPending:
		return StyleYellow
	case domain.StatusApproved:
		return StyleGreen
	case domain.StatusDeclined:
		return StyleRed
	case domain.StatusSendToManufacture:
		return StylePurple
	case domain.StatusManufacturingComplete:
		return StyleAqua
	case domain.StatusSentForShipping:
		return StyleYellow
	case domain.StatusShipped:
		return StyleBlue
	case domain.StatusDelivered:
		return StyleGreen
	case domain.StatusReturned:
		return StyleRed
	case domain.StatusCancelled:
		return StyleDim
	default:
		return StyleDim
	}
}

// StatusBadge renders a colored status label.
func StatusBadge(status domain.Status) string {
	return StatusStyle(status).Render(string(status))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}
