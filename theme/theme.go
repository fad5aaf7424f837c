package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme bundles the lipgloss styles used by the keymap browser.
type Theme struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style
}

// New returns the default terminal theme.
func New() *Theme {
	return &Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d787ff")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#5f00af")),
		Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#c0c0c0")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#606060")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
	}
}

// Swatch renders a block of terminal cells in the given color.
func Swatch(c colorful.Color, width int) string {
	s := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
	cells := make([]byte, width)
	for i := range cells {
		cells[i] = ' '
	}
	return s.Render(string(cells))
}

// LabelOn renders text with the given foreground and background colors,
// matching the wedge's fill and text color assignment.
func LabelOn(text string, fg, bg colorful.Color) string {
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
	return s.Render(text)
}
