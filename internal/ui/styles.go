package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - focused borders, titles
	ColorHighlight = "205" // Magenta - selected list rows
	ColorMuted     = "241" // Gray - unfocused borders, hints
	ColorText      = "252" // Light gray - normal text
	ColorDanger    = "196" // Red - error content
)

// Styles contains shared style definitions used across windows.
var Styles = struct {
	// Pane borders; the focused border is the selection highlight.
	PaneFocused   lipgloss.Style
	PaneUnfocused lipgloss.Style

	Title    lipgloss.Style // Window titles
	Selected lipgloss.Style // Highlighted list row
	Normal   lipgloss.Style // Normal text
	Muted    lipgloss.Style // Dimmed text, hints, placeholders
	Error    lipgloss.Style // Failure text pushed by callbacks
}{
	PaneFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)),
	PaneUnfocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
}
