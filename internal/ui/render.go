package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// clipLine styles a line and truncates it to width, ANSI-aware so
// escape sequences never count toward the visible width.
func clipLine(style lipgloss.Style, s string, width int) string {
	if width <= 0 {
		return ""
	}
	return style.Render(ansi.Truncate(s, width, "…"))
}

// renderPane wraps content in the window border, sized to the
// geometry. Focus shows as the accent border color.
func renderPane(content string, geo Geometry, focused bool) string {
	style := Styles.PaneUnfocused
	if focused {
		style = Styles.PaneFocused
	}
	return style.
		Width(geo.ContentWidth()).
		Height(geo.ContentHeight()).
		MaxWidth(geo.Width).
		MaxHeight(geo.Height).
		Render(content)
}
