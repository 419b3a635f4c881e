package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Window is the capability set shared by every pane the Session manages.
// There are two concrete variants: ListWindow (a selectable label list
// that drives callbacks) and TextWindow (a passive sink for callback
// results). The Session owns geometry and focus; a window owns its
// content and selection state.
type Window interface {
	// Name is unique within a Session; callbacks address their target
	// window by name.
	Name() string
	// Side determines which screen column the window stacks in.
	Side() Side

	// SetGeometry is called by the Session whenever the layout is
	// recomputed. Windows must not resize themselves.
	SetGeometry(Geometry)
	Geometry() Geometry

	// Focusable reports whether the window may receive keyboard focus.
	// Undrawable windows are never focusable.
	Focusable() bool

	// ProduceContent returns the window's current display lines. It runs
	// on every redraw tick and must be cheap: expensive work happens in
	// background commands whose results are cached in a syncval.Value.
	ProduceContent() []string

	// HandleInput reacts to a key dispatched by the Session. It must not
	// block; slow work is returned as a command.
	HandleInput(msg tea.KeyMsg) tea.Cmd

	// Render paints the window into its geometry, truncating lines to
	// the content width and the line count to the content height.
	Render(focused bool) string
}

// ContentSink is implemented by windows that accept content pushed from
// another window's callback (TextWindow). The sink is backed by a
// syncval.Value, so background commands may push without touching any
// other window state.
type ContentSink interface {
	Push(content string)
}
