package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the session-level bindings. Window-specific keys
// (selection movement, activation, filtering) are documented here for
// the help footer but dispatched by the focused window itself.
type KeyMap struct {
	FocusNext key.Binding
	FocusPrev key.Binding
	Up        key.Binding
	Down      key.Binding
	Activate  key.Binding
	CycleMode key.Binding
	Filter    key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		FocusNext: key.NewBinding(
			key.WithKeys("right", "tab"),
			key.WithHelp("→/tab", "next pane"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("left", "shift+tab"),
			key.WithHelp("←", "prev pane"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "show"),
		),
		CycleMode: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "cycle mode"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.Up, k.Down, k.Activate, k.CycleMode, k.Filter, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusNext, k.FocusPrev, k.Quit},
		{k.Up, k.Down, k.Activate, k.CycleMode, k.Filter},
	}
}
