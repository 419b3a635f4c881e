package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"roswatch/internal/syncval"
)

// ListWindow displays a selectable ordered sequence of labels and, on
// activation, fires its callback bindings with the selected label. The
// labels live in a syncval.Value that a background refresher populates;
// ProduceContent only snapshots it, so the render path never touches
// the real data source.
type ListWindow struct {
	name     string
	side     Side
	geo      Geometry
	items    *syncval.Value[[]string]
	bindings []*Binding

	cursor    int
	top       int // first visible row, follows the cursor
	filter    string
	filtering bool
	modeLabel string // current mode of a cycling callback, for the title
}

// NewListWindow creates a list window named name on the given side.
// items is the shared label source; bindings fire on activation.
func NewListWindow(name string, side Side, items *syncval.Value[[]string], bindings ...*Binding) *ListWindow {
	return &ListWindow{
		name:     name,
		side:     side,
		items:    items,
		bindings: bindings,
	}
}

// Name implements Window.
func (l *ListWindow) Name() string { return l.name }

// Side implements Window.
func (l *ListWindow) Side() Side { return l.side }

// SetGeometry implements Window.
func (l *ListWindow) SetGeometry(g Geometry) { l.geo = g }

// Geometry implements Window.
func (l *ListWindow) Geometry() Geometry { return l.geo }

// Focusable implements Window. A list is focusable whenever it is
// drawable; an empty list still takes focus so the user sees where
// input would go once items arrive.
func (l *ListWindow) Focusable() bool { return l.geo.Drawable() }

// Bindings returns the window's callback bindings in order.
func (l *ListWindow) Bindings() []*Binding { return l.bindings }

// SetModeLabel records the label shown for a cycling callback's
// current mode (e.g. "info" or "echo").
func (l *ListWindow) SetModeLabel(label string) { l.modeLabel = label }

// Filtering reports whether the window is consuming printable keys as
// filter input; the Session bypasses global bindings while it is.
func (l *ListWindow) Filtering() bool { return l.filtering }

// ProduceContent implements Window: the current labels after fuzzy
// filtering. Cheap: a snapshot read plus an in-memory rank.
func (l *ListWindow) ProduceContent() []string {
	return l.visibleItems()
}

// visibleItems applies the fuzzy filter to the label snapshot.
func (l *ListWindow) visibleItems() []string {
	labels := l.items.Get()
	query := strings.TrimSpace(l.filter)
	if query == "" {
		return labels
	}
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	matched := make([]string, 0, len(ranks))
	seen := make(map[int]struct{}, len(ranks))
	for _, r := range ranks {
		seen[r.OriginalIndex] = struct{}{}
	}
	for i, label := range labels {
		if _, ok := seen[i]; ok {
			matched = append(matched, label)
		}
	}
	return matched
}

// SelectedLabel returns the label under the cursor, if any.
func (l *ListWindow) SelectedLabel() (string, bool) {
	items := l.visibleItems()
	if len(items) == 0 {
		return "", false
	}
	if l.cursor >= len(items) {
		return items[len(items)-1], true
	}
	return items[l.cursor], true
}

// Cursor returns the clamped cursor index.
func (l *ListWindow) Cursor() int { return l.cursor }

// HandleInput implements Window. Up/down clamp at the ends (no wrap),
// enter activates the selection, "e" cycles stateful callback modes,
// and "/" starts a fuzzy filter. Unrecognized keys are ignored.
func (l *ListWindow) HandleInput(msg tea.KeyMsg) tea.Cmd {
	if l.filtering {
		return l.handleFilterInput(msg)
	}

	switch msg.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if n := len(l.visibleItems()); l.cursor < n-1 {
			l.cursor++
		}
	case "enter":
		label, ok := l.SelectedLabel()
		if !ok {
			return nil
		}
		name := l.name
		return func() tea.Msg {
			return ActivateMsg{Window: name, Label: label}
		}
	case "e":
		name := l.name
		return func() tea.Msg {
			return CycleModeMsg{Window: name}
		}
	case "/":
		l.filtering = true
	}
	return nil
}

// handleFilterInput edits the filter query. Esc clears it, enter keeps
// it and returns to navigation.
func (l *ListWindow) handleFilterInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		l.filtering = false
		l.filter = ""
	case tea.KeyEnter:
		l.filtering = false
	case tea.KeyBackspace:
		if len(l.filter) > 0 {
			r := []rune(l.filter)
			l.filter = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		l.filter += string(msg.Runes)
		if msg.Type == tea.KeySpace {
			l.filter += " "
		}
	}
	l.clampCursor()
	return nil
}

// clampCursor keeps the cursor inside the visible item range after the
// item set or filter changes.
func (l *ListWindow) clampCursor() {
	n := len(l.visibleItems())
	if n == 0 {
		l.cursor = 0
		l.top = 0
		return
	}
	if l.cursor > n-1 {
		l.cursor = n - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// Render implements Window.
func (l *ListWindow) Render(focused bool) string {
	if !l.geo.Drawable() {
		return ""
	}
	l.clampCursor()
	w, h := l.geo.ContentWidth(), l.geo.ContentHeight()

	items := l.visibleItems()
	title := fmt.Sprintf("%s (%d)", l.name, len(items))
	if l.modeLabel != "" {
		title += " [" + l.modeLabel + "]"
	}
	if l.filtering || l.filter != "" {
		title += " /" + l.filter
	}

	rows := h - 1 // first row is the title
	if rows < 0 {
		rows = 0
	}
	if l.cursor < l.top {
		l.top = l.cursor
	}
	if rows > 0 && l.cursor >= l.top+rows {
		l.top = l.cursor - rows + 1
	}

	lines := make([]string, 0, rows+1)
	lines = append(lines, clipLine(Styles.Title, title, w))
	for i := l.top; i < len(items) && len(lines) < h; i++ {
		style := Styles.Normal
		if i == l.cursor {
			style = Styles.Selected
		}
		lines = append(lines, clipLine(style, items[i], w))
	}

	return renderPane(strings.Join(lines, "\n"), l.geo, focused)
}
