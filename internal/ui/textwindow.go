package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"roswatch/internal/syncval"
)

// Placeholder is shown by a TextWindow until a callback pushes its
// first result.
const Placeholder = "Waiting for input..."

// TextWindow is a passive sink: its content is whatever the last
// callback delivered into its shared sink, or the placeholder if none
// has completed yet. It takes focus only for scrolling.
type TextWindow struct {
	name string
	side Side
	geo  Geometry
	sink *syncval.Value[string]
	vp   viewport.Model
}

// NewTextWindow creates a text window whose sink starts at the
// placeholder.
func NewTextWindow(name string, side Side) *TextWindow {
	return &TextWindow{
		name: name,
		side: side,
		sink: syncval.New(Placeholder),
		vp:   viewport.New(0, 0),
	}
}

// Name implements Window.
func (t *TextWindow) Name() string { return t.name }

// Side implements Window.
func (t *TextWindow) Side() Side { return t.side }

// SetGeometry implements Window.
func (t *TextWindow) SetGeometry(g Geometry) {
	t.geo = g
	t.vp.Width = g.ContentWidth()
	if h := g.ContentHeight() - 1; h > 0 {
		t.vp.Height = h
	} else {
		t.vp.Height = 0
	}
}

// Geometry implements Window.
func (t *TextWindow) Geometry() Geometry { return t.geo }

// Focusable implements Window.
func (t *TextWindow) Focusable() bool { return t.geo.Drawable() }

// Push implements ContentSink. Safe to call from background units;
// the sink is the only state they may touch.
func (t *TextWindow) Push(content string) {
	t.sink.Set(content)
}

// ProduceContent implements Window: the lines of the last pushed value.
func (t *TextWindow) ProduceContent() []string {
	return strings.Split(t.sink.Get(), "\n")
}

// ScrollOffset returns the current scroll position, for tests.
func (t *TextWindow) ScrollOffset() int { return t.vp.YOffset }

// HandleInput implements Window: scrolling only. The offset is clamped
// by the viewport to [0, lines-height].
func (t *TextWindow) HandleInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		t.vp.LineUp(1)
	case "down", "j":
		t.vp.LineDown(1)
	case "pgup":
		t.vp.LineUp(t.vp.Height)
	case "pgdown":
		t.vp.LineDown(t.vp.Height)
	case "g":
		t.vp.GotoTop()
	case "G":
		t.vp.GotoBottom()
	}
	return nil
}

// Render implements Window.
func (t *TextWindow) Render(focused bool) string {
	if !t.geo.Drawable() {
		return ""
	}
	w := t.geo.ContentWidth()

	follow := t.vp.AtBottom()
	raw := t.ProduceContent()
	clipped := make([]string, len(raw))
	for i, line := range raw {
		clipped[i] = clipLine(Styles.Normal, line, w)
	}
	t.vp.SetContent(strings.Join(clipped, "\n"))
	if follow {
		// Streaming output keeps the newest lines in view unless the
		// user scrolled away.
		t.vp.GotoBottom()
	}

	lines := []string{clipLine(Styles.Title, t.name, w)}
	if t.vp.Height > 0 {
		lines = append(lines, t.vp.View())
	}
	return renderPane(strings.Join(lines, "\n"), t.geo, focused)
}
