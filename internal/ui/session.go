package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"roswatch/internal/logging"
)

// Session owns the ordered window set, computes geometry, tracks
// focus, and drives the input/redraw loop as the root Bubble Tea
// model. All window and session state is foreground-only; background
// units communicate exclusively through each window's sink.
type Session struct {
	windows []Window
	byName  map[string]Window
	focus   FocusManager
	keys    KeyMap
	help    help.Model

	width  int
	height int
}

// Ensure Session can run as the program root.
var _ tea.Model = (*Session)(nil)

// NewSession creates a session over the given windows, in order.
// Window names must be unique.
func NewSession(windows ...Window) (*Session, error) {
	s := &Session{
		byName: make(map[string]Window, len(windows)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	for _, w := range windows {
		if err := s.AddWindow(w); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddWindow appends a window and recomputes geometry. Duplicate names
// are rejected: the session indexes windows by name for callback
// dispatch.
func (s *Session) AddWindow(w Window) error {
	if _, exists := s.byName[w.Name()]; exists {
		return fmt.Errorf("window %q already exists", w.Name())
	}
	s.windows = append(s.windows, w)
	s.byName[w.Name()] = w
	s.relayout()
	return nil
}

// RemoveWindow drops the named window, stops its background bindings,
// and recomputes geometry. If it held focus, focus moves to the next
// focusable window in insertion order, wrapping to the first, or to
// none when nothing focusable remains.
func (s *Session) RemoveWindow(name string) {
	idx := -1
	for i, w := range s.windows {
		if w.Name() == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	wasFocused := s.focus.Current == name
	stopBindings(s.windows[idx])
	s.windows = append(s.windows[:idx], s.windows[idx+1:]...)
	delete(s.byName, name)
	if wasFocused {
		s.focus.Current = ""
	}
	s.relayout()
	if !wasFocused {
		return
	}
	// Prefer the window that followed the removed one in insertion
	// order; relayout already fell back to the first focusable window
	// (or none) otherwise.
	for i := idx; i < len(s.windows); i++ {
		if s.windows[i].Focusable() {
			s.focus.Set(s.windows[i].Name(), s.focusOrder())
			return
		}
	}
}

// Window returns the named window.
func (s *Session) Window(name string) (Window, bool) {
	w, ok := s.byName[name]
	return w, ok
}

// Windows returns the window set in insertion order.
func (s *Session) Windows() []Window { return s.windows }

// FocusedName returns the name of the focused window, or "".
func (s *Session) FocusedName() string { return s.focus.Current }

// Resize records the new screen size and recomputes every geometry.
// One row is reserved for the help footer.
func (s *Session) Resize(width, height int) {
	s.width = width
	s.height = height
	s.help.Width = width
	s.relayout()
}

// relayout recomputes geometry for the current size and window set and
// revalidates focus, since windows may have gained or lost
// drawability.
func (s *Session) relayout() {
	geos := ComputeLayout(s.width, s.height-1, s.windows)
	for _, w := range s.windows {
		w.SetGeometry(geos[w.Name()])
	}
	order := s.focusOrder()
	if s.focus.Current == "" && len(order) > 0 {
		s.focus.Set(order[0], order)
		return
	}
	s.focus.Revalidate(order, 0)
}

// focusOrder returns the names of focusable windows in insertion
// order. Undrawable windows are excluded; they rejoin the cycle when a
// resize makes them drawable again.
func (s *Session) focusOrder() []string {
	var order []string
	for _, w := range s.windows {
		if w.Focusable() {
			order = append(order, w.Name())
		}
	}
	return order
}

// focusedWindow returns the focused window, or nil.
func (s *Session) focusedWindow() Window {
	if s.focus.Current == "" {
		return nil
	}
	return s.byName[s.focus.Current]
}

// Shutdown stops every window's background bindings. Called on quit so
// no stream outlives the session.
func (s *Session) Shutdown() {
	for _, w := range s.windows {
		stopBindings(w)
	}
}

// stopBindings cancels all in-flight callback work owned by w.
func stopBindings(w Window) {
	bw, ok := w.(interface{ Bindings() []*Binding })
	if !ok {
		return
	}
	for _, b := range bw.Bindings() {
		b.Stop()
	}
}

// redrawInterval paces repaints for content that changes without user
// input, such as the background list refreshers.
const redrawInterval = 500 * time.Millisecond

// redrawMsg asks for a repaint of cached content.
type redrawMsg time.Time

func redrawTick() tea.Cmd {
	return tea.Tick(redrawInterval, func(t time.Time) tea.Msg {
		return redrawMsg(t)
	})
}

// Init implements tea.Model.
func (s *Session) Init() tea.Cmd {
	return redrawTick()
}

// Update implements tea.Model. The input loop is single-threaded:
// keys go to the focused window only, and every visible window is
// repainted from its cached content afterwards.
func (s *Session) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.Resize(msg.Width, msg.Height)
		return s, nil

	case redrawMsg:
		return s, redrawTick()

	case tea.KeyMsg:
		return s.handleKey(msg)

	case ActivateMsg:
		return s, s.activate(msg)

	case CycleModeMsg:
		s.cycleMode(msg.Window)
		return s, nil

	case StreamTickMsg:
		// New streamed output is in the sink; repaint and re-arm.
		if b := s.findBinding(msg.Window, msg.Callback); b != nil {
			return s, b.Await(msg.Window)
		}
		return s, nil

	case CallbackDoneMsg:
		if msg.Stale {
			logging.Debugf("discarded superseded result of %s for %s", msg.Callback, msg.Window)
		}
		return s, nil
	}
	return s, nil
}

// handleKey routes one key event: quit, focus cycling, then the
// focused window. Unrecognized keys are ignored.
func (s *Session) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A window in filter-entry mode consumes every printable key.
	if fw, ok := s.focusedWindow().(interface{ Filtering() bool }); ok && fw.Filtering() {
		if msg.String() == "ctrl+c" {
			s.Shutdown()
			return s, tea.Quit
		}
		return s, s.focusedWindow().HandleInput(msg)
	}

	switch {
	case key.Matches(msg, s.keys.Quit):
		s.Shutdown()
		return s, tea.Quit
	case key.Matches(msg, s.keys.FocusNext):
		s.focus.Next(s.focusOrder())
		return s, nil
	case key.Matches(msg, s.keys.FocusPrev):
		s.focus.Prev(s.focusOrder())
		return s, nil
	}

	if w := s.focusedWindow(); w != nil {
		return s, w.HandleInput(msg)
	}
	return s, nil
}

// activate spawns exactly one background command per binding of the
// activating window. Streaming-mode callbacks start their subscription
// instead of a one-shot run. A binding whose target window is missing
// is skipped; that is a wiring error worth logging, not a crash.
func (s *Session) activate(msg ActivateMsg) tea.Cmd {
	w, ok := s.byName[msg.Window]
	if !ok {
		return nil
	}
	bw, ok := w.(interface{ Bindings() []*Binding })
	if !ok {
		return nil
	}

	var cmds []tea.Cmd
	for _, b := range bw.Bindings() {
		target, ok := s.byName[b.Callback.TargetWindow()]
		if !ok {
			logging.Errorf("callback %s targets unknown window %q", b.Callback.Name(), b.Callback.TargetWindow())
			continue
		}
		sink, ok := target.(ContentSink)
		if !ok {
			logging.Errorf("callback %s targets window %q which accepts no content", b.Callback.Name(), target.Name())
			continue
		}
		if st, ok := b.Callback.(Streamer); ok && st.Streaming() {
			cmds = append(cmds, streamCmd(b, st, sink, msg.Window, msg.Label))
			continue
		}
		cmds = append(cmds, runCmd(b, sink, msg.Window, msg.Label))
	}
	return tea.Batch(cmds...)
}

// cycleMode switches every mode-cycling binding of the named window to
// its next mode, stopping any stream the old mode owned.
func (s *Session) cycleMode(window string) {
	w, ok := s.byName[window]
	if !ok {
		return
	}
	bw, ok := w.(interface{ Bindings() []*Binding })
	if !ok {
		return
	}
	for _, b := range bw.Bindings() {
		mc, ok := b.Callback.(ModeCycler)
		if !ok {
			continue
		}
		b.Stop()
		mode := mc.CycleMode()
		if lw, ok := w.(*ListWindow); ok {
			lw.SetModeLabel(mode)
		}
		logging.Infof("window %s: callback %s mode -> %s", window, b.Callback.Name(), mode)
	}
}

// findBinding locates a binding by window and callback name.
func (s *Session) findBinding(window, callback string) *Binding {
	w, ok := s.byName[window]
	if !ok {
		return nil
	}
	bw, ok := w.(interface{ Bindings() []*Binding })
	if !ok {
		return nil
	}
	for _, b := range bw.Bindings() {
		if b.Callback.Name() == callback {
			return b
		}
	}
	return nil
}

// View implements tea.Model: both columns of drawable windows plus the
// help footer. Content pulls are cheap snapshots; anything expensive
// already happened in a background command.
func (s *Session) View() string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}

	var left, right []string
	for _, w := range s.windows {
		if !w.Geometry().Drawable() {
			continue
		}
		pane := w.Render(w.Name() == s.focus.Current)
		if w.Side() == Left {
			left = append(left, pane)
		} else {
			right = append(right, pane)
		}
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, left...),
		lipgloss.JoinVertical(lipgloss.Left, right...),
	)
	return body + "\n" + s.help.View(s.keys)
}
