package ui

import (
	"fmt"
	"strings"
	"testing"
)

func TestTextWindowPlaceholderUntilPush(t *testing.T) {
	w := NewTextWindow("detail", Right)
	got := w.ProduceContent()
	if len(got) != 1 || got[0] != Placeholder {
		t.Fatalf("initial content = %v, want placeholder", got)
	}

	w.Push("line one\nline two")
	got = w.ProduceContent()
	if len(got) != 2 || got[0] != "line one" || got[1] != "line two" {
		t.Errorf("content after push = %v", got)
	}
}

func TestTextWindowPushReplaces(t *testing.T) {
	w := NewTextWindow("detail", Right)
	w.Push("first")
	w.Push("second")
	got := w.ProduceContent()
	if len(got) != 1 || got[0] != "second" {
		t.Errorf("content = %v, want [second]", got)
	}
}

func TestTextWindowScrollClamps(t *testing.T) {
	w := NewTextWindow("detail", Right)
	w.SetGeometry(Geometry{Width: 20, Height: 6})

	var lines []string
	for i := 0; i < 20; i++ {
		lines = append(lines, fmt.Sprintf("line %d", i))
	}
	w.Push(strings.Join(lines, "\n"))
	w.Render(false)

	// Cannot scroll above the top.
	w.HandleInput(keyMsg("up"))
	if w.ScrollOffset() < 0 {
		t.Errorf("offset above top: %d", w.ScrollOffset())
	}

	w.HandleInput(keyMsg("G"))
	bottom := w.ScrollOffset()
	w.HandleInput(keyMsg("down"))
	if w.ScrollOffset() != bottom {
		t.Errorf("offset past bottom: %d, want %d", w.ScrollOffset(), bottom)
	}

	w.HandleInput(keyMsg("g"))
	if w.ScrollOffset() != 0 {
		t.Errorf("offset after g = %d, want 0", w.ScrollOffset())
	}
}

func TestTextWindowUndrawableRendersNothing(t *testing.T) {
	w := NewTextWindow("detail", Right)
	w.SetGeometry(Geometry{})
	if out := w.Render(true); out != "" {
		t.Errorf("undrawable window rendered %q", out)
	}
}
