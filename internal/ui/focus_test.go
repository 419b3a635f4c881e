package ui

import "testing"

func TestFocusNextWraps(t *testing.T) {
	order := []string{"a", "b", "c"}
	var f FocusManager

	if got := f.Next(order); got != "a" {
		t.Errorf("first Next = %q, want a", got)
	}
	f.Next(order)
	f.Next(order)
	if got := f.Next(order); got != "a" {
		t.Errorf("Next after last = %q, want a", got)
	}
}

func TestFocusPrevWraps(t *testing.T) {
	order := []string{"a", "b", "c"}
	f := FocusManager{Current: "a"}

	if got := f.Prev(order); got != "c" {
		t.Errorf("Prev from first = %q, want c", got)
	}
	if got := f.Prev(order); got != "b" {
		t.Errorf("second Prev = %q, want b", got)
	}
}

func TestFocusEmptyOrder(t *testing.T) {
	f := FocusManager{Current: "a"}
	if got := f.Next(nil); got != "" {
		t.Errorf("Next with empty order = %q, want none", got)
	}
	if got := f.Prev(nil); got != "" {
		t.Errorf("Prev with empty order = %q, want none", got)
	}
}

func TestFocusSet(t *testing.T) {
	order := []string{"a", "b"}
	var f FocusManager
	if !f.Set("b", order) {
		t.Fatal("Set of known window failed")
	}
	if f.Set("zzz", order) {
		t.Error("Set of unknown window succeeded")
	}
	if f.Current != "b" {
		t.Errorf("Current = %q, want b", f.Current)
	}
}

func TestFocusRevalidate(t *testing.T) {
	f := FocusManager{Current: "b"}

	// Still present: keep it.
	if got := f.Revalidate([]string{"a", "b"}, 0); got != "b" {
		t.Errorf("Revalidate kept focus = %q, want b", got)
	}

	// Gone: move to the hinted slot.
	if got := f.Revalidate([]string{"a", "c"}, 1); got != "c" {
		t.Errorf("Revalidate hint = %q, want c", got)
	}

	// Out-of-range hint falls back to the first entry.
	f.Current = "zzz"
	if got := f.Revalidate([]string{"a", "c"}, 9); got != "a" {
		t.Errorf("Revalidate bad hint = %q, want a", got)
	}

	// Nothing focusable left.
	if got := f.Revalidate(nil, 0); got != "" {
		t.Errorf("Revalidate empty = %q, want none", got)
	}
}

func TestFocusOnChange(t *testing.T) {
	var events []string
	f := FocusManager{OnChange: func(from, to string) {
		events = append(events, from+">"+to)
	}}
	order := []string{"a", "b"}

	f.Next(order)
	f.Next(order)
	f.Set("b", order) // no-op, already focused
	f.Revalidate(nil, 0)

	want := []string{">a", "a>b", "b>"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, events[i], want[i])
		}
	}
}
