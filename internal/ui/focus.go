package ui

// FocusManager tracks and rotates keyboard focus across windows.
// Focus is exclusive: at most one window holds it. The order slice
// passed to each call is the current focusable set in insertion order;
// it changes as windows are added, removed, or lose drawability.
type FocusManager struct {
	Current  string // name of the focused window, "" = none
	OnChange func(from, to string)
}

// Next advances focus to the next window in order, wrapping around.
// With an empty order focus becomes none. Returns the new focus name.
func (f *FocusManager) Next(order []string) string {
	if len(order) == 0 {
		f.set("")
		return ""
	}
	idx := indexOf(order, f.Current)
	f.set(order[(idx+1)%len(order)])
	return f.Current
}

// Prev moves focus to the previous window in order, wrapping around.
func (f *FocusManager) Prev(order []string) string {
	if len(order) == 0 {
		f.set("")
		return ""
	}
	idx := indexOf(order, f.Current)
	if idx <= 0 {
		idx = len(order)
	}
	f.set(order[idx-1])
	return f.Current
}

// Set focuses the named window if it is in order. Returns true on
// success.
func (f *FocusManager) Set(name string, order []string) bool {
	if indexOf(order, name) < 0 {
		return false
	}
	f.set(name)
	return true
}

// Revalidate ensures the current focus still refers to a window in
// order. If it does not (the window was removed or became undrawable),
// focus moves to the first entry at or after the given insertion hint,
// or to none when order is empty.
func (f *FocusManager) Revalidate(order []string, hint int) string {
	if indexOf(order, f.Current) >= 0 {
		return f.Current
	}
	if len(order) == 0 {
		f.set("")
		return ""
	}
	if hint < 0 || hint >= len(order) {
		hint = 0
	}
	f.set(order[hint])
	return f.Current
}

func (f *FocusManager) set(name string) {
	from := f.Current
	f.Current = name
	if f.OnChange != nil && from != name {
		f.OnChange(from, name)
	}
}

func indexOf(order []string, name string) int {
	if name == "" {
		return -1
	}
	for i, n := range order {
		if n == name {
			return i
		}
	}
	return -1
}
