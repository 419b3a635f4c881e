package ui

// Side determines which screen column a window is stacked in.
type Side int

const (
	// Left column takes one third of the screen width.
	Left Side = iota
	// Right column takes the remainder.
	Right
)

// String returns "left" or "right" for logging.
func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Geometry describes where a window is drawn: origin plus size in
// character cells. All fields are non-negative; a window with zero
// width or height is tracked but not drawn.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Drawable reports whether the geometry can hold any output at all.
// Only drawable windows are rendered or eligible for focus.
func (g Geometry) Drawable() bool {
	return g.Width > 0 && g.Height > 0
}

// ContentWidth returns the columns available inside the border.
func (g Geometry) ContentWidth() int {
	if g.Width <= 2 {
		return 0
	}
	return g.Width - 2
}

// ContentHeight returns the rows available inside the border.
func (g Geometry) ContentHeight() int {
	if g.Height <= 2 {
		return 0
	}
	return g.Height - 2
}
