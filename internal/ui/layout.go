package ui

// ComputeLayout splits the screen into a left column (one third of the
// width) and a right column (the remainder), then stacks each side's
// windows top to bottom in insertion order, sharing the column height
// equally. The bottom window of a column absorbs the integer remainder
// so the stack always fills the screen. A side with no windows cedes
// the full width to the other side.
//
// The result depends only on the screen size and the window list, so
// recomputation is idempotent. A column too short for its window count
// produces zero-height geometries; those windows stay tracked but are
// skipped by the draw and focus passes until the screen grows.
func ComputeLayout(width, height int, windows []Window) map[string]Geometry {
	geos := make(map[string]Geometry, len(windows))
	if width <= 0 || height <= 0 {
		for _, w := range windows {
			geos[w.Name()] = Geometry{}
		}
		return geos
	}

	var nLeft, nRight int
	for _, w := range windows {
		if w.Side() == Left {
			nLeft++
		} else {
			nRight++
		}
	}

	leftWidth := width / 3
	if nRight == 0 {
		leftWidth = width
	}
	if nLeft == 0 {
		leftWidth = 0
	}
	rightWidth := width - leftWidth

	leftHeight, rightHeight := 0, 0
	if nLeft > 0 {
		leftHeight = height / nLeft
	}
	if nRight > 0 {
		rightHeight = height / nRight
	}

	leftIdx, rightIdx := 0, 0
	for _, w := range windows {
		switch w.Side() {
		case Left:
			g := Geometry{X: 0, Y: leftIdx * leftHeight, Width: leftWidth, Height: leftHeight}
			if leftIdx == nLeft-1 {
				g.Height = height - g.Y
			}
			if leftHeight == 0 {
				g = Geometry{}
			}
			geos[w.Name()] = g
			leftIdx++
		case Right:
			g := Geometry{X: leftWidth, Y: rightIdx * rightHeight, Width: rightWidth, Height: rightHeight}
			if rightIdx == nRight-1 {
				g.Height = height - g.Y
			}
			if rightHeight == 0 {
				g = Geometry{}
			}
			geos[w.Name()] = g
			rightIdx++
		}
	}
	return geos
}
