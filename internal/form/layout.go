package form

// Rect is a rectangular drawing area in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rect has no drawable cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Constraint sizes one slot of a vertical split.
type Constraint struct {
	length int
	fill   bool
}

// Length requests exactly n rows, or whatever is left if fewer remain.
func Length(n int) Constraint {
	return Constraint{length: n}
}

// Fill takes every row left over after the preceding slots.
func Fill() Constraint {
	return Constraint{fill: true}
}

// SplitVertical stacks one slot per constraint from the top of area. Slots
// share the area's X and Width, never overlap, and are clipped to its height:
// once the area is exhausted the remaining slots have zero height.
func SplitVertical(area Rect, constraints []Constraint) []Rect {
	rects := make([]Rect, len(constraints))
	y := area.Y
	remaining := max(area.Height, 0)

	for i, c := range constraints {
		h := c.length
		if c.fill || h > remaining {
			h = remaining
		}
		h = max(h, 0)
		rects[i] = Rect{X: area.X, Y: y, Width: area.Width, Height: h}
		y += h
		remaining -= h
	}
	return rects
}
