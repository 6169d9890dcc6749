package ui

// Rect is a rectangular region of terminal cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Right returns the column just past the rect.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the row just past the rect.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether other lies entirely within r.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Intersects reports whether r and other share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Inner shrinks the rect by margin cells on every side.
func (r Rect) Inner(margin int) Rect {
	inner := Rect{
		X:      r.X + margin,
		Y:      r.Y + margin,
		Width:  r.Width - 2*margin,
		Height: r.Height - 2*margin,
	}
	if inner.Width < 0 {
		inner.Width = 0
	}
	if inner.Height < 0 {
		inner.Height = 0
	}
	return inner
}

// CenteredRectAbsolute returns a width x height rect centered in area.
// The result is clamped so it never extends past area.
func CenteredRectAbsolute(width, height int, area Rect) Rect {
	width = max(min(width, area.Width), 0)
	height = max(min(height, area.Height), 0)

	return Rect{
		X:      area.X + (area.Width-width)/2,
		Y:      area.Y + (area.Height-height)/2,
		Width:  width,
		Height: height,
	}
}
