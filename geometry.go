package canopy

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. Width and Height are expected to
// be non-negative.
type Rect struct {
	X, Y, Width, Height float64
}

// empty reports whether the rectangle has zero (or negative) area.
func (r Rect) empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside. A zero-area rectangle contains
// nothing.
func (r Rect) Contains(x, y float64) bool {
	if r.empty() {
		return false
	}
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Overlaps reports whether r and other share interior area.
// Rectangles that only touch along an edge or corner do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return Overlaps(r, other)
}

// Overlaps is the open-interval AABB test. It is symmetric in a and b.
func Overlaps(a, b Rect) bool {
	if a.empty() || b.empty() {
		return false
	}
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}
