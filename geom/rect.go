package geom

// Rect is an axis-aligned rectangle with float32 coordinates.
// A rectangle with MaxX <= MinX or MaxY <= MinY is considered empty.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// NewRect creates a rectangle from its corner coordinates.
func NewRect(minX, minY, maxX, maxY float32) Rect {
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// EmptyRect returns a degenerate rectangle covering nothing.
func EmptyRect() Rect {
	return Rect{}
}

// IsEmpty returns true if the rectangle covers no area.
func (r Rect) IsEmpty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float32 {
	return r.MaxX - r.MinX
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float32 {
	return r.MaxY - r.MinY
}

// Origin returns the upper-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.MinX, Y: r.MinY}
}

// UpperRight returns the upper-right corner.
func (r Rect) UpperRight() Point {
	return Point{X: r.MaxX, Y: r.MinY}
}

// LowerRight returns the lower-right corner.
func (r Rect) LowerRight() Point {
	return Point{X: r.MaxX, Y: r.MaxY}
}

// LowerLeft returns the lower-left corner.
func (r Rect) LowerLeft() Point {
	return Point{X: r.MinX, Y: r.MaxY}
}

// Intersect returns the intersection of two rectangles.
// The result is empty if the rectangles do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		MinX: max(r.MinX, other.MinX),
		MinY: max(r.MinY, other.MinY),
		MaxX: min(r.MaxX, other.MaxX),
		MaxY: min(r.MaxY, other.MaxY),
	}
	if out.IsEmpty() {
		return EmptyRect()
	}
	return out
}

// Union returns the smallest rectangle containing both rectangles.
// An empty rectangle contributes nothing.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		MinX: min(r.MinX, other.MinX),
		MinY: min(r.MinY, other.MinY),
		MaxX: max(r.MaxX, other.MaxX),
		MaxY: max(r.MaxY, other.MaxY),
	}
}
