package geom

// Contour is one closed loop of a flattened outline. Curves have
// already been subdivided into line segments by the time an outline
// reaches the scene-build stage.
type Contour []Point

// Outline is a flattened vector shape: one or more closed contours.
// Holes are expressed by contours wound opposite to the outer loop.
type Outline struct {
	Contours []Contour
}

// NewRectOutline returns a single-contour outline covering the
// rectangle, wound positively (origin, upper-right, lower-right,
// lower-left).
func NewRectOutline(r Rect) *Outline {
	return &Outline{
		Contours: []Contour{{r.Origin(), r.UpperRight(), r.LowerRight(), r.LowerLeft()}},
	}
}

// IsEmpty reports whether the outline contains no usable contour.
func (o *Outline) IsEmpty() bool {
	for _, c := range o.Contours {
		if len(c) >= 3 {
			return false
		}
	}
	return true
}

// Bounds returns the bounding rectangle of all contour points.
func (o *Outline) Bounds() Rect {
	first := true
	var b Rect
	for _, c := range o.Contours {
		for _, p := range c {
			if first {
				b = Rect{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
				first = false
				continue
			}
			b.MinX = min(b.MinX, p.X)
			b.MinY = min(b.MinY, p.Y)
			b.MaxX = max(b.MaxX, p.X)
			b.MaxY = max(b.MaxY, p.Y)
		}
	}
	return b
}

// Clone returns a deep copy of the outline.
func (o *Outline) Clone() *Outline {
	out := &Outline{Contours: make([]Contour, len(o.Contours))}
	for i, c := range o.Contours {
		out.Contours[i] = append(Contour(nil), c...)
	}
	return out
}

// MapPoints replaces every contour point with fn(point).
func (o *Outline) MapPoints(fn func(Point) Point) {
	for _, c := range o.Contours {
		for i, p := range c {
			c[i] = fn(p)
		}
	}
}

// Transform applies a 2D affine transform to every point.
func (o *Outline) Transform(m Matrix) {
	o.MapPoints(m.TransformPoint)
}

// ApplyPerspective applies a projective transform, including the
// perspective divide, to every point.
func (o *Outline) ApplyPerspective(p Perspective) {
	o.MapPoints(p.ApplyPoint)
}

// ClipAgainstPolygon clips every contour against a convex polygon,
// dropping contours that fall entirely outside. An empty clip polygon
// removes all contours: nothing of the outline is visible.
func (o *Outline) ClipAgainstPolygon(clip []Point) {
	if len(clip) < 3 {
		o.Contours = nil
		return
	}
	kept := o.Contours[:0]
	for _, c := range o.Contours {
		clipped := ClipPolygonToConvex(c, clip)
		if len(clipped) >= 3 {
			kept = append(kept, Contour(clipped))
		}
	}
	o.Contours = kept
}

// Dilate grows the outline by the given amount along each axis,
// pushing every point away from its contour's centroid. This pads
// shapes so anti-aliased edges do not land exactly on tile boundaries.
func (o *Outline) Dilate(amount Point) {
	if amount == (Point{}) {
		return
	}
	for _, c := range o.Contours {
		if len(c) == 0 {
			continue
		}
		var centroid Point
		for _, p := range c {
			centroid = centroid.Add(p)
		}
		centroid = centroid.Mul(1 / float32(len(c)))
		for i, p := range c {
			if p.X > centroid.X {
				p.X += amount.X
			} else if p.X < centroid.X {
				p.X -= amount.X
			}
			if p.Y > centroid.Y {
				p.Y += amount.Y
			} else if p.Y < centroid.Y {
				p.Y -= amount.Y
			}
			c[i] = p
		}
	}
}
