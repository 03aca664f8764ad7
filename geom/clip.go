package geom

import "github.com/go-gl/mathgl/mgl32"

// viewVolumePlanes are the six half-spaces of the canonical view volume,
// expressed as homogeneous plane vectors. A point v is inside a plane q
// when dot(v, q) >= 0, so the six planes together bound
// -w <= x <= w, -w <= y <= w, -w <= z <= w.
var viewVolumePlanes = [6]mgl32.Vec4{
	{1, 0, 0, 1},  // x >= -w
	{-1, 0, 0, 1}, // x <= w
	{0, 1, 0, 1},  // y >= -w
	{0, -1, 0, 1}, // y <= w
	{0, 0, 1, 1},  // z >= -w
	{0, 0, -1, 1}, // z <= w
}

// ClipPolygon3D clips a convex polygon, given as an ordered list of
// homogeneous (pre-divide) vertices, against the canonical view volume.
// The returned polygon may have more vertices than the input, fewer, or
// none at all when the polygon lies entirely outside the volume.
func ClipPolygon3D(points []mgl32.Vec4) []mgl32.Vec4 {
	out := points
	for _, plane := range viewVolumePlanes {
		out = clipAgainstPlane(out, plane)
		if len(out) == 0 {
			return nil
		}
	}
	return out
}

// clipAgainstPlane runs one Sutherland-Hodgman pass against a single
// homogeneous half-space.
func clipAgainstPlane(points []mgl32.Vec4, plane mgl32.Vec4) []mgl32.Vec4 {
	if len(points) == 0 {
		return nil
	}

	out := make([]mgl32.Vec4, 0, len(points)+2)
	for i, cur := range points {
		next := points[(i+1)%len(points)]
		dCur := cur.Dot(plane)
		dNext := next.Dot(plane)

		if dCur >= 0 {
			out = append(out, cur)
		}
		if (dCur >= 0) != (dNext >= 0) {
			t := dCur / (dCur - dNext)
			out = append(out, cur.Add(next.Sub(cur).Mul(t)))
		}
	}
	return out
}

// ClipPolygonToConvex clips a subject polygon against a convex clip
// polygon. The clip polygon must be wound the same way as a view-box
// quad listed origin, upper-right, lower-right, lower-left (positive
// signed area under PolygonArea). The result may be empty.
func ClipPolygonToConvex(subject, clip []Point) []Point {
	if len(clip) < 3 {
		return nil
	}

	out := subject
	for i, a := range clip {
		b := clip[(i+1)%len(clip)]
		out = clipAgainstEdge(out, a, b)
		if len(out) == 0 {
			return nil
		}
	}
	return out
}

// clipAgainstEdge clips a polygon against the half-plane to the left of
// the directed edge a->b.
func clipAgainstEdge(points []Point, a, b Point) []Point {
	if len(points) == 0 {
		return nil
	}

	edge := b.Sub(a)
	inside := func(p Point) float32 {
		return edge.X*(p.Y-a.Y) - edge.Y*(p.X-a.X)
	}

	out := make([]Point, 0, len(points)+2)
	for i, cur := range points {
		next := points[(i+1)%len(points)]
		dCur := inside(cur)
		dNext := inside(next)

		if dCur >= 0 {
			out = append(out, cur)
		}
		if (dCur >= 0) != (dNext >= 0) {
			t := dCur / (dCur - dNext)
			out = append(out, cur.Lerp(next, t))
		}
	}
	return out
}

// ClipPolygonToRect clips a polygon against an axis-aligned rectangle.
func ClipPolygonToRect(subject []Point, r Rect) []Point {
	clip := []Point{r.Origin(), r.UpperRight(), r.LowerRight(), r.LowerLeft()}
	return ClipPolygonToConvex(subject, clip)
}

// PolygonArea returns the signed area of a polygon via the shoelace
// formula. With the y axis pointing down, polygons wound like the
// view-box quad (origin, upper-right, lower-right, lower-left) have
// positive area.
func PolygonArea(points []Point) float32 {
	if len(points) < 3 {
		return 0
	}
	var sum float32
	for i, cur := range points {
		next := points[(i+1)%len(points)]
		sum += cur.X*next.Y - next.X*cur.Y
	}
	return sum / 2
}

// Outcode constants for Cohen-Sutherland segment clipping.
const (
	outcodeInside = 0
	outcodeLeft   = 1
	outcodeRight  = 2
	outcodeBottom = 4
	outcodeTop    = 8
)

func outcode(p Point, r Rect) int {
	code := outcodeInside
	if p.X < r.MinX {
		code |= outcodeLeft
	} else if p.X > r.MaxX {
		code |= outcodeRight
	}
	if p.Y < r.MinY {
		code |= outcodeTop
	} else if p.Y > r.MaxY {
		code |= outcodeBottom
	}
	return code
}

// ClipSegmentToRect clips the line segment p0-p1 to the rectangle using
// the Cohen-Sutherland algorithm. The boolean result is false when the
// segment lies entirely outside the rectangle.
func ClipSegmentToRect(p0, p1 Point, r Rect) (Point, Point, bool) {
	code0 := outcode(p0, r)
	code1 := outcode(p1, r)

	for {
		if code0|code1 == 0 {
			return p0, p1, true
		}
		if code0&code1 != 0 {
			return Point{}, Point{}, false
		}

		codeOut := code0
		if codeOut == 0 {
			codeOut = code1
		}

		var p Point
		switch {
		case codeOut&outcodeTop != 0:
			t := (r.MinY - p0.Y) / (p1.Y - p0.Y)
			p = Point{X: p0.X + t*(p1.X-p0.X), Y: r.MinY}
		case codeOut&outcodeBottom != 0:
			t := (r.MaxY - p0.Y) / (p1.Y - p0.Y)
			p = Point{X: p0.X + t*(p1.X-p0.X), Y: r.MaxY}
		case codeOut&outcodeRight != 0:
			t := (r.MaxX - p0.X) / (p1.X - p0.X)
			p = Point{X: r.MaxX, Y: p0.Y + t*(p1.Y-p0.Y)}
		case codeOut&outcodeLeft != 0:
			t := (r.MinX - p0.X) / (p1.X - p0.X)
			p = Point{X: r.MinX, Y: p0.Y + t*(p1.Y-p0.Y)}
		}

		if codeOut == code0 {
			p0 = p
			code0 = outcode(p0, r)
		} else {
			p1 = p
			code1 = outcode(p1, r)
		}
	}
}
