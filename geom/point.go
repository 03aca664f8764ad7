package geom

import "github.com/go-gl/mathgl/mgl32"

// Point represents a 2D point or vector in object space.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// To3D lifts the point into 3D homogeneous space on the z=0 plane.
func (p Point) To3D() mgl32.Vec4 {
	return mgl32.Vec4{p.X, p.Y, 0, 1}
}

// To2D drops a homogeneous point to 2D, discarding z and w.
// The point should already be perspective-divided.
func To2D(v mgl32.Vec4) Point {
	return Point{X: v.X(), Y: v.Y()}
}

// PerspectiveDivide maps a homogeneous coordinate to normalized
// coordinates by dividing every component by w.
func PerspectiveDivide(v mgl32.Vec4) mgl32.Vec4 {
	w := v.W()
	if w == 0 {
		return v
	}
	inv := 1 / w
	return mgl32.Vec4{v.X() * inv, v.Y() * inv, v.Z() * inv, 1}
}
