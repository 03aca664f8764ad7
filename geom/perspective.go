package geom

import "github.com/go-gl/mathgl/mgl32"

// Perspective is a 3D projective transform applied to 2D content.
// Points are lifted onto the z=0 plane, transformed in homogeneous
// space, and perspective-divided back down.
type Perspective struct {
	Transform mgl32.Mat4
}

// NewPerspective wraps a 4x4 homogeneous transform.
func NewPerspective(transform mgl32.Mat4) Perspective {
	return Perspective{Transform: transform}
}

// Apply transforms a homogeneous point without dividing.
func (p Perspective) Apply(v mgl32.Vec4) mgl32.Vec4 {
	return p.Transform.Mul4x1(v)
}

// ApplyPoint transforms a 2D point through the full projective map,
// including the perspective divide.
func (p Perspective) ApplyPoint(pt Point) Point {
	return To2D(PerspectiveDivide(p.Apply(pt.To3D())))
}

// Inverse returns the inverse projective transform.
// A singular transform inverts to the zero matrix, matching
// the behavior of mgl32.Mat4.Inv.
func (p Perspective) Inverse() Perspective {
	return Perspective{Transform: p.Transform.Inv()}
}
