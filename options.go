package pave

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/pave/geom"
)

// RenderOptions is the user-specified view configuration for one
// build. The zero value renders with the identity transform, no
// dilation, no distortion and no subpixel AA.
type RenderOptions struct {
	// Transform is the view transform. nil means identity.
	Transform RenderTransform

	// Dilation pads shapes so anti-aliased edges avoid tile seams.
	Dilation geom.Point

	// BarrelDistortion enables lens distortion (VR output).
	BarrelDistortion *BarrelDistortionCoefficients

	// SubpixelAAEnabled triples horizontal resolution for LCD text.
	SubpixelAAEnabled bool
}

// BarrelDistortionCoefficients parameterize the radial distortion
// model applied after a perspective projection.
type BarrelDistortionCoefficients struct {
	K0, K1 float32
}

// Prepare derives the immutable per-build options, precomputing the
// perspective clip geometry against the scene's bounding rectangle.
func (o RenderOptions) Prepare(bounds geom.Rect) *PreparedRenderOptions {
	transform := o.Transform
	if transform == nil {
		transform = Transform2D{Matrix: geom.Identity()}
	}
	return &PreparedRenderOptions{
		Transform:         transform.prepare(bounds),
		Dilation:          o.Dilation,
		BarrelDistortion:  o.BarrelDistortion,
		SubpixelAAEnabled: o.SubpixelAAEnabled,
	}
}

// RenderTransform is the tagged view-transform variant: either a 2D
// affine matrix or a 3D perspective transform.
type RenderTransform interface {
	prepare(bounds geom.Rect) PreparedRenderTransform
}

// Transform2D is a plain affine view transform.
type Transform2D struct {
	Matrix geom.Matrix
}

func (t Transform2D) prepare(geom.Rect) PreparedRenderTransform {
	if t.Matrix.IsIdentity() {
		return PreparedNone{}
	}
	return PreparedTransform2D{Matrix: t.Matrix}
}

// PerspectiveTransform is a 3D projective view transform.
type PerspectiveTransform struct {
	Perspective geom.Perspective
}

func (t PerspectiveTransform) prepare(bounds geom.Rect) PreparedRenderTransform {
	corners := [4]geom.Point{
		bounds.Origin(),
		bounds.UpperRight(),
		bounds.LowerRight(),
		bounds.LowerLeft(),
	}

	points := make([]mgl32.Vec4, 4)
	for i, corner := range corners {
		points[i] = t.Perspective.Apply(corner.To3D())
	}

	// The unclipped projected corners; later stages (distortion,
	// shading) need the full bounding shape, not the clipped one.
	var quad [4]mgl32.Vec4
	for i, p := range points {
		quad[i] = geom.PerspectiveDivide(p)
	}

	clipped := geom.ClipPolygon3D(points)

	inverse := t.Perspective.Inverse()
	clipPolygon := make([]geom.Point, len(clipped))
	for i, p := range clipped {
		p = geom.PerspectiveDivide(p)
		clipPolygon[i] = geom.To2D(geom.PerspectiveDivide(inverse.Apply(p)))
	}

	return PreparedPerspective{
		Perspective: t.Perspective,
		ClipPolygon: clipPolygon,
		Quad:        quad,
	}
}

// PreparedRenderTransform is the prepared tagged variant. Consumers
// switch exhaustively over PreparedNone, PreparedTransform2D and
// PreparedPerspective.
type PreparedRenderTransform interface {
	isPreparedRenderTransform()
}

// PreparedNone is the identity fast path. A 2D transform that is
// exactly the identity always collapses to this variant.
type PreparedNone struct{}

func (PreparedNone) isPreparedRenderTransform() {}

// PreparedTransform2D wraps a non-identity affine matrix unchanged.
type PreparedTransform2D struct {
	Matrix geom.Matrix
}

func (PreparedTransform2D) isPreparedRenderTransform() {}

// PreparedPerspective carries the perspective transform together with
// its derived clip geometry.
type PreparedPerspective struct {
	Perspective geom.Perspective

	// ClipPolygon is the region of object space visible after
	// projection and view-volume clipping. Empty when the scene
	// bounds project entirely outside the view volume; that is
	// normal data, not an error, and yields no visible tiles.
	ClipPolygon []geom.Point

	// Quad holds the four perspective-divided (but unclipped)
	// projected corners of the scene bounds.
	Quad [4]mgl32.Vec4
}

func (PreparedPerspective) isPreparedRenderTransform() {}

// PreparedRenderOptions is the immutable, derived form of
// RenderOptions, one per build.
type PreparedRenderOptions struct {
	Transform         PreparedRenderTransform
	Dilation          geom.Point
	BarrelDistortion  *BarrelDistortionCoefficients
	SubpixelAAEnabled bool
}

// Is2D reports whether the prepared transform is a plain affine matrix.
func (o *PreparedRenderOptions) Is2D() bool {
	_, ok := o.Transform.(PreparedTransform2D)
	return ok
}

// Quad returns the projected bounds quad for perspective transforms,
// or the zero quad otherwise.
func (o *PreparedRenderOptions) Quad() [4]mgl32.Vec4 {
	if transform, ok := o.Transform.(PreparedPerspective); ok {
		return transform.Quad
	}
	return [4]mgl32.Vec4{}
}
