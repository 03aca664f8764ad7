package pave

import (
	"image/color"

	"github.com/gogpu/pave/geom"
)

// Paint describes how an object's outline is filled. Only opacity
// matters to the scene-build stage: fully-opaque paints may claim
// solid tiles and occlude work behind them.
type Paint struct {
	Color color.RGBA
}

// IsOpaque reports whether the paint covers completely.
func (p Paint) IsOpaque() bool {
	return p.Color.A == 0xFF
}

// Object is one element of a scene: a flattened outline with a paint.
type Object struct {
	Outline *geom.Outline
	Paint   Paint
}

// NewObject creates a scene object.
func NewObject(outline *geom.Outline, paint Paint) Object {
	return Object{Outline: outline, Paint: paint}
}

// Scene is an ordered sequence of objects, painted in ascending index
// order: later objects paint over earlier ones. A scene must not be
// mutated while a build is running.
type Scene struct {
	Objects []Object

	// ViewBox is the visible region of the output surface.
	ViewBox geom.Rect

	bounds geom.Rect
}

// NewScene creates an empty scene with the given view box.
func NewScene(viewBox geom.Rect) *Scene {
	return &Scene{ViewBox: viewBox}
}

// PushObject appends an object; it will paint over everything pushed
// before it.
func (s *Scene) PushObject(object Object) {
	s.bounds = s.bounds.Union(object.Outline.Bounds())
	s.Objects = append(s.Objects, object)
}

// Bounds returns the union of all object bounds.
func (s *Scene) Bounds() geom.Rect {
	return s.bounds
}

// EffectiveViewBox returns the view box a build actually tiles. With
// subpixel AA enabled the horizontal resolution triples, one sample
// per RGB subpixel.
func (s *Scene) EffectiveViewBox(options *PreparedRenderOptions) geom.Rect {
	vb := s.ViewBox
	if options.SubpixelAAEnabled {
		vb.MaxX = vb.MinX + vb.Width()*3
	}
	return vb
}

// ApplyRenderOptions returns a copy of the outline adjusted for the
// prepared transform: clipped to the visible region, projected,
// distorted and dilated as the options demand. The input outline is
// never mutated.
func (s *Scene) ApplyRenderOptions(outline *geom.Outline, options *PreparedRenderOptions) *geom.Outline {
	out := outline.Clone()

	switch transform := options.Transform.(type) {
	case PreparedNone:
		// Identity fast path.

	case PreparedTransform2D:
		out.Transform(transform.Matrix)

	case PreparedPerspective:
		out.ClipAgainstPolygon(transform.ClipPolygon)
		out.ApplyPerspective(transform.Perspective)
		if options.BarrelDistortion != nil {
			applyBarrelDistortion(out, options.BarrelDistortion, s.ViewBox)
		}
	}

	if options.SubpixelAAEnabled {
		out.MapPoints(func(p geom.Point) geom.Point {
			p.X *= 3
			return p
		})
	}
	if options.Dilation != (geom.Point{}) {
		out.Dilate(options.Dilation)
	}
	return out
}

// applyBarrelDistortion applies the radial lens-distortion model about
// the view-box center: r' = r * (K0 + K1*r^2) with r normalized to the
// half-diagonal.
func applyBarrelDistortion(outline *geom.Outline, coefficients *BarrelDistortionCoefficients, viewBox geom.Rect) {
	center := geom.Pt(
		viewBox.MinX+viewBox.Width()/2,
		viewBox.MinY+viewBox.Height()/2,
	)
	halfW := viewBox.Width() / 2
	halfH := viewBox.Height() / 2
	normSq := halfW*halfW + halfH*halfH
	if normSq == 0 {
		return
	}

	outline.MapPoints(func(p geom.Point) geom.Point {
		d := p.Sub(center)
		rSq := (d.X*d.X + d.Y*d.Y) / normSq
		scale := coefficients.K0 + coefficients.K1*rSq
		return center.Add(d.Mul(scale))
	})
}
