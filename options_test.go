package pave

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/pave/geom"
)

func TestPrepareIdentity2D(t *testing.T) {
	tests := []struct {
		name    string
		options RenderOptions
	}{
		{"nil transform", RenderOptions{}},
		{"explicit identity", RenderOptions{Transform: Transform2D{Matrix: geom.Identity()}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prepared := tt.options.Prepare(geom.NewRect(0, 0, 100, 100))
			if _, ok := prepared.Transform.(PreparedNone); !ok {
				t.Errorf("Transform = %T, want PreparedNone", prepared.Transform)
			}
		})
	}
}

func TestPrepareNonIdentity2D(t *testing.T) {
	matrix := geom.Translate(10, 5).Multiply(geom.Scale(2, 2))
	options := RenderOptions{Transform: Transform2D{Matrix: matrix}}

	prepared := options.Prepare(geom.NewRect(0, 0, 100, 100))
	transform, ok := prepared.Transform.(PreparedTransform2D)
	if !ok {
		t.Fatalf("Transform = %T, want PreparedTransform2D", prepared.Transform)
	}
	if transform.Matrix != matrix {
		t.Errorf("Matrix = %+v, want the exact input matrix %+v", transform.Matrix, matrix)
	}
}

func TestPrepareCopiesFieldsThrough(t *testing.T) {
	distortion := &BarrelDistortionCoefficients{K0: 1, K1: 0.2}
	options := RenderOptions{
		Dilation:          geom.Pt(1, 2),
		BarrelDistortion:  distortion,
		SubpixelAAEnabled: true,
	}

	prepared := options.Prepare(geom.NewRect(0, 0, 10, 10))
	if prepared.Dilation != geom.Pt(1, 2) {
		t.Errorf("Dilation = %v, want (1, 2)", prepared.Dilation)
	}
	if prepared.BarrelDistortion != distortion {
		t.Error("BarrelDistortion not passed through")
	}
	if !prepared.SubpixelAAEnabled {
		t.Error("SubpixelAAEnabled not passed through")
	}
}

func TestPreparePerspectiveInsideRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		transform mgl32.Mat4
		bounds    geom.Rect
	}{
		{
			name:      "identity projection",
			transform: mgl32.Ident4(),
			bounds:    geom.NewRect(-0.5, -0.5, 0.5, 0.5),
		},
		{
			name: "real perspective projection",
			transform: mgl32.Perspective(math.Pi/3, 1, 0.1, 100).
				Mul4(mgl32.Translate3D(0, 0, -2)),
			bounds: geom.NewRect(-0.5, -0.5, 0.5, 0.5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perspective := geom.NewPerspective(tt.transform)
			options := RenderOptions{Transform: PerspectiveTransform{Perspective: perspective}}
			prepared := options.Prepare(tt.bounds)

			transform, ok := prepared.Transform.(PreparedPerspective)
			if !ok {
				t.Fatalf("Transform = %T, want PreparedPerspective", prepared.Transform)
			}
			if len(transform.ClipPolygon) != 4 {
				t.Fatalf("clip polygon vertex count = %d, want 4 for fully-inside bounds", len(transform.ClipPolygon))
			}

			// Fully inside the view volume, the clip polygon must
			// reconstruct the original corners.
			corners := [4]geom.Point{
				tt.bounds.Origin(),
				tt.bounds.UpperRight(),
				tt.bounds.LowerRight(),
				tt.bounds.LowerLeft(),
			}
			for i, corner := range corners {
				got := transform.ClipPolygon[i]
				if math.Abs(float64(got.X-corner.X)) > 1e-3 || math.Abs(float64(got.Y-corner.Y)) > 1e-3 {
					t.Errorf("clip polygon vertex %d = %v, want %v", i, got, corner)
				}
			}
		})
	}
}

func TestPreparePerspectiveOutside(t *testing.T) {
	// Bounds far beyond the x <= w plane of the view volume.
	options := RenderOptions{
		Transform: PerspectiveTransform{Perspective: geom.NewPerspective(mgl32.Ident4())},
	}
	prepared := options.Prepare(geom.NewRect(10, 10, 11, 11))

	transform, ok := prepared.Transform.(PreparedPerspective)
	if !ok {
		t.Fatalf("Transform = %T, want PreparedPerspective", prepared.Transform)
	}
	if len(transform.ClipPolygon) != 0 {
		t.Errorf("clip polygon vertex count = %d, want 0 for fully-outside bounds", len(transform.ClipPolygon))
	}
}

func TestPreparedOptionsQuad(t *testing.T) {
	bounds := geom.NewRect(-0.5, -0.5, 0.5, 0.5)
	perspective := RenderOptions{
		Transform: PerspectiveTransform{Perspective: geom.NewPerspective(mgl32.Ident4())},
	}.Prepare(bounds)

	quad := perspective.Quad()
	want := [4]mgl32.Vec4{
		{-0.5, -0.5, 0, 1},
		{0.5, -0.5, 0, 1},
		{0.5, 0.5, 0, 1},
		{-0.5, 0.5, 0, 1},
	}
	if quad != want {
		t.Errorf("Quad() = %v, want %v", quad, want)
	}

	flat := RenderOptions{}.Prepare(bounds)
	if flat.Quad() != ([4]mgl32.Vec4{}) {
		t.Errorf("Quad() for 2D transform = %v, want zero quad", flat.Quad())
	}
	if flat.Is2D() {
		t.Error("Is2D() = true for the identity fast path")
	}
}
