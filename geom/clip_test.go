package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestClipPolygon3DInside(t *testing.T) {
	quad := []mgl32.Vec4{
		{-0.5, -0.5, 0, 1},
		{0.5, -0.5, 0, 1},
		{0.5, 0.5, 0, 1},
		{-0.5, 0.5, 0, 1},
	}

	got := ClipPolygon3D(quad)
	if len(got) != 4 {
		t.Fatalf("clipped vertex count = %d, want 4", len(got))
	}
	for i, v := range got {
		if v != quad[i] {
			t.Errorf("vertex %d = %v, want %v (inside polygon must be unchanged)", i, v, quad[i])
		}
	}
}

func TestClipPolygon3DOutside(t *testing.T) {
	quad := []mgl32.Vec4{
		{2, 0, 0, 1},
		{3, 0, 0, 1},
		{3, 1, 0, 1},
		{2, 1, 0, 1},
	}

	if got := ClipPolygon3D(quad); len(got) != 0 {
		t.Errorf("clipped vertex count = %d, want 0 for fully-outside polygon", len(got))
	}
}

func TestClipPolygon3DStraddling(t *testing.T) {
	// Crosses the x = w plane.
	quad := []mgl32.Vec4{
		{-0.5, -0.5, 0, 1},
		{2, -0.5, 0, 1},
		{2, 0.5, 0, 1},
		{-0.5, 0.5, 0, 1},
	}

	got := ClipPolygon3D(quad)
	if len(got) < 3 {
		t.Fatalf("clipped vertex count = %d, want >= 3", len(got))
	}
	for i, v := range got {
		if v.X() > v.W()+1e-5 || v.X() < -v.W()-1e-5 {
			t.Errorf("vertex %d = %v lies outside the view volume", i, v)
		}
	}
}

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   float32
	}{
		{
			"unit square, view-box winding",
			[]Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)},
			1,
		},
		{
			"unit square, reversed",
			[]Point{Pt(0, 1), Pt(1, 1), Pt(1, 0), Pt(0, 0)},
			-1,
		},
		{
			"triangle",
			[]Point{Pt(0, 0), Pt(4, 0), Pt(2, 3)},
			6,
		},
		{"degenerate", []Point{Pt(0, 0), Pt(1, 1)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PolygonArea(tt.points); math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("PolygonArea() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClipPolygonToRect(t *testing.T) {
	square := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}

	tests := []struct {
		name     string
		subject  []Point
		clip     Rect
		wantArea float32
	}{
		{"fully inside", square, NewRect(-5, -5, 20, 20), 100},
		{"clipped to quarter", square, NewRect(5, 5, 20, 20), 25},
		{"clipped window", square, NewRect(2, 2, 5, 5), 9},
		{"fully outside", square, NewRect(20, 20, 30, 30), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clipped := ClipPolygonToRect(tt.subject, tt.clip)
			got := PolygonArea(clipped)
			if math.Abs(float64(got-tt.wantArea)) > 1e-4 {
				t.Errorf("clipped area = %v, want %v", got, tt.wantArea)
			}
		})
	}
}

func TestClipSegmentToRect(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		name           string
		p0, p1         Point
		wantOK         bool
		want0, want1   Point
		checkEndpoints bool
	}{
		{
			name:   "fully inside",
			p0:     Pt(2, 2), p1: Pt(8, 8),
			wantOK: true,
			want0:  Pt(2, 2), want1: Pt(8, 8),
			checkEndpoints: true,
		},
		{
			name:   "crossing right edge",
			p0:     Pt(5, 5), p1: Pt(15, 5),
			wantOK: true,
			want0:  Pt(5, 5), want1: Pt(10, 5),
			checkEndpoints: true,
		},
		{
			name:   "fully outside",
			p0:     Pt(20, 20), p1: Pt(30, 30),
			wantOK: false,
		},
		{
			name:   "crossing corner to corner",
			p0:     Pt(-5, -5), p1: Pt(15, 15),
			wantOK: true,
			want0:  Pt(0, 0), want1: Pt(10, 10),
			checkEndpoints: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c0, c1, ok := ClipSegmentToRect(tt.p0, tt.p1, r)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !tt.checkEndpoints {
				return
			}
			if !pointsClose(c0, tt.want0, 1e-5) || !pointsClose(c1, tt.want1, 1e-5) {
				t.Errorf("clipped = %v..%v, want %v..%v", c0, c1, tt.want0, tt.want1)
			}
		})
	}
}
