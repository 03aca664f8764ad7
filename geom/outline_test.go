package geom

import (
	"math"
	"testing"
)

func TestRectOutlineBounds(t *testing.T) {
	r := NewRect(2, 3, 10, 20)
	o := NewRectOutline(r)

	if got := o.Bounds(); got != r {
		t.Errorf("Bounds() = %v, want %v", got, r)
	}
	if o.IsEmpty() {
		t.Error("IsEmpty() = true for a rectangle outline")
	}
}

func TestOutlineCloneIsDeep(t *testing.T) {
	o := NewRectOutline(NewRect(0, 0, 10, 10))
	clone := o.Clone()
	clone.Transform(Translate(100, 0))

	if o.Bounds().MinX != 0 {
		t.Error("mutating a clone changed the original outline")
	}
	if clone.Bounds().MinX != 100 {
		t.Errorf("clone MinX = %v, want 100", clone.Bounds().MinX)
	}
}

func TestOutlineClipAgainstPolygon(t *testing.T) {
	tests := []struct {
		name     string
		clip     []Point
		wantArea float32
	}{
		{
			"clip to overlapping half",
			[]Point{Pt(5, 0), Pt(10, 0), Pt(10, 10), Pt(5, 10)},
			50,
		},
		{
			"clip fully outside",
			[]Point{Pt(50, 50), Pt(60, 50), Pt(60, 60), Pt(50, 60)},
			0,
		},
		{
			"empty clip polygon removes everything",
			nil,
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewRectOutline(NewRect(0, 0, 10, 10))
			o.ClipAgainstPolygon(tt.clip)

			var area float32
			for _, c := range o.Contours {
				area += PolygonArea(c)
			}
			if math.Abs(float64(area-tt.wantArea)) > 1e-4 {
				t.Errorf("remaining area = %v, want %v", area, tt.wantArea)
			}
		})
	}
}

func TestOutlineDilate(t *testing.T) {
	o := NewRectOutline(NewRect(0, 0, 10, 10))
	o.Dilate(Pt(1, 2))

	want := NewRect(-1, -2, 11, 12)
	if got := o.Bounds(); got != want {
		t.Errorf("dilated bounds = %v, want %v", got, want)
	}
}

func TestOutlineDilateZeroIsNoop(t *testing.T) {
	o := NewRectOutline(NewRect(0, 0, 10, 10))
	o.Dilate(Point{})

	if got := o.Bounds(); got != NewRect(0, 0, 10, 10) {
		t.Errorf("bounds after zero dilation = %v, want unchanged", got)
	}
}
