// Package tiling rasterizes one transformed outline into tile-granular
// coverage: z-buffer updates for fully-opaque tiles, alpha-tile records
// for tiles needing blending, and fill spans carrying the exact edge
// geometry of partially covered tiles.
package tiling

import (
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/pave/geom"
	"github.com/gogpu/pave/gpu"
)

// coverageEpsilon separates empty and full tiles from partial ones.
// Coverage is an area fraction in [0, 1]; one part in 256 is below the
// resolution of 8-bit alpha.
const coverageEpsilon = 1.0 / 256

// Tiler rasterizes a single object's outline into the shared buffers.
// It owns no cross-object state: a tiler per object may run on its own
// worker goroutine, writing only through the thread-safe buffer
// appends and the listener.
type Tiler struct {
	outline  *geom.Outline
	viewBox  geom.Rect
	objectID uint16
	opaque   bool
	buffers  *gpu.SharedBuffers
	listener gpu.RenderCommandListener

	built gpu.BuiltObject
}

// NewTiler binds a tiler to one outline. The object identifier is the
// object's scene index narrowed to 16 bits; opaque tells the tiler
// whether full coverage may claim the z-buffer.
func NewTiler(outline *geom.Outline, viewBox geom.Rect, objectID uint16, opaque bool, buffers *gpu.SharedBuffers, listener gpu.RenderCommandListener) *Tiler {
	return &Tiler{
		outline:  outline,
		viewBox:  viewBox,
		objectID: objectID,
		opaque:   opaque,
		buffers:  buffers,
		listener: listener,
	}
}

// GenerateTiles runs tiling to completion. Results are appended into
// the shared buffers as a side effect; full fill batches are flushed to
// the listener as they complete. The returned summary is informational.
func (t *Tiler) GenerateTiles() gpu.BuiltObject {
	if t.outline.IsEmpty() {
		return t.built
	}
	bounds := t.outline.Bounds().Intersect(t.viewBox)
	t.built.Bounds = bounds
	if bounds.IsEmpty() {
		return t.built
	}

	tx0 := int32(math.Floor(float64(bounds.MinX) / gpu.TileWidth))
	ty0 := int32(math.Floor(float64(bounds.MinY) / gpu.TileHeight))
	tx1 := int32(math.Ceil(float64(bounds.MaxX) / gpu.TileWidth))
	ty1 := int32(math.Ceil(float64(bounds.MaxY) / gpu.TileHeight))

	for ty := ty0; ty < ty1; ty++ {
		for tx := tx0; tx < tx1; tx++ {
			t.generateTile(gpu.TileCoord{X: tx, Y: ty})
		}
	}
	return t.built
}

func (t *Tiler) generateTile(coords gpu.TileCoord) {
	tileRect := geom.NewRect(
		float32(coords.X)*gpu.TileWidth,
		float32(coords.Y)*gpu.TileHeight,
		float32(coords.X+1)*gpu.TileWidth,
		float32(coords.Y+1)*gpu.TileHeight,
	)

	coverage := outlineCoverage(t.outline, tileRect)
	switch {
	case coverage <= coverageEpsilon:
		// Tile untouched by the outline.

	case coverage >= 1-coverageEpsilon:
		if t.opaque {
			t.buffers.ZBuffer.Update(coords, t.objectID)
			t.built.SolidTileCount++
			return
		}
		// Fully covered but translucent: blended as a whole tile,
		// backdrop only, no fills.
		t.buffers.AlphaTiles.Push(gpu.NewAlphaTile(coords, 1, t.objectID))
		t.built.AlphaTileCount++

	default:
		index := t.buffers.AlphaTiles.Push(gpu.NewAlphaTile(coords, 0, t.objectID))
		t.built.AlphaTileCount++
		t.emitFills(tileRect, uint32(index))
	}
}

// emitFills appends one fill span per outline edge segment crossing the
// tile. When an append completes a full batch, the batch is flushed to
// the listener immediately; end-of-build packing only ever emits the
// remainder below the last batch boundary.
func (t *Tiler) emitFills(tileRect geom.Rect, alphaTileIndex uint32) {
	origin := tileRect.Origin()
	for _, contour := range t.outline.Contours {
		for i, p0 := range contour {
			p1 := contour[(i+1)%len(contour)]
			c0, c1, ok := geom.ClipSegmentToRect(p0, p1, tileRect)
			if !ok {
				continue
			}
			span := gpu.FillSpan{
				From:           toFixed(c0.Sub(origin)),
				To:             toFixed(c1.Sub(origin)),
				AlphaTileIndex: alphaTileIndex,
			}
			if span.From == span.To {
				continue
			}
			t.built.FillCount++
			if batch := t.buffers.Fills.Push(span); batch != nil {
				t.listener.Send(gpu.FillCommand{Fills: batch})
			}
		}
	}
}

// toFixed converts a tile-local point to 26.6 subpixel coordinates.
func toFixed(p geom.Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(float64(p.X) * 64)),
		Y: fixed.Int26_6(math.Round(float64(p.Y) * 64)),
	}
}

// outlineCoverage returns the fraction of the tile covered by the
// outline, computed by clipping every contour to the tile and summing
// signed areas. Holes wind opposite to their outer contour and
// subtract before the magnitude is taken.
func outlineCoverage(outline *geom.Outline, tileRect geom.Rect) float32 {
	var area float32
	for _, contour := range outline.Contours {
		clipped := geom.ClipPolygonToRect(contour, tileRect)
		area += geom.PolygonArea(clipped)
	}
	coverage := float32(math.Abs(float64(area))) / (tileRect.Width() * tileRect.Height())
	return min(coverage, 1)
}
