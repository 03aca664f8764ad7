package gpu

import (
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/pave/geom"
)

// TileWidth and TileHeight are the pixel dimensions of one tile, the
// unit of coverage and occlusion bookkeeping.
const (
	TileWidth  = 16
	TileHeight = 16
)

// MaxFillsPerBatch is the fixed size of a full fill batch.
// Must be a power of two.
const MaxFillsPerBatch = 0x1000

// CulledTileByte is the sentinel written into the packed coordinate
// fields of an occluded alpha tile. Consumers skip tiles whose
// coordinate bytes all carry this value.
const CulledTileByte = 0xFF

// TileCoord addresses one tile on the output raster grid.
type TileCoord struct {
	X, Y int32
}

// FillSpan is one outline edge segment clipped into a single tile,
// destined for GPU-side coverage rasterization. Endpoints are
// tile-local subpixel coordinates.
type FillSpan struct {
	From, To fixed.Point26_6

	// AlphaTileIndex is the buffer index of the alpha tile this span
	// contributes coverage to.
	AlphaTileIndex uint32
}

// SolidTile describes a tile fully and opaquely covered by one object.
type SolidTile struct {
	X, Y        int16
	ObjectIndex uint16
}

// AlphaTile describes a tile needing blended compositing: partial
// coverage, or full coverage by a translucent object.
//
// Tile coordinates are packed into three bytes, 12 bits per axis:
// TileXLo and TileYLo hold the low bytes, TileHi holds the high nibble
// of X in its low nibble and the high nibble of Y in its high nibble.
type AlphaTile struct {
	TileXLo, TileYLo, TileHi uint8

	// Backdrop is the winding number entering the tile; a full
	// translucent tile has nonzero backdrop and no fill spans.
	Backdrop int8

	ObjectIndex uint16
}

// NewAlphaTile packs a tile coordinate, backdrop and object index into
// an alpha tile record.
func NewAlphaTile(coords TileCoord, backdrop int8, objectIndex uint16) AlphaTile {
	return AlphaTile{
		TileXLo:     uint8(coords.X),
		TileYLo:     uint8(coords.Y),
		TileHi:      uint8(coords.X>>8)&0x0F | uint8(coords.Y>>4)&0xF0,
		Backdrop:    backdrop,
		ObjectIndex: objectIndex,
	}
}

// Coords unpacks the tile coordinate.
func (t AlphaTile) Coords() TileCoord {
	return TileCoord{
		X: int32(t.TileXLo) | int32(t.TileHi&0x0F)<<8,
		Y: int32(t.TileYLo) | int32(t.TileHi>>4)<<8,
	}
}

// MarkCulled overwrites the packed coordinates with the culled-tile
// sentinel. The record stays in place so the buffer never shifts.
func (t *AlphaTile) MarkCulled() {
	t.TileXLo = CulledTileByte
	t.TileYLo = CulledTileByte
	t.TileHi = CulledTileByte
}

// IsCulled reports whether the record carries the culled-tile sentinel.
func (t AlphaTile) IsCulled() bool {
	return t.TileXLo == CulledTileByte && t.TileYLo == CulledTileByte && t.TileHi == CulledTileByte
}

// BuiltObject summarizes one object's tiling result. The underlying
// data has already been flushed into the shared buffers; the summary is
// informational.
type BuiltObject struct {
	Bounds geom.Rect

	SolidTileCount int
	AlphaTileCount int
	FillCount      int
}
