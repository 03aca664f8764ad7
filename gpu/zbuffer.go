package gpu

import (
	"math"
	"sync/atomic"

	"github.com/gogpu/pave/geom"
)

// ZBuffer records, per tile, the topmost object that fully and
// opaquely covers it. It drives occlusion culling, not depth-buffered
// shading: among competing fully-opaque objects at one tile, the
// numerically greatest object index wins, consistent with objects
// being painted in ascending index order.
//
// Each slot holds objectIndex+1, so zero means no opaque coverage.
// Updates are lock-free compare-and-swap maxima, which resolves
// concurrent writers from parallel tiling deterministically.
type ZBuffer struct {
	// originX, originY anchor the grid in absolute tile space; tilers
	// address tiles by absolute coordinates, not view-box-relative ones.
	originX, originY int32
	tilesX, tilesY   int32
	depth            []atomic.Uint32
}

// NewZBuffer creates a z-buffer covering the view box at tile
// granularity. The grid spans the view box's rounded-out tile bounds,
// so partially covered edge tiles and nonzero origins are included.
func NewZBuffer(viewBox geom.Rect) *ZBuffer {
	originX := int32(math.Floor(float64(viewBox.MinX) / TileWidth))
	originY := int32(math.Floor(float64(viewBox.MinY) / TileHeight))
	tilesX := int32(math.Ceil(float64(viewBox.MaxX)/TileWidth)) - originX
	tilesY := int32(math.Ceil(float64(viewBox.MaxY)/TileHeight)) - originY
	if tilesX < 0 {
		tilesX = 0
	}
	if tilesY < 0 {
		tilesY = 0
	}
	return &ZBuffer{
		originX: originX,
		originY: originY,
		tilesX:  tilesX,
		tilesY:  tilesY,
		depth:   make([]atomic.Uint32, tilesX*tilesY),
	}
}

func (z *ZBuffer) slot(coords TileCoord) int {
	x := coords.X - z.originX
	y := coords.Y - z.originY
	if x < 0 || x >= z.tilesX || y < 0 || y >= z.tilesY {
		return -1
	}
	return int(y*z.tilesX + x)
}

// Update records full opaque coverage of a tile by the given object.
// The stored value only ever increases.
func (z *ZBuffer) Update(coords TileCoord, objectIndex uint16) {
	slot := z.slot(coords)
	if slot < 0 {
		return
	}
	depth := uint32(objectIndex) + 1
	for {
		cur := z.depth[slot].Load()
		if cur >= depth {
			return
		}
		if z.depth[slot].CompareAndSwap(cur, depth) {
			return
		}
	}
}

// Test reports whether an alpha tile of the given object is visible at
// the tile coordinate: true when no fully-opaque object at or above
// this index covers the tile. Coordinates outside the view box are
// trivially visible.
func (z *ZBuffer) Test(coords TileCoord, objectIndex uint32) bool {
	slot := z.slot(coords)
	if slot < 0 {
		return true
	}
	return z.depth[slot].Load() < objectIndex+1
}

// BuildSolidTiles returns the solid tiles whose covering object index
// lies in [start, end), in row-major tile order. Tile coordinates are
// absolute, matching those the tilers record.
func (z *ZBuffer) BuildSolidTiles(start, end uint32) []SolidTile {
	var tiles []SolidTile
	for y := int32(0); y < z.tilesY; y++ {
		for x := int32(0); x < z.tilesX; x++ {
			depth := z.depth[y*z.tilesX+x].Load()
			if depth == 0 {
				continue
			}
			objectIndex := depth - 1
			if objectIndex < start || objectIndex >= end {
				continue
			}
			tiles = append(tiles, SolidTile{
				X:           int16(x + z.originX),
				Y:           int16(y + z.originY),
				ObjectIndex: uint16(objectIndex),
			})
		}
	}
	return tiles
}
