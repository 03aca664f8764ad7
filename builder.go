package pave

import (
	"fmt"
	"math"
	"sort"

	"github.com/gogpu/pave/geom"
	"github.com/gogpu/pave/gpu"
	"github.com/gogpu/pave/internal/parallel"
	"github.com/gogpu/pave/tiling"
)

// SceneBuilder drives one scene build: per-object tiling, occlusion
// culling and command packing. The sequential and parallel modes
// produce equivalent command streams; parallel tiling may reorder
// alpha-tile appends, and packing restores object paint order before
// the batch leaves the builder.
type SceneBuilder struct {
	scene   *Scene
	options *PreparedRenderOptions
	workers int
}

// BuilderOption configures a SceneBuilder during creation.
type BuilderOption func(*SceneBuilder)

// WithWorkers sets the worker count for BuildInParallel.
// Zero or negative means GOMAXPROCS.
func WithWorkers(n int) BuilderOption {
	return func(b *SceneBuilder) {
		b.workers = n
	}
}

// NewSceneBuilder creates a builder for one scene and one set of
// prepared options. The scene must not change until the build returns.
func NewSceneBuilder(scene *Scene, options *PreparedRenderOptions, opts ...BuilderOption) *SceneBuilder {
	b := &SceneBuilder{
		scene:   scene,
		options: options,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildSequentially builds every object in index order on the calling
// goroutine, then culls and packs.
func (b *SceneBuilder) BuildSequentially(listener gpu.RenderCommandListener) {
	viewBox, buffers := b.beginBuild(listener)

	for objectIndex := range b.scene.Objects {
		b.buildObject(objectIndex, viewBox, buffers, listener)
	}

	b.finishBuild(listener, buffers)
}

// BuildInParallel fans object tiling out across a worker pool. There
// is no ordering guarantee between objects; each object's work is
// fully independent and writes only through thread-safe buffer
// appends. The pool join is a full barrier: culling and packing run on
// the calling goroutine only after every object has finished.
func (b *SceneBuilder) BuildInParallel(listener gpu.RenderCommandListener) {
	viewBox, buffers := b.beginBuild(listener)

	pool := parallel.NewWorkerPool(b.workers)
	defer pool.Close()

	work := make([]func(), len(b.scene.Objects))
	for objectIndex := range b.scene.Objects {
		index := objectIndex
		work[index] = func() {
			b.buildObject(index, viewBox, buffers, listener)
		}
	}
	pool.ExecuteAll(work)

	b.finishBuild(listener, buffers)
}

// beginBuild allocates the per-build buffers and emits the mandatory
// leading clear command.
func (b *SceneBuilder) beginBuild(listener gpu.RenderCommandListener) (geom.Rect, *gpu.SharedBuffers) {
	// Tile object identifiers are 16-bit.
	if len(b.scene.Objects) > math.MaxUint16+1 {
		panic(fmt.Sprintf("pave: scene has %d objects, limit is %d", len(b.scene.Objects), math.MaxUint16+1))
	}

	viewBox := b.scene.EffectiveViewBox(b.options)
	buffers := gpu.NewSharedBuffers(viewBox)

	// Reset GPU-side coverage accumulation before any fill or tile
	// data arrives.
	listener.Send(gpu.ClearMaskFramebufferCommand{})
	return viewBox, buffers
}

func (b *SceneBuilder) finishBuild(listener gpu.RenderCommandListener, buffers *gpu.SharedBuffers) {
	culled := b.cullAlphaTiles(buffers)
	b.packTiles(listener, buffers)

	Logger().Debug("scene build complete",
		"objects", len(b.scene.Objects),
		"alphaTilesCulled", culled)
}

// buildObject tiles a single object into the shared buffers.
func (b *SceneBuilder) buildObject(objectIndex int, viewBox geom.Rect, buffers *gpu.SharedBuffers, listener gpu.RenderCommandListener) gpu.BuiltObject {
	object := &b.scene.Objects[objectIndex]
	outline := b.scene.ApplyRenderOptions(object.Outline, b.options)

	tiler := tiling.NewTiler(outline, viewBox, uint16(objectIndex), object.Paint.IsOpaque(), buffers, listener)
	return tiler.GenerateTiles()
}

// cullAlphaTiles tombstones every alpha tile hidden behind a later
// fully-opaque tile at the same coordinate. Occluded records are
// overwritten in place with the culled-tile sentinel rather than
// removed, so the pass is O(1) per record, order-preserving and
// allocation-free. Returns the number of tiles culled.
func (b *SceneBuilder) cullAlphaTiles(buffers *gpu.SharedBuffers) int {
	culled := 0
	for index := 0; index < buffers.AlphaTiles.Len(); index++ {
		tile := buffers.AlphaTiles.Get(index)
		if buffers.ZBuffer.Test(tile.Coords(), uint32(tile.ObjectIndex)) {
			continue
		}

		tile.MarkCulled()
		buffers.AlphaTiles.Set(index, tile)
		culled++
	}
	return culled
}

// packTiles drains the shared buffers into the command stream exactly
// once: the trailing partial fill batch first, then solid tiles, then
// alpha tiles sorted into ascending object paint order.
func (b *SceneBuilder) packTiles(listener gpu.RenderCommandListener, buffers *gpu.SharedBuffers) {
	objectCount := uint32(len(b.scene.Objects))
	solidTiles := buffers.ZBuffer.BuildSolidTiles(0, objectCount)

	// Full batches were flushed during tiling; only the remainder
	// below the last batch boundary is left.
	fillCount := buffers.Fills.Len()
	if fillCount%gpu.MaxFillsPerBatch != 0 {
		fillStart := fillCount &^ (gpu.MaxFillsPerBatch - 1)
		listener.Send(gpu.FillCommand{Fills: buffers.Fills.RangeToVec(fillStart, fillCount)})
		buffers.Fills.Clear()
	}

	if len(solidTiles) > 0 {
		listener.Send(gpu.SolidTileCommand{Tiles: solidTiles})
	}

	if buffers.AlphaTiles.Len() > 0 {
		tiles := buffers.AlphaTiles.ToVec()
		// Parallel building destroys per-object ordering; correct
		// blending needs ascending paint order. The sort is stable so
		// tiles of one object keep their relative order.
		sort.SliceStable(tiles, func(i, j int) bool {
			return tiles[i].ObjectIndex < tiles[j].ObjectIndex
		})

		listener.Send(gpu.AlphaTileCommand{Tiles: tiles})
		buffers.AlphaTiles.Clear()
	}
}
