package gpu

import (
	"sync"

	"github.com/gogpu/pave/geom"
)

// SharedBuffers collects per-object tiling output for one scene build.
// All three containers accept concurrent appends from tiling workers;
// reads and drains happen single-threaded after the build's join
// barrier.
type SharedBuffers struct {
	Fills      *FillVector
	AlphaTiles *AlphaTileVector
	ZBuffer    *ZBuffer
}

// NewSharedBuffers creates fresh buffers scoped to one build of the
// given view box.
func NewSharedBuffers(viewBox geom.Rect) *SharedBuffers {
	return &SharedBuffers{
		Fills:      &FillVector{},
		AlphaTiles: &AlphaTileVector{},
		ZBuffer:    NewZBuffer(viewBox),
	}
}

// FillVector is an append-only sequence of fill spans. Appends are
// atomic with respect to position assignment: concurrent writers never
// share a slot.
type FillVector struct {
	mu    sync.Mutex
	fills []FillSpan
}

// Push appends one fill span. When the append makes the length an
// exact multiple of MaxFillsPerBatch it returns a copy of the batch
// that just completed, which the caller must flush as one fill
// command; otherwise it returns nil. The completed-batch check happens
// under the same lock as the append, so exactly one writer observes
// each boundary.
func (v *FillVector) Push(fill FillSpan) []FillSpan {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.fills = append(v.fills, fill)
	n := len(v.fills)
	if n%MaxFillsPerBatch != 0 {
		return nil
	}
	batch := make([]FillSpan, MaxFillsPerBatch)
	copy(batch, v.fills[n-MaxFillsPerBatch:])
	return batch
}

// Len returns the number of buffered fill spans.
func (v *FillVector) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.fills)
}

// RangeToVec copies the spans in [start, end) into a new slice.
func (v *FillVector) RangeToVec(start, end int) []FillSpan {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]FillSpan, end-start)
	copy(out, v.fills[start:end])
	return out
}

// Clear removes all buffered fill spans.
func (v *FillVector) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.fills = v.fills[:0]
}

// AlphaTileVector is an append-only sequence of alpha tile records.
type AlphaTileVector struct {
	mu    sync.Mutex
	tiles []AlphaTile
}

// Push appends one record and returns its index.
func (v *AlphaTileVector) Push(tile AlphaTile) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tiles = append(v.tiles, tile)
	return len(v.tiles) - 1
}

// Len returns the number of buffered records.
func (v *AlphaTileVector) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.tiles)
}

// Get returns the record at index.
func (v *AlphaTileVector) Get(index int) AlphaTile {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tiles[index]
}

// Set overwrites the record at index.
func (v *AlphaTileVector) Set(index int, tile AlphaTile) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tiles[index] = tile
}

// ToVec copies all records into a new slice.
func (v *AlphaTileVector) ToVec() []AlphaTile {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]AlphaTile, len(v.tiles))
	copy(out, v.tiles)
	return out
}

// Clear removes all buffered records.
func (v *AlphaTileVector) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tiles = v.tiles[:0]
}
