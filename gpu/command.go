// Package gpu defines the GPU-facing data produced by a scene build:
// the render command stream, the tile and fill primitives it carries,
// and the shared buffers that collect per-object tiling output.
//
// Commands are typed structs behind a small interface, so consumers can
// switch exhaustively on CommandType and inspect payloads without
// decoding a binary format.
package gpu

// CommandType identifies the type of a render command.
type CommandType uint8

const (
	// CmdClearMaskFramebuffer resets GPU-side coverage accumulation.
	// It is always the first command of a build.
	CmdClearMaskFramebuffer CommandType = iota

	// CmdFill carries a batch of fill spans for mask rendering.
	CmdFill

	// CmdSolidTile carries tiles rendered directly without blending.
	CmdSolidTile

	// CmdAlphaTile carries tiles requiring blended compositing,
	// ordered by ascending object index.
	CmdAlphaTile
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClearMaskFramebuffer: "ClearMaskFramebuffer",
	CmdFill:                 "Fill",
	CmdSolidTile:            "SolidTile",
	CmdAlphaTile:            "AlphaTile",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// RenderCommand is the unit of scene-build output. A command is
// constructed once, handed to the listener, and then owned by it.
type RenderCommand interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ClearMaskFramebufferCommand clears the mask framebuffer.
type ClearMaskFramebufferCommand struct{}

// Type implements RenderCommand.
func (ClearMaskFramebufferCommand) Type() CommandType { return CmdClearMaskFramebuffer }

// FillCommand carries at most MaxFillsPerBatch fill spans.
type FillCommand struct {
	Fills []FillSpan
}

// Type implements RenderCommand.
func (FillCommand) Type() CommandType { return CmdFill }

// SolidTileCommand carries the solid tiles of a whole build.
type SolidTileCommand struct {
	Tiles []SolidTile
}

// Type implements RenderCommand.
func (SolidTileCommand) Type() CommandType { return CmdSolidTile }

// AlphaTileCommand carries alpha tiles sorted by ascending object
// index. The order is significant: the consumer must blend tiles in
// object paint order.
type AlphaTileCommand struct {
	Tiles []AlphaTile
}

// Type implements RenderCommand.
func (AlphaTileCommand) Type() CommandType { return CmdAlphaTile }

// RenderCommandListener receives the command stream of one build.
//
// Send must be safe for concurrent use: during the parallel build phase
// the tiler flushes full fill batches from worker goroutines. The core
// guarantees ordering only among the commands it sends itself after the
// join barrier.
type RenderCommandListener interface {
	Send(command RenderCommand)
}

// ListenerFunc adapts a function to the RenderCommandListener
// interface. The function must be safe for concurrent calls.
type ListenerFunc func(RenderCommand)

// Send implements RenderCommandListener.
func (f ListenerFunc) Send(command RenderCommand) { f(command) }
