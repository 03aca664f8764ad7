// Package pave is the scene-build stage of a tile-based vector
// graphics rasterizer: it converts a scene of vector outlines and a
// view transform into an ordered stream of GPU-ready drawing commands.
//
// # Overview
//
// A build runs in three phases. First every object's outline is tiled,
// either on the calling goroutine or fanned out across a worker pool;
// tiling appends fill spans, alpha-tile records and solid-coverage
// z-buffer entries into shared buffers. After all objects finish,
// alpha tiles hidden behind later opaque tiles are culled in place.
// Finally the buffers are drained into render commands and handed to a
// listener in a fixed order.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/pave"
//		"github.com/gogpu/pave/gpu"
//	)
//
//	scene := pave.NewScene(viewBox)
//	scene.PushObject(pave.NewObject(outline, paint))
//
//	options := pave.RenderOptions{}.Prepare(scene.Bounds())
//	builder := pave.NewSceneBuilder(scene, options)
//	builder.BuildInParallel(gpu.ListenerFunc(func(cmd gpu.RenderCommand) {
//		// submit cmd to the GPU
//	}))
//
// The sequential and parallel build modes produce equivalent command
// streams: solid and fill batches are deterministic, and alpha tiles
// are sorted into object paint order before they leave the builder.
//
// # Transforms
//
// The view transform is either a plain 2D affine matrix or a full 3D
// perspective transform. Perspective preparation clips the scene
// bounds against the canonical view volume in homogeneous space and
// maps the visible region back into object space, so tiling never
// touches geometry that projects off screen. See RenderTransform.
package pave
