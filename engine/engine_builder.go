package engine

import (
	"github.com/trevor-e-apple/time-game/engine/camera"
	"github.com/trevor-e-apple/time-game/engine/debug"
	"github.com/trevor-e-apple/time-game/engine/model"
	"github.com/trevor-e-apple/time-game/engine/renderer"
	"github.com/trevor-e-apple/time-game/engine/renderer/bind_group_provider"
	"github.com/trevor-e-apple/time-game/engine/sprite"
	"github.com/trevor-e-apple/time-game/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets a custom configured window for the engine to use rather than allowing the engine
// to create and manage one internally.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer the engine drives each frame.
//
// Parameters:
//   - r: a pre-configured Renderer instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithCamera sets the 3D camera. Its controller receives key events from the
// window and its view-projection uniform is uploaded each frame.
//
// Parameters:
//   - c: the 3D camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithCamera2D sets the 2D camera. It tracks window resizes and its projection
// uniform is uploaded each frame.
//
// Parameters:
//   - c: the 2D camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera2D(c camera.Camera2D) EngineBuilderOption {
	return func(e *engine) {
		e.camera2D = c
	}
}

// WithSprites sets the sprite batch the engine uploads and draws each frame.
//
// Parameters:
//   - b: the sprite batch
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSprites(b sprite.Batch) EngineBuilderOption {
	return func(e *engine) {
		e.sprites = b
	}
}

// WithDebugOverlay sets the debug overlay the engine draws on top of sprites
// each frame.
//
// Parameters:
//   - o: the debug overlay
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDebugOverlay(o debug.Overlay) EngineBuilderOption {
	return func(e *engine) {
		e.overlay = o
	}
}

// WithSpritePipelineKey sets the cached pipeline key used for textured sprite
// draws. Defaults to "sprite".
//
// Parameters:
//   - key: the pipeline cache key
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSpritePipelineKey(key string) EngineBuilderOption {
	return func(e *engine) {
		e.spritePipelineKey = key
	}
}

// WithDebugPipelineKey sets the cached pipeline key used for debug shape draws.
// Defaults to "debug".
//
// Parameters:
//   - key: the pipeline cache key
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDebugPipelineKey(key string) EngineBuilderOption {
	return func(e *engine) {
		e.debugPipelineKey = key
	}
}

// WithSpriteBindGroups sets the bind group providers passed to sprite draws, in
// group index order. The textured pipeline expects the texture provider at
// group 0 and the 2D camera provider at group 1.
//
// Parameters:
//   - providers: the bind group providers for the sprite pipeline
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSpriteBindGroups(providers ...bind_group_provider.BindGroupProvider) EngineBuilderOption {
	return func(e *engine) {
		e.spriteBindGroups = providers
	}
}

// WithDebugBindGroups sets the bind group providers passed to debug draws, in
// group index order. When not specified the 2D camera's provider is used alone.
//
// Parameters:
//   - providers: the bind group providers for the debug pipeline
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDebugBindGroups(providers ...bind_group_provider.BindGroupProvider) EngineBuilderOption {
	return func(e *engine) {
		e.debugBindGroups = providers
	}
}

// WithStaticBuckets registers world-geometry buckets drawn with the given
// pipeline before the sprite and debug passes. Static buckets are flushed each
// frame but never reset; append their instances once during setup.
//
// Parameters:
//   - pipelineKey: the registered pipeline to draw the buckets with
//   - buckets: the buckets to draw
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithStaticBuckets(pipelineKey string, buckets ...model.Bucket) EngineBuilderOption {
	return func(e *engine) {
		e.staticPipelineKey = pipelineKey
		e.staticBuckets = buckets
	}
}

// WithStaticBindGroups sets the bind group providers passed to static draws,
// in group index order.
//
// Parameters:
//   - providers: the bind group providers for the static pipeline
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithStaticBindGroups(providers ...bind_group_provider.BindGroupProvider) EngineBuilderOption {
	return func(e *engine) {
		e.staticBindGroups = providers
	}
}
