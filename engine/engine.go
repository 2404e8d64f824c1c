package engine

import (
	"log"
	"time"

	"github.com/trevor-e-apple/time-game/engine/camera"
	"github.com/trevor-e-apple/time-game/engine/debug"
	"github.com/trevor-e-apple/time-game/engine/model"
	"github.com/trevor-e-apple/time-game/engine/profiler"
	"github.com/trevor-e-apple/time-game/engine/renderer"
	"github.com/trevor-e-apple/time-game/engine/renderer/bind_group_provider"
	"github.com/trevor-e-apple/time-game/engine/sprite"
	"github.com/trevor-e-apple/time-game/engine/window"
)

// frameSkipLogInterval throttles how often skipped frames are reported. Frame
// acquisition failures come in bursts (e.g. during a resize) and logging each
// one floods the output.
const frameSkipLogInterval = time.Second

// engine implements the Engine interface.
// The whole frame lifecycle runs on the window's message loop thread, which
// keeps every wgpu call on the thread that owns the surface.
type engine struct {
	window   window.Window
	renderer renderer.Renderer

	camera   camera.Camera
	camera2D camera.Camera2D

	sprites sprite.Batch
	overlay debug.Overlay

	profiler         *profiler.Profiler
	profilingEnabled bool

	updateCallback func(deltaTime float32)

	spritePipelineKey string
	debugPipelineKey  string

	// staticBuckets hold world geometry appended once at setup and never
	// reset; they draw depth-tested before the sprite and debug passes.
	staticPipelineKey string
	staticBuckets     []model.Bucket
	staticBindGroups  []bind_group_provider.BindGroupProvider

	// spriteBindGroups is the bind group set for textured draws; group 0 is the
	// sprite texture and sampler, group 1 the 2D camera uniform.
	spriteBindGroups []bind_group_provider.BindGroupProvider
	debugBindGroups  []bind_group_provider.BindGroupProvider

	lastFrame   time.Time
	lastSkipLog time.Time
}

// Engine is the main entry point for the engine. It owns the window message
// loop and drives the per-frame lifecycle: input, camera update, uniform and
// instance uploads, and the render pass.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the underlying renderer.
	//
	// Returns:
	//   - renderer.Renderer: the renderer instance
	Renderer() renderer.Renderer

	// Camera returns the 3D camera, or nil if none was configured.
	//
	// Returns:
	//   - camera.Camera: the 3D camera
	Camera() camera.Camera

	// Camera2D returns the 2D camera, or nil if none was configured.
	//
	// Returns:
	//   - camera.Camera2D: the 2D camera
	Camera2D() camera.Camera2D

	// Sprites returns the sprite batch for queuing textured quads and triangles.
	//
	// Returns:
	//   - sprite.Batch: the sprite batch
	Sprites() sprite.Batch

	// Debug returns the debug overlay for queuing flat-colored shapes.
	//
	// Returns:
	//   - debug.Overlay: the debug overlay
	Debug() debug.Overlay

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetUpdateCallback registers the function called once per frame before
	// rendering. Use this for game logic and for pushing sprites and debug
	// shapes for the frame.
	//
	// Parameters:
	//   - callback: function to call each frame, receiving the delta time in seconds
	SetUpdateCallback(callback func(deltaTime float32))

	// Run starts the main loop (blocks until the window closes).
	Run()

	// Quit signals the window to close, ending the main loop.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options. A window
// and renderer are required; cameras, sprite batch, and debug overlay are wired
// into the frame lifecycle when configured.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		profiler:          profiler.NewProfiler(),
		spritePipelineKey: "sprite",
		debugPipelineKey:  "debug",
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			if e.renderer != nil {
				e.renderer.Resize(width, height)
			}
			if e.camera != nil {
				e.camera.SetAspect(float32(width) / float32(height))
			}
			if e.camera2D != nil {
				e.camera2D.Resize(float32(width), float32(height))
			}
		})
		e.window.SetKeyDownCallback(func(key uint32) {
			if e.camera != nil {
				if c := e.camera.Controller(); c != nil {
					c.HandleKeyDown(int(key))
				}
			}
		})
		e.window.SetKeyUpCallback(func(key uint32) {
			if e.camera != nil {
				if c := e.camera.Controller(); c != nil {
					c.HandleKeyUp(int(key))
				}
			}
		})
	}

	if e.camera2D != nil && len(e.debugBindGroups) == 0 {
		e.debugBindGroups = []bind_group_provider.BindGroupProvider{e.camera2D.BindGroupProvider()}
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Camera() camera.Camera {
	return e.camera
}

func (e *engine) Camera2D() camera.Camera2D {
	return e.camera2D
}

func (e *engine) Sprites() sprite.Batch {
	return e.sprites
}

func (e *engine) Debug() debug.Overlay {
	return e.overlay
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetUpdateCallback(callback func(deltaTime float32)) {
	e.updateCallback = callback
}

func (e *engine) Run() {
	e.lastFrame = time.Now()
	e.window.SetUpdateCallback(e.frame)
	e.window.ProcessMessages()
}

func (e *engine) Quit() {
	e.window.Close()
}

// frame runs one full frame: input-driven camera movement, uniform and instance
// uploads, then the render pass. A failure to acquire the swapchain texture
// skips the frame rather than aborting the loop.
func (e *engine) frame() {
	now := time.Now()
	dt := float32(now.Sub(e.lastFrame).Seconds())
	e.lastFrame = now

	if e.camera != nil {
		if c := e.camera.Controller(); c != nil {
			c.Update(dt)
		}
		e.camera.Update()
	}

	if e.updateCallback != nil {
		e.updateCallback(dt)
	}

	if e.sprites != nil {
		e.sprites.Upload()
	}

	e.writeUniforms()
	e.flushBuckets()

	if err := e.renderer.BeginFrame(); err != nil {
		if time.Since(e.lastSkipLog) >= frameSkipLogInterval {
			e.lastSkipLog = time.Now()
			log.Printf("[Engine] skipping frame: %v", err)
		}
		e.endFrame()
		return
	}

	e.drawBuckets()

	e.renderer.EndFrame()
	e.renderer.Present()
	e.endFrame()

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}

// writeUniforms uploads the camera matrices for the frame.
func (e *engine) writeUniforms() {
	var writes []bind_group_provider.BufferWrite

	if e.camera != nil && e.camera.BindGroupProvider() != nil {
		uniform := camera.GPUCameraUniform{ViewProj: e.camera.ViewProjectionMatrix()}
		writes = append(writes, bind_group_provider.NewBufferWrite(e.camera.BindGroupProvider(), uniform.Marshal()))
	}
	if e.camera2D != nil && e.camera2D.BindGroupProvider() != nil {
		uniform := camera.GPUCamera2DUniform{Projection: e.camera2D.ProjectionMatrix()}
		writes = append(writes, bind_group_provider.NewBufferWrite(e.camera2D.BindGroupProvider(), uniform.Marshal()))
	}

	if len(writes) > 0 {
		e.renderer.WriteBuffers(writes)
	}
}

// flushBuckets uploads staged instance data for every active bucket.
func (e *engine) flushBuckets() {
	for _, bucket := range e.activeBuckets() {
		e.renderer.FlushBucket(bucket)
	}
}

// drawBuckets encodes the frame's draw calls: static world geometry first,
// then textured sprites, then the debug overlay on top.
func (e *engine) drawBuckets() {
	for _, bucket := range e.staticBuckets {
		if err := e.renderer.DrawBucket(e.staticPipelineKey, bucket, e.staticBindGroups); err != nil {
			log.Printf("[Engine] static draw failed for %q: %v", bucket.Label(), err)
		}
	}
	if e.sprites != nil {
		if err := e.renderer.DrawBucket(e.spritePipelineKey, e.sprites.Quads(), e.spriteBindGroups); err != nil {
			log.Printf("[Engine] sprite quad draw failed: %v", err)
		}
		if err := e.renderer.DrawBucket(e.spritePipelineKey, e.sprites.Triangles(), e.spriteBindGroups); err != nil {
			log.Printf("[Engine] sprite triangle draw failed: %v", err)
		}
	}
	if e.overlay != nil {
		if err := e.renderer.DrawBucket(e.debugPipelineKey, e.overlay.Squares(), e.debugBindGroups); err != nil {
			log.Printf("[Engine] debug square draw failed: %v", err)
		}
		if err := e.renderer.DrawBucket(e.debugPipelineKey, e.overlay.Triangles(), e.debugBindGroups); err != nil {
			log.Printf("[Engine] debug triangle draw failed: %v", err)
		}
	}
}

// endFrame clears per-frame shape queues whether or not the frame rendered, so
// a skipped frame doesn't double-draw stale instances later.
func (e *engine) endFrame() {
	if e.sprites != nil {
		e.sprites.Clear()
	}
	if e.overlay != nil {
		e.overlay.Clear()
	}
}

// activeBuckets returns every bucket the engine manages this frame.
func (e *engine) activeBuckets() []model.Bucket {
	buckets := append([]model.Bucket(nil), e.staticBuckets...)
	if e.sprites != nil {
		buckets = append(buckets, e.sprites.Quads(), e.sprites.Triangles())
	}
	if e.overlay != nil {
		buckets = append(buckets, e.overlay.Squares(), e.overlay.Triangles())
	}
	return buckets
}
