package camera

import (
	"strconv"
	"sync"

	"github.com/trevor-e-apple/time-game/engine/renderer/bind_group_provider"
)

type camera2DImpl struct {
	mu *sync.Mutex

	width  float32
	height float32

	projectionMatrix [16]float32

	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Camera2D defines the interface for the orthographic 2D camera. It maps
// pixel coordinates, origin at the bottom-left of the surface, to clip space.
// Resizing recomputes the projection so a point at the center of the old
// surface still maps to the center of the new one.
type Camera2D interface {
	// Width returns the surface width in pixels.
	//
	// Returns:
	//   - float32: the surface width
	Width() float32

	// Height returns the surface height in pixels.
	//
	// Returns:
	//   - float32: the surface height
	Height() float32

	// ProjectionMatrix returns the current 4x4 pixel-to-clip projection matrix
	// as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// Resize updates the surface dimensions and recomputes the projection.
	// Called by the engine on window resize.
	//
	// Parameters:
	//   - width: new surface width in pixels
	//   - height: new surface height in pixels
	Resize(width, height float32)

	// BindGroupProvider returns the camera's bind group provider for GPU resources.
	// Returns nil if not set.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider or nil
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetBindGroupProvider sets the camera's bind group provider.
	//
	// Parameters:
	//   - provider: the bind group provider to set
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Camera2D = &camera2DImpl{}

// NewCamera2D creates a new orthographic 2D camera for the given surface
// dimensions.
//
// Parameters:
//   - width: surface width in pixels
//   - height: surface height in pixels
//
// Returns:
//   - Camera2D: the newly created camera
func NewCamera2D(width, height float32) Camera2D {
	c := &camera2DImpl{
		mu: &sync.Mutex{},
		bindGroupProvider: bind_group_provider.NewBindGroupProvider(
			"camera2d_" + strconv.FormatUint(cameraCount.Load(), 10),
		),
	}
	cameraCount.Add(1)
	c.resize(width, height)
	return c
}

func (c *camera2DImpl) Width() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width
}

func (c *camera2DImpl) Height() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.height
}

func (c *camera2DImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *camera2DImpl) Resize(width, height float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resize(width, height)
}

func (c *camera2DImpl) BindGroupProvider() bind_group_provider.BindGroupProvider {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bindGroupProvider
}

func (c *camera2DImpl) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindGroupProvider = provider
}

// resize recomputes the pixel-to-clip projection. Pixel (0, 0) maps to clip
// (-1, -1) and pixel (width, height) maps to clip (1, 1). The Z column is
// zeroed so all 2D geometry lands on the near plane. Caller must hold the mutex.
func (c *camera2DImpl) resize(width, height float32) {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	c.width = width
	c.height = height
	c.projectionMatrix = [16]float32{
		2.0 / width, 0, 0, 0,
		0, 2.0 / height, 0, 0,
		0, 0, 0, 0,
		-1, -1, 0, 1,
	}
}
