package debug

import (
	"errors"
	"log"
	"sync"

	"github.com/trevor-e-apple/time-game/engine/model"
)

const (
	defaultSquareCapacity   = 1000
	defaultTriangleCapacity = 1000
)

// overlay is the implementation of the Overlay interface.
type overlay struct {
	mu *sync.Mutex

	squares   model.DrawBucket[*model.GPUColoredInstance2D]
	triangles model.DrawBucket[*model.GPUColoredInstance2D]

	droppedSquares   int
	droppedTriangles int
	overflowLogged   bool
}

// Overlay collects flat-colored debug shapes for the current frame. Shapes are pushed
// each frame, drawn through the debug pipeline, and cleared before the next frame begins.
// Pushes past a bucket's capacity are dropped and counted rather than failing the frame.
type Overlay interface {
	// PushSquare appends a colored square instance for this frame.
	//
	// Parameters:
	//   - position: the world-space center of the square
	//   - scale: the width and height of the square in world units
	//   - rotation: the rotation around the square's center in radians
	//   - color: the flat RGB color of the square
	PushSquare(position, scale [2]float32, rotation float32, color [3]float32)

	// PushTriangle appends a colored triangle instance for this frame.
	//
	// Parameters:
	//   - position: the world-space center of the triangle
	//   - scale: the width and height of the triangle in world units
	//   - rotation: the rotation around the triangle's center in radians
	//   - color: the flat RGB color of the triangle
	PushTriangle(position, scale [2]float32, rotation float32, color [3]float32)

	// Squares returns the bucket holding this frame's square instances.
	//
	// Returns:
	//   - model.Bucket: the square bucket, for renderer init, flush, and draw calls
	Squares() model.Bucket

	// Triangles returns the bucket holding this frame's triangle instances.
	//
	// Returns:
	//   - model.Bucket: the triangle bucket, for renderer init, flush, and draw calls
	Triangles() model.Bucket

	// DroppedSquares returns the number of square pushes dropped since the last Clear.
	//
	// Returns:
	//   - int: the dropped square count
	DroppedSquares() int

	// DroppedTriangles returns the number of triangle pushes dropped since the last Clear.
	//
	// Returns:
	//   - int: the dropped triangle count
	DroppedTriangles() int

	// Clear resets both buckets and the dropped counts. Call once per frame after drawing.
	Clear()

	// Release releases the GPU buffers held by both buckets.
	Release()
}

var _ Overlay = &overlay{}

// NewOverlay creates a debug shape overlay with an indexed square bucket and a
// non-indexed triangle bucket, each holding up to 1000 instances per frame by default.
//
// Parameters:
//   - options: variadic list of OverlayBuilderOption functions to configure the overlay
//
// Returns:
//   - Overlay: a new Overlay instance
func NewOverlay(options ...OverlayBuilderOption) Overlay {
	settings := overlaySettings{
		squareCapacity:   defaultSquareCapacity,
		triangleCapacity: defaultTriangleCapacity,
	}
	for _, opt := range options {
		opt(&settings)
	}

	return &overlay{
		mu: &sync.Mutex{},
		squares: model.NewDrawBucket[*model.GPUColoredInstance2D](
			model.WithLabel("debug squares"),
			model.WithVertices(model.TexturedSquareVertices),
			model.WithIndices(model.SquareIndices),
			model.WithCapacity(settings.squareCapacity),
		),
		triangles: model.NewDrawBucket[*model.GPUColoredInstance2D](
			model.WithLabel("debug triangles"),
			model.WithVertices(model.TexturedTriangleVertices),
			model.WithCapacity(settings.triangleCapacity),
		),
	}
}

func (o *overlay) PushSquare(position, scale [2]float32, rotation float32, color [3]float32) {
	o.mu.Lock()
	defer o.mu.Unlock()

	inst := model.ColoredInstance2D{
		Position: position,
		Scale:    scale,
		Rotation: rotation,
		Color:    color,
	}
	raw := inst.Raw()
	if err := o.squares.Append(&raw); err != nil {
		o.droppedSquares++
		o.logOverflow(err)
	}
}

func (o *overlay) PushTriangle(position, scale [2]float32, rotation float32, color [3]float32) {
	o.mu.Lock()
	defer o.mu.Unlock()

	inst := model.ColoredInstance2D{
		Position: position,
		Scale:    scale,
		Rotation: rotation,
		Color:    color,
	}
	raw := inst.Raw()
	if err := o.triangles.Append(&raw); err != nil {
		o.droppedTriangles++
		o.logOverflow(err)
	}
}

// logOverflow reports the first dropped shape since the last Clear. Subsequent
// drops in the same frame only bump the counters.
func (o *overlay) logOverflow(err error) {
	if o.overflowLogged {
		return
	}
	o.overflowLogged = true

	var full *model.BucketFullError
	if errors.As(err, &full) {
		log.Printf("[Debug] %s, dropping further shapes this frame", full.Error())
		return
	}
	log.Printf("[Debug] shape dropped: %v", err)
}

func (o *overlay) Squares() model.Bucket {
	return o.squares
}

func (o *overlay) Triangles() model.Bucket {
	return o.triangles
}

func (o *overlay) DroppedSquares() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.droppedSquares
}

func (o *overlay) DroppedTriangles() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.droppedTriangles
}

func (o *overlay) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.squares.Reset()
	o.triangles.Reset()
	o.droppedSquares = 0
	o.droppedTriangles = 0
	o.overflowLogged = false
}

func (o *overlay) Release() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.squares.Release()
	o.triangles.Release()
}
