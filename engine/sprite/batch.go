package sprite

import (
	"errors"
	"log"
	"sort"
	"sync"

	"github.com/trevor-e-apple/time-game/engine/model"
)

const (
	defaultQuadCapacity     = 1024
	defaultTriangleCapacity = 128
)

// TexturedQuad is a single sprite queued for the current frame. Quads with a
// higher Layer draw on top of quads with a lower Layer; quads sharing a layer
// keep their push order.
type TexturedQuad struct {
	// Position is the world-space center of the quad.
	Position [2]float32

	// Dimensions is the width and height of the quad in world units.
	Dimensions [2]float32

	// Rotation is the quad's rotation in radians, counterclockwise.
	Rotation float32

	// Layer is the draw-order key. Higher layers draw later, on top.
	Layer uint32
}

// batch is the implementation of the Batch interface.
type batch struct {
	mu *sync.Mutex

	quads       []TexturedQuad
	quadBucket  model.DrawBucket[*model.GPUInstance2D]
	uploaded    bool
	quadDrops   int
	dropsLogged bool

	triangles model.DrawBucket[*model.GPUInstance2D]
}

// Batch queues textured sprites for the current frame. Quads accumulate in push
// order, are sorted by layer at Upload, and encode into an instanced quad bucket
// drawn in a single call. Triangles bypass layering and append directly.
type Batch interface {
	// Push queues a textured quad for this frame. Quads past the batch capacity
	// are dropped and counted rather than failing the frame.
	//
	// Parameters:
	//   - quad: the quad to queue
	Push(quad TexturedQuad)

	// PushTriangle appends a textured triangle instance for this frame.
	//
	// Parameters:
	//   - position: the world-space center of the triangle
	//   - dimensions: the width and height of the triangle in world units
	PushTriangle(position, dimensions [2]float32)

	// Upload sorts the queued quads by layer (stable, so push order breaks ties)
	// and stages their instance data into the quad bucket. Call once per frame
	// after all Push calls and before the renderer flushes the bucket.
	Upload()

	// Quads returns the bucket holding this frame's quad instances.
	//
	// Returns:
	//   - model.Bucket: the quad bucket, for renderer init, flush, and draw calls
	Quads() model.Bucket

	// Triangles returns the bucket holding this frame's triangle instances.
	//
	// Returns:
	//   - model.Bucket: the triangle bucket, for renderer init, flush, and draw calls
	Triangles() model.Bucket

	// QuadOrder returns the queued quads in their current order. After Upload this
	// is the layer-sorted draw order.
	//
	// Returns:
	//   - []TexturedQuad: the queued quads
	QuadOrder() []TexturedQuad

	// Dropped returns the number of quads dropped since the last Clear.
	//
	// Returns:
	//   - int: the dropped quad count
	Dropped() int

	// Clear resets the quad queue, both buckets, and the dropped count.
	// Call once per frame after drawing.
	Clear()

	// Release releases the GPU buffers held by both buckets.
	Release()
}

var _ Batch = &batch{}

// NewBatch creates a sprite batch with an indexed quad bucket holding up to 1024
// instances and a non-indexed triangle bucket holding up to 128 by default.
//
// Parameters:
//   - options: variadic list of BatchBuilderOption functions to configure the batch
//
// Returns:
//   - Batch: a new Batch instance
func NewBatch(options ...BatchBuilderOption) Batch {
	settings := batchSettings{
		quadCapacity:     defaultQuadCapacity,
		triangleCapacity: defaultTriangleCapacity,
	}
	for _, opt := range options {
		opt(&settings)
	}

	return &batch{
		mu:    &sync.Mutex{},
		quads: make([]TexturedQuad, 0, settings.quadCapacity),
		quadBucket: model.NewDrawBucket[*model.GPUInstance2D](
			model.WithLabel("sprite quads"),
			model.WithVertices(model.TexturedSquareVertices),
			model.WithIndices(model.SquareIndices),
			model.WithCapacity(settings.quadCapacity),
		),
		triangles: model.NewDrawBucket[*model.GPUInstance2D](
			model.WithLabel("sprite triangles"),
			model.WithVertices(model.TexturedTriangleVertices),
			model.WithCapacity(settings.triangleCapacity),
		),
	}
}

func (b *batch) Push(quad TexturedQuad) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.quads) >= b.quadBucket.Capacity() {
		b.quadDrops++
		b.logDrop()
		return
	}
	b.quads = append(b.quads, quad)
}

func (b *batch) PushTriangle(position, dimensions [2]float32) {
	b.mu.Lock()
	defer b.mu.Unlock()

	inst := model.Instance2D{
		Position: position,
		Scale:    dimensions,
	}
	raw := inst.Raw()
	if err := b.triangles.Append(&raw); err != nil {
		var full *model.BucketFullError
		if errors.As(err, &full) {
			log.Printf("[Sprite] %s, dropping triangle", full.Error())
		}
	}
}

func (b *batch) Upload() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.uploaded {
		return
	}
	b.uploaded = true

	sort.SliceStable(b.quads, func(i, j int) bool {
		return b.quads[i].Layer < b.quads[j].Layer
	})

	for _, quad := range b.quads {
		inst := model.Instance2D{
			Position: quad.Position,
			Scale:    quad.Dimensions,
			Rotation: quad.Rotation,
		}
		raw := inst.Raw()
		if err := b.quadBucket.Append(&raw); err != nil {
			// Push already enforces capacity; any error here is unexpected.
			log.Printf("[Sprite] quad upload failed: %v", err)
			return
		}
	}
}

// logDrop reports the first dropped quad since the last Clear.
func (b *batch) logDrop() {
	if b.dropsLogged {
		return
	}
	b.dropsLogged = true
	log.Printf("[Sprite] quad batch full at capacity %d, dropping further quads this frame", b.quadBucket.Capacity())
}

func (b *batch) Quads() model.Bucket {
	return b.quadBucket
}

func (b *batch) Triangles() model.Bucket {
	return b.triangles
}

func (b *batch) QuadOrder() []TexturedQuad {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]TexturedQuad, len(b.quads))
	copy(out, b.quads)
	return out
}

func (b *batch) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.quadDrops
}

func (b *batch) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.quads = b.quads[:0]
	b.quadBucket.Reset()
	b.triangles.Reset()
	b.quadDrops = 0
	b.dropsLogged = false
	b.uploaded = false
}

func (b *batch) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.quadBucket.Release()
	b.triangles.Release()
}
