package model

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

// ErrBucketFull is reported when an instance is appended to a bucket that is
// already at capacity. Use errors.Is to match it; the wrapped BucketFullError
// carries the bucket label and capacity.
var ErrBucketFull = errors.New("bucket full")

// BucketFullError describes a rejected append on a bucket at capacity.
type BucketFullError struct {
	Label    string
	Capacity int
}

func (e *BucketFullError) Error() string {
	return fmt.Sprintf("bucket %q full at capacity %d", e.Label, e.Capacity)
}

func (e *BucketFullError) Unwrap() error {
	return ErrBucketFull
}

// RawInstance is the constraint for GPU-encodable per-instance data. All GPU
// instance types in this package satisfy it.
type RawInstance interface {
	Marshal() []byte
	Size() int
}

// InstanceWrite is one pending instance-buffer upload staged by a bucket.
// The renderer drains these with TakeStagedWrites and issues the queue writes.
type InstanceWrite struct {
	Offset uint64
	Data   []byte
}

// Bucket is the renderer-facing view of an instance bucket: a fixed geometry
// (vertex and optional index data) drawn DrawCount times per frame with
// per-instance transforms streamed through a preallocated instance buffer.
type Bucket interface {
	// Label returns the bucket's debug label, used for GPU resource names and
	// error reports.
	Label() string
	// VertexData returns the shared vertex data uploaded once at registration.
	VertexData() []byte
	// VertexCount returns the number of vertices in the shared geometry.
	VertexCount() int
	// IndexData returns the shared index data, or nil for non-indexed buckets.
	IndexData() []byte
	// IndexCount returns the number of indices, or 0 for non-indexed buckets.
	IndexCount() int
	// Capacity returns the maximum number of instances the bucket can hold.
	Capacity() int
	// InstanceStride returns the per-instance byte stride.
	InstanceStride() int
	// DrawCount returns the number of instances appended since the last Reset.
	DrawCount() int
	// TakeStagedWrites returns the instance writes staged since the last call
	// and clears the staging list.
	TakeStagedWrites() []InstanceWrite
	// SetGPUBuffers attaches the device buffers created for this bucket.
	SetGPUBuffers(vertex, index, instance *wgpu.Buffer)
	// VertexBuffer returns the attached vertex buffer, or nil before registration.
	VertexBuffer() *wgpu.Buffer
	// IndexBuffer returns the attached index buffer, or nil if non-indexed or
	// before registration.
	IndexBuffer() *wgpu.Buffer
	// InstanceBuffer returns the attached instance buffer, or nil before registration.
	InstanceBuffer() *wgpu.Buffer
	// Release frees the attached device buffers.
	Release()
}

// DrawBucket is a Bucket that accepts instances of a concrete GPU layout.
// Append stages the encoded instance at the next free slot; Reset clears the
// draw count so the buffer is reused next frame.
type DrawBucket[R RawInstance] interface {
	Bucket
	// Append encodes raw and stages it at offset DrawCount * stride. Returns
	// an error wrapping ErrBucketFull when the bucket is at capacity; the
	// instance is dropped and DrawCount is unchanged.
	Append(raw R) error
	// Reset clears the draw count and any staged writes.
	Reset()
}

type drawBucketImpl[R RawInstance] struct {
	mu *sync.Mutex

	label       string
	vertexData  []byte
	vertexCount int
	indexData   []byte
	indexCount  int
	capacity    int
	stride      int

	drawCount int
	staged    []InstanceWrite

	vertexBuffer   *wgpu.Buffer
	indexBuffer    *wgpu.Buffer
	instanceBuffer *wgpu.Buffer
}

var _ DrawBucket[*GPUInstance2D] = &drawBucketImpl[*GPUInstance2D]{}

// NewDrawBucket creates a new DrawBucket with the given options applied.
// At minimum the vertex geometry and a capacity must be supplied through
// options; the zero-capacity bucket rejects every append.
//
// Parameters:
//   - options: optional BucketBuilderOption functions to configure the bucket.
//
// Returns:
//   - DrawBucket[R]: the configured bucket.
func NewDrawBucket[R RawInstance](options ...BucketBuilderOption) DrawBucket[R] {
	var zero R
	var settings bucketSettings
	for _, option := range options {
		option(&settings)
	}
	b := &drawBucketImpl[R]{
		mu:          &sync.Mutex{},
		stride:      zero.Size(),
		label:       settings.label,
		vertexData:  settings.vertexData,
		vertexCount: settings.vertexCount,
		indexData:   settings.indexData,
		indexCount:  settings.indexCount,
		capacity:    settings.capacity,
	}
	return b
}

func (b *drawBucketImpl[R]) Label() string {
	return b.label
}

func (b *drawBucketImpl[R]) VertexData() []byte {
	return b.vertexData
}

func (b *drawBucketImpl[R]) VertexCount() int {
	return b.vertexCount
}

func (b *drawBucketImpl[R]) IndexData() []byte {
	return b.indexData
}

func (b *drawBucketImpl[R]) IndexCount() int {
	return b.indexCount
}

func (b *drawBucketImpl[R]) Capacity() int {
	return b.capacity
}

func (b *drawBucketImpl[R]) InstanceStride() int {
	return b.stride
}

func (b *drawBucketImpl[R]) DrawCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.drawCount
}

func (b *drawBucketImpl[R]) Append(raw R) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.drawCount >= b.capacity {
		return &BucketFullError{Label: b.label, Capacity: b.capacity}
	}
	offset := uint64(b.drawCount * b.stride)
	b.staged = append(b.staged, InstanceWrite{Offset: offset, Data: raw.Marshal()})
	b.drawCount++
	return nil
}

func (b *drawBucketImpl[R]) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drawCount = 0
	b.staged = b.staged[:0]
}

func (b *drawBucketImpl[R]) TakeStagedWrites() []InstanceWrite {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.staged) == 0 {
		return nil
	}
	writes := make([]InstanceWrite, len(b.staged))
	copy(writes, b.staged)
	b.staged = b.staged[:0]
	return writes
}

func (b *drawBucketImpl[R]) SetGPUBuffers(vertex, index, instance *wgpu.Buffer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.vertexBuffer = vertex
	b.indexBuffer = index
	b.instanceBuffer = instance
}

func (b *drawBucketImpl[R]) VertexBuffer() *wgpu.Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.vertexBuffer
}

func (b *drawBucketImpl[R]) IndexBuffer() *wgpu.Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.indexBuffer
}

func (b *drawBucketImpl[R]) InstanceBuffer() *wgpu.Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.instanceBuffer
}

func (b *drawBucketImpl[R]) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.vertexBuffer != nil {
		b.vertexBuffer.Release()
		b.vertexBuffer = nil
	}
	if b.indexBuffer != nil {
		b.indexBuffer.Release()
		b.indexBuffer = nil
	}
	if b.instanceBuffer != nil {
		b.instanceBuffer.Release()
		b.instanceBuffer = nil
	}
}
