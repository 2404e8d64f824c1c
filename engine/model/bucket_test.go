package model

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBucket(capacity int) DrawBucket[*GPUInstance2D] {
	return NewDrawBucket[*GPUInstance2D](
		WithLabel("test square"),
		WithVertices(TexturedSquareVertices),
		WithIndices(SquareIndices),
		WithCapacity(capacity),
	)
}

func TestBucketAppendOffsets(t *testing.T) {
	bucket := newTestBucket(4)

	for i := 0; i < 3; i++ {
		raw := Instance2D{
			Position: [2]float32{float32(i), 0},
			Scale:    [2]float32{1, 1},
		}.Raw()
		require.NoError(t, bucket.Append(&raw))
	}
	assert.Equal(t, 3, bucket.DrawCount())

	writes := bucket.TakeStagedWrites()
	require.Len(t, writes, 3)
	stride := uint64(bucket.InstanceStride())
	assert.Equal(t, uint64(36), stride)
	for i, w := range writes {
		assert.Equal(t, uint64(i)*stride, w.Offset)
		assert.Len(t, w.Data, int(stride))
	}

	// Draining the staged list leaves the draw count intact.
	assert.Nil(t, bucket.TakeStagedWrites())
	assert.Equal(t, 3, bucket.DrawCount())
}

func TestBucketAppendAtCapacity(t *testing.T) {
	bucket := newTestBucket(2)
	raw := Instance2D{Scale: [2]float32{1, 1}}.Raw()

	require.NoError(t, bucket.Append(&raw))
	require.NoError(t, bucket.Append(&raw))

	err := bucket.Append(&raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBucketFull)

	var full *BucketFullError
	require.ErrorAs(t, err, &full)
	assert.Equal(t, "test square", full.Label)
	assert.Equal(t, 2, full.Capacity)

	// The rejected instance is dropped, not partially staged.
	assert.Equal(t, 2, bucket.DrawCount())
	assert.Len(t, bucket.TakeStagedWrites(), 2)
}

func TestBucketReset(t *testing.T) {
	bucket := newTestBucket(8)
	raw := Instance2D{Scale: [2]float32{1, 1}}.Raw()
	require.NoError(t, bucket.Append(&raw))
	require.NoError(t, bucket.Append(&raw))

	bucket.Reset()
	assert.Equal(t, 0, bucket.DrawCount())
	assert.Nil(t, bucket.TakeStagedWrites())

	// The bucket is reusable after a reset, with offsets starting over.
	require.NoError(t, bucket.Append(&raw))
	writes := bucket.TakeStagedWrites()
	require.Len(t, writes, 1)
	assert.Equal(t, uint64(0), writes[0].Offset)
}

func TestBucketZeroCapacity(t *testing.T) {
	bucket := NewDrawBucket[*GPUInstance2D](WithLabel("empty"))
	raw := Instance2D{Scale: [2]float32{1, 1}}.Raw()
	assert.ErrorIs(t, bucket.Append(&raw), ErrBucketFull)
	assert.Equal(t, 0, bucket.DrawCount())
}

func TestBucketGeometryEncoding(t *testing.T) {
	bucket := newTestBucket(1)

	assert.Equal(t, 4, bucket.VertexCount())
	assert.Len(t, bucket.VertexData(), 4*16)
	assert.Equal(t, 6, bucket.IndexCount())
	require.Len(t, bucket.IndexData(), 6*4)

	for i, want := range SquareIndices {
		got := binary.LittleEndian.Uint32(bucket.IndexData()[i*4:])
		assert.Equal(t, want, got)
	}

	// First vertex is the top-left corner.
	x := math.Float32frombits(binary.LittleEndian.Uint32(bucket.VertexData()[0:]))
	y := math.Float32frombits(binary.LittleEndian.Uint32(bucket.VertexData()[4:]))
	assert.Equal(t, float32(-0.5), x)
	assert.Equal(t, float32(0.5), y)
}

func TestBucketNonIndexed(t *testing.T) {
	bucket := NewDrawBucket[*GPUColoredInstance2D](
		WithLabel("debug triangle"),
		WithVertices(TexturedTriangleVertices),
		WithCapacity(16),
	)
	assert.Nil(t, bucket.IndexData())
	assert.Equal(t, 0, bucket.IndexCount())
	assert.Equal(t, 3, bucket.VertexCount())
	assert.Equal(t, 48, bucket.InstanceStride())
}

func TestBucketFullErrorMessage(t *testing.T) {
	err := &BucketFullError{Label: "quads", Capacity: 1024}
	assert.Equal(t, `bucket "quads" full at capacity 1024`, err.Error())
	assert.True(t, errors.Is(err, ErrBucketFull))
}
