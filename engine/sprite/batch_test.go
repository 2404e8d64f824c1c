package sprite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchUploadSortsByLayer(t *testing.T) {
	b := NewBatch()

	b.Push(TexturedQuad{Position: [2]float32{3, 0}, Dimensions: [2]float32{1, 1}, Layer: 3})
	b.Push(TexturedQuad{Position: [2]float32{1, 0}, Dimensions: [2]float32{1, 1}, Layer: 1})
	b.Push(TexturedQuad{Position: [2]float32{2, 0}, Dimensions: [2]float32{1, 1}, Layer: 2})
	b.Push(TexturedQuad{Position: [2]float32{4, 0}, Dimensions: [2]float32{1, 1}, Layer: 1})

	b.Upload()

	order := b.QuadOrder()
	require.Len(t, order, 4)
	layers := []uint32{order[0].Layer, order[1].Layer, order[2].Layer, order[3].Layer}
	assert.Equal(t, []uint32{1, 1, 2, 3}, layers)

	// The two layer-1 quads keep their push order.
	assert.Equal(t, float32(1), order[0].Position[0])
	assert.Equal(t, float32(4), order[1].Position[0])

	assert.Equal(t, 4, b.Quads().DrawCount())
}

func TestBatchUploadIsIdempotent(t *testing.T) {
	b := NewBatch()

	b.Push(TexturedQuad{Position: [2]float32{0, 0}, Dimensions: [2]float32{1, 1}})
	b.Upload()
	b.Upload()

	assert.Equal(t, 1, b.Quads().DrawCount())
}

func TestBatchClearResets(t *testing.T) {
	b := NewBatch()

	b.Push(TexturedQuad{Position: [2]float32{0, 0}, Dimensions: [2]float32{1, 1}})
	b.PushTriangle([2]float32{0, 0}, [2]float32{1, 1})
	b.Upload()

	require.Equal(t, 1, b.Quads().DrawCount())
	require.Equal(t, 1, b.Triangles().DrawCount())

	b.Clear()

	assert.Equal(t, 0, b.Quads().DrawCount())
	assert.Equal(t, 0, b.Triangles().DrawCount())
	assert.Empty(t, b.QuadOrder())

	// The batch is reusable after Clear.
	b.Push(TexturedQuad{Position: [2]float32{5, 5}, Dimensions: [2]float32{2, 2}})
	b.Upload()
	assert.Equal(t, 1, b.Quads().DrawCount())
}

func TestBatchDropsPastCapacity(t *testing.T) {
	b := NewBatch(WithQuadCapacity(2))

	for i := 0; i < 5; i++ {
		b.Push(TexturedQuad{Position: [2]float32{float32(i), 0}, Dimensions: [2]float32{1, 1}})
	}

	assert.Equal(t, 3, b.Dropped())

	b.Upload()
	assert.Equal(t, 2, b.Quads().DrawCount())

	b.Clear()
	assert.Equal(t, 0, b.Dropped())
}

func TestBatchStagedWriteOffsets(t *testing.T) {
	b := NewBatch()

	b.Push(TexturedQuad{Position: [2]float32{0, 0}, Dimensions: [2]float32{1, 1}})
	b.Push(TexturedQuad{Position: [2]float32{1, 1}, Dimensions: [2]float32{1, 1}})
	b.Upload()

	writes := b.Quads().TakeStagedWrites()
	require.Len(t, writes, 2)
	stride := uint64(b.Quads().InstanceStride())
	assert.Equal(t, uint64(0), writes[0].Offset)
	assert.Equal(t, stride, writes[1].Offset)
}
