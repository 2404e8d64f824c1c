package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayPushAndClear(t *testing.T) {
	o := NewOverlay()

	o.PushSquare([2]float32{1, 2}, [2]float32{1, 1}, 0, [3]float32{1, 0, 0})
	o.PushSquare([2]float32{3, 4}, [2]float32{2, 2}, 0.5, [3]float32{0, 1, 0})
	o.PushTriangle([2]float32{0, 0}, [2]float32{1, 1}, 0, [3]float32{0, 0, 1})

	assert.Equal(t, 2, o.Squares().DrawCount())
	assert.Equal(t, 1, o.Triangles().DrawCount())

	o.Clear()

	assert.Equal(t, 0, o.Squares().DrawCount())
	assert.Equal(t, 0, o.Triangles().DrawCount())
}

func TestOverlayBucketGeometry(t *testing.T) {
	o := NewOverlay()

	// Squares draw indexed with two triangles; triangles draw non-indexed.
	assert.Equal(t, 6, o.Squares().IndexCount())
	assert.Equal(t, 4, o.Squares().VertexCount())
	assert.Equal(t, 0, o.Triangles().IndexCount())
	assert.Equal(t, 3, o.Triangles().VertexCount())
}

func TestOverlayDropsPastCapacity(t *testing.T) {
	o := NewOverlay(WithSquareCapacity(4), WithTriangleCapacity(2))

	for i := 0; i < 6; i++ {
		o.PushSquare([2]float32{float32(i), 0}, [2]float32{1, 1}, 0, [3]float32{1, 1, 1})
	}
	for i := 0; i < 3; i++ {
		o.PushTriangle([2]float32{float32(i), 0}, [2]float32{1, 1}, 0, [3]float32{1, 1, 1})
	}

	assert.Equal(t, 4, o.Squares().DrawCount())
	assert.Equal(t, 2, o.DroppedSquares())
	assert.Equal(t, 2, o.Triangles().DrawCount())
	assert.Equal(t, 1, o.DroppedTriangles())

	// Clear resets both the counts and the dropped tallies.
	o.Clear()
	assert.Equal(t, 0, o.DroppedSquares())
	assert.Equal(t, 0, o.DroppedTriangles())

	o.PushSquare([2]float32{0, 0}, [2]float32{1, 1}, 0, [3]float32{1, 1, 1})
	require.Equal(t, 1, o.Squares().DrawCount())
}

func TestOverlayStagedWrites(t *testing.T) {
	o := NewOverlay()

	o.PushSquare([2]float32{5, 6}, [2]float32{1, 1}, 0, [3]float32{0.25, 0.5, 0.75})

	writes := o.Squares().TakeStagedWrites()
	require.Len(t, writes, 1)
	assert.Equal(t, uint64(0), writes[0].Offset)
	assert.Equal(t, o.Squares().InstanceStride(), len(writes[0].Data))
}
