package model

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transformTol = 1e-5

// applyModel2D transforms a point by a column-major 3x3 model matrix.
func applyModel2D(m [9]float32, x, y float32) (float32, float32) {
	outX := m[0]*x + m[3]*y + m[6]
	outY := m[1]*x + m[4]*y + m[7]
	return outX, outY
}

func TestInstance2DRawIdentity(t *testing.T) {
	raw := Instance2D{Scale: [2]float32{1, 1}}.Raw()
	want := [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}
	assert.Equal(t, want, raw.Model)
}

func TestInstance2DRawTranslateRotateScale(t *testing.T) {
	inst := Instance2D{
		Position: [2]float32{3, -2},
		Scale:    [2]float32{2, 4},
		Rotation: math.Pi / 2,
	}
	raw := inst.Raw()

	// A unit-X model point scales to (2, 0), rotates 90 degrees
	// counterclockwise to (0, 2), then translates to (3, 0).
	x, y := applyModel2D(raw.Model, 1, 0)
	assert.InDelta(t, 3.0, x, transformTol)
	assert.InDelta(t, 0.0, y, transformTol)

	// A unit-Y model point scales to (0, 4), rotates to (-4, 0), then
	// translates to (-1, -2).
	x, y = applyModel2D(raw.Model, 0, 1)
	assert.InDelta(t, -1.0, x, transformTol)
	assert.InDelta(t, -2.0, y, transformTol)
}

func TestColoredInstance2DRaw(t *testing.T) {
	inst := ColoredInstance2D{
		Position: [2]float32{1, 1},
		Scale:    [2]float32{1, 1},
		Color:    [3]float32{0.5, 0.25, 1},
	}
	raw := inst.Raw()
	assert.Equal(t, inst.Color, raw.Color)
	assert.InDelta(t, 1.0, raw.Model[6], transformTol)
	assert.InDelta(t, 1.0, raw.Model[7], transformTol)
}

func TestInstance3DRawIdentity(t *testing.T) {
	raw := NewInstance3D(0, 0, 0).Raw()
	want := [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	assert.Equal(t, want, raw.Model)
}

func TestInstance3DRawTranslation(t *testing.T) {
	raw := NewInstance3D(5, -3, 7).Raw()
	assert.InDelta(t, 5.0, raw.Model[12], transformTol)
	assert.InDelta(t, -3.0, raw.Model[13], transformTol)
	assert.InDelta(t, 7.0, raw.Model[14], transformTol)
	assert.InDelta(t, 1.0, raw.Model[15], transformTol)
}

func TestInstance3DRawQuaternionRotation(t *testing.T) {
	// 90 degree rotation about +Z: q = (cos 45, 0, 0, sin 45).
	half := float32(math.Sqrt2 / 2)
	inst := Instance3D{
		Scale:    [3]float32{1, 1, 1},
		Rotation: [4]float32{half, 0, 0, half},
	}
	raw := inst.Raw()

	// Unit X maps to unit Y: the first matrix column is (0, 1, 0).
	assert.InDelta(t, 0.0, raw.Model[0], transformTol)
	assert.InDelta(t, 1.0, raw.Model[1], transformTol)
	assert.InDelta(t, 0.0, raw.Model[2], transformTol)
}

func TestGPUInstanceMarshalRoundTrip(t *testing.T) {
	inst := Instance2D{
		Position: [2]float32{1.5, -2.25},
		Scale:    [2]float32{3, 0.5},
		Rotation: 0.75,
	}
	raw := inst.Raw()
	data := raw.Marshal()
	require.Len(t, data, raw.Size())

	for i := 0; i < 9; i++ {
		got := math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
		assert.InDelta(t, raw.Model[i], got, transformTol)
	}
}

func TestGPUTypeSizes(t *testing.T) {
	assert.Equal(t, 16, (&GPUVertex2{}).Size())
	assert.Equal(t, 20, (&GPUVertex3{}).Size())
	assert.Equal(t, 36, (&GPUInstance2D{}).Size())
	assert.Equal(t, 48, (&GPUColoredInstance2D{}).Size())
	assert.Equal(t, 64, (&GPUInstance3D{}).Size())
}

func TestVertexLayoutLocations(t *testing.T) {
	layout := Instance2DLayout()
	require.Len(t, layout.Attributes, 3)
	for i, attr := range layout.Attributes {
		assert.Equal(t, uint32(i+2), attr.ShaderLocation)
		assert.Equal(t, uint64(i*12), attr.Offset)
	}

	colored := ColoredInstance2DLayout()
	require.Len(t, colored.Attributes, 4)
	assert.Equal(t, uint32(5), colored.Attributes[3].ShaderLocation)
	assert.Equal(t, uint64(36), colored.Attributes[3].Offset)

	layout3d := Instance3DLayout()
	require.Len(t, layout3d.Attributes, 4)
	for i, attr := range layout3d.Attributes {
		assert.Equal(t, uint32(i+2), attr.ShaderLocation)
		assert.Equal(t, uint64(i*16), attr.Offset)
	}
}
