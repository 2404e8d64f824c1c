package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityMultiplication(t *testing.T) {
	var id, m, out [16]float32
	Identity(id[:])
	for i := range m {
		m[i] = float32(i + 1)
	}

	Mul4(out[:], id[:], m[:])
	assert.Equal(t, m, out)

	Mul4(out[:], m[:], id[:])
	assert.Equal(t, m, out)
}

func TestMul3Identity(t *testing.T) {
	var id, m, out [9]float32
	Identity3(id[:])
	for i := range m {
		m[i] = float32(i + 1)
	}

	Mul3(out[:], id[:], m[:])
	assert.Equal(t, m, out)
}

func TestBuildTransform2DTranslationAndScale(t *testing.T) {
	var m [9]float32
	BuildTransform2D(m[:], 3, -2, 0, 4, 5)

	// Column-major: translation in the last column, scale on the diagonal.
	assert.Equal(t, float32(4), m[0])
	assert.Equal(t, float32(5), m[4])
	assert.Equal(t, float32(3), m[6])
	assert.Equal(t, float32(-2), m[7])
}

func TestBuildTransform2DRotationRecoverable(t *testing.T) {
	const angle = float32(0.7)
	var m [9]float32
	BuildTransform2D(m[:], 0, 0, angle, 1, 1)

	recovered := math32.Atan2(m[1], m[0])
	assert.InDelta(t, angle, recovered, 1e-5)
}

func TestBuildTransform3DIdentityQuaternion(t *testing.T) {
	var m [16]float32
	BuildTransform3D(m[:], 1, 2, 3, QuaternionIdentity(), 2, 2, 2)

	assert.Equal(t, float32(2), m[0])
	assert.Equal(t, float32(2), m[5])
	assert.Equal(t, float32(2), m[10])
	assert.Equal(t, float32(1), m[12])
	assert.Equal(t, float32(2), m[13])
	assert.Equal(t, float32(3), m[14])
	assert.Equal(t, float32(1), m[15])
}

func TestBuildTransform3DQuarterTurnAboutZ(t *testing.T) {
	// 90 degrees about Z maps +X to +Y.
	half := math32.Pi / 4
	quat := [4]float32{math32.Cos(half), 0, 0, math32.Sin(half)}
	var m [16]float32
	BuildTransform3D(m[:], 0, 0, 0, quat, 1, 1, 1)

	x, y, z := TransformPoint4(m[:], 1, 0, 0)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 1, y, 1e-6)
	assert.InDelta(t, 0, z, 1e-6)
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	var view [16]float32
	LookAt(view[:], 0, 0, 2, 0, 0, 0, 0, 1, 0)

	x, y, z := TransformPoint4(view[:], 0, 0, 2)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)
	assert.InDelta(t, 0, z, 1e-6)
}

func TestPerspectiveDepthRange(t *testing.T) {
	var proj [16]float32
	Perspective(proj[:], math32.Pi/4, 1, 0.1, 100)

	// A point on the near plane projects to NDC depth 0, the far plane to 1.
	nearW := float32(0.1)
	nearZ := proj[10]*(-0.1) + proj[14]
	assert.InDelta(t, 0, nearZ/nearW, 1e-5)

	farW := float32(100)
	farZ := proj[10]*(-100) + proj[14]
	assert.InDelta(t, 1, farZ/farW, 1e-4)
}

func TestSliceToBytesLength(t *testing.T) {
	data := []float32{1, 2, 3}
	raw := SliceToBytes(data)
	require.Len(t, raw, 12)
	assert.Nil(t, SliceToBytes[float32](nil))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 5, Coalesce(0, 0, 5, 7))
	assert.Equal(t, 0, Coalesce(0, 0))
	assert.Equal(t, "a", Coalesce("", "a"))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, Clamp(10, 0, 5))
	assert.Equal(t, 0, Clamp(-1, 0, 5))
	assert.Equal(t, 3, Clamp(3, 0, 5))
	assert.InDelta(t, 1.5, Clamp(float32(2), 0, 1.5), 1e-6)
}
