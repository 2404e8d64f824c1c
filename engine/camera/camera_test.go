package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trevor-e-apple/time-game/common"
)

const cameraTol = 1e-5

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera()
	assert.InDelta(t, 0.7853982, cam.Fov(), cameraTol) // 45 degrees
	assert.InDelta(t, 0.1, cam.Near(), cameraTol)
	assert.InDelta(t, 100.0, cam.Far(), cameraTol)

	x, y, z := cam.Up()
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(1), y)
	assert.Equal(t, float32(0), z)

	// Without a controller the matrices stay at identity.
	vp := cam.ViewProjectionMatrix()
	assert.Equal(t, float32(1), vp[0])
	assert.Equal(t, float32(1), vp[15])
}

func TestCameraViewProjection(t *testing.T) {
	ctrl := NewCameraController()
	cam := NewCamera(WithController(ctrl), WithAspect(1.0))
	cam.Update()

	// The default controller looks down -Z from (0, 0, 2). The world origin
	// sits 2 units ahead, inside the frustum, centered on screen.
	vp := cam.ViewProjectionMatrix()
	x, y, _ := common.TransformPoint4(vp[:], 0, 0, 0)
	assert.InDelta(t, 0.0, x, cameraTol)
	assert.InDelta(t, 0.0, y, cameraTol)

	// A point left of the origin projects left of center.
	x, _, _ = common.TransformPoint4(vp[:], -0.5, 0, 0)
	assert.Less(t, x, float32(0))
}

func TestCameraSetAspectRecomputes(t *testing.T) {
	ctrl := NewCameraController()
	cam := NewCamera(WithController(ctrl), WithAspect(1.0))
	cam.Update()
	before := cam.ProjectionMatrix()

	cam.SetAspect(2.0)
	after := cam.ProjectionMatrix()
	assert.InDelta(t, before[0]/2, after[0], cameraTol)
	assert.InDelta(t, before[5], after[5], cameraTol)
}

func TestControllerHeldKeysScaleWithTime(t *testing.T) {
	ctrl := NewCameraController(WithSpeed(1.0))
	ctrl.HandleKeyDown(common.KeyW)

	// Two quarter-second updates move as far as one half-second update.
	ctrl.Update(0.25)
	ctrl.Update(0.25)
	_, _, z1 := ctrl.Position()

	other := NewCameraController(WithSpeed(1.0))
	other.HandleKeyDown(common.KeyW)
	other.Update(0.5)
	_, _, z2 := other.Position()

	assert.InDelta(t, z1, z2, cameraTol)
	// Forward from (0, 0, 2) toward the origin is -Z.
	assert.InDelta(t, 1.5, z1, cameraTol)
}

func TestControllerKeyUpStopsMovement(t *testing.T) {
	ctrl := NewCameraController()
	ctrl.HandleKeyDown(common.KeyD)
	ctrl.Update(1.0)
	x1, _, _ := ctrl.Position()
	require.Greater(t, x1, float32(0))

	ctrl.HandleKeyUp(common.KeyD)
	ctrl.Update(1.0)
	x2, _, _ := ctrl.Position()
	assert.Equal(t, x1, x2)
}

func TestControllerOpposedKeysCancel(t *testing.T) {
	ctrl := NewCameraController()
	ctrl.HandleKeyDown(common.KeyW)
	ctrl.HandleKeyDown(common.KeyS)
	ctrl.Update(1.0)

	x, y, z := ctrl.Position()
	assert.InDelta(t, 0.0, x, cameraTol)
	assert.InDelta(t, 0.0, y, cameraTol)
	assert.InDelta(t, 2.0, z, cameraTol)
}

func TestControllerArrowAliases(t *testing.T) {
	ctrl := NewCameraController()
	ctrl.HandleKeyDown(common.KeyUp)
	ctrl.Update(0.5)
	_, _, z := ctrl.Position()
	assert.Less(t, z, float32(2))
}

func TestControllerPreservesViewDirection(t *testing.T) {
	ctrl := NewCameraController()
	ctrl.HandleKeyDown(common.KeyA)
	ctrl.Update(1.0)

	ex, ey, ez := ctrl.Position()
	tx, ty, tz := ctrl.Target()
	assert.InDelta(t, ex-tx, 0.0, cameraTol)
	assert.InDelta(t, ey-ty, 0.0, cameraTol)
	assert.InDelta(t, ez-tz, 2.0, cameraTol)
}

func TestControllerIgnoresUnmappedKeys(t *testing.T) {
	ctrl := NewCameraController()
	ctrl.HandleKeyDown(common.KeyEsc)
	ctrl.Update(1.0)
	x, y, z := ctrl.Position()
	assert.Equal(t, [3]float32{0, 0, 2}, [3]float32{x, y, z})
}

func TestCamera2DCenterMapping(t *testing.T) {
	cam := NewCamera2D(800, 600)
	proj := cam.ProjectionMatrix()

	// The surface center maps to clip-space center.
	x, y, _ := common.TransformPoint4(proj[:], 400, 300, 0)
	assert.InDelta(t, 0.0, x, cameraTol)
	assert.InDelta(t, 0.0, y, cameraTol)

	// Corners map to the clip-space extremes.
	x, y, _ = common.TransformPoint4(proj[:], 0, 0, 0)
	assert.InDelta(t, -1.0, x, cameraTol)
	assert.InDelta(t, -1.0, y, cameraTol)
	x, y, _ = common.TransformPoint4(proj[:], 800, 600, 0)
	assert.InDelta(t, 1.0, x, cameraTol)
	assert.InDelta(t, 1.0, y, cameraTol)
}

func TestCamera2DResizeRecenters(t *testing.T) {
	cam := NewCamera2D(800, 600)
	cam.Resize(1024, 768)
	proj := cam.ProjectionMatrix()

	// The new center maps to clip-space center after the resize.
	x, y, _ := common.TransformPoint4(proj[:], 512, 384, 0)
	assert.InDelta(t, 0.0, x, cameraTol)
	assert.InDelta(t, 0.0, y, cameraTol)

	assert.Equal(t, float32(1024), cam.Width())
	assert.Equal(t, float32(768), cam.Height())
}

func TestCamera2DZeroDimensionsClamped(t *testing.T) {
	cam := NewCamera2D(0, 0)
	assert.Equal(t, float32(1), cam.Width())
	assert.Equal(t, float32(1), cam.Height())
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	uniform := GPUCameraUniform{}
	for i := range uniform.ViewProj {
		uniform.ViewProj[i] = float32(i)
	}
	data := uniform.Marshal()
	require.Len(t, data, 64)
	assert.Equal(t, 64, uniform.Size())

	uniform2d := GPUCamera2DUniform{}
	assert.Equal(t, 64, uniform2d.Size())
	assert.Len(t, uniform2d.Marshal(), 64)
}
