package game_object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject()

	assert.True(t, obj.Enabled())
	assert.False(t, obj.Ephemeral())
	sx, sy := obj.Scale()
	assert.Equal(t, float32(1), sx)
	assert.Equal(t, float32(1), sy)
	assert.Equal(t, uint32(0), obj.Layer())
}

func TestGameObjectBuilderOptions(t *testing.T) {
	obj := NewGameObject(
		WithID(7),
		WithPosition(1, 2),
		WithScale(3, 4),
		WithRotation(0.5),
		WithRotationSpeed(2),
		WithVelocity(-1, 1),
		WithLayer(9),
		WithEphemeral(true),
		WithEnabled(false),
	)

	assert.Equal(t, uint64(7), obj.ID())
	x, y := obj.Position()
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(2), y)
	sx, sy := obj.Scale()
	assert.Equal(t, float32(3), sx)
	assert.Equal(t, float32(4), sy)
	assert.Equal(t, float32(0.5), obj.Rotation())
	assert.Equal(t, float32(2), obj.RotationSpeed())
	vx, vy := obj.Velocity()
	assert.Equal(t, float32(-1), vx)
	assert.Equal(t, float32(1), vy)
	assert.Equal(t, uint32(9), obj.Layer())
	assert.True(t, obj.Ephemeral())
	assert.False(t, obj.Enabled())
}

func TestGameObjectAdvance(t *testing.T) {
	obj := NewGameObject(
		WithPosition(10, 20),
		WithVelocity(2, -4),
		WithRotationSpeed(1),
	)

	obj.Advance(0.5)

	x, y := obj.Position()
	assert.InDelta(t, 11.0, x, 1e-6)
	assert.InDelta(t, 18.0, y, 1e-6)
	assert.InDelta(t, 0.5, obj.Rotation(), 1e-6)
}

func TestGameObjectAdvanceDisabled(t *testing.T) {
	obj := NewGameObject(
		WithPosition(5, 5),
		WithVelocity(100, 100),
	)
	obj.SetEnabled(false)

	obj.Advance(1)

	x, y := obj.Position()
	assert.Equal(t, float32(5), x)
	assert.Equal(t, float32(5), y)
}
