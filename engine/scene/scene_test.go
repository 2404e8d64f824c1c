package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trevor-e-apple/time-game/engine/game_object"
	"github.com/trevor-e-apple/time-game/engine/sprite"
)

func TestSceneAddGetRemove(t *testing.T) {
	s := NewScene("test")

	a := game_object.NewGameObject()
	b := game_object.NewGameObject()
	idA := s.Add(a)
	idB := s.Add(b)

	assert.NotEqual(t, idA, idB)
	assert.Equal(t, idA, a.ID())
	assert.Same(t, a, s.Get(idA))
	assert.Same(t, b, s.Get(idB))
	assert.Equal(t, 2, s.Count())

	s.Remove(idA)
	assert.Nil(t, s.Get(idA))
	assert.Equal(t, 1, s.Count())

	s.Clear()
	assert.Equal(t, 0, s.Count())
	assert.Nil(t, s.Get(idB))
}

func TestSceneCountsExcludeEphemeral(t *testing.T) {
	s := NewScene("test", WithObjects(
		game_object.NewGameObject(),
		game_object.NewGameObject(game_object.WithEphemeral(true)),
	))

	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 1, s.CountEphemeral())
}

func TestSceneUpdateAdvancesObjects(t *testing.T) {
	obj := game_object.NewGameObject(
		game_object.WithVelocity(10, 0),
	)
	s := NewScene("test", WithActive(true), WithUpdateWorkers(2))
	s.Add(obj)

	s.Update(0.1)

	x, _ := obj.Position()
	assert.InDelta(t, 1.0, x, 1e-6)
}

func TestSceneUpdateInactiveIsNoOp(t *testing.T) {
	obj := game_object.NewGameObject(
		game_object.WithVelocity(10, 0),
	)
	s := NewScene("test")
	s.Add(obj)

	s.Update(1)

	x, _ := obj.Position()
	assert.Equal(t, float32(0), x)
}

func TestSceneStageInsertionOrder(t *testing.T) {
	s := NewScene("test", WithActive(true))
	s.Add(game_object.NewGameObject(game_object.WithPosition(1, 0)))
	s.Add(game_object.NewGameObject(game_object.WithPosition(2, 0)))
	s.Add(game_object.NewGameObject(
		game_object.WithPosition(3, 0),
		game_object.WithEnabled(false),
	))

	batch := sprite.NewBatch()
	s.Stage(batch)

	quads := batch.QuadOrder()
	require.Len(t, quads, 2)
	assert.Equal(t, float32(1), quads[0].Position[0])
	assert.Equal(t, float32(2), quads[1].Position[0])
}

func TestSceneStageRemovesEphemeral(t *testing.T) {
	s := NewScene("test", WithActive(true))
	s.Add(game_object.NewGameObject())
	s.Add(game_object.NewGameObject(game_object.WithEphemeral(true)))

	batch := sprite.NewBatch()
	s.Stage(batch)

	assert.Len(t, batch.QuadOrder(), 2)
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 0, s.CountEphemeral())

	batch.Clear()
	s.Stage(batch)
	assert.Len(t, batch.QuadOrder(), 1)
}
