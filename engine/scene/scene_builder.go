package scene

import (
	"github.com/trevor-e-apple/time-game/engine/game_object"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active for rendering.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithObjects adds initial objects to the scene in the given order. Each
// object is assigned the next free ID.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			obj.SetID(s.nextID)
			s.registry[s.nextID] = obj
			s.order = append(s.order, s.nextID)
			s.nextID++
		}
	}
}

// WithUpdateWorkers sets the number of worker goroutines used during the
// parallel object update phase. Defaults to runtime.NumCPU()-1. Lower values
// reduce scheduling overhead for scenes with few objects.
//
// Parameters:
//   - n: the number of update workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithUpdateWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.updateWorkers = n
	}
}
