package game_object

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject is enabled for rendering.
//
// Parameters:
//   - enabled: true to render the object, false to skip it
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithEphemeral marks the GameObject as ephemeral. Ephemeral objects are
// removed from the scene's registry at the end of the frame they were
// staged in.
//
// Parameters:
//   - ephemeral: true to mark as ephemeral
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Ephemeral flag
func WithEphemeral(ephemeral bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.ephemeral = ephemeral
	}
}

// WithPosition sets the initial world position of the GameObject.
//
// Parameters:
//   - x: the x position
//   - y: the y position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the position
func WithPosition(x, y float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = [2]float32{x, y}
	}
}

// WithScale sets the initial scale of the GameObject.
//
// Parameters:
//   - sx: the x scale factor
//   - sy: the y scale factor
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the scale
func WithScale(sx, sy float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = [2]float32{sx, sy}
	}
}

// WithRotation sets the initial rotation of the GameObject in radians.
//
// Parameters:
//   - rotation: the rotation angle
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation
func WithRotation(rotation float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = rotation
	}
}

// WithRotationSpeed sets the rotation speed of the GameObject in radians per second.
//
// Parameters:
//   - speed: the rotation speed
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the rotation speed
func WithRotationSpeed(speed float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotationSpeed = speed
	}
}

// WithVelocity sets the initial velocity of the GameObject in world units per second.
//
// Parameters:
//   - vx: the x velocity component
//   - vy: the y velocity component
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the velocity
func WithVelocity(vx, vy float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.velocity = [2]float32{vx, vy}
	}
}

// WithLayer sets the draw-order layer of the GameObject. Higher layers draw
// over lower ones within the sprite batch.
//
// Parameters:
//   - layer: the layer index
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the layer
func WithLayer(layer uint32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.layer = layer
	}
}
