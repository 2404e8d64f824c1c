package game_object

import (
	"sync/atomic"
)

type gameObject struct {
	id            uint64
	enabled       atomic.Bool
	ephemeral     bool
	position      [2]float32
	scale         [2]float32
	rotation      float32
	rotationSpeed float32
	velocity      [2]float32
	layer         uint32
}

// GameObject defines the interface for a 2D scene entity. Each object carries
// its own transform state; the scene advances objects once per frame and
// stages their transforms into the sprite batch.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is enabled for rendering.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Ephemeral returns whether this object is ephemeral.
	// Ephemeral objects are removed from the scene at the end of the frame.
	//
	// Returns:
	//   - bool: true if ephemeral
	Ephemeral() bool

	// Position returns the object's world position.
	//
	// Returns:
	//   - x, y: position components
	Position() (x, y float32)

	// Scale returns the object's scale factors.
	//
	// Returns:
	//   - sx, sy: scale components
	Scale() (sx, sy float32)

	// Rotation returns the object's rotation in radians.
	//
	// Returns:
	//   - float32: rotation angle
	Rotation() float32

	// RotationSpeed returns the object's rotation speed in radians per second.
	//
	// Returns:
	//   - float32: rotation speed
	RotationSpeed() float32

	// Velocity returns the object's velocity in world units per second.
	//
	// Returns:
	//   - vx, vy: velocity components
	Velocity() (vx, vy float32)

	// Layer returns the draw-order layer. Higher layers draw over lower ones.
	//
	// Returns:
	//   - uint32: the layer index
	Layer() uint32

	// Advance integrates velocity and rotation speed over the given time step.
	// Called once per frame by the scene; no-op when the object is disabled.
	//
	// Parameters:
	//   - dt: elapsed time in seconds
	Advance(dt float32)

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is enabled for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetPosition sets the object's world position.
	//
	// Parameters:
	//   - x, y: new position components
	SetPosition(x, y float32)

	// SetScale sets the object's scale factors.
	//
	// Parameters:
	//   - sx, sy: new scale factors
	SetScale(sx, sy float32)

	// SetRotation sets the object's rotation in radians.
	//
	// Parameters:
	//   - rotation: new rotation angle
	SetRotation(rotation float32)

	// SetRotationSpeed sets the object's rotation speed in radians per second.
	//
	// Parameters:
	//   - speed: new rotation speed
	SetRotationSpeed(speed float32)

	// SetVelocity sets the object's velocity in world units per second.
	//
	// Parameters:
	//   - vx, vy: new velocity components
	SetVelocity(vx, vy float32)

	// SetLayer sets the draw-order layer.
	//
	// Parameters:
	//   - layer: the layer index
	SetLayer(layer uint32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Objects default to enabled with unit scale.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		scale: [2]float32{1, 1},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Ephemeral() bool {
	return g.ephemeral
}

func (g *gameObject) Position() (x, y float32) {
	return g.position[0], g.position[1]
}

func (g *gameObject) Scale() (sx, sy float32) {
	return g.scale[0], g.scale[1]
}

func (g *gameObject) Rotation() float32 {
	return g.rotation
}

func (g *gameObject) RotationSpeed() float32 {
	return g.rotationSpeed
}

func (g *gameObject) Velocity() (vx, vy float32) {
	return g.velocity[0], g.velocity[1]
}

func (g *gameObject) Layer() uint32 {
	return g.layer
}

func (g *gameObject) Advance(dt float32) {
	if !g.enabled.Load() {
		return
	}
	g.position[0] += g.velocity[0] * dt
	g.position[1] += g.velocity[1] * dt
	g.rotation += g.rotationSpeed * dt
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetPosition(x, y float32) {
	g.position = [2]float32{x, y}
}

func (g *gameObject) SetScale(sx, sy float32) {
	g.scale = [2]float32{sx, sy}
}

func (g *gameObject) SetRotation(rotation float32) {
	g.rotation = rotation
}

func (g *gameObject) SetRotationSpeed(speed float32) {
	g.rotationSpeed = speed
}

func (g *gameObject) SetVelocity(vx, vy float32) {
	g.velocity = [2]float32{vx, vy}
}

func (g *gameObject) SetLayer(layer uint32) {
	g.layer = layer
}
