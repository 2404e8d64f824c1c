package camera

import (
	"sync"

	"github.com/chewxy/math32"

	"github.com/trevor-e-apple/time-game/common"
)

// cameraControllerImpl is the single implementation of CameraController.
// Held-key flags are set from window key events and consumed once per frame;
// movement translates both eye and target along the camera's local axes so
// the view direction is preserved.
type cameraControllerImpl struct {
	mu *sync.Mutex

	eye    [3]float32
	target [3]float32
	speed  float32

	forwardHeld  bool
	backwardHeld bool
	leftHeld     bool
	rightHeld    bool
	upHeld       bool
	downHeld     bool
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new CameraController with the default eye
// position (0, 0, 2) looking at the origin and a movement speed of 0.6 world
// units per second.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	c := &cameraControllerImpl{
		mu:     &sync.Mutex{},
		eye:    [3]float32{0, 0, 2},
		target: [3]float32{0, 0, 0},
		speed:  0.6,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraControllerImpl) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eye[0], c.eye[1], c.eye[2]
}

func (c *cameraControllerImpl) Target() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target[0], c.target[1], c.target[2]
}

func (c *cameraControllerImpl) SetPosition(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eye = [3]float32{x, y, z}
}

func (c *cameraControllerImpl) SetTarget(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = [3]float32{x, y, z}
}

func (c *cameraControllerImpl) Speed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

func (c *cameraControllerImpl) SetSpeed(speed float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.speed = speed
}

func (c *cameraControllerImpl) HandleKeyDown(key int) {
	c.setHeld(key, true)
}

func (c *cameraControllerImpl) HandleKeyUp(key int) {
	c.setHeld(key, false)
}

func (c *cameraControllerImpl) setHeld(key int, held bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch key {
	case common.KeyW, common.KeyUp:
		c.forwardHeld = held
	case common.KeyS, common.KeyDown:
		c.backwardHeld = held
	case common.KeyA, common.KeyLeft:
		c.leftHeld = held
	case common.KeyD, common.KeyRight:
		c.rightHeld = held
	case common.KeySpace:
		c.upHeld = held
	case common.KeyLeftShift:
		c.downHeld = held
	}
}

func (c *cameraControllerImpl) Update(dt float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if dt <= 0 {
		return
	}
	step := c.speed * dt

	fx := c.target[0] - c.eye[0]
	fy := c.target[1] - c.eye[1]
	fz := c.target[2] - c.eye[2]
	mag := math32.Sqrt(fx*fx + fy*fy + fz*fz)
	if mag > 0 {
		fx /= mag
		fy /= mag
		fz /= mag
	}

	// Right vector for strafing, assuming world up (0, 1, 0).
	rx := -fz
	rz := fx
	rmag := math32.Sqrt(rx*rx + rz*rz)
	if rmag > 0 {
		rx /= rmag
		rz /= rmag
	}

	var dx, dy, dz float32
	if c.forwardHeld {
		dx += fx * step
		dy += fy * step
		dz += fz * step
	}
	if c.backwardHeld {
		dx -= fx * step
		dy -= fy * step
		dz -= fz * step
	}
	if c.rightHeld {
		dx += rx * step
		dz += rz * step
	}
	if c.leftHeld {
		dx -= rx * step
		dz -= rz * step
	}
	if c.upHeld {
		dy += step
	}
	if c.downHeld {
		dy -= step
	}

	// Eye and target translate together so the view direction is preserved.
	c.eye[0] += dx
	c.eye[1] += dy
	c.eye[2] += dz
	c.target[0] += dx
	c.target[1] += dy
	c.target[2] += dz
}
