package camera

// CameraController tracks held movement keys and integrates them into an eye
// position once per frame. Key events arrive from the window layer; Update is
// called from the frame loop with the elapsed time so movement speed is
// independent of frame rate. Controllers own positional state (position,
// target); Camera reads from the controller and computes view/projection
// matrices.
type CameraController interface {
	// Position returns the camera's world-space eye position.
	//
	// Returns:
	//   - x, y, z: world-space eye position
	Position() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetPosition sets the camera's world-space eye position directly.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// SetTarget sets the look-at point directly.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// Speed returns the movement speed in world units per second.
	//
	// Returns:
	//   - float32: the movement speed
	Speed() float32

	// SetSpeed sets the movement speed in world units per second.
	//
	// Parameters:
	//   - speed: the movement speed to set
	SetSpeed(speed float32)

	// HandleKeyDown marks the movement flag for the given key as held.
	// Keys with no movement mapping are ignored.
	//
	// Parameters:
	//   - key: the platform key code from the window layer
	HandleKeyDown(key int)

	// HandleKeyUp clears the movement flag for the given key.
	//
	// Parameters:
	//   - key: the platform key code from the window layer
	HandleKeyUp(key int)

	// Update integrates the held movement flags into the eye and target
	// positions. The step is speed * dt along each held axis, so holding a
	// key for one second moves the camera Speed() world units regardless of
	// how many frames that second contained.
	//
	// Parameters:
	//   - dt: elapsed time since the previous update, in seconds
	Update(dt float32)
}
