package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithPosition sets the initial eye position.
//
// Parameters:
//   - x: X coordinate of the eye
//   - y: Y coordinate of the eye
//   - z: Z coordinate of the eye
//
// Returns:
//   - CameraControllerOption: functional option to set the eye position
func WithPosition(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.eye[0] = x
		cc.eye[1] = y
		cc.eye[2] = z
	}
}

// WithTarget sets the initial look-at point.
//
// Parameters:
//   - x: X coordinate of the target
//   - y: Y coordinate of the target
//   - z: Z coordinate of the target
//
// Returns:
//   - CameraControllerOption: functional option to set the target position
func WithTarget(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.target[0] = x
		cc.target[1] = y
		cc.target[2] = z
	}
}

// WithSpeed sets the movement speed in world units per second.
//
// Parameters:
//   - speed: world units per second of held movement
//
// Returns:
//   - CameraControllerOption: functional option to set the movement speed
func WithSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.speed = speed
	}
}
