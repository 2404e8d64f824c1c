package debug

// overlaySettings collects pre-creation config for NewOverlay.
type overlaySettings struct {
	squareCapacity   int
	triangleCapacity int
}

// OverlayBuilderOption is a functional option applied to an overlay during construction via NewOverlay.
type OverlayBuilderOption func(*overlaySettings)

// WithSquareCapacity sets the maximum number of squares the overlay can hold per frame.
//
// Parameters:
//   - capacity: the square instance capacity
//
// Returns:
//   - OverlayBuilderOption: a function that applies the square capacity option to an overlay
func WithSquareCapacity(capacity int) OverlayBuilderOption {
	return func(s *overlaySettings) {
		s.squareCapacity = capacity
	}
}

// WithTriangleCapacity sets the maximum number of triangles the overlay can hold per frame.
//
// Parameters:
//   - capacity: the triangle instance capacity
//
// Returns:
//   - OverlayBuilderOption: a function that applies the triangle capacity option to an overlay
func WithTriangleCapacity(capacity int) OverlayBuilderOption {
	return func(s *overlaySettings) {
		s.triangleCapacity = capacity
	}
}
