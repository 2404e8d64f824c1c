package sprite

// batchSettings collects pre-creation config for NewBatch.
type batchSettings struct {
	quadCapacity     int
	triangleCapacity int
}

// BatchBuilderOption is a functional option applied to a batch during construction via NewBatch.
type BatchBuilderOption func(*batchSettings)

// WithQuadCapacity sets the maximum number of quads the batch can hold per frame.
//
// Parameters:
//   - capacity: the quad instance capacity
//
// Returns:
//   - BatchBuilderOption: a function that applies the quad capacity option to a batch
func WithQuadCapacity(capacity int) BatchBuilderOption {
	return func(s *batchSettings) {
		s.quadCapacity = capacity
	}
}

// WithTriangleCapacity sets the maximum number of triangles the batch can hold per frame.
//
// Parameters:
//   - capacity: the triangle instance capacity
//
// Returns:
//   - BatchBuilderOption: a function that applies the triangle capacity option to a batch
func WithTriangleCapacity(capacity int) BatchBuilderOption {
	return func(s *batchSettings) {
		s.triangleCapacity = capacity
	}
}
