package model

// bucketSettings collects builder-option state before the typed bucket is
// constructed.
type bucketSettings struct {
	label       string
	vertexData  []byte
	vertexCount int
	indexData   []byte
	indexCount  int
	capacity    int
}

type BucketBuilderOption func(*bucketSettings)

// WithLabel sets the bucket's debug label, used for GPU resource names and
// error reports.
//
// Parameters:
//   - label: the label to set
//
// Returns:
//   - BucketBuilderOption: a function that sets the bucket's label
func WithLabel(label string) BucketBuilderOption {
	return func(s *bucketSettings) {
		s.label = label
	}
}

// WithVertices sets the bucket's shared vertex geometry from a slice of
// GPU vertex values. The vertices are marshalled once at build time.
//
// Parameters:
//   - vertices: the vertex slice to encode
//
// Returns:
//   - BucketBuilderOption: a function that sets the bucket's vertex data
func WithVertices[V any, PV interface {
	RawInstance
	*V
}](vertices []V) BucketBuilderOption {
	return func(s *bucketSettings) {
		var data []byte
		for i := range vertices {
			data = append(data, PV(&vertices[i]).Marshal()...)
		}
		s.vertexData = data
		s.vertexCount = len(vertices)
	}
}

// WithIndices sets the bucket's shared index data. Buckets without indices
// are drawn non-indexed.
//
// Parameters:
//   - indices: the 32-bit index slice to encode
//
// Returns:
//   - BucketBuilderOption: a function that sets the bucket's index data
func WithIndices(indices []uint32) BucketBuilderOption {
	return func(s *bucketSettings) {
		s.indexData = indicesToBytes(indices)
		s.indexCount = len(indices)
	}
}

// WithCapacity sets the maximum number of instances the bucket can hold.
// Appends past the capacity are rejected with ErrBucketFull.
//
// Parameters:
//   - capacity: the instance capacity to set
//
// Returns:
//   - BucketBuilderOption: a function that sets the bucket's capacity
func WithCapacity(capacity int) BucketBuilderOption {
	return func(s *bucketSettings) {
		if capacity < 0 {
			capacity = 0
		}
		s.capacity = capacity
	}
}
