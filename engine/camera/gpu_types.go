package camera

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniform is the GPU-aligned representation of the perspective
// camera uniform buffer. Matches the WGSL CameraUniform struct: a single
// column-major mat4x4<f32>.
// Size: 64 bytes (std140 / WGSL aligned).
type GPUCameraUniform struct {
	ViewProj [16]float32 // offset 0: combined view-projection matrix (mat4x4<f32>)
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProj[i]))
	}
	return buf
}

// GPUCamera2DUniform is the GPU-aligned representation of the orthographic
// 2D camera uniform buffer. Matches the WGSL Camera2DUniform struct: a single
// column-major mat4x4<f32> mapping pixel coordinates to clip space.
// Size: 64 bytes (std140 / WGSL aligned).
type GPUCamera2DUniform struct {
	Projection [16]float32 // offset 0: pixel-to-clip projection matrix (mat4x4<f32>)
}

// Size returns the size of the GPUCamera2DUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (64)
func (g *GPUCamera2DUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCamera2DUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCamera2DUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Projection[i]))
	}
	return buf
}
