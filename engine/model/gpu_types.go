package model

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// GPUVertex2 is the GPU representation of a single 2D vertex.
// Matches the WGSL VertexInput struct layout for the 2D pipelines.
// Size: 16 bytes (tightly packed, no padding required).
type GPUVertex2 struct {
	Position  [2]float32 // offset 0: vertex position in model space (8 bytes)
	TexCoords [2]float32 // offset 8: UV texture coordinate (8 bytes)
}

// Size returns the size of the GPUVertex2 struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex2) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex2 struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload.
func (g *GPUVertex2) Marshal() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.TexCoords[0]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.TexCoords[1]))
	return buf
}

// Vertex2Layout returns the vertex buffer layout for GPUVertex2.
// Position at shader location 0, tex coords at location 1, per-vertex step mode.
//
// Returns:
//   - wgpu.VertexBufferLayout: the layout for buffer slot 0
func Vertex2Layout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 16,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Offset: 0, ShaderLocation: 0, Format: wgpu.VertexFormatFloat32x2},
			{Offset: 8, ShaderLocation: 1, Format: wgpu.VertexFormatFloat32x2},
		},
	}
}

// GPUVertex3 is the GPU representation of a single 3D vertex.
// Matches the WGSL VertexInput struct layout for the 3D pipeline.
// Size: 20 bytes (tightly packed, no padding required).
type GPUVertex3 struct {
	Position  [3]float32 // offset  0: vertex position in model space (12 bytes)
	TexCoords [2]float32 // offset 12: UV texture coordinate (8 bytes)
}

// Size returns the size of the GPUVertex3 struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex3) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex3 struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 20-byte buffer ready for GPU upload.
func (g *GPUVertex3) Marshal() []byte {
	buf := make([]byte, 20)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.TexCoords[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.TexCoords[1]))
	return buf
}

// Vertex3Layout returns the vertex buffer layout for GPUVertex3.
// Position at shader location 0, tex coords at location 1, per-vertex step mode.
//
// Returns:
//   - wgpu.VertexBufferLayout: the layout for buffer slot 0
func Vertex3Layout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 20,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Offset: 0, ShaderLocation: 0, Format: wgpu.VertexFormatFloat32x3},
			{Offset: 12, ShaderLocation: 1, Format: wgpu.VertexFormatFloat32x2},
		},
	}
}

// GPUInstance2D is the GPU-encoded transform for one 2D instance.
// The model matrix is a column-major mat3x3<f32> consumed as three vec3
// vertex attributes at shader locations 2 through 4.
// Size: 36 bytes (tightly packed, no padding required).
type GPUInstance2D struct {
	Model [9]float32 // offset 0: 3×3 model-to-world transform matrix (36 bytes)
}

// Size returns the size of the GPUInstance2D struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUInstance2D) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUInstance2D struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 36-byte buffer ready for GPU upload.
func (g *GPUInstance2D) Marshal() []byte {
	buf := make([]byte, 36)
	for i := 0; i < 9; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], math.Float32bits(g.Model[i]))
	}
	return buf
}

// Instance2DLayout returns the instance buffer layout for GPUInstance2D.
// Matrix columns at shader locations 2-4, per-instance step mode.
//
// Returns:
//   - wgpu.VertexBufferLayout: the layout for buffer slot 1
func Instance2DLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 36,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			{Offset: 0, ShaderLocation: 2, Format: wgpu.VertexFormatFloat32x3},
			{Offset: 12, ShaderLocation: 3, Format: wgpu.VertexFormatFloat32x3},
			{Offset: 24, ShaderLocation: 4, Format: wgpu.VertexFormatFloat32x3},
		},
	}
}

// GPUColoredInstance2D is the GPU-encoded transform plus flat color for one
// debug overlay instance. Matrix columns at shader locations 2-4, color at
// location 5.
// Size: 48 bytes (tightly packed, no padding required).
type GPUColoredInstance2D struct {
	Model [9]float32 // offset  0: 3×3 model-to-world transform matrix (36 bytes)
	Color [3]float32 // offset 36: flat RGB color (12 bytes)
}

// Size returns the size of the GPUColoredInstance2D struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUColoredInstance2D) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUColoredInstance2D struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload.
func (g *GPUColoredInstance2D) Marshal() []byte {
	buf := make([]byte, 48)
	for i := 0; i < 9; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], math.Float32bits(g.Model[i]))
	}
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[40:44], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[44:48], math.Float32bits(g.Color[2]))
	return buf
}

// ColoredInstance2DLayout returns the instance buffer layout for GPUColoredInstance2D.
//
// Returns:
//   - wgpu.VertexBufferLayout: the layout for buffer slot 1
func ColoredInstance2DLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 48,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			{Offset: 0, ShaderLocation: 2, Format: wgpu.VertexFormatFloat32x3},
			{Offset: 12, ShaderLocation: 3, Format: wgpu.VertexFormatFloat32x3},
			{Offset: 24, ShaderLocation: 4, Format: wgpu.VertexFormatFloat32x3},
			{Offset: 36, ShaderLocation: 5, Format: wgpu.VertexFormatFloat32x3},
		},
	}
}

// GPUInstance3D is the GPU-encoded transform for one 3D instance.
// The model matrix is a column-major mat4x4<f32> consumed as four vec4
// vertex attributes at shader locations 2 through 5.
// Size: 64 bytes (tightly packed, no padding required).
type GPUInstance3D struct {
	Model [16]float32 // offset 0: 4×4 model-to-world transform matrix (64 bytes)
}

// Size returns the size of the GPUInstance3D struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUInstance3D) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUInstance3D struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload.
func (g *GPUInstance3D) Marshal() []byte {
	buf := make([]byte, 64)
	for i := 0; i < 16; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], math.Float32bits(g.Model[i]))
	}
	return buf
}

// Instance3DLayout returns the instance buffer layout for GPUInstance3D.
// Matrix columns at shader locations 2-5, per-instance step mode.
//
// Returns:
//   - wgpu.VertexBufferLayout: the layout for buffer slot 1
func Instance3DLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 64,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			{Offset: 0, ShaderLocation: 2, Format: wgpu.VertexFormatFloat32x4},
			{Offset: 16, ShaderLocation: 3, Format: wgpu.VertexFormatFloat32x4},
			{Offset: 32, ShaderLocation: 4, Format: wgpu.VertexFormatFloat32x4},
			{Offset: 48, ShaderLocation: 5, Format: wgpu.VertexFormatFloat32x4},
		},
	}
}
