package model

import (
	"encoding/binary"
)

// Shared unit geometry for the built-in 2D and 3D pipelines. Squares span
// [-0.5, 0.5] on both axes so a unit scale draws a 1x1 quad centered on the
// instance position. Vertex order is top-left, bottom-right, top-right,
// bottom-left; SquareIndices winds both triangles counterclockwise.

// SquareIndices indexes the four square vertices into two triangles.
var SquareIndices = []uint32{0, 1, 2, 0, 3, 1}

// TriangleIndices indexes the three triangle vertices directly.
var TriangleIndices = []uint32{0, 1, 2}

// TexturedSquareVertices is the unit square with UVs mapping the full
// texture, V increasing downward.
var TexturedSquareVertices = []GPUVertex2{
	{Position: [2]float32{-0.5, 0.5}, TexCoords: [2]float32{0.0, 0.0}},
	{Position: [2]float32{0.5, -0.5}, TexCoords: [2]float32{1.0, 1.0}},
	{Position: [2]float32{0.5, 0.5}, TexCoords: [2]float32{1.0, 0.0}},
	{Position: [2]float32{-0.5, -0.5}, TexCoords: [2]float32{0.0, 1.0}},
}

// TexturedTriangleVertices is the unit triangle. UVs are placeholders until
// the triangle path gets a real atlas mapping.
var TexturedTriangleVertices = []GPUVertex2{
	{Position: [2]float32{0.0, 0.5}},
	{Position: [2]float32{-0.5, -0.5}},
	{Position: [2]float32{0.5, -0.5}},
}

// SquareVertices3D is the unit square in the Z=0 plane for the 3D pipeline.
var SquareVertices3D = []GPUVertex3{
	{Position: [3]float32{-0.5, 0.5, 0.0}, TexCoords: [2]float32{0.0, 0.0}},
	{Position: [3]float32{0.5, -0.5, 0.0}, TexCoords: [2]float32{1.0, 1.0}},
	{Position: [3]float32{0.5, 0.5, 0.0}, TexCoords: [2]float32{1.0, 0.0}},
	{Position: [3]float32{-0.5, -0.5, 0.0}, TexCoords: [2]float32{0.0, 1.0}},
}

// TriangleVertices3D is the unit triangle in the Z=0 plane for the 3D pipeline.
var TriangleVertices3D = []GPUVertex3{
	{Position: [3]float32{0.0, 0.5, 0.0}},
	{Position: [3]float32{-0.5, -0.5, 0.0}},
	{Position: [3]float32{0.5, -0.5, 0.0}},
}

// indicesToBytes encodes a uint32 index slice as little-endian bytes for
// index buffer upload.
func indicesToBytes(indices []uint32) []byte {
	if len(indices) == 0 {
		return nil
	}
	buf := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[i*4:(i+1)*4], idx)
	}
	return buf
}
