package model

import "github.com/trevor-e-apple/time-game/common"

// Instance2D is the CPU-side transform for one 2D instance. Raw encodes the
// transform as a column-major 3×3 matrix composed translate * rotate * scale.
type Instance2D struct {
	Position [2]float32
	Scale    [2]float32
	Rotation float32 // radians, counterclockwise about the origin
}

// Raw converts the instance to its GPU representation.
//
// Returns:
//   - GPUInstance2D: the encoded transform ready for upload.
func (i Instance2D) Raw() GPUInstance2D {
	var raw GPUInstance2D
	common.BuildTransform2D(
		raw.Model[:],
		i.Position[0], i.Position[1],
		i.Rotation,
		i.Scale[0], i.Scale[1],
	)
	return raw
}

// ColoredInstance2D is the CPU-side transform plus flat color for one debug
// overlay instance.
type ColoredInstance2D struct {
	Position [2]float32
	Scale    [2]float32
	Rotation float32 // radians, counterclockwise about the origin
	Color    [3]float32
}

// Raw converts the instance to its GPU representation.
//
// Returns:
//   - GPUColoredInstance2D: the encoded transform and color ready for upload.
func (i ColoredInstance2D) Raw() GPUColoredInstance2D {
	var raw GPUColoredInstance2D
	common.BuildTransform2D(
		raw.Model[:],
		i.Position[0], i.Position[1],
		i.Rotation,
		i.Scale[0], i.Scale[1],
	)
	raw.Color = i.Color
	return raw
}

// Instance3D is the CPU-side transform for one 3D instance. Rotation is a
// unit quaternion in [w, x, y, z] order.
type Instance3D struct {
	Position [3]float32
	Scale    [3]float32
	Rotation [4]float32
}

// NewInstance3D returns an Instance3D at the given position with unit scale
// and no rotation.
//
// Parameters:
//   - x: world-space X position
//   - y: world-space Y position
//   - z: world-space Z position
//
// Returns:
//   - Instance3D: the instance record
func NewInstance3D(x, y, z float32) Instance3D {
	return Instance3D{
		Position: [3]float32{x, y, z},
		Scale:    [3]float32{1, 1, 1},
		Rotation: common.QuaternionIdentity(),
	}
}

// Raw converts the instance to its GPU representation.
//
// Returns:
//   - GPUInstance3D: the encoded transform ready for upload.
func (i Instance3D) Raw() GPUInstance3D {
	var raw GPUInstance3D
	common.BuildTransform3D(
		raw.Model[:],
		i.Position[0], i.Position[1], i.Position[2],
		i.Rotation,
		i.Scale[0], i.Scale[1], i.Scale[2],
	)
	return raw
}
