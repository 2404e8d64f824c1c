package common

import (
	"unsafe"

	"github.com/chewxy/math32"
)

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Identity3 resets a 3x3 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 9 elements)
func Identity3(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[4], m[8] = 1, 1, 1
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice using unsafe.
// The returned slice has length equal to the struct's size in memory.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(size))
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order (WebGPU convention).
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// Mul3 multiplies two 3x3 matrices and stores the result in out.
// All matrices are stored in column-major order.
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 9 elements)
//   - a: left-hand matrix (9 elements)
//   - b: right-hand matrix (9 elements)
func Mul3(out, a, b []float32) {
	var buf [9]float32
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := float32(0)
			for k := 0; k < 3; k++ {
				sum += a[k*3+j] * b[i*3+k]
			}
			buf[i*3+j] = sum
		}
	}
	copy(out, buf[:])
}

// Perspective creates a perspective projection matrix targeting the WebGPU
// clip space convention (depth range [0, 1]).
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / math32.Tan(fovY/2.0)
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
}

// LookAt creates a view matrix that positions and orients the camera.
// The resulting matrix transforms world coordinates to view/camera space.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eyeX, eyeY, eyeZ: camera position in world space
//   - centerX, centerY, centerZ: target point the camera looks at
//   - upX, upY, upZ: up vector defining camera orientation (typically 0,1,0)
func LookAt(out []float32, eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32) {
	z0 := eyeX - centerX
	z1 := eyeY - centerY
	z2 := eyeZ - centerZ
	val := z0*z0 + z1*z1 + z2*z2
	if val == 0 {
		val = 1
	}
	invLen := 1.0 / math32.Sqrt(val)
	z0 *= invLen
	z1 *= invLen
	z2 *= invLen

	x0 := upY*z2 - upZ*z1
	x1 := upZ*z0 - upX*z2
	x2 := upX*z1 - upY*z0
	val = x0*x0 + x1*x1 + x2*x2
	if val == 0 {
		val = 1
	}
	invLen = 1.0 / math32.Sqrt(val)
	x0 *= invLen
	x1 *= invLen
	x2 *= invLen

	y0 := z1*x2 - z2*x1
	y1 := z2*x0 - z0*x2
	y2 := z0*x1 - z1*x0

	out[0], out[4], out[8], out[12] = x0, x1, x2, -(x0*eyeX + x1*eyeY + x2*eyeZ)
	out[1], out[5], out[9], out[13] = y0, y1, y2, -(y0*eyeX + y1*eyeY + y2*eyeZ)
	out[2], out[6], out[10], out[14] = z0, z1, z2, -(z0*eyeX + z1*eyeY + z2*eyeZ)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// BuildTransform2D constructs a 3x3 model matrix from position, rotation, and
// non-uniform scale, composed as translation * rotation * scale. The matrix is
// column-major and tightly packed for instance-rate vertex input.
//
// Parameters:
//   - out: destination slice (must be at least 9 elements)
//   - posX, posY: translation in world space
//   - rot: rotation in radians around the Z axis
//   - scaleX, scaleY: scale factors along each axis
func BuildTransform2D(out []float32, posX, posY, rot, scaleX, scaleY float32) {
	c := math32.Cos(rot)
	s := math32.Sin(rot)

	out[0] = c * scaleX
	out[1] = s * scaleX
	out[2] = 0

	out[3] = -s * scaleY
	out[4] = c * scaleY
	out[5] = 0

	out[6] = posX
	out[7] = posY
	out[8] = 1
}

// BuildTransform3D constructs a 4x4 model matrix from position, a unit
// quaternion rotation, and non-uniform scale, composed as
// translation * rotation * scale. The matrix is column-major.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - posX, posY, posZ: translation in world space
//   - quat: rotation as a unit quaternion [w, x, y, z]
//   - scaleX, scaleY, scaleZ: scale factors along each axis
func BuildTransform3D(out []float32, posX, posY, posZ float32, quat [4]float32, scaleX, scaleY, scaleZ float32) {
	w, x, y, z := quat[0], quat[1], quat[2], quat[3]

	xx := x * x
	yy := y * y
	zz := z * z
	xy := x * y
	xz := x * z
	yz := y * z
	wx := w * x
	wy := w * y
	wz := w * z

	out[0] = (1 - 2*(yy+zz)) * scaleX
	out[1] = 2 * (xy + wz) * scaleX
	out[2] = 2 * (xz - wy) * scaleX
	out[3] = 0

	out[4] = 2 * (xy - wz) * scaleY
	out[5] = (1 - 2*(xx+zz)) * scaleY
	out[6] = 2 * (yz + wx) * scaleY
	out[7] = 0

	out[8] = 2 * (xz + wy) * scaleZ
	out[9] = 2 * (yz - wx) * scaleZ
	out[10] = (1 - 2*(xx+yy)) * scaleZ
	out[11] = 0

	out[12] = posX
	out[13] = posY
	out[14] = posZ
	out[15] = 1
}

// QuaternionIdentity returns the identity rotation quaternion [w, x, y, z].
//
// Returns:
//   - [4]float32: the identity quaternion (no rotation)
func QuaternionIdentity() [4]float32 {
	return [4]float32{1, 0, 0, 0}
}

// TransformPoint4 applies a 4x4 column-major matrix to a point (w = 1) and
// performs the perspective divide.
//
// Parameters:
//   - m: transform matrix (16 elements, column-major)
//   - x, y, z: point coordinates
//
// Returns:
//   - outX, outY, outZ: the transformed point
func TransformPoint4(m []float32, x, y, z float32) (outX, outY, outZ float32) {
	outX = m[0]*x + m[4]*y + m[8]*z + m[12]
	outY = m[1]*x + m[5]*y + m[9]*z + m[13]
	outZ = m[2]*x + m[6]*y + m[10]*z + m[14]
	w := m[3]*x + m[7]*y + m[11]*z + m[15]
	if w != 0 && w != 1 {
		outX /= w
		outY /= w
		outZ /= w
	}
	return outX, outY, outZ
}
