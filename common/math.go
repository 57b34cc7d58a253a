package common

import (
	"math"
	"unsafe"
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

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order (OpenGL/WebGPU convention).
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

// MulVec4 multiplies a 4x4 column-major matrix by a 4-component vector and
// stores the result in out. out and v may alias.
//
// Parameters:
//   - out: destination slice (must be at least 4 elements)
//   - m: matrix (16 elements, column-major)
//   - v: vector (4 elements)
func MulVec4(out, m, v []float32) {
	var buf [4]float32
	for j := 0; j < 4; j++ {
		buf[j] = m[j]*v[0] + m[4+j]*v[1] + m[8+j]*v[2] + m[12+j]*v[3]
	}
	copy(out, buf[:])
}

// Transpose4 transposes a 4x4 column-major matrix into out. out and m may
// alias.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - m: source matrix (16 elements)
func Transpose4(out, m []float32) {
	var buf [16]float32
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			buf[r*4+c] = m[c*4+r]
		}
	}
	copy(out, buf[:])
}

// TransformPoint applies a 4x4 column-major matrix to a point (w = 1) and
// returns the first three components of the result. No perspective divide is
// performed; the matrix is expected to be affine (a model or view matrix).
//
// Parameters:
//   - m: matrix (16 elements, column-major)
//   - x, y, z: point coordinates
//
// Returns:
//   - float32, float32, float32: the transformed point
func TransformPoint(m []float32, x, y, z float32) (float32, float32, float32) {
	px := m[0]*x + m[4]*y + m[8]*z + m[12]
	py := m[1]*x + m[5]*y + m[9]*z + m[13]
	pz := m[2]*x + m[6]*y + m[10]*z + m[14]
	return px, py, pz
}

// TransformDirection applies a 4x4 column-major matrix to a direction (w = 0)
// and returns the first three components of the result. Translation is
// discarded; directions are not points.
//
// Parameters:
//   - m: matrix (16 elements, column-major)
//   - x, y, z: direction components
//
// Returns:
//   - float32, float32, float32: the transformed direction
func TransformDirection(m []float32, x, y, z float32) (float32, float32, float32) {
	dx := m[0]*x + m[4]*y + m[8]*z
	dy := m[1]*x + m[5]*y + m[9]*z
	dz := m[2]*x + m[6]*y + m[10]*z
	return dx, dy, dz
}

// Perspective creates a perspective projection matrix.
// Uses depth range [0, 1] compatible with WebGPU/Vulkan clip space.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	out[15] = 0.0
}

// PerspectiveFromAngles creates an asymmetric perspective projection matrix
// from four half-angles, one per frustum side, as reported by an HMD runtime
// for each eye. Angles are in radians; left and down are typically negative.
// Depth range is [0, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - angleLeft, angleRight, angleUp, angleDown: frustum half-angles in radians
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func PerspectiveFromAngles(out []float32, angleLeft, angleRight, angleUp, angleDown, near, far float32) {
	tanLeft := float32(math.Tan(float64(angleLeft)))
	tanRight := float32(math.Tan(float64(angleRight)))
	tanDown := float32(math.Tan(float64(angleDown)))
	tanUp := float32(math.Tan(float64(angleUp)))

	tanWidth := tanRight - tanLeft
	tanHeight := tanDown - tanUp

	for i := range 16 {
		out[i] = 0
	}
	out[0] = 2.0 / tanWidth
	out[5] = 2.0 / tanHeight
	out[8] = (tanRight + tanLeft) / tanWidth
	out[9] = (tanUp + tanDown) / tanHeight
	out[10] = -far / (far - near)
	out[11] = -1.0
	out[14] = -(far * near) / (far - near)
}

// BuildModelMatrix constructs a 4x4 model matrix from position, Euler rotation, and scale.
// The rotation order is Y * X * Z (yaw-pitch-roll). All matrices are column-major.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - posX, posY, posZ: translation in world space
//   - rotX, rotY, rotZ: rotation angles in radians around each axis
//   - scaleX, scaleY, scaleZ: scale factors along each axis
func BuildModelMatrix(out []float32, posX, posY, posZ, rotX, rotY, rotZ, scaleX, scaleY, scaleZ float32) {
	cx := float32(math.Cos(float64(rotX)))
	sx := float32(math.Sin(float64(rotX)))
	cy := float32(math.Cos(float64(rotY)))
	sy := float32(math.Sin(float64(rotY)))
	cz := float32(math.Cos(float64(rotZ)))
	sz := float32(math.Sin(float64(rotZ)))

	// R = Ry * Rx * Rz, column-major
	out[0] = (cy*cz + sy*sx*sz) * scaleX
	out[1] = (cx * sz) * scaleX
	out[2] = (-sy*cz + cy*sx*sz) * scaleX
	out[3] = 0

	out[4] = (cy*-sz + sy*sx*cz) * scaleY
	out[5] = (cx * cz) * scaleY
	out[6] = (sy*sz + cy*sx*cz) * scaleY
	out[7] = 0

	out[8] = (sy * cx) * scaleZ
	out[9] = (-sx) * scaleZ
	out[10] = (cy * cx) * scaleZ
	out[11] = 0

	out[12] = posX
	out[13] = posY
	out[14] = posZ
	out[15] = 1
}

// Invert4 computes the inverse of a 4x4 column-major matrix using the Laplace
// expansion (cofactor) method. If the matrix is singular (determinant ≈ 0) the
// output is left unchanged and the function returns false.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - m: source matrix (16 elements, column-major)
//
// Returns:
//   - bool: true if the matrix was successfully inverted, false if singular
func Invert4(out, m []float32) bool {
	// 2x2 sub-determinants of the upper-left and lower-right quadrants.
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if det == 0 {
		return false
	}

	invDet := 1.0 / det

	out[0] = (m[5]*c5 - m[6]*c4 + m[7]*c3) * invDet
	out[1] = (-m[1]*c5 + m[2]*c4 - m[3]*c3) * invDet
	out[2] = (m[13]*s5 - m[14]*s4 + m[15]*s3) * invDet
	out[3] = (-m[9]*s5 + m[10]*s4 - m[11]*s3) * invDet

	out[4] = (-m[4]*c5 + m[6]*c2 - m[7]*c1) * invDet
	out[5] = (m[0]*c5 - m[2]*c2 + m[3]*c1) * invDet
	out[6] = (-m[12]*s5 + m[14]*s2 - m[15]*s1) * invDet
	out[7] = (m[8]*s5 - m[10]*s2 + m[11]*s1) * invDet

	out[8] = (m[4]*c4 - m[5]*c2 + m[7]*c0) * invDet
	out[9] = (-m[0]*c4 + m[1]*c2 - m[3]*c0) * invDet
	out[10] = (m[12]*s4 - m[13]*s2 + m[15]*s0) * invDet
	out[11] = (-m[8]*s4 + m[9]*s2 - m[11]*s0) * invDet

	out[12] = (-m[4]*c3 + m[5]*c1 - m[6]*c0) * invDet
	out[13] = (m[0]*c3 - m[1]*c1 + m[2]*c0) * invDet
	out[14] = (-m[12]*s3 + m[13]*s1 - m[14]*s0) * invDet
	out[15] = (m[8]*s3 - m[9]*s1 + m[10]*s0) * invDet

	return true
}

// NormalMatrix computes the matrix that transforms surface normals for a given
// model matrix: the transpose of its inverse. Using the model matrix directly
// would skew normals under non-uniform scale; the inverse-transpose keeps them
// perpendicular to their surfaces. Directions use w = 0, so translation never
// contributes. If the model matrix is singular the output is set to identity.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - model: model matrix (16 elements, column-major)
//
// Returns:
//   - bool: true if the model matrix was invertible, false if the identity
//     fallback was used
func NormalMatrix(out, model []float32) bool {
	var inv [16]float32
	if !Invert4(inv[:], model) {
		Identity(out)
		return false
	}
	Transpose4(out, inv[:])
	return true
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
	val := float64(z0*z0 + z1*z1 + z2*z2)
	if val == 0 {
		val = 1
	}
	invLen := 1.0 / float32(math.Sqrt(val))
	z0 *= invLen
	z1 *= invLen
	z2 *= invLen

	x0 := upY*z2 - upZ*z1
	x1 := upZ*z0 - upX*z2
	x2 := upX*z1 - upY*z0
	val = float64(x0*x0 + x1*x1 + x2*x2)
	if val == 0 {
		val = 1
	}
	invLen = 1.0 / float32(math.Sqrt(val))
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

// QuatToMat4 converts a unit quaternion to a 4x4 column-major rotation matrix.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - w, x, y, z: quaternion components (scalar first)
func QuatToMat4(out []float32, w, x, y, z float32) {
	xx := x * x
	yy := y * y
	zz := z * z
	xy := x * y
	xz := x * z
	yz := y * z
	wx := w * x
	wy := w * y
	wz := w * z

	out[0] = 1 - 2*(yy+zz)
	out[1] = 2 * (xy + wz)
	out[2] = 2 * (xz - wy)
	out[3] = 0

	out[4] = 2 * (xy - wz)
	out[5] = 1 - 2*(xx+zz)
	out[6] = 2 * (yz + wx)
	out[7] = 0

	out[8] = 2 * (xz + wy)
	out[9] = 2 * (yz - wx)
	out[10] = 1 - 2*(xx+yy)
	out[11] = 0

	out[12] = 0
	out[13] = 0
	out[14] = 0
	out[15] = 1
}

// PoseInverse builds a view matrix from a rigid pose (unit orientation
// quaternion plus position): the rotation by the conjugate quaternion composed
// with the negated translation. An HMD runtime reports each eye's pose in world
// space; the view matrix is that pose's inverse.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - qw, qx, qy, qz: pose orientation quaternion (scalar first, unit length)
//   - px, py, pz: pose position in world space
func PoseInverse(out []float32, qw, qx, qy, qz, px, py, pz float32) {
	var rot [16]float32
	QuatToMat4(rot[:], qw, -qx, -qy, -qz)

	var trans [16]float32
	Identity(trans[:])
	trans[12] = -px
	trans[13] = -py
	trans[14] = -pz

	Mul4(out, rot[:], trans[:])
}

// Clamp limits v to the range [lo, hi].
//
// Parameters:
//   - v: value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: the clamped value
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Saturate clamps v to the range [0, 1].
//
// Parameters:
//   - v: value to clamp
//
// Returns:
//   - float32: the clamped value
func Saturate(v float32) float32 {
	return Clamp(v, 0, 1)
}

// Sub3 subtracts b from a componentwise.
//
// Parameters:
//   - a: the minuend vector
//   - b: the subtrahend vector
//
// Returns:
//   - [3]float32: a - b
func Sub3(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Dot3 computes the dot product of two vectors.
//
// Parameters:
//   - a: the first vector
//   - b: the second vector
//
// Returns:
//   - float32: the dot product
func Dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Length3 computes the Euclidean length of a vector.
//
// Parameters:
//   - v: the vector
//
// Returns:
//   - float32: the length
func Length3(v [3]float32) float32 {
	return float32(math.Sqrt(float64(Dot3(v, v))))
}

// Scale3 multiplies a vector by a scalar.
//
// Parameters:
//   - v: the vector
//   - s: the scalar factor
//
// Returns:
//   - [3]float32: the scaled vector
func Scale3(v [3]float32, s float32) [3]float32 {
	return [3]float32{v[0] * s, v[1] * s, v[2] * s}
}

// Normalize3 scales a vector to unit length. The zero vector is returned
// unchanged rather than dividing by zero.
//
// Parameters:
//   - v: the vector
//
// Returns:
//   - [3]float32: the unit vector, or the zero vector
func Normalize3(v [3]float32) [3]float32 {
	length := Length3(v)
	if length == 0 {
		return v
	}
	return Scale3(v, 1/length)
}
