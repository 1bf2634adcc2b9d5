package surfacetexture

// Matrix4 is a 4x4 column-major transformation matrix stored as 16
// float32s, element [4*col+row] — the layout OpenGL/WebGPU uniform buffers
// expect a "mat4" to arrive in.
type Matrix4 [16]float32

// Identity4 is the 4x4 identity matrix.
var Identity4 = Matrix4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// FlipH4 mirrors a unit-square sample horizontally.
var FlipH4 = Matrix4{
	-1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	1, 0, 0, 1,
}

// FlipV4 mirrors a unit-square sample vertically.
var FlipV4 = Matrix4{
	1, 0, 0, 0,
	0, -1, 0, 0,
	0, 0, 1, 0,
	0, 1, 0, 1,
}

// Rot90Matrix4 rotates a unit-square sample 90 degrees.
var Rot90Matrix4 = Matrix4{
	0, 1, 0, 0,
	-1, 0, 0, 0,
	0, 0, 1, 0,
	1, 0, 0, 1,
}

// Rot180Matrix4 rotates a unit-square sample 180 degrees; equal to FlipH4
// composed with FlipV4.
var Rot180Matrix4 = Matrix4{
	-1, 0, 0, 0,
	0, -1, 0, 0,
	0, 0, 1, 0,
	1, 1, 0, 1,
}

// Rot270Matrix4 rotates a unit-square sample 270 degrees; equal to FlipH4,
// FlipV4, and Rot90Matrix4 composed in that order.
var Rot270Matrix4 = Matrix4{
	0, -1, 0, 0,
	1, 0, 0, 0,
	0, 0, 1, 0,
	0, 1, 0, 1,
}

// MulMatrix4 computes *out = a*b using column-major 4x4 matrix
// multiplication. out must not alias a or b.
func MulMatrix4(out, a, b *Matrix4) {
	out[0] = a[0]*b[0] + a[4]*b[1] + a[8]*b[2] + a[12]*b[3]
	out[1] = a[1]*b[0] + a[5]*b[1] + a[9]*b[2] + a[13]*b[3]
	out[2] = a[2]*b[0] + a[6]*b[1] + a[10]*b[2] + a[14]*b[3]
	out[3] = a[3]*b[0] + a[7]*b[1] + a[11]*b[2] + a[15]*b[3]

	out[4] = a[0]*b[4] + a[4]*b[5] + a[8]*b[6] + a[12]*b[7]
	out[5] = a[1]*b[4] + a[5]*b[5] + a[9]*b[6] + a[13]*b[7]
	out[6] = a[2]*b[4] + a[6]*b[5] + a[10]*b[6] + a[14]*b[7]
	out[7] = a[3]*b[4] + a[7]*b[5] + a[11]*b[6] + a[15]*b[7]

	out[8] = a[0]*b[8] + a[4]*b[9] + a[8]*b[10] + a[12]*b[11]
	out[9] = a[1]*b[8] + a[5]*b[9] + a[9]*b[10] + a[13]*b[11]
	out[10] = a[2]*b[8] + a[6]*b[9] + a[10]*b[10] + a[14]*b[11]
	out[11] = a[3]*b[8] + a[7]*b[9] + a[11]*b[10] + a[15]*b[11]

	out[12] = a[0]*b[12] + a[4]*b[13] + a[8]*b[14] + a[12]*b[15]
	out[13] = a[1]*b[12] + a[5]*b[13] + a[9]*b[14] + a[13]*b[15]
	out[14] = a[2]*b[12] + a[6]*b[13] + a[10]*b[14] + a[14]*b[15]
	out[15] = a[3]*b[12] + a[7]*b[13] + a[11]*b[14] + a[15]*b[15]
}
