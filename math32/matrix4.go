// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit camera transform functionality.

package math32

// Matrix4 is 4x4 matrix organized internally as column matrix.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4Translation returns a new [Matrix4] that translates by the given offset.
func Matrix4Translation(offset Vector3) Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		offset.X, offset.Y, offset.Z, 1,
	}
}

// Matrix4Scale returns a new [Matrix4] that scales by the given factors.
func Matrix4Scale(scale Vector3) Matrix4 {
	return Matrix4{
		scale.X, 0, 0, 0,
		0, scale.Y, 0, 0,
		0, 0, scale.Z, 0,
		0, 0, 0, 1,
	}
}

// Matrix4FromMatrix3 returns a new [Matrix4] with the given [Matrix3]
// as its upper-left 3x3 block, and identity elsewhere.
func Matrix4FromMatrix3(m *Matrix3) Matrix4 {
	return Matrix4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// Matrix4Orthographic returns an orthographic projection matrix
// mapping the camera-space box [left, right] x [bottom, top] x [near, far]
// into the OpenGL clip cube [-1, 1] on every axis. Camera space looks
// down +Z, so z = near maps to -1 and z = far maps to +1.
// No checks are made on the arguments.
func Matrix4Orthographic(left, right, bottom, top, near, far float32) Matrix4 {
	w := right - left
	h := top - bottom
	d := far - near
	return Matrix4{
		2 / w, 0, 0, 0,
		0, 2 / h, 0, 0,
		0, 0, 2 / d, 0,
		-(right + left) / w, -(top + bottom) / h, -(far + near) / d, 1,
	}
}

// Column returns the given column (0-3) of the matrix.
func (m *Matrix4) Column(col int) Vector4 {
	i := col * 4
	return Vec4(m[i], m[i+1], m[i+2], m[i+3])
}

// Row returns the given row (0-3) of the matrix.
func (m *Matrix4) Row(row int) Vector4 {
	return Vec4(m[row], m[row+4], m[row+8], m[row+12])
}

// Matrix3 returns the upper-left 3x3 block of this matrix.
func (m *Matrix4) Matrix3() Matrix3 {
	return Matrix3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// Mul returns this matrix times other matrix (this matrix is unchanged).
// Applied to a point, other acts first.
func (m *Matrix4) Mul(other *Matrix4) Matrix4 {
	var r Matrix4
	for col := 0; col < 4; col++ {
		c := col * 4
		for row := 0; row < 4; row++ {
			r[c+row] = m[row]*other[c] + m[row+4]*other[c+1] + m[row+8]*other[c+2] + m[row+12]*other[c+3]
		}
	}
	return r
}

// SetMul sets this matrix to this matrix times other
func (m *Matrix4) SetMul(other *Matrix4) {
	*m = m.Mul(other)
}

// MulMatrices sets this matrix to the product a * b,
// so that applied to a point, b acts first.
func (m *Matrix4) MulMatrices(a, b *Matrix4) {
	*m = a.Mul(b)
}

// MulVector3AsPoint returns the point v transformed by this matrix,
// with perspective division by the resulting w.
func (m *Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	return Vector4FromVector3(v, 1).MulMatrix4(m).PerspDiv()
}

// Transpose returns the transpose of this matrix.
func (m *Matrix4) Transpose() Matrix4 {
	return Matrix4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Determinant calculates and returns the determinant of this matrix.
func (m *Matrix4) Determinant() float32 {
	inv := m.adjugate()
	return m[0]*inv[0] + m[1]*inv[4] + m[2]*inv[8] + m[3]*inv[12]
}

// Inverse returns the inverse of this matrix.
// If the matrix cannot be inverted it returns the identity matrix
// and [ErrSingular].
func (m *Matrix4) Inverse() (Matrix4, error) {
	inv := m.adjugate()
	det := m[0]*inv[0] + m[1]*inv[4] + m[2]*inv[8] + m[3]*inv[12]
	if det == 0 {
		return Identity4(), ErrSingular
	}
	det = 1 / det
	for i := range inv {
		inv[i] *= det
	}
	return inv, nil
}

// adjugate returns the transposed cofactor matrix.
func (m *Matrix4) adjugate() Matrix4 {
	var inv Matrix4
	inv[0] = m[5]*m[10]*m[15] - m[5]*m[11]*m[14] - m[9]*m[6]*m[15] + m[9]*m[7]*m[14] + m[13]*m[6]*m[11] - m[13]*m[7]*m[10]
	inv[4] = -m[4]*m[10]*m[15] + m[4]*m[11]*m[14] + m[8]*m[6]*m[15] - m[8]*m[7]*m[14] - m[12]*m[6]*m[11] + m[12]*m[7]*m[10]
	inv[8] = m[4]*m[9]*m[15] - m[4]*m[11]*m[13] - m[8]*m[5]*m[15] + m[8]*m[7]*m[13] + m[12]*m[5]*m[11] - m[12]*m[7]*m[9]
	inv[12] = -m[4]*m[9]*m[14] + m[4]*m[10]*m[13] + m[8]*m[5]*m[14] - m[8]*m[6]*m[13] - m[12]*m[5]*m[10] + m[12]*m[6]*m[9]
	inv[1] = -m[1]*m[10]*m[15] + m[1]*m[11]*m[14] + m[9]*m[2]*m[15] - m[9]*m[3]*m[14] - m[13]*m[2]*m[11] + m[13]*m[3]*m[10]
	inv[5] = m[0]*m[10]*m[15] - m[0]*m[11]*m[14] - m[8]*m[2]*m[15] + m[8]*m[3]*m[14] + m[12]*m[2]*m[11] - m[12]*m[3]*m[10]
	inv[9] = -m[0]*m[9]*m[15] + m[0]*m[11]*m[13] + m[8]*m[1]*m[15] - m[8]*m[3]*m[13] - m[12]*m[1]*m[11] + m[12]*m[3]*m[9]
	inv[13] = m[0]*m[9]*m[14] - m[0]*m[10]*m[13] - m[8]*m[1]*m[14] + m[8]*m[2]*m[13] + m[12]*m[1]*m[10] - m[12]*m[2]*m[9]
	inv[2] = m[1]*m[6]*m[15] - m[1]*m[7]*m[14] - m[5]*m[2]*m[15] + m[5]*m[3]*m[14] + m[13]*m[2]*m[7] - m[13]*m[3]*m[6]
	inv[6] = -m[0]*m[6]*m[15] + m[0]*m[7]*m[14] + m[4]*m[2]*m[15] - m[4]*m[3]*m[14] - m[12]*m[2]*m[7] + m[12]*m[3]*m[6]
	inv[10] = m[0]*m[5]*m[15] - m[0]*m[7]*m[13] - m[4]*m[1]*m[15] + m[4]*m[3]*m[13] + m[12]*m[1]*m[7] - m[12]*m[3]*m[5]
	inv[14] = -m[0]*m[5]*m[14] + m[0]*m[6]*m[13] + m[4]*m[1]*m[14] - m[4]*m[2]*m[13] - m[12]*m[1]*m[6] + m[12]*m[2]*m[5]
	inv[3] = -m[1]*m[6]*m[11] + m[1]*m[7]*m[10] + m[5]*m[2]*m[11] - m[5]*m[3]*m[10] - m[9]*m[2]*m[7] + m[9]*m[3]*m[6]
	inv[7] = m[0]*m[6]*m[11] - m[0]*m[7]*m[10] - m[4]*m[2]*m[11] + m[4]*m[3]*m[10] + m[8]*m[2]*m[7] - m[8]*m[3]*m[6]
	inv[11] = -m[0]*m[5]*m[11] + m[0]*m[7]*m[9] + m[4]*m[1]*m[11] - m[4]*m[3]*m[9] - m[8]*m[1]*m[7] + m[8]*m[3]*m[5]
	inv[15] = m[0]*m[5]*m[10] - m[0]*m[6]*m[9] - m[4]*m[1]*m[10] + m[4]*m[2]*m[9] + m[8]*m[1]*m[6] - m[8]*m[2]*m[5]
	return inv
}

// IsFinite returns true if no element is NaN or infinite.
func (m *Matrix4) IsFinite() bool {
	for _, v := range m {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}

// ToArray copies this matrix to array starting at offset.
func (m *Matrix4) ToArray(array []float32, offset int) {
	copy(array[offset:], m[:])
}
