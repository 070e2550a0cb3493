// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit camera transform functionality.

package math32

import "errors"

// ErrSingular is returned when inverting a matrix whose determinant is zero.
var ErrSingular = errors.New("math32: matrix determinant is zero")

// Matrix3 is 3x3 matrix organized internally as column matrix.
type Matrix3 [9]float32

// Identity3 returns a new identity [Matrix3] matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Matrix3FromColumns returns a new [Matrix3] with the given
// vectors as its first, second and third columns.
func Matrix3FromColumns(c0, c1, c2 Vector3) Matrix3 {
	return Matrix3{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}
}

// Matrix3FromRows returns a new [Matrix3] with the given
// vectors as its first, second and third rows.
func Matrix3FromRows(r0, r1, r2 Vector3) Matrix3 {
	return Matrix3{
		r0.X, r1.X, r2.X,
		r0.Y, r1.Y, r2.Y,
		r0.Z, r1.Z, r2.Z,
	}
}

// Column returns the given column (0-2) of the matrix.
func (m *Matrix3) Column(col int) Vector3 {
	i := col * 3
	return Vec3(m[i], m[i+1], m[i+2])
}

// Row returns the given row (0-2) of the matrix.
func (m *Matrix3) Row(row int) Vector3 {
	return Vec3(m[row], m[row+3], m[row+6])
}

// Mul returns this matrix times other matrix (this matrix is unchanged)
func (m *Matrix3) Mul(other *Matrix3) Matrix3 {
	var r Matrix3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			r[col*3+row] = m[row]*other[col*3] + m[row+3]*other[col*3+1] + m[row+6]*other[col*3+2]
		}
	}
	return r
}

// Determinant calculates and returns the determinant of this matrix.
func (m *Matrix3) Determinant() float32 {
	return m[0]*m[4]*m[8] -
		m[0]*m[5]*m[7] -
		m[1]*m[3]*m[8] +
		m[1]*m[5]*m[6] +
		m[2]*m[3]*m[7] -
		m[2]*m[4]*m[6]
}

// Inverse returns the inverse of this matrix.
// If the matrix cannot be inverted it returns the identity matrix
// and [ErrSingular].
func (m *Matrix3) Inverse() (Matrix3, error) {
	var nm Matrix3
	nm[0] = m[8]*m[4] - m[5]*m[7]
	nm[1] = -m[8]*m[1] + m[2]*m[7]
	nm[2] = m[5]*m[1] - m[2]*m[4]
	nm[3] = -m[8]*m[3] + m[5]*m[6]
	nm[4] = m[8]*m[0] - m[2]*m[6]
	nm[5] = -m[5]*m[0] + m[2]*m[3]
	nm[6] = m[7]*m[3] - m[4]*m[6]
	nm[7] = -m[7]*m[0] + m[1]*m[6]
	nm[8] = m[4]*m[0] - m[1]*m[3]

	det := m[0]*nm[0] + m[1]*nm[3] + m[2]*nm[6]
	if det == 0 {
		return Identity3(), ErrSingular
	}
	for i := range nm {
		nm[i] /= det
	}
	return nm, nil
}

// Transpose returns the transpose of this matrix.
func (m *Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// IsFinite returns true if no element is NaN or infinite.
func (m *Matrix3) IsFinite() bool {
	for _, v := range m {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}
