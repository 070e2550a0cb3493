// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit camera transform functionality.

package math32

// Triangle represents a triangle made of three vertices.
type Triangle struct {
	A Vector3
	B Vector3
	C Vector3
}

// NewTriangle returns a new Triangle object.
func NewTriangle(a, b, c Vector3) Triangle {
	return Triangle{a, b, c}
}

// Normal returns the triangle's normal.
func Normal(a, b, c Vector3) Vector3 {
	nv := c.Sub(b).Cross(a.Sub(b))
	lenSq := nv.LengthSquared()
	if lenSq > 0 {
		return nv.MulScalar(1 / Sqrt(lenSq))
	}
	return Vector3{}
}

// Normal returns the triangle's normal.
func (t *Triangle) Normal() Vector3 {
	return Normal(t.A, t.B, t.C)
}

// Area returns the triangle's area.
func (t *Triangle) Area() float32 {
	v0 := t.C.Sub(t.B)
	v1 := t.A.Sub(t.B)
	return v0.Cross(v1).Length() * 0.5
}

// Midpoint returns the triangle's midpoint.
func (t *Triangle) Midpoint() Vector3 {
	return t.A.Add(t.B).Add(t.C).MulScalar(float32(1) / 3)
}

// ToArray returns the vertices as a flat x, y, z array, in A, B, C order,
// as uploaded to a vertex buffer.
func (t *Triangle) ToArray() []float32 {
	return []float32{
		t.A.X, t.A.Y, t.A.Z,
		t.B.X, t.B.Y, t.B.Z,
		t.C.X, t.C.Y, t.C.Z,
	}
}

// MulMatrix4 returns the triangle with each vertex transformed as a point
// by the given matrix, with perspective division.
func (t *Triangle) MulMatrix4(m *Matrix4) Triangle {
	return Triangle{m.MulVector3AsPoint(t.A), m.MulVector3AsPoint(t.B), m.MulVector3AsPoint(t.C)}
}
