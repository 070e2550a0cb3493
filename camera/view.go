// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera builds the view and orthographic projection transforms
// that map world-space vertices into OpenGL clip space.
//
// Camera space is right = +X, up = +Y, forward = +Z: the forward axis
// of a view transform is the normalized facing direction.
package camera

import (
	"fmt"

	"cogentcore.org/glcam/math32"
)

// WorldUp is the reference up direction used to orient the camera.
var WorldUp = math32.Vector3Y

// ParallelTolerance is the minimum length of the component of [WorldUp]
// orthogonal to the facing direction (the sine of the angle between them).
// Facing directions closer to vertical than this are rejected, because
// the camera roll is then undefined.
const ParallelTolerance = 1e-3

// ViewMatrix returns the view transform for a camera at pos pointing
// along facing. The camera basis is built by Gram-Schmidt against
// [WorldUp]: z is the normalized facing, y is world up minus its
// projection onto z, normalized, and x = y cross z. The result
// translates pos to the origin, then rotates world axes onto x, y, z.
//
// facing need not be normalized, and may have any finite non-zero
// magnitude. It returns [ErrInvalidInput] if any component is not
// finite, if facing is zero, or if facing is parallel to [WorldUp].
func ViewMatrix(pos, facing math32.Vector3) (math32.Matrix4, error) {
	if !pos.IsFinite() || !facing.IsFinite() {
		return math32.Identity4(), fmt.Errorf("%w: non-finite position %v or facing %v", ErrInvalidInput, pos, facing)
	}
	// scale by the largest component so the length neither overflows nor underflows
	scale := math32.Max(math32.Abs(facing.X), math32.Max(math32.Abs(facing.Y), math32.Abs(facing.Z)))
	if scale == 0 {
		return math32.Identity4(), fmt.Errorf("%w: zero facing", ErrInvalidInput)
	}
	z := math32.Vec3(facing.X/scale, facing.Y/scale, facing.Z/scale).Normal()
	up := WorldUp.Sub(WorldUp.ProjectOnto(z))
	if up.Length() < ParallelTolerance {
		return math32.Identity4(), fmt.Errorf("%w: facing %v is parallel to world up %v", ErrInvalidInput, facing, WorldUp)
	}
	y := up.Normal()
	x := y.Cross(z)

	// orthonormal, so the transpose is the inverse: world to camera
	basis := math32.Matrix3FromColumns(x, y, z)
	rot3 := basis.Transpose()
	rotation := math32.Matrix4FromMatrix3(&rot3)
	translation := math32.Matrix4Translation(pos.Negate())
	return rotation.Mul(&translation), nil
}
