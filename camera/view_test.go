// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"fmt"
	"testing"

	"cogentcore.org/glcam/base/tolassert"
	"cogentcore.org/glcam/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = float32(1e-5)

var testPositions = []math32.Vector3{
	{},
	math32.Vec3(1, 2, 3),
	math32.Vec3(-40, 0.25, 1000),
}

var testFacings = []math32.Vector3{
	math32.Vec3(0, 0, 1),
	math32.Vec3(0, 0, -1),
	math32.Vec3(1, 0, 0),
	math32.Vec3(0.3, -0.5, 2),
	math32.Vec3(-7, 3, -0.1),
	math32.Vec3(0.2, 0.9, 0),
}

func assertMatrix4(t *testing.T, expected, actual math32.Matrix4) {
	t.Helper()
	tolassert.EqualTolSlice(t, expected[:], actual[:], tol)
}

func assertVector3(t *testing.T, expected, actual math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, expected.X, actual.X, tol)
	tolassert.EqualTol(t, expected.Y, actual.Y, tol)
	tolassert.EqualTol(t, expected.Z, actual.Z, tol)
}

func TestViewMatrixOrthonormal(t *testing.T) {
	for _, pos := range testPositions {
		for _, f := range testFacings {
			t.Run(fmt.Sprintf("%v/%v", pos, f), func(t *testing.T) {
				view, err := ViewMatrix(pos, f)
				require.NoError(t, err)

				rot := view.Matrix3()
				for i := 0; i < 3; i++ {
					tolassert.EqualTol(t, 1, rot.Column(i).Length(), tol)
					tolassert.EqualTol(t, 1, rot.Row(i).Length(), tol)
				}
				tolassert.EqualTol(t, 0, rot.Row(0).Dot(rot.Row(1)), tol)
				tolassert.EqualTol(t, 0, rot.Row(0).Dot(rot.Row(2)), tol)
				tolassert.EqualTol(t, 0, rot.Row(1).Dot(rot.Row(2)), tol)
				tolassert.EqualTol(t, 1, rot.Determinant(), tol)

				// bottom row is untouched
				assert.Equal(t, math32.Vec4(0, 0, 0, 1), view.Row(3))
			})
		}
	}
}

func TestViewMatrixForwardRow(t *testing.T) {
	for _, f := range testFacings {
		view, err := ViewMatrix(math32.Vec3(5, -5, 5), f)
		require.NoError(t, err)
		rot := view.Matrix3()
		assertVector3(t, f.Normal(), rot.Row(2))

		// the camera up axis has no sideways tilt: right is horizontal
		tolassert.EqualTol(t, 0, rot.Row(0).Y, tol)
		assert.Greater(t, rot.Row(1).Y, float32(0))
	}
}

func TestViewMatrixCameraAtOrigin(t *testing.T) {
	for _, pos := range testPositions {
		for _, f := range testFacings {
			view, err := ViewMatrix(pos, f)
			require.NoError(t, err)
			got := view.MulVector3AsPoint(pos)
			tolassert.EqualTol(t, 0, got.Length(), tol*math32.Max(1, pos.Length()))
		}
	}
}

func TestViewMatrixIdentity(t *testing.T) {
	view, err := ViewMatrix(math32.Vector3{}, math32.Vector3Z)
	require.NoError(t, err)
	assert.Equal(t, math32.Identity4(), view)

	// facing -Z turns the camera around the up axis, flipping x and z
	view, err = ViewMatrix(math32.Vector3{}, math32.Vec3(0, 0, -1))
	require.NoError(t, err)
	flip := math32.Matrix4Scale(math32.Vec3(-1, 1, -1))
	assertMatrix4(t, flip, view)

	// unnormalized facing gives the same transform
	scaled, err := ViewMatrix(math32.Vec3(1, 2, 3), math32.Vec3(0, 0, 42))
	require.NoError(t, err)
	assertMatrix4(t, math32.Matrix4Translation(math32.Vec3(-1, -2, -3)), scaled)
}

func TestViewMatrixPoints(t *testing.T) {
	pos := math32.Vec3(2, 1, 0)
	view, err := ViewMatrix(pos, math32.Vec3(1, 0, 0))
	require.NoError(t, err)

	// looking along +X: world +X is forward, world -Z is to the right
	assertVector3(t, math32.Vec3(0, 0, 3), view.MulVector3AsPoint(math32.Vec3(5, 1, 0)))
	assertVector3(t, math32.Vec3(1, 0, 0), view.MulVector3AsPoint(math32.Vec3(2, 1, -1)))
	assertVector3(t, math32.Vec3(0, 2, 0), view.MulVector3AsPoint(math32.Vec3(2, 3, 0)))
}

func TestViewMatrixLookAtReference(t *testing.T) {
	for _, pos := range testPositions {
		for _, f := range testFacings {
			view, err := ViewMatrix(pos, f)
			require.NoError(t, err)

			// mgl32 looks down -Z with right = -x, so flip x and z
			eye := mgl32.Vec3{pos.X, pos.Y, pos.Z}
			center := eye.Add(mgl32.Vec3{f.X, f.Y, f.Z})
			ref := mgl32.Scale3D(-1, 1, -1).Mul4(mgl32.LookAtV(eye, center, mgl32.Vec3{0, 1, 0}))

			got := view
			for i := range got {
				tolassert.EqualTol(t, ref[i], got[i], tol*math32.Max(1, pos.Length()), "element %d", i)
			}
		}
	}
}

func TestViewMatrixFacingMagnitude(t *testing.T) {
	tests := []struct {
		facing    math32.Vector3
		direction math32.Vector3
	}{
		{math32.Vec3(1e-30, 0, 0), math32.Vec3(1, 0, 0)},
		{math32.Vec3(1e30, 1e30, 0), math32.Vec3(1, 1, 0)},
		{math32.Vec3(1e20, 0, 1e20), math32.Vec3(1, 0, 1)},
		{math32.Vec3(0, 2e-35, -1e-35), math32.Vec3(0, 2, -1)},
		{math32.Vec3(0, 0, 1e-40), math32.Vec3(0, 0, 1)},
	}
	pos := math32.Vec3(1, 2, 3)
	for _, tt := range tests {
		t.Run(tt.facing.String(), func(t *testing.T) {
			view, err := ViewMatrix(pos, tt.facing)
			require.NoError(t, err)
			expected, err := ViewMatrix(pos, tt.direction)
			require.NoError(t, err)
			assertMatrix4(t, expected, view)
		})
	}
}

func TestViewMatrixInvalid(t *testing.T) {
	tests := []struct {
		name   string
		pos    math32.Vector3
		facing math32.Vector3
	}{
		{"zero facing", math32.Vec3(1, 2, 3), math32.Vector3{}},
		{"facing up", math32.Vector3{}, math32.Vec3(0, 5, 0)},
		{"facing down", math32.Vec3(0, 10, 0), math32.Vec3(0, -1, 0)},
		{"nearly up", math32.Vector3{}, math32.Vec3(1e-6, 1, 0)},
		{"nan position", math32.Vec3(math32.NaN(), 0, 0), math32.Vector3Z},
		{"inf facing", math32.Vector3{}, math32.Vec3(0, 0, math32.Inf(1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := ViewMatrix(tt.pos, tt.facing)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.True(t, view.IsFinite())
		})
	}
}
