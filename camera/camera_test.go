// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"testing"

	"cogentcore.org/glcam/base/tolassert"
	"cogentcore.org/glcam/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestNewCamera(t *testing.T) {
	cm := NewCamera()
	view, prjn, vp := cm.Matrices()

	assertMatrix4(t, math32.Matrix4Translation(math32.Vec3(0, 0, 10)), view)
	tolassert.EqualTol(t, 1, prjn[0], tol)
	tolassert.EqualTol(t, 1, prjn[5], tol)
	assertMatrix4(t, prjn.Mul(&view), vp)

	// the origin is 10 units in front of the camera, just past the near plane
	clip := vp.MulVector3AsPoint(math32.Vector3{})
	assertVector3(t, math32.Vec3(0, 0, 2*(10-NearClip)/(FarClip-NearClip)-1), clip)
}

func TestCameraSetAspectSize(t *testing.T) {
	cm := NewCamera()
	require.NoError(t, cm.SetAspectSize(800, 600))
	tolassert.EqualTol(t, 4.0/3.0, cm.Aspect, tol)
	_, prjn, _ := cm.Matrices()
	tolassert.EqualTol(t, 0.75, prjn[0], tol)
	tolassert.EqualTol(t, 1, prjn[5], tol)

	assert.ErrorIs(t, cm.SetAspectSize(0, 600), ErrInvalidInput)
	assert.ErrorIs(t, cm.SetAspectSize(800, -1), ErrInvalidInput)
}

func TestCameraLookAt(t *testing.T) {
	cm := NewCamera()
	require.NoError(t, cm.SetPose(math32.Vec3(3, 0, -4), math32.Vector3Z))
	require.NoError(t, cm.LookAt(math32.Vector3{}))
	assert.Equal(t, math32.Vec3(-3, 0, 4), cm.Facing)

	view, _, _ := cm.Matrices()
	assertVector3(t, math32.Vec3(0, 0, 5), view.MulVector3AsPoint(math32.Vector3{}))

	// looking at itself leaves the previous matrices in place
	err := cm.LookAt(cm.Pos)
	assert.ErrorIs(t, err, ErrInvalidInput)
	after, _, _ := cm.Matrices()
	assert.Equal(t, view, after)
}

func TestCameraRecoversAfterInvalid(t *testing.T) {
	cm := NewCamera()
	view, _, _ := cm.Matrices()
	assert.ErrorIs(t, cm.LookAt(cm.Pos), ErrInvalidInput)
	assert.Equal(t, math32.Vector3Z, cm.Facing)
	assert.ErrorIs(t, cm.SetPose(math32.Vec3(1, 2, 3), math32.Vec3(0, 2, 0)), ErrInvalidInput)
	assert.Equal(t, math32.Vec3(0, 0, -10), cm.Pos)
	assert.ErrorIs(t, cm.SetViewHeight(0), ErrInvalidInput)
	assert.Equal(t, float32(2), cm.ViewHeight)

	require.NoError(t, cm.SetAspectSize(800, 600))
	after, prjn, _ := cm.Matrices()
	assert.Equal(t, view, after)
	tolassert.EqualTol(t, 0.75, prjn[0], tol)

	require.NoError(t, cm.SetViewHeight(10))
	_, prjn, _ = cm.Matrices()
	tolassert.EqualTol(t, 0.2, prjn[5], tol)
	tolassert.EqualTol(t, 0.15, prjn[0], tol)
}

func TestCameraInvalidHeight(t *testing.T) {
	cm := NewCamera()
	_, prjn, _ := cm.Matrices()
	assert.ErrorIs(t, cm.SetViewHeight(-1), ErrInvalidInput)
	_, after, _ := cm.Matrices()
	assert.Equal(t, prjn, after)

	require.NoError(t, cm.SetViewHeight(10))
	_, prjn, _ = cm.Matrices()
	tolassert.EqualTol(t, 0.2, prjn[5], tol)
}

func TestCameraConcurrent(t *testing.T) {
	cm := NewCamera()
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			return cm.SetPose(math32.Vec3(float32(i), 0, -10), math32.Vec3(0.1*float32(i), 0, 1))
		})
		g.Go(func() error {
			view, _, _ := cm.Matrices()
			assert.True(t, view.IsFinite())
			_, err := ViewMatrix(math32.Vec3(float32(i), 1, 2), math32.Vector3X)
			return err
		})
	}
	require.NoError(t, g.Wait())
}
