// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"cogentcore.org/glcam/base/tolassert"
	"cogentcore.org/glcam/camera"
	"cogentcore.org/glcam/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = float32(1e-5)

func assertClip(t *testing.T, expected, actual math32.Vector4) {
	t.Helper()
	tolassert.EqualTol(t, expected.X, actual.X, tol)
	tolassert.EqualTol(t, expected.Y, actual.Y, tol)
	tolassert.EqualTol(t, expected.Z, actual.Z, tol)
	tolassert.EqualTol(t, expected.W, actual.W, tol)
}

// depth returns the clip z of a point at the given camera distance.
func depth(d float32) float32 {
	return 2*(d-camera.NearClip)/(camera.FarClip-camera.NearClip) - 1
}

func TestFrameRender(t *testing.T) {
	sw := NewSoftware()
	fr, err := NewFrame(sw, camera.NewCamera())
	require.NoError(t, err)
	defer fr.Close()

	clip, err := fr.Render()
	require.NoError(t, err)
	require.Len(t, clip, 3)
	z := depth(10)
	assertClip(t, math32.Vec4(-0.5, -0.5, z, 1), clip[0])
	assertClip(t, math32.Vec4(0.5, -0.5, z, 1), clip[1])
	assertClip(t, math32.Vec4(0, 0.5, z, 1), clip[2])
	assert.Equal(t, 1, sw.Draws())
}

func TestFrameModelAndCamera(t *testing.T) {
	fr, err := NewFrame(NewSoftware(), camera.NewCamera())
	require.NoError(t, err)

	fr.Model = math32.Matrix4Translation(math32.Vec3(1, 0, 5))
	require.NoError(t, fr.Camera.SetAspectSize(200, 100))
	clip, err := fr.Render()
	require.NoError(t, err)
	// the view is twice as wide, so x is halved after translating
	assertClip(t, math32.Vec4(0.25, -0.5, depth(15), 1), clip[0])
	assertClip(t, math32.Vec4(0.5, 0.5, depth(15), 1), clip[2])

	// looking back from the other side mirrors x
	fr.Model = math32.Identity4()
	require.NoError(t, fr.Camera.SetPose(math32.Vec3(0, 0, 10), math32.Vec3(0, 0, -1)))
	clip, err = fr.Render()
	require.NoError(t, err)
	assertClip(t, math32.Vec4(0.25, -0.5, depth(10), 1), clip[0])
	assertClip(t, math32.Vec4(-0.25, -0.5, depth(10), 1), clip[1])

	for _, ndc := range ClipToNDC(clip) {
		assert.True(t, math32.B3(-1, -1, -1, 1, 1, 1).ContainsPoint(ndc))
	}
}

type failDevice struct {
	*Software
	failCompile bool
}

func (fd *failDevice) CompileProgram(vertex, fragment []byte) (Program, error) {
	if fd.failCompile {
		return 0, ErrCompile
	}
	return fd.Software.CompileProgram(vertex, fragment)
}

func TestNewFrameErrors(t *testing.T) {
	fd := &failDevice{Software: NewSoftware(), failCompile: true}
	_, err := NewFrame(fd, camera.NewCamera())
	assert.ErrorIs(t, err, ErrCompile)
}
