// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/glcam/camera"
	"cogentcore.org/glcam/math32"
)

// TriangleVertices is the demo triangle, in the z = 0 plane.
var TriangleVertices = math32.NewTriangle(
	math32.Vec3(-0.5, -0.5, 0),
	math32.Vec3(0.5, -0.5, 0),
	math32.Vec3(0, 0.5, 0),
)

// Frame is the state of the demo application: the device, the compiled
// shader program, the uploaded triangle, and the camera it is viewed
// through. It is owned by the application loop and passed explicitly.
type Frame struct {

	// Device draws the frame.
	Device Device

	// Camera supplies the view and projection matrices.
	Camera *camera.Camera

	// Model places the triangle in world coordinates.
	Model math32.Matrix4

	program Program
	buffer  Buffer
}

// NewFrame compiles the [BasicShader] pair on the device and uploads
// [TriangleVertices], returning a frame viewed through cam.
func NewFrame(dev Device, cam *camera.Camera) (*Frame, error) {
	vs, fs, err := LoadShaderPair(Shaders, BasicShader)
	if err != nil {
		return nil, err
	}
	prog, err := dev.CompileProgram(vs, fs)
	if err != nil {
		return nil, err
	}
	buf, err := dev.NewVertexBuffer(TriangleVertices.ToArray(), 3)
	if err != nil {
		return nil, err
	}
	return &Frame{Device: dev, Camera: cam, Model: math32.Identity4(), program: prog, buffer: buf}, nil
}

// MVP returns the combined projection * view * model matrix.
func (fr *Frame) MVP() math32.Matrix4 {
	_, _, vp := fr.Camera.Matrices()
	return vp.Mul(&fr.Model)
}

// Render draws the triangle once and returns the clip-space vertices.
func (fr *Frame) Render() ([]math32.Vector4, error) {
	return fr.Device.Draw(fr.program, fr.buffer, fr.MVP())
}

// Close releases the device.
func (fr *Frame) Close() {
	fr.Device.Release()
}
