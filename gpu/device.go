// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu is the rendering side of the camera transforms:
// a [Device] capability interface over a graphics binding, the
// shader pair loading, and the per-application [Frame] state
// that draws the demo triangle through the camera.
package gpu

import (
	"cogentcore.org/glcam/base/errors"
	"cogentcore.org/glcam/math32"
)

// Program is a handle to a compiled and linked shader program.
// The zero value is never a valid program.
type Program uint32

// Buffer is a handle to an uploaded vertex buffer.
// The zero value is never a valid buffer.
type Buffer uint32

var (
	// ErrCompile is returned when a shader stage fails to compile or link.
	ErrCompile = errors.New("gpu: shader compile failed")

	// ErrBadBuffer is returned for vertex data that does not
	// divide evenly into vertices.
	ErrBadBuffer = errors.New("gpu: bad vertex buffer")

	// ErrUnknownHandle is returned when a [Program] or [Buffer]
	// was not created by the device, or was already released.
	ErrUnknownHandle = errors.New("gpu: unknown handle")
)

// Device is implemented by each graphics binding. It owns all raw
// API handles; callers only see [Program] and [Buffer] values.
type Device interface {
	// CompileProgram compiles the vertex and fragment shader sources
	// and links them into a program.
	CompileProgram(vertex, fragment []byte) (Program, error)

	// NewVertexBuffer uploads the given vertex data, with the given
	// number of float32 components per vertex (1-4), as vertex attribute 0.
	NewVertexBuffer(data []float32, components int) (Buffer, error)

	// Draw draws the buffer as a triangle list with the program,
	// setting its mvp uniform. It returns the clip-space position of
	// each vertex, as computed by the vertex stage.
	Draw(p Program, b Buffer, mvp math32.Matrix4) ([]math32.Vector4, error)

	// Release frees all resources held by the device.
	Release()
}

// ClipToNDC returns the normalized device coordinates of the
// given clip-space positions, by perspective division.
func ClipToNDC(clip []math32.Vector4) []math32.Vector3 {
	ndc := make([]math32.Vector3, len(clip))
	for i, c := range clip {
		ndc[i] = c.PerspDiv()
	}
	return ndc
}
