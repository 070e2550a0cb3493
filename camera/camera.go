// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"fmt"
	"sync"

	"cogentcore.org/glcam/base/errors"
	"cogentcore.org/glcam/math32"
)

// Camera holds the parameters of an orthographic camera along with the
// matrices derived from them. Call [Camera.UpdateMatrix] after changing
// the parameters directly. The setter methods validate the new value
// first, and only store it along with the updated matrices if it is valid.
type Camera struct {

	// Pos is the camera position in world coordinates.
	Pos math32.Vector3

	// Facing is the direction the camera points; it need not be normalized.
	Facing math32.Vector3

	// ViewHeight is the height of the visible region in world units.
	ViewHeight float32

	// Aspect is the aspect ratio (width / height) of the visible region.
	Aspect float32

	// View transforms world coordinates into camera coordinates.
	View math32.Matrix4

	// Projection transforms camera coordinates into clip coordinates.
	Projection math32.Matrix4

	// ViewProjection is Projection * View.
	ViewProjection math32.Matrix4

	// Mu protects the camera data
	Mu sync.RWMutex
}

// NewCamera returns a new camera with [Camera.Defaults] applied
// and its matrices computed.
func NewCamera() *Camera {
	cm := &Camera{}
	cm.Defaults()
	errors.Log(cm.UpdateMatrix())
	return cm
}

// Defaults sets the default camera parameters: positioned at 0,0,-10,
// looking along +Z at the origin, with a 2 unit tall square view.
func (cm *Camera) Defaults() {
	cm.Mu.Lock()
	defer cm.Mu.Unlock()
	cm.Pos = math32.Vec3(0, 0, -10)
	cm.Facing = math32.Vector3Z
	cm.ViewHeight = 2
	cm.Aspect = 1
}

// UpdateMatrix updates the view and projection matrices from the
// current parameters. If the parameters are invalid, the previous
// matrices are kept and the error is returned.
func (cm *Camera) UpdateMatrix() error {
	cm.Mu.Lock()
	defer cm.Mu.Unlock()
	return cm.set(cm.Pos, cm.Facing, cm.ViewHeight, cm.Aspect)
}

// set computes the matrices for the given parameters and, only if they
// are valid, stores both the parameters and the matrices.
// Must be called under the Mu lock.
func (cm *Camera) set(pos, facing math32.Vector3, height, aspect float32) error {
	view, err := ViewMatrix(pos, facing)
	if err != nil {
		return err
	}
	prjn, err := OrthoProjection(height, aspect)
	if err != nil {
		return err
	}
	cm.Pos = pos
	cm.Facing = facing
	cm.ViewHeight = height
	cm.Aspect = aspect
	cm.View = view
	cm.Projection = prjn
	cm.ViewProjection = prjn.Mul(&view)
	return nil
}

// SetPose sets the position and facing direction, and updates the matrices.
// Invalid values leave the camera unchanged.
func (cm *Camera) SetPose(pos, facing math32.Vector3) error {
	cm.Mu.Lock()
	defer cm.Mu.Unlock()
	return cm.set(pos, facing, cm.ViewHeight, cm.Aspect)
}

// LookAt points the camera at the given target location, and updates the matrices.
// A target at the camera position leaves the camera unchanged.
func (cm *Camera) LookAt(target math32.Vector3) error {
	cm.Mu.Lock()
	defer cm.Mu.Unlock()
	return cm.set(cm.Pos, target.Sub(cm.Pos), cm.ViewHeight, cm.Aspect)
}

// SetViewHeight sets the height of the visible region, and updates the matrices.
func (cm *Camera) SetViewHeight(height float32) error {
	cm.Mu.Lock()
	defer cm.Mu.Unlock()
	return cm.set(cm.Pos, cm.Facing, height, cm.Aspect)
}

// SetAspectSize sets the aspect ratio from the given framebuffer size
// in pixels, and updates the matrices.
func (cm *Camera) SetAspectSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: framebuffer size %dx%d", ErrInvalidInput, width, height)
	}
	cm.Mu.Lock()
	defer cm.Mu.Unlock()
	return cm.set(cm.Pos, cm.Facing, cm.ViewHeight, float32(width)/float32(height))
}

// Matrices returns a consistent snapshot of the current view,
// projection, and combined view-projection matrices.
func (cm *Camera) Matrices() (view, projection, viewProjection math32.Matrix4) {
	cm.Mu.RLock()
	defer cm.Mu.RUnlock()
	return cm.View, cm.Projection, cm.ViewProjection
}
