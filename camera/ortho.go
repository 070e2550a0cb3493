// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"fmt"

	"cogentcore.org/glcam/math32"
)

// Clipping plane distances along the camera forward axis, in world units.
const (
	NearClip float32 = 1e-6
	FarClip  float32 = 1e5
)

// OrthoVolume returns the camera-space box that [OrthoProjection] maps
// onto the clip cube: viewHeight tall, viewHeight*aspect wide, centered
// on the forward axis, from [NearClip] to [FarClip] in depth.
// aspect is width / height. It returns [ErrInvalidInput] if viewHeight
// or aspect is not a positive finite number.
func OrthoVolume(viewHeight, aspect float32) (math32.Box3, error) {
	if !(viewHeight > 0) || !(aspect > 0) || !math32.IsFinite(viewHeight) || !math32.IsFinite(aspect) {
		return math32.Box3{}, fmt.Errorf("%w: view height %v and aspect ratio %v must be positive", ErrInvalidInput, viewHeight, aspect)
	}
	hh := viewHeight / 2
	hw := hh * aspect
	if !(hw > 0) || !math32.IsFinite(hw) {
		return math32.Box3{}, fmt.Errorf("%w: view width %v*%v is out of range", ErrInvalidInput, viewHeight, aspect)
	}
	return math32.B3(-hw, -hh, NearClip, hw, hh, FarClip), nil
}

// OrthoProjection returns the orthographic projection for a view of the
// given height and aspect ratio (width / height). It maps [OrthoVolume]
// onto the OpenGL clip cube [-1, 1]^3, with [NearClip] at z = -1 and
// [FarClip] at z = +1. w is left at 1, so no perspective division occurs.
func OrthoProjection(viewHeight, aspect float32) (math32.Matrix4, error) {
	vol, err := OrthoVolume(viewHeight, aspect)
	if err != nil {
		return math32.Identity4(), err
	}
	return math32.Matrix4Orthographic(vol.Min.X, vol.Max.X, vol.Min.Y, vol.Max.Y, vol.Min.Z, vol.Max.Z), nil
}
