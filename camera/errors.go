// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import "cogentcore.org/glcam/base/errors"

// ErrInvalidInput is returned, wrapped with details, when camera parameters
// cannot produce a well-defined transform. Use [errors.Is] to test for it.
var ErrInvalidInput = errors.New("camera: invalid input")
