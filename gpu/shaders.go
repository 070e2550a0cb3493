// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"embed"
	"fmt"
	"io/fs"
)

// Shaders holds the built-in shader sources.
//
//go:embed shaders/*.vs shaders/*.fs
var Shaders embed.FS

// BasicShader is the path of the built-in shader pair that
// transforms positions by the mvp uniform and fills a flat color.
const BasicShader = "shaders/basic"

// LoadShaderPair reads the vertex and fragment shader sources for the
// given base path from fsys, as base + ".vs" and base + ".fs".
func LoadShaderPair(fsys fs.FS, base string) (vertex, fragment []byte, err error) {
	vertex, err = fs.ReadFile(fsys, base+".vs")
	if err != nil {
		return nil, nil, fmt.Errorf("gpu: loading vertex shader: %w", err)
	}
	fragment, err = fs.ReadFile(fsys, base+".fs")
	if err != nil {
		return nil, nil, fmt.Errorf("gpu: loading fragment shader: %w", err)
	}
	return vertex, fragment, nil
}
