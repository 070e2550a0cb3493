// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"bytes"
	"fmt"
	"log/slog"
	"regexp"
	"sync"

	"cogentcore.org/glcam/math32"
)

// mainEntry matches the entry point every GLSL stage must declare.
var mainEntry = regexp.MustCompile(`\bvoid\s+main\s*\(`)

// Software is a headless [Device] that runs the vertex stage on the CPU:
// each vertex is read as a point and multiplied by the mvp matrix.
// Rasterization is not performed. It is safe for concurrent use.
type Software struct {
	mu       sync.Mutex
	next     uint32
	programs map[Program]struct{}
	buffers  map[Buffer]*softBuffer

	// draws is the number of successful Draw calls.
	draws int
}

var _ Device = (*Software)(nil)

type softBuffer struct {
	data       []float32
	components int
}

// NewSoftware returns a new software device.
func NewSoftware() *Software {
	return &Software{
		programs: map[Program]struct{}{},
		buffers:  map[Buffer]*softBuffer{},
	}
}

// checkStage does the subset of compilation that does not need a driver.
func checkStage(stage string, src []byte) error {
	if len(bytes.TrimSpace(src)) == 0 {
		return fmt.Errorf("%w: %s shader is empty", ErrCompile, stage)
	}
	if !mainEntry.Match(src) {
		return fmt.Errorf("%w: %s shader has no main function", ErrCompile, stage)
	}
	return nil
}

func (sw *Software) CompileProgram(vertex, fragment []byte) (Program, error) {
	if err := checkStage("vertex", vertex); err != nil {
		return 0, err
	}
	if err := checkStage("fragment", fragment); err != nil {
		return 0, err
	}
	sw.mu.Lock()
	defer sw.mu.Unlock()
	sw.next++
	p := Program(sw.next)
	sw.programs[p] = struct{}{}
	slog.Debug("gpu: compiled program", "program", p, "vertex", len(vertex), "fragment", len(fragment))
	return p, nil
}

func (sw *Software) NewVertexBuffer(data []float32, components int) (Buffer, error) {
	if components < 1 || components > 4 {
		return 0, fmt.Errorf("%w: %d components per vertex", ErrBadBuffer, components)
	}
	if len(data) == 0 || len(data)%components != 0 {
		return 0, fmt.Errorf("%w: %d floats is not a whole number of %d-component vertices", ErrBadBuffer, len(data), components)
	}
	sw.mu.Lock()
	defer sw.mu.Unlock()
	sw.next++
	b := Buffer(sw.next)
	sw.buffers[b] = &softBuffer{data: append([]float32(nil), data...), components: components}
	slog.Debug("gpu: uploaded vertex buffer", "buffer", b, "vertices", len(data)/components)
	return b, nil
}

func (sw *Software) Draw(p Program, b Buffer, mvp math32.Matrix4) ([]math32.Vector4, error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if _, ok := sw.programs[p]; !ok {
		return nil, fmt.Errorf("%w: program %d", ErrUnknownHandle, p)
	}
	buf, ok := sw.buffers[b]
	if !ok {
		return nil, fmt.Errorf("%w: buffer %d", ErrUnknownHandle, b)
	}
	n := len(buf.data) / buf.components
	clip := make([]math32.Vector4, n)
	for i := range n {
		// missing attribute components default to 0, 0, 0, 1 as in OpenGL
		attr := [4]float32{0, 0, 0, 1}
		copy(attr[:], buf.data[i*buf.components:(i+1)*buf.components])
		var v math32.Vector4
		v.FromSlice(attr[:], 0)
		clip[i] = v.MulMatrix4(&mvp)
	}
	sw.draws++
	slog.Debug("gpu: draw", "program", p, "buffer", b, "vertices", n)
	return clip, nil
}

// Draws returns the number of successful draws so far.
func (sw *Software) Draws() int {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.draws
}

func (sw *Software) Release() {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	clear(sw.programs)
	clear(sw.buffers)
}
