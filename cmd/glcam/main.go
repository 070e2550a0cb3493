// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glcam renders the demo triangle through a configurable
// orthographic camera on the software device, and prints the
// clip-space and normalized device coordinates of each vertex.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/glcam/base/errors"
	"cogentcore.org/glcam/base/logx"
	"cogentcore.org/glcam/camera"
	"cogentcore.org/glcam/gpu"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("glcam", flag.ContinueOnError)
	cfgFile := fs.String("config", "", "TOML configuration file")
	frames := fs.Int("frames", 0, "number of frames to render (overrides the config file)")
	vv := fs.Bool("vv", false, "very verbose (debug) logging")
	v := fs.Bool("v", false, "verbose (info) logging")
	q := fs.Bool("q", false, "quiet: only log errors")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logx.UserLevel = logx.LevelFromFlags(*vv, *v, *q)
	logx.SetDefaultLogger()

	cfg, err := OpenConfig(*cfgFile)
	if errors.Log(err) != nil {
		return err
	}
	if *frames > 0 {
		cfg.Frames = *frames
	}

	cam := camera.NewCamera()
	if err := cfg.Camera.Apply(cam); errors.Log(err) != nil {
		return err
	}

	sw := gpu.NewSoftware()
	fr, err := gpu.NewFrame(sw, cam)
	if errors.Log(err) != nil {
		return err
	}
	defer fr.Close()

	stTime := time.Now()
	for i := range cfg.Frames {
		clip, err := fr.Render()
		if errors.Log(err) != nil {
			return err
		}
		ndc := gpu.ClipToNDC(clip)
		for vi, c := range clip {
			fmt.Fprintf(out, "frame %d vertex %d clip %v ndc %v\n", i, vi, c, ndc[vi])
		}
	}
	slog.Info("rendered", "frames", cfg.Frames, "draws", sw.Draws(), "elapsed", time.Since(stTime))
	return nil
}
