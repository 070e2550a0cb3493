// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/glcam/base/iox/tomlx"
	"cogentcore.org/glcam/camera"
	"cogentcore.org/glcam/math32"
)

// Config is the configuration for the glcam command,
// read from a TOML file.
type Config struct {

	// Camera is the camera that views the triangle.
	Camera CameraConfig

	// Frames is the number of frames to render.
	Frames int
}

// CameraConfig specifies the camera pose and the visible region.
type CameraConfig struct {

	// Position is the camera position in world coordinates.
	Position math32.Vector3

	// Facing is the direction the camera points.
	Facing math32.Vector3

	// ViewHeight is the height of the visible region in world units.
	ViewHeight float32

	// Width and Height are the framebuffer size in pixels,
	// which sets the aspect ratio.
	Width, Height int
}

// Defaults sets the default configuration: the triangle seen
// head on from 10 units away, in a 768x576 framebuffer.
func (cfg *Config) Defaults() {
	cfg.Camera.Position = math32.Vec3(0, 0, -10)
	cfg.Camera.Facing = math32.Vector3Z
	cfg.Camera.ViewHeight = 2
	cfg.Camera.Width = 768
	cfg.Camera.Height = 576
	cfg.Frames = 1
}

// ConfigPaths returns the directories searched for a relative
// configuration file name: the current directory, then the
// glcam directory in the user configuration directory.
func ConfigPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "glcam"))
	}
	return paths
}

// OpenConfig returns the default configuration, overridden by
// the given TOML file if filename is non-empty. A relative
// filename is looked up on [ConfigPaths].
func OpenConfig(filename string) (*Config, error) {
	cfg := &Config{}
	cfg.Defaults()
	if filename == "" {
		return cfg, nil
	}
	found, err := tomlx.OpenPaths(cfg, filename, ConfigPaths())
	if err != nil {
		return nil, err
	}
	slog.Debug("read config", "file", found)
	return cfg, nil
}

// Apply sets the camera from this configuration.
func (cc *CameraConfig) Apply(cam *camera.Camera) error {
	if err := cam.SetAspectSize(cc.Width, cc.Height); err != nil {
		return err
	}
	if err := cam.SetViewHeight(cc.ViewHeight); err != nil {
		return err
	}
	return cam.SetPose(cc.Position, cc.Facing)
}
