// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iox

import (
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonDecoder(r io.Reader) Decoder {
	return json.NewDecoder(r)
}

type frames struct {
	Frames int
}

func TestFindFile(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(second, "cfg.json"), []byte(`{"Frames": 2}`), 0666))
	require.NoError(t, os.Mkdir(filepath.Join(first, "cfg.json"), 0777))

	found, err := FindFile("cfg.json", first, second)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, "cfg.json"), found)

	abs := filepath.Join(second, "cfg.json")
	found, err = FindFile(abs, first)
	require.NoError(t, err)
	assert.Equal(t, abs, found)

	_, err = FindFile("none.json", first, second)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	_, err = FindFile(filepath.Join(first, "none.json"), second)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOpenPaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cfg.json"), []byte(`{"Frames": 2}`), 0666))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{"Frames": "two"}`), 0666))

	var fr frames
	found, err := OpenPaths(&fr, "cfg.json", []string{dir}, jsonDecoder)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cfg.json"), found)
	assert.Equal(t, 2, fr.Frames)

	_, err = OpenPaths(&fr, "bad.json", []string{dir}, jsonDecoder)
	assert.ErrorContains(t, err, "bad.json")
}

func TestOpenFSAndReadBytes(t *testing.T) {
	fsys := fstest.MapFS{"cfg.json": {Data: []byte(`{"Frames": 3}`)}}
	var fr frames
	require.NoError(t, OpenFS(&fr, fsys, "cfg.json", jsonDecoder))
	assert.Equal(t, 3, fr.Frames)
	assert.ErrorIs(t, OpenFS(&fr, fsys, "missing.json", jsonDecoder), fs.ErrNotExist)

	require.NoError(t, ReadBytes(&fr, []byte(`{"Frames": 4}`), jsonDecoder))
	assert.Equal(t, 4, fr.Frames)
}
