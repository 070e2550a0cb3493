// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox reads configuration objects through a pluggable [Decoder],
// from files found on a list of search paths, from an [fs.FS], or from
// memory. Encoding formats live in subpackages such as tomlx.
package iox

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Decoder is an interface for standard decoder types
type Decoder interface {
	// Decode decodes from io.Reader specified at creation
	Decode(v any) error
}

// DecoderFunc is a function that creates a new Decoder for given reader
type DecoderFunc func(r io.Reader) Decoder

// FindFile returns the first existing file among filename itself and
// filename joined to each of the given directories, in order.
// Absolute filenames are never joined. If no file exists, the
// returned error wraps [fs.ErrNotExist].
func FindFile(filename string, paths ...string) (string, error) {
	cands := []string{filename}
	if !filepath.IsAbs(filename) {
		for _, p := range paths {
			cands = append(cands, filepath.Join(p, filename))
		}
	}
	for _, c := range cands {
		if st, err := os.Stat(c); err == nil && !st.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("iox: %q not found on paths %v: %w", filename, paths, fs.ErrNotExist)
}

// Open reads the given object from the given filename using the given [DecoderFunc].
// Errors are annotated with the filename.
func Open(v any, filename string, f DecoderFunc) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := Read(v, bufio.NewReader(fp), f); err != nil {
		return fmt.Errorf("iox: reading %q: %w", filename, err)
	}
	return nil
}

// OpenPaths reads the given object from the first file found by
// [FindFile] for filename and paths, using the given [DecoderFunc].
// It returns the name of the file that was read.
func OpenPaths(v any, filename string, paths []string, f DecoderFunc) (string, error) {
	found, err := FindFile(filename, paths...)
	if err != nil {
		return "", err
	}
	return found, Open(v, found, f)
}

// OpenFS reads the given object from the given filename using the given [DecoderFunc],
// using the given [fs.FS] filesystem (e.g., for embed files)
func OpenFS(v any, fsys fs.FS, filename string, f DecoderFunc) error {
	fp, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := Read(v, bufio.NewReader(fp), f); err != nil {
		return fmt.Errorf("iox: reading %q: %w", filename, err)
	}
	return nil
}

// Read reads the given object from the given reader,
// using the given [DecoderFunc]
func Read(v any, reader io.Reader, f DecoderFunc) error {
	return f(reader).Decode(v)
}

// ReadBytes reads the given object from the given bytes,
// using the given [DecoderFunc]
func ReadBytes(v any, data []byte, f DecoderFunc) error {
	return Read(v, bytes.NewReader(data), f)
}
