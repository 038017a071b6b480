// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/heightfield/grid"
	"github.com/katalvlaran/heightfield/imageio"
	"github.com/katalvlaran/heightfield/textio"
)

// textExt marks a whitespace-delimited text dump; anything else is an image.
const textExt = ".txt"

func isText(path string) bool {
	return strings.EqualFold(filepath.Ext(path), textExt)
}

// loadField reads a text dump or an image, picked by extension.
func loadField(path string, zScale float32, opts ...imageio.Option) (*grid.HeightField, error) {
	if !isText(path) {
		return imageio.Load(path, zScale, opts...)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hf, err := textio.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return hf, nil
}

// saveField writes hf as a text dump or an image, picked by extension.
func saveField(path string, hf *grid.HeightField, zScale float32, opts ...imageio.Option) error {
	if !isText(path) {
		return imageio.Save(path, hf, zScale, opts...)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = textio.Write(f, hf); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}
