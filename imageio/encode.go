// SPDX-License-Identifier: MIT

package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/heightfield/grid"
	"golang.org/x/image/bmp"
)

const (
	opToGray = "ToGray"
	opEncode = "Encode"
	opSave   = "Save"
)

// maxSample is the brightest 8-bit pixel; a height of zScale maps to it.
const maxSample = 255

// Format selects the container written by Encode.
type Format int

const (
	// FormatPNG writes an 8-bit greyscale PNG.
	FormatPNG Format = iota
	// FormatBMP writes an 8-bit BMP with a greyscale palette.
	FormatBMP
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return formatPNG
	case FormatBMP:
		return formatBMP
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the output Format from the file extension
// (.png or .bmp, case-insensitive).
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	default:
		return 0, fmt.Errorf("extension %q: %w", filepath.Ext(path), ErrUnsupportedFormat)
	}
}

// ToGray renders hf as a greyscale image: pixel = round(z / zScale * 255)
// limited to [0, 255] (NaN maps to 0). The image is SizeJ wide and SizeI
// tall with row i=0 at the bottom unless WithTopLeftOrigin is given. Resize
// options are ignored.
//
// Errors:
//   - ErrNilField if hf is nil.
//   - ErrInvalidScale if zScale is zero, NaN or ±Inf.
//   - grid.ErrEmptyGrid if hf has no vertices.
func ToGray(hf *grid.HeightField, zScale float32, opts ...Option) (*image.Gray, error) {
	if hf == nil {
		return nil, imageioErrorf(opToGray, ErrNilField)
	}
	if zScale == 0 || math.IsNaN(float64(zScale)) || math.IsInf(float64(zScale), 0) {
		return nil, imageioErrorf(opToGray, ErrInvalidScale)
	}
	if hf.IsEmpty() {
		return nil, imageioErrorf(opToGray, grid.ErrEmptyGrid)
	}
	o := gatherOptions(opts...)

	w, h := hf.SizeJ(), hf.SizeI()
	img := image.NewGray(image.Rect(0, 0, w, h))
	heights := hf.Heights()
	for i := 0; i < h; i++ {
		y := i
		if !o.topLeft {
			y = h - 1 - i
		}
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for j := range row {
			row[j] = toSample(heights[i*w+j], zScale)
		}
	}

	return img, nil
}

// Encode writes hf to w as an 8-bit greyscale image in the given format.
// The output decodes back through Decode with the same zScale and origin.
func Encode(w io.Writer, hf *grid.HeightField, zScale float32, format Format, opts ...Option) error {
	img, err := ToGray(hf, zScale, opts...)
	if err != nil {
		return imageioErrorf(opEncode, err)
	}

	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	default:
		err = fmt.Errorf("%v: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return imageioErrorf(opEncode, err)
	}

	return nil
}

// Save writes hf to path, choosing the format from the extension and
// creating missing parent directories.
func Save(path string, hf *grid.HeightField, zScale float32, opts ...Option) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return imageioErrorf(opSave, err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return imageioErrorf(opSave, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return imageioErrorf(opSave, err)
	}
	if err = Encode(file, hf, zScale, format, opts...); err != nil {
		file.Close()
		return imageioErrorf(opSave, err)
	}
	if err = file.Close(); err != nil {
		return imageioErrorf(opSave, err)
	}

	return nil
}

// toSample maps a height to the nearest 8-bit pixel value.
func toSample(z, zScale float32) uint8 {
	v := math.Round(float64(z) / float64(zScale) * maxSample)
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= maxSample:
		return maxSample
	default:
		return uint8(v)
	}
}
