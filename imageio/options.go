// SPDX-License-Identifier: MIT

// Package imageio: functional options shared by the loaders and encoders.
//
// Option constructors panic on nonsensical values (programmer error).

package imageio

import "github.com/nfnt/resize"

// DefaultResampler is the interpolation used by WithResize.
const DefaultResampler = resize.Bilinear

const panicResizeInvalid = "imageio: WithResize: width and height cannot both be 0"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	topLeft   bool                         // keep image row order (row i=0 at the top)
	width     uint                         // resize target width, 0 keeps aspect ratio
	height    uint                         // resize target height, 0 keeps aspect ratio
	resample  bool                         // resize requested
	resampler resize.InterpolationFunction // resize kernel
}

// WithTopLeftOrigin maps the top image row to i=0 instead of the bottom one.
// Applies to both decoding and encoding.
func WithTopLeftOrigin() Option {
	return func(o *Options) { o.topLeft = true }
}

// WithResize resamples the 8-bit samples to width×height before the grid is
// built. A zero dimension is derived from the other one, keeping the aspect
// ratio.
func WithResize(width, height uint) Option {
	if width == 0 && height == 0 {
		panic(panicResizeInvalid)
	}

	return func(o *Options) {
		o.width, o.height = width, height
		o.resample = true
	}
}

// WithResampler selects the kernel used by WithResize
// (resize.NearestNeighbor, resize.Bilinear, resize.Lanczos3, ...).
func WithResampler(f resize.InterpolationFunction) Option {
	return func(o *Options) { o.resampler = f }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{resampler: DefaultResampler}
}

// gatherOptions applies opts over the defaults in order; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
