// SPDX-License-Identifier: MIT

// Package textio: functional options for Write and Read.
//
// Option constructors panic on nonsensical values (programmer error);
// Write and Read themselves only return errors.

package textio

import "github.com/katalvlaran/heightfield/grid"

// DefaultPrecision formats each height with the fewest digits that parse
// back to the same float32.
const DefaultPrecision = -1

// DefaultMaxElements is the largest grid Read will allocate by default.
const DefaultMaxElements = grid.MaxElements

const (
	panicPrecisionInvalid   = "textio: WithPrecision: precision must be >= -1"
	panicMaxElementsInvalid = "textio: WithMaxElements: n must be in [1, grid.MaxElements]"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	precision   int // strconv 'g' precision for Write
	maxElements int // allocation guard for Read
}

// WithPrecision sets the number of significant digits Write emits per
// height. -1 (the default) is the shortest exact representation; smaller
// values trade exact round-trips for shorter files.
func WithPrecision(p int) Option {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithMaxElements caps the sizeI*sizeJ a header may declare before Read
// refuses it with grid.ErrAllocation. Use it for untrusted input.
func WithMaxElements(n int) Option {
	if n < 1 || n > grid.MaxElements {
		panic(panicMaxElementsInvalid)
	}

	return func(o *Options) { o.maxElements = n }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		precision:   DefaultPrecision,
		maxElements: DefaultMaxElements,
	}
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
