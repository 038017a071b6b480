// SPDX-License-Identifier: MIT

// Package generate: functional options for the noise generators.
//
// Option constructors panic on nonsensical values (programmer error).

package generate

import "math"

// Noise defaults. Alpha, beta and octaves give terrain-like relief.
const (
	DefaultSeed      int64   = 1
	DefaultFrequency float64 = 0.05
	DefaultAlpha     float64 = 2
	DefaultBeta      float64 = 2
	DefaultOctaves   int32   = 3
)

const (
	panicFrequencyInvalid = "generate: WithFrequency: frequency must be finite and > 0"
	panicAlphaInvalid     = "generate: WithAlpha: alpha must be finite and > 0"
	panicBetaInvalid      = "generate: WithBeta: beta must be finite and > 0"
	panicOctavesInvalid   = "generate: WithOctaves: octaves must be >= 1"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	seed      int64
	frequency float64 // noise-space distance between neighbouring vertices
	alpha     float64 // amplitude divisor per octave
	beta      float64 // frequency multiplier per octave
	octaves   int32
}

// WithSeed selects the noise permutation. Equal seeds give equal fields.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithFrequency sets the noise-space spacing of vertices. Larger values
// give rougher terrain.
func WithFrequency(f float64) Option {
	if !positiveFinite(f) {
		panic(panicFrequencyInvalid)
	}

	return func(o *Options) { o.frequency = f }
}

// WithAlpha sets how much each octave's amplitude is divided by.
func WithAlpha(alpha float64) Option {
	if !positiveFinite(alpha) {
		panic(panicAlphaInvalid)
	}

	return func(o *Options) { o.alpha = alpha }
}

// WithBeta sets how much each octave's frequency is multiplied by.
func WithBeta(beta float64) Option {
	if !positiveFinite(beta) {
		panic(panicBetaInvalid)
	}

	return func(o *Options) { o.beta = beta }
}

// WithOctaves sets the number of summed noise layers.
func WithOctaves(n int32) Option {
	if n < 1 {
		panic(panicOctavesInvalid)
	}

	return func(o *Options) { o.octaves = n }
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		seed:      DefaultSeed,
		frequency: DefaultFrequency,
		alpha:     DefaultAlpha,
		beta:      DefaultBeta,
		octaves:   DefaultOctaves,
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
