// SPDX-License-Identifier: MIT

// Package generate builds synthetic grid.HeightField values from Perlin
// noise. The fields are deterministic for a given seed, which makes them
// useful as reproducible fixtures and as CLI output.
//
// Vertex (j, i) samples the noise at (j*frequency, i*frequency); the noise
// value in [-1, 1] is mapped linearly onto [0, zScale] and clamped.
package generate
