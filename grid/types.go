// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
)

// MaxElements caps the number of vertices a single HeightField may hold.
// Requests above it fail with ErrAllocation instead of aborting the process.
const MaxElements = 1 << 28

// Seeds used by the range reductions. An empty range returns them unchanged.
const (
	MinZSeed = float32(math.MaxFloat32)  // MinZRange result for an empty range
	MaxZSeed = float32(-math.MaxFloat32) // MaxZRange result for an empty range
)

// Method tags used in error wrappers.
const (
	opData          = "Data"
	opMutableData   = "MutableData"
	opZ             = "Z"
	opSetZ          = "SetZ"
	opMinZRange     = "MinZRange"
	opMaxZRange     = "MaxZRange"
	opInterpolatedZ = "InterpolatedZ"
)

// Vertex is a single element of a HeightField.
type Vertex struct {
	Z float32 // height of the vertex
}

// HeightField is a dense grid of vertices.
//   - sizeI, sizeJ are fixed at construction (both 0 for the empty grid).
//   - data holds sizeI*sizeJ vertices; (j, i) is at offset i*sizeJ + j.
type HeightField struct {
	sizeI, sizeJ int      // extents along I (rows) and J (columns)
	data         []Vertex // row-major storage, len == sizeI*sizeJ
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*HeightField)(nil)
