// SPDX-License-Identifier: MIT

// Package grid - construction paths.
//
// Purpose:
//   - One constructor per data source: none (zero-filled), float heights,
//     an adopted []Vertex, scaled 8-bit samples.
//   - All sizing goes through ElementCount so oversize requests fail with
//     ErrAllocation before anything is allocated.
//   - No constructor returns a partially filled grid.

package grid

import "math"

// byteScale is the largest 8-bit sample; NewFromBytes maps it to zScale.
const byteScale = 255

// New creates a sizeI×sizeJ grid with every height set to 0.
//
// Behavior highlights:
//   - sizeI <= 0 or sizeJ <= 0 yields the empty grid (SizeI()==SizeJ()==0,
//     no storage). This is not an error.
//
// Errors:
//   - ErrAllocation if the requested size exceeds MaxElements.
//
// Complexity: O(sizeI×sizeJ) zeroing.
func New(sizeI, sizeJ int) (*HeightField, error) {
	if sizeI <= 0 || sizeJ <= 0 {
		return &HeightField{}, nil
	}
	n, err := ElementCount(sizeI, sizeJ)
	if err != nil {
		return nil, ctorErrorf("New", sizeI, sizeJ, err)
	}

	return &HeightField{sizeI: sizeI, sizeJ: sizeJ, data: make([]Vertex, n)}, nil
}

// NewFromHeights creates a grid from a flat array of heights ordered
// heights[i*sizeJ + j], copying every value.
//
// Behavior highlights:
//   - len(heights)==0 with non-positive sizes yields the empty grid, the
//     same as New with no data.
//
// Errors:
//   - ErrInvalidDimensions if heights are given but a size is <= 0.
//   - ErrDimensionMismatch if len(heights) != sizeI*sizeJ.
//   - ErrAllocation if the size exceeds MaxElements.
//
// Complexity: O(sizeI×sizeJ).
func NewFromHeights(sizeI, sizeJ int, heights []float32) (*HeightField, error) {
	if len(heights) == 0 && (sizeI <= 0 || sizeJ <= 0) {
		return &HeightField{}, nil
	}
	n, err := validateLen(sizeI, sizeJ, len(heights))
	if err != nil {
		return nil, ctorErrorf("NewFromHeights", sizeI, sizeJ, err)
	}

	data := make([]Vertex, n)
	for k, z := range heights {
		data[k].Z = z
	}

	return &HeightField{sizeI: sizeI, sizeJ: sizeJ, data: data}, nil
}

// NewFromVertices creates a grid that takes ownership of *data.
//
// Ownership contract:
//   - On success the grid uses the caller's backing array as its storage
//     (no copy) and *data is set to nil; the caller must not keep or use
//     other references to that array.
//   - On error *data is left untouched.
//
// Errors:
//   - ErrNilInput if data is nil.
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrAllocation as for
//     NewFromHeights.
//
// Complexity: O(1).
func NewFromVertices(sizeI, sizeJ int, data *[]Vertex) (*HeightField, error) {
	if data == nil {
		return nil, ctorErrorf("NewFromVertices", sizeI, sizeJ, ErrNilInput)
	}
	if _, err := validateLen(sizeI, sizeJ, len(*data)); err != nil {
		return nil, ctorErrorf("NewFromVertices", sizeI, sizeJ, err)
	}

	hf := &HeightField{sizeI: sizeI, sizeJ: sizeJ, data: *data}
	*data = nil

	return hf, nil
}

// NewFromBytes creates a grid from 8-bit samples ordered samples[i*sizeJ + j].
// Each sample b becomes the height b * zScale / 255, so stored heights lie
// in [0, zScale]; 0 maps to exactly 0 and 255 to exactly zScale.
//
// Errors:
//   - ErrNilInput if samples is nil.
//   - ErrNaNInf if zScale is NaN or ±Inf.
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrAllocation.
//
// Complexity: O(sizeI×sizeJ).
func NewFromBytes(sizeI, sizeJ int, zScale float32, samples []byte) (*HeightField, error) {
	if samples == nil {
		return nil, ctorErrorf("NewFromBytes", sizeI, sizeJ, ErrNilInput)
	}
	if math.IsNaN(float64(zScale)) || math.IsInf(float64(zScale), 0) {
		return nil, ctorErrorf("NewFromBytes", sizeI, sizeJ, ErrNaNInf)
	}
	n, err := validateLen(sizeI, sizeJ, len(samples))
	if err != nil {
		return nil, ctorErrorf("NewFromBytes", sizeI, sizeJ, err)
	}

	table := byteHeights(zScale)
	data := make([]Vertex, n)
	for k, b := range samples {
		data[k].Z = table[b]
	}

	return &HeightField{sizeI: sizeI, sizeJ: sizeJ, data: data}, nil
}

// byteHeights precomputes the height of every 8-bit sample. The product is
// formed in float64, where b*zScale is exact, and rounded once to float32.
func byteHeights(zScale float32) *[byteScale + 1]float32 {
	var table [byteScale + 1]float32
	for b := range table {
		table[b] = float32(float64(b) * float64(zScale) / byteScale)
	}

	return &table
}
