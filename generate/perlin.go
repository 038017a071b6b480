// SPDX-License-Identifier: MIT

package generate

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/katalvlaran/heightfield/grid"
)

// Perlin returns a sizeI×sizeJ field of Perlin noise scaled to [0, zScale].
//
// Implementation:
//   - Stage 1: validate zScale and size the storage through
//     grid.ElementCount, so oversize requests fail before allocating.
//   - Stage 2: sample Noise2D row by row into a fresh []grid.Vertex.
//   - Stage 3: hand the slice to grid.NewFromVertices without copying.
//
// Non-positive sizes yield the empty grid, as grid.New does.
//
// Errors:
//   - ErrInvalidScale if zScale is NaN or ±Inf.
//   - grid.ErrAllocation if sizeI*sizeJ exceeds grid.MaxElements.
//
// Complexity: O(sizeI×sizeJ×octaves).
func Perlin(sizeI, sizeJ int, zScale float32, opts ...Option) (*grid.HeightField, error) {
	if math.IsNaN(float64(zScale)) || math.IsInf(float64(zScale), 0) {
		return nil, generateErrorf("Perlin", sizeI, sizeJ, ErrInvalidScale)
	}
	if sizeI <= 0 || sizeJ <= 0 {
		return grid.New(0, 0)
	}
	n, err := grid.ElementCount(sizeI, sizeJ)
	if err != nil {
		return nil, generateErrorf("Perlin", sizeI, sizeJ, err)
	}

	o := gatherOptions(opts...)
	noise := perlin.NewPerlin(o.alpha, o.beta, o.octaves, o.seed)

	data := make([]grid.Vertex, n)
	for i := 0; i < sizeI; i++ {
		y := float64(i) * o.frequency
		row := data[i*sizeJ : (i+1)*sizeJ]
		for j := range row {
			row[j].Z = scaleNoise(noise.Noise2D(float64(j)*o.frequency, y), zScale)
		}
	}

	hf, err := grid.NewFromVertices(sizeI, sizeJ, &data)
	if err != nil {
		return nil, generateErrorf("Perlin", sizeI, sizeJ, err)
	}

	return hf, nil
}

// scaleNoise maps v in [-1, 1] onto [0, zScale]; v outside that range is
// clamped first.
func scaleNoise(v float64, zScale float32) float32 {
	v = math.Max(-1, math.Min(1, v))

	return float32((v + 1) / 2 * float64(zScale))
}
