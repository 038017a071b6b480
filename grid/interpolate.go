// SPDX-License-Identifier: MIT

// Package grid - triangulated bilinear interpolation.
//
// Every step×step quad of the grid is split into two triangles by the
// diagonal from its lower-left corner (j0, i0) to its upper-right corner
// (j0+step, i0+step):
//
//	(j0,i0+step)     (j0+step,i0+step)
//	+---------------+
//	|             / |
//	|   dj<=di  /   |
//	|         /     |
//	|       /       |
//	|     /  dj>di  |
//	|   /           |
//	+---------------+
//	(j0,i0)          (j0+step,i0)
//
// The height is the base corner plus one correction per edge walked to reach
// the point. A correction whose far corner lies outside the grid is omitted
// (not clamped, not wrapped), so points on the last row or column use only
// the in-range terms.

package grid

import "math"

// DefaultStep is the quad size for InterpolatedZUnit.
const DefaultStep = 1

// InterpolatedZ returns the height at the fractional point (j, i) over a
// triangulated grid of step×step quads whose corners are multiples of step.
//
// Implementation:
//   - Stage 1: validate step, emptiness and the query point.
//   - Stage 2: split j/step and i/step into integral corner (j0, i0) and
//     fractional offsets dj, di in [0, 1).
//   - Stage 3: dj > di walks J then I; otherwise I then J. Each walk stops at
//     the first edge whose far corner is outside the grid.
//
// Errors:
//   - ErrInvalidStep if step < 1.
//   - ErrEmptyGrid if the grid has no vertices.
//   - ErrOutOfRange unless 0 <= j <= SizeJ-1 and 0 <= i <= SizeI-1 (NaN fails).
//
// Complexity: O(1).
//
// Notes:
//   - Arithmetic is float32 throughout. Each product is converted before it
//     is added so the compiler cannot fuse it into an FMA; results are
//     identical on every platform.
func (hf *HeightField) InterpolatedZ(j, i float32, step int) (float32, error) {
	if step < 1 {
		return 0, pointErrorf(opInterpolatedZ, j, i, step, ErrInvalidStep)
	}
	if hf.IsEmpty() {
		return 0, pointErrorf(opInterpolatedZ, j, i, step, ErrEmptyGrid)
	}
	// Written as negated ranges so NaN is rejected too.
	if !(j >= 0 && j <= float32(hf.sizeJ-1)) || !(i >= 0 && i <= float32(hf.sizeI-1)) {
		return 0, pointErrorf(opInterpolatedZ, j, i, step, ErrOutOfRange)
	}

	s := float32(step)
	fj0, dj0 := modf32(j / s)
	fi0, di0 := modf32(i / s)
	j0 := int(fj0) * step
	i0 := int(fi0) * step

	z := hf.z(j0, i0)
	if dj0 > di0 {
		if j0+step < hf.sizeJ {
			z += float32((hf.z(j0+step, i0) - hf.z(j0, i0)) * dj0)
			if i0+step < hf.sizeI {
				z += float32((hf.z(j0+step, i0+step) - hf.z(j0+step, i0)) * di0)
			}
		}
	} else {
		if i0+step < hf.sizeI {
			z += float32((hf.z(j0, i0+step) - hf.z(j0, i0)) * di0)
			if j0+step < hf.sizeJ {
				z += float32((hf.z(j0+step, i0+step) - hf.z(j0, i0+step)) * dj0)
			}
		}
	}

	return z, nil
}

// InterpolatedZUnit is InterpolatedZ with step = DefaultStep.
func (hf *HeightField) InterpolatedZUnit(j, i float32) (float32, error) {
	return hf.InterpolatedZ(j, i, DefaultStep)
}

// modf32 splits f into integral and fractional parts, both with the sign of
// f. Widening to float64 is exact and so is the fractional part, so the
// result matches a float32 modf bit for bit.
func modf32(f float32) (ip, frac float32) {
	ipart, fpart := math.Modf(float64(f))

	return float32(ipart), float32(fpart)
}
