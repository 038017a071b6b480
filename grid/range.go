// SPDX-License-Identifier: MIT

// Package grid - range reductions.
//
// Purpose:
//   - MinZRange/MaxZRange: linear scan of the sj×si window anchored at (j, i).
//   - MinZ/MaxZ: the same reductions over (0, 0, SizeJ, SizeI).
//
// Behavior highlights:
//   - The accumulators start at MinZSeed/MaxZSeed (±math.MaxFloat32), so an
//     empty window (sj <= 0 or si <= 0) returns the seed.
//   - A window that leaves the grid fails with ErrOutOfRange before any cell
//     is read.

package grid

// MinZRange returns the lowest height in rows i..i+si-1, columns j..j+sj-1.
//
// Errors:
//   - ErrOutOfRange if the non-empty window is not fully inside the grid.
//
// Complexity: O(sj×si).
func (hf *HeightField) MinZRange(j, i, sj, si int) (float32, error) {
	minZ := MinZSeed
	if sj <= 0 || si <= 0 {
		return minZ, nil
	}
	if !hf.rangeInBounds(j, i, sj, si) {
		return 0, rangeErrorf(opMinZRange, j, i, sj, si)
	}

	for y := i; y < i+si; y++ {
		start := y*hf.sizeJ + j
		for _, v := range hf.data[start : start+sj] {
			if v.Z < minZ {
				minZ = v.Z
			}
		}
	}

	return minZ, nil
}

// MaxZRange returns the highest height in rows i..i+si-1, columns j..j+sj-1.
//
// Errors:
//   - ErrOutOfRange if the non-empty window is not fully inside the grid.
//
// Complexity: O(sj×si).
func (hf *HeightField) MaxZRange(j, i, sj, si int) (float32, error) {
	maxZ := MaxZSeed
	if sj <= 0 || si <= 0 {
		return maxZ, nil
	}
	if !hf.rangeInBounds(j, i, sj, si) {
		return 0, rangeErrorf(opMaxZRange, j, i, sj, si)
	}

	for y := i; y < i+si; y++ {
		start := y*hf.sizeJ + j
		for _, v := range hf.data[start : start+sj] {
			if v.Z > maxZ {
				maxZ = v.Z
			}
		}
	}

	return maxZ, nil
}

// MinZ returns the lowest height in the grid, or MinZSeed if it is empty.
// Complexity: O(SizeI×SizeJ).
func (hf *HeightField) MinZ() float32 {
	// The whole-grid window is always in bounds.
	minZ, _ := hf.MinZRange(0, 0, hf.sizeJ, hf.sizeI)

	return minZ
}

// MaxZ returns the highest height in the grid, or MaxZSeed if it is empty.
// Complexity: O(SizeI×SizeJ).
func (hf *HeightField) MaxZ() float32 {
	maxZ, _ := hf.MaxZRange(0, 0, hf.sizeJ, hf.sizeI)

	return maxZ
}

// MinMaxZ returns MinZ() and MaxZ() from a single pass over the storage.
// Complexity: O(SizeI×SizeJ).
func (hf *HeightField) MinMaxZ() (minZ, maxZ float32) {
	minZ, maxZ = MinZSeed, MaxZSeed
	for _, v := range hf.data {
		if v.Z < minZ {
			minZ = v.Z
		}
		if v.Z > maxZ {
			maxZ = v.Z
		}
	}

	return minZ, maxZ
}
