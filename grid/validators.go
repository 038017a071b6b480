// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Single place for shape, length and coordinate checks.
//   - Return plain sentinels; call sites attach method context.

package grid

// ElementCount returns sizeI*sizeJ for a grid that must hold data.
//
// Errors:
//   - ErrInvalidDimensions if either size is <= 0.
//   - ErrAllocation if the product overflows or exceeds MaxElements.
//
// Complexity: O(1).
func ElementCount(sizeI, sizeJ int) (int, error) {
	if sizeI <= 0 || sizeJ <= 0 {
		return 0, ErrInvalidDimensions
	}
	// Division form avoids int overflow in the product.
	if sizeI > MaxElements/sizeJ {
		return 0, ErrAllocation
	}

	return sizeI * sizeJ, nil
}

// validateLen checks that a data slice of length n fits a sizeI×sizeJ grid
// and returns the element count.
func validateLen(sizeI, sizeJ, n int) (int, error) {
	count, err := ElementCount(sizeI, sizeJ)
	if err != nil {
		return 0, err
	}
	if n != count {
		return 0, ErrDimensionMismatch
	}

	return count, nil
}

// inBounds reports whether (j, i) addresses a stored vertex.
func (hf *HeightField) inBounds(j, i int) bool {
	return j >= 0 && j < hf.sizeJ && i >= 0 && i < hf.sizeI
}

// indexOf maps (j, i) to its flat offset or returns a wrapped ErrOutOfRange.
func (hf *HeightField) indexOf(method string, j, i int) (int, error) {
	if !hf.inBounds(j, i) {
		return 0, fieldErrorf(method, j, i, ErrOutOfRange)
	}

	return i*hf.sizeJ + j, nil
}

// rangeInBounds reports whether every cell of the sj×si window anchored at
// (j, i) is stored. sj and si must be positive.
func (hf *HeightField) rangeInBounds(j, i, sj, si int) bool {
	return j >= 0 && i >= 0 && sj <= hf.sizeJ-j && si <= hf.sizeI-i
}
