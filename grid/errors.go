// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
//
// Every message is prefixed with "grid: ". Sentinels are returned wrapped
// with method context (fmt.Errorf("...: %w", ErrX)); callers match them
// with errors.Is, never by string.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a constructor that requires data
	// receives sizeI <= 0 or sizeJ <= 0.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrDimensionMismatch indicates that the supplied data length differs
	// from sizeI*sizeJ.
	ErrDimensionMismatch = errors.New("grid: data length does not match dimensions")

	// ErrNilInput indicates a nil data argument where data is mandatory.
	ErrNilInput = errors.New("grid: nil input")

	// ErrOutOfRange indicates a coordinate outside [0,SizeJ)×[0,SizeI), or an
	// interpolation point outside [0,SizeJ-1]×[0,SizeI-1].
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrInvalidStep indicates an interpolation step smaller than 1.
	ErrInvalidStep = errors.New("grid: step must be >= 1")

	// ErrEmptyGrid indicates a query that needs at least one vertex.
	ErrEmptyGrid = errors.New("grid: grid is empty")

	// ErrAllocation indicates that the backing storage for the requested
	// dimensions cannot be allocated (overflow or above MaxElements).
	ErrAllocation = errors.New("grid: cannot allocate storage")

	// ErrNaNInf signals a NaN or ±Inf scale factor.
	ErrNaNInf = errors.New("grid: NaN or Inf encountered")
)

// fieldErrorf wraps err with the HeightField method and the (j, i) indices
// that triggered it.
func fieldErrorf(method string, j, i int, err error) error {
	return fmt.Errorf("HeightField.%s(%d,%d): %w", method, j, i, err)
}

// ctorErrorf wraps err with the constructor name and requested dimensions.
func ctorErrorf(ctor string, sizeI, sizeJ int, err error) error {
	return fmt.Errorf("grid.%s(%d,%d): %w", ctor, sizeI, sizeJ, err)
}

// rangeErrorf reports a MinZRange/MaxZRange window that leaves the grid.
func rangeErrorf(method string, j, i, sj, si int) error {
	return fmt.Errorf("HeightField.%s(%d,%d,%d,%d): %w", method, j, i, sj, si, ErrOutOfRange)
}

// pointErrorf wraps err with the fractional query point of InterpolatedZ.
func pointErrorf(method string, j, i float32, step int, err error) error {
	return fmt.Errorf("HeightField.%s(%g,%g,%d): %w", method, j, i, step, err)
}
