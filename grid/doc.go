// SPDX-License-Identifier: MIT

// Package grid provides HeightField, a dense two-dimensional grid of height
// samples, together with its query and interpolation algorithms.
//
// What:
//
//   - HeightField stores SizeI×SizeJ vertices in a flat row-major buffer;
//     the vertex at (j, i) lives at offset i*SizeJ + j (I = rows, J = columns).
//   - Point access: Data, MutableData, Z, SetZ.
//   - Range reduction: MinZRange/MaxZRange over a sub-rectangle, MinZ/MaxZ
//     over the whole grid.
//   - InterpolatedZ reconstructs a height at fractional (j, i) over a
//     triangulated grid of step×step quads.
//
// Construction paths:
//
//   - New:             zero-filled grid (or the empty grid for sizes <= 0).
//   - NewFromHeights:  copy of a flat [i][j] float32 array.
//   - NewFromVertices: adopts a caller's []Vertex without copying.
//   - NewFromBytes:    8-bit samples scaled by zScale/255.
//
// Errors:
//
//   - Accessors never panic: every coordinate is bounds-checked and a
//     violation returns ErrOutOfRange wrapped with the method and indices.
//   - Constructors return ErrInvalidDimensions, ErrDimensionMismatch,
//     ErrNilInput, ErrNaNInf or ErrAllocation; no grid is returned on error.
//
// Concurrency:
//
//   - A HeightField has no internal locking. Concurrent readers are safe;
//     writers (MutableData, SetZ) need external synchronisation.
//
// Complexity:
//
//   - Data/Z/SetZ/InterpolatedZ: O(1).
//   - MinZRange/MaxZRange: O(sj×si). MinZ/MaxZ/MinMaxZ: O(SizeI×SizeJ).
package grid
