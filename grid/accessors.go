// SPDX-License-Identifier: MIT

// Package grid - storage accessors.
//
// Purpose:
//   - Expose the immutable extents and bounds-checked vertex access.
//   - Data returns a copy (read-only view); MutableData returns a pointer
//     into the backing storage so heights can be rewritten in place.
//
// AI-Hints:
//   - Hot loops over the whole grid should use Vertices or the range
//     reductions rather than calling Z per cell.

package grid

import (
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// SizeI returns the number of vertices along the I axis (rows).
// Complexity: O(1).
func (hf *HeightField) SizeI() int {
	return hf.sizeI
}

// SizeJ returns the number of vertices along the J axis (columns).
// Complexity: O(1).
func (hf *HeightField) SizeJ() int {
	return hf.sizeJ
}

// Len returns the number of stored vertices (SizeI*SizeJ).
func (hf *HeightField) Len() int {
	return len(hf.data)
}

// IsEmpty reports whether the grid holds no vertices.
func (hf *HeightField) IsEmpty() bool {
	return len(hf.data) == 0
}

// Data returns a copy of the vertex at (j, i).
//
// Errors:
//   - ErrOutOfRange unless 0 <= j < SizeJ and 0 <= i < SizeI.
//
// Complexity: O(1).
func (hf *HeightField) Data(j, i int) (Vertex, error) {
	idx, err := hf.indexOf(opData, j, i)
	if err != nil {
		return Vertex{}, err
	}

	return hf.data[idx], nil
}

// MutableData returns a pointer to the stored vertex at (j, i). Writes
// through the pointer change the grid; the pointer stays valid for the
// lifetime of the grid since it is never resized.
//
// Errors:
//   - ErrOutOfRange unless 0 <= j < SizeJ and 0 <= i < SizeI.
//
// Complexity: O(1).
func (hf *HeightField) MutableData(j, i int) (*Vertex, error) {
	idx, err := hf.indexOf(opMutableData, j, i)
	if err != nil {
		return nil, err
	}

	return &hf.data[idx], nil
}

// Z returns the height at (j, i).
//
// Errors:
//   - ErrOutOfRange unless 0 <= j < SizeJ and 0 <= i < SizeI.
//
// Complexity: O(1).
func (hf *HeightField) Z(j, i int) (float32, error) {
	idx, err := hf.indexOf(opZ, j, i)
	if err != nil {
		return 0, err
	}

	return hf.data[idx].Z, nil
}

// SetZ rewrites the height at (j, i).
//
// Errors:
//   - ErrOutOfRange unless 0 <= j < SizeJ and 0 <= i < SizeI.
//
// Complexity: O(1).
func (hf *HeightField) SetZ(j, i int, z float32) error {
	idx, err := hf.indexOf(opSetZ, j, i)
	if err != nil {
		return err
	}
	hf.data[idx].Z = z

	return nil
}

// z reads (j, i) without a bounds check. Callers guarantee inBounds(j, i).
func (hf *HeightField) z(j, i int) float32 {
	return hf.data[i*hf.sizeJ+j].Z
}

// Vertices returns a copy of the flat row-major storage.
// Complexity: O(SizeI×SizeJ).
func (hf *HeightField) Vertices() []Vertex {
	if len(hf.data) == 0 {
		return nil
	}
	out := make([]Vertex, len(hf.data))
	copy(out, hf.data)

	return out
}

// Heights returns the stored heights as a flat row-major float32 slice, the
// inverse of NewFromHeights.
// Complexity: O(SizeI×SizeJ).
func (hf *HeightField) Heights() []float32 {
	if len(hf.data) == 0 {
		return nil
	}
	out := make([]float32, len(hf.data))
	for k, v := range hf.data {
		out[k] = v.Z
	}

	return out
}

// Clone returns a deep copy that shares no storage with hf.
// Complexity: O(SizeI×SizeJ).
func (hf *HeightField) Clone() *HeightField {
	return &HeightField{sizeI: hf.sizeI, sizeJ: hf.sizeJ, data: hf.Vertices()}
}

// String formats the grid one row (fixed i) per line: "[z00, z10, ...]\n".
// Complexity: O(SizeI×SizeJ).
func (hf *HeightField) String() string {
	var sb strings.Builder
	for i := 0; i < hf.sizeI; i++ {
		sb.WriteString(_fmtRowOpen)
		row := hf.data[i*hf.sizeJ : (i+1)*hf.sizeJ]
		for j, v := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(float64(v.Z), 'g', -1, 32))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
