// SPDX-License-Identifier: MIT

package textio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/heightfield/grid"
)

const (
	opWrite     = "Write"
	opRead      = "Read"
	opMarshal   = "Marshal"
	opUnmarshal = "Unmarshal"
)

// readChunk caps the storage Read reserves before any height has arrived.
const readChunk = 1 << 16

// Write serialises hf to w: a "<sizeI> <sizeJ>" header line, then one line
// per row i holding z(j, i) for j in [0, sizeJ), each followed by a space.
//
// Errors:
//   - ErrNilField if hf is nil.
//   - The first error returned by w, wrapped.
//
// Complexity: O(SizeI×SizeJ).
func Write(w io.Writer, hf *grid.HeightField, opts ...Option) error {
	if hf == nil {
		return textioErrorf(opWrite, ErrNilField)
	}
	o := gatherOptions(opts...)

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)

	buf = strconv.AppendInt(buf, int64(hf.SizeI()), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(hf.SizeJ()), 10)
	buf = append(buf, '\n')
	if _, err := bw.Write(buf); err != nil {
		return textioErrorf(opWrite, err)
	}

	for i := 0; i < hf.SizeI(); i++ {
		for j := 0; j < hf.SizeJ(); j++ {
			z, err := hf.Z(j, i)
			if err != nil {
				return textioErrorf(opWrite, err)
			}
			buf = strconv.AppendFloat(buf[:0], float64(z), 'g', o.precision, 32)
			buf = append(buf, ' ')
			if _, err = bw.Write(buf); err != nil {
				return textioErrorf(opWrite, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return textioErrorf(opWrite, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return textioErrorf(opWrite, err)
	}

	return nil
}

// Read parses a grid written by Write (or any text with the same tokens
// separated by arbitrary whitespace). Only the header and the sizeI*sizeJ
// heights are interpreted; anything after them is ignored.
//
// Behavior highlights:
//   - A header with a zero size yields the empty grid.
//   - The declared size is checked against the allocation guard before any
//     storage is allocated.
//   - On error no grid is returned.
//
// Errors:
//   - ErrMalformed for a non-numeric token or a negative size.
//   - ErrTruncated if the input ends early.
//   - grid.ErrAllocation if sizeI*sizeJ exceeds the guard (WithMaxElements).
//   - Errors from r, wrapped.
//
// Complexity: O(SizeI×SizeJ).
func Read(r io.Reader, opts ...Option) (*grid.HeightField, error) {
	o := gatherOptions(opts...)

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	sizeI, err := scanSize(sc, "sizeI")
	if err != nil {
		return nil, textioErrorf(opRead, err)
	}
	sizeJ, err := scanSize(sc, "sizeJ")
	if err != nil {
		return nil, textioErrorf(opRead, err)
	}
	if sizeI == 0 || sizeJ == 0 {
		return grid.New(0, 0)
	}

	n, err := grid.ElementCount(sizeI, sizeJ)
	if err == nil && n > o.maxElements {
		err = grid.ErrAllocation
	}
	if err != nil {
		return nil, textioErrorf(opRead, fmt.Errorf("%dx%d: %w", sizeI, sizeJ, err))
	}

	// The header is untrusted: storage grows with the heights actually read.
	data := make([]grid.Vertex, 0, min(n, readChunk))
	for k := 0; k < n; k++ {
		if !sc.Scan() {
			return nil, textioErrorf(opRead, scanEnd(sc, fmt.Sprintf("height %d of %d", k+1, n)))
		}
		z, perr := strconv.ParseFloat(sc.Text(), 32)
		if perr != nil {
			return nil, textioErrorf(opRead, fmt.Errorf("height %d %q: %w", k+1, sc.Text(), ErrMalformed))
		}
		data = append(data, grid.Vertex{Z: float32(z)})
	}

	return grid.NewFromVertices(sizeI, sizeJ, &data)
}

// Marshal returns the Write encoding of hf.
func Marshal(hf *grid.HeightField, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, hf, opts...); err != nil {
		return nil, textioErrorf(opMarshal, err)
	}

	return buf.Bytes(), nil
}

// Unmarshal parses b with Read.
func Unmarshal(b []byte, opts ...Option) (*grid.HeightField, error) {
	hf, err := Read(bytes.NewReader(b), opts...)
	if err != nil {
		return nil, textioErrorf(opUnmarshal, err)
	}

	return hf, nil
}

// scanSize reads one non-negative integer header token.
func scanSize(sc *bufio.Scanner, name string) (int, error) {
	if !sc.Scan() {
		return 0, scanEnd(sc, name)
	}
	v, err := strconv.Atoi(sc.Text())
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s %q: %w", name, sc.Text(), ErrMalformed)
	}

	return v, nil
}

// scanEnd distinguishes a reader failure from a clean end of input.
func scanEnd(sc *bufio.Scanner, what string) error {
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}

	return fmt.Errorf("%s: %w", what, ErrTruncated)
}
