// SPDX-License-Identifier: MIT

package textio

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed indicates a token that is not a valid size or height,
	// or a negative size in the header.
	ErrMalformed = errors.New("textio: malformed input")

	// ErrTruncated indicates that the stream ended before the header or all
	// sizeI*sizeJ heights were read.
	ErrTruncated = errors.New("textio: unexpected end of input")

	// ErrNilField indicates a nil *grid.HeightField passed to Write.
	ErrNilField = errors.New("textio: nil height field")
)

// textioErrorf wraps err with the operation name.
func textioErrorf(op string, err error) error {
	return fmt.Errorf("textio.%s: %w", op, err)
}
