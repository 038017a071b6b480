// SPDX-License-Identifier: MIT

package imageio

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreadable indicates that the input could not be opened or decoded.
	ErrUnreadable = errors.New("imageio: unreadable image")

	// ErrUnsupportedFormat indicates a decodable image whose pixel format is
	// not single-channel 8-bit, or an output extension with no encoder.
	ErrUnsupportedFormat = errors.New("imageio: unsupported image format")

	// ErrInvalidScale indicates a zScale that is zero, NaN or ±Inf where a
	// height must be divided by it.
	ErrInvalidScale = errors.New("imageio: zScale must be finite and non-zero")

	// ErrNilField indicates a nil *grid.HeightField passed to an encoder.
	ErrNilField = errors.New("imageio: nil height field")
)

// imageioErrorf wraps err with the operation name.
func imageioErrorf(op string, err error) error {
	return fmt.Errorf("imageio.%s: %w", op, err)
}

// unreadable marks a lower-level failure as ErrUnreadable while keeping it
// reachable through errors.Is / errors.As.
func unreadable(err error) error {
	return fmt.Errorf("%w: %w", ErrUnreadable, err)
}
