// SPDX-License-Identifier: MIT

package generate

import (
	"errors"
	"fmt"
)

// ErrInvalidScale indicates a zScale that is NaN or ±Inf.
var ErrInvalidScale = errors.New("generate: zScale must be finite")

// generateErrorf wraps err with the generator name and requested size.
func generateErrorf(op string, sizeI, sizeJ int, err error) error {
	return fmt.Errorf("generate.%s(%d,%d): %w", op, sizeI, sizeJ, err)
}
