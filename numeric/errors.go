// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates that paired sample slices differ in length.
	ErrLengthMismatch = errors.New("numeric: length mismatch")

	// ErrTooShort indicates fewer samples than the kernel needs (two for
	// integration and regression).
	ErrTooShort = errors.New("numeric: not enough samples")

	// ErrNotSorted indicates an abscissa that is not non-decreasing.
	ErrNotSorted = errors.New("numeric: abscissa not sorted")

	// ErrConstantX indicates a regression over identical x values.
	ErrConstantX = errors.New("numeric: all x values are identical")
)

// numericErrorf tags err with the operation that produced it.
func numericErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
