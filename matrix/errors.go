// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for easy grepping. Callers
// match with errors.Is; context is attached with fmt.Errorf("...: %w", ErrX).

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rows < 0 or cols <= 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that the supplied backing data does not
	// match the requested shape, or that two operands disagree in shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
