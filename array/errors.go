// SPDX-License-Identifier: MIT
// Package array: sentinel error set.
// All exported operations return these sentinels (possibly wrapped with a
// method context via fmt.Errorf("...: %w", ErrX)); callers match with errors.Is.
// No exported function panics on user-triggered conditions.

package array

import "errors"

var (
	// ErrBadShape indicates a shape with a negative dimension, or a data buffer
	// whose length differs from the shape's element count.
	ErrBadShape = errors.New("array: invalid shape")

	// ErrShapeMismatch indicates incompatible shapes: a broadcast where neither
	// shape is a prefix of the other, or rows that cannot be stacked.
	ErrShapeMismatch = errors.New("array: shape mismatch")

	// ErrOutOfRange indicates a row index or depth outside valid bounds.
	ErrOutOfRange = errors.New("array: index out of range")
)
