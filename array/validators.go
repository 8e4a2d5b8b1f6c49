// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//  - Single source of truth for the structural checks used by constructors,
//    row accessors and the broadcast engine.
//  - Return plain sentinel errors so call sites can wrap uniformly.

package array

import (
	"fmt"

	"github.com/katalvlaran/lvarray/shape"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShapeData ensures s has no negative dimension and n == s.ElementCount().
//
// Errors: ErrBadShape.
// Complexity: O(rank).
func ValidateShapeData(s shape.Shape, n int) error {
	if err := s.Validate(); err != nil {
		return validatorErrorf("ValidateShapeData", fmt.Errorf("%w: %w", ErrBadShape, err))
	}
	if want := s.ElementCount(); want != n {
		return validatorErrorf(
			fmt.Sprintf("ValidateShapeData(shape %s wants %d elements, got %d)", s, want, n),
			ErrBadShape,
		)
	}

	return nil
}

// ValidateRowIndex ensures 0 ≤ i < count.
func ValidateRowIndex(i, count int) error {
	if i < 0 || i >= count {
		return validatorErrorf(fmt.Sprintf("ValidateRowIndex(%d of %d)", i, count), ErrOutOfRange)
	}

	return nil
}

// ValidatePrefix ensures one shape is an element-wise prefix of the other and
// returns the broadcast (longer) shape.
//
// Errors: ErrShapeMismatch (also matches shape.ErrNotPrefix).
func ValidatePrefix(a, b shape.Shape) (shape.Shape, error) {
	out, err := shape.Broadcast(a, b)
	if err != nil {
		return nil, validatorErrorf("ValidatePrefix", fmt.Errorf("%w: %w", ErrShapeMismatch, err))
	}

	return out, nil
}
