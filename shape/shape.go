// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Shape is the dimension vector of an array, outermost dimension first.
type Shape []int

// Of builds a Shape from the given dimensions (copying them).
func Of(dims ...int) Shape {
	out := make(Shape, len(dims))
	copy(out, dims)

	return out
}

// Scalar returns the rank-0 shape.
func Scalar() Shape { return Shape{} }

// Validate checks that no dimension is negative.
// Complexity: O(rank).
func (s Shape) Validate() error {
	for i, d := range s {
		if d < 0 {
			return fmt.Errorf("Shape.Validate(axis %d = %d): %w", i, d, ErrNegativeDim)
		}
	}

	return nil
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int { return len(s) }

// ElementCount returns the product of all dimensions; a scalar has one element.
// Complexity: O(rank).
func (s Shape) ElementCount() int {
	return lo.Reduce(s, func(acc int, d int, _ int) int { return acc * d }, 1)
}

// RowCount returns the outermost dimension, or 1 for a scalar.
func (s Shape) RowCount() int {
	if len(s) == 0 {
		return 1
	}

	return s[0]
}

// RowShape returns the shape of a single row (shape[1:]); a scalar's row shape is empty.
// The result is a fresh slice.
func (s Shape) RowShape() Shape {
	if len(s) == 0 {
		return Shape{}
	}

	return Of(s[1:]...)
}

// RowLen returns the element count of one row.
func (s Shape) RowLen() int {
	if len(s) == 0 {
		return 1
	}

	return Shape(s[1:]).ElementCount()
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape { return Of(s...) }

// Equal reports whether s and o have identical dimensions.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}

// HasPrefix reports whether p is an element-wise-equal prefix of s.
// The empty shape is a prefix of every shape.
func (s Shape) HasPrefix(p Shape) bool {
	if len(p) > len(s) {
		return false
	}

	return Shape(s[:len(p)]).Equal(p)
}

// PrefixMatches reports whether the overlapping leading dimensions of s and o agree,
// i.e. one of them is a prefix of the other.
func (s Shape) PrefixMatches(o Shape) bool {
	return s.HasPrefix(o) || o.HasPrefix(s)
}

// Prepend returns a new shape with dims inserted before s.
func (s Shape) Prepend(dims ...int) Shape {
	out := make(Shape, 0, len(dims)+len(s))
	out = append(out, dims...)

	return append(out, s...)
}

// Compare orders shapes lexicographically by dimension, shorter first on a tie.
func (s Shape) Compare(o Shape) int {
	for i := 0; i < len(s) && i < len(o); i++ {
		switch {
		case s[i] < o[i]:
			return -1
		case s[i] > o[i]:
			return 1
		}
	}
	switch {
	case len(s) < len(o):
		return -1
	case len(s) > len(o):
		return 1
	}

	return 0
}

// String renders the shape as "[2 3 4]" (scalar → "[]").
func (s Shape) String() string {
	parts := lo.Map(s, func(d int, _ int) string { return strconv.Itoa(d) })

	return "[" + strings.Join(parts, " ") + "]"
}

// Broadcast returns the result shape of a pervasive operation between arrays of
// shapes a and b: the longer of the two, provided the shorter is its prefix.
//
// Behavior highlights:
//   - Same-rank shapes must be identical.
//   - No size-1 stretching: [1 3] and [2 3] do NOT broadcast.
//
// Errors:
//   - ErrNotPrefix when neither shape is a prefix of the other.
func Broadcast(a, b Shape) (Shape, error) {
	switch {
	case a.HasPrefix(b):
		return a.Clone(), nil
	case b.HasPrefix(a):
		return b.Clone(), nil
	}

	return nil, fmt.Errorf("Broadcast(%s, %s): %w", a, b, ErrNotPrefix)
}
