// SPDX-License-Identifier: MIT

// Package array - row-major storage & safe accessors.
//
// Purpose:
//   - Provide a contiguous row-major buffer tagged with an n-dimensional shape.
//   - Guarantee len(data) == shape.ElementCount() at every public boundary.
//   - Keep constructors error-returning; no panics on user input.
//
// Complexity quicksheet:
//   - New/FromSlice/Scalar: O(1) (ownership transfer); Clone: O(n); Reshape: O(n') worst case.

package array

import (
	"fmt"

	"github.com/katalvlaran/lvarray/shape"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxRow      = "Row"
	ctxReshape  = "Reshape"
	ctxFromRows = "FromRows"
	ctxCells    = "Cells"
	ctxSetShape = "SetShape"
)

// arrayErrorf wraps an error with a uniform Array context.
func arrayErrorf(method string, err error) error {
	return fmt.Errorf("Array.%s: %w", method, err)
}

// Array is a shape-tagged, row-major, homogeneous n-dimensional container.
//   - shape holds the dimensions (outermost first).
//   - data is a flat buffer of length shape.ElementCount().
//
// The zero Array is NOT valid (it has rank 0 but no element); build arrays via
// New, Scalar, FromSlice, Filled or FromRows.
type Array[T any] struct {
	shape shape.Shape // dimension vector (rank == len(shape))
	data  []T         // row-major storage
}

// New builds an array from a shape and a flat row-major buffer.
// MAIN DESCRIPTION:
//   - Take ownership of data and tag it with s.
//
// Implementation:
//   - Stage 1: validate non-negative dims and len(data) == product(s).
//   - Stage 2: clone the shape; keep data as-is (ownership transfer).
//
// Errors:
//   - ErrBadShape when the data length does not match the shape.
//
// Complexity:
//   - Time O(rank), Space O(rank).
//
// Notes:
//   - The caller must not retain or mutate data afterwards.
func New[T any](s shape.Shape, data []T) (Array[T], error) {
	if err := ValidateShapeData(s, len(data)); err != nil {
		return Array[T]{}, arrayErrorf(ctxNew, err)
	}
	if data == nil {
		data = []T{}
	}

	return Array[T]{shape: s.Clone(), data: data}, nil
}

// Scalar builds a rank-0 array holding v.
func Scalar[T any](v T) Array[T] {
	return Array[T]{shape: shape.Scalar(), data: []T{v}}
}

// FromSlice builds a rank-1 array owning data.
func FromSlice[T any](data []T) Array[T] {
	if data == nil {
		data = []T{}
	}

	return Array[T]{shape: shape.Of(len(data)), data: data}
}

// Filled builds an array of shape s with every element set to v.
func Filled[T any](s shape.Shape, v T) (Array[T], error) {
	if err := s.Validate(); err != nil {
		return Array[T]{}, arrayErrorf(ctxNew, fmt.Errorf("%w: %w", ErrBadShape, err))
	}
	data := make([]T, s.ElementCount())
	for i := range data {
		data[i] = v
	}

	return Array[T]{shape: s.Clone(), data: data}, nil
}

// Shape returns a copy of the dimension vector.
func (a Array[T]) Shape() shape.Shape { return a.shape.Clone() }

// Rank returns the number of dimensions.
func (a Array[T]) Rank() int { return len(a.shape) }

// ElementCount returns the number of stored elements.
func (a Array[T]) ElementCount() int { return len(a.data) }

// RowCount returns the outermost dimension (1 for a scalar).
func (a Array[T]) RowCount() int { return a.shape.RowCount() }

// RowLen returns the number of elements in one row.
func (a Array[T]) RowLen() int { return a.shape.RowLen() }

// Data exposes the row-major buffer. The slice aliases the array's storage:
// callers must treat it as read-only unless they own the array exclusively.
func (a Array[T]) Data() []T { return a.data }

// Clone returns a deep copy with independent storage.
// Complexity: O(n).
func (a Array[T]) Clone() Array[T] {
	data := make([]T, len(a.data))
	copy(data, a.data)

	return Array[T]{shape: a.shape.Clone(), data: data}
}

// Row returns a copy of the sub-array at outer index i.
// MAIN DESCRIPTION:
//   - Non-consuming row access: the receiver is left intact.
//
// Behavior highlights:
//   - A scalar has exactly one row: itself.
//
// Errors:
//   - ErrOutOfRange if i ∉ [0, RowCount()).
//
// Complexity:
//   - Time O(RowLen()), Space O(RowLen()).
func (a Array[T]) Row(i int) (Array[T], error) {
	if err := ValidateRowIndex(i, a.RowCount()); err != nil {
		return Array[T]{}, arrayErrorf(ctxRow, err)
	}
	n := a.RowLen()
	row := make([]T, n)
	copy(row, a.data[i*n:(i+1)*n])

	return Array[T]{shape: a.shape.RowShape(), data: row}, nil
}

// Deshape flattens the array in place to rank 1 (length = element count).
func (a *Array[T]) Deshape() {
	a.shape = shape.Of(len(a.data))
}

// SetShape retags the buffer with s, which must have the same element count.
//
// Errors: ErrBadShape.
func (a *Array[T]) SetShape(s shape.Shape) error {
	if err := ValidateShapeData(s, len(a.data)); err != nil {
		return arrayErrorf(ctxSetShape, err)
	}
	a.shape = s.Clone()

	return nil
}

// Reshape retags the array with s and resizes the backing storage to the new
// element count: truncated when smaller, padded with pad when larger.
// MAIN DESCRIPTION:
//   - In-place reshape that never fails on size differences.
//
// Implementation:
//   - Stage 1: validate s (no negative dims).
//   - Stage 2: truncate or extend data with pad.
//   - Stage 3: store the cloned shape.
//
// Errors:
//   - ErrBadShape when s has a negative dimension.
//
// Complexity:
//   - Time O(max(0, n'-n)), Space O(n') when growing.
//
// AI-Hints:
//   - Value-level callers pass the kind's default (0, ' ', empty box) as pad.
func (a *Array[T]) Reshape(s shape.Shape, pad T) error {
	if err := s.Validate(); err != nil {
		return arrayErrorf(ctxReshape, fmt.Errorf("%w: %w", ErrBadShape, err))
	}
	n := s.ElementCount()
	switch {
	case n <= len(a.data):
		a.data = a.data[:n:n] // cap trimmed so later appends never clobber a shared tail
	default:
		grown := make([]T, n)
		copy(grown, a.data)
		for i := len(a.data); i < n; i++ {
			grown[i] = pad
		}
		a.data = grown
	}
	a.shape = s.Clone()

	return nil
}

// Map applies f to every element, keeping the shape.
// Complexity: O(n).
func Map[T, U any](a Array[T], f func(T) U) Array[U] {
	out := make([]U, len(a.data))
	for i, v := range a.data {
		out[i] = f(v)
	}

	return Array[U]{shape: a.shape.Clone(), data: out}
}

// MapErr is Map with a fallible element function; the first error aborts.
func MapErr[T, U any](a Array[T], f func(T) (U, error)) (Array[U], error) {
	out := make([]U, len(a.data))
	for i, v := range a.data {
		u, err := f(v)
		if err != nil {
			return Array[U]{}, err
		}
		out[i] = u
	}

	return Array[U]{shape: a.shape.Clone(), data: out}, nil
}

// FromRows stacks equally shaped rows into one array with a new leading axis.
// MAIN DESCRIPTION:
//   - Inverse of Rows: n rows of shape r become one array of shape [n, r...].
//
// Behavior highlights:
//   - Zero rows yield the empty list (shape [0]).
//
// Errors:
//   - ErrShapeMismatch when any row's shape differs from the first.
//
// Complexity:
//   - Time O(total elements), Space O(total elements).
func FromRows[T any](rows []Array[T]) (Array[T], error) {
	if len(rows) == 0 {
		return Array[T]{shape: shape.Of(0), data: []T{}}, nil
	}
	rowShape := rows[0].shape
	data := make([]T, 0, len(rows)*len(rows[0].data))
	for i, r := range rows {
		if !r.shape.Equal(rowShape) {
			return Array[T]{}, arrayErrorf(ctxFromRows,
				fmt.Errorf("row %d has shape %s, expected %s: %w", i, r.shape, rowShape, ErrShapeMismatch))
		}
		data = append(data, r.data...)
	}

	return Array[T]{shape: rowShape.Prepend(len(rows)), data: data}, nil
}
