// SPDX-License-Identifier: MIT

package array

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvarray/shape"
)

// Rows consumes the array and returns a one-shot lazy sequence of its rows.
// MAIN DESCRIPTION:
//   - Move the storage out of the receiver, then yield rows in outer-index order.
//
// Implementation:
//   - Stage 1: detach shape and data; the receiver becomes the empty list.
//   - Stage 2: on first iteration, copy each row into fresh storage and yield it.
//   - Stage 3: later iterations of the same sequence yield nothing.
//
// Behavior highlights:
//   - A scalar yields exactly one row: itself.
//   - Breaking out of a range loop stops copying; remaining rows are dropped.
//   - Yielded rows never alias each other or any previous owner.
//
// Complexity:
//   - Time O(n) over a full iteration, Space O(RowLen()) per yielded row.
func (a *Array[T]) Rows() iter.Seq[Array[T]] {
	s, data := a.shape, a.data
	a.shape, a.data = shape.Of(0), []T{}
	spent := false

	return func(yield func(Array[T]) bool) {
		if spent {
			return
		}
		spent = true
		rowShape := s.RowShape()
		n := s.RowLen()
		for i := 0; i < s.RowCount(); i++ {
			row := make([]T, n)
			copy(row, data[i*n:(i+1)*n])
			if !yield(Array[T]{shape: rowShape.Clone(), data: row}) {
				return
			}
		}
	}
}

// RowSlice consumes the array and returns its rows as a slice.
func (a *Array[T]) RowSlice() []Array[T] {
	out := make([]Array[T], 0, a.RowCount())
	for r := range a.Rows() {
		out = append(out, r)
	}

	return out
}

// Cells consumes the array and splits it into the sub-arrays obtained by fixing
// the first depth indices. Cells(1) is equivalent to the rows; Cells(0) yields
// the whole array; Cells(Rank()) yields every element as a scalar.
//
// Errors: ErrOutOfRange when depth ∉ [0, Rank()].
// Complexity: O(n).
func (a *Array[T]) Cells(depth int) ([]Array[T], error) {
	if depth < 0 || depth > len(a.shape) {
		return nil, arrayErrorf(ctxCells, fmt.Errorf("depth %d of rank %d: %w", depth, len(a.shape), ErrOutOfRange))
	}
	s, data := a.shape, a.data
	a.shape, a.data = shape.Of(0), []T{}

	cellShape := shape.Of(s[depth:]...)
	count := shape.Shape(s[:depth]).ElementCount()
	n := cellShape.ElementCount()
	out := make([]Array[T], count)
	for i := range out {
		cell := make([]T, n)
		copy(cell, data[i*n:(i+1)*n])
		out[i] = Array[T]{shape: cellShape.Clone(), data: cell}
	}

	return out, nil
}
