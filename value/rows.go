// SPDX-License-Identifier: MIT

package value

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvarray/array"
	"github.com/katalvlaran/lvarray/shape"
)

// ---------- generic per-variant kernels ----------

func rowsOf[T Element](o Of[T]) iter.Seq[Value] {
	a := o.arr
	src := a.Rows() // detaches storage from the local copy only

	return func(yield func(Value) bool) {
		for r := range src {
			if !yield(Of[T]{arr: r}) {
				return
			}
		}
	}
}

func rowOf[T Element](o Of[T], i int) (Value, error) {
	r, err := o.arr.Row(i)
	if err != nil {
		return nil, err
	}

	return Of[T]{arr: r}, nil
}

func cellsOf[T Element](o Of[T], depth int) ([]Value, error) {
	a := o.arr
	cells, err := a.Cells(depth)
	if err != nil {
		return nil, err
	}
	out := make([]Value, len(cells))
	for i, c := range cells {
		out[i] = Of[T]{arr: c}
	}

	return out, nil
}

func reshapeOf[T Element](o Of[T], s shape.Shape) (Value, error) {
	a := o.arr
	if err := a.Reshape(s, defaultOf[T]()); err != nil {
		return nil, err
	}

	return Of[T]{arr: a}, nil
}

func withShapeOf[T Element](o Of[T], s shape.Shape) (Value, error) {
	a := o.arr
	if err := a.SetShape(s); err != nil {
		return nil, err
	}

	return Of[T]{arr: a}, nil
}

func deshapeOf[T Element](o Of[T]) Value {
	a := o.arr
	a.Deshape()

	return Of[T]{arr: a}
}

func cloneOf[T Element](o Of[T]) Value { return Of[T]{arr: o.arr.Clone()} }

// ---------- public row & shape operations ----------

// Rows returns a one-shot sequence of v's rows. v is consumed: callers must not
// use it afterwards. Every row owns its own storage.
func Rows(v Value) iter.Seq[Value] {
	switch x := v.(type) {
	case Num:
		return rowsOf(x)
	case Byte:
		return rowsOf(x)
	case Complex:
		return rowsOf(x)
	case Char:
		return rowsOf(x)
	case Box:
		return rowsOf(x)
	}

	return func(func(Value) bool) {}
}

// RowSlice is Rows collected into a slice.
func RowSlice(v Value) []Value {
	out := make([]Value, 0, v.RowCount())
	for r := range Rows(v) {
		out = append(out, r)
	}

	return out
}

// Row returns a copy of the row at outer index i.
//
// Errors: array.ErrOutOfRange.
func Row(v Value, i int) (Value, error) {
	switch x := v.(type) {
	case Num:
		return rowOf(x, i)
	case Byte:
		return rowOf(x, i)
	case Complex:
		return rowOf(x, i)
	case Char:
		return rowOf(x, i)
	case Box:
		return rowOf(x, i)
	}

	return nil, fmt.Errorf("value.Row: %w", ErrNilValue)
}

// Cells splits v into the sub-values obtained by fixing its first depth indices.
// Cells(v, 1) equals RowSlice(v) except for scalars.
//
// Errors: array.ErrOutOfRange when depth ∉ [0, rank].
func Cells(v Value, depth int) ([]Value, error) {
	switch x := v.(type) {
	case Num:
		return cellsOf(x, depth)
	case Byte:
		return cellsOf(x, depth)
	case Complex:
		return cellsOf(x, depth)
	case Char:
		return cellsOf(x, depth)
	case Box:
		return cellsOf(x, depth)
	}

	return nil, fmt.Errorf("value.Cells: %w", ErrNilValue)
}

// Deshape flattens v to rank 1.
func Deshape(v Value) Value {
	switch x := v.(type) {
	case Num:
		return deshapeOf(x)
	case Byte:
		return deshapeOf(x)
	case Complex:
		return deshapeOf(x)
	case Char:
		return deshapeOf(x)
	case Box:
		return deshapeOf(x)
	}

	return v
}

// Reshape retags v with s, truncating or padding with the kind's default
// element (0, space, or a boxed empty list).
//
// Errors: array.ErrBadShape for negative dimensions.
func Reshape(v Value, s shape.Shape) (Value, error) {
	switch x := v.(type) {
	case Num:
		return reshapeOf(x, s)
	case Byte:
		return reshapeOf(x, s)
	case Complex:
		return reshapeOf(x, s)
	case Char:
		return reshapeOf(x, s)
	case Box:
		return reshapeOf(x, s)
	}

	return nil, fmt.Errorf("value.Reshape: %w", ErrNilValue)
}

// WithShape retags v with a shape of identical element count.
//
// Errors: array.ErrBadShape.
func WithShape(v Value, s shape.Shape) (Value, error) {
	switch x := v.(type) {
	case Num:
		return withShapeOf(x, s)
	case Byte:
		return withShapeOf(x, s)
	case Complex:
		return withShapeOf(x, s)
	case Char:
		return withShapeOf(x, s)
	case Box:
		return withShapeOf(x, s)
	}

	return nil, fmt.Errorf("value.WithShape: %w", ErrNilValue)
}

// Clone returns a deep copy of v's storage (boxed elements are shared; they are
// immutable by convention).
func Clone(v Value) Value {
	switch x := v.(type) {
	case Num:
		return cloneOf(x)
	case Byte:
		return cloneOf(x)
	case Complex:
		return cloneOf(x)
	case Char:
		return cloneOf(x)
	case Box:
		return cloneOf(x)
	}

	return v
}

// stack joins rows that already share a kind and a shape.
func stack[T Element](rows []Value) (Value, error) {
	arrs := make([]array.Array[T], len(rows))
	for i, r := range rows {
		arrs[i] = r.(Of[T]).arr
	}
	a, err := array.FromRows(arrs)
	if err != nil {
		return nil, err
	}

	return Of[T]{arr: a}, nil
}

// FromRows reassembles row values into one Value with one row per input.
// MAIN DESCRIPTION:
//   - Row reassembly used by the grouping algorithms and their inverses.
//
// Implementation:
//   - Stage 1: no rows → the empty numeric list.
//   - Stage 2: promote bytes to numbers when numbers and bytes are mixed.
//   - Stage 3: uniform kind and shape → stack into a single array.
//   - Stage 4: otherwise box every row (heterogeneous rows), then normalize.
//
// Behavior highlights:
//   - Never fails on heterogeneous input: boxing is the representation for
//     rows of differing shape or kind.
//
// Complexity:
//   - Time O(total elements), Space O(total elements).
func FromRows(rows []Value) (Value, error) {
	if len(rows) == 0 {
		return emptyList(), nil
	}
	for _, r := range rows {
		if r == nil {
			return nil, fmt.Errorf("value.FromRows: %w", ErrNilValue)
		}
	}
	rows = promoteMixedBytes(rows)

	k := rows[0].Kind()
	s := rows[0].Shape()
	uniform := true
	for _, r := range rows[1:] {
		if r.Kind() != k || !r.Shape().Equal(s) {
			uniform = false
			break
		}
	}
	if !uniform {
		return Normalize(Boxes(rows...)), nil
	}

	switch k {
	case KindNumber:
		return stack[float64](rows)
	case KindByte:
		return stack[uint8](rows)
	case KindComplex:
		return stack[complex128](rows)
	case KindChar:
		return stack[rune](rows)
	default:
		return stack[Boxed](rows)
	}
}

// promoteMixedBytes converts byte rows to numbers when at least one row is a
// number and every row is numeric (number or byte).
func promoteMixedBytes(rows []Value) []Value {
	hasNum, hasByte := false, false
	for _, r := range rows {
		switch r.Kind() {
		case KindNumber:
			hasNum = true
		case KindByte:
			hasByte = true
		default:
			return rows
		}
	}
	if !hasNum || !hasByte {
		return rows
	}
	out := make([]Value, len(rows))
	for i, r := range rows {
		out[i] = promote(r)
	}

	return out
}
