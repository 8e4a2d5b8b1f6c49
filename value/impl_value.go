// SPDX-License-Identifier: MIT

package value

import (
	"fmt"

	"github.com/katalvlaran/lvarray/array"
	"github.com/katalvlaran/lvarray/shape"
)

// New builds a Value of element type T from a shape and a flat row-major buffer.
// MAIN DESCRIPTION:
//   - The (shape, flat-data) construction entry point.
//
// Errors:
//   - array.ErrBadShape when len(data) != s.ElementCount().
//
// Notes:
//   - Box arrays built here are NOT normalized; use Normalize or FromValues.
func New[T Element](s shape.Shape, data []T) (Of[T], error) {
	a, err := array.New(s, data)
	if err != nil {
		return Of[T]{}, fmt.Errorf("value.New: %w", err)
	}

	return Of[T]{arr: a}, nil
}

// Wrap turns an existing array into a Value (ownership transfer).
func Wrap[T Element](a array.Array[T]) Of[T] { return Of[T]{arr: a} }

// Scalar builds a rank-0 Value.
func Scalar[T Element](v T) Of[T] { return Of[T]{arr: array.Scalar(v)} }

// Number builds a numeric scalar.
func Number(f float64) Num { return Scalar(f) }

// Character builds a character scalar.
func Character(r rune) Char { return Scalar(r) }

// Numbers builds a rank-1 numeric list.
func Numbers(data ...float64) Num {
	return Num{arr: array.FromSlice(append([]float64{}, data...))}
}

// Bytes builds a rank-1 byte list.
func Bytes(data ...uint8) Byte {
	return Byte{arr: array.FromSlice(append([]uint8{}, data...))}
}

// Complexes builds a rank-1 complex list.
func Complexes(data ...complex128) Complex {
	return Complex{arr: array.FromSlice(append([]complex128{}, data...))}
}

// String builds a rank-1 character list from s.
func String(s string) Char {
	return Char{arr: array.FromSlice([]rune(s))}
}

// Boxes builds a rank-1 box list without normalizing it.
func Boxes(vals ...Value) Box {
	data := make([]Boxed, len(vals))
	for i, v := range vals {
		data[i] = Boxed{V: v}
	}

	return Box{arr: array.FromSlice(data)}
}

// BoxScalar wraps v into a rank-0 box.
func BoxScalar(v Value) Box { return Scalar(Boxed{V: v}) }

// Range returns the numeric list 0, 1, ..., n-1 (empty for n ≤ 0).
func Range(n int) Num {
	if n < 0 {
		n = 0
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}

	return Num{arr: array.FromSlice(data)}
}

// AsArray extracts the backing array when v holds elements of type T.
func AsArray[T Element](v Value) (array.Array[T], bool) {
	o, ok := v.(Of[T])
	if !ok {
		return array.Array[T]{}, false
	}

	return o.arr, true
}
