// SPDX-License-Identifier: MIT

package value

import (
	"cmp"

	"github.com/katalvlaran/lvarray/array"
)

// compareElem is the total leaf order for each element kind.
// Floats (and both parts of complex numbers) use array.CompareFloat, so NaN is
// the greatest value and equal to itself.
func compareElem[T Element](a, b T) int {
	switch x := any(a).(type) {
	case float64:
		return array.CompareFloat(x, any(b).(float64))
	case uint8:
		return cmp.Compare(x, any(b).(uint8))
	case complex128:
		y := any(b).(complex128)
		if c := array.CompareFloat(real(x), real(y)); c != 0 {
			return c
		}
		return array.CompareFloat(imag(x), imag(y))
	case rune:
		return cmp.Compare(x, any(b).(rune))
	case Boxed:
		return Compare(x.unbox(), any(b).(Boxed).unbox())
	}

	return 0
}

func equalElem[T Element](a, b T) bool { return compareElem(a, b) == 0 }

// Equal reports structural equality: same kind, same shape, equal leaves.
// NaN equals NaN, so a fixpoint over NaN-producing functions still converges.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Num:
		return x.arr.EqualFunc(b.(Num).arr, equalElem[float64])
	case Byte:
		return x.arr.EqualFunc(b.(Byte).arr, equalElem[uint8])
	case Complex:
		return x.arr.EqualFunc(b.(Complex).arr, equalElem[complex128])
	case Char:
		return x.arr.EqualFunc(b.(Char).arr, equalElem[rune])
	case Box:
		return x.arr.EqualFunc(b.(Box).arr, equalElem[Boxed])
	}

	return false
}

// Compare totally orders values: by kind, then shape, then leaves.
func Compare(a, b Value) int {
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}
	switch x := a.(type) {
	case Num:
		return x.arr.CompareFunc(b.(Num).arr, compareElem[float64])
	case Byte:
		return x.arr.CompareFunc(b.(Byte).arr, compareElem[uint8])
	case Complex:
		return x.arr.CompareFunc(b.(Complex).arr, compareElem[complex128])
	case Char:
		return x.arr.CompareFunc(b.(Char).arr, compareElem[rune])
	case Box:
		return x.arr.CompareFunc(b.(Box).arr, compareElem[Boxed])
	}

	return 0
}

func sortOf[T Element](o Of[T]) Value {
	a := o.arr.Clone()
	a.SortFunc(compareElem[T])

	return Of[T]{arr: a}
}

// Sort returns v with its rows stably sorted in lexicographic leaf order.
func Sort(v Value) Value {
	switch x := v.(type) {
	case Num:
		return sortOf(x)
	case Byte:
		return sortOf(x)
	case Complex:
		return sortOf(x)
	case Char:
		return sortOf(x)
	case Box:
		return sortOf(x)
	}

	return v
}
