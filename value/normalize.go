// SPDX-License-Identifier: MIT

package value

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/lvarray/array"
)

// FromValues builds a rank-1 Value with one element per input and normalizes
// it: scalars of one kind collapse to a plain array of that kind, anything
// else stays boxed.
//
// Example:
//
//	FromValues([]Value{Character('h'), Character('i')}) // → "hi" (Char)
//	FromValues([]Value{Number(1), String("ab")})        // → box list
func FromValues(vals []Value) Value {
	return Normalize(Boxes(vals...))
}

// Normalize canonicalizes a box array to the narrowest uniform kind.
// MAIN DESCRIPTION:
//   - Keep representation minimal so later dispatch stays on the homogeneous path.
//
// Implementation:
//   - Stage 1: non-box values and empty box arrays are returned unchanged.
//   - Stage 2: if every element is a rank-0 value of the same non-box kind K,
//     rebuild the array as kind K with the original shape.
//
// Behavior highlights:
//   - Nested boxes are not flattened (a box of boxes stays a box).
//   - An empty box array stays a box: it has no evidence of an element kind.
//
// Complexity:
//   - Time O(n), Space O(n) on collapse.
func Normalize(v Value) Value {
	b, ok := v.(Box)
	if !ok || b.arr.ElementCount() == 0 {
		return v
	}
	data := b.arr.Data()
	k := data[0].unbox().Kind()
	if k == KindBox {
		return v
	}
	uniform := lo.EveryBy(data, func(e Boxed) bool {
		inner := e.unbox()
		return inner.Rank() == 0 && inner.Kind() == k
	})
	if !uniform {
		return v
	}

	switch k {
	case KindNumber:
		return collapse[float64](b)
	case KindByte:
		return collapse[uint8](b)
	case KindComplex:
		return collapse[complex128](b)
	default:
		return collapse[rune](b)
	}
}

// collapse rebuilds a box array whose elements are all rank-0 Of[T] scalars.
func collapse[T Element](b Box) Value {
	out := array.Map(b.arr, func(e Boxed) T {
		return e.unbox().(Of[T]).arr.Data()[0]
	})

	return Of[T]{arr: out}
}

// Unboxed unwraps a rank-0 box; every other value is returned unchanged.
func Unboxed(v Value) Value {
	if b, ok := v.(Box); ok && b.arr.Rank() == 0 {
		return b.arr.Data()[0].unbox()
	}

	return v
}
