// SPDX-License-Identifier: MIT
// Package: value
//
// Purpose:
//   - Dispatch pervasive binary operations over the kind-pair tables in tables.go.
//   - Route every element loop through array.Pervade so broadcasting is uniform.
//
// Dispatch order:
//   1. nil operands → ErrNilValue.
//   2. bytes are promoted to numbers.
//   3. a box on either side → elementwise recursion, results rewrapped as boxes.
//   4. table lookup on (kind(a), kind(b)); a miss is ErrTypeMismatch.

package value

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvarray/array"
)

// pair is a table key: the kinds of the left and right operands.
type pair struct{ a, b Kind }

// pairFunc applies an operation to operands whose kinds match its table key.
type pairFunc func(a, b Value) (Value, error)

// lift turns an element function into a pairFunc over the matching variants.
func lift[A, B, C Element](f func(A, B) C) pairFunc {
	return func(a, b Value) (Value, error) {
		r, err := array.Pervade(a.(Of[A]).arr, b.(Of[B]).arr, f)
		if err != nil {
			return nil, err
		}

		return Of[C]{arr: r}, nil
	}
}

// Op is a pervasive binary operation with a fixed kind-pair table.
type Op struct {
	name  string
	table map[pair]pairFunc
}

func newOp(name string, table map[pair]pairFunc) *Op {
	return &Op{name: name, table: table}
}

// Name returns the operation name used in error messages ("add", "lt", ...).
func (op *Op) Name() string { return op.name }

// Supports reports whether the table has an entry for (a, b) after byte promotion.
// Boxed operands are always supported at this level; their elements are
// checked during recursion.
func (op *Op) Supports(a, b Kind) bool {
	if a == KindBox || b == KindBox {
		return true
	}
	_, ok := op.table[pair{promoteKind(a), promoteKind(b)}]

	return ok
}

// Pairs lists the table's supported kind pairs (unordered).
func (op *Op) Pairs() [][2]Kind {
	return lo.MapToSlice(op.table, func(p pair, _ pairFunc) [2]Kind { return [2]Kind{p.a, p.b} })
}

// Apply evaluates the operation on a and b with prefix-shape broadcasting.
// MAIN DESCRIPTION:
//   - The single entry point for all binary numeric and comparison ops.
//
// Errors:
//   - ErrTypeMismatch naming the operation and both operand kinds.
//   - array.ErrShapeMismatch when neither shape is a prefix of the other.
//   - ErrNilValue for nil operands.
func (op *Op) Apply(a, b Value) (Value, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("value.%s: %w", op.name, ErrNilValue)
	}
	a, b = promote(a), promote(b)

	_, aBox := a.(Box)
	_, bBox := b.(Box)
	if aBox || bBox {
		return op.applyBoxed(boxElements(a), boxElements(b))
	}

	f, ok := op.table[pair{a.Kind(), b.Kind()}]
	if !ok {
		return nil, fmt.Errorf("value.%s(%s, %s): cannot %s %s and %s: %w",
			op.name, a.Kind(), b.Kind(), op.name, a.Kind(), b.Kind(), ErrTypeMismatch)
	}
	r, err := f(a, b)
	if err != nil {
		return nil, fmt.Errorf("value.%s: %w", op.name, err)
	}

	return r, nil
}

// applyBoxed pervades over box elements, recursing into each pair of inner
// values and rewrapping every result as a box.
func (op *Op) applyBoxed(x, y Box) (Value, error) {
	r, err := array.PervadeErr(x.arr, y.arr, func(p, q Boxed) (Boxed, error) {
		inner, err := op.Apply(p.unbox(), q.unbox())
		if err != nil {
			return Boxed{}, err
		}
		return Boxed{V: inner}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("value.%s: %w", op.name, err)
	}

	return Box{arr: r}, nil
}

// promoteKind maps byte to number, the kind used for table lookup.
func promoteKind(k Kind) Kind {
	if k == KindByte {
		return KindNumber
	}

	return k
}

// promote converts a byte value to a number value; others pass through.
func promote(v Value) Value {
	if b, ok := v.(Byte); ok {
		return Num{arr: array.Map(b.arr, func(e uint8) float64 { return float64(e) })}
	}

	return v
}

func boxElementsOf[T Element](o Of[T]) Box {
	return Box{arr: array.Map(o.arr, func(e T) Boxed { return Boxed{V: Scalar(e)} })}
}

// boxElements views any value as a box array of its scalar elements.
func boxElements(v Value) Box {
	switch x := v.(type) {
	case Box:
		return x
	case Num:
		return boxElementsOf(x)
	case Byte:
		return boxElementsOf(x)
	case Complex:
		return boxElementsOf(x)
	case Char:
		return boxElementsOf(x)
	}

	return Box{}
}
