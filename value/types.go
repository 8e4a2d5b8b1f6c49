// SPDX-License-Identifier: MIT

package value

import (
	"github.com/katalvlaran/lvarray/array"
	"github.com/katalvlaran/lvarray/shape"
)

// Kind tags the element type of a Value. The declaration order is the order
// used by Compare.
type Kind uint8

const (
	KindNumber Kind = iota
	KindByte
	KindComplex
	KindChar
	KindBox
)

var kindNames = [...]string{
	KindNumber:  "number",
	KindByte:    "byte",
	KindComplex: "complex",
	KindChar:    "character",
	KindBox:     "box",
}

// String returns the lower-case kind name used in error messages.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// Element is the closed set of element types a Value may hold.
type Element interface {
	float64 | uint8 | complex128 | rune | Boxed
}

// Boxed stores an arbitrary Value as a single array element. It lets arrays
// hold rows of differing shapes or kinds.
type Boxed struct {
	V Value
}

// Value is the sealed runtime value. The only implementations are the Of[T]
// instantiations Num, Byte, Complex, Char and Box.
type Value interface {
	// Kind reports which element type the value holds.
	Kind() Kind
	// Shape returns a copy of the value's shape.
	Shape() shape.Shape
	Rank() int
	RowCount() int
	ElementCount() int
	// String renders the value (see Format rules in the package doc).
	String() string

	sealed()
}

// Of is the Value variant holding an array of T.
type Of[T Element] struct {
	arr array.Array[T]
}

// Variant aliases.
type (
	Num     = Of[float64]
	Byte    = Of[uint8]
	Complex = Of[complex128]
	Char    = Of[rune]
	Box     = Of[Boxed]
)

// Compile-time assertions: every variant is a Value.
var (
	_ Value = Num{}
	_ Value = Byte{}
	_ Value = Complex{}
	_ Value = Char{}
	_ Value = Box{}
)

func (Of[T]) sealed() {}

// Kind reports the variant's element kind.
func (Of[T]) Kind() Kind { return kindOf[T]() }

// Shape returns a copy of the shape.
func (o Of[T]) Shape() shape.Shape { return o.arr.Shape() }

// Rank returns the number of dimensions.
func (o Of[T]) Rank() int { return o.arr.Rank() }

// RowCount returns the outermost dimension (1 for a scalar).
func (o Of[T]) RowCount() int { return o.arr.RowCount() }

// ElementCount returns the number of leaf elements.
func (o Of[T]) ElementCount() int { return o.arr.ElementCount() }

// Array returns the backing array. It shares storage with o; treat it as read-only.
func (o Of[T]) Array() array.Array[T] { return o.arr }

// kindOf maps an element type to its Kind.
func kindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case float64:
		return KindNumber
	case uint8:
		return KindByte
	case complex128:
		return KindComplex
	case rune:
		return KindChar
	default:
		return KindBox
	}
}

// defaultOf returns the padding element used when an array grows.
// Characters pad with a space; boxes pad with a boxed empty list.
func defaultOf[T Element]() T {
	var zero T
	switch p := any(&zero).(type) {
	case *rune:
		*p = ' '
	case *Boxed:
		*p = Boxed{V: emptyList()}
	}

	return zero
}

// emptyList is the empty numeric list, the default Value.
func emptyList() Value {
	return Num{arr: array.FromSlice([]float64{})}
}

// unbox returns the boxed Value, treating a nil box as the empty list.
func (b Boxed) unbox() Value {
	if b.V == nil {
		return emptyList()
	}

	return b.V
}
