// SPDX-License-Identifier: MIT

// Package value implements the runtime Value: a sealed sum type over the five
// element kinds an array can hold.
//
//	Kind       Go element   Alias
//	Number     float64      Num
//	Byte       uint8        Byte
//	Complex    complex128   Complex
//	Character  rune         Char
//	Boxed      Boxed        Box
//
// Every variant is an instantiation of Of[T], which owns exactly one
// array.Array[T]; a type switch over the aliases above is exhaustive.
//
// Binary pervasive operations (Add, Sub, Mul, Div, Mod, Pow, Atan2 and the six
// comparisons) dispatch through fixed per-operation kind-pair tables. Bytes are
// promoted to numbers before lookup; boxed operands are unwrapped, operated on
// recursively, and rewrapped. Any pair missing from a table is ErrTypeMismatch.
//
// Normalization: a Value built from a sequence of Values (FromValues) or a box
// array passed to Normalize collapses to the narrowest uniform kind when every
// element unboxes to a scalar of that one kind, e.g. boxed @a @b → "ab".
//
// Values are value types. Functions in this package never mutate a buffer that
// may be shared; operations that "modify" a Value return the new Value.
package value
