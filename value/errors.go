// SPDX-License-Identifier: MIT
// Package value: sentinel error set.
// Shape problems surface as array.ErrShapeMismatch / array.ErrBadShape from the
// storage layer; this file only adds the kind-level sentinels.

package value

import "errors"

var (
	// ErrTypeMismatch is returned when an operation has no entry for the pair
	// of operand kinds, e.g. adding two characters.
	ErrTypeMismatch = errors.New("value: type mismatch")

	// ErrDomain is returned when a value is of an acceptable kind but outside the
	// required domain: a non-natural count, a non-boolean condition, a
	// non-integer index.
	ErrDomain = errors.New("value: domain error")

	// ErrNilValue is returned when a nil Value reaches an operation.
	ErrNilValue = errors.New("value: nil value")
)
