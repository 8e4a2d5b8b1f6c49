// SPDX-License-Identifier: MIT
// Package runtime: error types.
// Algorithm failures are reported as *Error (kind + message); empty stacks are
// reported as *UnderflowError. Both unwrap to a sentinel for errors.Is.

package runtime

import (
	"errors"
	"fmt"
)

var (
	// ErrStackUnderflow is returned by Pop / PopFunction / CopyTop on an empty
	// (or too short) stack.
	ErrStackUnderflow = errors.New("runtime: stack underflow")

	// ErrCallDepth is returned by Call when nesting exceeds WithMaxCallDepth.
	ErrCallDepth = errors.New("runtime: call depth exceeded")

	// ErrNotCallable is returned by Call for a Function this Env cannot run.
	ErrNotCallable = errors.New("runtime: function is not callable")
)

// Error is the runtime error raised through Env.Errorf: a single human-readable
// message tagged with the kind of failure.
type Error struct {
	Kind error
	Msg  string
}

// Error returns the message.
func (e *Error) Error() string { return e.Msg }

// Unwrap returns the kind so errors.Is(err, algorithm.ErrSignature) works.
func (e *Error) Unwrap() error { return e.Kind }

// UnderflowError reports a pop from an empty stack. Role names what the popped
// value was for ("repetition count", "do condition", ...).
type UnderflowError struct {
	Role string
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("Stack was empty when getting %s", e.Role)
}

// Unwrap returns ErrStackUnderflow.
func (e *UnderflowError) Unwrap() error { return ErrStackUnderflow }
