// SPDX-License-Identifier: MIT

package runtime

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvarray/algorithm"
	"github.com/katalvlaran/lvarray/value"
)

// Env is the reference stack environment. The zero Env is not usable; build
// one with New.
type Env struct {
	stack     []value.Value
	functions []algorithm.Function
	fills     []fillFrame
	depth     int

	maxCallDepth int
	log          *slog.Logger
}

// Compile-time check.
var _ algorithm.Env = (*Env)(nil)

// New builds an Env with empty stacks.
func New(opts ...Option) *Env {
	o := gatherOptions(opts...)
	e := &Env{
		stack:        make([]value.Value, 0, o.stackCapacity),
		maxCallDepth: o.maxCallDepth,
		log:          o.logger,
	}
	e.fills = []fillFrame{{value: o.fill}}

	return e
}

// Push puts v on top of the value stack.
func (e *Env) Push(v value.Value) {
	e.stack = append(e.stack, v)
}

// Pop removes and returns the top value.
//
// Errors: *UnderflowError carrying role.
func (e *Env) Pop(role string) (value.Value, error) {
	n := len(e.stack)
	if n == 0 {
		e.log.Debug("stack underflow", slog.String("role", role))
		return nil, &UnderflowError{Role: role}
	}
	v := e.stack[n-1]
	e.stack[n-1] = nil
	e.stack = e.stack[:n-1]

	return v, nil
}

// CopyTop pushes copies of the top n values, keeping their order:
// [a b c] with n=2 becomes [a b c b c].
//
// Errors: *UnderflowError when fewer than n values are on the stack.
func (e *Env) CopyTop(n int) error {
	if n <= 0 {
		return nil
	}
	if n > len(e.stack) {
		return &UnderflowError{Role: fmt.Sprintf("value %d of %d to copy", len(e.stack)+1, n)}
	}
	top := e.stack[len(e.stack)-n:]
	for _, v := range top[:n:n] {
		e.stack = append(e.stack, value.Clone(v))
	}

	return nil
}

// Len returns the number of values on the stack.
func (e *Env) Len() int { return len(e.stack) }

// Stack returns a snapshot of the value stack, bottom first.
func (e *Env) Stack() []value.Value {
	return append([]value.Value(nil), e.stack...)
}

// PushFunction puts f on top of the function stack.
func (e *Env) PushFunction(f algorithm.Function) {
	e.functions = append(e.functions, f)
}

// PopFunction removes and returns the top function.
//
// Errors: *UnderflowError with role "function".
func (e *Env) PopFunction() (algorithm.Function, error) {
	n := len(e.functions)
	if n == 0 {
		return nil, &UnderflowError{Role: "function"}
	}
	f := e.functions[n-1]
	e.functions[n-1] = nil
	e.functions = e.functions[:n-1]

	return f, nil
}

// Errorf builds an *Error of the given kind.
func (e *Env) Errorf(kind error, format string, args ...any) error {
	err := &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
	e.log.Debug("runtime error", slog.String("kind", fmt.Sprint(kind)), slog.String("msg", err.Msg))

	return err
}
