// SPDX-License-Identifier: MIT

package runtime

import (
	"log/slog"

	"github.com/katalvlaran/lvarray/value"
)

// fillFrame is one scope on the fill stack. A nil value masks the fill.
type fillFrame struct {
	value value.Value
}

// ValueFill returns the fill value of the innermost scope.
func (e *Env) ValueFill() (value.Value, bool) {
	v := e.fills[len(e.fills)-1].value

	return v, v != nil
}

// WithFill runs fn with v as the ambient fill value.
func (e *Env) WithFill(v value.Value, fn func() error) error {
	return e.scope(fillFrame{value: v}, fn)
}

// WithoutFill runs fn with the ambient fill value masked.
func (e *Env) WithoutFill(fn func() error) error {
	return e.scope(fillFrame{}, fn)
}

// scope pushes frame, runs fn and pops the frame on every exit path
// (including a panic unwinding through fn).
func (e *Env) scope(frame fillFrame, fn func() error) error {
	e.fills = append(e.fills, frame)
	depth := len(e.fills)
	e.log.Debug("push fill scope", slog.Int("depth", depth), slog.Bool("masked", frame.value == nil))
	defer func() {
		e.fills = e.fills[:depth-1]
		e.log.Debug("pop fill scope", slog.Int("depth", depth))
	}()

	return fn()
}
