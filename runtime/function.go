// SPDX-License-Identifier: MIT

package runtime

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvarray/algorithm"
)

// Function is a named callable implemented in Go. Body runs against the Env
// that calls it and must honor Sig.
type Function struct {
	Name string
	Sig  algorithm.Signature
	Body func(*Env) error
}

// NewFunction builds a Function.
func NewFunction(name string, args, outputs int, body func(*Env) error) *Function {
	return &Function{Name: name, Sig: algorithm.Sig(args, outputs), Body: body}
}

// Signature returns the declared stack arity.
func (f *Function) Signature() algorithm.Signature { return f.Sig }

func (f *Function) String() string { return f.Name + f.Sig.String() }

// Call runs f.
// Implementation:
//   - Stage 1: f must be a *Function with a body (ErrNotCallable).
//   - Stage 2: enforce WithMaxCallDepth (ErrCallDepth).
//   - Stage 3: require Args values on the stack (*UnderflowError).
//   - Stage 4: run the body; on success the stack must have changed by exactly
//     Outputs - Args, otherwise the declared signature was wrong (ErrSignature).
//
// Errors from the body are returned unchanged.
func (e *Env) Call(f algorithm.Function) error {
	fn, ok := f.(*Function)
	if !ok || fn == nil || fn.Body == nil {
		return fmt.Errorf("runtime.Call(%v): %w", f, ErrNotCallable)
	}
	if e.maxCallDepth > 0 && e.depth >= e.maxCallDepth {
		return fmt.Errorf("runtime.Call(%s): depth %d: %w", fn.Name, e.depth, ErrCallDepth)
	}
	sig := fn.Sig
	before := len(e.stack)
	if before < sig.Args {
		return &UnderflowError{Role: fmt.Sprintf("argument %d of %s", before+1, fn.Name)}
	}

	e.depth++
	defer func() { e.depth-- }()
	e.log.Debug("call function",
		slog.String("name", fn.Name),
		slog.String("signature", sig.String()),
		slog.Int("stack-size", before),
		slog.Int("depth", e.depth))

	if err := fn.Body(e); err != nil {
		return err
	}
	if got, want := len(e.stack)-before, sig.Outputs-sig.Args; got != want {
		return e.Errorf(algorithm.ErrSignature,
			"Function %s declared signature %s but changed the stack by %d", fn.Name, sig, got)
	}

	return nil
}
