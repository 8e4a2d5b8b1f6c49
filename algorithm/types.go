// SPDX-License-Identifier: MIT

package algorithm

import (
	"fmt"

	"github.com/katalvlaran/lvarray/value"
)

// Signature is the stack-arity contract of a callable: it consumes Args values
// and produces Outputs values.
type Signature struct {
	Args    int
	Outputs int
}

// Sig is shorthand for Signature{Args: args, Outputs: outputs}.
func Sig(args, outputs int) Signature {
	return Signature{Args: args, Outputs: outputs}
}

// Compose returns the signature of running other first and then s.
//
//	args    = other.Args + max(0, s.Args - other.Outputs)
//	outputs = s.Outputs + max(0, other.Outputs - s.Args)
func (s Signature) Compose(other Signature) Signature {
	return Signature{
		Args:    other.Args + max(0, s.Args-other.Outputs),
		Outputs: s.Outputs + max(0, other.Outputs-s.Args),
	}
}

// String renders the signature as |args.outputs.
func (s Signature) String() string {
	return fmt.Sprintf("|%d.%d", s.Args, s.Outputs)
}

// Function is an opaque callable. The algorithms only read its signature and
// hand it back to Env.Call.
type Function interface {
	Signature() Signature
}

// Env is the stack execution environment the algorithms run against.
//
// Contract:
//   - Pop fails with a stack-underflow error carrying role when the stack is empty.
//   - Call consumes exactly Signature().Args values and produces exactly
//     Signature().Outputs values, propagating any inner error immediately.
//   - Errorf builds the environment's runtime error tagged with kind
//     (one of this package's sentinels, or value.ErrTypeMismatch).
//   - WithoutFill masks the ambient fill value while fn runs and restores it on
//     every exit path, including errors.
//   - CopyTop pushes copies of the top n values, preserving their order.
type Env interface {
	Pop(role string) (value.Value, error)
	PopFunction() (Function, error)
	Push(v value.Value)
	Call(f Function) error
	Errorf(kind error, format string, args ...any) error
	ValueFill() (value.Value, bool)
	WithoutFill(fn func() error) error
	CopyTop(n int) error
}
