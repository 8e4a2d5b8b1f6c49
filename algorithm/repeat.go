// SPDX-License-Identifier: MIT

package algorithm

import (
	"math"

	"github.com/katalvlaran/lvarray/value"
)

const _repeatCountRequirement = "Repetitions must be a natural number or infinity"

// Repeat pops a function f and a repetition count n, then applies f n times.
// MAIN DESCRIPTION:
//   - Bounded repetition for finite n, fixpoint iteration for n = +∞.
//
// Implementation:
//   - Stage 1: pop f, pop n; n must be a natural number or +∞ (ErrDomain).
//   - Stage 2 (finite): n must fit in an int (ErrDomain); call f exactly n
//     times; the first error aborts.
//   - Stage 3 (+∞): validate the signature before any call, then iterate
//     call → pop next → compare with prev until next equals prev.
//
// Behavior highlights:
//   - n = 0 leaves the stack untouched.
//   - Convergence uses value.Equal (NaN equals NaN).
//   - A fixpoint whose orbit never repeats loops forever; there is no bound.
//
// Errors:
//   - ErrDomain for a non-natural count, or a finite count that does not fit
//     in an int.
//   - ErrSignature when a converging f has no arguments, or Args != Outputs.
//   - Anything returned by Env.Pop or Env.Call.
func Repeat(env Env) error {
	f, err := env.PopFunction()
	if err != nil {
		return err
	}
	nv, err := env.Pop("repetition count")
	if err != nil {
		return err
	}
	n, err := value.AsNatural(nv, _repeatCountRequirement, true)
	if err != nil {
		return env.Errorf(ErrDomain, "%s", err)
	}

	if math.IsInf(n, 1) {
		return converge(env, f)
	}
	if n >= float64(math.MaxInt) {
		return env.Errorf(ErrDomain, "Repetition count %s is too large", nv)
	}
	for i := 0; i < int(n); i++ {
		if err = env.Call(f); err != nil {
			return err
		}
	}

	return nil
}

// converge runs f until its output stops changing.
func converge(env Env, f Function) error {
	sig := f.Signature()
	if sig.Args == 0 {
		return env.Errorf(ErrSignature,
			"Converging repeat's function must have at least 1 argument, but its signature is %s", sig)
	}
	if sig.Args != sig.Outputs {
		return env.Errorf(ErrSignature,
			"Converging repeat's function must have a net stack change of 0, but its signature is %s", sig)
	}

	prev, err := env.Pop("converging value")
	if err != nil {
		return err
	}
	env.Push(prev)
	for {
		if err = env.Call(f); err != nil {
			return err
		}
		next, err := env.Pop("converging function result")
		if err != nil {
			return err
		}
		env.Push(next)
		if value.Equal(next, prev) {
			return nil
		}
		prev = next
	}
}
