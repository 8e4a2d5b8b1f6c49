// SPDX-License-Identifier: MIT

package algorithm

import (
	"github.com/katalvlaran/lvarray/value"
)

const _doConditionRequirement = "Do condition must be a boolean"

// Do pops a body f and a condition g, then runs g; f while g yields 1.
// MAIN DESCRIPTION:
//   - A while-loop whose condition may read (but not consume) the values the
//     body works on.
//
// Implementation:
//   - Stage 1: g must produce at least one value; its first output is the flag.
//   - Stage 2: copyCount = max(0, g.Args - (g.Outputs - 1)) values are duplicated
//     before each condition call, so g sees them without consuming them.
//   - Stage 3: f composed after g-minus-flag must have a net stack change of 0.
//   - Stage 4: loop: CopyTop(copyCount), call g, pop the flag; stop on 0,
//     otherwise call f and repeat.
//
// Errors:
//   - ErrSignature from Stage 1 or Stage 3, before any call.
//   - ErrDomain when the flag is not 0 or 1.
func Do(env Env) error {
	f, err := env.PopFunction()
	if err != nil {
		return err
	}
	g, err := env.PopFunction()
	if err != nil {
		return err
	}

	fSig, gSig := f.Signature(), g.Signature()
	if gSig.Outputs < 1 {
		return env.Errorf(ErrSignature,
			"Do's condition function must return at least 1 value, but its signature is %s", gSig)
	}
	copyCount := max(0, gSig.Args-(gSig.Outputs-1))
	gSub := Sig(gSig.Args, gSig.Outputs-1+copyCount)
	comp := fSig.Compose(gSub)
	if comp.Args != comp.Outputs {
		return env.Errorf(ErrSignature,
			"Do's functions must have a net stack change of 0, but the composed signature of %s and %s, minus the condition, is %s",
			fSig, gSig, comp)
	}

	for {
		if err = env.CopyTop(copyCount); err != nil {
			return err
		}
		if err = env.Call(g); err != nil {
			return err
		}
		cv, err := env.Pop("do condition")
		if err != nil {
			return err
		}
		cond, err := value.AsBool(cv, _doConditionRequirement)
		if err != nil {
			return env.Errorf(ErrDomain, "%s", err)
		}
		if !cond {
			return nil
		}
		if err = env.Call(f); err != nil {
			return err
		}
	}
}
