// SPDX-License-Identifier: MIT

package algorithm

import (
	"fmt"

	"github.com/katalvlaran/lvarray/value"
)

// groupsFunc splits values into groups according to an auxiliary integer array.
type groupsFunc func(values, indices value.Value) ([]value.Value, error)

// collapse pops f, the auxiliary indices and the values, splits the values with
// groupsOf and aggregates the groups according to f's signature.
// MAIN DESCRIPTION:
//   - Shared driver of Partition and Group.
//
// Implementation:
//   - |0.k and |1.k: map form (collapseMap).
//   - |2.1: reduce form (collapseReduce).
//   - Anything else: ErrSignature, raised before the operands are popped.
//
// Behavior highlights:
//   - The ambient fill value is masked while f runs in both forms.
func collapse(env Env, name string, groupsOf groupsFunc) error {
	f, err := env.PopFunction()
	if err != nil {
		return err
	}
	sig := f.Signature()
	switch {
	case sig.Args == 0 || sig.Args == 1:
		return collapseMap(env, name, f, groupsOf)
	case sig.Args == 2 && sig.Outputs == 1:
		return collapseReduce(env, name, f, groupsOf)
	}

	return env.Errorf(ErrSignature, "Cannot %s with a function with signature %s", name, sig)
}

// popGroups pops the indices then the values and splits them.
func popGroups(env Env, name string, groupsOf groupsFunc) ([]value.Value, error) {
	indices, err := env.Pop(name + " indices")
	if err != nil {
		return nil, err
	}
	values, err := env.Pop(name + " values")
	if err != nil {
		return nil, err
	}

	return groupsOf(values, indices)
}

// collapseMap calls f once per group and reassembles each of f's k outputs into
// one Value with a row per group. The k results are pushed so that f's first
// output (the value f left on top) ends on top.
func collapseMap(env Env, name string, f Function, groupsOf groupsFunc) error {
	groups, err := popGroups(env, name, groupsOf)
	if err != nil {
		return err
	}
	sig := f.Signature()
	outputs := make([][]value.Value, sig.Outputs)
	for i := range outputs {
		outputs[i] = make([]value.Value, 0, len(groups))
	}
	role := fmt.Sprintf("%s's function result", name)

	err = env.WithoutFill(func() error {
		for _, g := range groups {
			if sig.Args == 1 {
				env.Push(g)
			}
			if err := env.Call(f); err != nil {
				return err
			}
			for i := range outputs {
				v, err := env.Pop(role)
				if err != nil {
					return err
				}
				outputs[i] = append(outputs[i], v)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for i := len(outputs) - 1; i >= 0; i-- {
		v, err := value.FromRows(outputs[i])
		if err != nil {
			return err
		}
		env.Push(v)
	}

	return nil
}

// collapseReduce left-folds f over the groups. The accumulator starts as the
// ambient fill value, or the first group when no fill is set; with neither it
// fails with ErrNoGroups.
func collapseReduce(env Env, name string, f Function, groupsOf groupsFunc) error {
	groups, err := popGroups(env, name, groupsOf)
	if err != nil {
		return err
	}
	acc, ok := env.ValueFill()
	if !ok {
		if len(groups) == 0 {
			return env.Errorf(ErrNoGroups, "Cannot do aggregating %s with no groups", name)
		}
		acc, groups = groups[0], groups[1:]
	}

	err = env.WithoutFill(func() error {
		for _, g := range groups {
			env.Push(g)
			env.Push(acc)
			if err := env.Call(f); err != nil {
				return err
			}
			next, err := env.Pop("reduced function result")
			if err != nil {
				return err
			}
			acc = next
		}
		return nil
	})
	if err != nil {
		return err
	}
	env.Push(acc)

	return nil
}
