// SPDX-License-Identifier: MIT

package runtime

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvarray/algorithm"
	"github.com/katalvlaran/lvarray/value"
)

// Modifier is an algorithm that takes its function operands from the function
// stack (Repeat, Do, Partition, ...).
type Modifier func(algorithm.Env) error

// Built-in functions.
var (
	// Identity leaves its argument unchanged.
	Identity = NewFunction("identity", 1, 1, func(*Env) error { return nil })

	// Drop discards the top value.
	Drop = NewFunction("pop", 1, 0, func(e *Env) error {
		_, err := e.Pop("value to pop")
		return err
	})

	// Dup duplicates the top value.
	Dup = NewFunction("dup", 1, 2, func(e *Env) error { return e.CopyTop(1) })

	// Box wraps the top value in a rank-0 box.
	Box = unary("box", func(v value.Value) (value.Value, error) { return value.BoxScalar(v), nil })

	// Unbox unwraps a rank-0 box; other values pass through.
	Unbox = unary("unbox", func(v value.Value) (value.Value, error) { return value.Unboxed(v), nil })

	// Negate multiplies by ¯1.
	Negate = unary("negate", func(v value.Value) (value.Value, error) {
		return value.Mul.Apply(v, value.Number(-1))
	})

	// Increment adds 1.
	Increment = unary("increment", func(v value.Value) (value.Value, error) {
		return value.Add.Apply(v, value.Number(1))
	})

	// Sort sorts the rows of the top value.
	Sort = unary("sort", func(v value.Value) (value.Value, error) { return value.Sort(v), nil })
)

// unary builds a |1.1 function from a value transform.
func unary(name string, op func(value.Value) (value.Value, error)) *Function {
	return NewFunction(name, 1, 1, func(e *Env) error {
		v, err := e.Pop(name + " argument")
		if err != nil {
			return err
		}
		out, err := op(v)
		if err != nil {
			return err
		}
		e.Push(out)
		return nil
	})
}

// Binary wraps a pervasive operation as a |2.1 function. The top of the stack
// is the first operand: with [.. b a] on the stack it pushes op(a, b).
func Binary(op *value.Op) *Function {
	name := op.Name()
	return NewFunction(name, 2, 1, func(e *Env) error {
		a, err := e.Pop(name + " first argument")
		if err != nil {
			return err
		}
		b, err := e.Pop(name + " second argument")
		if err != nil {
			return err
		}
		out, err := op.Apply(a, b)
		if err != nil {
			return err
		}
		e.Push(out)
		return nil
	})
}

// Const builds a |0.1 function pushing a copy of v.
func Const(v value.Value) *Function {
	return NewFunction(fmt.Sprintf("const %s", v), 0, 1, func(e *Env) error {
		e.Push(value.Clone(v))
		return nil
	})
}

var functions = func() map[string]*Function {
	m := map[string]*Function{}
	for _, f := range []*Function{Identity, Drop, Dup, Box, Unbox, Negate, Increment, Sort} {
		m[f.Name] = f
	}
	for _, op := range value.Ops {
		m[op.Name()] = Binary(op)
	}
	return m
}()

var modifiers = map[string]Modifier{
	"repeat":      algorithm.Repeat,
	"do":          algorithm.Do,
	"partition":   algorithm.Partition,
	"group":       algorithm.Group,
	"unpartition": algorithm.Unpartition,
	"ungroup":     algorithm.Ungroup,
}

// Lookup returns the built-in function with the given name.
func Lookup(name string) (*Function, bool) {
	f, ok := functions[name]
	return f, ok
}

// MustLookup is Lookup that panics on an unknown name.
func MustLookup(name string) *Function {
	f, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("runtime: unknown function %q", name))
	}

	return f
}

// LookupModifier returns the modifier with the given name.
func LookupModifier(name string) (Modifier, bool) {
	m, ok := modifiers[name]
	return m, ok
}

// Names lists the built-in functions and modifiers, sorted.
func Names() []string {
	names := append(lo.Keys(functions), lo.Keys(modifiers)...)
	slices.Sort(names)

	return names
}

// Run applies the named modifier to e.
//
// Errors: ErrNotCallable for an unknown name; anything from the modifier.
func (e *Env) Run(modifier string) error {
	m, ok := LookupModifier(modifier)
	if !ok {
		return fmt.Errorf("runtime.Run(%q): %w", modifier, ErrNotCallable)
	}
	e.log.Debug("run modifier", "name", modifier, "stack-size", len(e.stack))

	return m(e)
}
