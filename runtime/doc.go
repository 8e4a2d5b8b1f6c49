// SPDX-License-Identifier: MIT

// Package runtime provides Env, a reference stack environment that satisfies
// algorithm.Env so the array algorithms can run and be tested end to end.
//
// Env owns two stacks (values and functions), an explicit fill-scope stack and
// a call-depth counter:
//
//	env := runtime.New(runtime.WithLogger(slog.Default()))
//	env.Push(value.Number(0))
//	env.PushFunction(runtime.MustLookup("identity"))
//	err := env.Call(f)
//
// The ambient fill value is not global state: WithFill and WithoutFill push a
// frame on Env's own scope stack and pop it with defer, so every exit path
// restores the enclosing scope.
//
// Env is not a language interpreter. It has no parser and a deliberately small
// primitive catalog (see Lookup).
package runtime
