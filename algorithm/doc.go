// SPDX-License-Identifier: MIT

// Package algorithm implements the stack-driven control and aggregation
// modifiers of the array runtime: bounded and fixpoint repetition, the
// conditional do-loop, partition and group (map and reduce forms), and the
// exact inverses unpartition and ungroup.
//
// 🚀 What lives here?
//
//	Every algorithm is a plain function taking an Env. The Env is the only
//	way an algorithm touches the outside world: it pops operands, pushes
//	results, and calls opaque Functions whose stack arity is described by a
//	Signature. The algorithms never inspect a function body.
//
// ✨ Key features:
//   - Repeat: n sequential calls, or a fixpoint iteration when n is +∞
//   - Do: loop while a condition function yields 1
//   - Partition: runs of equal positive markers become groups
//   - Group: non-negative indices scatter rows (or sub-row cells) into groups
//   - collapse: map form (|0.k, |1.k) and reduce form (|2.1) over groups
//   - Unpartition / Ungroup: rebuild the original layout from transformed groups
//
// ⚙️ Usage:
//
//	env := runtime.New()
//	env.Push(value.Numbers(10, 20, 30, 40, 50)) // values
//	env.Push(value.Numbers(1, 1, 0, 2, 2))      // markers
//	env.PushFunction(runtime.Box)               // |1.1
//	err := algorithm.Partition(env)             // → [⟦[10 20]⟧ ⟦[40 50]⟧]
//
// Errors are synchronous and abort the algorithm immediately. Stack effects
// committed before the failing call are not rolled back.
package algorithm
