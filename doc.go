// Package lvarray is the array-value execution core of a stack-based array
// language: shape-tagged multidimensional values, broadcasting binary
// operations, and the stack-driven control and aggregation algorithms built
// on top of them.
//
// 🚀 What is lvarray?
//
//	A small set of focused packages:
//		• Shapes: rank, element count, row shape, prefix broadcasting
//		• Arrays: homogeneous row-major storage with consuming row iteration
//		• Values: a sealed sum type over numbers, bytes, complex numbers,
//		  characters and boxes, with per-operation kind-pair tables
//		• Algorithms: repeat (bounded and fixpoint), do, partition, group,
//		  and their exact inverses
//		• Runtime: a reference stack environment the algorithms run against
//
// ✨ Why this layout?
//
//   - Each layer only knows the one below it: algorithm never sees storage,
//     array never sees kinds
//   - Functions are opaque: algorithms read a Signature and hand the function
//     back to the environment
//   - The ambient fill value lives on an explicit scope stack owned by the
//     environment, restored with defer on every exit path
//
// Packages:
//
//	shape/     — Shape, Broadcast, prefix checks
//	array/     — Array[T], Pervade, Rows/Cells, stable row sort, rendering
//	value/     — Value, Of[T], normalization, binary op tables, conversions
//	algorithm/ — Env and Function contracts, Repeat, Do, Partition, Group,
//	             Unpartition, Ungroup
//	runtime/   — Env implementation, options, primitive catalog
//
// Quick example:
//
//	env := runtime.New()
//	env.Push(value.String("abcd"))
//	env.Push(value.Numbers(0, 1, 0, 2))
//	env.PushFunction(runtime.Box)
//	if err := algorithm.Group(env); err != nil {
//		log.Fatal(err)
//	}
//	groups, _ := env.Pop("groups")
//	fmt.Println(groups) // [⟦[@a @c]⟧ ⟦[@b]⟧ ⟦[@d]⟧]
package lvarray
