// SPDX-License-Identifier: MIT
// Package: array
//
// Purpose:
//   - Provide the single prefix-broadcasting kernel behind every pervasive
//     binary operation, so the cyclic indexing rule lives in exactly one place.
//
// Rule:
//   - Defined only if one shape is an element-wise prefix of the other.
//   - The longer shape is the result shape.
//   - result[i] = op(A[i mod len(A)], B[i mod len(B)]).
//
// Determinism & Performance:
//   - One flat pass 0..n-1; equal-shape inputs take a modulo-free fast path.

package array

import "fmt"

// Pervade applies an infallible element operation across a and b with
// prefix-shape broadcasting.
//
// Errors: ErrShapeMismatch (also matches shape.ErrNotPrefix).
// Complexity: Time O(n), Space O(n) where n is the result element count.
func Pervade[A, B, C any](a Array[A], b Array[B], op func(A, B) C) (Array[C], error) {
	return PervadeErr(a, b, func(x A, y B) (C, error) { return op(x, y), nil })
}

// PervadeErr is Pervade for element operations that can fail (e.g. recursion
// into boxed values). The first element error aborts the whole operation.
// MAIN DESCRIPTION:
//   - Shared broadcast engine; every binary value op funnels through here.
//
// Implementation:
//   - Stage 1: resolve the result shape via ValidatePrefix.
//   - Stage 2: if both buffers have the result length, zip them directly.
//   - Stage 3: otherwise index the shorter buffer cyclically (i mod len).
//
// Behavior highlights:
//   - A zero-length prefix implies a zero-length result, so the modulo never
//     divides by zero.
//
// Errors:
//   - ErrShapeMismatch for incompatible shapes; element errors pass through unwrapped.
func PervadeErr[A, B, C any](a Array[A], b Array[B], op func(A, B) (C, error)) (Array[C], error) {
	out, err := ValidatePrefix(a.shape, b.shape)
	if err != nil {
		return Array[C]{}, fmt.Errorf("Pervade(%s, %s): %w", a.shape, b.shape, err)
	}
	n := out.ElementCount()
	data := make([]C, n)
	la, lb := len(a.data), len(b.data)

	// Fast path: identical element counts, no cyclic indexing required.
	if la == n && lb == n {
		for i := 0; i < n; i++ {
			c, e := op(a.data[i], b.data[i])
			if e != nil {
				return Array[C]{}, e
			}
			data[i] = c
		}

		return Array[C]{shape: out, data: data}, nil
	}

	for i := 0; i < n; i++ {
		c, e := op(a.data[i%la], b.data[i%lb])
		if e != nil {
			return Array[C]{}, e
		}
		data[i] = c
	}

	return Array[C]{shape: out, data: data}, nil
}
