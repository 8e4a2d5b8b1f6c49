// SPDX-License-Identifier: MIT

// Package array provides the generic n-dimensional container that backs every
// runtime value, together with the prefix-broadcasting engine shared by all
// pervasive (element-wise) binary operations.
//
// Array[T] owns a shape and a contiguous row-major buffer whose length always
// equals the shape's element count. A row is the sub-array obtained by fixing
// the outermost index.
//
// Ownership model:
//
//   - Arrays are value types. Rows and Cells CONSUME their receiver: the source
//     is emptied and every produced row owns freshly copied storage, so no two
//     arrays ever alias the same buffer.
//   - Reshape, Deshape and Sort mutate an exclusively owned instance in place.
//   - Clone returns an independent deep copy.
//
// Broadcasting (Pervade / PervadeErr):
//
//	shapes [2] and [2 3] → result [2 3], result[i] = op(A[i mod 2], B[i mod 6])
//	shapes [2] and [3]   → ErrShapeMismatch (neither is a prefix of the other)
//
// Element kinds are not constrained here; ordering and equality are supplied by
// the caller (see SortFunc, CompareFunc, EqualFunc), mirroring slices.SortFunc.
package array
