// SPDX-License-Identifier: MIT

// Package shape implements the dimension vectors that tag every array.
//
// A Shape is an ordered list of non-negative dimension sizes:
//
//   - rank          = len(shape)
//   - element count = product of the dimensions (empty shape ⇒ 1, a scalar)
//   - row count     = shape[0] (1 for a scalar)
//   - row shape     = shape[1:]
//
// Broadcasting between two arrays is defined only when one shape is an
// element-wise-equal prefix of the other (see Broadcast). General size-1
// broadcasting is deliberately not supported.
package shape
