// SPDX-License-Identifier: MIT

package array

import (
	"math"
	"slices"
)

// CompareFloat is the total order used for floating-point leaves:
// NaN compares greater than every non-NaN and equal to another NaN.
// The result is never "unordered".
func CompareFloat(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// compareRun compares two equally long leaf runs lexicographically.
func compareRun[T any](a, b []T, cmp func(T, T) int) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// SortFunc stably sorts the rows of the array in place using a lexicographic
// order over each row's leaf elements.
// MAIN DESCRIPTION:
//   - Row sort with a caller-provided element order (like slices.SortStableFunc).
//
// Implementation:
//   - Stage 1: sort row indices stably, comparing the rows' flat runs.
//   - Stage 2: gather rows into a new buffer in sorted order.
//
// Behavior highlights:
//   - Scalars and single-row arrays are left untouched.
//   - Equal rows keep their original relative order.
//
// Complexity:
//   - Time O(r log r · RowLen()), Space O(n).
//
// AI-Hints:
//   - Pass CompareFloat for numeric arrays to get the NaN-greatest order.
func (a *Array[T]) SortFunc(cmp func(T, T) int) {
	rows := a.RowCount()
	if len(a.shape) == 0 || rows < 2 {
		return
	}
	n := a.RowLen()
	order := make([]int, rows)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(i, j int) int {
		return compareRun(a.data[i*n:(i+1)*n], a.data[j*n:(j+1)*n], cmp)
	})
	sorted := make([]T, 0, len(a.data))
	for _, i := range order {
		sorted = append(sorted, a.data[i*n:(i+1)*n]...)
	}
	a.data = sorted
}

// CompareFunc totally orders two arrays: by shape first, then leaves.
func (a Array[T]) CompareFunc(o Array[T], cmp func(T, T) int) int {
	if c := a.shape.Compare(o.shape); c != 0 {
		return c
	}

	return compareRun(a.data, o.data, cmp)
}

// EqualFunc reports whether both arrays have the same shape and pairwise equal leaves.
func (a Array[T]) EqualFunc(o Array[T], eq func(T, T) bool) bool {
	if !a.shape.Equal(o.shape) || len(a.data) != len(o.data) {
		return false
	}
	for i := range a.data {
		if !eq(a.data[i], o.data[i]) {
			return false
		}
	}

	return true
}
