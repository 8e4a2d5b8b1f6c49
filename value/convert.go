// SPDX-License-Identifier: MIT

package value

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvarray/array"
)

// numbers views a number or byte value as float64 leaves.
func numbers(v Value) (array.Array[float64], bool) {
	n, ok := promote(v).(Num)

	return n.arr, ok
}

// AsNumber extracts a numeric scalar. requirement is the message used when v
// is not one ("Repetitions must be a natural number or infinity").
//
// Errors: ErrDomain.
func AsNumber(v Value, requirement string) (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("%s: %w", requirement, ErrNilValue)
	}
	a, ok := numbers(v)
	if !ok || a.Rank() != 0 {
		return 0, fmt.Errorf("%s, but it is a rank %d %s array: %w", requirement, v.Rank(), v.Kind(), ErrDomain)
	}

	return a.Data()[0], nil
}

// AsBool extracts a boolean scalar: a number or byte equal to 0 or 1.
//
// Errors: ErrDomain.
func AsBool(v Value, requirement string) (bool, error) {
	n, err := AsNumber(v, requirement)
	if err != nil {
		return false, err
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}

	return false, fmt.Errorf("%s, but it is %s: %w", requirement, formatNumber(n), ErrDomain)
}

// AsIntArray converts a number or byte value of any rank whose leaves are all
// integers into an int array with the same shape.
//
// Errors: ErrDomain for other kinds or fractional / non-finite leaves.
func AsIntArray(v Value, requirement string) (array.Array[int], error) {
	if v == nil {
		return array.Array[int]{}, fmt.Errorf("%s: %w", requirement, ErrNilValue)
	}
	a, ok := numbers(v)
	if !ok {
		return array.Array[int]{}, fmt.Errorf("%s, but it is a %s array: %w", requirement, v.Kind(), ErrDomain)
	}

	return array.MapErr(a, func(f float64) (int, error) {
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, fmt.Errorf("%s, but it contains %s: %w", requirement, formatNumber(f), ErrDomain)
		}
		return int(f), nil
	})
}

// AsInts is AsIntArray restricted to rank ≤ 1, returning the flat slice.
//
// Errors: ErrDomain.
func AsInts(v Value, requirement string) ([]int, error) {
	a, err := AsIntArray(v, requirement)
	if err != nil {
		return nil, err
	}
	if a.Rank() > 1 {
		return nil, fmt.Errorf("%s, but it is rank %d: %w", requirement, a.Rank(), ErrDomain)
	}

	return a.Data(), nil
}

// AsNatural extracts a non-negative integer scalar, or +∞ when allowInf is set.
// The result is returned as float64 so that +∞ survives.
//
// Errors: ErrDomain.
func AsNatural(v Value, requirement string, allowInf bool) (float64, error) {
	n, err := AsNumber(v, requirement)
	if err != nil {
		return 0, err
	}
	if math.IsInf(n, 1) && allowInf {
		return n, nil
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 || n != math.Trunc(n) {
		return 0, fmt.Errorf("%s, but it is %s: %w", requirement, formatNumber(n), ErrDomain)
	}

	return n, nil
}
