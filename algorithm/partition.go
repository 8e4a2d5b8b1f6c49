// SPDX-License-Identifier: MIT

package algorithm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvarray/value"
)

const _partitionMarkersRequirement = "Partition markers must be a list of integers"

// Partition pops f, markers and values, then maps or reduces f over the
// partition groups (see PartitionGroups and collapse). A reduce-form f over
// zero groups with no fill fails with ErrNoGroups.
func Partition(env Env) error {
	return collapse(env, "partition", PartitionGroups)
}

// PartitionGroups splits values into maximal runs of adjacent rows sharing the
// same positive marker.
//
// Behavior highlights:
//   - Rows whose marker is ≤ 0 are dropped.
//   - Equal markers separated by a different marker form separate groups:
//     [1 1 2 2 1 1] yields three groups.
//
// Errors:
//   - ErrDomain when markers are not integers.
//   - ErrShapeMismatch when markers are not rank 1 or their length differs from
//     the row count of values.
//
// Complexity: O(n) over the elements of values.
func PartitionGroups(values, markers value.Value) ([]value.Value, error) {
	ms, err := partitionMarkers(values, markers)
	if err != nil {
		return nil, err
	}

	var groups [][]value.Value
	last := math.MaxInt
	i := 0
	for row := range value.Rows(values) {
		m := ms[i]
		i++
		if m > 0 {
			if m != last {
				groups = append(groups, nil)
			}
			groups[len(groups)-1] = append(groups[len(groups)-1], row)
		}
		last = m
	}

	return stackGroups(groups)
}

// partitionMarkers validates markers against values and returns them flat.
func partitionMarkers(values, markers value.Value) ([]int, error) {
	a, err := value.AsIntArray(markers, _partitionMarkersRequirement)
	if err != nil {
		return nil, err
	}
	if a.Rank() != 1 {
		return nil, fmt.Errorf("%s, but it is rank %d: %w", _partitionMarkersRequirement, a.Rank(), ErrShapeMismatch)
	}
	if a.ElementCount() != values.RowCount() {
		return nil, fmt.Errorf("cannot partition array of shape %s with markers of length %d: %w",
			values.Shape(), a.ElementCount(), ErrShapeMismatch)
	}

	return a.Data(), nil
}

// stackGroups turns every slice of rows into one Value.
func stackGroups(groups [][]value.Value) ([]value.Value, error) {
	out := make([]value.Value, len(groups))
	for i, rows := range groups {
		g, err := value.FromRows(rows)
		if err != nil {
			return nil, err
		}
		out[i] = g
	}

	return out, nil
}
