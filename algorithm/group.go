// SPDX-License-Identifier: MIT

package algorithm

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvarray/array"
	"github.com/katalvlaran/lvarray/value"
)

const _groupIndicesRequirement = "Group indices must be an array of integers"

// Group pops f, indices and values, then maps or reduces f over the groups
// (see GroupGroups and collapse). A reduce-form f over zero groups with no
// fill fails with ErrNoGroups.
func Group(env Env) error {
	return collapse(env, "group", GroupGroups)
}

// GroupGroups scatters the cells of values into groups by index.
// MAIN DESCRIPTION:
//   - The shape of indices must be a prefix of the shape of values. Each index
//     addresses the cell of values obtained by fixing len(indices.Shape())
//     leading coordinates, so rank-1 indices address rows.
//
// Implementation:
//   - Stage 1: convert indices to ints and check the prefix relation.
//   - Stage 2: group count = max(index)+1, or 0 when no index is non-negative.
//   - Stage 3: append every cell with a non-negative index to its group, in
//     original order; negative indices drop their cell.
//
// Errors:
//   - ErrDomain when indices are not integers.
//   - ErrShapeMismatch when indices' shape is not a prefix of values' shape.
func GroupGroups(values, indices value.Value) ([]value.Value, error) {
	idx, cells, err := groupCells(values, indices)
	if err != nil {
		return nil, err
	}
	data := idx.Data()
	if len(data) == 0 {
		return nil, nil
	}

	groups := make([][]value.Value, max(lo.Max(data)+1, 0))
	for i, g := range data {
		if g >= 0 {
			groups[g] = append(groups[g], cells[i])
		}
	}

	return stackGroups(groups)
}

// groupCells validates indices against values and splits values into the cells
// the indices address.
func groupCells(values, indices value.Value) (array.Array[int], []value.Value, error) {
	idx, err := value.AsIntArray(indices, _groupIndicesRequirement)
	if err != nil {
		return array.Array[int]{}, nil, err
	}
	if !values.Shape().HasPrefix(idx.Shape()) {
		return array.Array[int]{}, nil, fmt.Errorf("cannot group array of shape %s with indices of shape %s: %w",
			values.Shape(), idx.Shape(), ErrShapeMismatch)
	}
	cells, err := value.Cells(values, idx.Rank())
	if err != nil {
		return array.Array[int]{}, nil, err
	}

	return idx, cells, nil
}
