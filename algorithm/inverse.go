// SPDX-License-Identifier: MIT

package algorithm

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/lvarray/value"
)

// Unpartition runs UnpartitionTransform then UnpartitionRebuild.
//
// Stack (bottom → top): original values, markers, transformed groups; f on the
// function stack. Result: the reconstructed values.
func Unpartition(env Env) error {
	if err := UnpartitionTransform(env); err != nil {
		return err
	}

	return UnpartitionRebuild(env)
}

// Ungroup runs UngroupTransform then UngroupRebuild.
//
// Stack (bottom → top): original values, indices, transformed groups; f on the
// function stack. Result: the reconstructed values.
func Ungroup(env Env) error {
	if err := UngroupTransform(env); err != nil {
		return err
	}

	return UngroupRebuild(env)
}

// UnpartitionTransform pops a |1.1 function f and the partitioned groups (one
// row per group), applies f to every group in order and pushes the results as
// a box list.
//
// Errors: ErrSignature when f is not |1.1; anything from Env.Call.
func UnpartitionTransform(env Env) error {
	return untransform(env, "partition", "unpartitioned row")
}

// UngroupTransform is UnpartitionTransform for groups.
func UngroupTransform(env Env) error {
	return untransform(env, "group", "ungrouped row")
}

// untransform applies f to every row of the grouped value, in row order, so the
// first failure reported is the one of the earliest group.
func untransform(env Env, name, role string) error {
	f, err := env.PopFunction()
	if err != nil {
		return err
	}
	if sig := f.Signature(); sig != Sig(1, 1) {
		return env.Errorf(ErrSignature, "Cannot undo %s on function with signature %s", name, sig)
	}
	grouped, err := env.Pop(name + " groups")
	if err != nil {
		return err
	}

	out := make([]value.Value, 0, grouped.RowCount())
	for row := range value.Rows(grouped) {
		env.Push(row)
		if err = env.Call(f); err != nil {
			return err
		}
		v, err := env.Pop(role)
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	env.Push(value.Boxes(out...))

	return nil
}

// run is a maximal stretch of equal adjacent markers.
type run struct {
	marker int
	length int
}

// markerRuns splits markers into runs of equal adjacent values.
func markerRuns(markers []int) []run {
	var runs []run
	for i, m := range markers {
		if i > 0 && m == markers[i-1] {
			runs[len(runs)-1].length++
			continue
		}
		runs = append(runs, run{marker: m, length: 1})
	}

	return runs
}

// UnpartitionRebuild pops the transformed groups, the markers and the original
// values, and rebuilds the original layout.
// MAIN DESCRIPTION:
//   - Walk the marker runs in order. A run with a positive marker takes the
//     rows of the next transformed group, one for one; any other run copies
//     the original rows verbatim.
//
// Errors:
//   - ErrConsistency when the number of positive runs differs from the number
//     of transformed groups, or a group's row count differs from its run.
//   - ErrDomain / ErrShapeMismatch for invalid markers (see PartitionGroups).
func UnpartitionRebuild(env Env) error {
	untransformed, err := env.Pop("untransformed groups")
	if err != nil {
		return err
	}
	markersV, err := env.Pop("partition markers")
	if err != nil {
		return err
	}
	original, err := env.Pop("original values")
	if err != nil {
		return err
	}
	markers, err := partitionMarkers(original, markersV)
	if err != nil {
		return err
	}

	runs := markerRuns(markers)
	positive := 0
	for _, r := range runs {
		if r.marker > 0 {
			positive++
		}
	}
	if positive != untransformed.RowCount() {
		return env.Errorf(ErrConsistency,
			"Cannot undo partition because the partitioned array originally had %d rows, but now it has %d",
			positive, untransformed.RowCount())
	}

	groups := value.RowSlice(untransformed)
	originalRows := value.RowSlice(original)
	out := make([]value.Value, 0, len(originalRows))
	offset, next := 0, 0
	for _, r := range runs {
		if r.marker <= 0 {
			out = append(out, originalRows[offset:offset+r.length]...)
			offset += r.length
			continue
		}
		rows := value.RowSlice(unboxAll(groups[next]))
		if len(rows) != r.length {
			return env.Errorf(ErrConsistency,
				"Cannot undo partition because group %d had %d rows, but now it has %d",
				next, r.length, len(rows))
		}
		out = append(out, rows...)
		offset += r.length
		next++
	}

	v, err := value.FromRows(out)
	if err != nil {
		return err
	}
	env.Push(v)

	return nil
}

// UngroupRebuild pops the transformed groups, the indices and the original
// values, and rebuilds the original layout.
// MAIN DESCRIPTION:
//   - Walk the indices in order. A non-negative index i takes the next unused
//     row of transformed group i; a negative index copies the original cell.
//
// Behavior highlights:
//   - The result takes the shape of the indices as its leading dimensions, so
//     multi-dimensional indices restore the original layout.
//
// Errors:
//   - ErrConsistency when an index addresses a group that no longer exists,
//     or when a group runs out of rows. Rows left over in a group are ignored.
//   - ErrDomain / ErrShapeMismatch for invalid indices (see GroupGroups).
func UngroupRebuild(env Env) error {
	untransformed, err := env.Pop("untransformed groups")
	if err != nil {
		return err
	}
	indicesV, err := env.Pop("group indices")
	if err != nil {
		return err
	}
	original, err := env.Pop("original values")
	if err != nil {
		return err
	}
	idx, cells, err := groupCells(original, indicesV)
	if err != nil {
		return err
	}

	count := untransformed.RowCount()
	if data := idx.Data(); len(data) > 0 {
		if want := lo.Max(data) + 1; want > count {
			return env.Errorf(ErrConsistency,
				"Cannot undo group because the grouped array's length changed from %d to %d",
				want, count)
		}
	}

	groups := make([][]value.Value, 0, count)
	for row := range value.Rows(untransformed) {
		groups = append(groups, value.RowSlice(unboxAll(row)))
	}
	used := make([]int, count)
	out := make([]value.Value, 0, len(cells))
	for i, g := range idx.Data() {
		if g < 0 {
			out = append(out, cells[i])
			continue
		}
		if used[g] >= len(groups[g]) {
			return env.Errorf(ErrConsistency, "A group's length was modified between grouping and ungrouping")
		}
		out = append(out, groups[g][used[g]])
		used[g]++
	}

	v, err := value.FromRows(out)
	if err != nil {
		return err
	}
	restored := append(idx.Shape(), v.Shape()[1:]...)
	if v, err = value.WithShape(v, restored); err != nil {
		return err
	}
	env.Push(v)

	return nil
}

// unboxAll strips rank-0 boxes until a plain value (a group) remains.
func unboxAll(v value.Value) value.Value {
	for {
		b, ok := v.(value.Box)
		if !ok || b.Rank() != 0 {
			return v
		}
		v = value.Unboxed(b)
	}
}
