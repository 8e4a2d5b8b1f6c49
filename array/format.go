// SPDX-License-Identifier: MIT

package array

import "strings"

// ---------- Formatting literals ----------
const (
	_fmtOpen   = "["
	_fmtClose  = "]"
	_fmtSep    = " "
	_fmtHeader = "┌─"
	_fmtIndent = "  "
)

// Format renders the array using cell to format each leaf.
//
//   - rank 0: the bare cell
//   - rank 1: "[a b c]"
//   - rank ≥ 2: a "┌─" header line, then every row's own rendering indented
//     by two spaces (rows of rank ≥ 2 nest their own header).
func (a Array[T]) Format(cell func(T) string) string {
	return strings.Join(a.formatLines(cell), "\n")
}

func (a Array[T]) formatLines(cell func(T) string) []string {
	switch len(a.shape) {
	case 0:
		return []string{cell(a.data[0])}
	case 1:
		parts := make([]string, len(a.data))
		for i, v := range a.data {
			parts[i] = cell(v)
		}
		return []string{_fmtOpen + strings.Join(parts, _fmtSep) + _fmtClose}
	}

	lines := []string{_fmtHeader}
	rowShape := a.shape.RowShape()
	n := a.RowLen()
	for i := 0; i < a.RowCount(); i++ {
		row := Array[T]{shape: rowShape, data: a.data[i*n : (i+1)*n]}
		for _, l := range row.formatLines(cell) {
			lines = append(lines, _fmtIndent+l)
		}
	}

	return lines
}
