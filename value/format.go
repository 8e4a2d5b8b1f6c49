// SPDX-License-Identifier: MIT

package value

import (
	"math"
	"strconv"
)

// ---------- Formatting literals ----------
const (
	_fmtNeg      = "¯"
	_fmtInf      = "∞"
	_fmtNaN      = "NaN"
	_fmtChar     = "@"
	_fmtBoxOpen  = "⟦"
	_fmtBoxClose = "⟧"
	_fmtImag     = "i"
	_fmtPlus     = "+"
)

// formatNumber renders a float with the high-minus sign and ∞.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return _fmtNaN
	case math.IsInf(f, 1):
		return _fmtInf
	case math.IsInf(f, -1):
		return _fmtNeg + _fmtInf
	case f < 0:
		return _fmtNeg + strconv.FormatFloat(-f, 'f', -1, 64)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatElem[T Element](e T) string {
	switch x := any(e).(type) {
	case float64:
		return formatNumber(x)
	case uint8:
		return strconv.Itoa(int(x))
	case complex128:
		return formatNumber(real(x)) + _fmtPlus + formatNumber(imag(x)) + _fmtImag
	case rune:
		return _fmtChar + string(x)
	case Boxed:
		return _fmtBoxOpen + x.unbox().String() + _fmtBoxClose
	}

	return ""
}

// String renders the value:
//   - rank 0: the bare scalar ("3", "@a", "⟦[1 2]⟧")
//   - rank 1: "[a b c]"
//   - rank ≥ 2: a "┌─" header and one indented block per row.
func (o Of[T]) String() string {
	if o.arr.Data() == nil {
		return "<invalid>"
	}

	return o.arr.Format(formatElem[T])
}
