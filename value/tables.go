// SPDX-License-Identifier: MIT

package value

import (
	"cmp"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvarray/array"
)

// Per-operation kind-pair tables.
//
//	op          supported pairs
//	add         N+N, N+C, C+N, X+X, N+X, X+N
//	sub         N-N, C-N, X-X, N-X, X-N
//	mul div pow N,N  X,X  N,X  X,N
//	mod atan2   N,N
//	eq ne       N,N  C,C  X,X          → byte 0/1
//	lt le gt ge N,N  C,C               → byte 0/1
//
// N number, C character, X complex. Bytes are promoted to N before lookup.
var (
	Add = newOp("add", withComplex(map[pair]pairFunc{
		{KindNumber, KindNumber}: lift(func(a, b float64) float64 { return a + b }),
		{KindNumber, KindChar}:   lift(func(a float64, b rune) rune { return b + rune(a) }),
		{KindChar, KindNumber}:   lift(func(a rune, b float64) rune { return a + rune(b) }),
	}, func(a, b complex128) complex128 { return a + b }))

	Sub = newOp("sub", withComplex(map[pair]pairFunc{
		{KindNumber, KindNumber}: lift(func(a, b float64) float64 { return a - b }),
		{KindChar, KindNumber}:   lift(func(a rune, b float64) rune { return a - rune(b) }),
	}, func(a, b complex128) complex128 { return a - b }))

	Mul = newOp("mul", withComplex(map[pair]pairFunc{
		{KindNumber, KindNumber}: lift(func(a, b float64) float64 { return a * b }),
	}, func(a, b complex128) complex128 { return a * b }))

	Div = newOp("div", withComplex(map[pair]pairFunc{
		{KindNumber, KindNumber}: lift(func(a, b float64) float64 { return a / b }),
	}, func(a, b complex128) complex128 { return a / b }))

	Pow = newOp("pow", withComplex(map[pair]pairFunc{
		{KindNumber, KindNumber}: lift(math.Pow),
	}, cmplx.Pow))

	Mod = newOp("mod", map[pair]pairFunc{
		{KindNumber, KindNumber}: lift(floorMod),
	})

	Atan2 = newOp("atan2", map[pair]pairFunc{
		{KindNumber, KindNumber}: lift(math.Atan2),
	})

	Eq = comparison("eq", func(c int) bool { return c == 0 }, true)
	Ne = comparison("ne", func(c int) bool { return c != 0 }, true)
	Lt = comparison("lt", func(c int) bool { return c < 0 }, false)
	Le = comparison("le", func(c int) bool { return c <= 0 }, false)
	Gt = comparison("gt", func(c int) bool { return c > 0 }, false)
	Ge = comparison("ge", func(c int) bool { return c >= 0 }, false)
)

// Ops lists every binary operation in declaration order.
var Ops = []*Op{Add, Sub, Mul, Div, Mod, Pow, Atan2, Eq, Ne, Lt, Le, Gt, Ge}

// LookupOp returns the binary operation with the given name.
func LookupOp(name string) (*Op, bool) {
	for _, op := range Ops {
		if op.name == name {
			return op, true
		}
	}

	return nil, false
}

// withComplex adds the X,X / N,X / X,N entries computed by f to m.
func withComplex(m map[pair]pairFunc, f func(a, b complex128) complex128) map[pair]pairFunc {
	m[pair{KindComplex, KindComplex}] = lift(f)
	m[pair{KindNumber, KindComplex}] = lift(func(a float64, b complex128) complex128 { return f(complex(a, 0), b) })
	m[pair{KindComplex, KindNumber}] = lift(func(a complex128, b float64) complex128 { return f(a, complex(b, 0)) })

	return m
}

// comparison builds an ordering op whose result is a byte boolean.
// test receives the three-way comparison of the operands.
func comparison(name string, test func(c int) bool, complexToo bool) *Op {
	m := map[pair]pairFunc{
		{KindNumber, KindNumber}: lift(func(a, b float64) uint8 { return boolByte(test(array.CompareFloat(a, b))) }),
		{KindChar, KindChar}:     lift(func(a, b rune) uint8 { return boolByte(test(cmp.Compare(a, b))) }),
	}
	if complexToo {
		m[pair{KindComplex, KindComplex}] = lift(func(a, b complex128) uint8 {
			return boolByte(test(compareElem(a, b)))
		})
	}

	return newOp(name, m)
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}

	return 0
}

// floorMod returns a mod b with the sign of the divisor.
func floorMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}

	return r
}
