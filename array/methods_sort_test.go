// SPDX-License-Identifier: MIT

package array_test

import (
	"cmp"
	"math"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvarray/array"
	"github.com/katalvlaran/lvarray/shape"
)

func TestCompareFloat_NaNOrder(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	assert.Equal(t, 1, array.CompareFloat(nan, math.Inf(1)))
	assert.Equal(t, -1, array.CompareFloat(math.Inf(1), nan))
	assert.Equal(t, 0, array.CompareFloat(nan, nan))
	assert.Equal(t, -1, array.CompareFloat(1, 2))
	assert.Equal(t, 0, array.CompareFloat(2, 2))
}

func TestSortFunc_VectorWithNaN(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	a := MustNew(t, shape.Of(5), []float64{3, nan, -1, nan, 2})
	a.SortFunc(array.CompareFloat)
	want := []float64{-1, 2, 3, nan, nan}
	if diff := gocmp.Diff(want, a.Data(), cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("sort mismatch (-want +got):\n%s", diff)
	}
}

// TestSortFunc_RowsLexicographicStable sorts rows of a matrix; ties keep order.
func TestSortFunc_RowsLexicographicStable(t *testing.T) {
	t.Parallel()

	type tagged struct {
		key int
		tag string
	}
	a := MustNew(t, shape.Of(4, 1), []tagged{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}})
	a.SortFunc(func(x, y tagged) int { return cmp.Compare(x.key, y.key) })
	got := make([]string, 0, 4)
	for _, v := range a.Data() {
		got = append(got, v.tag)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, got)

	m := MustNew(t, shape.Of(3, 2), []float64{2, 1, 1, 9, 2, 0})
	m.SortFunc(array.CompareFloat)
	assert.Equal(t, []float64{1, 9, 2, 0, 2, 1}, m.Data())
	assert.Equal(t, shape.Of(3, 2), m.Shape())
}

func TestSortFunc_ScalarNoop(t *testing.T) {
	t.Parallel()

	s := array.Scalar(3.0)
	s.SortFunc(array.CompareFloat)
	assert.Equal(t, []float64{3}, s.Data())
}

func TestCompareAndEqualFunc(t *testing.T) {
	t.Parallel()

	a := array.FromSlice([]float64{1, 2})
	b := array.FromSlice([]float64{1, 3})
	c := MustNew(t, shape.Of(1, 2), []float64{1, 2})

	require.Equal(t, -1, a.CompareFunc(b, array.CompareFloat))
	require.Equal(t, 0, a.CompareFunc(a.Clone(), array.CompareFloat))
	require.Equal(t, 1, a.CompareFunc(c, array.CompareFloat)) // shape decides first: [2] > [1 2]
}
