// SPDX-License-Identifier: MIT
// Package array_test contains test helpers.
//
// Purpose:
//   - Small, deterministic fixtures for constructors, rows and the broadcast engine.

package array_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvarray/array"
	"github.com/katalvlaran/lvarray/shape"
)

// MustNew builds an array or fails the test.
func MustNew[T any](t *testing.T, s shape.Shape, data []T) array.Array[T] {
	t.Helper()
	a, err := array.New(s, data)
	require.NoError(t, err, "New(%s)", s)

	return a
}

// Iota returns 0..n-1 as float64 values.
func Iota(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

// fixtureArray is the YAML form of a (shape, flat data) pair.
type fixtureArray struct {
	Shape []int     `yaml:"shape"`
	Data  []float64 `yaml:"data"`
}

func (f fixtureArray) build(t *testing.T) array.Array[float64] {
	t.Helper()

	return MustNew(t, shape.Of(f.Shape...), append([]float64{}, f.Data...))
}

type pervadeCase struct {
	Name     string       `yaml:"name"`
	A        fixtureArray `yaml:"a"`
	B        fixtureArray `yaml:"b"`
	Want     fixtureArray `yaml:"want"`
	Mismatch bool         `yaml:"mismatch"`
}

// loadPervadeCases decodes testdata/pervade.yaml.
func loadPervadeCases(t *testing.T) []pervadeCase {
	t.Helper()
	raw, err := os.ReadFile("testdata/pervade.yaml")
	require.NoError(t, err)

	var doc struct {
		Cases []pervadeCase `yaml:"cases"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	require.NotEmpty(t, doc.Cases)

	return doc.Cases
}
