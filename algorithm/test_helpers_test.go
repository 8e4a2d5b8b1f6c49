// SPDX-License-Identifier: MIT
// Package algorithm_test contains test helpers.

package algorithm_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvarray/runtime"
	"github.com/katalvlaran/lvarray/value"
)

// newEnv builds an Env with vals pushed bottom first.
func newEnv(t *testing.T, vals ...value.Value) *runtime.Env {
	t.Helper()
	env := runtime.New()
	for _, v := range vals {
		env.Push(v)
	}

	return env
}

// requireStack asserts the whole value stack, bottom first.
func requireStack(t *testing.T, env *runtime.Env, want ...value.Value) {
	t.Helper()
	got := env.Stack()
	require.Len(t, got, len(want), "stack: %v", got)
	for i := range want {
		require.Truef(t, value.Equal(want[i], got[i]),
			"stack[%d]: want %s, got %s", i, want[i], got[i])
	}
}

// requireValues asserts two value slices element by element.
func requireValues(t *testing.T, want, got []value.Value) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Truef(t, value.Equal(want[i], got[i]),
			"[%d]: want %s, got %s", i, want[i], got[i])
	}
}

// counted wraps body in a Function and counts its calls.
func counted(name string, args, outputs int, body func(*runtime.Env) error) (*runtime.Function, *int) {
	calls := new(int)
	f := runtime.NewFunction(name, args, outputs, func(e *runtime.Env) error {
		*calls++
		return body(e)
	})

	return f, calls
}

// popNumber pops a numeric scalar inside a function body.
func popNumber(e *runtime.Env) (float64, error) {
	v, err := e.Pop("test argument")
	if err != nil {
		return 0, err
	}

	return value.AsNumber(v, "test argument must be a number")
}

// groupCase is one fixture of testdata/groups.yaml.
type groupCase struct {
	Name    string      `yaml:"name"`
	Values  []float64   `yaml:"values"`
	Markers []float64   `yaml:"markers"`
	Groups  [][]float64 `yaml:"groups"`
}

type groupFixtures struct {
	Partition []groupCase `yaml:"partition"`
	Group     []groupCase `yaml:"group"`
}

// loadGroupFixtures decodes testdata/groups.yaml.
func loadGroupFixtures(t *testing.T) groupFixtures {
	t.Helper()
	raw, err := os.ReadFile("testdata/groups.yaml")
	require.NoError(t, err)
	var fx groupFixtures
	require.NoError(t, yaml.Unmarshal(raw, &fx))
	require.NotEmpty(t, fx.Partition)
	require.NotEmpty(t, fx.Group)

	return fx
}

// numberRows converts fixture groups into Values.
func numberRows(groups [][]float64) []value.Value {
	out := make([]value.Value, len(groups))
	for i, g := range groups {
		out[i] = value.Numbers(g...)
	}

	return out
}
