// SPDX-License-Identifier: MIT

package algorithm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvarray/algorithm"
	"github.com/katalvlaran/lvarray/runtime"
	"github.com/katalvlaran/lvarray/value"
)

// lessThan builds the |1.1 condition x < limit.
func lessThan(limit float64) *runtime.Function {
	return runtime.NewFunction("less", 1, 1, func(e *runtime.Env) error {
		x, err := e.Pop("x")
		if err != nil {
			return err
		}
		out, err := value.Lt.Apply(x, value.Number(limit))
		if err != nil {
			return err
		}
		e.Push(out)
		return nil
	})
}

func TestDo_IncrementUntilTen(t *testing.T) {
	t.Parallel()

	env := newEnv(t, value.Number(0))
	env.PushFunction(lessThan(10))      // condition g
	env.PushFunction(runtime.Increment) // body f
	require.NoError(t, algorithm.Do(env))
	requireStack(t, env, value.Number(10))
}

func TestDo_FalseConditionNeverRunsBody(t *testing.T) {
	t.Parallel()

	body, calls := counted("body", 1, 1, runtime.Increment.Body)
	env := newEnv(t, value.Number(20))
	env.PushFunction(lessThan(10))
	env.PushFunction(body)
	require.NoError(t, algorithm.Do(env))
	assert.Equal(t, 0, *calls)
	requireStack(t, env, value.Number(20))
}

// TestDo_ConditionKeepsItsArgument: g |1.2 returns x and the flag, so nothing
// needs copying (copy count 0).
func TestDo_ConditionKeepsItsArgument(t *testing.T) {
	t.Parallel()

	g := runtime.NewFunction("keep-less", 1, 2, func(e *runtime.Env) error {
		x, err := e.Pop("x")
		if err != nil {
			return err
		}
		flag, err := value.Lt.Apply(x, value.Number(3))
		if err != nil {
			return err
		}
		e.Push(x)
		e.Push(flag)
		return nil
	})
	env := newEnv(t, value.Number(0))
	env.PushFunction(g)
	env.PushFunction(runtime.Increment)
	require.NoError(t, algorithm.Do(env))
	requireStack(t, env, value.Number(3))
}

func TestDo_SignatureErrors(t *testing.T) {
	t.Parallel()

	noOutput := runtime.NewFunction("nothing", 1, 0, func(e *runtime.Env) error {
		_, err := e.Pop("x")
		return err
	})
	env := newEnv(t, value.Number(0))
	env.PushFunction(noOutput)
	env.PushFunction(runtime.Increment)
	err := algorithm.Do(env)
	require.ErrorIs(t, err, algorithm.ErrSignature)
	assert.Contains(t, err.Error(), "at least 1 value")

	// A body that grows the stack breaks the net-zero loop invariant.
	env = newEnv(t, value.Number(0))
	env.PushFunction(lessThan(10))
	env.PushFunction(runtime.Dup)
	err = algorithm.Do(env)
	require.ErrorIs(t, err, algorithm.ErrSignature)
	assert.Contains(t, err.Error(), "net stack change of 0")
}

func TestDo_NonBooleanCondition(t *testing.T) {
	t.Parallel()

	two := runtime.NewFunction("two", 1, 1, func(e *runtime.Env) error {
		if _, err := e.Pop("x"); err != nil {
			return err
		}
		e.Push(value.Number(2))
		return nil
	})
	env := newEnv(t, value.Number(0))
	env.PushFunction(two)
	env.PushFunction(runtime.Increment)
	err := algorithm.Do(env)
	require.ErrorIs(t, err, algorithm.ErrDomain)
	assert.Contains(t, err.Error(), "Do condition must be a boolean")
}
