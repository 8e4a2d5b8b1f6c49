// SPDX-License-Identifier: MIT

package algorithm_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvarray/algorithm"
	"github.com/katalvlaran/lvarray/runtime"
	"github.com/katalvlaran/lvarray/value"
)

func TestRepeat_ZeroLeavesStackUnchanged(t *testing.T) {
	t.Parallel()

	f, calls := counted("increment", 1, 1, runtime.Increment.Body)
	env := newEnv(t, value.Number(5), value.Number(0))
	env.PushFunction(f)
	require.NoError(t, algorithm.Repeat(env))
	assert.Equal(t, 0, *calls)
	requireStack(t, env, value.Number(5))
}

func TestRepeat_NTimes(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 3, 7} {
		env := newEnv(t, value.Numbers(1, 2), value.Number(float64(n)))
		env.PushFunction(runtime.Increment)
		require.NoError(t, algorithm.Repeat(env))
		requireStack(t, env, value.Numbers(1+float64(n), 2+float64(n)))
	}
}

func TestRepeat_ErrorAbortsRemainingIterations(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f, calls := counted("flaky", 1, 1, func(e *runtime.Env) error {
		n, err := popNumber(e)
		if err != nil {
			return err
		}
		if n >= 2 {
			return boom
		}
		e.Push(value.Number(n + 1))
		return nil
	})
	env := newEnv(t, value.Number(0), value.Number(10))
	env.PushFunction(f)
	require.ErrorIs(t, algorithm.Repeat(env), boom)
	assert.Equal(t, 3, *calls)
}

func TestRepeat_CountDomain(t *testing.T) {
	t.Parallel()

	for _, count := range []value.Value{
		value.Number(1.5),
		value.Number(-1),
		value.Number(math.Inf(-1)),
		value.Number(math.NaN()),
		value.Numbers(1, 2),
		value.String("a"),
	} {
		env := newEnv(t, value.Number(0), count)
		env.PushFunction(runtime.Increment)
		err := algorithm.Repeat(env)
		require.ErrorIs(t, err, algorithm.ErrDomain, "count %s", count)
		assert.Contains(t, err.Error(), "Repetitions must be a natural number or infinity")
	}
}

func TestRepeat_CountTooLarge(t *testing.T) {
	t.Parallel()

	f, calls := counted("increment", 1, 1, runtime.Increment.Body)
	env := newEnv(t, value.Number(0), value.Number(1e20))
	env.PushFunction(f)
	err := algorithm.Repeat(env)
	require.ErrorIs(t, err, algorithm.ErrDomain)
	assert.Contains(t, err.Error(), "too large")
	assert.Equal(t, 0, *calls)
	requireStack(t, env, value.Number(0))
}

func TestRepeat_Underflow(t *testing.T) {
	t.Parallel()

	env := newEnv(t)
	env.PushFunction(runtime.Increment)
	err := algorithm.Repeat(env)
	var uerr *runtime.UnderflowError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "repetition count", uerr.Role)

	require.ErrorIs(t, algorithm.Repeat(newEnv(t, value.Number(1))), runtime.ErrStackUnderflow)
}

func TestRepeat_Fixpoint(t *testing.T) {
	t.Parallel()

	// x → min(x+1, 5) converges at 5.
	f, calls := counted("saturate", 1, 1, func(e *runtime.Env) error {
		n, err := popNumber(e)
		if err != nil {
			return err
		}
		e.Push(value.Number(math.Min(n+1, 5)))
		return nil
	})
	env := newEnv(t, value.Number(0), value.Number(math.Inf(1)))
	env.PushFunction(f)
	require.NoError(t, algorithm.Repeat(env))
	requireStack(t, env, value.Number(5))
	assert.Equal(t, 6, *calls)
}

func TestRepeat_FixpointNaNConverges(t *testing.T) {
	t.Parallel()

	f, calls := counted("nan", 1, 1, func(e *runtime.Env) error {
		if _, err := e.Pop("x"); err != nil {
			return err
		}
		e.Push(value.Number(math.NaN()))
		return nil
	})
	env := newEnv(t, value.Number(0), value.Number(math.Inf(1)))
	env.PushFunction(f)
	require.NoError(t, algorithm.Repeat(env))
	assert.Equal(t, 2, *calls)
}

func TestRepeat_FixpointSignature(t *testing.T) {
	t.Parallel()

	zeroArgs, calls := counted("seven", 0, 1, func(e *runtime.Env) error {
		e.Push(value.Number(7))
		return nil
	})
	env := newEnv(t, value.Number(0), value.Number(math.Inf(1)))
	env.PushFunction(zeroArgs)
	err := algorithm.Repeat(env)
	require.ErrorIs(t, err, algorithm.ErrSignature)
	assert.Contains(t, err.Error(), "at least 1 argument")
	assert.Equal(t, 0, *calls)

	env = newEnv(t, value.Number(0), value.Number(math.Inf(1)))
	env.PushFunction(runtime.Dup)
	err = algorithm.Repeat(env)
	require.ErrorIs(t, err, algorithm.ErrSignature)
	assert.Contains(t, err.Error(), "net stack change of 0")
}
