// SPDX-License-Identifier: MIT

package runtime_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvarray/algorithm"
	"github.com/katalvlaran/lvarray/runtime"
	"github.com/katalvlaran/lvarray/value"
)

// EnvSuite exercises the reference environment.
type EnvSuite struct {
	suite.Suite
	env *runtime.Env
}

func (s *EnvSuite) SetupTest() {
	s.env = runtime.New()
}

// numbers flattens the numeric stack for cmp-based assertions.
func (s *EnvSuite) numbers() []float64 {
	var out []float64
	for _, v := range s.env.Stack() {
		f, err := value.AsNumber(v, "numeric stack")
		require.NoError(s.T(), err)
		out = append(out, f)
	}

	return out
}

func (s *EnvSuite) requireNumbers(want ...float64) {
	if diff := cmp.Diff(want, s.numbers(), cmpopts.EquateNaNs(), cmpopts.EquateEmpty()); diff != "" {
		s.T().Fatalf("stack mismatch (-want +got):\n%s", diff)
	}
}

func (s *EnvSuite) TestPushPop() {
	s.env.Push(value.Number(1))
	s.env.Push(value.Number(2))
	v, err := s.env.Pop("x")
	s.Require().NoError(err)
	s.True(value.Equal(value.Number(2), v))
	s.Equal(1, s.env.Len())
}

func (s *EnvSuite) TestPopUnderflowCarriesRole() {
	_, err := s.env.Pop("do condition")
	s.Require().ErrorIs(err, runtime.ErrStackUnderflow)
	var uerr *runtime.UnderflowError
	s.Require().ErrorAs(err, &uerr)
	s.Equal("do condition", uerr.Role)
	s.Contains(err.Error(), "do condition")

	_, err = s.env.PopFunction()
	s.Require().ErrorIs(err, runtime.ErrStackUnderflow)
}

func (s *EnvSuite) TestCopyTopPreservesOrder() {
	for _, f := range []float64{1, 2, 3} {
		s.env.Push(value.Number(f))
	}
	s.Require().NoError(s.env.CopyTop(2))
	s.requireNumbers(1, 2, 3, 2, 3)
	s.Require().NoError(s.env.CopyTop(0))
	s.Equal(5, s.env.Len())
	s.Require().ErrorIs(s.env.CopyTop(6), runtime.ErrStackUnderflow)
}

func (s *EnvSuite) TestCopyTopDoesNotAlias() {
	s.env.Push(value.Numbers(1, 2))
	s.Require().NoError(s.env.CopyTop(1))
	top, err := s.env.Pop("copy")
	s.Require().NoError(err)
	top.(value.Num).Array().Data()[0] = 9
	orig, err := s.env.Pop("original")
	s.Require().NoError(err)
	s.True(value.Equal(value.Numbers(1, 2), orig))
}

func (s *EnvSuite) TestCallChecksDeclaredSignature() {
	liar := runtime.NewFunction("liar", 1, 1, func(e *runtime.Env) error {
		e.Push(value.Number(0))
		return nil
	})
	s.env.Push(value.Number(1))
	err := s.env.Call(liar)
	s.Require().ErrorIs(err, algorithm.ErrSignature)
	s.Contains(err.Error(), "liar")
}

func (s *EnvSuite) TestCallUnderflowBeforeBody() {
	called := false
	f := runtime.NewFunction("two", 2, 1, func(*runtime.Env) error {
		called = true
		return nil
	})
	s.env.Push(value.Number(1))
	s.Require().ErrorIs(s.env.Call(f), runtime.ErrStackUnderflow)
	s.False(called)
}

func (s *EnvSuite) TestCallNotCallable() {
	s.Require().ErrorIs(s.env.Call(algorithm.Function(nil)), runtime.ErrNotCallable)
	s.Require().ErrorIs(s.env.Call(&runtime.Function{Name: "empty"}), runtime.ErrNotCallable)
}

func (s *EnvSuite) TestCallDepthLimit() {
	env := runtime.New(runtime.WithMaxCallDepth(3))
	var recurse *runtime.Function
	recurse = runtime.NewFunction("recurse", 0, 0, func(e *runtime.Env) error {
		return e.Call(recurse)
	})
	s.Require().ErrorIs(env.Call(recurse), runtime.ErrCallDepth)
}

func (s *EnvSuite) TestFillScopes() {
	env := runtime.New(runtime.WithFill(value.Number(1)))
	fill, ok := env.ValueFill()
	s.Require().True(ok)
	s.True(value.Equal(value.Number(1), fill))

	boom := errors.New("boom")
	err := env.WithFill(value.Number(2), func() error {
		inner, ok := env.ValueFill()
		s.Require().True(ok)
		s.True(value.Equal(value.Number(2), inner))

		return env.WithoutFill(func() error {
			_, ok := env.ValueFill()
			s.False(ok)
			return boom
		})
	})
	s.Require().ErrorIs(err, boom)

	fill, ok = env.ValueFill()
	s.Require().True(ok, "outer fill restored after an error exit")
	s.True(value.Equal(value.Number(1), fill))
}

func (s *EnvSuite) TestFillRestoredOnPanic() {
	s.Panics(func() {
		_ = s.env.WithFill(value.Number(3), func() error { panic("boom") })
	})
	_, ok := s.env.ValueFill()
	s.False(ok)
}

func (s *EnvSuite) TestBinaryOperandOrder() {
	sub := runtime.MustLookup("sub")
	s.env.Push(value.Number(1)) // b
	s.env.Push(value.Number(5)) // a (top)
	s.Require().NoError(s.env.Call(sub))
	s.requireNumbers(4)

	s.env.Push(value.Character('a'))
	s.env.Push(value.Character('b'))
	s.Require().ErrorIs(s.env.Call(runtime.MustLookup("add")), value.ErrTypeMismatch)
}

func (s *EnvSuite) TestNaNStack() {
	s.env.Push(value.Number(math.NaN()))
	s.Require().NoError(s.env.Call(runtime.Dup))
	s.requireNumbers(math.NaN(), math.NaN())
}

// TestRecursiveModifiers: a function body may itself run a modifier.
func (s *EnvSuite) TestRecursiveModifiers() {
	sumRows := runtime.NewFunction("sum-rows", 1, 1, func(e *runtime.Env) error {
		e.Push(value.Numbers(0, 1, 2))
		e.PushFunction(runtime.MustLookup("add"))
		return e.Run("group")
	})
	s.env.Push(value.Numbers(1, 2, 3))
	s.env.Push(value.Number(1))
	s.env.PushFunction(sumRows)
	s.Require().NoError(s.env.Run("repeat"))
	stack := s.env.Stack()
	s.Require().Len(stack, 1)
	s.True(value.Equal(value.Numbers(6), stack[0]), "got %s", stack[0])
}

func (s *EnvSuite) TestRunUnknownModifier() {
	s.Require().ErrorIs(s.env.Run("nope"), runtime.ErrNotCallable)
}

func (s *EnvSuite) TestNamesAndLookup() {
	names := runtime.Names()
	s.Contains(names, "repeat")
	s.Contains(names, "atan2")
	s.Contains(names, "identity")
	s.IsIncreasing(names)

	_, ok := runtime.Lookup("nope")
	s.False(ok)
	s.Panics(func() { runtime.MustLookup("nope") })
}

func (s *EnvSuite) TestLoggerReceivesCalls() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	env := runtime.New(runtime.WithLogger(logger))
	env.Push(value.Number(1))
	s.Require().NoError(env.Call(runtime.Increment))
	s.Contains(buf.String(), "call function")
	s.Contains(buf.String(), "name=increment")
}

func (s *EnvSuite) TestOptionsPanicOnNonsense() {
	s.Panics(func() { runtime.WithMaxCallDepth(-1) })
	s.Panics(func() { runtime.WithStackCapacity(-1) })
	s.Panics(func() { runtime.WithLogger(nil) })
}

func (s *EnvSuite) TestErrorCarriesKind() {
	err := s.env.Errorf(algorithm.ErrConsistency, "group %d changed", 2)
	s.Require().ErrorIs(err, algorithm.ErrConsistency)
	s.Equal("group 2 changed", err.Error())
	var rerr *runtime.Error
	s.Require().ErrorAs(err, &rerr)
	s.Equal(algorithm.ErrConsistency, rerr.Kind)
}

// Entry point for running the suite.
func TestEnvSuite(t *testing.T) {
	suite.Run(t, new(EnvSuite))
}
