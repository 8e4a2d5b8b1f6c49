// SPDX-License-Identifier: MIT
// Package value_test contains test helpers.

package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvarray/shape"
	"github.com/katalvlaran/lvarray/value"
)

// MustNew builds a Value or fails the test.
func MustNew[T value.Element](t *testing.T, s shape.Shape, data []T) value.Of[T] {
	t.Helper()
	v, err := value.New(s, data)
	require.NoError(t, err)

	return v
}

// RequireValue asserts structural equality and prints both renderings on failure.
func RequireValue(t *testing.T, want, got value.Value) {
	t.Helper()
	require.NotNil(t, got)
	require.Truef(t, value.Equal(want, got),
		"value mismatch\nwant (%s %s):\n%s\ngot (%s %s):\n%s",
		want.Kind(), want.Shape(), want, got.Kind(), got.Shape(), got)
}
