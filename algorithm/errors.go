// SPDX-License-Identifier: MIT
// Package algorithm: sentinel error set.
// Errors raised through Env.Errorf carry one of these as their kind; match
// them with errors.Is.

package algorithm

import (
	"errors"

	"github.com/katalvlaran/lvarray/array"
	"github.com/katalvlaran/lvarray/value"
)

var (
	// ErrSignature indicates a function whose stack arity violates a modifier's
	// structural requirement.
	ErrSignature = errors.New("algorithm: signature error")

	// ErrConsistency indicates an inverse reconstruction that does not match the
	// recorded markers or indices.
	ErrConsistency = errors.New("algorithm: consistency error")

	// ErrNoGroups indicates a reduce-form partition or group with zero groups
	// and no fill value to start the fold from.
	ErrNoGroups = errors.New("algorithm: no groups")

	// ErrDomain is value.ErrDomain: a non-natural count or a non-boolean condition.
	ErrDomain = value.ErrDomain

	// ErrShapeMismatch is array.ErrShapeMismatch: markers or indices that do not
	// fit the values they partition.
	ErrShapeMismatch = array.ErrShapeMismatch
)
