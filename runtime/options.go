// SPDX-License-Identifier: MIT

// Package runtime: functional configuration for Env.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error).

package runtime

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lvarray/value"
)

// ---------- Defaults ----------

const (
	// DefaultMaxCallDepth is the nesting limit for Call; 0 means unlimited.
	DefaultMaxCallDepth = 0

	// DefaultStackCapacity is the initial capacity of the value stack.
	DefaultStackCapacity = 16
)

// ---------- Internal panic messages ----------

const (
	panicMaxCallDepthNegative  = "runtime: WithMaxCallDepth: depth must be non-negative"
	panicStackCapacityNegative = "runtime: WithStackCapacity: capacity must be non-negative"
	panicLoggerNil             = "runtime: WithLogger: logger must not be nil"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective Env configuration.
type Options struct {
	logger        *slog.Logger
	fill          value.Value // nil ⇒ no initial fill
	maxCallDepth  int
	stackCapacity int
}

// WithLogger routes Env's debug records to logger.
//
// Errors:
//   - Panics when logger is nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = logger }
}

// WithFill sets the outermost ambient fill value.
func WithFill(v value.Value) Option {
	return func(o *Options) { o.fill = v }
}

// WithMaxCallDepth bounds the nesting of Call. Exceeding it returns ErrCallDepth.
// A depth of 0 disables the bound.
//
// Errors:
//   - Panics when depth < 0.
func WithMaxCallDepth(depth int) Option {
	if depth < 0 {
		panic(panicMaxCallDepthNegative)
	}

	return func(o *Options) { o.maxCallDepth = depth }
}

// WithStackCapacity pre-allocates the value stack.
//
// Errors:
//   - Panics when capacity < 0.
func WithStackCapacity(capacity int) Option {
	if capacity < 0 {
		panic(panicStackCapacityNegative)
	}

	return func(o *Options) { o.stackCapacity = capacity }
}

// gatherOptions applies user options over the defaults, in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxCallDepth:  DefaultMaxCallDepth,
		stackCapacity: DefaultStackCapacity,
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}
