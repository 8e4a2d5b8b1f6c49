// SPDX-License-Identifier: MIT

package shape

import "errors"

var (
	// ErrNotPrefix is returned by Broadcast when neither shape is a prefix of the other.
	ErrNotPrefix = errors.New("shape: neither shape is a prefix of the other")

	// ErrNegativeDim indicates a dimension below zero.
	ErrNegativeDim = errors.New("shape: negative dimension")
)
