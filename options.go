// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package datrie

import "math"

const (
	// DefaultCapacity is the initial number of cells of base, check and tail.
	DefaultCapacity = 1024

	// DefaultMaxCapacity keeps every state index, and its negation used
	// for the free-list links, inside the signed 32-bit range.
	DefaultMaxCapacity = math.MaxInt32

	// minCapacity holds the sentinel, the root and the initial last link.
	minCapacity = 4
)

// Option configures a Trie created by [New].
type Option func(*config)

type config struct {
	initialCapacity int
	maxCapacity     int
}

func defaultConfig() config {
	return config{
		initialCapacity: DefaultCapacity,
		maxCapacity:     DefaultMaxCapacity,
	}
}

// WithInitialCapacity sets the number of cells allocated up front.
// Values below the minimum are raised to the minimum.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		c.initialCapacity = max(n, minCapacity)
	}
}

// WithMaxCapacity limits the growth of the arrays, an insert that needs
// more cells fails with [ErrOutOfMemory].
func WithMaxCapacity(n int) Option {
	return func(c *config) {
		c.maxCapacity = max(n, minCapacity)
	}
}
