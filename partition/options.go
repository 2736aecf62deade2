// SPDX-License-Identifier: MIT
// Package: ibpsetup/partition
//
// options.go - functional options for the partition enumerator.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic on meaningless inputs; the enumerator never panics.
//   • Later options override earlier ones.

package partition

// unbounded marks "no explicit limit on the number of parts".
const unbounded = -1

// defaultMin is the smallest admissible part unless WithMin says otherwise.
const defaultMin = 1

// Option customizes Partitions and Count.
type Option func(*config)

// config aggregates the enumerator knobs. Passed by value.
type config struct {
	min      int // smallest admissible part, ≥ 1
	maxParts int // maximum number of parts; unbounded → n
}

// WithMin sets the smallest admissible part. Panics if m < 1, since a zero
// part would make every partition infinitely extendable.
func WithMin(m int) Option {
	if m < 1 {
		panic("partition: WithMin(m<1)")
	}
	return func(c *config) {
		c.min = m
	}
}

// WithMaxParts limits the number of parts. Any value is accepted:
// k ≤ 0 admits only the empty partition of 0.
func WithMaxParts(k int) Option {
	return func(c *config) {
		c.maxParts = k
	}
}

// newConfig resolves defaults for a given n and applies opts in order.
func newConfig(n int, opts ...Option) config {
	cfg := config{min: defaultMin, maxParts: unbounded}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.maxParts == unbounded {
		// n parts of size 1 is the longest possible partition.
		cfg.maxParts = n
	}

	return cfg
}
