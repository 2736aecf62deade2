package partition

import "iter"

// Partitions returns a lazy sequence of the partitions of n.
//
// Every yielded slice is freshly allocated and owned by the caller. The
// sequence may be ranged over any number of times; each range restarts the
// enumeration from the beginning.
//
// Edge cases:
//   - n == 0 yields exactly one result, the empty partition;
//   - n < 0 yields nothing;
//   - n > 0 with MaxParts ≤ 0 yields nothing;
//   - n > 0 with n < Min yields nothing.
func Partitions(n int, opts ...Option) iter.Seq[[]int] {
	cfg := newConfig(n, opts...)

	return func(yield func([]int) bool) {
		if n < 0 {
			return
		}
		if n > 0 && n < cfg.min {
			return
		}
		walk(n, cfg.min, cfg.maxParts, make([]int, 0, min(max(cfg.maxParts, 0), n)), yield)
	}
}

// Count returns the number of partitions Partitions(n, opts...) yields.
func Count(n int, opts ...Option) int {
	var total int
	for range Partitions(n, opts...) {
		total++
	}

	return total
}

// walk emits prefix+p for every partition p of n with parts ≥ lo and at most
// budget parts. It reports false once the consumer stops the iteration.
//
// Invariant: n ≥ lo whenever n > 0 (guaranteed by first ≤ n/2 below and by
// the guard in Partitions).
func walk(n, lo, budget int, prefix []int, yield func([]int) bool) bool {
	if n == 0 {
		return yield(append([]int(nil), prefix...))
	}
	if budget <= 0 {
		return true
	}

	// Single-part tail first.
	single := append(append(make([]int, 0, len(prefix)+1), prefix...), n)
	if !yield(single) {
		return false
	}

	// Split off first ≤ n-first so the remainder can still hold parts ≥ first.
	for first := lo; first <= n/2; first++ {
		if !walk(n-first, first, budget-1, append(prefix, first), yield) {
			return false
		}
	}

	return true
}
