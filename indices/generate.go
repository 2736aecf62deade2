package indices

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/ibpsetup/sector"
)

// domain is the set of values a position may take.
type domain uint8

const (
	nonNegative domain = iota // sector-active: 0 or a propagator power
	nonPositive               // sector-inactive: 0 or a numerator power
	free                      // any sign
)

// Generate returns every tuple of length len(mask) whose active positions
// hold values ≥ 0, whose inactive positions hold values ≤ 0, and whose rank,
// numerator count and dot count lie within b.
//
// The result is strictly ascending; the slice is nil when nothing is feasible.
func Generate(mask sector.Mask, b Bounds) ([]Tuple, error) {
	seq, err := Seq(mask, b)
	if err != nil {
		return nil, err
	}

	return collect(seq), nil
}

// Seq is the lazy form of Generate.
func Seq(mask sector.Mask, b Bounds) (iter.Seq[Tuple], error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	doms := make([]domain, len(mask))
	for i, on := range mask {
		if !on {
			doms[i] = nonPositive
		}
	}

	return enumerate(doms, b), nil
}

// All returns every tuple of length n, with any sign at any position, whose
// rank, numerator count and dot count lie within b.
func All(n int, b Bounds) ([]Tuple, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	doms := make([]domain, n)
	for i := range doms {
		doms[i] = free
	}

	return collect(enumerate(doms, b)), nil
}

// ForSector enumerates All(n, b) in the coordinates of the n active positions
// of top and expands each tuple to len(top) entries, zero at every inactive
// position. It fails with sector.ErrActiveMismatch when top.Active() != n.
func ForSector(top sector.Mask, n int, b Bounds) ([]Tuple, error) {
	if active := top.Active(); active != n {
		return nil, fmt.Errorf("%w: mask %s has %d active positions, want %d", sector.ErrActiveMismatch, top, active, n)
	}
	raw, err := All(n, b)
	if err != nil {
		return nil, err
	}
	out := make([]Tuple, 0, len(raw))
	for _, t := range raw {
		full, err := sector.Expand(t, top)
		if err != nil {
			return nil, err
		}
		out = append(out, full)
	}

	return out, nil
}

// interval is a closed remaining budget [lo, hi].
type interval struct{ lo, hi int }

// take returns the interval left after consuming v.
func (iv interval) take(v int) interval { return interval{iv.lo - v, iv.hi - v} }

// admitsZero reports whether a zero remainder satisfies the interval.
func (iv interval) admitsZero() bool { return iv.lo <= 0 && 0 <= iv.hi }

// walker carries the per-enumeration state of the budgeted recursion.
type walker struct {
	doms []domain
	cur  Tuple
	// rankLeft[i] / numLeft[i]: positions at index ≥ i able to add rank / numerators.
	rankLeft []int
	numLeft  []int
	yield    func(Tuple) bool
}

// enumerate builds the tuple sequence for the given per-position domains.
func enumerate(doms []domain, b Bounds) iter.Seq[Tuple] {
	n := len(doms)
	rankLeft := make([]int, n+1)
	numLeft := make([]int, n+1)
	for i := n - 1; i >= 0; i-- {
		rankLeft[i], numLeft[i] = rankLeft[i+1], numLeft[i+1]
		if doms[i] != nonPositive {
			rankLeft[i]++
		}
		if doms[i] != nonNegative {
			numLeft[i]++
		}
	}
	r := interval{b.RMin, b.RMax}
	s := interval{b.SMin, b.SMax}
	d := interval{b.DMin, b.DMax}

	return func(yield func(Tuple) bool) {
		w := &walker{
			doms:     doms,
			cur:      make(Tuple, n),
			rankLeft: rankLeft,
			numLeft:  numLeft,
			yield:    yield,
		}
		w.walk(0, r, s, d)
	}
}

// walk assigns position pos and recurses; it reports false once the consumer
// stops the iteration. r, s and d are the budgets still to be spent.
//
// Algorithm Outline:
//  1. Prune when any budget is exhausted (hi < 0), or when a positive lower
//     bound remains and no later position can still raise it (rankLeft,
//     numLeft suffix counts).
//  2. At pos == n, yield a copy of cur if every budget admits zero.
//  3. Otherwise try, in ascending value order:
//     -s.hi .. -1  numerators, unless the position is nonNegative;
//     0;
//     1 .. r.hi    powers with k-1 <= d.hi, unless the position is nonPositive.
//     Each choice recurses with the budgets reduced by its cost.
//
// Ascending values at every position make the output strictly ascending in
// Tuple.Compare order, so no sort is needed.
//
// Complexity:
//
//	Time   = O(T·n) for T yielded tuples of length n; pruning keeps dead
//	         branches bounded by the live ones at each level
//	Memory = O(n) recursion depth plus one Tuple per yielded value
func (w *walker) walk(pos int, r, s, d interval) bool {
	if r.hi < 0 || s.hi < 0 || d.hi < 0 {
		return true
	}
	// Lower bounds that no remaining position can still raise.
	if (r.lo > 0 || d.lo > 0) && w.rankLeft[pos] == 0 {
		return true
	}
	if s.lo > 0 && w.numLeft[pos] == 0 {
		return true
	}
	if pos == len(w.doms) {
		if r.admitsZero() && s.admitsZero() && d.admitsZero() {
			return w.yield(w.cur.Clone())
		}
		return true
	}

	dom := w.doms[pos]
	if dom != nonNegative {
		// Numerator -k for k = s.hi .. 1, ascending in value.
		for k := s.hi; k >= 1; k-- {
			w.cur[pos] = -k
			if !w.walk(pos+1, r, s.take(k), d) {
				return false
			}
		}
	}

	w.cur[pos] = 0
	if !w.walk(pos+1, r, s, d) {
		return false
	}

	if dom != nonPositive {
		// Power k consumes k rank and k-1 dots; dots only grow with k.
		for k := 1; k <= r.hi && k-1 <= d.hi; k++ {
			w.cur[pos] = k
			if !w.walk(pos+1, r.take(k), s, d.take(k-1)) {
				return false
			}
		}
	}
	w.cur[pos] = 0

	return true
}

// collect drains seq into a slice.
func collect(seq iter.Seq[Tuple]) []Tuple {
	var out []Tuple
	for t := range seq {
		out = append(out, t)
	}

	return out
}
