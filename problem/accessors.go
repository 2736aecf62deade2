package problem

import (
	"maps"
	"slices"
	"time"

	"github.com/katalvlaran/ibpsetup/indices"
	"github.com/katalvlaran/ibpsetup/sector"
)

// Name returns the problem name.
func (p *Problem) Name() string { return p.name }

// ExternalMomenta returns the external momentum symbols.
func (p *Problem) ExternalMomenta() []string { return slices.Clone(p.externalMomenta) }

// LoopMomenta returns the loop momentum symbols.
func (p *Problem) LoopMomenta() []string { return slices.Clone(p.loopMomenta) }

// Invariants returns the remaining invariants and their dimension tags.
func (p *Problem) Invariants() map[string]int { return maps.Clone(p.invariants) }

// One returns the invariant normalised to 1, or "".
func (p *Problem) One() string { return p.one }

// ScalarProductRules returns the substituted rules.
func (p *Problem) ScalarProductRules() []ScalarProductRule { return slices.Clone(p.rules) }

// Denominators returns the denominators in actives-first order.
func (p *Problem) Denominators() []Denominator { return slices.Clone(p.denominators) }

// Permutation returns, for each stored denominator, its index in the input.
func (p *Problem) Permutation() []int { return slices.Clone(p.order) }

// TopSector returns the permuted mask: a prefix of true entries.
func (p *Problem) TopSector() sector.Mask { return p.topSector.Clone() }

// Integrals returns the sorted, deduplicated integral set.
func (p *Problem) Integrals() []indices.Tuple { return cloneTuples(p.integrals) }

// PreferredMasters returns the permuted preferred masters, in input order.
func (p *Problem) PreferredMasters() []indices.Tuple { return cloneTuples(p.masters) }

// Threads returns the requested thread count (0 = tool default).
func (p *Problem) Threads() int { return p.threads }

// Timeout returns the requested timeout (0 = none).
func (p *Problem) Timeout() time.Duration { return p.timeout }

// MaxR returns the largest rank in the integral set (0 when empty).
func (p *Problem) MaxR() int { return indices.MaxRank(p.integrals) }

// MaxS returns the largest numerator count in the integral set (0 when empty).
func (p *Problem) MaxS() int { return indices.MaxNumerators(p.integrals) }

// MaxD returns the largest dot count in the integral set (0 when empty).
func (p *Problem) MaxD() int { return indices.MaxDots(p.integrals) }

// TopSectorID returns the bitmask of the stored (permuted) top sector. Since
// actives form a prefix this is 2^k - 1 for k active denominators.
func (p *Problem) TopSectorID() int {
	id, _ := p.topSector.ID() // width checked in New

	return id
}

// OriginalTopSectorID returns the bitmask of the top sector over the caller's
// denominator order.
func (p *Problem) OriginalTopSectorID() int {
	id, _ := p.callerSector.ID()

	return id
}

// TopSectorFirst returns the index of the first active stored denominator, or -1.
func (p *Problem) TopSectorFirst() int { return p.topSector.First() }

// TopSectorLast returns the index of the last active stored denominator, or -1.
func (p *Problem) TopSectorLast() int { return p.topSector.Last() }

// Summary flattens the problem and its derived properties.
func (p *Problem) Summary() Summary {
	s := Summary{
		Name:                p.name,
		ExternalMomenta:     p.ExternalMomenta(),
		LoopMomenta:         p.LoopMomenta(),
		Invariants:          p.Invariants(),
		One:                 p.one,
		ScalarProductRules:  p.ScalarProductRules(),
		Denominators:        p.Denominators(),
		Permutation:         p.Permutation(),
		TopSector:           p.topSector.String(),
		TopSectorID:         p.TopSectorID(),
		OriginalTopSectorID: p.OriginalTopSectorID(),
		TopSectorFirst:      p.TopSectorFirst(),
		TopSectorLast:       p.TopSectorLast(),
		MaxR:                p.MaxR(),
		MaxS:                p.MaxS(),
		MaxD:                p.MaxD(),
		Integrals:           rows(p.integrals),
		PreferredMasters:    rows(p.masters),
		Threads:             p.threads,
	}
	if p.timeout > 0 {
		s.Timeout = p.timeout.String()
	}

	return s
}

func cloneTuples(ts []indices.Tuple) []indices.Tuple {
	out := make([]indices.Tuple, len(ts))
	for i, t := range ts {
		out[i] = t.Clone()
	}

	return out
}

func rows(ts []indices.Tuple) []Row {
	out := make([]Row, len(ts))
	for i, t := range ts {
		out[i] = Row(slices.Clone(t))
	}

	return out
}
