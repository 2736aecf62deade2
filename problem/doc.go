// Package problem assembles the immutable description of one reduction
// problem from caller-supplied topology data.
//
// New validates the Input, eliminates invariants fixed by InvariantValues,
// substitutes those values into every scalar-product rule and denominator
// mass, and moves denominators, the top-sector mask, integrals and preferred
// masters into the canonical actives-first order (sector.Permute, applied
// exactly once). The final integral set is the sorted union of the supplied
// integrals and the preferred masters.
//
// A Problem is read-only. Accessors return copies; derived quantities
// (MaxR, MaxS, MaxD, TopSectorID, TopSectorFirst, TopSectorLast) are computed
// on each call. Summary flattens everything into a serialisable value for
// template renderers.
package problem
