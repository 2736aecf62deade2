// Package indices enumerates the integral index tuples targeted by an IBP
// reduction run.
//
// 🚀 What is an index tuple?
//
//	One signed integer per propagator denominator:
//	  k > 0  - the denominator raised to power k (k-1 "dots");
//	  k < 0  - an irreducible numerator of multiplicity -k;
//	  k = 0  - the denominator is absent.
//
//	Three quantities are bounded during enumeration:
//	  r - rank, the sum of positive entries;
//	  s - numerator count, the sum of |negative entries|;
//	  d - dot count, the sum of (k-1) over positive entries.
//
// ✨ Generators:
//   - Generate(mask, b): active positions carry k ≥ 0, inactive ones k ≤ 0.
//   - All(n, b): every position may carry any sign (the unrestricted family).
//   - ForSector(top, n, b): All(n, b) on the n active positions of top,
//     expanded into full coordinates with zeros elsewhere.
//
// All generators walk positions left to right with the three budgets threaded
// through the recursion as shrinking [lo, hi] intervals, so a branch is cut
// the moment a budget becomes infeasible. Values at each position are tried in
// ascending order, which makes the output strictly ascending in lexicographic
// order by construction; no post-sort or deduplication pass is needed.
//
// ⚙️ Usage:
//
//	b := indices.NewBounds(4, 2, indices.WithDots(0, 1))
//	ts, err := indices.All(4, b)
//
// Complexity: O(|output| · n) time; recursion depth n.
package indices
