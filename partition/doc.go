// Package partition enumerates integer partitions with bounded part count.
//
// 🚀 What is a partition here?
//
//	A partition of n is a multiset of positive parts summing to n. The
//	enumerator restricts every part to be ≥ Min and the number of parts
//	to be ≤ MaxParts. Each partition is produced exactly once.
//
// ✨ Canonical order:
//   - the single-part partition (n) comes first;
//   - then, for first = Min .. n/2, every partition (first, rest...) where
//     rest is a partition of n-first with parts ≥ first.
//
// Parts after the leading one are therefore non-decreasing.
//
// ⚙️ Usage:
//
//	for p := range partition.Partitions(10, partition.WithMaxParts(4)) {
//		fmt.Println(p)
//	}
//
//	n := partition.Count(10) // 42
//
// Complexity: proportional to the number of partitions produced; the
// recursion depth is bounded by MaxParts.
package partition
