package indices

import "slices"

// SortUnique returns a sorted copy of ts with duplicates removed. The input
// slice and its tuples are not modified; the result shares no storage with it.
func SortUnique(ts []Tuple) []Tuple {
	out := make([]Tuple, len(ts))
	for i, t := range ts {
		out[i] = t.Clone()
	}
	slices.SortFunc(out, Tuple.Compare)

	return slices.CompactFunc(out, Tuple.Equal)
}

// Merge returns the sorted, deduplicated union of the given sets.
func Merge(sets ...[]Tuple) []Tuple {
	var all []Tuple
	for _, s := range sets {
		all = append(all, s...)
	}

	return SortUnique(all)
}

// IsSortedUnique reports whether ts is strictly ascending.
func IsSortedUnique(ts []Tuple) bool {
	for i := 1; i < len(ts); i++ {
		if ts[i-1].Compare(ts[i]) >= 0 {
			return false
		}
	}

	return true
}

// Contains reports whether the strictly ascending set ts holds t.
func Contains(ts []Tuple, t Tuple) bool {
	_, found := slices.BinarySearchFunc(ts, t, Tuple.Compare)

	return found
}

// MaxRank returns the largest rank in ts, 0 for an empty set.
func MaxRank(ts []Tuple) int { return maxOf(ts, Tuple.Rank) }

// MaxNumerators returns the largest numerator count in ts, 0 for an empty set.
func MaxNumerators(ts []Tuple) int { return maxOf(ts, Tuple.Numerators) }

// MaxDots returns the largest dot count in ts, 0 for an empty set.
func MaxDots(ts []Tuple) int { return maxOf(ts, Tuple.Dots) }

func maxOf(ts []Tuple, f func(Tuple) int) int {
	m := 0
	for _, t := range ts {
		m = max(m, f(t))
	}

	return m
}
