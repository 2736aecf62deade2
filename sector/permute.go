package sector

import "fmt"

// Permute returns a new slice holding, in original relative order, every
// item whose mask entry is active followed by every item whose entry is not.
//
// Algorithm Outline:
//  1. Check len(items) == len(mask) (ErrLengthMismatch).
//  2. Append items[i] for every active i, ascending.
//  3. Append items[i] for every inactive i, ascending.
//
// Applying Permute twice with the same mask is not an involution; callers
// apply it once, when moving data into canonical storage order.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n) for the result; items and mask are not modified
func Permute[T any](items []T, mask Mask) ([]T, error) {
	if len(items) != len(mask) {
		return nil, fmt.Errorf("%w: %d items, mask %s has %d", ErrLengthMismatch, len(items), mask, len(mask))
	}
	out := make([]T, 0, len(items))
	for i, on := range mask {
		if on {
			out = append(out, items[i])
		}
	}
	for i, on := range mask {
		if !on {
			out = append(out, items[i])
		}
	}

	return out, nil
}

// Order returns the original index of each position after Permute, so
// that Permute(items, m)[k] == items[Order(m)[k]].
func Order(mask Mask) []int {
	idx := make([]int, len(mask))
	for i := range idx {
		idx[i] = i
	}
	out, _ := Permute(idx, mask) // lengths agree by construction

	return out
}

// Expand scatters values, given on the active positions of mask only, into a
// tuple of full length with zeros at the inactive positions.
func Expand(values []int, mask Mask) ([]int, error) {
	if active := mask.Active(); len(values) != active {
		return nil, fmt.Errorf("%w: %d values, mask %s has %d active", ErrActiveMismatch, len(values), mask, active)
	}
	out := make([]int, len(mask))
	k := 0
	for i, on := range mask {
		if on {
			out[i] = values[k]
			k++
		}
	}

	return out, nil
}
