// Package sector models sector masks over a list of propagator denominators
// and the canonical "actives first" reordering applied to them.
//
// A Mask holds one bool per denominator; a true entry marks the denominator
// as part of the sector. Permute moves the active entries of any slice to
// the front (stable), the inactive ones to the back. Expand scatters a tuple
// given only on the active positions back into full coordinates.
//
//	m, _ := sector.Parse("101100")
//	out, _ := sector.Permute([]int{11, 22, 33, 44, 55, 66}, m)
//	// out == [11 33 44 22 55 66]
//
// All functions are pure; inputs are never mutated.
package sector
