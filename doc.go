// Package ibpsetup prepares integration-by-parts reduction problems for
// multi-loop Feynman integrals.
//
// A problem is a topology (momenta, kinematic invariants, denominators and a
// top sector) together with the set of index tuples the reduction targets.
// The subpackages build it bottom-up:
//
//	partition/  - integer partition sequences
//	sector/     - sector masks and the actives-first permutation
//	indices/    - budgeted enumeration of index tuples and tuple-set helpers
//	substitute/ - whole-word substitution of kinematic values into expressions
//	problem/    - validated, permuted problem assembly and its Summary
//	topology/   - YAML topology files feeding problem.New
//
// The ibpsetup command under cmd/ exposes enumeration and problem assembly
// on the command line.
package ibpsetup
