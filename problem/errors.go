// SPDX-License-Identifier: MIT
// Package: ibpsetup/problem
//
// errors.go - sentinel errors for problem assembly.
//
// Error policy:
//   • Every failure aborts New before a Problem exists; there is no partial result.
//   • Sentinels carry the violated precondition; details are attached via %w.

package problem

import "errors"

var (
	// ErrInvalidInput indicates a failed struct-level check (missing name,
	// no denominators, negative threads or timeout, empty rule fields).
	ErrInvalidInput = errors.New("problem: invalid input")

	// ErrSectorLength indicates len(TopSector) != len(Denominators).
	ErrSectorLength = errors.New("problem: top sector length does not match denominator count")

	// ErrTupleLength indicates an integral or preferred master whose length
	// differs from the denominator count.
	ErrTupleLength = errors.New("problem: index tuple length does not match denominator count")

	// ErrUnknownInvariant indicates a normalisation invariant (One) that is
	// not among the remaining invariants.
	ErrUnknownInvariant = errors.New("problem: unknown invariant")

	// ErrBadMomenta indicates a momenta field that is neither a string nor a list.
	ErrBadMomenta = errors.New("problem: momenta must be a string or a list")
)
