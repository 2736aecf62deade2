// SPDX-License-Identifier: MIT
// Package: ibpsetup/indices
//
// errors.go - sentinel errors for the indices package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Generators return these before enumerating anything.
//   • An empty result is not an error: infeasible bounds simply yield nothing.

package indices

import (
	"errors"
	"fmt"
)

// ErrBadBounds indicates a negative bound where only non-negative values
// make sense (RMin, RMax, SMin, SMax, DMin).
var ErrBadBounds = errors.New("indices: invalid bounds")

// ErrNegativeLength indicates a negative tuple dimension.
var ErrNegativeLength = errors.New("indices: negative tuple length")

// errBounds attaches the offending bounds to ErrBadBounds.
func errBounds(b Bounds, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrBadBounds, reason, b)
}
