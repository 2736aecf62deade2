// SPDX-License-Identifier: MIT
// Package: ibpsetup/sector
//
// errors.go - sentinel errors for the sector package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context (lengths, offending input) is attached with %w wrapping.

package sector

import "errors"

// ErrLengthMismatch indicates a slice and a mask of different lengths.
var ErrLengthMismatch = errors.New("sector: length does not match mask")

// ErrActiveMismatch indicates a tuple whose length differs from the number
// of active positions of the mask it is expanded against.
var ErrActiveMismatch = errors.New("sector: tuple length does not match active count")

// ErrBadMask indicates an unparsable mask literal (anything but 0/1 digits
// and separators).
var ErrBadMask = errors.New("sector: invalid mask")

// ErrTooWide indicates a mask too long for an int bitmask ID.
var ErrTooWide = errors.New("sector: mask too wide for bitmask id")
