package topology

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/ibpsetup/indices"
	"github.com/katalvlaran/ibpsetup/problem"
	"github.com/katalvlaran/ibpsetup/sector"
)

// Input runs every enumeration and returns the unpermuted problem data.
// Explicit integrals follow the enumerated ones; problem.New sorts and
// deduplicates the union.
func (f *File) Input() (problem.Input, error) {
	var ints []indices.Tuple
	for i, e := range f.Enumerate {
		ts, err := f.enumerate(e)
		if err != nil {
			return problem.Input{}, fmt.Errorf("%w: enumerate[%d]: %w", ErrInvalidTopology, i, err)
		}
		f.logger().Debug("enumerated integrals",
			slog.String("name", f.Name),
			slog.Int("index", i),
			slog.String("bounds", e.Bounds().String()),
			slog.Int("count", len(ts)))
		ints = append(ints, ts...)
	}
	ints = append(ints, f.Integrals...)

	return problem.Input{
		Name:               f.Name,
		ExternalMomenta:    f.ExternalMomenta,
		LoopMomenta:        f.LoopMomenta,
		Invariants:         f.Invariants,
		InvariantValues:    f.InvariantValues,
		One:                f.One,
		ScalarProductRules: f.ScalarProductRules,
		Denominators:       f.Denominators,
		TopSector:          f.TopSector,
		Integrals:          ints,
		PreferredMasters:   f.PreferredMasters,
		Threads:            f.Threads,
		Timeout:            f.Timeout,
	}, nil
}

// Problem assembles the problem described by the file.
func (f *File) Problem() (*problem.Problem, error) {
	in, err := f.Input()
	if err != nil {
		return nil, err
	}
	p, err := problem.New(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}
	f.logger().Debug("problem assembled",
		slog.String("name", p.Name()),
		slog.Int("integrals", len(p.Integrals())),
		slog.Int("maxr", p.MaxR()),
		slog.Int("maxs", p.MaxS()),
		slog.Int("maxd", p.MaxD()))

	return p, nil
}

// enumerate runs a single request in the file's denominator coordinates.
func (f *File) enumerate(e Enumeration) ([]indices.Tuple, error) {
	mask := e.Sector
	if mask == nil {
		mask = f.TopSector
	}
	if len(mask) != len(f.Denominators) {
		return nil, fmt.Errorf("%w: sector %s for %d denominators", sector.ErrLengthMismatch, mask, len(f.Denominators))
	}

	switch e.Mode {
	case ModeFree:
		n := mask.Active()
		if e.Indices != nil {
			n = *e.Indices
		}
		return indices.ForSector(mask, n, e.Bounds())
	default:
		if e.Indices != nil && *e.Indices != len(mask) {
			return nil, fmt.Errorf("%w: indices=%d with sector %s", sector.ErrLengthMismatch, *e.Indices, mask)
		}
		return indices.Generate(mask, e.Bounds())
	}
}

// logger returns the configured logger, or slog.Default for zero-value files.
func (f *File) logger() *slog.Logger {
	if f.log == nil {
		return slog.Default()
	}

	return f.log
}
