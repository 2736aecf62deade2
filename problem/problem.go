package problem

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/ibpsetup/indices"
	"github.com/katalvlaran/ibpsetup/sector"
	"github.com/katalvlaran/ibpsetup/substitute"
)

// inputValidate checks the struct tags of Input.
var inputValidate = validator.New(validator.WithRequiredStructEnabled())

// Problem is the assembled, immutable reduction problem.
type Problem struct {
	name            string
	externalMomenta []string
	loopMomenta     []string
	invariants      map[string]int
	one             string
	rules           []ScalarProductRule
	denominators    []Denominator // actives first
	order           []int         // order[k] = caller index of denominators[k]
	topSector       sector.Mask   // actives first
	callerSector    sector.Mask   // as supplied
	integrals       []indices.Tuple
	masters         []indices.Tuple
	threads         int
	timeout         time.Duration
}

// New validates in and assembles a Problem.
//
// Validation order:
//  1. struct tags (ErrInvalidInput);
//  2. len(TopSector) == len(Denominators) (ErrSectorLength);
//  3. the top sector id fits an int (sector.ErrTooWide);
//  4. every integral and master has len(Denominators) entries (ErrTupleLength);
//  5. InvariantValues resolve without cycles (substitute.ErrCyclicValue, substitute.ErrBadName);
//  6. One, if set, names a remaining invariant (ErrUnknownInvariant).
//
// Assembly Outline:
//  1. Resolve InvariantValues and compile one Substituter from the result.
//  2. Drop the eliminated names from Invariants.
//  3. Substitute into rule values and denominator masses; momentum
//     expressions are kept verbatim.
//  4. Permute denominators, top sector, integrals and masters actives-first.
//  5. integrals = Merge(permuted integrals, permuted masters).
//
// Complexity:
//
//	Time   = O(n·(I+M)·log(I+M) + L·V) for n denominators, I integrals,
//	         M masters, V values and L bytes of substituted expression text
//	Memory = O(n·(I+M))
func New(in Input) (*Problem, error) {
	if err := inputValidate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	n := len(in.Denominators)
	if len(in.TopSector) != n {
		return nil, fmt.Errorf("%w: top sector %s has %d entries, %d denominators", ErrSectorLength, in.TopSector, len(in.TopSector), n)
	}
	// Sector ids are int bitmasks; the mask decides how wide it may be.
	if _, err := in.TopSector.ID(); err != nil {
		return nil, err
	}
	if err := checkLengths("integral", in.Integrals, n); err != nil {
		return nil, err
	}
	if err := checkLengths("preferred master", in.PreferredMasters, n); err != nil {
		return nil, err
	}

	values, err := substitute.Resolve(in.InvariantValues)
	if err != nil {
		return nil, err
	}
	sub, err := substitute.New(values)
	if err != nil {
		return nil, err
	}
	invariants := maps.Clone(in.Invariants)
	if invariants == nil {
		invariants = map[string]int{}
	}
	for name := range values {
		delete(invariants, name)
	}
	if in.One != "" {
		if _, ok := invariants[in.One]; !ok {
			return nil, fmt.Errorf("%w: %q (normalised to one)", ErrUnknownInvariant, in.One)
		}
	}

	rules := make([]ScalarProductRule, len(in.ScalarProductRules))
	for i, r := range in.ScalarProductRules {
		rules[i] = ScalarProductRule{Left: r.Left, Right: r.Right, Value: sub.Apply(r.Value)}
	}
	dens := make([]Denominator, n)
	for i, d := range in.Denominators {
		dens[i] = Denominator{Momentum: d.Momentum, Mass: sub.Apply(d.Mass)}
	}

	// Lengths were checked above; Permute cannot fail past this point.
	mask := in.TopSector.Clone()
	permDens, _ := sector.Permute(dens, mask)
	permMask, _ := sector.Permute(mask, mask)
	integrals := permuteAll(in.Integrals, mask)
	masters := permuteAll(in.PreferredMasters, mask)

	return &Problem{
		name:            in.Name,
		externalMomenta: slices.Clone([]string(in.ExternalMomenta)),
		loopMomenta:     slices.Clone([]string(in.LoopMomenta)),
		invariants:      invariants,
		one:             in.One,
		rules:           rules,
		denominators:    permDens,
		order:           sector.Order(mask),
		topSector:       sector.Mask(permMask),
		callerSector:    mask,
		integrals:       indices.Merge(integrals, masters),
		masters:         masters,
		threads:         in.Threads,
		timeout:         in.Timeout,
	}, nil
}

// checkLengths verifies that every tuple has n entries.
func checkLengths(what string, ts []indices.Tuple, n int) error {
	for i, t := range ts {
		if len(t) != n {
			return fmt.Errorf("%w: %s #%d %v has %d entries, want %d", ErrTupleLength, what, i, t, len(t), n)
		}
	}

	return nil
}

// permuteAll applies sector.Permute to every tuple; lengths must already match.
func permuteAll(ts []indices.Tuple, mask sector.Mask) []indices.Tuple {
	out := make([]indices.Tuple, len(ts))
	for i, t := range ts {
		p, _ := sector.Permute(t, mask)
		out[i] = p
	}

	return out
}
