package problem_test

import (
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/ibpsetup/indices"
	"github.com/katalvlaran/ibpsetup/problem"
	"github.com/katalvlaran/ibpsetup/sector"
	"github.com/katalvlaran/ibpsetup/substitute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// boxInput returns the massive one-loop box with every index free.
func boxInput(t *testing.T) problem.Input {
	t.Helper()
	ints, err := indices.All(4, indices.NewBounds(4, 2, indices.WithDots(0, 1)))
	require.NoError(t, err)

	return problem.Input{
		Name:            "box1L",
		ExternalMomenta: problem.ParseMomenta("p1 p2 p3"),
		LoopMomenta:     problem.ParseMomenta("l"),
		Invariants:      map[string]int{"m2": 2, "s12": 2, "s23": 2},
		ScalarProductRules: []problem.ScalarProductRule{
			{Left: "p1", Right: "p1", Value: "0"},
			{Left: "p2", Right: "p2", Value: "0"},
			{Left: "p3", Right: "p3", Value: "0"},
			{Left: "p1", Right: "p2", Value: "s12/2"},
			{Left: "p1", Right: "p3", Value: "-s12/2-s23/2"},
			{Left: "p2", Right: "p3", Value: "s23/2"},
		},
		Denominators: []problem.Denominator{
			{Momentum: "l", Mass: "m2"},
			{Momentum: "l + p2", Mass: "m2"},
			{Momentum: "l - p1 - p3", Mass: "m2"},
			{Momentum: "l - p1", Mass: "m2"},
		},
		TopSector: sector.Full(4),
		Integrals: ints,
		Threads:   4,
	}
}

// mixedInput returns a six-denominator topology whose top sector is not a prefix.
func mixedInput(t *testing.T) problem.Input {
	t.Helper()
	mask := sector.FromInts([]int{1, 0, 1, 1, 0, 0})
	ints, err := indices.Generate(mask, indices.NewBounds(3, 1, indices.WithDots(0, 0)))
	require.NoError(t, err)

	dens := make([]problem.Denominator, 6)
	for i := range dens {
		dens[i] = problem.Denominator{Momentum: "k" + string(rune('1'+i)), Mass: "0"}
	}
	dens[2].Mass = "mt2"

	return problem.Input{
		Name:               "mixed",
		LoopMomenta:        problem.Momenta{"k1", "k2"},
		Invariants:         map[string]int{"mt2": 2, "s": 2},
		InvariantValues:    map[string]string{"mt2": "1"},
		One:                "s",
		ScalarProductRules: []problem.ScalarProductRule{{Left: "q", Right: "q", Value: "s-mt2"}},
		Denominators:       dens,
		TopSector:          mask,
		Integrals:          ints,
		PreferredMasters:   []indices.Tuple{{1, 0, 1, 1, 0, 0}, {2, 0, 1, 1, 0, -1}},
		Timeout:            90 * time.Minute,
	}
}

func TestNew_Box(t *testing.T) {
	p, err := problem.New(boxInput(t))
	require.NoError(t, err)

	assert.Equal(t, "box1L", p.Name())
	assert.Equal(t, []string{"p1", "p2", "p3"}, p.ExternalMomenta())
	assert.Equal(t, []string{"l"}, p.LoopMomenta())
	assert.Len(t, p.Integrals(), 237)
	assert.True(t, indices.IsSortedUnique(p.Integrals()))
	assert.Equal(t, 4, p.MaxR())
	assert.Equal(t, 2, p.MaxS())
	assert.Equal(t, 1, p.MaxD())
	assert.Equal(t, 15, p.TopSectorID())
	assert.Equal(t, 15, p.OriginalTopSectorID())
	assert.Equal(t, 0, p.TopSectorFirst())
	assert.Equal(t, 3, p.TopSectorLast())
	assert.Equal(t, []int{0, 1, 2, 3}, p.Permutation())
	assert.Equal(t, 4, p.Threads())
	assert.Zero(t, p.Timeout())
}

// TestNew_PermutesEverything checks that denominators, mask, integrals and
// masters all move to the actives-first layout with the same permutation.
func TestNew_PermutesEverything(t *testing.T) {
	in := mixedInput(t)
	p, err := problem.New(in)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 3, 1, 4, 5}, p.Permutation())
	assert.Equal(t, "111000", p.TopSector().String())
	assert.Equal(t, 7, p.TopSectorID())
	assert.Equal(t, 0b1101, p.OriginalTopSectorID())
	assert.Equal(t, 0, p.TopSectorFirst())
	assert.Equal(t, 2, p.TopSectorLast())

	dens := p.Denominators()
	for k, orig := range p.Permutation() {
		assert.Equal(t, in.Denominators[orig].Momentum, dens[k].Momentum)
	}
	assert.Equal(t, "(1)", dens[1].Mass, "mt2 must be substituted")

	assert.Equal(t, []indices.Tuple{{1, 1, 1, 0, 0, 0}, {2, 1, 1, 0, 0, -1}}, p.PreferredMasters())
	for _, tup := range p.Integrals() {
		assert.Len(t, tup, 6)
		for _, k := range tup[:3] {
			assert.GreaterOrEqual(t, k, 0, "active prefix of %v", tup)
		}
		for _, k := range tup[3:] {
			assert.LessOrEqual(t, k, 0, "inactive suffix of %v", tup)
		}
	}
	assert.Equal(t, 90*time.Minute, p.Timeout())
}

// TestNew_MastersMerged: masters outside the enumeration bounds still appear,
// and masters already enumerated are not duplicated.
func TestNew_MastersMerged(t *testing.T) {
	in := mixedInput(t)
	p, err := problem.New(in)
	require.NoError(t, err)

	ints := p.Integrals()
	assert.True(t, indices.IsSortedUnique(ints))
	for _, m := range p.PreferredMasters() {
		assert.True(t, indices.Contains(ints, m), "master %v missing", m)
	}
	// {1,0,1,1,0,0} is inside the bounds, {2,...} has a dot and is not.
	assert.Len(t, ints, len(in.Integrals)+1)
	assert.Equal(t, 1, p.MaxD())
}

// TestNew_Invariants covers elimination of fixed invariants and substitution in rules.
func TestNew_Invariants(t *testing.T) {
	p, err := problem.New(mixedInput(t))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"s": 2}, p.Invariants())
	assert.Equal(t, "s", p.One())
	assert.Equal(t, "s-(1)", p.ScalarProductRules()[0].Value)
}

// TestNew_MomentaVerbatim: values are substituted into masses only; a
// momentum expression keeps every symbol, even one that names a value.
func TestNew_MomentaVerbatim(t *testing.T) {
	in := boxInput(t)
	in.InvariantValues = map[string]string{"m2": "1", "p2": "7"}
	p, err := problem.New(in)
	require.NoError(t, err)

	for i, d := range p.Denominators() {
		assert.Equal(t, in.Denominators[i].Momentum, d.Momentum)
		assert.Equal(t, "(1)", d.Mass)
	}
	assert.Equal(t, "l + p2", p.Denominators()[1].Momentum)
}

// TestNew_TooWide: a top sector whose id does not fit an int is rejected up
// front, so the sector id accessors never see an unrepresentable mask.
func TestNew_TooWide(t *testing.T) {
	const n = 64
	dens := make([]problem.Denominator, n)
	for i := range dens {
		dens[i] = problem.Denominator{Momentum: "k", Mass: "0"}
	}
	p, err := problem.New(problem.Input{
		Name:         "wide",
		LoopMomenta:  problem.ParseMomenta("k"),
		Denominators: dens,
		TopSector:    sector.Full(n),
	})
	assert.ErrorIs(t, err, sector.ErrTooWide)
	assert.Nil(t, p)
}

// TestNew_Errors locks the fatal preconditions; no Problem is returned.
func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*problem.Input)
		want   error
	}{
		{name: "sector too short", mutate: func(in *problem.Input) { in.TopSector = sector.Full(3) }, want: problem.ErrSectorLength},
		{name: "sector too long", mutate: func(in *problem.Input) { in.TopSector = sector.Full(5) }, want: problem.ErrSectorLength},
		{name: "short integral", mutate: func(in *problem.Input) { in.Integrals = append(in.Integrals, indices.Tuple{1, 1}) }, want: problem.ErrTupleLength},
		{name: "long master", mutate: func(in *problem.Input) { in.PreferredMasters = []indices.Tuple{{1, 1, 1, 1, 1}} }, want: problem.ErrTupleLength},
		{name: "missing name", mutate: func(in *problem.Input) { in.Name = "" }, want: problem.ErrInvalidInput},
		{name: "no denominators", mutate: func(in *problem.Input) { in.Denominators = nil; in.TopSector = nil }, want: problem.ErrInvalidInput},
		{name: "negative threads", mutate: func(in *problem.Input) { in.Threads = -1 }, want: problem.ErrInvalidInput},
		{name: "negative timeout", mutate: func(in *problem.Input) { in.Timeout = -time.Second }, want: problem.ErrInvalidInput},
		{name: "empty rule value", mutate: func(in *problem.Input) { in.ScalarProductRules[0].Value = "" }, want: problem.ErrInvalidInput},
		{name: "unknown one", mutate: func(in *problem.Input) { in.One = "s99" }, want: problem.ErrUnknownInvariant},
		{name: "eliminated one", mutate: func(in *problem.Input) {
			in.One = "m2"
			in.InvariantValues = map[string]string{"m2": "1"}
		}, want: problem.ErrUnknownInvariant},
		{name: "cyclic values", mutate: func(in *problem.Input) {
			in.InvariantValues = map[string]string{"s12": "s23", "s23": "s12"}
		}, want: substitute.ErrCyclicValue},
		{name: "bad value name", mutate: func(in *problem.Input) { in.InvariantValues = map[string]string{"m-2": "1"} }, want: substitute.ErrBadName},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := boxInput(t)
			tc.mutate(&in)
			p, err := problem.New(in)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, p)
		})
	}
}

// TestNew_EmptyIntegrals: an empty set is valid and every maximum is zero.
func TestNew_EmptyIntegrals(t *testing.T) {
	in := boxInput(t)
	in.Integrals = nil
	p, err := problem.New(in)
	require.NoError(t, err)
	assert.Empty(t, p.Integrals())
	assert.Zero(t, p.MaxR())
	assert.Zero(t, p.MaxS())
	assert.Zero(t, p.MaxD())
}

// TestNew_DoesNotAliasInput mutates the input after New and the accessors' results.
func TestNew_DoesNotAliasInput(t *testing.T) {
	in := mixedInput(t)
	p, err := problem.New(in)
	require.NoError(t, err)

	in.TopSector[1] = true
	in.PreferredMasters[0][0] = 9
	in.Invariants["s"] = 7

	assert.Equal(t, "111000", p.TopSector().String())
	assert.Equal(t, indices.Tuple{1, 1, 1, 0, 0, 0}, p.PreferredMasters()[0])
	assert.Equal(t, 2, p.Invariants()["s"])

	got := p.Integrals()
	got[0][0] = 42
	assert.NotEqual(t, 42, p.Integrals()[0][0])
}

// TestSummary_YAML renders the hand-off value and spot-checks the layout.
func TestSummary_YAML(t *testing.T) {
	p, err := problem.New(mixedInput(t))
	require.NoError(t, err)

	s := p.Summary()
	assert.Equal(t, "111000", s.TopSector)
	assert.Equal(t, "1h30m0s", s.Timeout)
	assert.Len(t, s.Integrals, len(p.Integrals()))

	out, err := yaml.Marshal(s)
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "name: mixed\n")
	assert.Contains(t, text, "top_sector_id: 7\n")
	assert.Contains(t, text, "original_top_sector_id: 13\n")
	assert.Contains(t, text, "    - [2, 1, 1, 0, 0, -1]\n")
	assert.True(t, strings.Contains(text, "preferred_masters:\n"))

	var back problem.Summary
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, s.Integrals, back.Integrals)
}

func TestMomenta_YAML(t *testing.T) {
	var doc struct {
		A problem.Momenta `yaml:"a"`
		B problem.Momenta `yaml:"b"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: p1  p2 p3\nb: [l1, l2]\n"), &doc))
	assert.Equal(t, problem.Momenta{"p1", "p2", "p3"}, doc.A)
	assert.Equal(t, problem.Momenta{"l1", "l2"}, doc.B)
	assert.ErrorIs(t, yaml.Unmarshal([]byte("a: {x: 1}\n"), &doc), problem.ErrBadMomenta)
}
