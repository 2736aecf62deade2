package indices

import (
	"slices"
	"strconv"
	"strings"
)

// Tuple is one integral: a signed power per denominator.
type Tuple []int

// Rank returns the sum of positive entries.
func (t Tuple) Rank() int {
	r := 0
	for _, k := range t {
		if k > 0 {
			r += k
		}
	}

	return r
}

// Numerators returns the sum of absolute values of negative entries.
func (t Tuple) Numerators() int {
	s := 0
	for _, k := range t {
		if k < 0 {
			s -= k
		}
	}

	return s
}

// Dots returns the total power beyond 1 over positive entries.
func (t Tuple) Dots() int {
	d := 0
	for _, k := range t {
		if k > 1 {
			d += k - 1
		}
	}

	return d
}

// Compare orders tuples lexicographically; a proper prefix sorts first.
func (t Tuple) Compare(u Tuple) int {
	return slices.Compare(t, u)
}

// Equal reports element-wise equality.
func (t Tuple) Equal(u Tuple) bool {
	return slices.Equal(t, u)
}

// Clone returns an independent copy.
func (t Tuple) Clone() Tuple {
	return slices.Clone(t)
}

// String renders the tuple as "{1,1,0,-1}".
func (t Tuple) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range t {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(k))
	}
	b.WriteByte('}')

	return b.String()
}

// Bounds restricts the rank, numerator count and dot count of generated
// tuples. Every interval is closed: RMin ≤ r ≤ RMax and so on.
type Bounds struct {
	RMin, RMax int // rank
	SMin, SMax int // numerator count
	DMin, DMax int // dot count
}

// Deterministic defaults.
const (
	defaultRMin = 1
	defaultSMin = 0
	defaultDMin = 0
)

// BoundsOption customizes NewBounds.
type BoundsOption func(*boundsConfig)

type boundsConfig struct {
	b       Bounds
	dotsSet bool
}

// WithRank overrides the rank interval.
func WithRank(lo, hi int) BoundsOption {
	return func(c *boundsConfig) {
		c.b.RMin, c.b.RMax = lo, hi
	}
}

// WithNumerators overrides the numerator interval.
func WithNumerators(lo, hi int) BoundsOption {
	return func(c *boundsConfig) {
		c.b.SMin, c.b.SMax = lo, hi
	}
}

// WithDots overrides the dot interval. Without it DMax follows RMax-1.
func WithDots(lo, hi int) BoundsOption {
	return func(c *boundsConfig) {
		c.b.DMin, c.b.DMax = lo, hi
		c.dotsSet = true
	}
}

// NewBounds returns bounds with r ∈ [1, rmax], s ∈ [0, smax], d ∈ [0, rmax-1],
// then applies opts in order.
func NewBounds(rmax, smax int, opts ...BoundsOption) Bounds {
	cfg := boundsConfig{b: Bounds{
		RMin: defaultRMin, RMax: rmax,
		SMin: defaultSMin, SMax: smax,
		DMin: defaultDMin,
	}}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.dotsSet {
		cfg.b.DMax = cfg.b.RMax - 1
	}

	return cfg.b
}

// Validate rejects negative lower bounds and negative rank/numerator maxima.
// A negative DMax is accepted and admits no tuple. Intervals with min > max
// are accepted as well; they are simply empty.
func (b Bounds) Validate() error {
	switch {
	case b.RMin < 0, b.SMin < 0, b.DMin < 0:
		return errBounds(b, "negative minimum")
	case b.RMax < 0, b.SMax < 0:
		return errBounds(b, "negative maximum")
	}

	return nil
}

// Admits reports whether t satisfies all three intervals.
func (b Bounds) Admits(t Tuple) bool {
	r, s, d := t.Rank(), t.Numerators(), t.Dots()

	return b.RMin <= r && r <= b.RMax &&
		b.SMin <= s && s <= b.SMax &&
		b.DMin <= d && d <= b.DMax
}

// String renders the bounds in the r/s/d interval notation.
func (b Bounds) String() string {
	return "r∈[" + strconv.Itoa(b.RMin) + "," + strconv.Itoa(b.RMax) +
		"] s∈[" + strconv.Itoa(b.SMin) + "," + strconv.Itoa(b.SMax) +
		"] d∈[" + strconv.Itoa(b.DMin) + "," + strconv.Itoa(b.DMax) + "]"
}
