package indices_test

import (
	"testing"

	"github.com/katalvlaran/ibpsetup/indices"
	"github.com/katalvlaran/ibpsetup/sector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAll_RegressionCounts locks the cardinalities of the reference families.
func TestAll_RegressionCounts(t *testing.T) {
	tests := []struct {
		name string
		n    int
		b    indices.Bounds
		want int
	}{
		{name: "rmax=6 smax=0", n: 4, b: indices.NewBounds(6, 0), want: 209},
		{name: "rmax=5 smax=0 dmax=1", n: 4, b: indices.NewBounds(5, 0, indices.WithDots(0, 1)), want: 47},
		{name: "box1L rmax=4 smax=2 dmax=1", n: 4, b: indices.NewBounds(4, 2, indices.WithDots(0, 1)), want: 237},
		{name: "s in [1,2]", n: 3, b: indices.NewBounds(3, 2, indices.WithNumerators(1, 2), indices.WithDots(0, 2)), want: 63},
		{name: "r in [2,4] d in [1,2]", n: 5, b: indices.NewBounds(4, 1, indices.WithRank(2, 4), indices.WithDots(1, 2)), want: 340},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := indices.All(tc.n, tc.b)
			require.NoError(t, err)
			assert.Len(t, got, tc.want)
			assert.True(t, indices.IsSortedUnique(got), "output must be strictly ascending")
			for _, tup := range got {
				assert.Truef(t, tc.b.Admits(tup), "%v violates %v", tup, tc.b)
			}
		})
	}
}

// TestGenerate_MatchesAllWithoutNumerators: with smax=0 a fully active mask
// and the free family coincide.
func TestGenerate_MatchesAllWithoutNumerators(t *testing.T) {
	b := indices.NewBounds(6, 0)
	viaMask, err := indices.Generate(sector.Full(4), b)
	require.NoError(t, err)
	viaAll, err := indices.All(4, b)
	require.NoError(t, err)
	assert.Equal(t, viaAll, viaMask)
	assert.Len(t, viaMask, 209)
}

// TestGenerate_MixedMask checks the 3-active/1-inactive family element by element.
// A count of 8 for this case only holds with the inactive
// position pinned to zero; the sign domains give these 12.
func TestGenerate_MixedMask(t *testing.T) {
	mask := sector.FromInts([]int{1, 1, 1, 0})
	got, err := indices.Generate(mask, indices.NewBounds(2, 1, indices.WithDots(0, 0)))
	require.NoError(t, err)

	want := []indices.Tuple{
		{0, 0, 1, -1}, {0, 0, 1, 0}, {0, 1, 0, -1}, {0, 1, 0, 0},
		{0, 1, 1, -1}, {0, 1, 1, 0}, {1, 0, 0, -1}, {1, 0, 0, 0},
		{1, 0, 1, -1}, {1, 0, 1, 0}, {1, 1, 0, -1}, {1, 1, 0, 0},
	}
	assert.Equal(t, want, got)
}

// TestGenerate_DomainsRespected asserts the sign discipline per position.
func TestGenerate_DomainsRespected(t *testing.T) {
	mask := sector.FromInts([]int{0, 1, 1, 0, 1})
	b := indices.NewBounds(5, 3, indices.WithDots(0, 2))
	got, err := indices.Generate(mask, b)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	require.True(t, indices.IsSortedUnique(got))
	for _, tup := range got {
		require.Len(t, tup, mask.Len())
		for i, k := range tup {
			if mask[i] {
				assert.GreaterOrEqualf(t, k, 0, "active position %d of %v", i, tup)
			} else {
				assert.LessOrEqualf(t, k, 0, "inactive position %d of %v", i, tup)
			}
		}
		assert.True(t, b.Admits(tup))
	}
}

// TestGenerate_Exhaustive compares the pruned recursion with a brute-force filter.
func TestGenerate_Exhaustive(t *testing.T) {
	mask := sector.FromInts([]int{1, 0, 1})
	b := indices.Bounds{RMin: 1, RMax: 3, SMin: 1, SMax: 2, DMin: 0, DMax: 1}
	got, err := indices.Generate(mask, b)
	require.NoError(t, err)

	var want []indices.Tuple
	for x := 0; x <= 3; x++ {
		for y := -2; y <= 0; y++ {
			for z := 0; z <= 3; z++ {
				tup := indices.Tuple{x, y, z}
				if b.Admits(tup) {
					want = append(want, tup)
				}
			}
		}
	}
	assert.Equal(t, want, got)
}

// TestGenerate_Empty checks that infeasible bounds yield nothing without error.
func TestGenerate_Empty(t *testing.T) {
	tests := []struct {
		name string
		mask sector.Mask
		b    indices.Bounds
	}{
		{name: "rmin above rmax", mask: sector.Full(3), b: indices.NewBounds(2, 0, indices.WithRank(3, 2))},
		{name: "numerators without inactive positions", mask: sector.Full(3), b: indices.NewBounds(2, 2, indices.WithNumerators(1, 2))},
		{name: "rank without active positions", mask: sector.FromInts([]int{0, 0}), b: indices.NewBounds(2, 1)},
		{name: "rmax zero", mask: sector.Full(2), b: indices.NewBounds(0, 0, indices.WithRank(0, 0))},
		{name: "empty mask", mask: sector.Mask{}, b: indices.NewBounds(2, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := indices.Generate(tc.mask, tc.b)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

// TestGenerate_RankZero: explicit zero bounds admit exactly the all-zero tuple.
func TestGenerate_RankZero(t *testing.T) {
	b := indices.Bounds{RMin: 0, RMax: 0, SMin: 0, SMax: 0, DMin: 0, DMax: 0}
	got, err := indices.Generate(sector.Full(3), b)
	require.NoError(t, err)
	assert.Equal(t, []indices.Tuple{{0, 0, 0}}, got)
}

func TestGenerate_BadBounds(t *testing.T) {
	_, err := indices.Generate(sector.Full(2), indices.Bounds{RMin: -1, RMax: 2})
	assert.ErrorIs(t, err, indices.ErrBadBounds)

	_, err = indices.All(2, indices.Bounds{RMax: 2, SMax: -1})
	assert.ErrorIs(t, err, indices.ErrBadBounds)

	_, err = indices.All(-1, indices.NewBounds(1, 0))
	assert.ErrorIs(t, err, indices.ErrNegativeLength)
}

// TestSeq_EarlyStop verifies the lazy form honours a consumer break.
func TestSeq_EarlyStop(t *testing.T) {
	seq, err := indices.Seq(sector.Full(4), indices.NewBounds(6, 0))
	require.NoError(t, err)
	n := 0
	for range seq {
		n++
		if n == 10 {
			break
		}
	}
	assert.Equal(t, 10, n)
}

// TestForSector expands active-only tuples and rejects a mismatched dimension.
func TestForSector(t *testing.T) {
	top := sector.FromInts([]int{1, 0, 1, 1, 0})
	b := indices.NewBounds(2, 1, indices.WithDots(0, 0))
	got, err := indices.ForSector(top, 3, b)
	require.NoError(t, err)

	raw, err := indices.All(3, b)
	require.NoError(t, err)
	require.Len(t, got, len(raw))
	assert.True(t, indices.IsSortedUnique(got))
	for _, tup := range got {
		assert.Zero(t, tup[1])
		assert.Zero(t, tup[4])
	}

	_, err = indices.ForSector(top, 4, b)
	assert.ErrorIs(t, err, sector.ErrActiveMismatch)
}
