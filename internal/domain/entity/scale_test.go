package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectScale_Boundaries(t *testing.T) {
	cases := []struct {
		name string
		peak float64
		want ScaleTier
	}{
		{"tiny", 0.5, ScaleTiers[0]},
		{"exactly ten", 10, ScaleTiers[0]},
		{"just over ten", 10.01, ScaleTiers[1]},
		{"exactly one hundred", 100, ScaleTiers[1]},
		{"hundreds", 750, ScaleTiers[2]},
		{"exactly one thousand", 1000, ScaleTiers[2]},
		{"large", 125000, ScaleTiers[3]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SelectScale([]float64{0, tc.peak, 1})
			assert.Equal(t, tc.want.UnitSuffix, got.UnitSuffix)
			assert.Equal(t, tc.want.Divisor, got.Divisor)
		})
	}
}

func TestSelectScale_AllZeroSelectsSmallestTier(t *testing.T) {
	got := SelectScale([]float64{0, 0, 0})
	assert.Equal(t, ScaleTiers[0], got)
}

func TestSelectScale_EmptySeriesSelectsSmallestTier(t *testing.T) {
	assert.Equal(t, ScaleTiers[0], SelectScale(nil))
}

func TestSelectScale_DoesNotMutateCallerSeries(t *testing.T) {
	series := []float64{5, 200, 1, 42}
	SelectScale(series)
	assert.Equal(t, []float64{5, 200, 1, 42}, series)
}

func TestSelectScale_Monotonic(t *testing.T) {
	// When every value of series A is <= the corresponding value of series B,
	// A must never get a coarser tier than B.
	a := []float64{1, 5, 9}
	b := []float64{50, 500, 9000}

	tierIndex := func(tier ScaleTier) int {
		for i, t := range ScaleTiers {
			if t.UnitSuffix == tier.UnitSuffix && t.Divisor == tier.Divisor {
				return i
			}
		}
		return -1
	}

	assert.LessOrEqual(t, tierIndex(SelectScale(a)), tierIndex(SelectScale(b)))
}

func TestScaleTiers_OrderedAscending(t *testing.T) {
	for i := 1; i < len(ScaleTiers); i++ {
		assert.Greater(t, ScaleTiers[i].Max, ScaleTiers[i-1].Max)
	}
}
