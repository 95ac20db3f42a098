package entity

import "math"

// ScaleTier is a display-unit bucket for the y-axis of a spend chart. Raw
// costs are divided by Divisor before plotting and AxisTicks are the literal
// y-axis labels shown for the tier; they are fixed per tier, not derived from
// the data.
type ScaleTier struct {
	Max        float64
	UnitSuffix string
	Divisor    float64
	AxisTicks  []int
}

// ScaleTiers is the fixed tier set, ordered from smallest to largest
// magnitude. Selection takes the first tier whose Max covers the peak daily
// cost.
var ScaleTiers = []ScaleTier{
	{Max: 10, UnitSuffix: "USD", Divisor: 0.1, AxisTicks: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	{Max: 100, UnitSuffix: "USD", Divisor: 1, AxisTicks: []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}},
	{Max: 1000, UnitSuffix: "hundred USD", Divisor: 10, AxisTicks: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	{Max: math.Inf(1), UnitSuffix: "thousand USD", Divisor: 100, AxisTicks: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
}

// SelectScale picks the smallest tier covering the maximum of the per-day
// aggregate series. An empty or all-zero series selects the smallest tier.
// The caller's slice is never reordered; it is reused afterwards for x-axis
// labelling in chronological order.
func SelectScale(dailyTotals []float64) ScaleTier {
	peak := 0.0
	for _, v := range dailyTotals {
		if v > peak {
			peak = v
		}
	}
	for _, tier := range ScaleTiers {
		if peak <= tier.Max {
			return tier
		}
	}
	return ScaleTiers[len(ScaleTiers)-1]
}
