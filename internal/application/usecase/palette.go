package usecase

// chartPalette is the fixed line color cycle, as RRGGBB hex.
var chartPalette = []string{
	"0000FF", // blue
	"FF0000", // red
	"800080", // purple
	"008000", // green
	"808080", // gray
	"7FFFD4", // aquamarine
	"FFA500", // orange
}

// colorCycle hands out palette colors in order, wrapping around when the
// palette is exhausted. One cycle is scoped to a single owner's line set;
// never share a cycle across report runs.
type colorCycle struct {
	next int
}

func (c *colorCycle) Next() string {
	color := chartPalette[c.next]
	c.next++
	if c.next == len(chartPalette) {
		c.next = 0
	}
	return color
}
