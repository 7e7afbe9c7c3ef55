package gen

import "math"

// ScaleHeights normalizes an arbitrary float grid by its own min/max and
// rescales it to rounded integers in [min, max]. Useful for turning a raw
// height field into discrete elevation levels for consumers that want
// integer heights. A perfectly flat grid maps to all-min.
func ScaleHeights(grid [][]float64, min, max int) [][]int {
	lo, hi := grid[0][0], grid[0][0]
	for y := range grid {
		for x := range grid[y] {
			if v := grid[y][x]; v < lo {
				lo = v
			} else if v > hi {
				hi = v
			}
		}
	}
	span := hi - lo

	out := make([][]int, len(grid))
	for y := range grid {
		out[y] = make([]int, len(grid[y]))
		for x := range grid[y] {
			norm := 0.0
			if span > 0 {
				norm = (grid[y][x] - lo) / span
			}
			out[y][x] = min + int(math.Round(norm*float64(max-min)))
		}
	}
	return out
}
