package noise

import (
	"math"
	"math/rand"
)

type latticeKey struct {
	X, Y int
}

// Value is seeded 2D value noise over an integer lattice. Lattice scalars in
// [0, 1) are drawn lazily from the seeded source and memoized, so a lattice
// point always yields the value it produced on first visit, no matter how
// many queries happen in between. The memo grows with the number of distinct
// lattice points touched and is never pruned.
//
// The memo is mutated on novel queries; a Value instance must not be shared
// across goroutines without external locking.
type Value struct {
	rng  *rand.Rand
	grid map[latticeKey]float64
}

// NewValue builds a generator seeded for reproducible lattice values. Two
// instances with the same seed queried in the same order agree everywhere.
func NewValue(seed int64) *Value {
	return &Value{
		rng:  rand.New(rand.NewSource(seed)),
		grid: make(map[latticeKey]float64),
	}
}

// GetValue returns the lattice scalar for the integer-truncated coordinate
// of (x, y), drawing and memoizing it on first visit.
func (n *Value) GetValue(x, y float64) float64 {
	k := latticeKey{int(x), int(y)}
	v, ok := n.grid[k]
	if !ok {
		v = n.rng.Float64()
		n.grid[k] = v
	}
	return v
}

// SmoothNoise averages the lattice around (x, y) with a fixed kernel: the
// four diagonal corners carry 1/4 in total, the four axis-aligned sides 1/2,
// and the center 1/4. This is deliberately not a bilinear interpolation; the
// kernel is preserved as-is because the terrain's look depends on it.
func (n *Value) SmoothNoise(x, y float64) float64 {
	corners := (n.GetValue(math.Floor(x), math.Floor(y)) +
		n.GetValue(math.Floor(x), math.Ceil(y)) +
		n.GetValue(math.Ceil(x), math.Floor(y)) +
		n.GetValue(math.Ceil(x), math.Ceil(y))) / 16

	sides := (n.GetValue(math.Floor(x), y) +
		n.GetValue(x, math.Floor(y)) +
		n.GetValue(math.Ceil(x), y) +
		n.GetValue(x, math.Ceil(y))) / 8

	center := n.GetValue(x, y) / 4

	return corners + sides + center
}
