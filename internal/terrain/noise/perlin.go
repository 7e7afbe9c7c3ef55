package noise

import (
	"math"
	"math/rand"
	"time"
)

// Perlin is Ken Perlin's improved 3D gradient noise: a shuffled permutation
// table hashed at the eight corners of the containing unit cube, gradients
// picked from the 12 cube-edge directions, and a quintic fade driving the
// trilinear blend. Output is continuous and nominally in [-1, 1].
//
// The table is fixed at construction; Noise is a pure function of its
// arguments afterwards and safe for concurrent readers.
type Perlin struct {
	perm [512]int
}

// NewPerlin builds a generator whose permutation table is shuffled from seed.
// Two generators built from the same seed agree on every sample.
func NewPerlin(seed int64) *Perlin {
	return newPerlin(rand.New(rand.NewSource(seed)))
}

// NewPerlinRandom shuffles the table from a time-derived seed. Samples are
// not reproducible across constructions; use NewPerlin for worlds that must
// regenerate identically.
func NewPerlinRandom() *Perlin {
	return newPerlin(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newPerlin(rng *rand.Rand) *Perlin {
	p := &Perlin{}
	var tbl [256]int
	for i := range tbl {
		tbl[i] = i
	}
	rng.Shuffle(len(tbl), func(i, j int) { tbl[i], tbl[j] = tbl[j], tbl[i] })
	// Double the table so corner hashes never need a modulo.
	for i := range p.perm {
		p.perm[i] = tbl[i&255]
	}
	return p
}

// Noise samples the field at (x, y, z). Pass z=0 for 2D terrain use.
func (p *Perlin) Noise(x, y, z float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	zi := int(math.Floor(z)) & 255

	x -= math.Floor(x)
	y -= math.Floor(y)
	z -= math.Floor(z)

	u := fade(x)
	v := fade(y)
	w := fade(z)

	a := p.perm[xi] + yi
	aa := p.perm[a] + zi
	ab := p.perm[a+1] + zi
	b := p.perm[xi+1] + yi
	ba := p.perm[b] + zi
	bb := p.perm[b+1] + zi

	return lerp(w,
		lerp(v,
			lerp(u,
				grad(p.perm[aa], x, y, z),
				grad(p.perm[ba], x-1, y, z)),
			lerp(u,
				grad(p.perm[ab], x, y-1, z),
				grad(p.perm[bb], x-1, y-1, z))),
		lerp(v,
			lerp(u,
				grad(p.perm[aa+1], x, y, z-1),
				grad(p.perm[ba+1], x-1, y, z-1)),
			lerp(u,
				grad(p.perm[ab+1], x, y-1, z-1),
				grad(p.perm[bb+1], x-1, y-1, z-1))))
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3; zero first and second derivative
// at t=0 and t=1, so cell boundaries stay smooth.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad maps the low 4 bits of a corner hash onto one of 12 gradient
// directions (cube edge centers) and returns its dot product with (x, y, z).
func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
