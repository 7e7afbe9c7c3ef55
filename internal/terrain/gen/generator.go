package gen

import (
	"fmt"
	"math"

	"terraforge.dev/internal/terrain/noise"
)

// Octave is one frequency band of the accumulated height field: world
// coordinates are divided by Scale before sampling, and the band's
// contribution is multiplied by Weight.
type Octave struct {
	Scale  float64
	Weight float64
}

// DefaultOctaves returns the standard band table, large formations first.
func DefaultOctaves() []Octave {
	return []Octave{
		{Scale: 30, Weight: 1.0},  // large formations
		{Scale: 100, Weight: 0.8}, // hills
		{Scale: 50, Weight: 0.4},  // small elevations
		{Scale: 25, Weight: 0.2},  // terrain details
		{Scale: 10, Weight: 0.1},  // micro relief
	}
}

// NormalizeMode selects how a chunk's raw height accumulator is normalized
// before shaping.
type NormalizeMode int

const (
	// NormalizeChunk rescales each chunk by its own min/max. This matches
	// the literal source behavior but can leave visible seams where adjacent
	// chunks span different local height ranges.
	NormalizeChunk NormalizeMode = iota
	// NormalizeGlobal rescales every chunk by the same analytic bounds of
	// the octave table, trading a little contrast for seam-free borders.
	NormalizeGlobal
)

// Params configures a Generator.
type Params struct {
	// ChunkSize is the edge length of generated chunks in cells. Must be
	// positive.
	ChunkSize int
	// Seed drives the value-noise lattice. SeedGradient extends it to the
	// gradient-noise permutation table; when false the table is shuffled
	// from a time-derived seed and chunks are not reproducible across
	// constructions, matching the original behavior.
	Seed         int64
	SeedGradient bool
	// WaterLevel is the height below which a cell is water. Expected in
	// [0,1]; not enforced here, callers validate.
	WaterLevel float64
	// Octaves overrides the band table. Nil means DefaultOctaves.
	Octaves []Octave
	// Normalize selects per-chunk or world-global normalization.
	Normalize NormalizeMode
}

// Generator synthesizes terrain chunks from layered gradient and value
// noise. A Generator owns its noise sources; the value-noise memo mutates on
// use, so a shared instance needs external mutual exclusion. Callers wanting
// parallel throughput should shard chunk coordinates across independent
// Generators instead.
type Generator struct {
	chunkSize  int
	waterLevel float64
	octaves    []Octave
	mode       NormalizeMode

	perlin *noise.Perlin
	value  *noise.Value
}

// New builds a Generator. ChunkSize must be positive; a generator that can
// only produce empty grids is a configuration error.
func New(p Params) (*Generator, error) {
	if p.ChunkSize <= 0 {
		return nil, fmt.Errorf("gen: chunk size must be > 0, got %d", p.ChunkSize)
	}
	octaves := p.Octaves
	if octaves == nil {
		octaves = DefaultOctaves()
	}
	if len(octaves) == 0 {
		return nil, fmt.Errorf("gen: octave table must not be empty")
	}
	for i, o := range octaves {
		if o.Scale <= 0 {
			return nil, fmt.Errorf("gen: octave %d scale must be > 0, got %g", i, o.Scale)
		}
	}

	perlin := noise.NewPerlinRandom()
	if p.SeedGradient {
		perlin = noise.NewPerlin(p.Seed + 1)
	}
	return &Generator{
		chunkSize:  p.ChunkSize,
		waterLevel: p.WaterLevel,
		octaves:    octaves,
		mode:       p.Normalize,
		perlin:     perlin,
		value:      noise.NewValue(p.Seed),
	}, nil
}

// ChunkSize returns the configured chunk edge length.
func (g *Generator) ChunkSize() int { return g.chunkSize }

// WaterLevel returns the configured water threshold.
func (g *Generator) WaterLevel() float64 { return g.waterLevel }

// GenerateChunk synthesizes the chunk at chunk coordinates (cx, cy):
// accumulate all octave bands, shape the height field, derive the water mask
// and classify biomes. Deterministic for a fixed generator; cost is
// O(chunkSize² × octaves).
func (g *Generator) GenerateChunk(cx, cy int) *Chunk {
	n := g.chunkSize
	height := make([][]float64, n)
	for y := range height {
		height[y] = make([]float64, n)
	}

	for _, oct := range g.octaves {
		for y := 0; y < n; y++ {
			wy := float64(y + cy*n)
			for x := 0; x < n; x++ {
				wx := float64(x + cx*n)

				// Two frequencies of gradient noise blended 70/30, plus a
				// 10% value-noise component. The value term is already in
				// [0,1) but is recentered like the gradient term; the shift
				// is part of the terrain's look and is kept verbatim.
				perlinVal := (g.perlin.Noise(wx/oct.Scale, wy/oct.Scale, 0)+1)*0.5*0.7 +
					(g.perlin.Noise(wx/(oct.Scale*0.3), wy/(oct.Scale*0.3), 0)+1)*0.5*0.3
				valueVal := (g.value.SmoothNoise(wx/oct.Scale, wy/oct.Scale) + 1) * 0.5

				height[y][x] += (perlinVal*0.9 + valueVal*0.1) * oct.Weight
			}
		}
	}

	g.shape(height)

	water := make([][]bool, n)
	for y := range water {
		water[y] = make([]bool, n)
		for x := range water[y] {
			water[y][x] = height[y][x] < g.waterLevel
		}
	}

	return &Chunk{
		CX:     cx,
		CY:     cy,
		Height: height,
		Water:  water,
		Biome:  g.classifyBiomes(height, water),
	}
}

// shape applies the global transforms in their fixed order: normalize to
// [0,1], raise to the 1.4 power to sharpen peaks against valleys, affine
// rescale by 1.3 and -0.15, clip to [0,1].
func (g *Generator) shape(height [][]float64) {
	lo, hi := g.normalizeBounds(height)
	span := hi - lo
	for y := range height {
		for x := range height[y] {
			h := 0.0
			if span > 0 {
				h = (height[y][x] - lo) / span
			}
			// A perfectly flat chunk normalizes to all-zero height rather
			// than dividing by zero. Global bounds can also slightly over-
			// or undershoot since gradient noise is only nominally [-1,1].
			h = clamp01(h)
			h = math.Pow(h, 1.4)
			h = h*1.3 - 0.15
			height[y][x] = clamp01(h)
		}
	}
}

func (g *Generator) normalizeBounds(height [][]float64) (lo, hi float64) {
	if g.mode == NormalizeGlobal {
		return g.analyticBounds()
	}
	lo, hi = height[0][0], height[0][0]
	for y := range height {
		for x := range height[y] {
			if h := height[y][x]; h < lo {
				lo = h
			} else if h > hi {
				hi = h
			}
		}
	}
	return lo, hi
}

// analyticBounds derives the reachable accumulator range from the octave
// table: per octave the gradient term spans [0,1] and the value term
// [0.5,1), so a band contributes between 0.05×weight and 1.0×weight.
func (g *Generator) analyticBounds() (lo, hi float64) {
	var total float64
	for _, o := range g.octaves {
		total += o.Weight
	}
	return 0.05 * total, total
}

// classifyBiomes assigns biome ids by priority: water cells are always
// Ocean regardless of height, then Beach, Plains, Forest and Mountains by
// ascending height thresholds.
func (g *Generator) classifyBiomes(height [][]float64, water [][]bool) [][]uint8 {
	biome := make([][]uint8, len(height))
	for y := range height {
		biome[y] = make([]uint8, len(height[y]))
		for x := range height[y] {
			h := height[y][x]
			switch {
			case water[y][x]:
				biome[y][x] = BiomeOcean
			case h < g.waterLevel+0.08:
				biome[y][x] = BiomeBeach
			case h < 0.65:
				biome[y][x] = BiomePlains
			case h < 0.85:
				biome[y][x] = BiomeForest
			default:
				biome[y][x] = BiomeMountains
			}
		}
	}
	return biome
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
