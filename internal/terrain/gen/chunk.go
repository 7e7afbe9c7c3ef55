package gen

// Biome identifiers, ordered by classification priority.
const (
	BiomeOcean uint8 = iota
	BiomeBeach
	BiomePlains
	BiomeForest
	BiomeMountains
)

// BiomeName returns a human-readable label for a biome id.
func BiomeName(b uint8) string {
	switch b {
	case BiomeOcean:
		return "OCEAN"
	case BiomeBeach:
		return "BEACH"
	case BiomePlains:
		return "PLAINS"
	case BiomeForest:
		return "FOREST"
	case BiomeMountains:
		return "MOUNTAINS"
	}
	return "UNKNOWN"
}

// Chunk is one generated square region of the world: a shaped height field
// in [0,1], the water mask derived from it, and the biome classification.
// Grids are indexed [y][x] in chunk-local coordinates. A Chunk is built once
// and never mutated afterwards.
type Chunk struct {
	CX, CY int
	Height [][]float64
	Water  [][]bool
	Biome  [][]uint8
}

// Size returns the chunk's edge length in cells.
func (c *Chunk) Size() int {
	return len(c.Height)
}
