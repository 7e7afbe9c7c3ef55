package gen

import "testing"

func testParams(size int) Params {
	return Params{
		ChunkSize:    size,
		Seed:         1337,
		SeedGradient: true,
		WaterLevel:   0.4,
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(Params{ChunkSize: 0}); err == nil {
		t.Fatal("expected error for chunk size 0")
	}
	if _, err := New(Params{ChunkSize: -8}); err == nil {
		t.Fatal("expected error for negative chunk size")
	}
	if _, err := New(Params{ChunkSize: 8, Octaves: []Octave{}}); err == nil {
		t.Fatal("expected error for empty octave table")
	}
	if _, err := New(Params{ChunkSize: 8, Octaves: []Octave{{Scale: 0, Weight: 1}}}); err == nil {
		t.Fatal("expected error for zero octave scale")
	}
}

func TestGenerateChunkDeterministicAcrossGenerators(t *testing.T) {
	g1, err := New(testParams(16))
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	g2, err := New(testParams(16))
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}

	a := g1.GenerateChunk(0, 0)
	b := g2.GenerateChunk(0, 0)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if a.Height[y][x] != b.Height[y][x] {
				t.Fatalf("height differs at (%d,%d): %v vs %v", x, y, a.Height[y][x], b.Height[y][x])
			}
			if a.Water[y][x] != b.Water[y][x] {
				t.Fatalf("water differs at (%d,%d)", x, y)
			}
			if a.Biome[y][x] != b.Biome[y][x] {
				t.Fatalf("biome differs at (%d,%d)", x, y)
			}
		}
	}
}

func TestGenerateChunkInvariants(t *testing.T) {
	g, err := New(testParams(32))
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}

	for _, coord := range [][2]int{{0, 0}, {1, 0}, {-3, 7}} {
		ch := g.GenerateChunk(coord[0], coord[1])
		if ch.Size() != 32 {
			t.Fatalf("chunk size = %d, want 32", ch.Size())
		}
		for y := 0; y < 32; y++ {
			for x := 0; x < 32; x++ {
				h := ch.Height[y][x]
				if h < 0 || h > 1 {
					t.Fatalf("height %f at (%d,%d) outside [0,1]", h, x, y)
				}
				if ch.Water[y][x] != (h < g.WaterLevel()) {
					t.Fatalf("water mask disagrees with height at (%d,%d)", x, y)
				}
				if ch.Biome[y][x] > BiomeMountains {
					t.Fatalf("biome %d at (%d,%d) out of range", ch.Biome[y][x], x, y)
				}
			}
		}
	}
}

func TestClassifyBiomesPriority(t *testing.T) {
	g, err := New(testParams(4))
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}

	height := [][]float64{{0.1, 0.45, 0.5, 0.9}}
	// First cell is water despite its height being checked against the beach
	// threshold too: water always wins.
	water := [][]bool{{true, false, false, false}}

	biome := g.classifyBiomes(height, water)
	want := []uint8{BiomeOcean, BiomeBeach, BiomePlains, BiomeMountains}
	for i, w := range want {
		if biome[0][i] != w {
			t.Fatalf("biome[%d] = %d, want %d", i, biome[0][i], w)
		}
	}

	// Threshold edges: 0.48 is the beach/plains boundary for water level
	// 0.4; 0.65 and 0.85 separate plains/forest/mountains.
	height = [][]float64{{0.48, 0.65, 0.85, 0.849}}
	water = [][]bool{{false, false, false, false}}
	biome = g.classifyBiomes(height, water)
	want = []uint8{BiomePlains, BiomeForest, BiomeMountains, BiomeForest}
	for i, w := range want {
		if biome[0][i] != w {
			t.Fatalf("edge biome[%d] = %d, want %d", i, biome[0][i], w)
		}
	}
}

func TestShapeFlatChunkIsAllZero(t *testing.T) {
	g, err := New(testParams(4))
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}

	flat := make([][]float64, 4)
	for y := range flat {
		flat[y] = []float64{0.7, 0.7, 0.7, 0.7}
	}
	g.shape(flat)
	for y := range flat {
		for x := range flat[y] {
			if flat[y][x] != 0 {
				t.Fatalf("flat chunk shaped to %f at (%d,%d), want 0", flat[y][x], x, y)
			}
		}
	}
}

func TestGlobalNormalizationSharedBounds(t *testing.T) {
	p := testParams(16)
	p.Normalize = NormalizeGlobal
	g, err := New(p)
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}

	// Global bounds do not depend on the chunk being shaped, so heights stay
	// within [0,1] and identical cells in a regenerated chunk agree exactly.
	a := g.GenerateChunk(2, -1)
	b := g.GenerateChunk(2, -1)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if h := a.Height[y][x]; h < 0 || h > 1 {
				t.Fatalf("global-normalized height %f outside [0,1]", h)
			}
			if a.Height[y][x] != b.Height[y][x] {
				t.Fatalf("regenerated chunk differs at (%d,%d)", x, y)
			}
		}
	}
}

func TestScaleHeights(t *testing.T) {
	grid := [][]float64{{0, 0.5}, {1.0, 0.25}}
	got := ScaleHeights(grid, 0, 100)
	want := [][]int{{0, 50}, {100, 25}}
	for y := range want {
		for x := range want[y] {
			if got[y][x] != want[y][x] {
				t.Fatalf("ScaleHeights[%d][%d] = %d, want %d", y, x, got[y][x], want[y][x])
			}
		}
	}

	flat := [][]float64{{3, 3}, {3, 3}}
	got = ScaleHeights(flat, 10, 20)
	for y := range got {
		for x := range got[y] {
			if got[y][x] != 10 {
				t.Fatalf("flat grid scaled to %d, want min 10", got[y][x])
			}
		}
	}
}
