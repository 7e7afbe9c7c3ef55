package cache

import (
	"math"

	"terraforge.dev/internal/terrain/gen"
)

// CachedChunk is the lossy, space-reduced encoding of a chunk: height
// quantized to a byte via round(h*255), water to 0/1 bytes, biome copied
// unchanged. Decoding then re-encoding is idempotent; decoding introduces
// at most 1/255 absolute error per height sample and is exact for water
// and biome.
type CachedChunk struct {
	CX, CY int
	Height [][]uint8
	Water  [][]uint8
	Biome  [][]uint8
}

// Quantize encodes a chunk into its cached form. Heights outside [0,1]
// (an upstream bug) are clamped rather than wrapped so they cannot corrupt
// the byte encoding.
func Quantize(ch *gen.Chunk) *CachedChunk {
	n := len(ch.Height)
	out := &CachedChunk{
		CX:     ch.CX,
		CY:     ch.CY,
		Height: make([][]uint8, n),
		Water:  make([][]uint8, n),
		Biome:  make([][]uint8, n),
	}
	for y := 0; y < n; y++ {
		w := len(ch.Height[y])
		out.Height[y] = make([]uint8, w)
		out.Water[y] = make([]uint8, w)
		out.Biome[y] = make([]uint8, w)
		for x := 0; x < w; x++ {
			h := ch.Height[y][x]
			if h < 0 {
				h = 0
			} else if h > 1 {
				h = 1
			}
			out.Height[y][x] = uint8(math.Round(h * 255))
			if ch.Water[y][x] {
				out.Water[y][x] = 1
			}
			out.Biome[y][x] = ch.Biome[y][x]
		}
	}
	return out
}

// Dequantize expands a cached chunk back to working-precision grids.
func Dequantize(cc *CachedChunk) *gen.Chunk {
	n := len(cc.Height)
	out := &gen.Chunk{
		CX:     cc.CX,
		CY:     cc.CY,
		Height: make([][]float64, n),
		Water:  make([][]bool, n),
		Biome:  make([][]uint8, n),
	}
	for y := 0; y < n; y++ {
		w := len(cc.Height[y])
		out.Height[y] = make([]float64, w)
		out.Water[y] = make([]bool, w)
		out.Biome[y] = make([]uint8, w)
		for x := 0; x < w; x++ {
			out.Height[y][x] = float64(cc.Height[y][x]) / 255
			out.Water[y][x] = cc.Water[y][x] != 0
			out.Biome[y][x] = cc.Biome[y][x]
		}
	}
	return out
}
