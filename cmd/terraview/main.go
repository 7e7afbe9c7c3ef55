// terraview generates a rectangle of world chunks and reports what came
// out: per-biome census, water coverage and cache memory usage. It can also
// render the chunks to a PNG preview and dump a single chunk as a packed
// blob for diffing between runs.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"terraforge.dev/internal/config"
	"terraforge.dev/internal/terrain"
	"terraforge.dev/internal/terrain/cache"
	"terraforge.dev/internal/terrain/gen"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to world.yaml (empty for defaults)")
		chunkSize  = flag.Int("chunk_size", 0, "override chunk size (0 keeps the configured value)")
		seed       = flag.Int64("seed", 0, "override seed (0 keeps the configured value)")
		cx0        = flag.Int("cx0", 0, "first chunk x")
		cy0        = flag.Int("cy0", 0, "first chunk y")
		cx1        = flag.Int("cx1", 0, "last chunk x (inclusive)")
		cy1        = flag.Int("cy1", 0, "last chunk y (inclusive)")
		pngPath    = flag.String("png", "", "write a PNG preview of the generated rectangle (optional)")
		packedPath = flag.String("packed", "", "write the first chunk as a packed blob (optional)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[terraview] ", log.LstdFlags)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if *chunkSize > 0 {
		cfg.ChunkSize = *chunkSize
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	w, err := terrain.FromConfig(cfg)
	if err != nil {
		logger.Fatalf("build world: %v", err)
	}

	if *cx1 < *cx0 || *cy1 < *cy0 {
		logger.Fatalf("empty chunk rectangle (%d,%d)-(%d,%d)", *cx0, *cy0, *cx1, *cy1)
	}

	census := map[uint8]int{}
	waterCells := 0
	totalCells := 0
	var chunks []*gen.Chunk
	for cy := *cy0; cy <= *cy1; cy++ {
		for cx := *cx0; cx <= *cx1; cx++ {
			ch := w.ChunkAt(cx, cy)
			chunks = append(chunks, ch)
			for y := range ch.Biome {
				for x := range ch.Biome[y] {
					census[ch.Biome[y][x]]++
					if ch.Water[y][x] {
						waterCells++
					}
					totalCells++
				}
			}
		}
	}

	logger.Printf("generated %d chunk(s) of %dx%d, seed=%d", len(chunks), cfg.ChunkSize, cfg.ChunkSize, cfg.Seed)
	for b := gen.BiomeOcean; b <= gen.BiomeMountains; b++ {
		logger.Printf("  %-9s %8d cells (%.1f%%)", gen.BiomeName(b), census[b], 100*float64(census[b])/float64(totalCells))
	}
	logger.Printf("water coverage %.1f%%, cache %d bytes in %d entries",
		100*float64(waterCells)/float64(totalCells), w.MemoryUsage(), w.Cache().Len())

	if *pngPath != "" {
		img := render(chunks, *cx0, *cy0, *cx1-*cx0+1, cfg.ChunkSize)
		f, err := os.Create(*pngPath)
		if err != nil {
			logger.Fatalf("create %s: %v", *pngPath, err)
		}
		if err := png.Encode(f, img); err != nil {
			logger.Fatalf("encode png: %v", err)
		}
		if err := f.Close(); err != nil {
			logger.Fatalf("close %s: %v", *pngPath, err)
		}
		logger.Printf("wrote preview to %s", *pngPath)
	}

	if *packedPath != "" {
		blob, err := cache.EncodePacked(cache.Quantize(chunks[0]))
		if err != nil {
			logger.Fatalf("pack chunk: %v", err)
		}
		if err := os.WriteFile(*packedPath, blob, 0o644); err != nil {
			logger.Fatalf("write %s: %v", *packedPath, err)
		}
		logger.Printf("wrote packed chunk (%d,%d), %d bytes, to %s", chunks[0].CX, chunks[0].CY, len(blob), *packedPath)
	}
}

// render paints biome base colors shaded by height.
func render(chunks []*gen.Chunk, cx0, cy0, chunksPerRow, size int) *image.RGBA {
	rows := len(chunks) / chunksPerRow
	img := image.NewRGBA(image.Rect(0, 0, chunksPerRow*size, rows*size))
	for _, ch := range chunks {
		ox := (ch.CX - cx0) * size
		oy := (ch.CY - cy0) * size
		for y := range ch.Height {
			for x := range ch.Height[y] {
				img.SetRGBA(ox+x, oy+y, cellColor(ch.Biome[y][x], ch.Height[y][x]))
			}
		}
	}
	return img
}

func cellColor(biome uint8, height float64) color.RGBA {
	var base color.RGBA
	switch biome {
	case gen.BiomeOcean:
		base = color.RGBA{R: 20, G: 60, B: 160}
	case gen.BiomeBeach:
		base = color.RGBA{R: 220, G: 200, B: 140}
	case gen.BiomePlains:
		base = color.RGBA{R: 90, G: 160, B: 70}
	case gen.BiomeForest:
		base = color.RGBA{R: 40, G: 110, B: 50}
	default:
		base = color.RGBA{R: 130, G: 130, B: 130}
	}
	shade := 0.6 + 0.4*height
	return color.RGBA{
		R: uint8(float64(base.R) * shade),
		G: uint8(float64(base.G) * shade),
		B: uint8(float64(base.B) * shade),
		A: 255,
	}
}
