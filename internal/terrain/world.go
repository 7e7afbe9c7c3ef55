// Package terrain ties the chunk generator and the bounded chunk cache into
// one world-facing surface.
package terrain

import (
	"terraforge.dev/internal/config"
	"terraforge.dev/internal/terrain/cache"
	"terraforge.dev/internal/terrain/gen"
)

// World serves chunks, generating on miss and caching the result. A World
// has a single logical owner: the generator's value-noise memo and the
// cache's recency order both mutate on use and are not safe for
// unsynchronized concurrent access.
type World struct {
	gen   *gen.Generator
	cache *cache.ChunkCache
}

// NewWorld builds a world from an existing generator and cache.
func NewWorld(g *gen.Generator, c *cache.ChunkCache) *World {
	return &World{gen: g, cache: c}
}

// FromConfig builds a world from a validated configuration document.
func FromConfig(cfg config.World) (*World, error) {
	g, err := gen.New(cfg.GenParams())
	if err != nil {
		return nil, err
	}
	c, err := cache.NewChunkCache(cfg.MaxChunksInMemory)
	if err != nil {
		return nil, err
	}
	return NewWorld(g, c), nil
}

// ChunkAt returns the chunk at chunk coordinates (cx, cy). Cache hits come
// back dequantized, so heights may differ from freshly generated ones by up
// to the quantization tolerance of 1/255; misses are generated, cached and
// returned at full precision.
func (w *World) ChunkAt(cx, cy int) *gen.Chunk {
	if ch, ok := w.cache.Get(cx, cy); ok {
		return ch
	}
	ch := w.gen.GenerateChunk(cx, cy)
	w.cache.Put(cx, cy, ch)
	return ch
}

// Generator exposes the underlying generator.
func (w *World) Generator() *gen.Generator { return w.gen }

// Cache exposes the underlying chunk cache.
func (w *World) Cache() *cache.ChunkCache { return w.cache }

// MemoryUsage returns the cache's quantized payload size in bytes.
func (w *World) MemoryUsage() int { return w.cache.MemoryUsage() }
