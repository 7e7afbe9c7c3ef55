package cache

import (
	"container/list"
	"fmt"

	"terraforge.dev/internal/terrain/gen"
)

// ChunkKey addresses a cached chunk by chunk coordinates.
type ChunkKey struct {
	CX int
	CY int
}

type cacheEntry struct {
	key ChunkKey
	rec *CachedChunk
}

// ChunkCache is a bounded in-memory store of quantized chunks with
// least-recently-used eviction, where "used" means insertion or a Get read
// (GetRaw does not count). The cache exclusively owns its entries; callers
// only ever see dequantized copies or the stored quantized record.
//
// The cache mutates its order list on every Put/Get/Remove and assumes a
// single logical owner; concurrent access needs external locking.
type ChunkCache struct {
	maxChunks int
	order     *list.List // front = least recently used
	entries   map[ChunkKey]*list.Element
}

// NewChunkCache builds a cache holding at most maxChunks entries. A cache
// that can never hold anything is a configuration error.
func NewChunkCache(maxChunks int) (*ChunkCache, error) {
	if maxChunks <= 0 {
		return nil, fmt.Errorf("cache: max chunks must be > 0, got %d", maxChunks)
	}
	return &ChunkCache{
		maxChunks: maxChunks,
		order:     list.New(),
		entries:   make(map[ChunkKey]*list.Element),
	}, nil
}

// Put quantizes rec and stores it under (x, y). When the cache is full the
// least recently used entry is evicted first, unconditionally — even when
// (x, y) is already present and the insert is an overwrite. That can evict
// an unrelated entry and transiently leave the cache below capacity; the
// ordering is evict-then-insert on purpose. An overwritten key keeps its
// position in the recency order unless it was itself the entry evicted.
func (c *ChunkCache) Put(x, y int, rec *gen.Chunk) {
	packed := Quantize(rec)
	if c.order.Len() >= c.maxChunks {
		c.evictOldest()
	}
	key := ChunkKey{CX: x, CY: y}
	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry).rec = packed
		return
	}
	c.entries[key] = c.order.PushBack(&cacheEntry{key: key, rec: packed})
}

// Get returns a dequantized copy of the chunk at (x, y) and promotes the
// entry to most recently used. Heights come back within 1/255 of what was
// stored; water and biome are exact.
func (c *ChunkCache) Get(x, y int) (*gen.Chunk, bool) {
	el, ok := c.entries[ChunkKey{CX: x, CY: y}]
	if !ok {
		return nil, false
	}
	c.order.MoveToBack(el)
	return Dequantize(el.Value.(*cacheEntry).rec), true
}

// GetRaw returns the stored quantized record without dequantizing and
// without touching the recency order. The record is still owned by the
// cache; callers must not mutate it.
func (c *ChunkCache) GetRaw(x, y int) (*CachedChunk, bool) {
	el, ok := c.entries[ChunkKey{CX: x, CY: y}]
	if !ok {
		return nil, false
	}
	return el.Value.(*cacheEntry).rec, true
}

// Remove drops the entry at (x, y) if present.
func (c *ChunkCache) Remove(x, y int) {
	key := ChunkKey{CX: x, CY: y}
	if el, ok := c.entries[key]; ok {
		c.order.Remove(el)
		delete(c.entries, key)
	}
}

// Clear drops every entry.
func (c *ChunkCache) Clear() {
	c.order.Init()
	c.entries = make(map[ChunkKey]*list.Element)
}

// Len returns the number of cached entries.
func (c *ChunkCache) Len() int {
	return c.order.Len()
}

// MemoryUsage returns the total byte size of all quantized grids: one byte
// per cell for each of the height, water and biome grids.
func (c *ChunkCache) MemoryUsage() int {
	total := 0
	for _, el := range c.entries {
		rec := el.Value.(*cacheEntry).rec
		total += gridBytes(rec.Height) + gridBytes(rec.Water) + gridBytes(rec.Biome)
	}
	return total
}

func (c *ChunkCache) evictOldest() {
	front := c.order.Front()
	if front == nil {
		return
	}
	c.order.Remove(front)
	delete(c.entries, front.Value.(*cacheEntry).key)
}

func gridBytes(g [][]uint8) int {
	n := 0
	for _, row := range g {
		n += len(row)
	}
	return n
}
