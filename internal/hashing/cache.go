package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// cacheKey identifies a perft result: the same position searched to the
// same depth always yields the same count.
type cacheKey struct {
	hash  uint64
	depth int
}

// PerftCache stores node counts by position hash and depth.
type PerftCache struct {
	entries map[cacheKey]uint64
	// maxCapacity limits the number of stored entries (0 = unlimited)
	maxCapacity int
	hits        int
	misses      int
}

// NewPerftCache creates a cache. maxCapacity of 0 means unlimited capacity.
func NewPerftCache(maxCapacity int) *PerftCache {
	return &PerftCache{
		entries:     make(map[cacheKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for hash at depth.
func (c *PerftCache) Lookup(hash uint64, depth int) (uint64, bool) {
	nodes, ok := c.entries[cacheKey{hash, depth}]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return nodes, ok
}

// Store records a count. Once the cache is full new entries are dropped.
func (c *PerftCache) Store(hash uint64, depth int, nodes uint64) {
	if c.IsFull() {
		return
	}
	c.entries[cacheKey{hash, depth}] = nodes
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PerftCache) IsFull() bool {
	return c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity
}

// Len returns the number of stored entries.
func (c *PerftCache) Len() int {
	return len(c.entries)
}

// Stats returns the hit and miss counts.
func (c *PerftCache) Stats() (hits, misses int) {
	return c.hits, c.misses
}

// Perft counts leaf nodes like engine.Perft, consulting and filling cache
// at every interior node.
func Perft(g *engine.Game, depth int, cache NodeCache) uint64 {
	if depth <= 1 || cache == nil {
		return engine.Perft(g, depth)
	}
	hash := Zobrist(g)
	if nodes, ok := cache.Lookup(hash, depth); ok {
		return nodes
	}

	var nodes uint64
	for _, m := range engine.ExpandPromotions(g.LegalMoves()) {
		if err := g.MakeMove(m, m.PromotedTo); err != nil {
			continue
		}
		nodes += Perft(g, depth-1, cache)
		g.UndoMove()
	}
	cache.Store(hash, depth, nodes)
	return nodes
}

// NodeCache is the cache interface Perft needs; both PerftCache and
// ThreadSafePerftCache satisfy it.
type NodeCache interface {
	Lookup(hash uint64, depth int) (uint64, bool)
	Store(hash uint64, depth int, nodes uint64)
}
