package tablebase

import (
	"sync"

	"github.com/hailam/checkerplay/internal/board"
)

// CachedProber wraps another prober with a cache keyed on (hash,
// side), so repeated probes of the same position inside — or across
// — a search reuse the first result. Adapted from the teacher's
// CachedProber (same half-clearing eviction shape), keyed on frameKey
// instead of a bare hash since a checkers result depends on side to
// move.
type CachedProber struct {
	inner   Prober
	cache   map[frameKey]ProbeResult
	mu      sync.RWMutex
	maxSize int
	hits    uint64
	misses  uint64
}

// NewCachedProber creates a cached prober wrapping the given prober.
func NewCachedProber(inner Prober, cacheSize int) *CachedProber {
	return &CachedProber{
		inner:   inner,
		cache:   make(map[frameKey]ProbeResult, cacheSize),
		maxSize: cacheSize,
	}
}

func (cp *CachedProber) Probe(pos *board.Position, side board.Side) ProbeResult {
	key := frameKey{hash: pos.Hash(), side: side}

	cp.mu.RLock()
	if result, ok := cp.cache[key]; ok {
		cp.mu.RUnlock()
		cp.mu.Lock()
		cp.hits++
		cp.mu.Unlock()
		return result
	}
	cp.mu.RUnlock()

	result := cp.inner.Probe(pos, side)

	cp.mu.Lock()
	cp.misses++
	if len(cp.cache) >= cp.maxSize {
		i := 0
		for k := range cp.cache {
			if i >= cp.maxSize/2 {
				break
			}
			delete(cp.cache, k)
			i++
		}
	}
	cp.cache[key] = result
	cp.mu.Unlock()

	return result
}

func (cp *CachedProber) MaxPieces() int {
	return cp.inner.MaxPieces()
}

func (cp *CachedProber) Available() bool {
	return cp.inner.Available()
}

// HitRate returns the cache hit rate as a percentage.
func (cp *CachedProber) HitRate() float64 {
	cp.mu.RLock()
	defer cp.mu.RUnlock()
	total := cp.hits + cp.misses
	if total == 0 {
		return 0
	}
	return float64(cp.hits) / float64(total) * 100
}

// CacheSize returns the current number of cached entries.
func (cp *CachedProber) CacheSize() int {
	cp.mu.RLock()
	defer cp.mu.RUnlock()
	return len(cp.cache)
}

// Clear clears the cache.
func (cp *CachedProber) Clear() {
	cp.mu.Lock()
	defer cp.mu.Unlock()
	cp.cache = make(map[frameKey]ProbeResult, cp.maxSize)
	cp.hits = 0
	cp.misses = 0
}
