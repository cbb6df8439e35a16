package physics

import (
	"sync"
)

// FieldCache owns the active distortion sources. It is constructed
// once by the owner of the render loop and passed by reference into
// the sampling systems. Wells never move within a section, so the
// cache is rebuilt only on explicit Replace/Clear calls at section
// transitions; per-frame sampling only reads.
//
// The frame loop is single-threaded, but the RWMutex keeps a threaded
// embedder safe: every reader sees one consistent snapshot.
type FieldCache struct {
	mu      sync.RWMutex
	sources []FieldSource
}

// NewFieldCache returns an empty cache
func NewFieldCache() *FieldCache {
	return &FieldCache{}
}

// Replace swaps the cached source list. The slice is copied so the
// caller's buffer can be reused.
func (c *FieldCache) Replace(sources []FieldSource) {
	next := make([]FieldSource, len(sources))
	copy(next, sources)

	c.mu.Lock()
	c.sources = next
	c.mu.Unlock()
}

// Clear empties the cache, used on transition into a well-free section
func (c *FieldCache) Clear() {
	c.mu.Lock()
	c.sources = nil
	c.mu.Unlock()
}

// Snapshot returns the current source list. The returned slice is the
// internal buffer; readers must not mutate it. Replace never writes
// into a published slice, so a snapshot stays consistent for the whole
// frame even if a transition lands mid-frame.
func (c *FieldCache) Snapshot() []FieldSource {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sources
}

// Len returns the number of cached sources
func (c *FieldCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sources)
}
