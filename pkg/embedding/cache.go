package embedding

import (
	"context"
	"sync"
)

// Cache wraps an Embedder with a process-wide, compute-once cache keyed by
// the exact text. Concurrent callers asking for the same uncached text
// share a single upstream computation; failed computations are not cached
// so a later call retries. The cache survives across sessions and exposes
// Clear for test isolation.
type Cache struct {
	embedder Embedder

	mu       sync.RWMutex
	entries  map[string][]float32
	inflight map[string]chan struct{}
}

// NewCache creates a cache in front of the given embedder.
func NewCache(embedder Embedder) *Cache {
	return &Cache{
		embedder: embedder,
		entries:  make(map[string][]float32),
		inflight: make(map[string]chan struct{}),
	}
}

// Dimension returns the wrapped embedder's dimension.
func (c *Cache) Dimension() int { return c.embedder.Dimension() }

// Embed returns the cached vector for text, computing it at most once per
// key. The returned slice is a copy; callers may mutate it freely.
func (c *Cache) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}

	for {
		c.mu.RLock()
		if vec, ok := c.entries[text]; ok {
			c.mu.RUnlock()
			return cloneVec(vec), nil
		}
		c.mu.RUnlock()

		c.mu.Lock()
		if vec, ok := c.entries[text]; ok {
			c.mu.Unlock()
			return cloneVec(vec), nil
		}
		if done, ok := c.inflight[text]; ok {
			// Another goroutine is computing this key — wait and re-check.
			c.mu.Unlock()
			select {
			case <-done:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			continue
		}
		done := make(chan struct{})
		c.inflight[text] = done
		c.mu.Unlock()

		vec, err := c.embedder.Embed(ctx, text)

		c.mu.Lock()
		delete(c.inflight, text)
		if err == nil {
			c.entries[text] = cloneVec(vec)
		}
		c.mu.Unlock()
		close(done)

		if err != nil {
			return nil, err
		}
		return vec, nil
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops all cached vectors. Test isolation hook.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]float32)
}

func cloneVec(v []float32) []float32 {
	out := make([]float32, len(v))
	copy(out, v)
	return out
}
