package words

import (
	"context"
	"strings"
	"sync"
)

// CachedSource memoizes IsValidWord results of another source for the
// lifetime of the session. Failed lookups are not cached.
type CachedSource struct {
	src Source

	mu    sync.RWMutex
	valid map[string]bool // keyed by lowercase word
}

// NewCachedSource wraps src.
func NewCachedSource(src Source) *CachedSource {
	return &CachedSource{src: src, valid: make(map[string]bool)}
}

// Answer delegates to the wrapped source and remembers the answer as valid.
func (c *CachedSource) Answer(ctx context.Context) (string, error) {
	w, err := c.src.Answer(ctx)
	if err != nil {
		return "", err
	}
	c.store(strings.ToLower(w), true)
	return w, nil
}

// IsValidWord answers from the cache when possible.
func (c *CachedSource) IsValidWord(ctx context.Context, word string) (bool, error) {
	key := strings.ToLower(word)

	c.mu.RLock()
	ok, hit := c.valid[key]
	c.mu.RUnlock()
	if hit {
		return ok, nil
	}

	ok, err := c.src.IsValidWord(ctx, key)
	if err != nil {
		return false, err
	}
	c.store(key, ok)
	return ok, nil
}

// Len returns the number of cached words.
func (c *CachedSource) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.valid)
}

func (c *CachedSource) store(key string, ok bool) {
	c.mu.Lock()
	c.valid[key] = ok
	c.mu.Unlock()
}
