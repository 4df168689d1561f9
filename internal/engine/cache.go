package engine

import (
	"context"
	"crypto/sha256"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vk/inetgraph/internal/ctxlog"
)

// DefaultCacheSize bounds the number of distinct sources kept by NewCache
// when size is zero.
const DefaultCacheSize = 256

// Cache memoizes compile results by document name and source text. It is
// safe for concurrent use.
type Cache struct {
	results *lru.Cache[[sha256.Size]byte, *Result]
}

// NewCache creates a cache holding at most size results.
func NewCache(size int) (*Cache, error) {
	if size == 0 {
		size = DefaultCacheSize
	}
	results, err := lru.New[[sha256.Size]byte, *Result](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create compile cache: %w", err)
	}
	return &Cache{results: results}, nil
}

// Compile returns the cached result for doc, compiling on a miss.
// hit reports whether the result came from the cache.
func (c *Cache) Compile(ctx context.Context, doc Document) (res *Result, hit bool) {
	key := cacheKey(doc)
	if res, ok := c.results.Get(key); ok {
		ctxlog.FromContext(ctx).Debug("Compile cache hit.", "document", doc.Name)
		return res, true
	}
	res = Compile(ctx, doc)
	c.results.Add(key, res)
	return res, false
}

// The name is part of the key since parse errors carry it in their ranges.
func cacheKey(doc Document) [sha256.Size]byte {
	h := sha256.New()
	h.Write([]byte(doc.Name))
	h.Write([]byte{0})
	h.Write([]byte(doc.Source))
	var key [sha256.Size]byte
	h.Sum(key[:0])
	return key
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	return c.results.Len()
}

// Purge drops every cached result.
func (c *Cache) Purge() {
	c.results.Purge()
}
