package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
	"github.com/docsift/docsift/internal/logger"
)

// Ensure Cached implements the interface.
var _ driven.EmbeddingService = (*Cached)(nil)

// DefaultCacheSize bounds the in-process vector cache.
const DefaultCacheSize = 4096

// CacheKey derives the cache key for one text under one model. The
// model name is part of the key: the same text embeds differently
// under different models.
func CacheKey(model, text string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + text))
	return hex.EncodeToString(sum[:])
}

// Cached wraps an embedding service with an in-process LRU cache and
// an optional persistent vector store. Batch entries are document
// text, stable across runs, so they are cached; single-text lookups
// carry the query and pass through uncached.
type Cached struct {
	inner driven.EmbeddingService
	local *lru.Cache[string, []float32]
	store driven.VectorCache
}

// NewCached creates a caching embedding service. The persistent store
// may be nil; the in-process cache still applies within a run.
func NewCached(inner driven.EmbeddingService, size int, store driven.VectorCache) (*Cached, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	local, err := lru.New[string, []float32](size)
	if err != nil {
		return nil, fmt.Errorf("create vector cache: %w", err)
	}
	return &Cached{inner: inner, local: local, store: store}, nil
}

// Embed delegates without caching.
func (c *Cached) Embed(ctx context.Context, text string) ([]float32, error) {
	return c.inner.Embed(ctx, text)
}

// EmbedBatch returns cached vectors where available and embeds only
// the misses, preserving input order.
func (c *Cached) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	model := c.inner.ModelName()
	vectors := make([][]float32, len(texts))
	keys := make([]string, len(texts))

	var missTexts []string
	var missIndexes []int
	for i, text := range texts {
		keys[i] = CacheKey(model, text)
		if vector, ok := c.lookup(ctx, keys[i]); ok {
			vectors[i] = vector
			continue
		}
		missTexts = append(missTexts, text)
		missIndexes = append(missIndexes, i)
	}
	logger.Debug("Vector cache: %d hits, %d misses", len(texts)-len(missTexts), len(missTexts))

	if len(missTexts) == 0 {
		return vectors, nil
	}

	fresh, err := c.inner.EmbedBatch(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	if len(fresh) != len(missTexts) {
		return nil, fmt.Errorf("embedding cache: got %d vectors for %d texts", len(fresh), len(missTexts))
	}

	for i, vector := range fresh {
		idx := missIndexes[i]
		vectors[idx] = vector
		c.local.Add(keys[idx], vector)
		if c.store != nil {
			if err := c.store.Put(ctx, keys[idx], model, vector); err != nil {
				// Persistence is best effort; the vector is already in hand.
				logger.Debug("Vector cache write failed: %v", err)
			}
		}
	}

	return vectors, nil
}

// lookup checks the in-process cache first, then the persistent store.
func (c *Cached) lookup(ctx context.Context, key string) ([]float32, bool) {
	if vector, ok := c.local.Get(key); ok {
		return vector, true
	}
	if c.store == nil {
		return nil, false
	}
	vector, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Debug("Vector cache read failed: %v", err)
		}
		return nil, false
	}
	c.local.Add(key, vector)
	return vector, true
}

// Dimensions returns the wrapped service's vector size.
func (c *Cached) Dimensions() int { return c.inner.Dimensions() }

// ModelName returns the wrapped service's model name.
func (c *Cached) ModelName() string { return c.inner.ModelName() }

// Ping delegates to the wrapped service.
func (c *Cached) Ping(ctx context.Context) error { return c.inner.Ping(ctx) }

// Close closes the wrapped service. The persistent store has its own
// lifecycle and is not closed here.
func (c *Cached) Close() error { return c.inner.Close() }
