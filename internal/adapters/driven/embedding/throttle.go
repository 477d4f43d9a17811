package embedding

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/docsift/docsift/internal/core/ports/driven"
)

// Ensure Throttled implements the interface.
var _ driven.EmbeddingService = (*Throttled)(nil)

// RateLimitConfig holds rate limiting configuration for an embedding
// provider.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained request rate.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimit is a conservative default for hosted embedding
// APIs. A local Ollama instance does not need throttling.
var DefaultRateLimit = RateLimitConfig{RequestsPerSecond: 5.0, BurstSize: 10}

// Throttled wraps an embedding service with a token bucket rate
// limiter. Each Embed and EmbedBatch call costs one token; batches are
// single requests on every supported provider.
type Throttled struct {
	inner   driven.EmbeddingService
	limiter *rate.Limiter
}

// NewThrottled creates a rate limited embedding service.
func NewThrottled(inner driven.EmbeddingService, cfg RateLimitConfig) *Throttled {
	if cfg.RequestsPerSecond <= 0 {
		cfg = DefaultRateLimit
	}
	if cfg.BurstSize < 1 {
		cfg.BurstSize = 1
	}
	return &Throttled{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Embed waits for the rate limiter, then delegates.
func (t *Throttled) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return t.inner.Embed(ctx, text)
}

// EmbedBatch waits for the rate limiter, then delegates.
func (t *Throttled) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return t.inner.EmbedBatch(ctx, texts)
}

// Dimensions returns the wrapped service's vector size.
func (t *Throttled) Dimensions() int { return t.inner.Dimensions() }

// ModelName returns the wrapped service's model name.
func (t *Throttled) ModelName() string { return t.inner.ModelName() }

// Ping delegates without consuming a token; it is already lightweight.
func (t *Throttled) Ping(ctx context.Context) error { return t.inner.Ping(ctx) }

// Close closes the wrapped service.
func (t *Throttled) Close() error { return t.inner.Close() }
