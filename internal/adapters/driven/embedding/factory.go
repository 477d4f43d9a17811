package embedding

import (
	"fmt"
	"os"

	"github.com/docsift/docsift/internal/adapters/driven/embedding/ollama"
	"github.com/docsift/docsift/internal/adapters/driven/embedding/openai"
	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
)

// NewService assembles the configured provider client wrapped with
// rate limiting and the vector cache. The persistent store may be nil.
func NewService(settings domain.EmbeddingSettings, vectors driven.VectorCache) (driven.EmbeddingService, error) {
	service, err := newProvider(settings)
	if err != nil {
		return nil, err
	}
	return NewCached(service, 0, vectors)
}

// newProvider creates the provider client selected by the settings.
func newProvider(settings domain.EmbeddingSettings) (driven.EmbeddingService, error) {
	switch settings.Provider {
	case domain.EmbeddingProviderOpenAI:
		return newOpenAI(settings)

	case domain.EmbeddingProviderOllama:
		return newOllama(settings), nil

	default:
		return nil, fmt.Errorf("unsupported embedding provider: %q", settings.Provider)
	}
}

// newOpenAI creates an OpenAI client, always rate limited.
func newOpenAI(settings domain.EmbeddingSettings) (driven.EmbeddingService, error) {
	apiKey := settings.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	base, err := openai.NewEmbeddingService(openai.Config{
		APIKey:  apiKey,
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})
	if err != nil {
		return nil, err
	}

	limit := DefaultRateLimit
	if settings.RequestsPerSecond > 0 {
		limit = RateLimitConfig{
			RequestsPerSecond: settings.RequestsPerSecond,
			BurstSize:         int(settings.RequestsPerSecond),
		}
	}
	return NewThrottled(base, limit), nil
}

// newOllama creates an Ollama client. Local instances are not
// throttled unless explicitly configured.
func newOllama(settings domain.EmbeddingSettings) driven.EmbeddingService {
	var service driven.EmbeddingService = ollama.NewEmbeddingService(ollama.Config{
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})

	if settings.RequestsPerSecond > 0 {
		service = NewThrottled(service, RateLimitConfig{
			RequestsPerSecond: settings.RequestsPerSecond,
			BurstSize:         int(settings.RequestsPerSecond),
		})
	}
	return service
}
