package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/internal/core/domain"
)

func TestNewService_OllamaDefaults(t *testing.T) {
	svc, err := NewService(domain.EmbeddingSettings{
		Provider: domain.EmbeddingProviderOllama,
	}, nil)

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, "all-minilm", svc.ModelName())
	assert.Equal(t, 384, svc.Dimensions())
}

func TestNewService_OpenAI(t *testing.T) {
	svc, err := NewService(domain.EmbeddingSettings{
		Provider: domain.EmbeddingProviderOpenAI,
		APIKey:   "sk-test",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "text-embedding-3-small", svc.ModelName())
}

func TestNewService_OpenAIMissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := NewService(domain.EmbeddingSettings{
		Provider: domain.EmbeddingProviderOpenAI,
	}, nil)

	assert.Error(t, err)
}

func TestNewService_OpenAIKeyFromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")

	svc, err := NewService(domain.EmbeddingSettings{
		Provider: domain.EmbeddingProviderOpenAI,
	}, nil)

	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestNewService_UnknownProvider(t *testing.T) {
	_, err := NewService(domain.EmbeddingSettings{Provider: "cohere"}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported embedding provider")
}

func TestNewService_ThrottledOllama(t *testing.T) {
	svc, err := NewService(domain.EmbeddingSettings{
		Provider:          domain.EmbeddingProviderOllama,
		RequestsPerSecond: 2,
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "all-minilm", svc.ModelName())
}
