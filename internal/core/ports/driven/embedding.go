package driven

import "context"

// EmbeddingService generates vector embeddings from text.
// The ranker encodes the task and every candidate section through this
// interface; if the service is unreachable the run aborts rather than
// emit a partial ranking.
//
// Implementations may include:
//   - Ollama (all-minilm, nomic-embed-text)
//   - OpenAI (text-embedding-3-small, text-embedding-3-large)
//   - Decorators that rate-limit or cache another implementation
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts efficiently.
	// This is more efficient than calling Embed in a loop for large batches.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size (e.g., 384, 1536).
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	// The pipeline calls it once at startup before any encoding work.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
