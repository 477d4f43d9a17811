package domain

const unknownDescription = "Unknown"

// EmbeddingProvider identifies an embedding service provider.
type EmbeddingProvider string

// Available embedding providers.
const (
	// EmbeddingProviderOllama is a local Ollama instance.
	EmbeddingProviderOllama EmbeddingProvider = "ollama"

	// EmbeddingProviderOpenAI is the OpenAI cloud API.
	EmbeddingProviderOpenAI EmbeddingProvider = "openai"
)

// IsValid returns true if the embedding provider is recognised.
func (p EmbeddingProvider) IsValid() bool {
	switch p {
	case EmbeddingProviderOllama, EmbeddingProviderOpenAI:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p EmbeddingProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p EmbeddingProvider) Description() string {
	switch p {
	case EmbeddingProviderOllama:
		return "Ollama (local)"
	case EmbeddingProviderOpenAI:
		return "OpenAI (cloud API)"
	default:
		return unknownDescription
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p EmbeddingProvider) RequiresAPIKey() bool {
	return p == EmbeddingProviderOpenAI
}

// IsLocal returns true if this provider runs locally.
func (p EmbeddingProvider) IsLocal() bool {
	return p == EmbeddingProviderOllama
}

// AllEmbeddingProviders returns every supported embedding provider.
func AllEmbeddingProviders() []EmbeddingProvider {
	return []EmbeddingProvider{
		EmbeddingProviderOllama,
		EmbeddingProviderOpenAI,
	}
}

// DefaultEmbeddingModels returns the default model for each provider.
func DefaultEmbeddingModels() map[EmbeddingProvider]string {
	return map[EmbeddingProvider]string{
		EmbeddingProviderOllama: "all-minilm",
		EmbeddingProviderOpenAI: "text-embedding-3-small",
	}
}

// EmbeddingSettings holds embedding provider configuration.
type EmbeddingSettings struct {
	// Provider is the embedding service provider.
	Provider EmbeddingProvider

	// Model is the embedding model name.
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// APIKey is the API key (for OpenAI).
	APIKey string

	// RequestsPerSecond throttles provider calls. Zero means the
	// provider default: throttled for cloud APIs, unthrottled locally.
	RequestsPerSecond float64
}

// IsConfigured returns true if the embedding provider is set up.
func (e EmbeddingSettings) IsConfigured() bool {
	if !e.Provider.IsValid() {
		return false
	}
	if e.Provider.RequiresAPIKey() && e.APIKey == "" {
		return false
	}
	return true
}

// Analysis defaults used when configuration does not override them.
const (
	// DefaultMinSectionLength is the minimum trimmed content length,
	// in runes, for a span to qualify as a section.
	DefaultMinSectionLength = 50

	// DefaultMaxHeadingLength is the rune length at or above which a
	// line is never a heading.
	DefaultMaxHeadingLength = 200

	// DefaultMaxHeadingWords is the word budget for title-case headings.
	DefaultMaxHeadingWords = 10

	// DefaultTopN is how many ranked sections the report keeps.
	DefaultTopN = 5

	// DefaultMinSimilarity is the inclusive relevance floor.
	DefaultMinSimilarity = 0.1

	// DefaultMaxRefinedTextLength is the refined text rune budget.
	DefaultMaxRefinedTextLength = 1000

	// DefaultDocumentsFolder is where documents are read from.
	DefaultDocumentsFolder = "./pdfs"
)

// AnalysisSettings is the per-run pipeline configuration. It is built
// once, validated, and passed down explicitly; components never consult
// shared mutable state.
type AnalysisSettings struct {
	// Folder is the directory documents are resolved against.
	Folder string

	// MinSectionLength gates section content length, in runes.
	MinSectionLength int

	// MaxHeadingLength is the rune length at or above which a line is
	// never classified as a heading.
	MaxHeadingLength int

	// MaxHeadingWords is the word budget for title-case headings.
	MaxHeadingWords int

	// TopN caps the number of ranked sections in the report.
	TopN int

	// MinSimilarity is the inclusive similarity floor for relevance.
	MinSimilarity float64

	// MaxRefinedTextLength is the refined text rune budget.
	MaxRefinedTextLength int
}

// DefaultAnalysisSettings returns the canonical defaults.
func DefaultAnalysisSettings() AnalysisSettings {
	return AnalysisSettings{
		Folder:               DefaultDocumentsFolder,
		MinSectionLength:     DefaultMinSectionLength,
		MaxHeadingLength:     DefaultMaxHeadingLength,
		MaxHeadingWords:      DefaultMaxHeadingWords,
		TopN:                 DefaultTopN,
		MinSimilarity:        DefaultMinSimilarity,
		MaxRefinedTextLength: DefaultMaxRefinedTextLength,
	}
}

// Normalised returns a copy with unset numeric fields replaced by the
// defaults. An explicit zero MinSectionLength is preserved: it disables
// the length gate.
func (s AnalysisSettings) Normalised() AnalysisSettings {
	out := s
	if out.Folder == "" {
		out.Folder = DefaultDocumentsFolder
	}
	if out.MaxHeadingLength <= 0 {
		out.MaxHeadingLength = DefaultMaxHeadingLength
	}
	if out.MaxHeadingWords <= 0 {
		out.MaxHeadingWords = DefaultMaxHeadingWords
	}
	if out.TopN <= 0 {
		out.TopN = DefaultTopN
	}
	if out.MaxRefinedTextLength <= 0 {
		out.MaxRefinedTextLength = DefaultMaxRefinedTextLength
	}
	return out
}

// Validate checks the settings are usable for a run.
func (s AnalysisSettings) Validate() error {
	if s.Folder == "" {
		return ErrInvalidInput
	}
	if s.MinSectionLength < 0 {
		return ErrInvalidInput
	}
	if s.MaxHeadingLength < 1 || s.MaxHeadingWords < 1 {
		return ErrInvalidInput
	}
	if s.TopN < 1 || s.MaxRefinedTextLength < 1 {
		return ErrInvalidInput
	}
	if s.MinSimilarity < -1 || s.MinSimilarity > 1 {
		return ErrInvalidInput
	}
	return nil
}
