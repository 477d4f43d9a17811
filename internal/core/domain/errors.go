package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a document type no extractor handles.
	ErrUnsupportedType = errors.New("unsupported type")

	// Pipeline Errors.

	// ErrNoSections indicates extraction produced an empty section pool.
	// Ranking cannot proceed without candidates.
	ErrNoSections = errors.New("no sections extracted")

	// ErrEmbeddingUnavailable indicates the embedding service cannot be reached.
	// The pipeline aborts rather than emit a partial ranking.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")
)
