// Package domain defines the core business entities for Docsift.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Section: A titled span of text extracted from one document page
//   - ScoredSection: A section paired with its task similarity
//   - Task: The analysis request (documents, persona, job to be done)
//   - Report: The ranked analysis output
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
