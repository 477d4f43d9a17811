// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the pipeline to function:
//
//   - ProviderRegistry: Selects a page-text provider by file type
//   - PageTextProvider: Extracts per-page plain text from a document
//   - SectionExtractor: Splits page text into titled sections
//   - EmbeddingService: Generates vector embeddings for ranking
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ReportStore: Run history persistence. Without it, reports are
//     only written to the output file.
//   - VectorCache: Memoises embedding calls. Without it, every run
//     re-encodes every section.
//   - ConfigStore: Application configuration. Without it, defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
