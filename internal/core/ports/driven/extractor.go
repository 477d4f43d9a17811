package driven

import (
	"context"

	"github.com/docsift/docsift/internal/core/domain"
)

// PageTextProvider extracts per-page plain text from one document format.
type PageTextProvider interface {
	// Pages returns the non-empty pages of the document at path, in
	// page order. Formats without page structure return a single page
	// numbered 1.
	Pages(ctx context.Context, path string) ([]domain.Page, error)

	// Extensions lists the lower-case file extensions this provider
	// handles, including the leading dot.
	Extensions() []string
}

// ProviderRegistry selects the page-text provider for a file.
type ProviderRegistry interface {
	// ForFile returns the provider registered for the file's extension.
	// Returns domain.ErrUnsupportedType when no provider matches.
	ForFile(path string) (PageTextProvider, error)

	// SupportedExtensions lists every extension with a registered
	// provider, sorted.
	SupportedExtensions() []string
}

// SectionExtractor splits the text of one page into titled sections.
// Extraction never fails; a page that yields nothing usable produces an
// empty slice.
type SectionExtractor interface {
	Extract(text string, pageNumber int) []domain.Section
}
