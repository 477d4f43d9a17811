package pdf

import (
	"context"
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.PageTextProvider = (*Provider)(nil)

// Provider extracts per-page text from PDF documents.
type Provider struct{}

// New creates a new PDF page-text provider.
func New() *Provider {
	return &Provider{}
}

// Extensions returns the file extensions this provider handles.
func (p *Provider) Extensions() []string {
	return []string{".pdf"}
}

// Pages extracts the text of each readable, non-empty page. Page
// numbers follow the document, so skipped pages leave gaps rather than
// renumbering what remains.
func (p *Provider) Pages(ctx context.Context, path string) ([]domain.Page, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []domain.Page
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Unreadable page. The rest of the document still counts.
			continue
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		pages = append(pages, domain.Page{Number: i, Text: text})
	}

	return pages, nil
}
