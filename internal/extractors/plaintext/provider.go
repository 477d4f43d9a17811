package plaintext

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.PageTextProvider = (*Provider)(nil)

// Provider handles plain text documents. Form feed characters act as
// page breaks; without them the whole file is page 1.
type Provider struct{}

// New creates a new plain text page-text provider.
func New() *Provider {
	return &Provider{}
}

// Extensions returns the file extensions this provider handles.
func (p *Provider) Extensions() []string {
	return []string{".txt"}
}

// Pages splits the file on form feeds. Blank pages keep their number
// and are dropped, matching how PDF extraction treats empty pages.
func (p *Provider) Pages(ctx context.Context, path string) ([]domain.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}

	var pages []domain.Page
	for i, chunk := range strings.Split(string(data), "\f") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		pages = append(pages, domain.Page{Number: i + 1, Text: chunk})
	}
	return pages, nil
}
