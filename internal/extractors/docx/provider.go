package docx

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.PageTextProvider = (*Provider)(nil)

// Provider extracts text from DOCX documents. Word files carry no
// fixed pagination, so the whole document becomes page 1.
type Provider struct{}

// New creates a new DOCX page-text provider.
func New() *Provider {
	return &Provider{}
}

// Extensions returns the file extensions this provider handles.
func (p *Provider) Extensions() []string {
	return []string{".docx"}
}

// Pages renders the document body as one page of text. Heading-styled
// paragraphs become their own lines so downstream section detection can
// pick them up; body paragraphs are separated by blank lines.
func (p *Provider) Pages(ctx context.Context, path string) ([]domain.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat docx: %w", err)
	}

	doc, err := docx.Parse(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var blocks []string
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}
		blocks = append(blocks, text)
	}

	text := strings.TrimSpace(strings.Join(blocks, "\n\n"))
	if text == "" {
		return nil, nil
	}
	return []domain.Page{{Number: 1, Text: text}}, nil
}

// paragraphText collects the run text of one paragraph.
func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
