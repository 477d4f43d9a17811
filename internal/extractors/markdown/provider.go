package markdown

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.PageTextProvider = (*Provider)(nil)

// Provider extracts text from Markdown documents via the goldmark AST.
// Markdown has no pages, so the whole document becomes page 1.
type Provider struct{}

// New creates a new Markdown page-text provider.
func New() *Provider {
	return &Provider{}
}

// Extensions returns the file extensions this provider handles.
func (p *Provider) Extensions() []string {
	return []string{".md", ".markdown"}
}

// Pages renders the document as one page of text. Headings become
// their own lines and block content is separated by blank lines, which
// preserves the structure section detection relies on.
func (p *Provider) Pages(ctx context.Context, path string) ([]domain.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var blocks []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if title := string(node.Text(src)); title != "" {
				blocks = append(blocks, title)
			}
		default:
			if t := blockText(n, src); t != "" {
				blocks = append(blocks, t)
			}
		}
	}

	rendered := strings.TrimSpace(strings.Join(blocks, "\n\n"))
	if rendered == "" {
		return nil, nil
	}
	return []domain.Page{{Number: 1, Text: rendered}}, nil
}

// blockText gets the text content of a goldmark AST node. Inline
// markup is dropped; soft and hard line breaks stay line breaks.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	var walk func(ast.Node)
	walk = func(node ast.Node) {
		if t, ok := node.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
			return
		}

		// Childless blocks (code blocks) only carry raw source lines.
		if node.ChildCount() == 0 && node.Type() == ast.TypeBlock {
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(src))
			}
			return
		}

		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
			if c.Type() == ast.TypeBlock && c.NextSibling() != nil {
				buf.WriteByte('\n')
			}
		}
	}
	walk(n)
	return strings.TrimSpace(buf.String())
}
