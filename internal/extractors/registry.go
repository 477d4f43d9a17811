package extractors

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driven"
	"github.com/docsift/docsift/internal/extractors/docx"
	"github.com/docsift/docsift/internal/extractors/html"
	"github.com/docsift/docsift/internal/extractors/markdown"
	"github.com/docsift/docsift/internal/extractors/pdf"
	"github.com/docsift/docsift/internal/extractors/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.ProviderRegistry = (*Registry)(nil)

// Registry maps file extensions to page-text providers.
type Registry struct {
	byExt map[string]driven.PageTextProvider
}

// NewRegistry creates a registry over the given providers. A later
// provider claiming an already-registered extension wins.
func NewRegistry(providers ...driven.PageTextProvider) *Registry {
	r := &Registry{byExt: make(map[string]driven.PageTextProvider)}
	for _, p := range providers {
		for _, ext := range p.Extensions() {
			r.byExt[strings.ToLower(ext)] = p
		}
	}
	return r
}

// Defaults returns a registry with every built-in provider registered.
func Defaults() *Registry {
	return NewRegistry(
		pdf.New(),
		docx.New(),
		markdown.New(),
		html.New(),
		plaintext.New(),
	)
}

// ForFile returns the provider registered for the file's extension.
func (r *Registry) ForFile(path string) (driven.PageTextProvider, error) {
	ext := strings.ToLower(filepath.Ext(path))
	provider, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, ext)
	}
	return provider, nil
}

// SupportedExtensions lists every registered extension, sorted.
func (r *Registry) SupportedExtensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// ScanFolder lists the supported files in folder, sorted by name, with
// titles synthesised from the filenames. Subdirectories are not
// descended into.
func ScanFolder(registry driven.ProviderRegistry, folder string) ([]domain.DocumentRef, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("read documents folder: %w", err)
	}

	supported := make(map[string]bool)
	for _, ext := range registry.SupportedExtensions() {
		supported[strings.ToLower(ext)] = true
	}

	var docs []domain.DocumentRef
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !supported[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		docs = append(docs, domain.DocumentRef{
			Filename: entry.Name(),
			Title:    domain.TitleFromFilename(entry.Name()),
		})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Filename < docs[j].Filename })
	return docs, nil
}
