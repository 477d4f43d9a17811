package domain

import "strings"

// Page is the plain text of a single document page.
// Extractors produce pages; page numbers are 1-based.
type Page struct {
	// Number is the 1-based page number within the source document.
	Number int

	// Text is the raw extracted text of the page.
	Text string
}

// Section is a titled span of text extracted from one document page.
// Sections are immutable once created; the pipeline never mutates the
// pool after extraction.
type Section struct {
	// Title is the heading or synthesised title. Never empty.
	Title string

	// Content is the body text belonging to the title.
	Content string

	// PageNumber is the 1-based page the section was extracted from.
	PageNumber int

	// Document is the filename of the originating document,
	// assigned when the section enters the pool.
	Document string

	// Index is the position in the extraction pool. It records the
	// deterministic document/page/emission order and breaks ranking ties.
	Index int
}

// CombinedText returns the text that represents the section for
// embedding: title and content joined by a single space.
func (s Section) CombinedText() string {
	return s.Title + " " + s.Content
}

// Validate checks the structural invariants of a section.
func (s Section) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(s.Content) == "" {
		return ErrInvalidInput
	}
	if s.PageNumber < 1 {
		return ErrInvalidInput
	}
	if s.Index < 0 {
		return ErrInvalidInput
	}
	return nil
}

// ScoredSection pairs a section with its similarity to the task.
// It exists only between ranking and report assembly.
type ScoredSection struct {
	Section Section

	// Similarity is the cosine similarity against the task text,
	// in [-1, 1].
	Similarity float64
}
