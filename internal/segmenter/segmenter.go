// Package segmenter splits page text into titled sections.
package segmenter

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/docsift/docsift/internal/core/domain"
)

// Extractor derives titled sections from the text of a single page.
// It never fails: pages that yield no usable section produce an empty
// slice. Extraction runs four strategies in priority order: heading
// scan, paragraph split, whole page, nothing.
type Extractor struct {
	minSectionLength int
	maxHeadingLength int
	maxHeadingWords  int

	rules []headingRule
}

// Option configures the extractor.
type Option func(*Extractor)

// WithMinSectionLength sets the minimum trimmed content length in runes.
// Zero disables the gate.
func WithMinSectionLength(n int) Option {
	return func(e *Extractor) {
		if n >= 0 {
			e.minSectionLength = n
		}
	}
}

// WithMaxHeadingLength sets the rune length at or above which a line is
// never a heading.
func WithMaxHeadingLength(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxHeadingLength = n
		}
	}
}

// WithMaxHeadingWords sets the word budget for title-case headings.
func WithMaxHeadingWords(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.maxHeadingWords = n
		}
	}
}

// New creates a new section extractor with the given options.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		minSectionLength: domain.DefaultMinSectionLength,
		maxHeadingLength: domain.DefaultMaxHeadingLength,
		maxHeadingWords:  domain.DefaultMaxHeadingWords,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.rules = headingRules(e.maxHeadingWords)
	return e
}

// Extract returns the sections of one page, in emission order.
// Section.Document and Section.Index are left for the caller to assign
// when the sections enter the pool.
func (e *Extractor) Extract(text string, pageNumber int) []domain.Section {
	if sections := e.byHeadings(text, pageNumber); len(sections) > 0 {
		return sections
	}
	if sections := e.byParagraphs(text, pageNumber); len(sections) > 0 {
		return sections
	}
	return e.wholePage(text, pageNumber)
}

// byHeadings scans line by line, accumulating body text under the most
// recent heading. A section is flushed when the next heading arrives or
// the page ends, and only if it has a title and enough content. Body
// text seen before the first heading has no title and is dropped.
func (e *Extractor) byHeadings(text string, pageNumber int) []domain.Section {
	var sections []domain.Section
	var title string
	var body []string

	flush := func() {
		if title == "" || len(body) == 0 {
			return
		}
		content := strings.Join(body, " ")
		if utf8.RuneCountInString(content) < e.minSectionLength {
			return
		}
		sections = append(sections, domain.Section{
			Title:      title,
			Content:    content,
			PageNumber: pageNumber,
		})
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if e.isHeading(line) {
			flush()
			title = line
			body = body[:0]
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}

// byParagraphs falls back to double-newline paragraph breaks. The title
// is synthesised from the first eight words.
func (e *Extractor) byParagraphs(text string, pageNumber int) []domain.Section {
	var sections []domain.Section
	for _, paragraph := range strings.Split(text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" || utf8.RuneCountInString(paragraph) < e.minSectionLength {
			continue
		}
		sections = append(sections, domain.Section{
			Title:      synthesiseTitle(paragraph, 8),
			Content:    paragraph,
			PageNumber: pageNumber,
		})
	}
	return sections
}

// wholePage treats the entire page as one section, titled by its first
// ten words.
func (e *Extractor) wholePage(text string, pageNumber int) []domain.Section {
	text = strings.TrimSpace(text)
	if text == "" || utf8.RuneCountInString(text) < e.minSectionLength {
		return nil
	}
	return []domain.Section{{
		Title:      synthesiseTitle(text, 10),
		Content:    text,
		PageNumber: pageNumber,
	}}
}

// isHeading classifies a trimmed, non-empty line. Lines at or above the
// length ceiling are never headings; below it, the first matching rule
// decides.
func (e *Extractor) isHeading(line string) bool {
	if utf8.RuneCountInString(line) >= e.maxHeadingLength {
		return false
	}
	words := len(strings.Fields(line))
	for _, rule := range e.rules {
		if rule.matches(line, words) {
			return true
		}
	}
	return false
}

// headingRule is one independent heading predicate. Rules are checked
// in priority order.
type headingRule struct {
	name    string
	matches func(line string, words int) bool
}

var (
	titleCaseLine   = regexp.MustCompile(`^[A-Z][^.!?]*[^.!?]$`)
	numberedHeading = regexp.MustCompile(`^\d+[.)]\s*[A-Z]`)
	bulletHeading   = regexp.MustCompile(`^[•\-*]\s*[A-Z]`)
)

func headingRules(maxHeadingWords int) []headingRule {
	return []headingRule{
		{name: "all caps", matches: func(line string, _ int) bool {
			return utf8.RuneCountInString(line) > 3 && isUpperLine(line)
		}},
		{name: "title case", matches: func(line string, words int) bool {
			return words <= maxHeadingWords && titleCaseLine.MatchString(line)
		}},
		{name: "trailing colon", matches: func(line string, words int) bool {
			return words <= 8 && strings.HasSuffix(line, ":")
		}},
		{name: "numbered", matches: func(line string, _ int) bool {
			return numberedHeading.MatchString(line)
		}},
		{name: "bullet", matches: func(line string, words int) bool {
			return words <= 8 && bulletHeading.MatchString(line)
		}},
	}
}

// isUpperLine reports whether the line has at least one uppercase
// letter and no lowercase or titlecase letters. Digits and punctuation
// are neutral, so "SECTION 3-A" qualifies and "3-1" does not.
func isUpperLine(line string) bool {
	hasUpper := false
	for _, r := range line {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// synthesiseTitle builds a section title from the first maxWords words,
// marking truncation with an ellipsis.
func synthesiseTitle(text string, maxWords int) string {
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:maxWords], " ") + "..."
}
