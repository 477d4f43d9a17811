package domain

import (
	"regexp"
	"strings"
)

// ReportMetadata identifies the run that produced a report.
type ReportMetadata struct {
	// InputDocuments lists the filenames the task requested, in task
	// order, whether or not they contributed ranked sections.
	InputDocuments []string `json:"input_documents"`

	Persona     string `json:"persona"`
	JobToBeDone string `json:"job_to_be_done"`

	// ProcessingTimestamp is the run time in RFC 3339 form.
	ProcessingTimestamp string `json:"processing_timestamp"`

	Description string `json:"description,omitempty"`
}

// ExtractedSection is one ranked entry of the report.
type ExtractedSection struct {
	Document     string `json:"document"`
	SectionTitle string `json:"section_title"`

	// ImportanceRank is 1 for the most relevant section.
	ImportanceRank int `json:"importance_rank"`

	PageNumber int `json:"page_number"`
}

// SubsectionAnalysis carries the refined text for one ranked entry.
// Entry i corresponds to ExtractedSections[i].
type SubsectionAnalysis struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// Report is the ranked analysis output. The two section slices are
// parallel: equal length, aligned by index.
type Report struct {
	Metadata           ReportMetadata       `json:"metadata"`
	ExtractedSections  []ExtractedSection   `json:"extracted_sections"`
	SubsectionAnalysis []SubsectionAnalysis `json:"subsection_analysis"`
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// RefineText prepares section content for the subsection analysis:
// a hard cut at maxRunes runes, then trim, then collapse every
// whitespace run to a single space. The cut happens first, so a word
// split at the boundary stays split.
func RefineText(content string, maxRunes int) string {
	if maxRunes > 0 {
		if runes := []rune(content); len(runes) > maxRunes {
			content = string(runes[:maxRunes])
		}
	}
	content = strings.TrimSpace(content)
	return whitespaceRun.ReplaceAllString(content, " ")
}
