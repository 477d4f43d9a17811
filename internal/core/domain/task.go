package domain

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// DocumentRef names one document the task wants analysed.
type DocumentRef struct {
	// Filename is the name of the file inside the documents folder.
	Filename string `json:"filename"`

	// Title is the human-readable document title.
	Title string `json:"title"`
}

// Persona describes who the analysis is for.
type Persona struct {
	Role string `json:"role"`
}

// JobToBeDone is the natural-language task the persona needs done.
// Its Task field is the query text sections are ranked against.
type JobToBeDone struct {
	Task string `json:"task"`
}

// ChallengeInfo carries optional run identification metadata.
type ChallengeInfo struct {
	ChallengeID  string `json:"challenge_id,omitempty"`
	TestCaseName string `json:"test_case_name,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Task is the analysis request: which documents to read, who is asking,
// and what they need. It mirrors the input JSON layout.
type Task struct {
	ChallengeInfo *ChallengeInfo `json:"challenge_info,omitempty"`
	Documents     []DocumentRef  `json:"documents"`
	Persona       Persona        `json:"persona"`
	JobToBeDone   JobToBeDone    `json:"job_to_be_done"`
}

// Validate checks that the task carries enough information to run.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Persona.Role) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(t.JobToBeDone.Task) == "" {
		return ErrInvalidInput
	}
	if len(t.Documents) == 0 {
		return ErrInvalidInput
	}
	for _, doc := range t.Documents {
		if strings.TrimSpace(doc.Filename) == "" {
			return ErrInvalidInput
		}
	}
	return nil
}

// Description returns the run description, if the task carries one.
func (t Task) Description() string {
	if t.ChallengeInfo == nil {
		return ""
	}
	return t.ChallengeInfo.Description
}

// NewChallengeInfo stamps run identification for a task composed on the
// user's behalf rather than loaded from a file.
func NewChallengeInfo(description string) *ChallengeInfo {
	return &ChallengeInfo{
		ChallengeID:  "user_analysis_" + time.Now().Format("20060102_150405"),
		TestCaseName: "user_defined_analysis",
		Description:  description,
	}
}

/// TitleFromFilename derives a document title from its filename: the
// extension is dropped, dashes and underscores become spaces, and each
// word is title-cased. "south-of-france_cuisine.pdf" becomes
// "South Of France Cuisine".
func TitleFromFilename(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	return titleCase(name)
}

// titleCase upper-cases the first letter of every alphabetic run and
// lower-cases the rest. Digits and punctuation pass through and start
// a new word, so "qsg v2.1" becomes "Qsg V2.1".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) && !prevLetter:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}
