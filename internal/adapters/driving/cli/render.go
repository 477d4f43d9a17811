package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/docsift/docsift/internal/core/domain"
	"github.com/docsift/docsift/internal/core/ports/driving"
)

var (
	// headerStyle for bold section headers
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// dimStyle for labels and muted metadata
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// rankStyle for result rank numbers
	rankStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	// scoreStyle for similarity scores
	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// successStyle for completion messages
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for run failures in watch mode
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for the run header box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// contentPreviewRunes caps how much section content the summary shows.
const contentPreviewRunes = 200

// renderRunHeader shows the task about to be analysed.
func renderRunHeader(w io.Writer, task domain.Task, folder string) {
	content := fmt.Sprintf("%s %s\n%s %s\n%s %s\n%s %d",
		dimStyle.Render("Role:"), headerStyle.Render(task.Persona.Role),
		dimStyle.Render("Task:"), task.JobToBeDone.Task,
		dimStyle.Render("Folder:"), folder,
		dimStyle.Render("Documents:"), len(task.Documents),
	)
	if desc := task.Description(); desc != "" {
		content += fmt.Sprintf("\n%s %s", dimStyle.Render("Description:"), desc)
	}
	fmt.Fprintln(w, boxStyle.Render(content))
}

// renderResults lists the ranked sections with a content preview each.
func renderResults(w io.Writer, result *driving.AnalysisResult) {
	fmt.Fprintf(w, "\n%s\n", headerStyle.Render(fmt.Sprintf("Top %d relevant sections", len(result.Ranked))))
	for i, scored := range result.Ranked {
		s := scored.Section
		fmt.Fprintf(w, "\n%s %s\n", rankStyle.Render(fmt.Sprintf("Result %d:", i+1)), s.Document)
		fmt.Fprintf(w, "%s %s\n", dimStyle.Render("Section:"), s.Title)
		fmt.Fprintf(w, "%s %d\n", dimStyle.Render("Page:"), s.PageNumber)
		fmt.Fprintf(w, "%s %s\n", dimStyle.Render("Similarity:"), scoreStyle.Render(fmt.Sprintf("%.4f", scored.Similarity)))
		fmt.Fprintf(w, "%s %s\n", dimStyle.Render("Content:"), contentPreview(s.Content))
	}
}

// renderMetadata shows the report metadata block after the results.
func renderMetadata(w io.Writer, meta domain.ReportMetadata) {
	fmt.Fprintf(w, "\n%s\n", headerStyle.Render("Metadata"))
	fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("Persona:"), meta.Persona)
	fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("Task:"), meta.JobToBeDone)
	fmt.Fprintf(w, "  %s %d\n", dimStyle.Render("Documents processed:"), len(meta.InputDocuments))
	fmt.Fprintf(w, "  %s %s\n", dimStyle.Render("Timestamp:"), meta.ProcessingTimestamp)
}

// renderDocumentList shows the discovered documents, numbered.
func renderDocumentList(w io.Writer, folder string, docs []domain.DocumentRef) {
	fmt.Fprintf(w, "\n%s\n", headerStyle.Render(fmt.Sprintf("Found %d documents in %s", len(docs), folder)))
	for i, doc := range docs {
		fmt.Fprintf(w, "  %s %s\n", dimStyle.Render(fmt.Sprintf("%d.", i+1)), doc.Filename)
	}
}

// renderSaved confirms where the report was written.
func renderSaved(w io.Writer, path string) {
	fmt.Fprintln(w, successStyle.Render("Output saved to "+path))
}

// contentPreview flattens and truncates section content for display.
func contentPreview(content string) string {
	return domain.RefineText(content, contentPreviewRunes) + "..."
}
