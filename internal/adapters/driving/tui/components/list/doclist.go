// Package list provides list display components for the wizard.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docsift/docsift/internal/adapters/driving/tui/styles"
	"github.com/docsift/docsift/internal/core/domain"
)

// DocList displays scanned documents in a navigable list.
type DocList struct {
	docs     []domain.DocumentRef
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewDocList creates a new document list component.
func NewDocList(s *styles.Styles) *DocList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &DocList{
		docs:     nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the document list.
func (l *DocList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *DocList) Update(msg tea.Msg) (*DocList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			l.MoveUp()
		case tea.KeyDown:
			l.MoveDown()
		default:
			// Handle other keys
		}
		switch msg.String() {
		case "k":
			l.MoveUp()
		case "j":
			l.MoveDown()
		}
	}
	return l, nil
}

// View renders the document list.
func (l *DocList) View() string {
	if len(l.docs) == 0 {
		return l.styles.Muted.Render("No documents")
	}

	lines := make([]string, 0, len(l.docs)+2)

	header := l.styles.Subtitle.Render(fmt.Sprintf("Documents (%d)", len(l.docs)))
	lines = append(lines, header, "")

	// Each document takes one line; leave room for the header
	visibleCount := l.height - 4
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if l.selected >= visibleCount {
		start = l.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(l.docs) {
		end = len(l.docs)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderDocument(i, &l.docs[i]))
	}

	if end < len(l.docs) {
		lines = append(lines, l.styles.Muted.Render(fmt.Sprintf("  ... and %d more", len(l.docs)-end)))
	}

	return strings.Join(lines, "\n")
}

// renderDocument formats a single document row.
func (l *DocList) renderDocument(index int, doc *domain.DocumentRef) string {
	// Indicator for selected item
	indicator := "  "
	if index == l.selected {
		indicator = "> "
	}

	title := doc.Title
	if title == "" {
		title = "(untitled)"
	}

	// Truncate title so the filename still fits
	maxTitleLen := l.width - 30
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}

	if index == l.selected {
		return l.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitleLen, title, doc.Filename))
	}
	return l.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitleLen, title)) +
		l.styles.Muted.Render(doc.Filename)
}

// SetDocuments updates the document list.
func (l *DocList) SetDocuments(docs []domain.DocumentRef) {
	l.docs = docs
	l.selected = 0
}

// Documents returns the current documents.
func (l *DocList) Documents() []domain.DocumentRef {
	return l.docs
}

// Selected returns the index of the selected document.
func (l *DocList) Selected() int {
	return l.selected
}

// SetSelected sets the selected index.
func (l *DocList) SetSelected(index int) {
	if index >= 0 && index < len(l.docs) {
		l.selected = index
	}
}

// SelectedDocument returns the currently selected document, or nil if none.
func (l *DocList) SelectedDocument() *domain.DocumentRef {
	if len(l.docs) == 0 || l.selected < 0 || l.selected >= len(l.docs) {
		return nil
	}
	return &l.docs[l.selected]
}

// MoveUp moves selection up.
func (l *DocList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *DocList) MoveDown() {
	if l.selected < len(l.docs)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *DocList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *DocList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *DocList) Height() int {
	return l.height
}

// Count returns the number of documents.
func (l *DocList) Count() int {
	return len(l.docs)
}

// IsEmpty returns whether the list is empty.
func (l *DocList) IsEmpty() bool {
	return len(l.docs) == 0
}
