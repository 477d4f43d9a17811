// Package status provides the status bar for the setup wizard.
package status

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/docsift/docsift/internal/adapters/driving/tui/keymap"
	"github.com/docsift/docsift/internal/adapters/driving/tui/styles"
)

// State represents the current wizard state for display.
type State string

const (
	StateComposing State = "composing"
	StateReview    State = "review"
	StateDone      State = "done"
)

// Bar displays wizard status and keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	state    State
	folder   string
	docCount int
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles:   s,
		keymap:   km,
		state:    StateComposing,
		folder:   "",
		docCount: 0,
		width:    80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	// Pad the gap so hints sit at the right edge
	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := s.width - leftLen - rightLen
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the document summary or step state.
func (s *Bar) renderLeft() string {
	switch s.state {
	case StateReview:
		return s.styles.Normal.Render("Review task")
	case StateDone:
		return s.styles.Success.Render("Task created")
	case StateComposing:
	}

	if s.docCount == 0 {
		return s.styles.Muted.Render("No documents")
	}
	if s.folder != "" {
		return s.styles.Normal.Render(fmt.Sprintf("%d documents in %s", s.docCount, s.folder))
	}
	return s.styles.Normal.Render(fmt.Sprintf("%d documents", s.docCount))
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetFolder sets the documents folder shown in the bar.
func (s *Bar) SetFolder(folder string) {
	s.folder = folder
}

// Folder returns the documents folder.
func (s *Bar) Folder() string {
	return s.folder
}

// SetDocumentCount sets the scanned document count.
func (s *Bar) SetDocumentCount(count int) {
	s.docCount = count
}

// DocumentCount returns the scanned document count.
func (s *Bar) DocumentCount() int {
	return s.docCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to its initial state.
func (s *Bar) Clear() {
	s.state = StateComposing
	s.folder = ""
	s.docCount = 0
}
