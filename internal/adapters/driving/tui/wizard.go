// Package tui provides the interactive setup wizard for docsift.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docsift/docsift/internal/adapters/driving/tui/components/input"
	"github.com/docsift/docsift/internal/adapters/driving/tui/components/list"
	"github.com/docsift/docsift/internal/adapters/driving/tui/components/status"
	"github.com/docsift/docsift/internal/adapters/driving/tui/keymap"
	"github.com/docsift/docsift/internal/adapters/driving/tui/styles"
	"github.com/docsift/docsift/internal/core/domain"
)

// WizardStep tracks the current step in the setup wizard.
type WizardStep int

const (
	StepRole WizardStep = iota
	StepTask
	StepReview
)

// Fallback values when wizard fields are left blank.
const (
	defaultRole = "Analyst"
	defaultJob  = "Analyze and summarize key information"
)

// Wizard asks who the analysis is for and what they need, then
// composes the task definition over the scanned documents.
type Wizard struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	folder string
	docs   []domain.DocumentRef

	// Wizard state
	step       WizardStep
	roleInput  *input.Field
	taskInput  *input.Field
	descInput  *input.Field
	focusIndex int

	doclist   *list.DocList
	statusbar *status.Bar

	// Result
	task      *domain.Task
	cancelled bool

	width  int
	height int
	ready  bool
}

// NewWizard creates a setup wizard over the scanned documents.
func NewWizard(folder string, docs []domain.DocumentRef) *Wizard {
	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	roleInput := input.NewField(s, "Your role", defaultRole)
	taskInput := input.NewField(s, "Your task", defaultJob)
	descInput := input.NewField(s, "Project description (optional)", "document analysis for your role")
	taskInput.Blur()
	descInput.Blur()

	doclist := list.NewDocList(s)
	doclist.SetDocuments(docs)

	bar := status.NewBar(s, km)
	bar.SetFolder(folder)
	bar.SetDocumentCount(len(docs))

	return &Wizard{
		styles:    s,
		keymap:    km,
		folder:    folder,
		docs:      docs,
		step:      StepRole,
		roleInput: roleInput,
		taskInput: taskInput,
		descInput: descInput,
		doclist:   doclist,
		statusbar: bar,
	}
}

// Init initialises the wizard.
func (w *Wizard) Init() tea.Cmd {
	return w.roleInput.Init()
}

// Update handles messages for the wizard.
//
//nolint:gocritic // evalOrder: bubbletea pattern returns cmd from method call
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.SetDimensions(msg.Width, msg.Height)
		return w, nil

	case tea.KeyMsg:
		return w.handleKeyMsg(msg)
	}

	return w, nil
}

// handleKeyMsg handles key presses based on current step.
func (w *Wizard) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if keymap.Matches(msg.String(), w.keymap.Quit) {
		w.cancelled = true
		w.task = nil
		return w, tea.Quit
	}

	if keymap.Matches(msg.String(), w.keymap.Back) {
		return w.handleBack()
	}

	switch w.step {
	case StepRole:
		return w.handleRoleInput(msg)
	case StepTask:
		return w.handleTaskInput(msg)
	case StepReview:
		return w.handleReview(msg)
	}

	return w, nil
}

// handleBack moves one step back, cancelling from the first step.
func (w *Wizard) handleBack() (tea.Model, tea.Cmd) {
	switch w.step {
	case StepRole:
		w.cancelled = true
		return w, tea.Quit
	case StepTask:
		w.taskInput.Blur()
		w.descInput.Blur()
		w.step = StepRole
		return w, w.roleInput.Focus()
	case StepReview:
		w.step = StepTask
		w.statusbar.SetState(status.StateComposing)
		return w, w.updateFocus()
	}
	return w, nil
}

//nolint:gocritic // evalOrder: bubbletea pattern returns cmd from method call
func (w *Wizard) handleRoleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if keymap.Matches(msg.String(), w.keymap.Continue) {
		w.roleInput.Blur()
		w.step = StepTask
		w.focusIndex = 0
		return w, w.updateFocus()
	}

	_, cmd := w.roleInput.Update(msg)
	return w, cmd
}

//nolint:gocritic // evalOrder: bubbletea pattern returns cmd from method call
func (w *Wizard) handleTaskInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := w.taskFields()

	switch {
	case keymap.Matches(msg.String(), w.keymap.Next):
		w.focusIndex++
		if w.focusIndex >= len(fields) {
			w.focusIndex = 0
		}
		return w, w.updateFocus()

	case keymap.Matches(msg.String(), w.keymap.Prev):
		w.focusIndex--
		if w.focusIndex < 0 {
			w.focusIndex = len(fields) - 1
		}
		return w, w.updateFocus()

	case keymap.Matches(msg.String(), w.keymap.Continue):
		for _, f := range fields {
			f.Blur()
		}
		w.step = StepReview
		w.statusbar.SetState(status.StateReview)
		return w, nil
	}

	_, cmd := fields[w.focusIndex].Update(msg)
	return w, cmd
}

func (w *Wizard) handleReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), w.keymap.Up):
		w.doclist.MoveUp()
	case keymap.Matches(msg.String(), w.keymap.Down):
		w.doclist.MoveDown()
	case keymap.Matches(msg.String(), w.keymap.Confirm):
		w.task = w.compose()
		w.statusbar.SetState(status.StateDone)
		return w, tea.Quit
	}
	return w, nil
}

// taskFields returns the fields cycled through on the task step.
func (w *Wizard) taskFields() []*input.Field {
	return []*input.Field{w.taskInput, w.descInput}
}

// updateFocus focuses the active task field and blurs the rest.
func (w *Wizard) updateFocus() tea.Cmd {
	fields := w.taskFields()
	cmds := make([]tea.Cmd, len(fields))
	for i := range fields {
		if i == w.focusIndex {
			cmds[i] = fields[i].Focus()
		} else {
			fields[i].Blur()
		}
	}
	return tea.Batch(cmds...)
}

// resolved returns the entered answers with blank fields replaced by
// their defaults.
func (w *Wizard) resolved() (role, job, description string) {
	role = strings.TrimSpace(w.roleInput.Value())
	if role == "" {
		role = defaultRole
	}
	job = strings.TrimSpace(w.taskInput.Value())
	if job == "" {
		job = defaultJob
	}
	description = strings.TrimSpace(w.descInput.Value())
	if description == "" {
		description = "Document analysis for " + strings.ToLower(role)
	}
	return role, job, description
}

// compose builds the task definition from the entered answers.
func (w *Wizard) compose() *domain.Task {
	role, job, description := w.resolved()

	return &domain.Task{
		ChallengeInfo: domain.NewChallengeInfo(description),
		Documents:     w.docs,
		Persona:       domain.Persona{Role: role},
		JobToBeDone:   domain.JobToBeDone{Task: job},
	}
}

// View renders the wizard.
func (w *Wizard) View() string {
	var b strings.Builder

	b.WriteString(w.styles.Title.Render("docsift setup"))
	b.WriteString("\n\n")

	b.WriteString(w.renderProgress())
	b.WriteString("\n\n")

	switch w.step {
	case StepRole:
		b.WriteString(w.renderRole())
	case StepTask:
		b.WriteString(w.renderTask())
	case StepReview:
		b.WriteString(w.renderReview())
	}

	b.WriteString("\n")
	b.WriteString(w.renderHelp())
	b.WriteString("\n\n")
	b.WriteString(w.statusbar.View())

	return b.String()
}

func (w *Wizard) renderProgress() string {
	stepNames := []string{"Role", "Task", "Review"}
	currentIdx := int(w.step)

	progress := ""
	for i, name := range stepNames {
		if i > 0 {
			progress += " > "
		}
		if i == currentIdx {
			progress += w.styles.Selected.Render(name)
		} else if i < currentIdx {
			progress += w.styles.Success.Render(name)
		} else {
			progress += w.styles.Muted.Render(name)
		}
	}
	return progress
}

func (w *Wizard) renderRole() string {
	var b strings.Builder

	b.WriteString(w.styles.Subtitle.Render("Who is this analysis for?"))
	b.WriteString("\n\n")
	b.WriteString(w.styles.Muted.Render("Examples: Travel Planner, Research Scientist, Legal Analyst"))
	b.WriteString("\n\n")
	b.WriteString(w.roleInput.View())
	b.WriteString("\n")

	return b.String()
}

func (w *Wizard) renderTask() string {
	var b strings.Builder

	b.WriteString(w.styles.Subtitle.Render("What do they need from the documents?"))
	b.WriteString("\n\n")
	b.WriteString(w.styles.Muted.Render("Examples:"))
	b.WriteString("\n")
	b.WriteString(w.styles.Muted.Render("  - Plan a 7-day vacation for a family of 4"))
	b.WriteString("\n")
	b.WriteString(w.styles.Muted.Render("  - Find best practices for API development"))
	b.WriteString("\n")
	b.WriteString(w.styles.Muted.Render("  - Identify key research methodologies"))
	b.WriteString("\n\n")
	b.WriteString(w.taskInput.View())
	b.WriteString("\n\n")
	b.WriteString(w.descInput.View())
	b.WriteString("\n")

	return b.String()
}

func (w *Wizard) renderReview() string {
	var b strings.Builder

	b.WriteString(w.styles.Subtitle.Render("Review"))
	b.WriteString("\n\n")

	role, job, description := w.resolved()
	b.WriteString(w.renderAnswer("Role", role, w.roleInput.Value()))
	b.WriteString(w.renderAnswer("Task", job, w.taskInput.Value()))
	b.WriteString(w.renderAnswer("Description", description, w.descInput.Value()))
	b.WriteString("\n")

	b.WriteString(w.styles.Border.Render(w.doclist.View()))
	b.WriteString("\n")

	return b.String()
}

// renderAnswer renders one summary line, marking defaulted answers.
func (w *Wizard) renderAnswer(label, value, entered string) string {
	line := w.styles.Normal.Render(fmt.Sprintf("%s: %s", label, value))
	if strings.TrimSpace(entered) == "" {
		line += w.styles.Muted.Render(" (default)")
	}
	return line + "\n"
}

func (w *Wizard) renderHelp() string {
	switch w.step {
	case StepRole:
		return w.styles.Help.Render("[enter] continue  [esc] cancel")
	case StepTask:
		return w.styles.Help.Render("[tab] next field  [enter] continue  [esc] back")
	case StepReview:
		return w.styles.Help.Render("[j/k] browse documents  [enter] create task  [esc] back")
	default:
		return ""
	}
}

// SetDimensions sets the wizard dimensions.
func (w *Wizard) SetDimensions(width, height int) {
	w.width = width
	w.height = height
	w.ready = true

	fieldWidth := width - 4
	if fieldWidth > 72 {
		fieldWidth = 72
	}
	w.roleInput.SetWidth(fieldWidth)
	w.taskInput.SetWidth(fieldWidth)
	w.descInput.SetWidth(fieldWidth)

	listHeight := height - 16
	if listHeight < 6 {
		listHeight = 6
	}
	w.doclist.SetDimensions(width-4, listHeight)
	w.statusbar.SetWidth(width)
}

// Step returns the current wizard step.
func (w *Wizard) Step() WizardStep {
	return w.step
}

// Task returns the composed task, or nil before confirmation.
func (w *Wizard) Task() *domain.Task {
	return w.task
}

// Cancelled returns whether the wizard was cancelled.
func (w *Wizard) Cancelled() bool {
	return w.cancelled
}

// Ready returns whether dimensions have been received.
func (w *Wizard) Ready() bool {
	return w.ready
}

// Reset returns the wizard to its first step with empty answers.
func (w *Wizard) Reset() {
	w.step = StepRole
	w.focusIndex = 0
	w.roleInput.Reset()
	w.taskInput.Reset()
	w.descInput.Reset()
	w.taskInput.Blur()
	w.descInput.Blur()
	w.roleInput.Focus()
	w.doclist.SetSelected(0)
	w.statusbar.SetState(status.StateComposing)
	w.task = nil
	w.cancelled = false
}

// RunSetup runs the interactive setup wizard over the scanned
// documents. It returns the composed task, or nil when the user
// cancels.
func RunSetup(folder string, docs []domain.DocumentRef) (*domain.Task, error) {
	w := NewWizard(folder, docs)
	p := tea.NewProgram(w, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("running setup wizard: %w", err)
	}
	if w.cancelled {
		return nil, nil
	}
	return w.task, nil
}
