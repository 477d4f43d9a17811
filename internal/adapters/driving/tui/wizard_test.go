package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/internal/core/domain"
)

func sampleDocs() []domain.DocumentRef {
	return []domain.DocumentRef{
		{Filename: "city-guide.pdf", Title: "City Guide"},
		{Filename: "cuisine.pdf", Title: "Cuisine"},
	}
}

// typeRunes sends each character as its own key message.
func typeRunes(w *Wizard, s string) {
	for _, r := range s {
		w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func pressEnter(w *Wizard) tea.Cmd {
	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func pressEsc(w *Wizard) tea.Cmd {
	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	return cmd
}

func TestNewWizard(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())

	require.NotNil(t, w)
	assert.Equal(t, StepRole, w.Step())
	assert.True(t, w.roleInput.Focused())
	assert.False(t, w.taskInput.Focused())
	assert.False(t, w.descInput.Focused())
	assert.Nil(t, w.Task())
	assert.False(t, w.Cancelled())
	assert.Equal(t, 2, w.doclist.Count())
}

func TestWizard_Init(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())

	cmd := w.Init()

	assert.NotNil(t, cmd)
}

func TestWizard_Update_WindowSize(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())

	model, cmd := w.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, w, model)
	assert.Nil(t, cmd)
	assert.True(t, w.Ready())
}

func TestWizard_RoleStep_ContinueAdvances(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())

	typeRunes(w, "Travel Planner")
	pressEnter(w)

	assert.Equal(t, StepTask, w.Step())
	assert.Equal(t, "Travel Planner", w.roleInput.Value())
	assert.False(t, w.roleInput.Focused())
	assert.True(t, w.taskInput.Focused())
}

func TestWizard_TaskStep_TabCyclesFields(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())
	pressEnter(w) // to task step

	w.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, w.taskInput.Focused())
	assert.True(t, w.descInput.Focused())

	w.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, w.taskInput.Focused())
	assert.False(t, w.descInput.Focused())

	w.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.True(t, w.descInput.Focused())
}

func TestWizard_TaskStep_TypesIntoFocusedField(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())
	pressEnter(w)

	typeRunes(w, "plan a trip")
	w.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeRunes(w, "summer holiday")

	assert.Equal(t, "plan a trip", w.taskInput.Value())
	assert.Equal(t, "summer holiday", w.descInput.Value())
}

func TestWizard_FullFlow_ComposesTask(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())

	typeRunes(w, "Travel Planner")
	pressEnter(w)
	typeRunes(w, "Plan a 7-day vacation")
	pressEnter(w)
	assert.Equal(t, StepReview, w.Step())

	cmd := pressEnter(w)

	assert.NotNil(t, cmd) // quit command
	task := w.Task()
	require.NotNil(t, task)
	assert.Equal(t, "Travel Planner", task.Persona.Role)
	assert.Equal(t, "Plan a 7-day vacation", task.JobToBeDone.Task)
	assert.Equal(t, sampleDocs(), task.Documents)
	require.NotNil(t, task.ChallengeInfo)
	assert.True(t, strings.HasPrefix(task.ChallengeInfo.ChallengeID, "user_analysis_"))
	assert.Equal(t, "user_defined_analysis", task.ChallengeInfo.TestCaseName)
	assert.Equal(t, "Document analysis for travel planner", task.ChallengeInfo.Description)
	assert.False(t, w.Cancelled())
}

func TestWizard_BlankAnswers_FallBackToDefaults(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())

	pressEnter(w)
	pressEnter(w)
	pressEnter(w)

	task := w.Task()
	require.NotNil(t, task)
	assert.Equal(t, "Analyst", task.Persona.Role)
	assert.Equal(t, "Analyze and summarize key information", task.JobToBeDone.Task)
	assert.Equal(t, "Document analysis for analyst", task.ChallengeInfo.Description)
}

func TestWizard_DescriptionOverridesDefault(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())

	pressEnter(w)
	w.Update(tea.KeyMsg{Type: tea.KeyTab})
	typeRunes(w, "Q3 planning research")
	pressEnter(w)
	pressEnter(w)

	task := w.Task()
	require.NotNil(t, task)
	assert.Equal(t, "Q3 planning research", task.ChallengeInfo.Description)
}

func TestWizard_EscFromFirstStep_Cancels(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())

	cmd := pressEsc(w)

	assert.NotNil(t, cmd) // quit command
	assert.True(t, w.Cancelled())
	assert.Nil(t, w.Task())
}

func TestWizard_EscNavigatesBack(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())
	pressEnter(w)
	pressEnter(w)
	assert.Equal(t, StepReview, w.Step())

	pressEsc(w)
	assert.Equal(t, StepTask, w.Step())
	assert.True(t, w.taskInput.Focused())

	pressEsc(w)
	assert.Equal(t, StepRole, w.Step())
	assert.True(t, w.roleInput.Focused())
	assert.False(t, w.Cancelled())
}

func TestWizard_CtrlC_CancelsAnywhere(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())
	pressEnter(w) // to task step

	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.NotNil(t, cmd)
	assert.True(t, w.Cancelled())
	assert.Nil(t, w.Task())
}

func TestWizard_ReviewStep_NavigatesDocuments(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())
	pressEnter(w)
	pressEnter(w)

	w.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, w.doclist.Selected())

	w.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, w.doclist.Selected())
}

func TestWizard_View_RoleStep(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())
	w.SetDimensions(100, 40)

	view := w.View()

	assert.Contains(t, view, "docsift setup")
	assert.Contains(t, view, "Who is this analysis for?")
	assert.Contains(t, view, "Travel Planner")
	assert.Contains(t, view, "Role")
}

func TestWizard_View_TaskStep(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())
	w.SetDimensions(100, 40)
	pressEnter(w)

	view := w.View()

	assert.Contains(t, view, "What do they need from the documents?")
	assert.Contains(t, view, "Plan a 7-day vacation")
	assert.Contains(t, view, "Project description")
}

func TestWizard_View_ReviewStep(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())
	w.SetDimensions(100, 40)
	typeRunes(w, "Chef")
	pressEnter(w)
	pressEnter(w)

	view := w.View()

	assert.Contains(t, view, "Review")
	assert.Contains(t, view, "Role: Chef")
	assert.Contains(t, view, "(default)") // blank task fell back
	assert.Contains(t, view, "City Guide")
	assert.Contains(t, view, "Documents (2)")
}

func TestWizard_View_StatusBar(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())
	w.SetDimensions(100, 40)

	view := w.View()

	assert.Contains(t, view, "2 documents in ./pdfs")
}

func TestWizard_Reset(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())
	typeRunes(w, "Chef")
	pressEnter(w)
	typeRunes(w, "find recipes")
	pressEnter(w)
	pressEnter(w)
	require.NotNil(t, w.Task())

	w.Reset()

	assert.Equal(t, StepRole, w.Step())
	assert.Equal(t, "", w.roleInput.Value())
	assert.Equal(t, "", w.taskInput.Value())
	assert.True(t, w.roleInput.Focused())
	assert.Nil(t, w.Task())
	assert.False(t, w.Cancelled())
}

func TestWizard_SetDimensions(t *testing.T) {
	w := NewWizard("./pdfs", sampleDocs())

	w.SetDimensions(120, 50)

	assert.True(t, w.Ready())
	assert.Equal(t, 120, w.statusbar.Width())
	assert.Equal(t, 72, w.roleInput.Width()) // capped field width
}
