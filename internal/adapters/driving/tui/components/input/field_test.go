package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/internal/adapters/driving/tui/styles"
)

func TestNewField(t *testing.T) {
	s := styles.DefaultStyles()
	field := NewField(s, "Your role", "Travel Planner")

	require.NotNil(t, field)
	assert.Equal(t, "", field.Value())
	assert.Equal(t, "Your role", field.Label())
	assert.True(t, field.Focused())
}

func TestNewField_NilStyles(t *testing.T) {
	field := NewField(nil, "Your role", "")

	require.NotNil(t, field)
	assert.NotNil(t, field.styles)
}

func TestField_Init(t *testing.T) {
	field := NewField(nil, "Your role", "")

	cmd := field.Init()

	// Blink command should be returned
	assert.NotNil(t, cmd)
}

func TestField_Update(t *testing.T) {
	field := NewField(nil, "Your role", "")

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
	updated, cmd := field.Update(msg)

	assert.Equal(t, field, updated)
	// textinput returns nil cmd for regular key presses
	_ = cmd
	assert.Equal(t, "a", field.Value())
}

func TestField_View(t *testing.T) {
	field := NewField(nil, "Your role", "")

	view := field.View()

	assert.NotEmpty(t, view)
	assert.Contains(t, view, "Your role")
}

func TestField_SetValue(t *testing.T) {
	field := NewField(nil, "Your task", "")

	field.SetValue("plan a trip")

	assert.Equal(t, "plan a trip", field.Value())
}

func TestField_Focus(t *testing.T) {
	field := NewField(nil, "Your role", "")
	field.Blur()

	assert.False(t, field.Focused())

	cmd := field.Focus()

	assert.NotNil(t, cmd)
	assert.True(t, field.Focused())
}

func TestField_Blur(t *testing.T) {
	field := NewField(nil, "Your role", "")

	assert.True(t, field.Focused())

	field.Blur()

	assert.False(t, field.Focused())
}

func TestField_SetWidth(t *testing.T) {
	field := NewField(nil, "Your role", "")

	field.SetWidth(100)

	assert.Equal(t, 100, field.Width())
}

func TestField_SetWidth_Minimum(t *testing.T) {
	field := NewField(nil, "Your role", "")

	field.SetWidth(10) // Very small, inner input clamps to its minimum

	assert.Equal(t, 10, field.Width())
	assert.Equal(t, 20, field.textinput.Width)
}

func TestField_Reset(t *testing.T) {
	field := NewField(nil, "Your role", "")
	field.SetValue("Analyst")

	field.Reset()

	assert.Equal(t, "", field.Value())
}
