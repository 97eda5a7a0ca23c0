// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/radix-cli/internal/adapters/driving/tui/styles"
)

// ValuesInput wraps a bubbles textinput for entering integers.
type ValuesInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewValuesInput creates a new values input component.
func NewValuesInput(s *styles.Styles) *ValuesInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "170 45 75 90 802 24 2 66"
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	return &ValuesInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the input.
func (v *ValuesInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (v *ValuesInput) Update(msg tea.Msg) (*ValuesInput, tea.Cmd) {
	var cmd tea.Cmd
	v.textinput, cmd = v.textinput.Update(msg)
	return v, cmd
}

// View renders the input.
func (v *ValuesInput) View() string {
	label := v.styles.Title.Render("Values: ")
	field := v.styles.InputField.Render(v.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (v *ValuesInput) Value() string {
	return v.textinput.Value()
}

// SetValue sets the input value.
func (v *ValuesInput) SetValue(value string) {
	v.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (v *ValuesInput) Focus() tea.Cmd {
	return v.textinput.Focus()
}

// Blur removes focus from the input.
func (v *ValuesInput) Blur() {
	v.textinput.Blur()
}

// Focused returns whether the input is focused.
func (v *ValuesInput) Focused() bool {
	return v.textinput.Focused()
}

// SetWidth sets the width of the input.
func (v *ValuesInput) SetWidth(width int) {
	v.width = width
	// Account for label and padding
	v.textinput.Width = max(width-12, 20)
}

// Width returns the current width.
func (v *ValuesInput) Width() int {
	return v.width
}

// Reset clears the input.
func (v *ValuesInput) Reset() {
	v.textinput.Reset()
}
