// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/styles"
)

// WordInput wraps a bubbles textinput for entering the word to look up.
type WordInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewWordInput creates a new word input component.
func NewWordInput(s *styles.Styles) *WordInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Type a word..."
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40

	return &WordInput{
		textinput: ti,
		styles:    s,
		width:     40,
	}
}

// Init initialises the word input.
func (w *WordInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (w *WordInput) Update(msg tea.Msg) (*WordInput, tea.Cmd) {
	var cmd tea.Cmd
	w.textinput, cmd = w.textinput.Update(msg)
	return w, cmd
}

// View renders the word input.
func (w *WordInput) View() string {
	label := w.styles.Title.Render("Word: ")
	field := w.styles.InputField.Render(w.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (w *WordInput) Value() string {
	return w.textinput.Value()
}

// SetValue sets the input value.
func (w *WordInput) SetValue(value string) {
	w.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (w *WordInput) Focus() tea.Cmd {
	return w.textinput.Focus()
}

// Blur removes focus from the input.
func (w *WordInput) Blur() {
	w.textinput.Blur()
}

// Focused returns whether the input is focused.
func (w *WordInput) Focused() bool {
	return w.textinput.Focused()
}

// SetWidth sets the width of the input.
func (w *WordInput) SetWidth(width int) {
	w.width = width
	inputWidth := width - 12
	if inputWidth < 20 {
		inputWidth = 20
	}
	w.textinput.Width = inputWidth
}

// Width returns the current width.
func (w *WordInput) Width() int {
	return w.width
}
