// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/styles"
)

// State represents the current lookup state for display.
type State string

const (
	StateReady     State = "ready"
	StateSearching State = "searching"
	StateNotFound  State = "not_found"
	StateError     State = "error"
	StateLoaded    State = "loaded"
	StateHelp      State = "help"
)

// Bar displays lookup status and keybinding hints.
type Bar struct {
	styles     *styles.Styles
	keymap     *keymap.KeyMap
	state      State
	message    string
	entryCount int
	browsing   bool
	width      int
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
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
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

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	var left string
	switch s.state {
	case StateSearching:
		left = s.styles.Muted.Render("Looking up…")
	case StateNotFound:
		left = s.styles.Warning.Render("No definitions")
	case StateError:
		left = s.styles.Error.Render("Lookup failed")
	case StateHelp:
		left = s.styles.Normal.Render("Help")
	case StateLoaded:
		left = s.styles.Normal.Render(pluralEntries(s.entryCount))
	default:
		left = s.styles.Muted.Render("Ready")
	}

	if s.message != "" {
		left += s.styles.Muted.Render(" · " + s.message)
	}
	return left
}

func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.browsing {
		bindings = s.keymap.EntriesHelp()
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

func pluralEntries(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", n)
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a transient message shown after the state.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetEntryCount sets the number of loaded entries.
func (s *Bar) SetEntryCount(count int) {
	s.entryCount = count
}

// EntryCount returns the number of loaded entries.
func (s *Bar) EntryCount() int {
	return s.entryCount
}

// SetBrowsing switches the key hints between input and entry browsing.
func (s *Bar) SetBrowsing(browsing bool) {
	s.browsing = browsing
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
	s.entryCount = 0
	s.browsing = false
}
