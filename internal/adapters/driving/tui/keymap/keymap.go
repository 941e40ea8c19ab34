// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help toggles the help view.
	Help key.Binding

	// Back returns focus to the word input.
	Back key.Binding

	// Search submits the current word.
	Search key.Binding

	// Up selects the previous entry.
	Up key.Binding

	// Down selects the next entry.
	Down key.Binding

	// Play plays the pronunciation of the selected entry.
	Play key.Binding

	// PageUp scrolls the entries up by a page.
	PageUp key.Binding

	// PageDown scrolls the entries down by a page.
	PageDown key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "/"),
			key.WithHelp("esc", "new word"),
		),
		Search: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "look up"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev entry"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next entry"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d", " "),
			key.WithHelp("pgdn", "scroll down"),
		),
	}
}

// ShortHelp returns the bindings shown while typing a word.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Quit}
}

// EntriesHelp returns the bindings shown while browsing entries.
func (k *KeyMap) EntriesHelp() []key.Binding {
	return []key.Binding{k.Play, k.Down, k.Back, k.Help}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Back},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Play},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
