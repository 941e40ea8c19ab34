// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/lexi/internal/core/domain"
)

// LookupCompleted carries the outcome of one dictionary lookup back to the
// model. Ticket identifies the request so stale outcomes can be dropped.
type LookupCompleted struct {
	Ticket  domain.Ticket
	Term    string
	Entries []domain.DictionaryEntry
	Err     error
}

// PronunciationPlayed is sent after a playback request for an entry.
// Played is false when the entry has no audio.
type PronunciationPlayed struct {
	Word   string
	Played bool
	Err    error
}

// PlaybackFinished is sent when the audio player process exits.
type PlaybackFinished struct {
	URL string
	Err error
}

// SettingsReloaded carries settings re-read after the config file changed.
type SettingsReloaded struct {
	Settings *domain.Settings
	Err      error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewLookup is the word input and entries view.
	ViewLookup ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewLookup:
		return "lookup"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
