// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette and styling for the TUI.
type Theme struct {
	// Primary is the main accent colour, used for headwords.
	Primary lipgloss.Color

	// Secondary is used for part-of-speech headings.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Accent marks playable phonetics.
	Accent lipgloss.Color

	// Warning is used for the not-found block.
	Warning lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#E0AF68"), // Amber
		Secondary:  lipgloss.Color("#7AA2F7"), // Blue
		Foreground: lipgloss.Color("#C0CAF5"), // Light gray
		Muted:      lipgloss.Color("#565F89"), // Slate
		Accent:     lipgloss.Color("#9ECE6A"), // Green
		Warning:    lipgloss.Color("#FF9E64"), // Orange
		Error:      lipgloss.Color("#F7768E"), // Red
		Border:     lipgloss.Color("#3B4261"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title style for the page header.
	Title lipgloss.Style

	// Word style for entry headwords.
	Word lipgloss.Style

	// Phonetic style for phonetic transcriptions.
	Phonetic lipgloss.Style

	// PartOfSpeech style for meaning headings.
	PartOfSpeech lipgloss.Style

	// Label style for "Definition:", "Example:" and "Antonyms:".
	Label lipgloss.Style

	// Example style for usage examples.
	Example lipgloss.Style

	// Normal style for regular text.
	Normal lipgloss.Style

	// Muted style for less important text.
	Muted lipgloss.Style

	// Selected style for the marker of the selected entry.
	Selected lipgloss.Style

	// Error style for error messages.
	Error lipgloss.Style

	// Warning style for the not-found block.
	Warning lipgloss.Style

	// InputField style for input areas.
	InputField lipgloss.Style

	// StatusBar style for the status bar.
	StatusBar lipgloss.Style

	// Help style for help text.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Word: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Phonetic: lipgloss.NewStyle().
			Foreground(theme.Accent),

		PartOfSpeech: lipgloss.NewStyle().
			Bold(true).
			Italic(true).
			Foreground(theme.Secondary),

		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		Example: lipgloss.NewStyle().
			Italic(true).
			Foreground(theme.Muted),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#16161E")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// PlainStyles returns styles that render text unchanged. Used when output
// is not a terminal.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		theme:        DefaultTheme(),
		Title:        plain,
		Word:         plain,
		Phonetic:     plain,
		PartOfSpeech: plain,
		Label:        plain,
		Example:      plain,
		Normal:       plain,
		Muted:        plain,
		Selected:     plain,
		Error:        plain,
		Warning:      plain,
		InputField:   plain,
		StatusBar:    plain,
		Help:         plain,
	}
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
