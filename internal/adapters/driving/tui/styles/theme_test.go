package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, string(theme.Primary))
	assert.NotEmpty(t, string(theme.Secondary))
	assert.NotEmpty(t, string(theme.Foreground))
	assert.NotEmpty(t, string(theme.Muted))
	assert.NotEmpty(t, string(theme.Accent))
	assert.NotEmpty(t, string(theme.Warning))
	assert.NotEmpty(t, string(theme.Error))
	assert.NotEmpty(t, string(theme.Border))
}

func TestDefaultTheme_AccentsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	accents := []lipgloss.Color{theme.Primary, theme.Secondary, theme.Accent, theme.Warning, theme.Error}

	seen := make(map[string]bool)
	for _, c := range accents {
		assert.False(t, seen[string(c)], "duplicate colour %s", c)
		seen[string(c)] = true
	}
}

func TestNewStyles_NilTheme(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme(), s.Theme())
}

func TestStyles_WordIsBold(t *testing.T) {
	s := DefaultStyles()

	assert.True(t, s.Word.GetBold())
	assert.True(t, s.PartOfSpeech.GetItalic())
}

func TestPlainStyles_RenderUnchanged(t *testing.T) {
	s := PlainStyles()

	for _, style := range []lipgloss.Style{s.Word, s.Phonetic, s.Label, s.Example, s.Warning, s.Error} {
		assert.Equal(t, "hello", style.Render("hello"))
	}
	assert.NotNil(t, s.Theme())
}
