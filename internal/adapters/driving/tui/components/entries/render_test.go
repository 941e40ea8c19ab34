package entries

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lexi/internal/core/domain"
)

func plainRenderer() *Renderer {
	return NewRenderer(styles.PlainStyles(), 0)
}

func helloEntry() domain.DictionaryEntry {
	return domain.DictionaryEntry{
		Word:     "hello",
		Phonetic: "həˈləʊ",
		Phonetics: []domain.PhoneticVariant{
			{Text: "həˈləʊ", Audio: "https://example.com/hello-uk.mp3"},
		},
		Meanings: []domain.Meaning{
			{
				PartOfSpeech: "exclamation",
				Definitions: []domain.Definition{
					{Definition: "used as a greeting.", Example: "hello there, Katie!"},
				},
			},
			{
				PartOfSpeech: "noun",
				Definitions: []domain.Definition{
					{Definition: "an utterance of 'hello'; a greeting."},
					{Definition: "a call for attention.", Example: "she was getting polite hellos"},
				},
				Synonyms: []string{"greeting"},
				Antonyms: []string{"goodbye", "farewell"},
			},
		},
	}
}

func TestRenderer_NilStyles(t *testing.T) {
	r := NewRenderer(nil, 0)
	assert.NotNil(t, r.styles)
}

func TestRenderer_Entry_Hello(t *testing.T) {
	entry := helloEntry()

	out := plainRenderer().Entry(&entry, false, false)

	assert.True(t, strings.HasPrefix(out, "hello\n"))
	assert.Contains(t, out, "həˈləʊ "+AudioIndicator)
	assert.Contains(t, out, "exclamation")
	assert.Contains(t, out, "Definition: used as a greeting.")
	assert.Contains(t, out, "Example: hello there, Katie!")
	assert.Contains(t, out, "• an utterance of 'hello'; a greeting.")
	assert.Contains(t, out, "• a call for attention.")
	assert.Contains(t, out, "Example: she was getting polite hellos")
	assert.Contains(t, out, "Antonyms: goodbye, farewell")
	assert.NotContains(t, out, "Synonyms")
}

func TestRenderer_Meaning_DefinitionCountRule(t *testing.T) {
	r := plainRenderer()

	tests := []struct {
		name        string
		defs        []domain.Definition
		paragraph   bool
		bulletCount int
	}{
		{"none", nil, false, 0},
		{"one", []domain.Definition{{Definition: "a"}}, true, 0},
		{"two", []domain.Definition{{Definition: "a"}, {Definition: "b"}}, false, 2},
		{"three", []domain.Definition{{Definition: "a"}, {Definition: "b"}, {Definition: "c"}}, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Meaning(domain.Meaning{PartOfSpeech: "noun", Definitions: tt.defs})

			assert.Equal(t, tt.paragraph, strings.Contains(out, "Definition:"))
			assert.Equal(t, tt.bulletCount, strings.Count(out, bullet))
		})
	}
}

func TestRenderer_Meaning_NoDefinitionsRendersHeadingOnly(t *testing.T) {
	out := plainRenderer().Meaning(domain.Meaning{PartOfSpeech: "verb"})

	assert.Equal(t, "verb", out)
}

func TestRenderer_Meaning_EmptyAntonymsOmitted(t *testing.T) {
	out := plainRenderer().Meaning(domain.Meaning{
		PartOfSpeech: "noun",
		Definitions:  []domain.Definition{{Definition: "a"}},
		Antonyms:     []string{},
	})

	assert.NotContains(t, out, "Antonyms")
}

func TestRenderer_Entry_PhoneticWithoutAudio(t *testing.T) {
	entry := domain.DictionaryEntry{
		Word:      "word",
		Phonetic:  "/wɜːd/",
		Phonetics: []domain.PhoneticVariant{{Text: "/wɜːd/"}},
	}

	out := plainRenderer().Entry(&entry, false, false)

	assert.Contains(t, out, "/wɜːd/")
	assert.NotContains(t, out, AudioIndicator)
}

func TestRenderer_Entry_NoPhonetic(t *testing.T) {
	entry := domain.DictionaryEntry{
		Word:      "word",
		Phonetics: []domain.PhoneticVariant{{Audio: "https://example.com/a.mp3"}},
	}

	out := plainRenderer().Entry(&entry, false, false)

	assert.Equal(t, "word", out)
}

func TestRenderer_Entry_SelectionMarker(t *testing.T) {
	entry := domain.DictionaryEntry{Word: "word"}
	r := plainRenderer()

	assert.Equal(t, selectedMarker+"word", r.Entry(&entry, true, true))
	assert.Equal(t, unselectedSpace+"word", r.Entry(&entry, true, false))
}

func TestRenderer_Entries_CountAndOffsets(t *testing.T) {
	list := []domain.DictionaryEntry{helloEntry(), {Word: "hullo"}, {Word: "hallo"}}

	out, offsets := plainRenderer().Entries(list, -1)

	assert.Len(t, offsets, 3)
	assert.Equal(t, 0, offsets[0])
	lines := strings.Split(out, "\n")
	for i, off := range offsets {
		assert.Equal(t, list[i].Word, strings.TrimSpace(lines[off]))
	}
}

func TestRenderer_Entries_Empty(t *testing.T) {
	out, offsets := plainRenderer().Entries([]domain.DictionaryEntry{}, 0)

	assert.Equal(t, "", out)
	assert.Nil(t, offsets)
}

func TestRenderer_State(t *testing.T) {
	r := plainRenderer()
	failure := errors.New("dictionary api error: unexpected status 500")

	tests := []struct {
		name         string
		state        domain.LookupState
		showFailures bool
		contains     string
		empty        bool
	}{
		{"idle", domain.Idle(), true, "", true},
		{"loading", domain.Loading("t", "hello"), true, "", true},
		{"not found", domain.NotFound("t", "zzzqqq"), true, NotFoundTitle, false},
		{"failed shown", domain.Failed("t", "hello", failure), true, "Lookup failed: dictionary api error", false},
		{"failed hidden", domain.Failed("t", "hello", failure), false, "", true},
		{"loaded", domain.Loaded("t", "hello", []domain.DictionaryEntry{helloEntry()}), true, "exclamation", false},
		{"loaded empty", domain.Loaded("t", "hello", nil), true, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.State(tt.state, tt.showFailures, -1)

			if tt.empty {
				assert.Empty(t, out)
				return
			}
			assert.Contains(t, out, tt.contains)
		})
	}
}

func TestRenderer_NotFound_Text(t *testing.T) {
	out := plainRenderer().NotFound()

	assert.Contains(t, out, NotFoundTitle)
	assert.Contains(t, out, NotFoundLine1)
	assert.Contains(t, out, NotFoundLine2)
}

func TestRenderer_Failed_NilError(t *testing.T) {
	assert.Equal(t, "Lookup failed: unknown error", plainRenderer().Failed(nil))
}

func TestRenderer_Wraps(t *testing.T) {
	r := NewRenderer(styles.PlainStyles(), 20)

	out := r.Meaning(domain.Meaning{
		PartOfSpeech: "noun",
		Definitions: []domain.Definition{
			{Definition: "a long definition that must wrap across several lines"},
			{Definition: "short"},
		},
	})

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(strings.TrimRight(line, " "))), 20, line)
	}
}
