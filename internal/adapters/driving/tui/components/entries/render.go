// Package entries renders dictionary entries for the TUI and the CLI.
package entries

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lexi/internal/core/domain"
)

// Not-found block text.
const (
	NotFoundTitle   = "No Definitions Found"
	NotFoundLine1   = "Sorry pal, we couldn't find definitions for the word you were looking for."
	NotFoundLine2   = "You can try the search again at later time or head to the web instead."
	AudioIndicator  = "🗣️"
	failedPrefix    = "Lookup failed: "
	bullet          = "• "
	selectedMarker  = "▸ "
	unselectedSpace = "  "
)

// Renderer turns lookup states into text.
type Renderer struct {
	styles *styles.Styles
	width  int
}

// NewRenderer creates a renderer. A width of zero disables wrapping.
func NewRenderer(s *styles.Styles, width int) *Renderer {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Renderer{styles: s, width: width}
}

// SetWidth sets the wrap width.
func (r *Renderer) SetWidth(width int) {
	r.width = width
}

// State renders the result area for state. Failures are only shown when
// showFailures is set. selected is the index of the highlighted entry, or -1
// for none.
func (r *Renderer) State(state domain.LookupState, showFailures bool, selected int) string {
	switch state.Status() {
	case domain.StatusNotFound:
		return r.NotFound()
	case domain.StatusFailed:
		if showFailures {
			return r.Failed(state.Err())
		}
		return ""
	case domain.StatusLoaded:
		out, _ := r.Entries(state.Entries(), selected)
		return out
	default:
		return ""
	}
}

// NotFound renders the not-found block.
func (r *Renderer) NotFound() string {
	return strings.Join([]string{
		r.styles.Warning.Bold(true).Render(NotFoundTitle),
		"",
		r.wrap(r.styles.Normal, NotFoundLine1),
		r.wrap(r.styles.Normal, NotFoundLine2),
	}, "\n")
}

// Failed renders a failure line.
func (r *Renderer) Failed(err error) string {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return r.wrap(r.styles.Error, failedPrefix+msg)
}

// Entries renders all entries in order and returns the line offset at
// which each entry starts.
func (r *Renderer) Entries(list []domain.DictionaryEntry, selected int) (string, []int) {
	if len(list) == 0 {
		return "", nil
	}

	blocks := make([]string, 0, len(list))
	offsets := make([]int, 0, len(list))
	line := 0
	for i := range list {
		block := r.Entry(&list[i], selected >= 0, i == selected)
		offsets = append(offsets, line)
		line += strings.Count(block, "\n") + 2
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n"), offsets
}

// Entry renders one entry. When marked is set a selection gutter is drawn
// and selected decides whether this entry carries the marker.
func (r *Renderer) Entry(entry *domain.DictionaryEntry, marked, selected bool) string {
	lines := make([]string, 0, 8)

	heading := r.styles.Word.Render(entry.Word)
	if marked {
		if selected {
			heading = r.styles.Selected.Render(selectedMarker) + heading
		} else {
			heading = unselectedSpace + heading
		}
	}
	lines = append(lines, heading)

	if entry.Phonetic != "" {
		phonetic := r.styles.Phonetic.Render(entry.Phonetic)
		if entry.HasAudio() {
			phonetic += " " + AudioIndicator
		}
		lines = append(lines, phonetic)
	}

	for _, meaning := range entry.Meanings {
		lines = append(lines, "", r.Meaning(meaning))
	}

	return strings.Join(lines, "\n")
}

// Meaning renders a part-of-speech block. Two or more definitions form a
// bulleted list, a single definition is a "Definition:" paragraph and no
// definitions render nothing below the heading.
func (r *Renderer) Meaning(meaning domain.Meaning) string {
	lines := []string{r.styles.PartOfSpeech.Render(meaning.PartOfSpeech)}

	switch {
	case len(meaning.Definitions) > 1:
		for _, def := range meaning.Definitions {
			lines = append(lines, r.wrapIndent(r.styles.Normal, bullet+def.Definition, len(bullet)))
			if def.HasExample() {
				lines = append(lines, r.indent(r.example(def.Example), len(bullet)))
			}
		}
	case len(meaning.Definitions) == 1:
		def := meaning.Definitions[0]
		lines = append(lines, r.labelled("Definition:", r.styles.Normal, def.Definition))
		if def.HasExample() {
			lines = append(lines, r.example(def.Example))
		}
	}

	if len(meaning.Antonyms) > 0 {
		lines = append(lines, r.labelled("Antonyms:", r.styles.Normal, strings.Join(meaning.Antonyms, ", ")))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) example(text string) string {
	return r.labelled("Example:", r.styles.Example, text)
}

func (r *Renderer) labelled(label string, style lipgloss.Style, text string) string {
	return r.wrap(lipgloss.NewStyle(), r.styles.Label.Render(label)+" "+style.Render(text))
}

func (r *Renderer) wrap(style lipgloss.Style, text string) string {
	if r.width <= 0 {
		return style.Render(text)
	}
	return style.Width(r.width).Render(text)
}

func (r *Renderer) wrapIndent(style lipgloss.Style, text string, hang int) string {
	if r.width <= hang {
		return style.Render(text)
	}
	wrapped := style.Width(r.width - hang).Render(text)
	lines := strings.Split(wrapped, "\n")
	pad := strings.Repeat(" ", hang)
	for i := 1; i < len(lines); i++ {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) indent(text string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
