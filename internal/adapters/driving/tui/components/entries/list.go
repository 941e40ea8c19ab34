package entries

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lexi/internal/core/domain"
)

// List shows the result area of the lookup page in a scrollable viewport
// and tracks which entry is selected for playback.
type List struct {
	renderer     *Renderer
	viewport     viewport.Model
	state        domain.LookupState
	showFailures bool
	selected     int
	offsets      []int
}

// NewList creates an empty result list.
func NewList(s *styles.Styles) *List {
	vp := viewport.New(80, 10)
	return &List{
		renderer:     NewRenderer(s, 78),
		viewport:     vp,
		state:        domain.Idle(),
		showFailures: true,
	}
}

// Init initialises the list.
func (l *List) Init() tea.Cmd {
	return nil
}

// Update forwards mouse wheel and other viewport messages.
func (l *List) Update(msg tea.Msg) (*List, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		// Keys are mapped by the owning view.
		return l, nil
	}
	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return l, cmd
}

// View renders the visible part of the result area.
func (l *List) View() string {
	return l.viewport.View()
}

// SetState replaces the displayed lookup state and resets the selection.
func (l *List) SetState(state domain.LookupState) {
	l.state = state
	l.selected = 0
	l.refresh()
	l.viewport.GotoTop()
}

// State returns the displayed lookup state.
func (l *List) State() domain.LookupState {
	return l.state
}

// SetShowFailures controls whether failed lookups are displayed.
func (l *List) SetShowFailures(show bool) {
	l.showFailures = show
	l.refresh()
}

// Entries returns the displayed entries.
func (l *List) Entries() []domain.DictionaryEntry {
	return l.state.Entries()
}

// Selected returns the index of the selected entry.
func (l *List) Selected() int {
	return l.selected
}

// SelectedEntry returns the selected entry, or nil if there is none.
func (l *List) SelectedEntry() *domain.DictionaryEntry {
	list := l.state.Entries()
	if l.selected < 0 || l.selected >= len(list) {
		return nil
	}
	return &list[l.selected]
}

// MoveUp selects the previous entry.
func (l *List) MoveUp() {
	if l.selected > 0 {
		l.selected--
		l.refresh()
		l.scrollToSelected()
	}
}

// MoveDown selects the next entry.
func (l *List) MoveDown() {
	if l.selected < len(l.state.Entries())-1 {
		l.selected++
		l.refresh()
		l.scrollToSelected()
	}
}

// PageUp scrolls up by one page.
func (l *List) PageUp() {
	l.viewport.SetYOffset(l.viewport.YOffset - l.viewport.Height)
}

// PageDown scrolls down by one page.
func (l *List) PageDown() {
	l.viewport.SetYOffset(l.viewport.YOffset + l.viewport.Height)
}

// YOffset returns the current scroll position.
func (l *List) YOffset() int {
	return l.viewport.YOffset
}

// SetDimensions sets the size of the result area.
func (l *List) SetDimensions(width, height int) {
	if height < 1 {
		height = 1
	}
	l.viewport.Width = width
	l.viewport.Height = height
	l.renderer.SetWidth(width - 2)
	l.refresh()
}

func (l *List) refresh() {
	selected := -1
	if len(l.state.Entries()) > 1 {
		selected = l.selected
	}

	if l.state.Status() == domain.StatusLoaded {
		content, offsets := l.renderer.Entries(l.state.Entries(), selected)
		l.offsets = offsets
		l.viewport.SetContent(content)
		return
	}

	l.offsets = nil
	l.viewport.SetContent(l.renderer.State(l.state, l.showFailures, selected))
}

func (l *List) scrollToSelected() {
	if l.selected < len(l.offsets) {
		l.viewport.SetYOffset(l.offsets[l.selected])
	}
}
