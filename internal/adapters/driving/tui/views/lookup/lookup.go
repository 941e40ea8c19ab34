// Package lookup provides the dictionary lookup view for the TUI.
package lookup

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/components/entries"
	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lexi/internal/core/domain"
	"github.com/custodia-labs/lexi/internal/core/ports/driving"
)

// View is the lookup page: word input, result area and status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.WordInput
	list      *entries.List
	statusbar *status.Bar

	controller    driving.LookupController
	lookupService driving.LookupService
	pronunciation driving.PronunciationService
	ctx           context.Context

	width      int
	height     int
	ready        bool
	focusInput   bool // true = typing a word, false = browsing entries
	showFailures bool
}

// NewView creates a new lookup view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	controller driving.LookupController,
	lookupService driving.LookupService,
	pronunciation driving.PronunciationService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:        s,
		keymap:        km,
		input:         input.NewWordInput(s),
		list:          entries.NewList(s),
		statusbar:     status.NewBar(s, km),
		controller:    controller,
		lookupService: lookupService,
		pronunciation: pronunciation,
		ctx:           context.Background(),
		width:         80,
		height:        24,
		focusInput:    true,
		showFailures:  true,
	}
	if controller != nil {
		v.input.SetValue(controller.Term())
		v.list.SetState(controller.State())
	}
	return v
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the lookup view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.LookupCompleted:
		v.handleLookupCompleted(msg)
		return v, nil

	case messages.PronunciationPlayed:
		v.handlePronunciationPlayed(msg)
		return v, nil

	case messages.PlaybackFinished:
		if msg.Err != nil {
			v.statusbar.SetMessage("Playback failed")
		} else {
			v.statusbar.SetMessage("")
		}
		return v, nil

	case messages.ErrorOccurred:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	cmds = append(cmds, cmd)
	v.list, cmd = v.list.Update(msg)
	cmds = append(cmds, cmd)
	return v, tea.Batch(cmds...)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.focusInput {
		if key.Matches(msg, v.keymap.Search) {
			return v, v.submit()
		}
		if msg.Type == tea.KeyEsc && len(v.list.Entries()) > 0 {
			v.browse()
			return v, nil
		}

		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		if v.controller != nil {
			v.controller.SetTerm(v.input.Value())
		}
		return v, cmd
	}

	switch {
	case key.Matches(msg, v.keymap.Back):
		return v, v.focus()
	case key.Matches(msg, v.keymap.Search):
		return v, v.submit()
	case key.Matches(msg, v.keymap.Up):
		v.list.MoveUp()
	case key.Matches(msg, v.keymap.Down):
		v.list.MoveDown()
	case key.Matches(msg, v.keymap.PageUp):
		v.list.PageUp()
	case key.Matches(msg, v.keymap.PageDown):
		v.list.PageDown()
	case key.Matches(msg, v.keymap.Play):
		return v, v.play()
	case key.Matches(msg, v.keymap.Help):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewHelp}
		}
	}
	return v, nil
}

// submit starts a lookup for the current input. Empty input is forwarded.
func (v *View) submit() tea.Cmd {
	if v.controller == nil || v.lookupService == nil {
		return func() tea.Msg {
			return messages.ErrorOccurred{Err: ErrNoLookupService}
		}
	}

	v.controller.SetTerm(v.input.Value())
	ticket, term := v.controller.Begin()
	v.list.SetState(v.controller.State())
	v.statusbar.SetState(status.StateSearching)
	v.statusbar.SetMessage("")

	service := v.lookupService
	ctx := v.ctx
	return func() tea.Msg {
		found, err := service.Lookup(ctx, term)
		return messages.LookupCompleted{Ticket: ticket, Term: term, Entries: found, Err: err}
	}
}

// handleLookupCompleted applies a lookup outcome unless it is stale.
func (v *View) handleLookupCompleted(msg messages.LookupCompleted) {
	if v.controller == nil || !v.controller.Resolve(msg.Ticket, msg.Entries, msg.Err) {
		return
	}

	state := v.controller.State()
	v.list.SetState(state)

	switch state.Status() {
	case domain.StatusLoaded:
		v.statusbar.SetState(status.StateLoaded)
		v.statusbar.SetEntryCount(len(state.Entries()))
		if len(state.Entries()) > 0 {
			v.browse()
		}
	case domain.StatusNotFound:
		v.statusbar.SetState(status.StateNotFound)
	case domain.StatusFailed:
		v.statusbar.SetState(v.failedStatus())
	case domain.StatusIdle, domain.StatusLoading:
		v.statusbar.SetState(status.StateReady)
	}
}

// play starts pronunciation of the selected entry.
func (v *View) play() tea.Cmd {
	entry := v.list.SelectedEntry()
	if entry == nil {
		return nil
	}
	if v.pronunciation == nil {
		return func() tea.Msg {
			return messages.ErrorOccurred{Err: ErrNoPronunciationService}
		}
	}

	selected := *entry
	service := v.pronunciation
	ctx := v.ctx
	return func() tea.Msg {
		played, err := service.Play(ctx, &selected)
		return messages.PronunciationPlayed{Word: selected.Word, Played: played, Err: err}
	}
}

func (v *View) handlePronunciationPlayed(msg messages.PronunciationPlayed) {
	switch {
	case errors.Is(msg.Err, domain.ErrNoPlayer):
		v.statusbar.SetMessage("No audio player found")
	case msg.Err != nil:
		v.statusbar.SetMessage("Playback failed")
	case msg.Played:
		v.statusbar.SetMessage("Playing " + msg.Word)
	default:
		v.statusbar.SetMessage("No audio for " + msg.Word)
	}
}

func (v *View) browse() {
	v.focusInput = false
	v.input.Blur()
	v.statusbar.SetBrowsing(true)
}

func (v *View) focus() tea.Cmd {
	v.focusInput = true
	v.statusbar.SetBrowsing(false)
	return v.input.Focus()
}

// View renders the lookup view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := []string{
		v.styles.Title.Render("Dictionary"),
		"",
		v.input.View(),
		"",
		v.list.View(),
		"",
		v.statusbar.View(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-9) // header, input box, status bar and gaps
	v.statusbar.SetWidth(width)
}

// SetShowFailures controls whether failed lookups are displayed. Hidden
// failures leave the page as if nothing had been looked up.
func (v *View) SetShowFailures(show bool) {
	v.showFailures = show
	v.list.SetShowFailures(show)
	if v.list.State().Status() == domain.StatusFailed {
		v.statusbar.SetState(v.failedStatus())
	}
}

func (v *View) failedStatus() status.State {
	if v.showFailures {
		return status.StateError
	}
	return status.StateReady
}

// SetMessage shows a transient message in the status bar.
func (v *View) SetMessage(msg string) {
	v.statusbar.SetMessage(msg)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Term returns the current input value.
func (v *View) Term() string {
	return v.input.Value()
}

// SetTerm sets the input value.
func (v *View) SetTerm(term string) {
	v.input.SetValue(term)
	if v.controller != nil {
		v.controller.SetTerm(term)
	}
}

// State returns the displayed lookup state.
func (v *View) State() domain.LookupState {
	return v.list.State()
}

// SelectedEntry returns the entry that p plays.
func (v *View) SelectedEntry() *domain.DictionaryEntry {
	return v.list.SelectedEntry()
}

// SelectedIndex returns the index of the selected entry.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// StatusState returns the status bar state.
func (v *View) StatusState() status.State {
	return v.statusbar.State()
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
