package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/views/lookup"
	"github.com/custodia-labs/lexi/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// lookupView is the dictionary page.
	lookupView *lookup.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool

	mu      sync.Mutex
	program *tea.Program
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	lookupView := lookup.NewView(s, km, ports.Controller, ports.Lookup, ports.Pronunciation)

	if ports.Settings != nil {
		if settings, err := ports.Settings.Get(); err == nil {
			lookupView.SetShowFailures(settings.UI.ShowFailures)
		} else {
			logger.Warn("tui: using default settings: %v", err)
		}
	}

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		lookupView:  lookupView,
		currentView: messages.ViewLookup,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.lookupView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("lexi - Dictionary"),
		a.lookupView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewHelp {
			// Any key leaves help
			a.currentView = messages.ViewLookup
			return a, nil
		}
		a.lookupView, cmd = a.lookupView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.SettingsReloaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.lookupView.SetMessage("Config error: " + msg.Err.Error())
			return a, nil
		}
		if msg.Settings != nil {
			a.lookupView.SetShowFailures(msg.Settings.UI.ShowFailures)
			a.lookupView.SetMessage("Settings reloaded")
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.lookupView, cmd = a.lookupView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	a.lookupView, cmd = a.lookupView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.currentView == messages.ViewHelp {
		return a.viewHelp()
	}
	return a.lookupView.View()
}

// viewHelp renders the help view from the keymap.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-10s %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Help.Render("[any key] back"))
	return b.String()
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx), tea.WithMouseCellMotion())

	a.mu.Lock()
	a.program = p
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.program = nil
		a.mu.Unlock()
	}()

	_, err := p.Run()
	return err
}

// Send delivers a message to the running program from another goroutine.
// It does nothing if the program is not running.
func (a *App) Send(msg tea.Msg) {
	a.mu.Lock()
	p := a.program
	a.mu.Unlock()

	if p != nil {
		p.Send(msg)
	}
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// LookupView returns the lookup page.
func (a *App) LookupView() *lookup.View {
	return a.lookupView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.lookupView.SetDimensions(width, height)
}
