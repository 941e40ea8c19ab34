package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lexi/internal/core/domain"
	"github.com/custodia-labs/lexi/internal/core/services"
)

func newTestPorts(lookup *MockLookupService) *Ports {
	return NewPorts(services.NewLookupController(lookup), lookup, &MockPronunciationService{})
}

func helloLookup() *MockLookupService {
	return &MockLookupService{
		LookupFunc: func(_ context.Context, _ string) ([]domain.DictionaryEntry, error) {
			return []domain.DictionaryEntry{{
				Word: "hello",
				Meanings: []domain.Meaning{{
					PartOfSpeech: "exclamation",
					Definitions:  []domain.Definition{{Definition: "used as a greeting."}},
				}},
			}}, nil
		},
	}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts(&MockLookupService{}))

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewLookup, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingController)
	assert.Nil(t, app)
}

func TestNewApp_AppliesShowFailures(t *testing.T) {
	lookup := &MockLookupService{
		LookupFunc: func(_ context.Context, _ string) ([]domain.DictionaryEntry, error) {
			return nil, &domain.StatusError{Code: 503}
		},
	}
	ports := newTestPorts(lookup)
	settings := domain.DefaultSettings()
	settings.UI.ShowFailures = false
	ports.Settings = &MockSettingsService{Settings: settings}

	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(100, 40)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, domain.StatusFailed, app.LookupView().State().Status())
	assert.NotContains(t, app.View(), "Lookup failed")
}

func TestNewApp_SettingsError(t *testing.T) {
	ports := newTestPorts(&MockLookupService{})
	ports.Settings = &MockSettingsService{GetErr: errors.New("bad config")}

	app, err := NewApp(ports)

	require.NoError(t, err)
	assert.NotNil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(newTestPorts(&MockLookupService{}))

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init(t *testing.T) {
	app, _ := NewApp(newTestPorts(&MockLookupService{}))

	assert.NotNil(t, app.Init())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, _ := NewApp(newTestPorts(&MockLookupService{}))

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
	assert.True(t, app.LookupView().Ready())
}

func TestApp_Update_CtrlC(t *testing.T) {
	app, _ := NewApp(newTestPorts(&MockLookupService{}))

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_Quit(t *testing.T) {
	app, _ := NewApp(newTestPorts(&MockLookupService{}))

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_LookupFlow(t *testing.T) {
	app, _ := NewApp(newTestPorts(helloLookup()))
	app.SetDimensions(100, 40)

	for _, r := range "hello" {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	app.Update(cmd())

	view := app.View()
	assert.Contains(t, view, "hello")
	assert.Contains(t, view, "Definition:")
	assert.Contains(t, view, "1 entry")
}

func TestApp_HelpView(t *testing.T) {
	app, _ := NewApp(newTestPorts(helloLookup()))
	app.SetDimensions(100, 40)

	app.Update(messages.ViewChanged{View: messages.ViewHelp})
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "Help")
	assert.Contains(t, app.View(), "play")

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewLookup, app.CurrentView())
}

func TestApp_View_NotReady(t *testing.T) {
	app, _ := NewApp(newTestPorts(&MockLookupService{}))

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_Update_ErrorOccurred(t *testing.T) {
	app, _ := NewApp(newTestPorts(&MockLookupService{}))
	app.SetDimensions(100, 40)
	testErr := errors.New("test error")

	app.Update(messages.ErrorOccurred{Err: testErr})

	assert.Equal(t, testErr, app.Err())
	assert.Equal(t, "test error", app.LookupView().StatusMessage())
}

func TestApp_Update_SettingsReloaded(t *testing.T) {
	app, _ := NewApp(newTestPorts(&MockLookupService{}))
	app.SetDimensions(100, 40)
	settings := domain.DefaultSettings()
	settings.UI.ShowFailures = false

	app.Update(messages.SettingsReloaded{Settings: &settings})
	assert.Equal(t, "Settings reloaded", app.LookupView().StatusMessage())

	app.Update(messages.SettingsReloaded{Err: errors.New("parse error")})
	assert.Equal(t, "Config error: parse error", app.LookupView().StatusMessage())
	assert.EqualError(t, app.Err(), "parse error")
}

func TestApp_Send_NotRunning(t *testing.T) {
	app, _ := NewApp(newTestPorts(&MockLookupService{}))

	assert.NotPanics(t, func() {
		app.Send(messages.PlaybackFinished{})
	})
}
