package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexi/internal/adapters/driving/tui"
	"github.com/custodia-labs/lexi/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lexi/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive lookup page",
	Long: `Launch the interactive terminal page for looking up words.

Controls:
  Enter    - Look up the typed word
  Esc, /   - Back to the word input
  ↑/k, ↓/j - Select an entry
  p        - Play the selected pronunciation
  ?        - Help
  Ctrl+C   - Quit

Changes to the config file are applied while the page is open.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	// Diagnostics would corrupt the alt screen
	if deps.LogDir != "" {
		restore, err := logger.OpenFile(deps.LogDir)
		if err != nil {
			return err
		}
		defer restore()
	}

	ports := tui.NewPorts(deps.Controller, deps.Lookup, deps.Pronunciation)
	ports.Settings = deps.Settings

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	if deps.OnPlaybackExit != nil {
		deps.OnPlaybackExit(func(url string, err error) {
			app.Send(messages.PlaybackFinished{URL: url, Err: err})
		})
		defer deps.OnPlaybackExit(nil)
	}

	watchSettings(ctx, app)

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// watchSettings reloads settings whenever the config file changes and
// reports the outcome to the app. It does nothing without a watcher.
func watchSettings(ctx context.Context, app *tui.App) {
	if deps.Watcher == nil || deps.Settings == nil {
		return
	}

	changes, err := deps.Watcher.Watch(ctx)
	if err != nil {
		logger.Warn("config watcher unavailable: %v", err)
		return
	}

	go func() {
		for range changes {
			app.Send(reloadSettings())
		}
	}()
}

// reloadSettings re-reads the settings and applies them to the adapters.
func reloadSettings() messages.SettingsReloaded {
	settings, err := deps.Settings.Reload()
	if err != nil {
		logger.Warn("config reload failed: %v", err)
		return messages.SettingsReloaded{Err: err}
	}

	if deps.Reconfigure != nil {
		if err := deps.Reconfigure(*settings); err != nil {
			logger.Warn("config reload failed: %v", err)
			return messages.SettingsReloaded{Err: err}
		}
	}

	logger.Info("config reloaded")
	return messages.SettingsReloaded{Settings: settings}
}
