// Package cli provides the cobra command tree for lexi.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexi/internal/core/domain"
	"github.com/custodia-labs/lexi/internal/core/ports/driven"
	"github.com/custodia-labs/lexi/internal/core/ports/driving"
	"github.com/custodia-labs/lexi/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services holds the core services and runtime hooks used by the commands.
type Services struct {
	Controller    driving.LookupController
	Lookup        driving.LookupService
	Pronunciation driving.PronunciationService
	Settings      driving.SettingsService

	// Watcher reports config file changes while the TUI runs. Optional.
	Watcher driven.ConfigWatcher

	// Reconfigure applies reloaded settings to the driven adapters. Optional.
	Reconfigure func(settings domain.Settings) error

	// OnPlaybackExit registers a callback for finished playbacks. Optional.
	OnPlaybackExit func(fn func(url string, err error))

	// ConfigPath is the config file location.
	ConfigPath string

	// LogDir is where the TUI writes diagnostics. Empty keeps stderr.
	LogDir string
}

// Bootstrap builds the services once flags are parsed.
type Bootstrap func(configDir string) (*Services, error)

var (
	deps      = &Services{}
	bootstrap Bootstrap
)

var rootCmd = &cobra.Command{
	Use:   "lexi",
	Short: "Look up word definitions from the terminal",
	Long: `lexi looks up English words in the free dictionary API and shows
their definitions, phonetics and pronunciation audio.

Run without arguments to open the interactive lookup page.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.lexi)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap sets the function that builds the services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices replaces the services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	deps = s
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil {
		return nil
	}

	s, err := bootstrap(configDir)
	if err != nil {
		return fmt.Errorf("initialising: %w", err)
	}
	SetServices(s)
	return nil
}
