package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexi/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
	Long: `View and change lexi settings.

Settings are stored in config.toml inside the configuration directory.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting and save it.

Available keys:
  api.base_url             Dictionary entries endpoint
  api.timeout_seconds      Request timeout, 0 disables it
  api.requests_per_second  Client-side request rate
  api.burst                Maximum request burst
  api.max_retries          Retries on server or network errors
  audio.player             Audio player command, empty to auto-detect
  ui.show_failures         Report failed lookups on the page`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if deps.Settings == nil {
		return errors.New("settings service not configured")
	}

	settings, err := deps.Settings.Get()
	if err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Showing defaults. Run 'lexi config set' to fix configuration issues.")
		cmd.Println()
		defaults := deps.Settings.GetDefaults()
		settings = &defaults
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[API]")
	cmd.Printf("  Base URL: %s\n", settings.API.BaseURL)
	cmd.Printf("  Timeout: %s\n", formatTimeout(settings.API))
	cmd.Printf("  Requests per second: %g\n", settings.API.RequestsPerSecond)
	cmd.Printf("  Burst: %d\n", settings.API.Burst)
	cmd.Printf("  Max retries: %d\n", settings.API.MaxRetries)
	cmd.Println()

	cmd.Println("[Audio]")
	player := settings.Audio.Player
	if player == "" {
		player = "(auto-detect)"
	}
	cmd.Printf("  Player: %s\n", player)
	cmd.Println()

	cmd.Println("[UI]")
	cmd.Printf("  Show failures: %s\n", yesNo(settings.UI.ShowFailures))

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if deps.Settings == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := deps.Settings.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if deps.ConfigPath == "" {
		return errors.New("config path not configured")
	}
	cmd.Println(deps.ConfigPath)
	return nil
}

// Helper functions.

func formatTimeout(api domain.APISettings) string {
	if api.Timeout == 0 {
		return "none"
	}
	return api.Timeout.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
