package driving

import "github.com/custodia-labs/lexi/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.Settings, error)

	// Set updates a single setting by its config key and persists it.
	Set(key, value string) error

	// Keys lists the supported config keys.
	Keys() []string

	// Reload re-reads settings from storage.
	Reload() (*domain.Settings, error)

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
