package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/lexi/internal/core/domain"
	"github.com/custodia-labs/lexi/internal/core/ports/driven"
	"github.com/custodia-labs/lexi/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyAPIBaseURL        = "api.base_url"
	KeyAPITimeoutSeconds = "api.timeout_seconds"
	KeyAPIRequestsPerSec = "api.requests_per_second"
	KeyAPIBurst          = "api.burst"
	KeyAPIMaxRetries     = "api.max_retries"
	KeyAudioPlayer       = "audio.player"
	KeyUIShowFailures    = "ui.show_failures"
)

// settingKind is the value type stored under a config key.
type settingKind int

const (
	kindString settingKind = iota
	kindInt
	kindFloat
	kindBool
)

var settingKinds = map[string]settingKind{
	KeyAPIBaseURL:        kindString,
	KeyAPITimeoutSeconds: kindInt,
	KeyAPIRequestsPerSec: kindFloat,
	KeyAPIBurst:          kindInt,
	KeyAPIMaxRetries:     kindInt,
	KeyAudioPlayer:       kindString,
	KeyUIShowFailures:    kindBool,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing keys fall back to
// defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		API: domain.APISettings{
			BaseURL:           s.getString(KeyAPIBaseURL, defaults.API.BaseURL),
			Timeout:           s.getTimeout(defaults.API.Timeout),
			RequestsPerSecond: s.getFloat(KeyAPIRequestsPerSec, defaults.API.RequestsPerSecond),
			Burst:             s.getInt(KeyAPIBurst, defaults.API.Burst),
			MaxRetries:        s.getInt(KeyAPIMaxRetries, defaults.API.MaxRetries),
		},
		Audio: domain.AudioSettings{
			Player: s.getString(KeyAudioPlayer, defaults.Audio.Player),
		},
		UI: domain.UISettings{
			ShowFailures: s.getBool(KeyUIShowFailures, defaults.UI.ShowFailures),
		},
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings in %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// Set parses value according to the type of key, validates the resulting
// settings and persists the value.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKinds[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q (valid: %s)",
			domain.ErrInvalidInput, key, strings.Join(s.Keys(), ", "))
	}

	parsed, err := parseSetting(kind, value)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, key, err)
	}

	current, err := s.Get()
	if err != nil {
		defaults := domain.DefaultSettings()
		current = &defaults
	}
	applySetting(current, key, parsed)
	if err := current.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys lists the supported config keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		KeyAPIBaseURL,
		KeyAPITimeoutSeconds,
		KeyAPIRequestsPerSec,
		KeyAPIBurst,
		KeyAPIMaxRetries,
		KeyAudioPlayer,
		KeyUIShowFailures,
	}
}

// Reload re-reads the config store and returns the new settings.
func (s *SettingsService) Reload() (*domain.Settings, error) {
	if err := s.configStore.Load(); err != nil {
		return nil, fmt.Errorf("reload %s: %w", s.configStore.Path(), err)
	}
	return s.Get()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func parseSetting(kind settingKind, value string) (any, error) {
	value = strings.TrimSpace(value)
	switch kind {
	case kindInt:
		return strconv.Atoi(value)
	case kindFloat:
		return strconv.ParseFloat(value, 64)
	case kindBool:
		return strconv.ParseBool(value)
	default:
		return value, nil
	}
}

// applySetting writes a parsed value into the matching settings field.
func applySetting(settings *domain.Settings, key string, value any) {
	switch key {
	case KeyAPIBaseURL:
		settings.API.BaseURL = value.(string)
	case KeyAPITimeoutSeconds:
		settings.API.Timeout = time.Duration(value.(int)) * time.Second
	case KeyAPIRequestsPerSec:
		settings.API.RequestsPerSecond = value.(float64)
	case KeyAPIBurst:
		settings.API.Burst = value.(int)
	case KeyAPIMaxRetries:
		settings.API.MaxRetries = value.(int)
	case KeyAudioPlayer:
		settings.Audio.Player = value.(string)
	case KeyUIShowFailures:
		settings.UI.ShowFailures = value.(bool)
	}
}

func (s *SettingsService) getTimeout(defaultVal time.Duration) time.Duration {
	if val, ok := s.configStore.Get(KeyAPITimeoutSeconds); !ok || val == nil {
		return defaultVal
	}
	return time.Duration(s.configStore.GetInt(KeyAPITimeoutSeconds)) * time.Second
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if val, ok := s.configStore.Get(key); !ok || val == nil {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if val, ok := s.configStore.Get(key); !ok || val == nil {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal
	}
	if b, isBool := val.(bool); isBool {
		return b
	}
	return defaultVal
}
