package domain

import (
	"fmt"
	"strings"
	"time"
)

// DefaultBaseURL is the English endpoint of the free dictionary API.
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// APISettings configures the dictionary API client.
type APISettings struct {
	// BaseURL is the entries endpoint; the term is appended as a path segment.
	BaseURL string

	// Timeout bounds a single HTTP request. Zero disables the timeout.
	Timeout time.Duration

	// RequestsPerSecond is the sustained client-side request rate.
	RequestsPerSecond float64

	// Burst is the maximum burst size.
	Burst int

	// MaxRetries is the number of retries on 5xx or network errors.
	MaxRetries int
}

// AudioSettings configures pronunciation playback.
type AudioSettings struct {
	// Player is the command used to play audio. Empty means auto-detect.
	Player string
}

// UISettings configures presentation.
type UISettings struct {
	// ShowFailures controls whether failed lookups are reported on the page.
	// When false a failed lookup renders like an empty page.
	ShowFailures bool
}

// Settings holds all application settings.
type Settings struct {
	API   APISettings
	Audio AudioSettings
	UI    UISettings
}

// DefaultSettings returns sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		API: APISettings{
			BaseURL:           DefaultBaseURL,
			Timeout:           10 * time.Second,
			RequestsPerSecond: 2.0,
			Burst:             5,
			MaxRetries:        0,
		},
		Audio: AudioSettings{
			Player: "",
		},
		UI: UISettings{
			ShowFailures: true,
		},
	}
}

// Validate checks that the settings are usable.
func (s Settings) Validate() error {
	if !strings.HasPrefix(s.API.BaseURL, "http://") && !strings.HasPrefix(s.API.BaseURL, "https://") {
		return fmt.Errorf("%w: api base url must be http(s): %q", ErrInvalidInput, s.API.BaseURL)
	}
	if s.API.Timeout < 0 {
		return fmt.Errorf("%w: api timeout must not be negative", ErrInvalidInput)
	}
	if s.API.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: api requests per second must be positive", ErrInvalidInput)
	}
	if s.API.Burst < 1 {
		return fmt.Errorf("%w: api burst must be at least 1", ErrInvalidInput)
	}
	if s.API.MaxRetries < 0 {
		return fmt.Errorf("%w: api max retries must not be negative", ErrInvalidInput)
	}
	return nil
}
