// Package tui provides an interactive terminal user interface for lexi.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/lexi/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Controller holds the search text and lookup state.
	Controller driving.LookupController

	// Lookup performs dictionary lookups.
	Lookup driving.LookupService

	// Pronunciation plays entry audio.
	Pronunciation driving.PronunciationService

	// Settings provides application settings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	controller driving.LookupController,
	lookup driving.LookupService,
	pronunciation driving.PronunciationService,
) *Ports {
	return &Ports{
		Controller:    controller,
		Lookup:        lookup,
		Pronunciation: pronunciation,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Controller == nil {
		return ErrMissingController
	}
	if p.Lookup == nil {
		return ErrMissingLookupService
	}
	if p.Pronunciation == nil {
		return ErrMissingPronunciationService
	}
	return nil
}
