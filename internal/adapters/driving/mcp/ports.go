package mcp

import (
	"github.com/custodia-labs/lexi/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Lookup performs dictionary lookups.
	Lookup driving.LookupService

	// Settings exposes the active settings as a resource. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Lookup == nil {
		return ErrMissingLookupService
	}
	return nil
}
