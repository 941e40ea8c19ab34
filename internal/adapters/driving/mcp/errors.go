// Package mcp provides an MCP (Model Context Protocol) server adapter for lexi.
// It lets AI assistants look up word definitions through the same core
// services as the terminal page.
package mcp

import "errors"

// ErrMissingLookupService is returned when the lookup service is not provided.
var ErrMissingLookupService = errors.New("mcp: lookup service is required")
