package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/lexi/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for lexi resources.
	uriScheme = "lexi://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "entries/{word}",
		Name:        "entries",
		Description: "Dictionary entries for a word as JSON",
		MIMEType:    "application/json",
	}, s.handleEntriesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Active dictionary API settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handleEntriesResource returns the entries for the word in the URI.
func (s *Server) handleEntriesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	word, ok := extractWord(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	found, err := s.ports.Lookup.Lookup(ctx, word)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("looking up %q: %w", word, err)
	}

	return jsonResult(req.Params.URI, found)
}

// handleSettingsResource returns the active settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := domain.DefaultSettings()
	if s.ports.Settings != nil {
		current, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("reading settings: %w", err)
		}
		settings = *current
	}

	type settingsInfo struct {
		BaseURL           string  `json:"base_url"`
		TimeoutSeconds    int     `json:"timeout_seconds"`
		RequestsPerSecond float64 `json:"requests_per_second"`
		Burst             int     `json:"burst"`
		MaxRetries        int     `json:"max_retries"`
	}

	return jsonResult(req.Params.URI, settingsInfo{
		BaseURL:           settings.API.BaseURL,
		TimeoutSeconds:    int(settings.API.Timeout.Seconds()),
		RequestsPerSecond: settings.API.RequestsPerSecond,
		Burst:             settings.API.Burst,
		MaxRetries:        settings.API.MaxRetries,
	})
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractWord extracts the word from a URI like lexi://entries/{word}.
func extractWord(uri string) (string, bool) {
	const prefix = uriScheme + "entries/"

	if !strings.HasPrefix(uri, prefix) {
		return "", false
	}

	word, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil || word == "" {
		return "", false
	}
	return word, true
}
