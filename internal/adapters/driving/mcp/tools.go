package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/lexi/internal/core/domain"
)

// DefineInput is the input schema for the define tool.
type DefineInput struct {
	Word string `json:"word" jsonschema:"the English word to look up"`
}

// DefineOutput is the output schema for the define tool.
type DefineOutput struct {
	Word    string                   `json:"word"`
	Found   bool                     `json:"found"`
	Count   int                      `json:"count"`
	Entries []domain.DictionaryEntry `json:"entries"`
	Audio   []string                 `json:"audio,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "define",
		Description: "Look up definitions, phonetics and pronunciation audio for an English word",
	}, s.handleDefine)
}

// handleDefine handles the define tool invocation. A word without
// definitions is a successful call with Found set to false.
func (s *Server) handleDefine(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DefineInput,
) (*mcp.CallToolResult, DefineOutput, error) {
	found, err := s.ports.Lookup.Lookup(ctx, input.Word)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, DefineOutput{Word: input.Word, Entries: []domain.DictionaryEntry{}}, nil
		}
		return nil, DefineOutput{}, err
	}

	output := DefineOutput{
		Word:    input.Word,
		Found:   true,
		Count:   len(found),
		Entries: found,
	}
	for i := range found {
		if variant := found[i].PlayablePhonetic(); variant != nil {
			output.Audio = append(output.Audio, variant.Audio)
		}
	}

	return nil, output, nil
}
