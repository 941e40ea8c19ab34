package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPCmd_Registered(t *testing.T) {
	found := false
	for _, cmd := range mcpCmd.Commands() {
		if cmd.Name() == "serve" {
			found = true
			break
		}
	}
	assert.True(t, found, "serve subcommand should be registered")
}

func TestMCPServeCmd_PortFlag(t *testing.T) {
	flag := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "port flag should exist")
	assert.Equal(t, "p", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}

func TestMCPServeCmd_LongDescription(t *testing.T) {
	assert.Contains(t, mcpServeCmd.Long, "define")
	assert.Contains(t, mcpServeCmd.Long, "lexi://entries/{word}")
}

func TestMCPServe_RequiresLookupService(t *testing.T) {
	previous := deps
	defer func() { deps = previous }()
	SetServices(nil)

	rootCmd.SetArgs([]string{"mcp", "serve"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "lookup service is required")
}
