package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	require.NotNil(t, km)

	assert.Equal(t, []string{"ctrl+c"}, km.Quit.Keys())
	assert.Equal(t, []string{"enter"}, km.Search.Keys())
	assert.Equal(t, []string{"p"}, km.Play.Keys())
	assert.Equal(t, []string{"esc", "/"}, km.Back.Keys())
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key      string
		expected bool
	}{
		{"up", true},
		{"k", true},
		{"down", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, Matches(tt.key, km.Up))
		})
	}
}

func TestKeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 2)
	assert.Contains(t, km.EntriesHelp(), km.Play)

	total := 0
	for _, group := range km.FullHelp() {
		total += len(group)
	}
	assert.Equal(t, 9, total)
}

func TestKeyMap_HelpText(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, "p", km.Play.Help().Key)
	assert.Equal(t, "play", km.Play.Help().Desc)
}
