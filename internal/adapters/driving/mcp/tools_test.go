package mcp

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexi/internal/core/domain"
)

func TestServer_handleDefine(t *testing.T) {
	ctx := context.Background()

	t.Run("returns entries", func(t *testing.T) {
		mockLookup := &mockLookupService{
			entries: []domain.DictionaryEntry{helloEntry()},
		}
		server, err := NewServer(&Ports{Lookup: mockLookup})
		require.NoError(t, err)

		_, output, err := server.handleDefine(ctx, nil, DefineInput{Word: "hello"})

		require.NoError(t, err)
		assert.True(t, output.Found)
		assert.Equal(t, "hello", output.Word)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Entries, 1)
		assert.Equal(t, "exclamation", output.Entries[0].Meanings[0].PartOfSpeech)
		assert.Equal(t, []string{"https://example.com/hello-uk.mp3"}, output.Audio)
		assert.Equal(t, []string{"hello"}, mockLookup.terms)
	})

	t.Run("zero entries is found with count zero", func(t *testing.T) {
		mockLookup := &mockLookupService{entries: []domain.DictionaryEntry{}}
		server, err := NewServer(&Ports{Lookup: mockLookup})
		require.NoError(t, err)

		_, output, err := server.handleDefine(ctx, nil, DefineInput{Word: "hello"})

		require.NoError(t, err)
		assert.True(t, output.Found)
		assert.Equal(t, 0, output.Count)
		assert.Empty(t, output.Audio)
	})

	t.Run("not found is not an error", func(t *testing.T) {
		mockLookup := &mockLookupService{
			err: fmt.Errorf("dictionaryapi: %q: %w", "zzzqqq", domain.ErrNotFound),
		}
		server, err := NewServer(&Ports{Lookup: mockLookup})
		require.NoError(t, err)

		_, output, err := server.handleDefine(ctx, nil, DefineInput{Word: "zzzqqq"})

		require.NoError(t, err)
		assert.False(t, output.Found)
		assert.Equal(t, "zzzqqq", output.Word)
		assert.Equal(t, 0, output.Count)
		assert.NotNil(t, output.Entries)
	})

	t.Run("upstream error is returned", func(t *testing.T) {
		mockLookup := &mockLookupService{
			err: &domain.StatusError{Code: 500},
		}
		server, err := NewServer(&Ports{Lookup: mockLookup})
		require.NoError(t, err)

		_, _, err = server.handleDefine(ctx, nil, DefineInput{Word: "hello"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUpstream)
	})

	t.Run("network error is returned", func(t *testing.T) {
		mockLookup := &mockLookupService{err: errors.New("connection refused")}
		server, err := NewServer(&Ports{Lookup: mockLookup})
		require.NoError(t, err)

		_, _, err = server.handleDefine(ctx, nil, DefineInput{Word: "hello"})

		assert.EqualError(t, err, "connection refused")
	})
}
