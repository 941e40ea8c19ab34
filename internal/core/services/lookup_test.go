package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexi/internal/core/domain"
)

func TestLookupService_Lookup_Success(t *testing.T) {
	client := &mockDictionaryClient{
		LookupFn: func(_ context.Context, _ string) ([]domain.DictionaryEntry, error) {
			return helloEntries(), nil
		},
	}
	service := NewLookupService(client)

	entries, err := service.Lookup(context.Background(), "hello")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0].Word)
	assert.Equal(t, []string{"hello"}, client.calls())
}

func TestLookupService_Lookup_ForwardsEmptyTerm(t *testing.T) {
	client := &mockDictionaryClient{}
	service := NewLookupService(client)

	_, err := service.Lookup(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, []string{""}, client.calls())
}

func TestLookupService_Lookup_NilEntriesBecomeEmpty(t *testing.T) {
	client := &mockDictionaryClient{
		LookupFn: func(_ context.Context, _ string) ([]domain.DictionaryEntry, error) {
			return nil, nil
		},
	}
	service := NewLookupService(client)

	entries, err := service.Lookup(context.Background(), "x")

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestLookupService_Lookup_NotFound(t *testing.T) {
	client := &mockDictionaryClient{
		LookupFn: func(_ context.Context, _ string) ([]domain.DictionaryEntry, error) {
			return nil, domain.ErrNotFound
		},
	}
	service := NewLookupService(client)

	entries, err := service.Lookup(context.Background(), "zzzqqq")

	assert.Nil(t, entries)
	assert.True(t, domain.IsNotFound(err))
}

func TestLookupService_Lookup_WrapsOtherErrors(t *testing.T) {
	upstream := &domain.StatusError{Code: 500}
	client := &mockDictionaryClient{
		LookupFn: func(_ context.Context, _ string) ([]domain.DictionaryEntry, error) {
			return nil, upstream
		},
	}
	service := NewLookupService(client)

	_, err := service.Lookup(context.Background(), "hello")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	var statusErr *domain.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, 500, statusErr.Code)
	assert.Contains(t, err.Error(), `lookup "hello"`)
}
