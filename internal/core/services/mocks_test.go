package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/lexi/internal/core/domain"
)

// --- Mock implementations ---

// mockDictionaryClient implements driven.DictionaryClient for testing.
type mockDictionaryClient struct {
	mu       sync.Mutex
	terms    []string
	LookupFn func(ctx context.Context, term string) ([]domain.DictionaryEntry, error)
}

func (m *mockDictionaryClient) Lookup(ctx context.Context, term string) ([]domain.DictionaryEntry, error) {
	m.mu.Lock()
	m.terms = append(m.terms, term)
	m.mu.Unlock()
	if m.LookupFn != nil {
		return m.LookupFn(ctx, term)
	}
	return []domain.DictionaryEntry{}, nil
}

func (m *mockDictionaryClient) calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.terms...)
}

// mockAudioPlayer implements driven.AudioPlayer for testing.
type mockAudioPlayer struct {
	urls   []string
	PlayFn func(ctx context.Context, url string) error
}

func (m *mockAudioPlayer) Play(ctx context.Context, url string) error {
	m.urls = append(m.urls, url)
	if m.PlayFn != nil {
		return m.PlayFn(ctx, url)
	}
	return nil
}

// helloEntries mirrors the API response for "hello".
func helloEntries() []domain.DictionaryEntry {
	return []domain.DictionaryEntry{
		{
			Word:     "hello",
			Phonetic: "həˈləʊ",
			Phonetics: []domain.PhoneticVariant{
				{Text: "həˈləʊ", Audio: "https://api.dictionaryapi.dev/media/pronunciations/en/hello-uk.mp3"},
			},
			Meanings: []domain.Meaning{
				{
					PartOfSpeech: "exclamation",
					Definitions: []domain.Definition{
						{Definition: "used as a greeting or to begin a phone conversation.", Example: "hello there, Katie!"},
					},
				},
			},
		},
	}
}
