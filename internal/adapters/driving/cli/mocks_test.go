package cli

import (
	"context"
	"sync"

	"github.com/custodia-labs/lexi/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/lexi/internal/core/domain"
	"github.com/custodia-labs/lexi/internal/core/services"
)

// MockLookupService implements driving.LookupService for CLI tests.
type MockLookupService struct {
	LookupFunc func(ctx context.Context, term string) ([]domain.DictionaryEntry, error)
}

func (m *MockLookupService) Lookup(ctx context.Context, term string) ([]domain.DictionaryEntry, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, term)
	}
	return []domain.DictionaryEntry{}, nil
}

// MockPronunciationService implements driving.PronunciationService for CLI tests.
type MockPronunciationService struct {
	mu       sync.Mutex
	PlayFunc func(ctx context.Context, entry *domain.DictionaryEntry) (bool, error)
	played   []string
}

func (m *MockPronunciationService) Play(ctx context.Context, entry *domain.DictionaryEntry) (bool, error) {
	m.mu.Lock()
	m.played = append(m.played, entry.Word)
	m.mu.Unlock()

	if m.PlayFunc != nil {
		return m.PlayFunc(ctx, entry)
	}
	return entry.HasAudio(), nil
}

func (m *MockPronunciationService) Played() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.played...)
}

func helloEntries() []domain.DictionaryEntry {
	return []domain.DictionaryEntry{
		{
			Word:     "hello",
			Phonetic: "/həˈloʊ/",
			Phonetics: []domain.PhoneticVariant{
				{Text: "/həˈloʊ/", Audio: "https://example.com/hello.mp3"},
			},
			Meanings: []domain.Meaning{
				{
					PartOfSpeech: "exclamation",
					Definitions: []domain.Definition{
						{Definition: "used as a greeting", Example: "hello there, Katie!"},
					},
				},
			},
		},
	}
}

// setupTestServices installs real core services over a mock lookup and an
// in-memory config store. The returned function restores the previous state.
func setupTestServices(lookup *MockLookupService) (*MockPronunciationService, func()) {
	if lookup == nil {
		lookup = &MockLookupService{
			LookupFunc: func(_ context.Context, term string) ([]domain.DictionaryEntry, error) {
				if term == "hello" {
					return helloEntries(), nil
				}
				return nil, domain.ErrNotFound
			},
		}
	}

	pronunciation := &MockPronunciationService{}
	previous := deps
	SetServices(&Services{
		Controller:    services.NewLookupController(lookup),
		Lookup:        lookup,
		Pronunciation: pronunciation,
		Settings:      services.NewSettingsService(memory.NewConfigStore()),
		ConfigPath:    "/tmp/lexi/config.toml",
	})

	return pronunciation, func() {
		deps = previous
		defineJSON = false
		definePlay = false
	}
}
