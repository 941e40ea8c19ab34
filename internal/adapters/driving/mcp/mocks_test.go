package mcp

import (
	"context"

	"github.com/custodia-labs/lexi/internal/core/domain"
)

// mockLookupService implements driving.LookupService for testing.
type mockLookupService struct {
	entries []domain.DictionaryEntry
	err     error
	terms   []string
}

func (m *mockLookupService) Lookup(_ context.Context, term string) ([]domain.DictionaryEntry, error) {
	m.terms = append(m.terms, term)
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	settings domain.Settings
	err      error
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Set(_, _ string) error { return nil }

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) Reload() (*domain.Settings, error) { return m.Get() }

func (m *mockSettingsService) GetDefaults() domain.Settings { return domain.DefaultSettings() }

func helloEntry() domain.DictionaryEntry {
	return domain.DictionaryEntry{
		Word:     "hello",
		Phonetic: "/həˈloʊ/",
		Phonetics: []domain.PhoneticVariant{
			{Text: "/həˈloʊ/"},
			{Text: "/həˈləʊ/", Audio: "https://example.com/hello-uk.mp3"},
		},
		Meanings: []domain.Meaning{{
			PartOfSpeech: "exclamation",
			Definitions:  []domain.Definition{{Definition: "used as a greeting"}},
		}},
	}
}
