package dictionaryapi

import "github.com/custodia-labs/lexi/internal/core/domain"

// apiEntry represents a single entry from the API response.
// The API returns an array of entries (one per etymology).
type apiEntry struct {
	Word       string        `json:"word"`
	Phonetic   string        `json:"phonetic"`
	Phonetics  []apiPhonetic `json:"phonetics"`
	Meanings   []apiMeaning  `json:"meanings"`
	License    apiLicense    `json:"license"`
	SourceURLs []string      `json:"sourceUrls"`
}

// apiPhonetic represents phonetic/pronunciation data from the API.
type apiPhonetic struct {
	Text      string      `json:"text"`
	Audio     string      `json:"audio"`
	SourceURL string      `json:"sourceUrl"`
	License   *apiLicense `json:"license"`
}

// apiMeaning represents a group of definitions sharing a part of speech.
type apiMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
	Synonyms     []string        `json:"synonyms"`
	Antonyms     []string        `json:"antonyms"`
}

// apiDefinition represents a single definition with an optional example.
type apiDefinition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

type apiLicense struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// mapAPIResponse converts API entries into domain entries.
// Order is preserved and nothing is merged across entries.
func mapAPIResponse(entries []apiEntry) []domain.DictionaryEntry {
	result := make([]domain.DictionaryEntry, 0, len(entries))
	for i := range entries {
		result = append(result, mapEntry(&entries[i]))
	}
	return result
}

func mapEntry(e *apiEntry) domain.DictionaryEntry {
	entry := domain.DictionaryEntry{
		Word:       e.Word,
		Phonetic:   e.Phonetic,
		Phonetics:  make([]domain.PhoneticVariant, 0, len(e.Phonetics)),
		Meanings:   make([]domain.Meaning, 0, len(e.Meanings)),
		License:    domain.License{Name: e.License.Name, URL: e.License.URL},
		SourceURLs: nonNil(e.SourceURLs),
	}

	for _, ph := range e.Phonetics {
		entry.Phonetics = append(entry.Phonetics, mapPhonetic(ph))
	}

	for _, m := range e.Meanings {
		meaning := domain.Meaning{
			PartOfSpeech: m.PartOfSpeech,
			Definitions:  make([]domain.Definition, 0, len(m.Definitions)),
			Synonyms:     nonNil(m.Synonyms),
			Antonyms:     nonNil(m.Antonyms),
		}
		for _, d := range m.Definitions {
			meaning.Definitions = append(meaning.Definitions, domain.Definition{
				Definition: d.Definition,
				Example:    d.Example,
				Synonyms:   nonNil(d.Synonyms),
				Antonyms:   nonNil(d.Antonyms),
			})
		}
		entry.Meanings = append(entry.Meanings, meaning)
	}

	return entry
}

func mapPhonetic(ph apiPhonetic) domain.PhoneticVariant {
	v := domain.PhoneticVariant{
		Text:      ph.Text,
		Audio:     ph.Audio,
		SourceURL: ph.SourceURL,
	}
	if ph.License != nil {
		v.License = &domain.License{Name: ph.License.Name, URL: ph.License.URL}
	}
	return v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
