package domain

// License describes the licensing of dictionary content.
type License struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PhoneticVariant is one transcription/audio representation of a word's pronunciation.
type PhoneticVariant struct {
	// Text is the transcription, e.g. "/həˈloʊ/". May be empty.
	Text string `json:"text,omitempty"`

	// Audio is the locator of a pronunciation recording. May be empty.
	Audio string `json:"audio,omitempty"`

	// SourceURL is where the recording was taken from.
	SourceURL string `json:"sourceUrl,omitempty"`

	// License is the licence of the recording, if known.
	License *License `json:"license,omitempty"`
}

// HasAudio returns true if the variant carries an audio locator.
func (p PhoneticVariant) HasAudio() bool {
	return p.Audio != ""
}

// Definition is a single sense of a word.
type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

// HasExample returns true if the definition has an example sentence.
func (d Definition) HasExample() bool {
	return d.Example != ""
}

// Meaning groups definitions under one part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms"`
	Antonyms     []string     `json:"antonyms"`
}

// DictionaryEntry is one dictionary result for a word.
type DictionaryEntry struct {
	Word       string            `json:"word"`
	Phonetic   string            `json:"phonetic,omitempty"`
	Phonetics  []PhoneticVariant `json:"phonetics"`
	Meanings   []Meaning         `json:"meanings"`
	License    License           `json:"license"`
	SourceURLs []string          `json:"sourceUrls"`
}

// PlayablePhonetic returns the first phonetic variant, in order, whose audio
// locator is non-empty. Returns nil if the entry has no audio.
func (e *DictionaryEntry) PlayablePhonetic() *PhoneticVariant {
	for i := range e.Phonetics {
		if e.Phonetics[i].HasAudio() {
			return &e.Phonetics[i]
		}
	}
	return nil
}

// HasAudio returns true if any phonetic variant can be played.
func (e *DictionaryEntry) HasAudio() bool {
	return e.PlayablePhonetic() != nil
}
