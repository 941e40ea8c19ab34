package driving

import (
	"context"

	"github.com/custodia-labs/lexi/internal/core/domain"
)

// PronunciationService plays the pronunciation of an entry.
type PronunciationService interface {
	// Play starts playback of the first phonetic variant of entry that has
	// audio. It returns false without error when the entry has no audio.
	Play(ctx context.Context, entry *domain.DictionaryEntry) (bool, error)
}
