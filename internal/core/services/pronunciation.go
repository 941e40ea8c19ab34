package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/lexi/internal/core/domain"
	"github.com/custodia-labs/lexi/internal/core/ports/driven"
	"github.com/custodia-labs/lexi/internal/core/ports/driving"
	"github.com/custodia-labs/lexi/internal/logger"
)

// Ensure PronunciationService implements the interface.
var _ driving.PronunciationService = (*PronunciationService)(nil)

// PronunciationService plays entry audio through a driven player.
type PronunciationService struct {
	player driven.AudioPlayer
}

// NewPronunciationService creates a new pronunciation service.
// A nil player makes every entry with audio fail with domain.ErrNoPlayer.
func NewPronunciationService(player driven.AudioPlayer) *PronunciationService {
	return &PronunciationService{player: player}
}

// Play starts playback of the first phonetic variant with audio.
// Entries without audio are a no-op. Playback runs in the background.
func (s *PronunciationService) Play(ctx context.Context, entry *domain.DictionaryEntry) (bool, error) {
	if entry == nil {
		return false, nil
	}

	variant := entry.PlayablePhonetic()
	if variant == nil {
		logger.Debug("No audio for %q", entry.Word)
		return false, nil
	}

	if s.player == nil {
		logger.Warn("Cannot play %q: %v", entry.Word, domain.ErrNoPlayer)
		return false, domain.ErrNoPlayer
	}

	logger.Debug("Playing %q from %s", entry.Word, variant.Audio)
	if err := s.player.Play(ctx, variant.Audio); err != nil {
		logger.Warn("Playback of %q failed: %v", entry.Word, err)
		return false, fmt.Errorf("play %q: %w", entry.Word, err)
	}
	return true, nil
}
